package repository

import (
	"time"

	"inventory-pos/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type SaleRepo struct {
	db *gorm.DB
}

func NewSaleRepo(db *gorm.DB) *SaleRepo {
	return &SaleRepo{db: db}
}

func (r *SaleRepo) FindAll() ([]models.Sale, error) {
	var sales []models.Sale
	err := r.db.Preload("Event").Order("sale_date desc").Find(&sales).Error
	return sales, err
}

func (r *SaleRepo) FindByID(id uint) (*models.Sale, error) {
	var sale models.Sale
	err := r.db.Preload("Event").
		Preload("Items").
		Preload("Items.Product").
		Preload("Items.Variant").
		Preload("Items.Variant.Product").
		First(&sale, id).Error
	if err != nil {
		return nil, err
	}
	return &sale, nil
}

func (r *SaleRepo) FindByEventID(eventID uint) ([]models.Sale, error) {
	var sales []models.Sale
	err := r.db.Preload("Event").
		Where("event_id = ?", eventID).
		Order("sale_date desc").
		Find(&sales).Error
	return sales, err
}

func (r *SaleRepo) FindActiveByEventID(eventID uint) ([]models.Sale, error) {
	var sales []models.Sale
	err := r.db.Preload("Event").
		Where("event_id = ? AND is_cancelled = ?", eventID, false).
		Order("sale_date desc").
		Find(&sales).Error
	return sales, err
}

func (r *SaleRepo) FindUnpaid() ([]models.Sale, error) {
	var sales []models.Sale
	err := r.db.Preload("Event").Where("is_paid = ?", false).Find(&sales).Error
	return sales, err
}

func (r *SaleRepo) FindByPaymentMethod(method string) ([]models.Sale, error) {
	var sales []models.Sale
	err := r.db.Preload("Event").Where("payment_method = ?", method).Find(&sales).Error
	return sales, err
}

func (r *SaleRepo) FindBetweenDates(start, end time.Time) ([]models.Sale, error) {
	var sales []models.Sale
	err := r.db.Preload("Event").
		Where("sale_date BETWEEN ? AND ? AND is_cancelled = ?", start, end, false).
		Find(&sales).Error
	return sales, err
}

func (r *SaleRepo) FindEventSalesBetweenDates(eventID uint, start, end time.Time) ([]models.Sale, error) {
	var sales []models.Sale
	err := r.db.Preload("Event").
		Where("event_id = ? AND sale_date BETWEEN ? AND ? AND is_cancelled = ?",
			eventID, start, end, false).
		Find(&sales).Error
	return sales, err
}

func (r *SaleRepo) SearchByCustomer(term string) ([]models.Sale, error) {
	like := "%" + term + "%"
	var sales []models.Sale
	err := r.db.Preload("Event").
		Where("customer_name LIKE ? OR customer_phone LIKE ? OR customer_email LIKE ?",
			like, like, like).
		Find(&sales).Error
	return sales, err
}

func (r *SaleRepo) Save(sale *models.Sale) error {
	return r.db.Omit("Event", "Items").Save(sale).Error
}

func (r *SaleRepo) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("sale_id = ?", id).Delete(&models.SaleItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Sale{}, id).Error
	})
}

// --- aggregate queries, replacing per-request in-memory grouping ---

// PaymentMethodSummary is one row of a per-method breakdown.
type PaymentMethodSummary struct {
	Method string          `gorm:"column:payment_method" json:"method"`
	Count  int64           `json:"count"`
	Total  decimal.Decimal `json:"total"`
}

// ItemSales is one row of a top-seller ranking.
type ItemSales struct {
	Name     string `json:"name"`
	Quantity int64  `json:"quantity"`
}

// BrandSummary aggregates an event's non-cancelled sale items per
// product brand. SaleCount counts distinct sales touching the brand.
type BrandSummary struct {
	Brand     string          `json:"brand"`
	SaleCount int64           `json:"sale_count"`
	Amount    decimal.Decimal `json:"amount"`
	Quantity  int64           `json:"quantity"`
}

// BrandPaymentSummary breaks a brand's sales down by payment method.
// Amounts are whole-sale totals counted once per sale.
type BrandPaymentSummary struct {
	Brand  string          `json:"brand"`
	Method string          `gorm:"column:payment_method" json:"method"`
	Count  int64           `json:"count"`
	Total  decimal.Decimal `json:"total"`
}

// CountByEvent counts non-cancelled sales for the event.
func (r *SaleRepo) CountByEvent(eventID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Sale{}).
		Where("event_id = ? AND is_cancelled = ?", eventID, false).
		Count(&count).Error
	return count, err
}

// TotalAmountByEvent sums paid, non-cancelled totals.
func (r *SaleRepo) TotalAmountByEvent(eventID uint) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.Model(&models.Sale{}).
		Where("event_id = ? AND is_cancelled = ? AND is_paid = ?", eventID, false, true).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&total).Error
	return total, err
}

func (r *SaleRepo) PaymentMethodSummaryByEvent(eventID uint) ([]PaymentMethodSummary, error) {
	var rows []PaymentMethodSummary
	err := r.db.Model(&models.Sale{}).
		Select("payment_method, COUNT(*) AS count, COALESCE(SUM(total_amount), 0) AS total").
		Where("event_id = ? AND is_cancelled = ?", eventID, false).
		Group("payment_method").
		Scan(&rows).Error
	return rows, err
}

// TopProductsByEvent ranks products by quantity sold on the event,
// cancelled sales excluded.
func (r *SaleRepo) TopProductsByEvent(eventID uint, limit int) ([]ItemSales, error) {
	var rows []ItemSales
	err := r.db.Table("sale_items").
		Select("products.name AS name, SUM(sale_items.quantity) AS quantity").
		Joins("JOIN sales ON sales.id = sale_items.sale_id").
		Joins("JOIN products ON products.id = sale_items.product_id").
		Where("sales.event_id = ? AND sales.is_cancelled = ?", eventID, false).
		Group("products.id, products.name").
		Order("quantity desc").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (r *SaleRepo) TopVariantsByEvent(eventID uint, limit int) ([]ItemSales, error) {
	var rows []ItemSales
	err := r.db.Table("sale_items").
		Select("product_variants.variant_name AS name, SUM(sale_items.quantity) AS quantity").
		Joins("JOIN sales ON sales.id = sale_items.sale_id").
		Joins("JOIN product_variants ON product_variants.id = sale_items.variant_id").
		Where("sales.event_id = ? AND sales.is_cancelled = ? AND sale_items.variant_id IS NOT NULL",
			eventID, false).
		Group("product_variants.id, product_variants.variant_name").
		Order("quantity desc").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (r *SaleRepo) BrandSummaryByEvent(eventID uint) ([]BrandSummary, error) {
	var rows []BrandSummary
	err := r.db.Table("sale_items").
		Select("products.brand AS brand, COUNT(DISTINCT sales.id) AS sale_count, "+
			"COALESCE(SUM(sale_items.total_price), 0) AS amount, SUM(sale_items.quantity) AS quantity").
		Joins("JOIN sales ON sales.id = sale_items.sale_id").
		Joins("JOIN products ON products.id = sale_items.product_id").
		Where("sales.event_id = ? AND sales.is_cancelled = ?", eventID, false).
		Group("products.brand").
		Scan(&rows).Error
	return rows, err
}

// BrandPaymentSummaryByEvent needs the inner DISTINCT so a sale with
// several items of the same brand contributes its total only once.
func (r *SaleRepo) BrandPaymentSummaryByEvent(eventID uint) ([]BrandPaymentSummary, error) {
	var rows []BrandPaymentSummary
	sub := r.db.Table("sale_items").
		Select("DISTINCT products.brand AS brand, sales.id AS sale_id, "+
			"sales.payment_method AS payment_method, sales.total_amount AS total_amount").
		Joins("JOIN sales ON sales.id = sale_items.sale_id").
		Joins("JOIN products ON products.id = sale_items.product_id").
		Where("sales.event_id = ? AND sales.is_cancelled = ?", eventID, false)
	err := r.db.Table("(?) AS brand_sales", sub).
		Select("brand, payment_method, COUNT(*) AS count, COALESCE(SUM(total_amount), 0) AS total").
		Group("brand, payment_method").
		Scan(&rows).Error
	return rows, err
}

// RevenueBetween reports revenue and sale count for a date range,
// cancelled sales excluded.
func (r *SaleRepo) RevenueBetween(start, end time.Time) (decimal.Decimal, int64, error) {
	var revenue decimal.Decimal
	err := r.db.Model(&models.Sale{}).
		Where("sale_date BETWEEN ? AND ? AND is_cancelled = ?", start, end, false).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&revenue).Error
	if err != nil {
		return decimal.Zero, 0, err
	}
	var count int64
	err = r.db.Model(&models.Sale{}).
		Where("sale_date BETWEEN ? AND ? AND is_cancelled = ?", start, end, false).
		Count(&count).Error
	return revenue, count, err
}
