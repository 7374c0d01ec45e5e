package service

import (
	"strings"
	"time"

	"inventory-pos/internal/models"
	"inventory-pos/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type SaleService struct {
	db       *gorm.DB
	sales    *repository.SaleRepo
	items    *repository.SaleItemRepo
	events   *repository.EventRepo
	catalogs *CatalogService
}

func NewSaleService(db *gorm.DB, sales *repository.SaleRepo, items *repository.SaleItemRepo,
	events *repository.EventRepo, catalogs *CatalogService) *SaleService {
	return &SaleService{db: db, sales: sales, items: items, events: events, catalogs: catalogs}
}

func (s *SaleService) FindAll() ([]models.Sale, error) {
	return s.sales.FindAll()
}

func (s *SaleService) FindByID(id uint) (*models.Sale, error) {
	sale, err := s.sales.FindByID(id)
	if err != nil {
		return nil, notFound(err, "sale", id)
	}
	return sale, nil
}

func (s *SaleService) FindByEventID(eventID uint) ([]models.Sale, error) {
	return s.sales.FindByEventID(eventID)
}

func (s *SaleService) FindActiveByEventID(eventID uint) ([]models.Sale, error) {
	return s.sales.FindActiveByEventID(eventID)
}

func (s *SaleService) FindUnpaid() ([]models.Sale, error) {
	return s.sales.FindUnpaid()
}

func (s *SaleService) FindByPaymentMethod(method string) ([]models.Sale, error) {
	return s.sales.FindByPaymentMethod(method)
}

func (s *SaleService) FindBetweenDates(start, end time.Time) ([]models.Sale, error) {
	return s.sales.FindBetweenDates(start, end)
}

func (s *SaleService) FindEventSalesBetweenDates(eventID uint, start, end time.Time) ([]models.Sale, error) {
	return s.sales.FindEventSalesBetweenDates(eventID, start, end)
}

func (s *SaleService) SearchByCustomer(term string) ([]models.Sale, error) {
	return s.sales.SearchByCustomer(term)
}

func (s *SaleService) ItemsBySaleID(saleID uint) ([]models.SaleItem, error) {
	return s.items.FindBySaleID(saleID)
}

func (s *SaleService) ItemsWithPersonalization() ([]models.SaleItem, error) {
	return s.items.FindWithPersonalization()
}

func (s *SaleService) QuantitySoldByProduct(productID uint) (int64, error) {
	return s.items.QuantitySoldByProduct(productID)
}

func (s *SaleService) QuantitySoldByVariant(variantID uint) (int64, error) {
	return s.items.QuantitySoldByVariant(variantID)
}

func (s *SaleService) validateSale(sale *models.Sale, event *models.Event) error {
	if strings.TrimSpace(sale.PaymentMethod) == "" {
		return validationErrorf("payment method cannot be blank")
	}
	if sale.DiscountAmount.IsNegative() {
		return validationErrorf("discount amount cannot be negative")
	}
	if sale.TaxAmount.IsNegative() {
		return validationErrorf("tax amount cannot be negative")
	}
	if !event.CoversDate(sale.SaleDate) {
		return validationErrorf("sale date must fall within the event dates")
	}
	return nil
}

func validateItems(items []models.SaleItem) error {
	if len(items) == 0 {
		return validationErrorf("sale must have at least one item")
	}
	for i := range items {
		it := &items[i]
		if it.ProductID == 0 {
			return validationErrorf("sale item must reference a product")
		}
		if it.Quantity <= 0 {
			return validationErrorf("item quantity must be greater than zero")
		}
		if it.UnitPrice.IsNegative() {
			return validationErrorf("item unit price cannot be negative")
		}
		if it.TotalPrice.IsNegative() {
			return validationErrorf("item total price cannot be negative")
		}
		if it.PersonalizationCost.IsNegative() {
			return validationErrorf("personalization cost cannot be negative")
		}
		if it.ItemDiscount.IsNegative() {
			return validationErrorf("item discount cannot be negative")
		}
	}
	return nil
}

// SaveWithItems persists a sale and its line items in one transaction.
// The header total is always recomputed from the items, so a client
// cannot submit a total that disagrees with its lines. When
// reduceStock is set, stock is decremented inside the same transaction
// with a conditional update per line (variant stock when the line has
// a variant, product stock otherwise); any shortage rolls back the
// whole sale. The sale's IsPaid field is taken as-is; callers default
// it to true for ordinary checkouts.
func (s *SaleService) SaveWithItems(sale *models.Sale, items []models.SaleItem, reduceStock bool) (*models.Sale, error) {
	event, err := s.events.FindByID(sale.EventID)
	if err != nil {
		return nil, notFound(err, "event", sale.EventID)
	}
	if err := s.validateSale(sale, event); err != nil {
		return nil, err
	}
	if err := validateItems(items); err != nil {
		return nil, err
	}

	total := decimal.Zero
	for i := range items {
		total = total.Add(items[i].TotalPrice)
	}
	sale.TotalAmount = total

	if sale.Receipt == "" {
		sale.Receipt = uuid.NewString()
	}
	if _, err := s.catalogs.AddIfAbsent(models.CatalogPaymentMethod, sale.PaymentMethod); err != nil {
		return nil, err
	}

	// Create skips zero-value fields that carry a column default and
	// back-fills the struct with the default afterwards, so the unpaid
	// intent must be captured before the insert.
	isPaid := sale.IsPaid

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Items").Create(sale).Error; err != nil {
			return err
		}
		if !isPaid {
			if err := tx.Model(sale).Update("is_paid", false).Error; err != nil {
				return err
			}
			sale.IsPaid = false
		}
		for i := range items {
			items[i].ID = 0
			items[i].SaleID = sale.ID
			if err := tx.Omit("Product", "Variant").Create(&items[i]).Error; err != nil {
				return err
			}
			if reduceStock {
				if err := reduceItemStock(tx, &items[i]); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sale.Items = items
	return sale, nil
}

// reduceItemStock runs the conditional decrement for one line inside
// the caller's transaction. A zero-row update means the stock guard
// failed or the row is gone; re-read to tell the two apart.
func reduceItemStock(tx *gorm.DB, item *models.SaleItem) error {
	if item.VariantID != nil {
		res := tx.Model(&models.ProductVariant{}).
			Where("id = ? AND stock >= ?", *item.VariantID, item.Quantity).
			Update("stock", gorm.Expr("stock - ?", item.Quantity))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			var variant models.ProductVariant
			if err := tx.First(&variant, *item.VariantID).Error; err != nil {
				return notFound(err, "variant", *item.VariantID)
			}
			return &InsufficientStockError{
				Name:      variant.VariantName,
				Available: variant.Stock,
				Requested: item.Quantity,
			}
		}
		return nil
	}

	res := tx.Model(&models.Product{}).
		Where("id = ? AND stock >= ?", item.ProductID, item.Quantity).
		Update("stock", gorm.Expr("stock - ?", item.Quantity))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var product models.Product
		if err := tx.First(&product, item.ProductID).Error; err != nil {
			return notFound(err, "product", item.ProductID)
		}
		return &InsufficientStockError{
			Name:      product.Name,
			Available: product.Stock,
			Requested: item.Quantity,
		}
	}
	return nil
}

// Save updates a sale header without touching its items.
func (s *SaleService) Save(sale *models.Sale) error {
	event, err := s.events.FindByID(sale.EventID)
	if err != nil {
		return notFound(err, "event", sale.EventID)
	}
	if err := s.validateSale(sale, event); err != nil {
		return err
	}
	if sale.TotalAmount.IsNegative() {
		return validationErrorf("total amount cannot be negative")
	}
	return s.sales.Save(sale)
}

// CancelSale marks the sale cancelled. Stock already decremented for
// the sale stays decremented; restocking is a deliberate manual step.
func (s *SaleService) CancelSale(id uint) (*models.Sale, error) {
	return s.setFlags(id, func(sale *models.Sale) {
		sale.IsCancelled = true
	})
}

func (s *SaleService) MarkAsPaid(id uint) (*models.Sale, error) {
	return s.setFlags(id, func(sale *models.Sale) {
		sale.IsPaid = true
	})
}

func (s *SaleService) MarkAsUnpaid(id uint) (*models.Sale, error) {
	return s.setFlags(id, func(sale *models.Sale) {
		sale.IsPaid = false
	})
}

func (s *SaleService) setFlags(id uint, mutate func(*models.Sale)) (*models.Sale, error) {
	sale, err := s.FindByID(id)
	if err != nil {
		return nil, err
	}
	mutate(sale)
	if err := s.sales.Save(sale); err != nil {
		return nil, err
	}
	return sale, nil
}

func (s *SaleService) Delete(id uint) error {
	if _, err := s.FindByID(id); err != nil {
		return err
	}
	return s.sales.Delete(id)
}

const topSellerLimit = 5

// EventStatistics is the aggregate report for one event.
type EventStatistics struct {
	TotalSales     int64                             `json:"total_sales"`
	TotalAmount    decimal.Decimal                   `json:"total_amount"`
	PaymentMethods []repository.PaymentMethodSummary `json:"payment_methods"`
	TopProducts    []repository.ItemSales            `json:"top_products"`
	TopVariants    []repository.ItemSales            `json:"top_variants"`
}

// BrandStatistics is one brand's slice of an event's sales.
type BrandStatistics struct {
	TotalSales     int64                             `json:"total_sales"`
	TotalAmount    decimal.Decimal                   `json:"total_amount"`
	TotalQuantity  int64                             `json:"total_quantity"`
	PaymentMethods []repository.PaymentMethodSummary `json:"payment_methods"`
}

// EventStatistics builds the per-event report from aggregate queries;
// cancelled sales are excluded throughout.
func (s *SaleService) EventStatistics(eventID uint) (*EventStatistics, error) {
	if _, err := s.events.FindByID(eventID); err != nil {
		return nil, notFound(err, "event", eventID)
	}
	count, err := s.sales.CountByEvent(eventID)
	if err != nil {
		return nil, err
	}
	total, err := s.sales.TotalAmountByEvent(eventID)
	if err != nil {
		return nil, err
	}
	methods, err := s.sales.PaymentMethodSummaryByEvent(eventID)
	if err != nil {
		return nil, err
	}
	products, err := s.sales.TopProductsByEvent(eventID, topSellerLimit)
	if err != nil {
		return nil, err
	}
	variants, err := s.sales.TopVariantsByEvent(eventID, topSellerLimit)
	if err != nil {
		return nil, err
	}
	return &EventStatistics{
		TotalSales:     count,
		TotalAmount:    total,
		PaymentMethods: methods,
		TopProducts:    products,
		TopVariants:    variants,
	}, nil
}

// EventStatisticsByBrand merges the brand totals with the brand
// payment breakdown into one report keyed by brand name.
func (s *SaleService) EventStatisticsByBrand(eventID uint) (map[string]*BrandStatistics, error) {
	if _, err := s.events.FindByID(eventID); err != nil {
		return nil, notFound(err, "event", eventID)
	}
	summaries, err := s.sales.BrandSummaryByEvent(eventID)
	if err != nil {
		return nil, err
	}
	payments, err := s.sales.BrandPaymentSummaryByEvent(eventID)
	if err != nil {
		return nil, err
	}

	stats := make(map[string]*BrandStatistics, len(summaries))
	for _, row := range summaries {
		stats[row.Brand] = &BrandStatistics{
			TotalSales:    row.SaleCount,
			TotalAmount:   row.Amount,
			TotalQuantity: row.Quantity,
		}
	}
	for _, row := range payments {
		brand, ok := stats[row.Brand]
		if !ok {
			continue
		}
		brand.PaymentMethods = append(brand.PaymentMethods, repository.PaymentMethodSummary{
			Method: row.Method,
			Count:  row.Count,
			Total:  row.Total,
		})
	}
	return stats, nil
}

// SalesReport totals revenue and sale count for a date range.
type SalesReport struct {
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	TotalSales   int64           `json:"total_sales"`
}

func (s *SaleService) RevenueBetween(start, end time.Time) (*SalesReport, error) {
	revenue, count, err := s.sales.RevenueBetween(start, end)
	if err != nil {
		return nil, err
	}
	return &SalesReport{TotalRevenue: revenue, TotalSales: count}, nil
}
