package repository

import (
	"inventory-pos/internal/models"

	"gorm.io/gorm"
)

type SaleItemRepo struct {
	db *gorm.DB
}

func NewSaleItemRepo(db *gorm.DB) *SaleItemRepo {
	return &SaleItemRepo{db: db}
}

func (r *SaleItemRepo) FindBySaleID(saleID uint) ([]models.SaleItem, error) {
	var items []models.SaleItem
	err := r.db.Preload("Product").
		Preload("Variant").
		Preload("Variant.Product").
		Where("sale_id = ?", saleID).
		Find(&items).Error
	return items, err
}

func (r *SaleItemRepo) FindByProductID(productID uint) ([]models.SaleItem, error) {
	var items []models.SaleItem
	err := r.db.Preload("Product").Where("product_id = ?", productID).Find(&items).Error
	return items, err
}

func (r *SaleItemRepo) FindByVariantID(variantID uint) ([]models.SaleItem, error) {
	var items []models.SaleItem
	err := r.db.Preload("Variant").Where("variant_id = ?", variantID).Find(&items).Error
	return items, err
}

func (r *SaleItemRepo) FindWithPersonalization() ([]models.SaleItem, error) {
	var items []models.SaleItem
	err := r.db.Preload("Product").Where("personalization <> ''").Find(&items).Error
	return items, err
}

// QuantitySoldByProduct sums units sold across non-cancelled sales.
func (r *SaleItemRepo) QuantitySoldByProduct(productID uint) (int64, error) {
	var total int64
	err := r.db.Table("sale_items").
		Select("COALESCE(SUM(sale_items.quantity), 0)").
		Joins("JOIN sales ON sales.id = sale_items.sale_id").
		Where("sale_items.product_id = ? AND sales.is_cancelled = ?", productID, false).
		Scan(&total).Error
	return total, err
}

func (r *SaleItemRepo) QuantitySoldByVariant(variantID uint) (int64, error) {
	var total int64
	err := r.db.Table("sale_items").
		Select("COALESCE(SUM(sale_items.quantity), 0)").
		Joins("JOIN sales ON sales.id = sale_items.sale_id").
		Where("sale_items.variant_id = ? AND sales.is_cancelled = ?", variantID, false).
		Scan(&total).Error
	return total, err
}

func (r *SaleItemRepo) Save(item *models.SaleItem) error {
	return r.db.Omit("Product", "Variant").Save(item).Error
}

func (r *SaleItemRepo) Delete(id uint) error {
	return r.db.Delete(&models.SaleItem{}, id).Error
}
