package repository

import (
	"inventory-pos/internal/models"

	"gorm.io/gorm"
)

type VariantRepo struct {
	db *gorm.DB
}

func NewVariantRepo(db *gorm.DB) *VariantRepo {
	return &VariantRepo{db: db}
}

func (r *VariantRepo) FindAll() ([]models.ProductVariant, error) {
	var variants []models.ProductVariant
	err := r.db.Preload("Product").Find(&variants).Error
	return variants, err
}

func (r *VariantRepo) FindByID(id uint) (*models.ProductVariant, error) {
	var variant models.ProductVariant
	if err := r.db.Preload("Product").First(&variant, id).Error; err != nil {
		return nil, err
	}
	return &variant, nil
}

func (r *VariantRepo) FindByProductID(productID uint) ([]models.ProductVariant, error) {
	var variants []models.ProductVariant
	err := r.db.Preload("Product").Where("product_id = ?", productID).Find(&variants).Error
	return variants, err
}

func (r *VariantRepo) FindActiveByProductID(productID uint) ([]models.ProductVariant, error) {
	var variants []models.ProductVariant
	err := r.db.Preload("Product").
		Where("product_id = ? AND is_active = ?", productID, true).
		Find(&variants).Error
	return variants, err
}

func (r *VariantRepo) FindInStock() ([]models.ProductVariant, error) {
	var variants []models.ProductVariant
	err := r.db.Preload("Product").Where("stock > 0 AND is_active = ?", true).Find(&variants).Error
	return variants, err
}

func (r *VariantRepo) FindLowStock() ([]models.ProductVariant, error) {
	var variants []models.ProductVariant
	err := r.db.Preload("Product").
		Where("stock <= ? AND is_active = ?", LowStockThreshold, true).
		Find(&variants).Error
	return variants, err
}

func (r *VariantRepo) FindByColor(color string) ([]models.ProductVariant, error) {
	var variants []models.ProductVariant
	err := r.db.Preload("Product").Where("LOWER(color) = LOWER(?)", color).Find(&variants).Error
	return variants, err
}

func (r *VariantRepo) FindByDesign(design string) ([]models.ProductVariant, error) {
	var variants []models.ProductVariant
	err := r.db.Preload("Product").
		Where("LOWER(design) LIKE LOWER(?)", "%"+design+"%").
		Find(&variants).Error
	return variants, err
}

func (r *VariantRepo) DistinctColors() ([]string, error) {
	var colors []string
	err := r.db.Model(&models.ProductVariant{}).
		Where("color <> '' AND is_active = ?", true).
		Distinct("color").
		Pluck("color", &colors).Error
	return colors, err
}

func (r *VariantRepo) DistinctDesigns() ([]string, error) {
	var designs []string
	err := r.db.Model(&models.ProductVariant{}).
		Where("design <> '' AND is_active = ?", true).
		Distinct("design").
		Pluck("design", &designs).Error
	return designs, err
}

func (r *VariantRepo) Save(variant *models.ProductVariant) error {
	return r.db.Omit("Product").Save(variant).Error
}

func (r *VariantRepo) Delete(id uint) error {
	return r.db.Delete(&models.ProductVariant{}, id).Error
}

func (r *VariantRepo) SetActive(id uint, active bool) error {
	return r.db.Model(&models.ProductVariant{}).Where("id = ?", id).Update("is_active", active).Error
}

func (r *VariantRepo) UpdateStock(id uint, stock int) error {
	return r.db.Model(&models.ProductVariant{}).Where("id = ?", id).Update("stock", stock).Error
}

// ReduceStock mirrors ProductRepo.ReduceStock: conditional atomic
// decrement, zero rows on miss or insufficiency.
func (r *VariantRepo) ReduceStock(id uint, quantity int) (int64, error) {
	res := r.db.Model(&models.ProductVariant{}).
		Where("id = ? AND stock >= ?", id, quantity).
		Update("stock", gorm.Expr("stock - ?", quantity))
	return res.RowsAffected, res.Error
}
