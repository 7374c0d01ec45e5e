package repository

import (
	"inventory-pos/internal/models"

	"gorm.io/gorm"
)

// LowStockThreshold marks products and variants that need restocking.
const LowStockThreshold = 5

type ProductRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) *ProductRepo {
	return &ProductRepo{db: db}
}

func (r *ProductRepo) FindAll() ([]models.Product, error) {
	var products []models.Product
	err := r.db.Order("name asc").Find(&products).Error
	return products, err
}

func (r *ProductRepo) FindByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepo) FindByCategory(category string) ([]models.Product, error) {
	var products []models.Product
	err := r.db.Where("category = ?", category).Find(&products).Error
	return products, err
}

func (r *ProductRepo) FindByBrand(brand string) ([]models.Product, error) {
	var products []models.Product
	err := r.db.Where("brand = ?", brand).Find(&products).Error
	return products, err
}

func (r *ProductRepo) SearchByName(name string) ([]models.Product, error) {
	var products []models.Product
	err := r.db.Where("LOWER(name) LIKE LOWER(?)", "%"+name+"%").Find(&products).Error
	return products, err
}

func (r *ProductRepo) FindInStock() ([]models.Product, error) {
	var products []models.Product
	err := r.db.Where("stock > 0").Find(&products).Error
	return products, err
}

func (r *ProductRepo) FindLowStock() ([]models.Product, error) {
	var products []models.Product
	err := r.db.Where("stock <= ?", LowStockThreshold).Find(&products).Error
	return products, err
}

func (r *ProductRepo) Save(product *models.Product) error {
	return r.db.Save(product).Error
}

func (r *ProductRepo) Delete(id uint) error {
	return r.db.Delete(&models.Product{}, id).Error
}

// UpdateStock overwrites the stock counter unconditionally. No row
// count is returned: MySQL reports changed rows rather than matched
// rows, so a write of the current value looks identical to a missing
// id. Callers re-read to check existence.
func (r *ProductRepo) UpdateStock(id uint, stock int) error {
	return r.db.Model(&models.Product{}).Where("id = ?", id).Update("stock", stock).Error
}

// ReduceStock decrements atomically and only when enough stock remains,
// so concurrent checkouts cannot oversell. Zero rows affected means the
// product is missing or the stock was insufficient; the count is
// reliable here because a positive quantity always changes the row.
func (r *ProductRepo) ReduceStock(id uint, quantity int) (int64, error) {
	res := r.db.Model(&models.Product{}).
		Where("id = ? AND stock >= ?", id, quantity).
		Update("stock", gorm.Expr("stock - ?", quantity))
	return res.RowsAffected, res.Error
}
