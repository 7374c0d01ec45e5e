package repository

import (
	"inventory-pos/internal/models"

	"gorm.io/gorm"
)

type BrandRepo struct {
	db *gorm.DB
}

func NewBrandRepo(db *gorm.DB) *BrandRepo {
	return &BrandRepo{db: db}
}

func (r *BrandRepo) FindAll() ([]models.Brand, error) {
	var brands []models.Brand
	err := r.db.Order("name asc").Find(&brands).Error
	return brands, err
}

func (r *BrandRepo) FindActive() ([]models.Brand, error) {
	var brands []models.Brand
	err := r.db.Where("is_active = ?", true).Order("name asc").Find(&brands).Error
	return brands, err
}

func (r *BrandRepo) FindByID(id uint) (*models.Brand, error) {
	var brand models.Brand
	if err := r.db.First(&brand, id).Error; err != nil {
		return nil, err
	}
	return &brand, nil
}

func (r *BrandRepo) FindByName(name string) (*models.Brand, error) {
	var brand models.Brand
	if err := r.db.Where("name = ?", name).First(&brand).Error; err != nil {
		return nil, err
	}
	return &brand, nil
}

func (r *BrandRepo) Search(query string) ([]models.Brand, error) {
	var brands []models.Brand
	err := r.db.Where("LOWER(name) LIKE LOWER(?) AND is_active = ?", "%"+query+"%", true).
		Order("name asc").
		Find(&brands).Error
	return brands, err
}

func (r *BrandRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Brand{}).Count(&count).Error
	return count, err
}

func (r *BrandRepo) Save(brand *models.Brand) error {
	return r.db.Save(brand).Error
}

func (r *BrandRepo) SetActive(id uint, active bool) error {
	return r.db.Model(&models.Brand{}).Where("id = ?", id).Update("is_active", active).Error
}
