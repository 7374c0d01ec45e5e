package repository

import (
	"inventory-pos/internal/models"

	"gorm.io/gorm"
)

type CatalogRepo struct {
	db *gorm.DB
}

func NewCatalogRepo(db *gorm.DB) *CatalogRepo {
	return &CatalogRepo{db: db}
}

func (r *CatalogRepo) FindByKind(kind string) ([]models.CatalogEntry, error) {
	var entries []models.CatalogEntry
	err := r.db.Where("kind = ?", kind).Order("value asc").Find(&entries).Error
	return entries, err
}

func (r *CatalogRepo) FindByKindAndNormalized(kind, normalized string) (*models.CatalogEntry, error) {
	var entry models.CatalogEntry
	err := r.db.Where("kind = ? AND normalized = ?", kind, normalized).First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *CatalogRepo) Create(entry *models.CatalogEntry) error {
	return r.db.Create(entry).Error
}
