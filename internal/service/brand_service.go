package service

import (
	"errors"
	"strings"

	"inventory-pos/internal/models"
	"inventory-pos/internal/repository"

	"gorm.io/gorm"
)

type BrandService struct {
	brands *repository.BrandRepo
}

func NewBrandService(brands *repository.BrandRepo) *BrandService {
	return &BrandService{brands: brands}
}

func (s *BrandService) FindAll() ([]models.Brand, error) {
	return s.brands.FindAll()
}

func (s *BrandService) FindActive() ([]models.Brand, error) {
	return s.brands.FindActive()
}

func (s *BrandService) FindByID(id uint) (*models.Brand, error) {
	brand, err := s.brands.FindByID(id)
	if err != nil {
		return nil, notFound(err, "brand", id)
	}
	return brand, nil
}

func (s *BrandService) FindByName(name string) (*models.Brand, error) {
	brand, err := s.brands.FindByName(name)
	if err != nil {
		return nil, notFound(err, "brand", 0)
	}
	return brand, nil
}

func (s *BrandService) Search(query string) ([]models.Brand, error) {
	return s.brands.Search(query)
}

func (s *BrandService) Save(brand *models.Brand) error {
	if strings.TrimSpace(brand.Name) == "" {
		return validationErrorf("brand name cannot be blank")
	}
	existing, err := s.brands.FindByName(brand.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if existing != nil && existing.ID != brand.ID {
		return validationErrorf("brand %q already exists", brand.Name)
	}
	return s.brands.Save(brand)
}

// Brands are never hard-deleted; deactivation hides them from pickers
// while Product.Brand strings keep pointing at the name.
func (s *BrandService) Deactivate(id uint) (*models.Brand, error) {
	return s.setActive(id, false)
}

func (s *BrandService) Activate(id uint) (*models.Brand, error) {
	return s.setActive(id, true)
}

func (s *BrandService) setActive(id uint, active bool) (*models.Brand, error) {
	if err := s.brands.SetActive(id, active); err != nil {
		return nil, err
	}
	return s.FindByID(id)
}

// EnsureDefaults seeds the house brands on an empty table.
func (s *BrandService) EnsureDefaults() error {
	count, err := s.brands.Count()
	if err != nil || count > 0 {
		return err
	}
	defaults := []models.Brand{
		{Name: "Perro Amor", Description: "Main pet accessory line"},
		{Name: "Perra Madre", Description: "Premium accessory line"},
	}
	for i := range defaults {
		if err := s.brands.Save(&defaults[i]); err != nil {
			return err
		}
	}
	return nil
}
