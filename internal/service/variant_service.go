package service

import (
	"strings"

	"inventory-pos/internal/models"
	"inventory-pos/internal/repository"
)

type VariantService struct {
	variants *repository.VariantRepo
	catalogs *CatalogService
}

func NewVariantService(variants *repository.VariantRepo, catalogs *CatalogService) *VariantService {
	return &VariantService{variants: variants, catalogs: catalogs}
}

func (s *VariantService) FindAll() ([]models.ProductVariant, error) {
	return s.variants.FindAll()
}

func (s *VariantService) FindByID(id uint) (*models.ProductVariant, error) {
	variant, err := s.variants.FindByID(id)
	if err != nil {
		return nil, notFound(err, "variant", id)
	}
	return variant, nil
}

func (s *VariantService) FindByProductID(productID uint) ([]models.ProductVariant, error) {
	return s.variants.FindByProductID(productID)
}

func (s *VariantService) FindActiveByProductID(productID uint) ([]models.ProductVariant, error) {
	return s.variants.FindActiveByProductID(productID)
}

func (s *VariantService) FindInStock() ([]models.ProductVariant, error) {
	return s.variants.FindInStock()
}

func (s *VariantService) FindLowStock() ([]models.ProductVariant, error) {
	return s.variants.FindLowStock()
}

func (s *VariantService) FindByColor(color string) ([]models.ProductVariant, error) {
	return s.variants.FindByColor(color)
}

func (s *VariantService) FindByDesign(design string) ([]models.ProductVariant, error) {
	return s.variants.FindByDesign(design)
}

func (s *VariantService) DistinctColors() ([]string, error) {
	return s.variants.DistinctColors()
}

func (s *VariantService) DistinctDesigns() ([]string, error) {
	return s.variants.DistinctDesigns()
}

func (s *VariantService) Save(variant *models.ProductVariant) error {
	if strings.TrimSpace(variant.VariantName) == "" {
		return validationErrorf("variant name cannot be blank")
	}
	if variant.ProductID == 0 {
		return validationErrorf("variant must reference a product")
	}
	if variant.Stock < 0 {
		return validationErrorf("variant stock cannot be negative")
	}

	if variant.Size != "" {
		if _, err := s.catalogs.AddIfAbsent(models.CatalogSize, variant.Size); err != nil {
			return err
		}
	}
	return s.variants.Save(variant)
}

func (s *VariantService) Delete(id uint) error {
	return s.variants.Delete(id)
}

func (s *VariantService) SetActive(id uint, active bool) (*models.ProductVariant, error) {
	if err := s.variants.SetActive(id, active); err != nil {
		return nil, err
	}
	return s.FindByID(id)
}

func (s *VariantService) UpdateStock(id uint, stock int) (*models.ProductVariant, error) {
	if stock < 0 {
		return nil, validationErrorf("stock cannot be negative")
	}
	if err := s.variants.UpdateStock(id, stock); err != nil {
		return nil, err
	}
	return s.FindByID(id)
}

func (s *VariantService) ReduceStock(id uint, quantity int) (*models.ProductVariant, error) {
	if quantity <= 0 {
		return nil, validationErrorf("quantity must be greater than zero")
	}
	rows, err := s.variants.ReduceStock(id, quantity)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		variant, err := s.variants.FindByID(id)
		if err != nil {
			return nil, notFound(err, "variant", id)
		}
		return nil, &InsufficientStockError{
			Name:      variant.VariantName,
			Available: variant.Stock,
			Requested: quantity,
		}
	}
	return s.FindByID(id)
}
