package service

import (
	"strings"

	"inventory-pos/internal/models"
	"inventory-pos/internal/repository"
)

type ProductService struct {
	products *repository.ProductRepo
	catalogs *CatalogService
}

func NewProductService(products *repository.ProductRepo, catalogs *CatalogService) *ProductService {
	return &ProductService{products: products, catalogs: catalogs}
}

func (s *ProductService) FindAll() ([]models.Product, error) {
	return s.products.FindAll()
}

func (s *ProductService) FindByID(id uint) (*models.Product, error) {
	product, err := s.products.FindByID(id)
	if err != nil {
		return nil, notFound(err, "product", id)
	}
	return product, nil
}

func (s *ProductService) FindByCategory(category string) ([]models.Product, error) {
	return s.products.FindByCategory(category)
}

func (s *ProductService) FindByBrand(brand string) ([]models.Product, error) {
	return s.products.FindByBrand(brand)
}

func (s *ProductService) Search(name string) ([]models.Product, error) {
	return s.products.SearchByName(name)
}

func (s *ProductService) FindInStock() ([]models.Product, error) {
	return s.products.FindInStock()
}

func (s *ProductService) FindLowStock() ([]models.Product, error) {
	return s.products.FindLowStock()
}

// Save validates and persists, and feeds the category the user typed
// into the category vocabulary so it shows up as a suggestion next
// time.
func (s *ProductService) Save(product *models.Product) error {
	if strings.TrimSpace(product.Name) == "" {
		return validationErrorf("product name cannot be blank")
	}
	if product.Price.IsNegative() {
		return validationErrorf("product price cannot be negative")
	}
	if product.WholesalePrice.IsNegative() {
		return validationErrorf("wholesale price cannot be negative")
	}
	if product.Stock < 0 {
		return validationErrorf("product stock cannot be negative")
	}

	if product.Category != "" {
		if _, err := s.catalogs.AddIfAbsent(models.CatalogCategory, product.Category); err != nil {
			return err
		}
	}
	return s.products.Save(product)
}

func (s *ProductService) Delete(id uint) error {
	return s.products.Delete(id)
}

// UpdateStock is the unconditional overwrite used by inventory
// adjustment forms. Existence comes from the re-read, not the affected
// count: writing the current value affects zero rows on MySQL.
func (s *ProductService) UpdateStock(id uint, stock int) (*models.Product, error) {
	if stock < 0 {
		return nil, validationErrorf("stock cannot be negative")
	}
	if err := s.products.UpdateStock(id, stock); err != nil {
		return nil, err
	}
	return s.FindByID(id)
}

// ReduceStock decrements atomically; when the conditional update
// touches no row, the re-read decides between a missing product and an
// insufficiency, leaving the counter untouched either way.
func (s *ProductService) ReduceStock(id uint, quantity int) (*models.Product, error) {
	if quantity <= 0 {
		return nil, validationErrorf("quantity must be greater than zero")
	}
	rows, err := s.products.ReduceStock(id, quantity)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		product, err := s.products.FindByID(id)
		if err != nil {
			return nil, notFound(err, "product", id)
		}
		return nil, &InsufficientStockError{
			Name:      product.Name,
			Available: product.Stock,
			Requested: quantity,
		}
	}
	return s.FindByID(id)
}
