package service

import (
	"testing"

	"inventory-pos/internal/models"
	"inventory-pos/internal/repository"

	"github.com/stretchr/testify/require"
)

func TestProductSaveValidation(t *testing.T) {
	db := newTestDB(t)
	catalogs := NewCatalogService(repository.NewCatalogRepo(db))
	svc := NewProductService(repository.NewProductRepo(db), catalogs)

	cases := []struct {
		name    string
		product models.Product
	}{
		{"blank name", models.Product{Name: "  ", Price: money("10.00")}},
		{"negative price", models.Product{Name: "Collar", Price: money("-1.00")}},
		{"negative wholesale", models.Product{Name: "Collar", Price: money("10.00"), WholesalePrice: money("-1.00")}},
		{"negative stock", models.Product{Name: "Collar", Price: money("10.00"), Stock: -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := svc.Save(&tc.product)
			var validation *ValidationError
			require.ErrorAs(t, err, &validation)
		})
	}
}

func TestProductSaveFeedsCategoryVocabulary(t *testing.T) {
	db := newTestDB(t)
	catalogs := NewCatalogService(repository.NewCatalogRepo(db))
	svc := NewProductService(repository.NewProductRepo(db), catalogs)

	product := models.Product{Name: "Collar Luna", Price: money("50.00"), Category: "Collares", Brand: "Perro Amor"}
	require.NoError(t, svc.Save(&product))

	values, err := catalogs.Values(models.CatalogCategory)
	require.NoError(t, err)
	require.Equal(t, []string{"Collares"}, values)
}

func TestProductUpdateStock(t *testing.T) {
	db := newTestDB(t)
	catalogs := NewCatalogService(repository.NewCatalogRepo(db))
	svc := NewProductService(repository.NewProductRepo(db), catalogs)
	product := createProduct(t, db, "Collar", "Perro Amor", money("50.00"), 10)

	updated, err := svc.UpdateStock(product.ID, 25)
	require.NoError(t, err)
	require.Equal(t, 25, updated.Stock)

	// resubmitting the current value is not a miss
	same, err := svc.UpdateStock(product.ID, 25)
	require.NoError(t, err)
	require.Equal(t, 25, same.Stock)

	_, err = svc.UpdateStock(product.ID, -1)
	var validation *ValidationError
	require.ErrorAs(t, err, &validation)

	_, err = svc.UpdateStock(9999, 5)
	var notFoundErr *NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
}

func TestProductReduceStock(t *testing.T) {
	db := newTestDB(t)
	catalogs := NewCatalogService(repository.NewCatalogRepo(db))
	svc := NewProductService(repository.NewProductRepo(db), catalogs)
	product := createProduct(t, db, "Collar", "Perro Amor", money("50.00"), 10)

	updated, err := svc.ReduceStock(product.ID, 4)
	require.NoError(t, err)
	require.Equal(t, 6, updated.Stock)

	// a shortage leaves the counter untouched
	_, err = svc.ReduceStock(product.ID, 7)
	var stockErr *InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	require.Equal(t, "Collar", stockErr.Name)
	require.Equal(t, 6, stockErr.Available)
	require.Equal(t, 7, stockErr.Requested)

	reloaded, err := svc.FindByID(product.ID)
	require.NoError(t, err)
	require.Equal(t, 6, reloaded.Stock)

	_, err = svc.ReduceStock(product.ID, 0)
	var validation *ValidationError
	require.ErrorAs(t, err, &validation)

	_, err = svc.ReduceStock(9999, 1)
	var notFoundErr *NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
}

func TestProductLowStock(t *testing.T) {
	db := newTestDB(t)
	catalogs := NewCatalogService(repository.NewCatalogRepo(db))
	svc := NewProductService(repository.NewProductRepo(db), catalogs)
	createProduct(t, db, "Bajo", "Perro Amor", money("10.00"), repository.LowStockThreshold)
	createProduct(t, db, "Alto", "Perro Amor", money("10.00"), repository.LowStockThreshold+1)

	low, err := svc.FindLowStock()
	require.NoError(t, err)
	require.Len(t, low, 1)
	require.Equal(t, "Bajo", low[0].Name)
}
