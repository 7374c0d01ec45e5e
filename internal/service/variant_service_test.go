package service

import (
	"testing"

	"inventory-pos/internal/models"
	"inventory-pos/internal/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newVariantServiceForTest(t *testing.T) (*VariantService, *CatalogService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	catalogs := NewCatalogService(repository.NewCatalogRepo(db))
	return NewVariantService(repository.NewVariantRepo(db), catalogs), catalogs, db
}

func TestVariantSaveValidation(t *testing.T) {
	svc, _, db := newVariantServiceForTest(t)
	product := createProduct(t, db, "Collar", "Perro Amor", money("50.00"), 0)

	cases := []struct {
		name    string
		variant models.ProductVariant
	}{
		{"blank name", models.ProductVariant{ProductID: product.ID, VariantName: " "}},
		{"missing product", models.ProductVariant{VariantName: "Rojo"}},
		{"negative stock", models.ProductVariant{ProductID: product.ID, VariantName: "Rojo", Stock: -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := svc.Save(&tc.variant)
			var validation *ValidationError
			require.ErrorAs(t, err, &validation)
		})
	}
}

func TestVariantSaveFeedsSizeVocabulary(t *testing.T) {
	svc, catalogs, db := newVariantServiceForTest(t)
	product := createProduct(t, db, "Collar", "Perro Amor", money("50.00"), 0)

	variant := models.ProductVariant{ProductID: product.ID, VariantName: "Rojo M", Size: "Mediano", IsActive: true}
	require.NoError(t, svc.Save(&variant))

	values, err := catalogs.Values(models.CatalogSize)
	require.NoError(t, err)
	require.Equal(t, []string{"Mediano"}, values)
}

func TestVariantReduceStock(t *testing.T) {
	svc, _, db := newVariantServiceForTest(t)
	product := createProduct(t, db, "Collar", "Perro Amor", money("50.00"), 0)
	variant := createVariant(t, db, product.ID, "Rojo M", money("5.00"), 3)

	updated, err := svc.ReduceStock(variant.ID, 2)
	require.NoError(t, err)
	require.Equal(t, 1, updated.Stock)

	_, err = svc.ReduceStock(variant.ID, 2)
	var stockErr *InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	require.Equal(t, "Rojo M", stockErr.Name)
	require.Equal(t, 1, stockErr.Available)

	reloaded, err := svc.FindByID(variant.ID)
	require.NoError(t, err)
	require.Equal(t, 1, reloaded.Stock)
}

func TestVariantSetActive(t *testing.T) {
	svc, _, db := newVariantServiceForTest(t)
	product := createProduct(t, db, "Collar", "Perro Amor", money("50.00"), 0)
	variant := createVariant(t, db, product.ID, "Rojo M", money("5.00"), 3)
	createVariant(t, db, product.ID, "Azul L", money("0.00"), 2)

	deactivated, err := svc.SetActive(variant.ID, false)
	require.NoError(t, err)
	require.False(t, deactivated.IsActive)

	// deactivating again is a no-op, not a miss
	again, err := svc.SetActive(variant.ID, false)
	require.NoError(t, err)
	require.False(t, again.IsActive)

	active, err := svc.FindActiveByProductID(product.ID)
	require.NoError(t, err)
	require.Len(t, active, 1)
	require.Equal(t, "Azul L", active[0].VariantName)

	_, err = svc.SetActive(9999, true)
	var notFoundErr *NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
}
