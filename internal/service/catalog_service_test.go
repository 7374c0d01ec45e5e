package service

import (
	"testing"

	"inventory-pos/internal/models"
	"inventory-pos/internal/repository"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	require.Equal(t, "collares", Normalize("  Collares "))
	require.Equal(t, "mercado pago", Normalize("Mercado   Pago"))
	require.Equal(t, "", Normalize("   "))
}

func TestAddIfAbsentDeduplicates(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(repository.NewCatalogRepo(db))

	first, err := svc.AddIfAbsent(models.CatalogCategory, "Collares")
	require.NoError(t, err)

	// casing and whitespace variants resolve to the same entry, and the
	// first spelling typed stays as the display value
	second, err := svc.AddIfAbsent(models.CatalogCategory, "  COLLARES ")
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)
	require.Equal(t, "Collares", second.Value)

	values, err := svc.Values(models.CatalogCategory)
	require.NoError(t, err)
	require.Equal(t, []string{"Collares"}, values)
}

func TestAddIfAbsentBlankValue(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(repository.NewCatalogRepo(db))

	_, err := svc.AddIfAbsent(models.CatalogCategory, "   ")
	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
}

func TestVocabulariesAreIndependent(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(repository.NewCatalogRepo(db))

	_, err := svc.AddIfAbsent(models.CatalogCategory, "Grande")
	require.NoError(t, err)
	_, err = svc.AddIfAbsent(models.CatalogSize, "Grande")
	require.NoError(t, err)

	categories, err := svc.Values(models.CatalogCategory)
	require.NoError(t, err)
	sizes, err := svc.Values(models.CatalogSize)
	require.NoError(t, err)
	require.Equal(t, []string{"Grande"}, categories)
	require.Equal(t, []string{"Grande"}, sizes)
}
