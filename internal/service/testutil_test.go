package service

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"inventory-pos/internal/models"
	"inventory-pos/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBSeq atomic.Int64

// newTestDB opens a fresh in-memory database per test. The named DSN
// keeps the database alive across the pooled connections.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:servicetest%d?mode=memory&cache=shared", testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.Brand{},
		&models.CatalogEntry{},
		&models.Product{},
		&models.ProductVariant{},
		&models.Event{},
		&models.Sale{},
		&models.SaleItem{},
	))
	return db
}

func newSaleService(db *gorm.DB) *SaleService {
	return NewSaleService(db,
		repository.NewSaleRepo(db),
		repository.NewSaleItemRepo(db),
		repository.NewEventRepo(db),
		NewCatalogService(repository.NewCatalogRepo(db)))
}

func createEvent(t *testing.T, db *gorm.DB, name string, start, end time.Time) *models.Event {
	t.Helper()
	event := &models.Event{
		Name:      name,
		StartDate: start,
		EndDate:   end,
		Location:  "Expo Reforma",
		IsActive:  true,
	}
	require.NoError(t, db.Create(event).Error)
	return event
}

func createProduct(t *testing.T, db *gorm.DB, name, brand string, price decimal.Decimal, stock int) *models.Product {
	t.Helper()
	product := &models.Product{
		Name:           name,
		Price:          price,
		WholesalePrice: price.Div(decimal.NewFromInt(2)),
		Category:       "Collares",
		Brand:          brand,
		Stock:          stock,
	}
	require.NoError(t, db.Create(product).Error)
	return product
}

func createVariant(t *testing.T, db *gorm.DB, productID uint, name string, adjustment decimal.Decimal, stock int) *models.ProductVariant {
	t.Helper()
	variant := &models.ProductVariant{
		ProductID:       productID,
		VariantName:     name,
		PriceAdjustment: adjustment,
		Stock:           stock,
		IsActive:        true,
	}
	require.NoError(t, db.Create(variant).Error)
	return variant
}

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
