package service

import (
	"testing"
	"time"

	"inventory-pos/internal/models"
	"inventory-pos/internal/repository"

	"github.com/stretchr/testify/require"
)

func TestSaveWithItemsRecomputesTotal(t *testing.T) {
	db := newTestDB(t)
	svc := newSaleService(db)
	event := createEvent(t, db, "Feria de Primavera", day(2026, 3, 1), day(2026, 3, 3))
	product := createProduct(t, db, "Collar Luna", "Perro Amor", money("50.00"), 10)

	sale := &models.Sale{
		EventID:       event.ID,
		SaleDate:      day(2026, 3, 2),
		PaymentMethod: "Efectivo",
		TotalAmount:   money("999.99"), // client-supplied total is ignored
	}
	items := []models.SaleItem{
		{ProductID: product.ID, Quantity: 2, UnitPrice: money("50.00"), TotalPrice: money("100.00")},
		{ProductID: product.ID, Quantity: 1, UnitPrice: money("50.00"), TotalPrice: money("45.00")},
	}

	saved, err := svc.SaveWithItems(sale, items, false)
	require.NoError(t, err)
	require.True(t, saved.TotalAmount.Equal(money("145.00")))
	require.NotEmpty(t, saved.Receipt)

	loaded, err := svc.FindByID(saved.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Items, 2)
	require.True(t, loaded.TotalAmount.Equal(money("145.00")))
}

func TestSaveWithItemsRegistersPaymentMethod(t *testing.T) {
	db := newTestDB(t)
	svc := newSaleService(db)
	catalogs := NewCatalogService(repository.NewCatalogRepo(db))
	event := createEvent(t, db, "Bazar", day(2026, 5, 10), day(2026, 5, 10))
	product := createProduct(t, db, "Correa", "Perro Amor", money("30.00"), 5)

	sale := &models.Sale{EventID: event.ID, SaleDate: day(2026, 5, 10), PaymentMethod: "Mercado Pago"}
	items := []models.SaleItem{
		{ProductID: product.ID, Quantity: 1, UnitPrice: money("30.00"), TotalPrice: money("30.00")},
	}
	_, err := svc.SaveWithItems(sale, items, false)
	require.NoError(t, err)

	values, err := catalogs.Values(models.CatalogPaymentMethod)
	require.NoError(t, err)
	require.Contains(t, values, "Mercado Pago")
}

func TestSaveWithItemsValidation(t *testing.T) {
	db := newTestDB(t)
	svc := newSaleService(db)
	event := createEvent(t, db, "Feria", day(2026, 3, 1), day(2026, 3, 3))
	product := createProduct(t, db, "Collar", "Perro Amor", money("50.00"), 10)

	okItem := models.SaleItem{ProductID: product.ID, Quantity: 1, UnitPrice: money("50.00"), TotalPrice: money("50.00")}

	cases := []struct {
		name  string
		sale  models.Sale
		items []models.SaleItem
	}{
		{
			name:  "no items",
			sale:  models.Sale{EventID: event.ID, SaleDate: day(2026, 3, 2), PaymentMethod: "Efectivo"},
			items: nil,
		},
		{
			name:  "blank payment method",
			sale:  models.Sale{EventID: event.ID, SaleDate: day(2026, 3, 2), PaymentMethod: "  "},
			items: []models.SaleItem{okItem},
		},
		{
			name:  "sale date outside event",
			sale:  models.Sale{EventID: event.ID, SaleDate: day(2026, 3, 4), PaymentMethod: "Efectivo"},
			items: []models.SaleItem{okItem},
		},
		{
			name: "zero quantity",
			sale: models.Sale{EventID: event.ID, SaleDate: day(2026, 3, 2), PaymentMethod: "Efectivo"},
			items: []models.SaleItem{
				{ProductID: product.ID, Quantity: 0, UnitPrice: money("50.00"), TotalPrice: money("0.00")},
			},
		},
		{
			name: "negative unit price",
			sale: models.Sale{EventID: event.ID, SaleDate: day(2026, 3, 2), PaymentMethod: "Efectivo"},
			items: []models.SaleItem{
				{ProductID: product.ID, Quantity: 1, UnitPrice: money("-1.00"), TotalPrice: money("50.00")},
			},
		},
		{
			name:  "negative discount",
			sale:  models.Sale{EventID: event.ID, SaleDate: day(2026, 3, 2), PaymentMethod: "Efectivo", DiscountAmount: money("-5.00")},
			items: []models.SaleItem{okItem},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.SaveWithItems(&tc.sale, tc.items, false)
			var validation *ValidationError
			require.ErrorAs(t, err, &validation)
		})
	}

	var count int64
	require.NoError(t, db.Model(&models.Sale{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestSaveWithItemsUnknownEvent(t *testing.T) {
	db := newTestDB(t)
	svc := newSaleService(db)

	sale := &models.Sale{EventID: 99, SaleDate: time.Now(), PaymentMethod: "Efectivo"}
	_, err := svc.SaveWithItems(sale, []models.SaleItem{{ProductID: 1, Quantity: 1}}, false)
	var notFoundErr *NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
	require.Equal(t, "event", notFoundErr.Entity)
}

func TestSaveWithItemsReducesStockAtomically(t *testing.T) {
	db := newTestDB(t)
	svc := newSaleService(db)
	event := createEvent(t, db, "Feria", day(2026, 3, 1), day(2026, 3, 3))
	product := createProduct(t, db, "Collar", "Perro Amor", money("50.00"), 10)
	variant := createVariant(t, db, product.ID, "Rojo M", money("5.00"), 3)

	variantID := variant.ID
	sale := &models.Sale{EventID: event.ID, SaleDate: day(2026, 3, 2), PaymentMethod: "Tarjeta"}
	items := []models.SaleItem{
		{ProductID: product.ID, Quantity: 4, UnitPrice: money("50.00"), TotalPrice: money("200.00")},
		{ProductID: product.ID, VariantID: &variantID, Quantity: 2, UnitPrice: money("55.00"), TotalPrice: money("110.00")},
	}

	_, err := svc.SaveWithItems(sale, items, true)
	require.NoError(t, err)

	var reloadedProduct models.Product
	require.NoError(t, db.First(&reloadedProduct, product.ID).Error)
	require.Equal(t, 6, reloadedProduct.Stock)

	var reloadedVariant models.ProductVariant
	require.NoError(t, db.First(&reloadedVariant, variant.ID).Error)
	require.Equal(t, 1, reloadedVariant.Stock)
}

func TestSaveWithItemsRollsBackOnInsufficientStock(t *testing.T) {
	db := newTestDB(t)
	svc := newSaleService(db)
	event := createEvent(t, db, "Feria", day(2026, 3, 1), day(2026, 3, 3))
	first := createProduct(t, db, "Collar", "Perro Amor", money("50.00"), 10)
	second := createProduct(t, db, "Correa", "Perro Amor", money("30.00"), 1)

	sale := &models.Sale{EventID: event.ID, SaleDate: day(2026, 3, 2), PaymentMethod: "Efectivo"}
	items := []models.SaleItem{
		{ProductID: first.ID, Quantity: 3, UnitPrice: money("50.00"), TotalPrice: money("150.00")},
		{ProductID: second.ID, Quantity: 2, UnitPrice: money("30.00"), TotalPrice: money("60.00")},
	}

	_, err := svc.SaveWithItems(sale, items, true)
	var stockErr *InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	require.Equal(t, "Correa", stockErr.Name)
	require.Equal(t, 1, stockErr.Available)
	require.Equal(t, 2, stockErr.Requested)

	// the whole transaction rolled back: no sale, no items, untouched stock
	var saleCount, itemCount int64
	require.NoError(t, db.Model(&models.Sale{}).Count(&saleCount).Error)
	require.NoError(t, db.Model(&models.SaleItem{}).Count(&itemCount).Error)
	require.Zero(t, saleCount)
	require.Zero(t, itemCount)

	var reloaded models.Product
	require.NoError(t, db.First(&reloaded, first.ID).Error)
	require.Equal(t, 10, reloaded.Stock)
}

func TestCancelSaleKeepsStock(t *testing.T) {
	db := newTestDB(t)
	svc := newSaleService(db)
	event := createEvent(t, db, "Feria", day(2026, 3, 1), day(2026, 3, 3))
	product := createProduct(t, db, "Collar", "Perro Amor", money("50.00"), 10)

	sale := &models.Sale{EventID: event.ID, SaleDate: day(2026, 3, 2), PaymentMethod: "Efectivo"}
	items := []models.SaleItem{
		{ProductID: product.ID, Quantity: 4, UnitPrice: money("50.00"), TotalPrice: money("200.00")},
	}
	saved, err := svc.SaveWithItems(sale, items, true)
	require.NoError(t, err)

	cancelled, err := svc.CancelSale(saved.ID)
	require.NoError(t, err)
	require.True(t, cancelled.IsCancelled)

	var reloaded models.Product
	require.NoError(t, db.First(&reloaded, product.ID).Error)
	require.Equal(t, 6, reloaded.Stock)
}

// A checkout on credit must survive the round trip through the
// is_paid column default.
func TestSaveWithItemsPersistsUnpaid(t *testing.T) {
	db := newTestDB(t)
	svc := newSaleService(db)
	event := createEvent(t, db, "Feria", day(2026, 3, 1), day(2026, 3, 3))
	product := createProduct(t, db, "Collar", "Perro Amor", money("50.00"), 10)

	saved, err := svc.SaveWithItems(
		&models.Sale{EventID: event.ID, SaleDate: day(2026, 3, 2), PaymentMethod: "Efectivo", IsPaid: false},
		[]models.SaleItem{{ProductID: product.ID, Quantity: 1, UnitPrice: money("50.00"), TotalPrice: money("50.00")}},
		false)
	require.NoError(t, err)
	require.False(t, saved.IsPaid)

	var reloaded models.Sale
	require.NoError(t, db.First(&reloaded, saved.ID).Error)
	require.False(t, reloaded.IsPaid)
}

func TestMarkPaidUnpaid(t *testing.T) {
	db := newTestDB(t)
	svc := newSaleService(db)
	event := createEvent(t, db, "Feria", day(2026, 3, 1), day(2026, 3, 3))
	product := createProduct(t, db, "Collar", "Perro Amor", money("50.00"), 10)

	sale := &models.Sale{EventID: event.ID, SaleDate: day(2026, 3, 2), PaymentMethod: "Efectivo", IsPaid: true}
	saved, err := svc.SaveWithItems(sale, []models.SaleItem{
		{ProductID: product.ID, Quantity: 1, UnitPrice: money("50.00"), TotalPrice: money("50.00")},
	}, false)
	require.NoError(t, err)

	onCredit, err := svc.SaveWithItems(
		&models.Sale{EventID: event.ID, SaleDate: day(2026, 3, 2), PaymentMethod: "Efectivo", IsPaid: false},
		[]models.SaleItem{{ProductID: product.ID, Quantity: 1, UnitPrice: money("50.00"), TotalPrice: money("50.00")}},
		false)
	require.NoError(t, err)

	unpaidSales, err := svc.FindUnpaid()
	require.NoError(t, err)
	require.Len(t, unpaidSales, 1)
	require.Equal(t, onCredit.ID, unpaidSales[0].ID)

	unpaid, err := svc.MarkAsUnpaid(saved.ID)
	require.NoError(t, err)
	require.False(t, unpaid.IsPaid)

	paid, err := svc.MarkAsPaid(saved.ID)
	require.NoError(t, err)
	require.True(t, paid.IsPaid)
}

func TestDeleteSaleRemovesItems(t *testing.T) {
	db := newTestDB(t)
	svc := newSaleService(db)
	event := createEvent(t, db, "Feria", day(2026, 3, 1), day(2026, 3, 3))
	product := createProduct(t, db, "Collar", "Perro Amor", money("50.00"), 10)

	saved, err := svc.SaveWithItems(
		&models.Sale{EventID: event.ID, SaleDate: day(2026, 3, 2), PaymentMethod: "Efectivo"},
		[]models.SaleItem{{ProductID: product.ID, Quantity: 1, UnitPrice: money("50.00"), TotalPrice: money("50.00")}},
		false)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(saved.ID))

	var itemCount int64
	require.NoError(t, db.Model(&models.SaleItem{}).Count(&itemCount).Error)
	require.Zero(t, itemCount)

	_, err = svc.FindByID(saved.ID)
	var notFoundErr *NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
}

func TestEventStatistics(t *testing.T) {
	db := newTestDB(t)
	svc := newSaleService(db)
	event := createEvent(t, db, "Feria", day(2026, 3, 1), day(2026, 3, 3))
	collar := createProduct(t, db, "Collar", "Perro Amor", money("50.00"), 20)
	correa := createProduct(t, db, "Correa", "Perro Amor", money("30.00"), 20)

	mustSale := func(method string, items []models.SaleItem) *models.Sale {
		sale, err := svc.SaveWithItems(
			&models.Sale{EventID: event.ID, SaleDate: day(2026, 3, 2), PaymentMethod: method, IsPaid: true},
			items, false)
		require.NoError(t, err)
		return sale
	}

	mustSale("Efectivo", []models.SaleItem{
		{ProductID: collar.ID, Quantity: 2, UnitPrice: money("50.00"), TotalPrice: money("100.00")},
	})
	mustSale("Tarjeta", []models.SaleItem{
		{ProductID: correa.ID, Quantity: 5, UnitPrice: money("30.00"), TotalPrice: money("150.00")},
	})
	cancelled := mustSale("Efectivo", []models.SaleItem{
		{ProductID: collar.ID, Quantity: 9, UnitPrice: money("50.00"), TotalPrice: money("450.00")},
	})
	_, err := svc.CancelSale(cancelled.ID)
	require.NoError(t, err)

	stats, err := svc.EventStatistics(event.ID)
	require.NoError(t, err)
	require.EqualValues(t, 2, stats.TotalSales)
	require.True(t, stats.TotalAmount.Equal(money("250.00")))
	require.Len(t, stats.PaymentMethods, 2)

	require.Len(t, stats.TopProducts, 2)
	require.Equal(t, "Correa", stats.TopProducts[0].Name)
	require.EqualValues(t, 5, stats.TopProducts[0].Quantity)
	require.Equal(t, "Collar", stats.TopProducts[1].Name)
	require.EqualValues(t, 2, stats.TopProducts[1].Quantity)
}

func TestEventStatisticsUnknownEvent(t *testing.T) {
	db := newTestDB(t)
	svc := newSaleService(db)
	_, err := svc.EventStatistics(404)
	var notFoundErr *NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
}

func TestEventStatisticsByBrand(t *testing.T) {
	db := newTestDB(t)
	svc := newSaleService(db)
	event := createEvent(t, db, "Feria", day(2026, 3, 1), day(2026, 3, 3))
	collar := createProduct(t, db, "Collar", "Perro Amor", money("50.00"), 20)
	bandana := createProduct(t, db, "Bandana", "Perra Madre", money("30.00"), 20)

	// one sale containing both brands
	_, err := svc.SaveWithItems(
		&models.Sale{EventID: event.ID, SaleDate: day(2026, 3, 2), PaymentMethod: "Efectivo"},
		[]models.SaleItem{
			{ProductID: collar.ID, Quantity: 1, UnitPrice: money("50.00"), TotalPrice: money("50.00")},
			{ProductID: bandana.ID, Quantity: 2, UnitPrice: money("30.00"), TotalPrice: money("60.00")},
		}, false)
	require.NoError(t, err)

	stats, err := svc.EventStatisticsByBrand(event.ID)
	require.NoError(t, err)
	require.Len(t, stats, 2)

	perroAmor := stats["Perro Amor"]
	require.NotNil(t, perroAmor)
	require.EqualValues(t, 1, perroAmor.TotalSales)
	require.True(t, perroAmor.TotalAmount.Equal(money("50.00")))
	require.EqualValues(t, 1, perroAmor.TotalQuantity)

	perraMadre := stats["Perra Madre"]
	require.NotNil(t, perraMadre)
	require.EqualValues(t, 1, perraMadre.TotalSales)
	require.True(t, perraMadre.TotalAmount.Equal(money("60.00")))
	require.EqualValues(t, 2, perraMadre.TotalQuantity)

	// the payment breakdown counts the whole sale total once per brand
	require.Len(t, perroAmor.PaymentMethods, 1)
	require.Equal(t, "Efectivo", perroAmor.PaymentMethods[0].Method)
	require.EqualValues(t, 1, perroAmor.PaymentMethods[0].Count)
	require.True(t, perroAmor.PaymentMethods[0].Total.Equal(money("110.00")))
}

func TestRevenueBetween(t *testing.T) {
	db := newTestDB(t)
	svc := newSaleService(db)
	event := createEvent(t, db, "Feria", day(2026, 3, 1), day(2026, 3, 10))
	product := createProduct(t, db, "Collar", "Perro Amor", money("50.00"), 50)

	for _, d := range []time.Time{day(2026, 3, 2), day(2026, 3, 5), day(2026, 3, 9)} {
		_, err := svc.SaveWithItems(
			&models.Sale{EventID: event.ID, SaleDate: d, PaymentMethod: "Efectivo"},
			[]models.SaleItem{{ProductID: product.ID, Quantity: 1, UnitPrice: money("50.00"), TotalPrice: money("50.00")}},
			false)
		require.NoError(t, err)
	}

	report, err := svc.RevenueBetween(day(2026, 3, 1), day(2026, 3, 6))
	require.NoError(t, err)
	require.EqualValues(t, 2, report.TotalSales)
	require.True(t, report.TotalRevenue.Equal(money("100.00")))
}
