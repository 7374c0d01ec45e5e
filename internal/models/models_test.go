package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestVariantEffectivePrice(t *testing.T) {
	variant := ProductVariant{
		Product:         Product{Name: "Collar Luna", Price: money("50.00")},
		VariantName:     "Rojo M",
		PriceAdjustment: money("5.50"),
	}
	require.True(t, variant.EffectivePrice().Equal(money("55.50")))
	require.Equal(t, "Collar Luna - Rojo M", variant.FullName())

	// the derived price follows the product price immediately
	variant.Product.Price = money("60.00")
	require.True(t, variant.EffectivePrice().Equal(money("65.50")))
}

func TestSaleItemSubtotal(t *testing.T) {
	item := SaleItem{
		Quantity:            3,
		UnitPrice:           money("50.00"),
		PersonalizationCost: money("20.00"),
		ItemDiscount:        money("15.00"),
	}
	require.True(t, item.Subtotal().Equal(money("155.00")))
}

func TestSaleItemDescriptions(t *testing.T) {
	item := SaleItem{Product: Product{Name: "Collar Luna"}}
	require.Equal(t, "Collar Luna", item.Description())

	item.Variant = &ProductVariant{VariantName: "Rojo M"}
	require.Equal(t, "Collar Luna - Rojo M", item.Description())

	item.Personalization = "Firulais"
	require.Equal(t, "Collar Luna - Rojo M (personalized: Firulais)", item.FullDescription())

	require.False(t, item.HasPersonalization())
	item.PersonalizationCost = money("10.00")
	require.True(t, item.HasPersonalization())
}

func TestSaleSubtotal(t *testing.T) {
	sale := Sale{
		TotalAmount:    money("110.00"),
		TaxAmount:      money("10.00"),
		DiscountAmount: money("5.00"),
	}
	require.True(t, sale.Subtotal().Equal(money("105.00")))
}

func TestCustomerDisplayName(t *testing.T) {
	require.Equal(t, "Anonymous customer", (&Sale{}).CustomerDisplayName())
	require.Equal(t, "555-1234", (&Sale{CustomerPhone: "555-1234"}).CustomerDisplayName())
	require.Equal(t, "a@b.c", (&Sale{CustomerEmail: "a@b.c"}).CustomerDisplayName())

	sale := Sale{CustomerName: "Ana", CustomerPhone: "555-1234", CustomerEmail: "a@b.c"}
	require.Equal(t, "Ana", sale.CustomerDisplayName())
}

func TestUserCapabilities(t *testing.T) {
	admin := User{Role: Role{Name: RoleAdmin}}
	manager := User{Role: Role{Name: RoleManager}}
	employee := User{Role: Role{Name: RoleEmployee}}

	require.True(t, admin.CanAccessInventory())
	require.True(t, admin.CanAccessUsers())
	require.True(t, manager.CanAccessInventory())
	require.False(t, manager.CanAccessUsers())
	require.False(t, employee.CanAccessInventory())
	require.False(t, employee.CanAccessReports())

	for _, u := range []User{admin, manager, employee} {
		require.True(t, u.CanAccessSales())
	}
}

func TestUserPasswordNeverSerialized(t *testing.T) {
	user := User{Username: "maria", PasswordHash: "$2a$10$abcdef"}
	out, err := json.Marshal(user)
	require.NoError(t, err)
	require.NotContains(t, string(out), "abcdef")
}
