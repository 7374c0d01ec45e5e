package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog entry. Brand is stored as the brand name, not a
// foreign key; stock lives on the product unless HasVariants is set, in
// which case the variants carry their own stock.
type Product struct {
	ID                uint            `gorm:"primaryKey" json:"id"`
	Name              string          `gorm:"size:150;not null" json:"name"`
	Price             decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	WholesalePrice    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"wholesale_price"`
	Category          string          `gorm:"size:100;not null" json:"category"`
	Brand             string          `gorm:"size:100;not null" json:"brand"`
	Stock             int             `gorm:"not null" json:"stock"`
	Description       string          `json:"description"`
	CanBePersonalized bool            `json:"can_be_personalized"`
	HasVariants       bool            `json:"has_variants"`
}

// ProductVariant is one purchasable configuration of a product. Its
// selling price is always derived from the product price, never stored.
type ProductVariant struct {
	ID               uint            `gorm:"primaryKey" json:"id"`
	ProductID        uint            `gorm:"not null;index" json:"product_id"`
	Product          Product         `json:"product"`
	VariantName      string          `gorm:"size:150;not null" json:"variant_name"`
	Color            string          `gorm:"size:50" json:"color"`
	Design           string          `gorm:"size:100" json:"design"`
	Material         string          `gorm:"size:100" json:"material"`
	Size             string          `gorm:"size:50" json:"size"`
	PriceAdjustment  decimal.Decimal `gorm:"type:decimal(10,2)" json:"price_adjustment"`
	Stock            int             `gorm:"not null" json:"stock"`
	SKU              string          `gorm:"column:sku;size:50" json:"sku"`
	Description      string          `json:"description"`
	ShopifyVariantID string          `gorm:"size:100" json:"shopify_variant_id"`
	ShopifyProductID string          `gorm:"size:100" json:"shopify_product_id"`
	IsActive         bool            `gorm:"default:true" json:"is_active"`
}

// EffectivePrice is the product base price plus this variant's
// adjustment, recomputed on every call.
func (v *ProductVariant) EffectivePrice() decimal.Decimal {
	return v.Product.Price.Add(v.PriceAdjustment)
}

func (v *ProductVariant) FullName() string {
	return v.Product.Name + " - " + v.VariantName
}

// Brand is the master list behind Product.Brand. Renaming a brand does
// not cascade to products; the string on the product is the record.
type Brand struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Description string    `json:"description"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Catalog entry kinds. Categories and sizes are freeform vocabularies
// that grow as users type new values into forms.
const (
	CatalogCategory      = "category"
	CatalogSize          = "size"
	CatalogPaymentMethod = "payment-method"
)

// CatalogEntry is one value of a freeform vocabulary. Normalized holds
// the trimmed, case-folded form and carries the uniqueness constraint,
// so "Collares" and " collares " are the same entry.
type CatalogEntry struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Kind       string    `gorm:"size:50;not null;uniqueIndex:idx_catalog_kind_norm" json:"kind"`
	Value      string    `gorm:"size:150;not null" json:"value"`
	Normalized string    `gorm:"size:150;not null;uniqueIndex:idx_catalog_kind_norm" json:"-"`
	CreatedAt  time.Time `json:"created_at"`
}
