package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is one checkout transaction tied to exactly one event. The
// customer fields are optional; TotalAmount is always recomputed
// server-side from the items when saved through the sale service.
type Sale struct {
	ID             uint            `gorm:"primaryKey" json:"id"`
	Receipt        string          `gorm:"size:40;uniqueIndex" json:"receipt"`
	EventID        uint            `gorm:"not null;index" json:"event_id"`
	Event          Event           `json:"event"`
	SaleDate       time.Time       `gorm:"not null" json:"sale_date"`
	TotalAmount    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	CustomerName   string          `gorm:"size:150" json:"customer_name"`
	CustomerPhone  string          `gorm:"size:50" json:"customer_phone"`
	CustomerEmail  string          `gorm:"size:150" json:"customer_email"`
	PaymentMethod  string          `gorm:"size:50;not null" json:"payment_method"`
	Notes          string          `json:"notes"`
	DiscountAmount decimal.Decimal `gorm:"type:decimal(10,2)" json:"discount_amount"`
	TaxAmount      decimal.Decimal `gorm:"type:decimal(10,2)" json:"tax_amount"`
	IsPaid         bool            `gorm:"default:true" json:"is_paid"`
	IsCancelled    bool            `gorm:"default:false" json:"is_cancelled"`
	Items          []SaleItem      `gorm:"foreignKey:SaleID" json:"items,omitempty"`
}

// Subtotal is the amount before tax and after undoing the discount.
func (s *Sale) Subtotal() decimal.Decimal {
	return s.TotalAmount.Sub(s.TaxAmount).Add(s.DiscountAmount)
}

func (s *Sale) CustomerDisplayName() string {
	switch {
	case s.CustomerName != "":
		return s.CustomerName
	case s.CustomerPhone != "":
		return s.CustomerPhone
	case s.CustomerEmail != "":
		return s.CustomerEmail
	default:
		return "Anonymous customer"
	}
}

// CoversEventDates reports whether the sale date falls inside the
// event's date range. Requires Event to be loaded.
func (s *Sale) CoversEventDates() bool {
	return s.Event.CoversDate(s.SaleDate)
}

// SaleItem is one product or variant line within a sale. UnitPrice is
// a snapshot taken at sale time; later catalog price changes never
// rewrite historical lines.
type SaleItem struct {
	ID                  uint            `gorm:"primaryKey" json:"id"`
	SaleID              uint            `gorm:"not null;index" json:"sale_id"`
	ProductID           uint            `gorm:"not null" json:"product_id"`
	Product             Product         `json:"product"`
	VariantID           *uint           `json:"variant_id"`
	Variant             *ProductVariant `json:"variant,omitempty"`
	Quantity            int             `gorm:"not null" json:"quantity"`
	UnitPrice           decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	TotalPrice          decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_price"`
	Personalization     string          `gorm:"size:200" json:"personalization"`
	PersonalizationCost decimal.Decimal `gorm:"type:decimal(10,2)" json:"personalization_cost"`
	ItemDiscount        decimal.Decimal `gorm:"type:decimal(10,2)" json:"item_discount"`
	Notes               string          `json:"notes"`
}

// EffectiveUnitPrice resolves to the variant price when a variant is
// attached, else the product base price. Display helper only; the
// persisted UnitPrice stays whatever was captured at sale time.
func (i *SaleItem) EffectiveUnitPrice() decimal.Decimal {
	if i.Variant != nil {
		return i.Variant.EffectivePrice()
	}
	return i.Product.Price
}

func (i *SaleItem) Description() string {
	if i.Variant != nil {
		return i.Product.Name + " - " + i.Variant.VariantName
	}
	return i.Product.Name
}

func (i *SaleItem) FullDescription() string {
	if i.Personalization != "" {
		return i.Description() + " (personalized: " + i.Personalization + ")"
	}
	return i.Description()
}

// Subtotal is unitPrice * quantity + personalizationCost - itemDiscount.
func (i *SaleItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity))).
		Add(i.PersonalizationCost).
		Sub(i.ItemDiscount)
}

func (i *SaleItem) HasPersonalization() bool {
	return i.Personalization != "" && i.PersonalizationCost.IsPositive()
}
