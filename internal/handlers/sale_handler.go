package handlers

import (
	"net/http"
	"time"

	"inventory-pos/internal/models"
	"inventory-pos/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type SaleHandler struct {
	sales    *service.SaleService
	products *service.ProductService
	variants *service.VariantService
}

func NewSaleHandler(sales *service.SaleService, products *service.ProductService,
	variants *service.VariantService) *SaleHandler {
	return &SaleHandler{sales: sales, products: products, variants: variants}
}

// SaleItemRequest is one checkout line. UnitPrice overrides the
// catalog price when present; Wholesale swaps in the wholesale base
// price instead.
type SaleItemRequest struct {
	ProductID           uint             `json:"product_id" binding:"required"`
	VariantID           *uint            `json:"variant_id"`
	Quantity            int              `json:"quantity" binding:"required"`
	UnitPrice           *decimal.Decimal `json:"unit_price"`
	Wholesale           bool             `json:"wholesale"`
	Personalization     string           `json:"personalization"`
	PersonalizationCost decimal.Decimal  `json:"personalization_cost"`
	ItemDiscount        decimal.Decimal  `json:"item_discount"`
	Notes               string           `json:"notes"`
}

type SaleRequest struct {
	EventID        uint              `json:"event_id" binding:"required"`
	SaleDate       *time.Time        `json:"sale_date"`
	CustomerName   string            `json:"customer_name"`
	CustomerPhone  string            `json:"customer_phone"`
	CustomerEmail  string            `json:"customer_email"`
	PaymentMethod  string            `json:"payment_method" binding:"required"`
	Notes          string            `json:"notes"`
	DiscountAmount decimal.Decimal   `json:"discount_amount"`
	TaxAmount      decimal.Decimal   `json:"tax_amount"`
	IsPaid         *bool             `json:"is_paid"`
	ReduceStock    bool              `json:"reduce_stock"`
	Items          []SaleItemRequest `json:"items" binding:"required"`
}

// buildItem resolves the catalog price for one line and snapshots it
// into a SaleItem.
func (h *SaleHandler) buildItem(req *SaleItemRequest) (*models.SaleItem, error) {
	product, err := h.products.FindByID(req.ProductID)
	if err != nil {
		return nil, err
	}

	basePrice := product.Price
	if req.Wholesale {
		basePrice = product.WholesalePrice
	}

	item := models.SaleItem{
		ProductID:           req.ProductID,
		VariantID:           req.VariantID,
		Quantity:            req.Quantity,
		Personalization:     req.Personalization,
		PersonalizationCost: req.PersonalizationCost,
		ItemDiscount:        req.ItemDiscount,
		Notes:               req.Notes,
	}

	unitPrice := basePrice
	if req.VariantID != nil {
		variant, err := h.variants.FindByID(*req.VariantID)
		if err != nil {
			return nil, err
		}
		if variant.ProductID != req.ProductID {
			return nil, &service.ValidationError{
				Message: "variant does not belong to the selected product",
			}
		}
		unitPrice = basePrice.Add(variant.PriceAdjustment)
	}
	if req.UnitPrice != nil {
		unitPrice = *req.UnitPrice
	}

	item.UnitPrice = unitPrice
	item.TotalPrice = item.Subtotal()
	return &item, nil
}

// Checkout creates a sale with its items in one transaction.
func (h *SaleHandler) Checkout(c *gin.Context) {
	var req SaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	saleDate := time.Now()
	if req.SaleDate != nil {
		saleDate = *req.SaleDate
	}
	isPaid := true
	if req.IsPaid != nil {
		isPaid = *req.IsPaid
	}

	sale := models.Sale{
		EventID:        req.EventID,
		SaleDate:       saleDate,
		CustomerName:   req.CustomerName,
		CustomerPhone:  req.CustomerPhone,
		CustomerEmail:  req.CustomerEmail,
		PaymentMethod:  req.PaymentMethod,
		Notes:          req.Notes,
		DiscountAmount: req.DiscountAmount,
		TaxAmount:      req.TaxAmount,
		IsPaid:         isPaid,
	}

	items := make([]models.SaleItem, 0, len(req.Items))
	for i := range req.Items {
		item, err := h.buildItem(&req.Items[i])
		if err != nil {
			respondError(c, err)
			return
		}
		items = append(items, *item)
	}

	saved, err := h.sales.SaveWithItems(&sale, items, req.ReduceStock)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"sale_id": saved.ID,
		"receipt": saved.Receipt,
		"total":   saved.TotalAmount,
	})
}

// List filters by ?event_id= (plus ?active=true to drop cancelled),
// ?unpaid=true, ?payment_method=, ?customer= or a ?start=/?end= date
// range (YYYY-MM-DD).
func (h *SaleHandler) List(c *gin.Context) {
	var (
		sales []models.Sale
		err   error
	)
	switch {
	case c.Query("event_id") != "":
		eventID, ok := queryID(c, "event_id")
		if !ok {
			return
		}
		if c.Query("active") == "true" {
			sales, err = h.sales.FindActiveByEventID(eventID)
		} else {
			sales, err = h.sales.FindByEventID(eventID)
		}
	case c.Query("unpaid") == "true":
		sales, err = h.sales.FindUnpaid()
	case c.Query("payment_method") != "":
		sales, err = h.sales.FindByPaymentMethod(c.Query("payment_method"))
	case c.Query("customer") != "":
		sales, err = h.sales.SearchByCustomer(c.Query("customer"))
	case c.Query("start") != "" && c.Query("end") != "":
		start, perr := time.Parse("2006-01-02", c.Query("start"))
		if perr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start date"})
			return
		}
		end, perr := time.Parse("2006-01-02", c.Query("end"))
		if perr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end date"})
			return
		}
		end = end.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
		sales, err = h.sales.FindBetweenDates(start, end)
	default:
		sales, err = h.sales.FindAll()
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sales)
}

func (h *SaleHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	sale, err := h.sales.FindByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sale)
}

func (h *SaleHandler) Items(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	items, err := h.sales.ItemsBySaleID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// Cancel marks the sale cancelled. Stock is deliberately not restored;
// restock through the inventory screens when the goods come back.
func (h *SaleHandler) Cancel(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	sale, err := h.sales.CancelSale(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sale)
}

func (h *SaleHandler) MarkPaid(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	sale, err := h.sales.MarkAsPaid(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sale)
}

func (h *SaleHandler) MarkUnpaid(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	sale, err := h.sales.MarkAsUnpaid(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sale)
}

func (h *SaleHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.sales.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Sale deleted successfully"})
}
