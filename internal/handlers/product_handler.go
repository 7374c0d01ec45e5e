package handlers

import (
	"net/http"

	"inventory-pos/internal/models"
	"inventory-pos/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type ProductHandler struct {
	products *service.ProductService
	variants *service.VariantService
}

func NewProductHandler(products *service.ProductService, variants *service.VariantService) *ProductHandler {
	return &ProductHandler{products: products, variants: variants}
}

// List supports one filter at a time: ?category=, ?brand=, ?search=,
// ?in_stock=true or ?low_stock=true. No filter returns everything.
func (h *ProductHandler) List(c *gin.Context) {
	var (
		products []models.Product
		err      error
	)
	switch {
	case c.Query("category") != "":
		products, err = h.products.FindByCategory(c.Query("category"))
	case c.Query("brand") != "":
		products, err = h.products.FindByBrand(c.Query("brand"))
	case c.Query("search") != "":
		products, err = h.products.Search(c.Query("search"))
	case c.Query("in_stock") == "true":
		products, err = h.products.FindInStock()
	case c.Query("low_stock") == "true":
		products, err = h.products.FindLowStock()
	default:
		products, err = h.products.FindAll()
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	product, err := h.products.FindByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) Create(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	product.ID = 0
	if err := h.products.Save(&product); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if _, err := h.products.FindByID(id); err != nil {
		respondError(c, err)
		return
	}
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	product.ID = id
	if err := h.products.Save(&product); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if _, err := h.products.FindByID(id); err != nil {
		respondError(c, err)
		return
	}
	if err := h.products.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}

type StockRequest struct {
	Stock int `json:"stock"`
}

func (h *ProductHandler) UpdateStock(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var input StockRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	product, err := h.products.UpdateStock(id, input.Stock)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

type ReduceStockRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

func (h *ProductHandler) ReduceStock(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var input ReduceStockRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	product, err := h.products.ReduceStock(id, input.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// PickerLine is one sellable row for the checkout screen: the product
// itself when it has no variants, otherwise one row per active variant.
type PickerLine struct {
	ProductID         uint            `json:"product_id"`
	VariantID         *uint           `json:"variant_id,omitempty"`
	Name              string          `json:"name"`
	Price             decimal.Decimal `json:"price"`
	Stock             int             `json:"stock"`
	CanBePersonalized bool            `json:"can_be_personalized"`
}

// Picker lists everything sellable; ?wholesale=true swaps in wholesale
// prices for the product base price.
func (h *ProductHandler) Picker(c *gin.Context) {
	wholesale := c.Query("wholesale") == "true"

	products, err := h.products.FindAll()
	if err != nil {
		respondError(c, err)
		return
	}

	lines := make([]PickerLine, 0, len(products))
	for i := range products {
		p := &products[i]
		basePrice := p.Price
		if wholesale {
			basePrice = p.WholesalePrice
		}

		if !p.HasVariants {
			lines = append(lines, PickerLine{
				ProductID:         p.ID,
				Name:              p.Name,
				Price:             basePrice,
				Stock:             p.Stock,
				CanBePersonalized: p.CanBePersonalized,
			})
			continue
		}

		variants, err := h.variants.FindActiveByProductID(p.ID)
		if err != nil {
			respondError(c, err)
			return
		}
		for j := range variants {
			v := &variants[j]
			variantID := v.ID
			lines = append(lines, PickerLine{
				ProductID:         p.ID,
				VariantID:         &variantID,
				Name:              p.Name + " - " + v.VariantName,
				Price:             basePrice.Add(v.PriceAdjustment),
				Stock:             v.Stock,
				CanBePersonalized: p.CanBePersonalized,
			})
		}
	}
	c.JSON(http.StatusOK, lines)
}
