package handlers

import (
	"net/http"

	"inventory-pos/internal/models"
	"inventory-pos/internal/service"

	"github.com/gin-gonic/gin"
)

type VariantHandler struct {
	variants *service.VariantService
}

func NewVariantHandler(variants *service.VariantService) *VariantHandler {
	return &VariantHandler{variants: variants}
}

// List filters by ?product_id=, ?color=, ?design=, ?in_stock=true or
// ?low_stock=true; without filters it returns every variant.
func (h *VariantHandler) List(c *gin.Context) {
	var (
		variants []models.ProductVariant
		err      error
	)
	switch {
	case c.Query("product_id") != "":
		productID, ok := queryID(c, "product_id")
		if !ok {
			return
		}
		if c.Query("active") == "true" {
			variants, err = h.variants.FindActiveByProductID(productID)
		} else {
			variants, err = h.variants.FindByProductID(productID)
		}
	case c.Query("color") != "":
		variants, err = h.variants.FindByColor(c.Query("color"))
	case c.Query("design") != "":
		variants, err = h.variants.FindByDesign(c.Query("design"))
	case c.Query("in_stock") == "true":
		variants, err = h.variants.FindInStock()
	case c.Query("low_stock") == "true":
		variants, err = h.variants.FindLowStock()
	default:
		variants, err = h.variants.FindAll()
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, variants)
}

// ListForProduct lists one product's variants; ?active=true keeps
// only the sellable ones.
func (h *VariantHandler) ListForProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var (
		variants []models.ProductVariant
		err      error
	)
	if c.Query("active") == "true" {
		variants, err = h.variants.FindActiveByProductID(id)
	} else {
		variants, err = h.variants.FindByProductID(id)
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, variants)
}

func (h *VariantHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	variant, err := h.variants.FindByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, variant)
}

func (h *VariantHandler) Create(c *gin.Context) {
	var variant models.ProductVariant
	if err := c.ShouldBindJSON(&variant); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	variant.ID = 0
	if err := h.variants.Save(&variant); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, variant)
}

func (h *VariantHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if _, err := h.variants.FindByID(id); err != nil {
		respondError(c, err)
		return
	}
	var variant models.ProductVariant
	if err := c.ShouldBindJSON(&variant); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	variant.ID = id
	if err := h.variants.Save(&variant); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, variant)
}

func (h *VariantHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if _, err := h.variants.FindByID(id); err != nil {
		respondError(c, err)
		return
	}
	if err := h.variants.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Variant deleted successfully"})
}

type StatusRequest struct {
	Active bool `json:"active"`
}

func (h *VariantHandler) SetStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var input StatusRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	variant, err := h.variants.SetActive(id, input.Active)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, variant)
}

func (h *VariantHandler) UpdateStock(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var input StockRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	variant, err := h.variants.UpdateStock(id, input.Stock)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, variant)
}

func (h *VariantHandler) ReduceStock(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var input ReduceStockRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	variant, err := h.variants.ReduceStock(id, input.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, variant)
}

func (h *VariantHandler) Colors(c *gin.Context) {
	colors, err := h.variants.DistinctColors()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, colors)
}

func (h *VariantHandler) Designs(c *gin.Context) {
	designs, err := h.variants.DistinctDesigns()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, designs)
}
