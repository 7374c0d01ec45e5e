package handlers

import (
	"net/http"

	"inventory-pos/internal/models"
	"inventory-pos/internal/service"

	"github.com/gin-gonic/gin"
)

type BrandHandler struct {
	brands *service.BrandService
}

func NewBrandHandler(brands *service.BrandService) *BrandHandler {
	return &BrandHandler{brands: brands}
}

func (h *BrandHandler) List(c *gin.Context) {
	var (
		brands []models.Brand
		err    error
	)
	switch {
	case c.Query("search") != "":
		brands, err = h.brands.Search(c.Query("search"))
	case c.Query("active") == "true":
		brands, err = h.brands.FindActive()
	default:
		brands, err = h.brands.FindAll()
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, brands)
}

func (h *BrandHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	brand, err := h.brands.FindByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, brand)
}

func (h *BrandHandler) Create(c *gin.Context) {
	var brand models.Brand
	if err := c.ShouldBindJSON(&brand); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	brand.ID = 0
	brand.IsActive = true
	if err := h.brands.Save(&brand); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, brand)
}

func (h *BrandHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	existing, err := h.brands.FindByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	var brand models.Brand
	if err := c.ShouldBindJSON(&brand); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	brand.ID = id
	brand.CreatedAt = existing.CreatedAt
	if err := h.brands.Save(&brand); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, brand)
}

// SetStatus activates or deactivates; brands are never deleted.
func (h *BrandHandler) SetStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var input StatusRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	var (
		brand *models.Brand
		err   error
	)
	if input.Active {
		brand, err = h.brands.Activate(id)
	} else {
		brand, err = h.brands.Deactivate(id)
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, brand)
}
