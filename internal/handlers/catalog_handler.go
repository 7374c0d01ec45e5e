package handlers

import (
	"net/http"

	"inventory-pos/internal/models"
	"inventory-pos/internal/service"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogs *service.CatalogService
}

func NewCatalogHandler(catalogs *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogs: catalogs}
}

var catalogKinds = map[string]bool{
	models.CatalogCategory:      true,
	models.CatalogSize:          true,
	models.CatalogPaymentMethod: true,
}

func catalogKind(c *gin.Context) (string, bool) {
	kind := c.Param("kind")
	if !catalogKinds[kind] {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown catalog kind"})
		return "", false
	}
	return kind, true
}

// Values lists a vocabulary's display spellings.
func (h *CatalogHandler) Values(c *gin.Context) {
	kind, ok := catalogKind(c)
	if !ok {
		return
	}
	values, err := h.catalogs.Values(kind)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, values)
}

type CatalogValueRequest struct {
	Value string `json:"value" binding:"required"`
}

// Add registers a value; an equivalent existing entry is returned
// as-is instead of duplicated.
func (h *CatalogHandler) Add(c *gin.Context) {
	kind, ok := catalogKind(c)
	if !ok {
		return
	}
	var input CatalogValueRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	entry, err := h.catalogs.AddIfAbsent(kind, input.Value)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}
