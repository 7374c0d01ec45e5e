package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"inventory-pos/internal/service"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto HTTP statuses so every handler
// reports failures the same way.
func respondError(c *gin.Context, err error) {
	var validation *service.ValidationError
	if errors.As(err, &validation) {
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Error()})
		return
	}
	var stock *service.InsufficientStockError
	if errors.As(err, &stock) {
		c.JSON(http.StatusConflict, gin.H{
			"error":     stock.Error(),
			"available": stock.Available,
			"requested": stock.Requested,
		})
		return
	}
	var notFound *service.NotFoundError
	if errors.As(err, &notFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": notFound.Error()})
		return
	}
	var auth *service.AuthenticationError
	if errors.As(err, &auth) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": auth.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}

// pathID parses the :id route parameter; a bad value gets a 400 and a
// false return.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return 0, false
	}
	return uint(id), true
}

// queryID parses a numeric query parameter the same way.
func queryID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Query(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return uint(id), true
}
