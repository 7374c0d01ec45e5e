package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthCheck answers container probes.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "inventory-pos",
	})
}

func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Inventory POS API",
		"status":  "running",
	})
}
