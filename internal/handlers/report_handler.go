package handlers

import (
	"net/http"
	"time"

	"inventory-pos/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	sales *service.SaleService
}

func NewReportHandler(sales *service.SaleService) *ReportHandler {
	return &ReportHandler{sales: sales}
}

// EventStatistics reports totals, payment breakdown and top sellers
// for one event.
func (h *ReportHandler) EventStatistics(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	stats, err := h.sales.EventStatistics(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// BrandStatistics slices an event's sales per brand.
func (h *ReportHandler) BrandStatistics(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	stats, err := h.sales.EventStatisticsByBrand(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Revenue totals sales over ?start= and ?end= (YYYY-MM-DD, inclusive).
func (h *ReportHandler) Revenue(c *gin.Context) {
	start, err := time.Parse("2006-01-02", c.Query("start"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start date"})
		return
	}
	end, err := time.Parse("2006-01-02", c.Query("end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end date"})
		return
	}
	end = end.Add(23*time.Hour + 59*time.Minute + 59*time.Second)

	report, rerr := h.sales.RevenueBetween(start, end)
	if rerr != nil {
		respondError(c, rerr)
		return
	}
	c.JSON(http.StatusOK, report)
}
