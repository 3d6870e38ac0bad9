package handlers

import (
	"net/http"
	"strconv"

	"bakery_shop/internal/services"

	"github.com/gin-gonic/gin"
)

// DashboardHandler exposes the reporting engine. All routes are
// admin-gated upstream.
type DashboardHandler struct {
	reportService services.ReportService
}

func NewDashboardHandler(reportService services.ReportService) *DashboardHandler {
	return &DashboardHandler{reportService: reportService}
}

// GET /api/dashboard/overview
func (h *DashboardHandler) Overview(c *gin.Context) {
	overview, err := h.reportService.Overview()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, overview)
}

// GET /api/dashboard/revenue?period=day|week|month|year
func (h *DashboardHandler) Revenue(c *gin.Context) {
	stats, err := h.reportService.RevenueByPeriod(c.DefaultQuery("period", "month"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GET /api/dashboard/top-products?limit=
func (h *DashboardHandler) TopProducts(c *gin.Context) {
	limit := queryInt(c, "limit", 10)
	rows, err := h.reportService.TopProducts(limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"top_products": rows})
}

// GET /api/dashboard/customer-stats
func (h *DashboardHandler) CustomerStats(c *gin.Context) {
	stats, err := h.reportService.CustomerStats()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GET /api/dashboard/inventory?threshold=
func (h *DashboardHandler) Inventory(c *gin.Context) {
	threshold := queryInt(c, "threshold", 5)
	stats, err := h.reportService.InventoryStats(threshold)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GET /api/dashboard/order-analytics
func (h *DashboardHandler) OrderAnalytics(c *gin.Context) {
	analytics, err := h.reportService.OrderAnalytics()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, analytics)
}

// GET /api/dashboard/sales-trend?days=
func (h *DashboardHandler) SalesTrend(c *gin.Context) {
	days := queryInt(c, "days", 30)
	trend, err := h.reportService.SalesTrend(days)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, trend)
}

// GET /api/dashboard/category-stats
func (h *DashboardHandler) CategoryStats(c *gin.Context) {
	rows, err := h.reportService.CategoryStats()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": rows})
}

// GET /api/dashboard/performance-summary
func (h *DashboardHandler) PerformanceSummary(c *gin.Context) {
	summary, err := h.reportService.PerformanceSummary()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func queryInt(c *gin.Context, key string, defaultValue int) int {
	if value := c.Query(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
