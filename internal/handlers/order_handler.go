package handlers

import (
	"net/http"
	"time"

	"bakery_shop/internal/middleware"
	"bakery_shop/internal/services"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orderService services.OrderService
}

func NewOrderHandler(orderService services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// POST /api/orders
func (h *OrderHandler) Create(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var req struct {
		SpecialInstructions string `json:"special_instructions"`
		DeliveryDate        string `json:"delivery_date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	var deliveryDate *time.Time
	if req.DeliveryDate != "" {
		parsed, err := time.Parse(time.RFC3339, req.DeliveryDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid delivery date"})
			return
		}
		deliveryDate = &parsed
	}

	order, err := h.orderService.PlaceOrder(user.ID, req.SpecialInstructions, deliveryDate)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Order created", "order": order})
}

// GET /api/orders
func (h *OrderHandler) List(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	orders, err := h.orderService.ListForUser(user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// GET /api/orders/:id
func (h *OrderHandler) GetByID(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}

	order, err := h.orderService.GetByID(id, user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// GET /api/orders/:id/status
func (h *OrderHandler) GetStatus(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}

	order, err := h.orderService.GetByID(id, user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"order_id":   order.ID,
		"status":     order.Status,
		"created_at": order.CreatedAt,
		"updated_at": order.UpdatedAt,
	})
}
