package handlers

import (
	"net/http"

	"bakery_shop/internal/middleware"
	"bakery_shop/internal/services"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	cartService services.CartService
}

func NewCartHandler(cartService services.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// GET /api/cart
func (h *CartHandler) Get(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	cart, err := h.cartService.GetCart(user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

// POST /api/cart/add
func (h *CartHandler) Add(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var req struct {
		ProductID uint `json:"product_id" binding:"required"`
		Quantity  int  `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID required"})
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	item, err := h.cartService.AddToCart(user.ID, req.ProductID, req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Added to cart", "item": item})
}

// DELETE /api/cart/remove/:item_id
func (h *CartHandler) Remove(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	itemID, err := parseID(c.Param("item_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item id"})
		return
	}

	if err := h.cartService.RemoveFromCart(user.ID, itemID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Removed from cart"})
}

// DELETE /api/cart/clear
func (h *CartHandler) Clear(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	if err := h.cartService.ClearCart(user.ID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
}
