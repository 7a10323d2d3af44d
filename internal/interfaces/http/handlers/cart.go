// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/domain/cart"
	"github.com/your-org/storefront/internal/domain/catalog"
	"github.com/your-org/storefront/internal/interfaces/http/middleware"
)

// CartHandler handles cart endpoints
type CartHandler struct {
	cartService *cart.Service
	config      *config.Config
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService *cart.Service, cfg *config.Config) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		config:      cfg,
	}
}

// AddItemRequest represents the payload for adding a cart line
type AddItemRequest struct {
	ProductID     int64  `json:"product_id" binding:"required"`
	Quantity      int    `json:"quantity" binding:"required"`
	SelectedSize  string `json:"selected_size"`
	SelectedColor string `json:"selected_color"`
}

// UpdateItemRequest represents the payload for changing a line quantity
type UpdateItemRequest struct {
	Quantity      int    `json:"quantity"`
	SelectedSize  string `json:"selected_size"`
	SelectedColor string `json:"selected_color"`
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	sessionID, _ := middleware.GetSessionID(c)

	shoppingCart, err := h.cartService.Get(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve cart",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart retrieved successfully",
		"data":    cartResponse(shoppingCart),
	})
}

// AddItem handles POST /cart/items
func (h *CartHandler) AddItem(c *gin.Context) {
	sessionID, _ := middleware.GetSessionID(c)

	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	shoppingCart, err := h.cartService.AddItem(c.Request.Context(), sessionID, req.ProductID, req.Quantity, req.SelectedSize, req.SelectedColor)
	if err != nil {
		respondCartError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item added to cart successfully",
		"data":    cartResponse(shoppingCart),
	})
}

// UpdateItem handles PUT /cart/items/:id. A quantity below one removes
// the line.
func (h *CartHandler) UpdateItem(c *gin.Context) {
	sessionID, _ := middleware.GetSessionID(c)

	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID",
		})
		return
	}

	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	shoppingCart, err := h.cartService.SetQuantity(c.Request.Context(), sessionID, productID, req.SelectedSize, req.SelectedColor, req.Quantity)
	if err != nil {
		respondCartError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart item updated successfully",
		"data":    cartResponse(shoppingCart),
	})
}

// RemoveItem handles DELETE /cart/items/:id. Size and color come from
// query parameters since the line identity includes the variant.
func (h *CartHandler) RemoveItem(c *gin.Context) {
	sessionID, _ := middleware.GetSessionID(c)

	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID",
		})
		return
	}

	size := c.Query("size")
	color := c.Query("color")

	shoppingCart, err := h.cartService.RemoveItem(c.Request.Context(), sessionID, productID, size, color)
	if err != nil {
		respondCartError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed from cart successfully",
		"data":    cartResponse(shoppingCart),
	})
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	sessionID, _ := middleware.GetSessionID(c)

	if err := h.cartService.Clear(c.Request.Context(), sessionID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to clear cart",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared successfully",
	})
}

// SyncCart handles POST /cart/sync, pulling the authoritative cart
// state from the remote backend.
func (h *CartHandler) SyncCart(c *gin.Context) {
	sessionID, _ := middleware.GetSessionID(c)

	shoppingCart, err := h.cartService.Refresh(c.Request.Context(), sessionID)
	if err != nil {
		respondCartError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart synchronized successfully",
		"data":    cartResponse(shoppingCart),
	})
}

// cartResponse pairs a cart with its derived totals
func cartResponse(c *cart.Cart) gin.H {
	return gin.H{
		"cart":   c,
		"totals": c.Totals(),
	}
}

// respondCartError maps cart service failures to HTTP statuses
func respondCartError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, cart.ErrInvalidQuantity):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Quantity must be at least 1",
		})
	case errors.Is(err, cart.ErrItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Item not found in cart",
		})
	case errors.Is(err, catalog.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
	case errors.Is(err, catalog.ErrRemoteUnavailable), errors.Is(err, catalog.ErrRemoteRejected):
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Cart backend is temporarily unavailable",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to update cart",
		})
	}
}
