// internal/interfaces/http/handlers/checkout.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/domain/catalog"
	"github.com/your-org/storefront/internal/domain/checkout"
	"github.com/your-org/storefront/internal/domain/order"
	"github.com/your-org/storefront/internal/interfaces/http/middleware"
)

// CheckoutHandler handles the checkout endpoint
type CheckoutHandler struct {
	orderService *order.Service
	config       *config.Config
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(orderService *order.Service, cfg *config.Config) *CheckoutHandler {
	return &CheckoutHandler{
		orderService: orderService,
		config:       cfg,
	}
}

// CheckoutRequest represents the checkout payload
type CheckoutRequest struct {
	ShippingAddress checkout.Address       `json:"shipping_address" binding:"required"`
	Payment         checkout.PaymentMethod `json:"payment" binding:"required"`
}

// Checkout handles POST /checkout
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	sessionID, _ := middleware.GetSessionID(c)

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	placed, err := h.orderService.Checkout(c.Request.Context(), sessionID, req.ShippingAddress, req.Payment)
	if err != nil {
		respondCheckoutError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"data":    placed,
	})
}

// respondCheckoutError maps checkout failures to HTTP statuses
func respondCheckoutError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, order.ErrEmptyCart):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Cart is empty",
		})
	case errors.Is(err, order.ErrInvalidAddress):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Shipping address is incomplete",
		})
	case errors.Is(err, order.ErrInvalidPayment):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Payment method is invalid",
		})
	case errors.Is(err, catalog.ErrRemoteUnavailable), errors.Is(err, catalog.ErrRemoteRejected):
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Checkout backend is temporarily unavailable",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to place order",
		})
	}
}
