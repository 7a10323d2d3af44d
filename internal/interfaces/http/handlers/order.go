// internal/interfaces/http/handlers/order.go
package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/domain/order"
	"github.com/your-org/storefront/internal/interfaces/http/middleware"
	"github.com/your-org/storefront/internal/pkg/pdf"
)

// OrderHandler handles order history endpoints
type OrderHandler struct {
	orderService *order.Service
	pdfService   *pdf.Service
	config       *config.Config
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *order.Service, pdfService *pdf.Service, cfg *config.Config) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		pdfService:   pdfService,
		config:       cfg,
	}
}

// UpdateStatusRequest represents a status change payload
type UpdateStatusRequest struct {
	Status  order.OrderStatus `json:"status" binding:"required"`
	Comment string            `json:"comment"`
}

// CancelRequest represents a cancellation payload
type CancelRequest struct {
	Reason string `json:"reason"`
}

// GetOrders handles GET /orders
func (h *OrderHandler) GetOrders(c *gin.Context) {
	sessionID, _ := middleware.GetSessionID(c)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(order.DefaultPageLimit)))

	response, err := h.orderService.GetOrders(c.Request.Context(), sessionID, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve orders",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Orders retrieved successfully",
		"data":    response,
	})
}

// GetOrder handles GET /orders/:number
func (h *OrderHandler) GetOrder(c *gin.Context) {
	sessionID, _ := middleware.GetSessionID(c)
	orderNumber := c.Param("number")

	o, err := h.orderService.GetOrderByNumber(c.Request.Context(), sessionID, orderNumber)
	if err != nil {
		respondOrderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order retrieved successfully",
		"data":    o,
	})
}

// UpdateStatus handles PUT /orders/:number/status
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	sessionID, _ := middleware.GetSessionID(c)
	orderNumber := c.Param("number")

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	o, err := h.orderService.UpdateStatus(c.Request.Context(), sessionID, orderNumber, req.Status, req.Comment)
	if err != nil {
		respondOrderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order status updated successfully",
		"data":    o,
	})
}

// Cancel handles PUT /orders/:number/cancel
func (h *OrderHandler) Cancel(c *gin.Context) {
	sessionID, _ := middleware.GetSessionID(c)
	orderNumber := c.Param("number")

	// Cancellation reason is optional; an empty body is fine.
	var req CancelRequest
	_ = c.ShouldBindJSON(&req)

	o, err := h.orderService.Cancel(c.Request.Context(), sessionID, orderNumber, req.Reason)
	if err != nil {
		respondOrderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order cancelled successfully",
		"data":    o,
	})
}

// GetInvoice handles GET /orders/:number/invoice, streaming the
// invoice PDF.
func (h *OrderHandler) GetInvoice(c *gin.Context) {
	sessionID, _ := middleware.GetSessionID(c)
	orderNumber := c.Param("number")

	o, err := h.orderService.GetOrderByNumber(c.Request.Context(), sessionID, orderNumber)
	if err != nil {
		respondOrderError(c, err)
		return
	}

	buf, err := h.pdfService.GenerateInvoice(o)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate invoice",
		})
		return
	}

	filename := fmt.Sprintf("invoice-%s.pdf", o.OrderNumber)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

// respondOrderError maps order service failures to HTTP statuses
func respondOrderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, order.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Order not found",
		})
	case errors.Is(err, order.ErrIllegalStatusTransition):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Order status cannot change this way",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to process order",
		})
	}
}
