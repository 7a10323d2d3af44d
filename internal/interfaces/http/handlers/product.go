// internal/interfaces/http/handlers/product.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/domain/catalog"
	"github.com/your-org/storefront/internal/domain/favorites"
	"github.com/your-org/storefront/internal/interfaces/http/middleware"
)

// ProductHandler handles catalog browsing endpoints
type ProductHandler struct {
	gateway   catalog.Gateway
	favorites *favorites.Service
	config    *config.Config
}

// NewProductHandler creates a new product handler
func NewProductHandler(gateway catalog.Gateway, favoritesService *favorites.Service, cfg *config.Config) *ProductHandler {
	return &ProductHandler{
		gateway:   gateway,
		favorites: favoritesService,
		config:    cfg,
	}
}

// ListProducts handles GET /products
func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.gateway.ListProducts(c.Request.Context())
	if err != nil {
		respondGatewayError(c, err)
		return
	}

	h.markFavorites(c, products)

	c.JSON(http.StatusOK, gin.H{
		"message": "Products retrieved successfully",
		"data":    products,
	})
}

// GetProduct handles GET /products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID",
		})
		return
	}

	product, err := h.gateway.GetProduct(c.Request.Context(), id)
	if err != nil {
		respondGatewayError(c, err)
		return
	}

	single := []catalog.Product{product}
	h.markFavorites(c, single)

	c.JSON(http.StatusOK, gin.H{
		"message": "Product retrieved successfully",
		"data":    single[0],
	})
}

// ListCategories handles GET /products/categories
func (h *ProductHandler) ListCategories(c *gin.Context) {
	categories, err := h.gateway.ListCategories(c.Request.Context())
	if err != nil {
		respondGatewayError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Categories retrieved successfully",
		"data":    categories,
	})
}

// ListProductsByCategory handles GET /products/category/:category
func (h *ProductHandler) ListProductsByCategory(c *gin.Context) {
	category := c.Param("category")

	products, err := h.gateway.ListProductsByCategory(c.Request.Context(), category)
	if err != nil {
		respondGatewayError(c, err)
		return
	}

	h.markFavorites(c, products)

	c.JSON(http.StatusOK, gin.H{
		"message": "Products retrieved successfully",
		"data":    products,
	})
}

// markFavorites flags the session's favorite products on the listing.
// Favorite data is decorative; a lookup failure never fails the
// request.
func (h *ProductHandler) markFavorites(c *gin.Context, products []catalog.Product) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		return
	}

	favoriteSet, err := h.favorites.Set(c.Request.Context(), sessionID)
	if err != nil {
		return
	}

	for i := range products {
		products[i].IsFavorite = favoriteSet[products[i].ID]
	}
}

// respondGatewayError maps catalog gateway failures to HTTP statuses
func respondGatewayError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, catalog.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
	case errors.Is(err, catalog.ErrRemoteUnavailable):
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Product catalog is temporarily unavailable",
		})
	case errors.Is(err, catalog.ErrRemoteRejected):
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Product catalog rejected the request",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to reach product catalog",
		})
	}
}
