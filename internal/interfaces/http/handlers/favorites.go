// internal/interfaces/http/handlers/favorites.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/domain/favorites"
	"github.com/your-org/storefront/internal/interfaces/http/middleware"
)

// FavoritesHandler handles favorites endpoints
type FavoritesHandler struct {
	favoritesService *favorites.Service
	config           *config.Config
}

// NewFavoritesHandler creates a new favorites handler
func NewFavoritesHandler(favoritesService *favorites.Service, cfg *config.Config) *FavoritesHandler {
	return &FavoritesHandler{
		favoritesService: favoritesService,
		config:           cfg,
	}
}

// List handles GET /favorites
func (h *FavoritesHandler) List(c *gin.Context) {
	sessionID, _ := middleware.GetSessionID(c)

	productIDs, err := h.favoritesService.List(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve favorites",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Favorites retrieved successfully",
		"data": gin.H{
			"product_ids": productIDs,
		},
	})
}

// Toggle handles POST /products/:id/favorite
func (h *FavoritesHandler) Toggle(c *gin.Context) {
	sessionID, _ := middleware.GetSessionID(c)

	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID",
		})
		return
	}

	isFavorite, err := h.favoritesService.Toggle(c.Request.Context(), sessionID, productID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to update favorites",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Favorite updated successfully",
		"data": gin.H{
			"product_id":  productID,
			"is_favorite": isFavorite,
		},
	})
}
