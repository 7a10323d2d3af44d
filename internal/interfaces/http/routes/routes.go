// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/domain/cart"
	"github.com/your-org/storefront/internal/domain/catalog"
	"github.com/your-org/storefront/internal/domain/favorites"
	"github.com/your-org/storefront/internal/domain/order"
	"github.com/your-org/storefront/internal/infrastructure/database/redis"
	"github.com/your-org/storefront/internal/interfaces/http/handlers"
	"github.com/your-org/storefront/internal/interfaces/http/middleware"
	"github.com/your-org/storefront/internal/pkg/auth"
	"github.com/your-org/storefront/internal/pkg/pdf"
	"gorm.io/gorm"
)

// SetupRoutes wires all API routes. Everything except session issuance
// runs behind the session token middleware.
func SetupRoutes(rg *gin.RouterGroup, db *gorm.DB, redisClient *redis.Client, gateway catalog.Gateway, cfg *config.Config) {
	sessionManager := auth.NewSessionManager(cfg)

	cartService := cart.NewService(redisClient, gateway, cfg)
	favoritesService := favorites.NewService(redisClient, cfg)
	orderService := order.NewService(db, cfg, cartService)
	pdfService := pdf.NewService(cfg)

	sessionHandler := handlers.NewSessionHandler(sessionManager, cfg)
	productHandler := handlers.NewProductHandler(gateway, favoritesService, cfg)
	favoritesHandler := handlers.NewFavoritesHandler(favoritesService, cfg)
	cartHandler := handlers.NewCartHandler(cartService, cfg)
	checkoutHandler := handlers.NewCheckoutHandler(orderService, cfg)
	orderHandler := handlers.NewOrderHandler(orderService, pdfService, cfg)

	// Public: bootstrap a shopping session
	rg.POST("/session", sessionHandler.Create)

	protected := rg.Group("")
	protected.Use(middleware.Session(sessionManager))
	{
		products := protected.Group("/products")
		{
			products.GET("", productHandler.ListProducts)
			products.GET("/categories", productHandler.ListCategories)
			products.GET("/category/:category", productHandler.ListProductsByCategory)
			products.GET("/:id", productHandler.GetProduct)
			products.POST("/:id/favorite", favoritesHandler.Toggle)
		}

		protected.GET("/favorites", favoritesHandler.List)

		cartGroup := protected.Group("/cart")
		{
			cartGroup.GET("", cartHandler.GetCart)
			cartGroup.POST("/items", cartHandler.AddItem)
			cartGroup.PUT("/items/:id", cartHandler.UpdateItem)
			cartGroup.DELETE("/items/:id", cartHandler.RemoveItem)
			cartGroup.DELETE("", cartHandler.ClearCart)
			cartGroup.POST("/sync", cartHandler.SyncCart)
		}

		protected.POST("/checkout", checkoutHandler.Checkout)

		orders := protected.Group("/orders")
		{
			orders.GET("", orderHandler.GetOrders)
			orders.GET("/:number", orderHandler.GetOrder)
			orders.PUT("/:number/status", orderHandler.UpdateStatus)
			orders.PUT("/:number/cancel", orderHandler.Cancel)
			orders.GET("/:number/invoice", orderHandler.GetInvoice)
		}
	}
}
