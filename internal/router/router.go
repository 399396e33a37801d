// internal/router/router.go
package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/neonmart/storefront-backend/internal/cart"
	"github.com/neonmart/storefront-backend/internal/config"
	"github.com/neonmart/storefront-backend/internal/handlers"
	"github.com/neonmart/storefront-backend/internal/middleware"
	"github.com/neonmart/storefront-backend/internal/services"
	"github.com/neonmart/storefront-backend/internal/utils"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize services
	catalogService := services.NewCatalogService(db)
	orderService := services.NewOrderService(db)
	reviewService := services.NewReviewService(db)
	settingsService := services.NewSettingsService(db)
	authService := services.NewAuthService(cfg)
	storageService, err := services.NewStorageService(cfg)
	if err != nil {
		logrus.WithError(err).Warn("Storage service unavailable, image uploads disabled")
	}

	cartManager := cart.NewManager(time.Duration(cfg.Cart.SessionTTLMinutes) * time.Minute)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	catalogHandler := handlers.NewCatalogHandler(catalogService, storageService)
	cartHandler := handlers.NewCartHandler(cartManager, catalogService, orderService)
	orderHandler := handlers.NewOrderHandler(orderService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	footerHandler := handlers.NewFooterHandler(settingsService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Authentication routes
		auth := v1.Group("/auth")
		auth.Use(middleware.AuthRateLimit())
		{
			auth.POST("/login", authHandler.Login)
		}

		// Catalog routes
		products := v1.Group("/products")
		{
			products.GET("", catalogHandler.GetProducts)
			products.GET("/:id", catalogHandler.GetProduct)

			// Admin routes
			protected := products.Group("")
			protected.Use(middleware.AdminRequired())
			{
				protected.POST("", catalogHandler.CreateProduct)
				protected.PUT("/:id", catalogHandler.UpdateProduct)
				protected.DELETE("/:id", catalogHandler.DeleteProduct)
				protected.POST("/upload-images", catalogHandler.UploadProductImages)
			}
		}

		// Cart routes (session-scoped via X-Session-ID header)
		cartRoutes := v1.Group("/cart")
		{
			cartRoutes.GET("", cartHandler.GetCart)
			cartRoutes.DELETE("", cartHandler.ClearCart)
			cartRoutes.POST("/items", cartHandler.AddItem)
			cartRoutes.PUT("/items/:productId", cartHandler.SetQuantity)
			cartRoutes.DELETE("/items/:productId", cartHandler.RemoveItem)
			cartRoutes.POST("/checkout", cartHandler.Checkout)
		}

		// Uploaded image cleanup, by the storage key the upload returned
		v1.DELETE("/product-images", middleware.AdminRequired(), catalogHandler.DeleteProductImage)

		// Order routes
		v1.POST("/orders", orderHandler.SubmitOrder)
		v1.GET("/user-orders", orderHandler.GetUserOrders)
		v1.GET("/orders/:id/invoice", orderHandler.GetInvoice)

		orders := v1.Group("/orders")
		orders.Use(middleware.AdminRequired())
		{
			orders.GET("", orderHandler.GetOrders)
			orders.PUT("/:id/status", orderHandler.UpdateStatus)
		}

		// Review routes
		reviews := v1.Group("/reviews")
		{
			reviews.GET("", reviewHandler.GetReviews)
			reviews.POST("", reviewHandler.CreateReview)
			reviews.POST("/:id/like", reviewHandler.ToggleLike)
		}

		// Footer routes
		v1.GET("/footer", footerHandler.GetFooter)
		v1.PUT("/footer", middleware.AdminRequired(), footerHandler.UpdateFooter)
	}

	// Static file serving for locally stored uploads (development)
	if cfg.Environment == "development" {
		r.Static("/uploads", "./uploads")
	}

	return r
}
