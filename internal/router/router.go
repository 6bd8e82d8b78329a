// internal/router/router.go
package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ateliermarket/storefront-backend/internal/config"
	"github.com/ateliermarket/storefront-backend/internal/handlers"
	"github.com/ateliermarket/storefront-backend/internal/middleware"
	"github.com/ateliermarket/storefront-backend/internal/repository"
	"github.com/ateliermarket/storefront-backend/internal/services"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize services
	rateSource := services.NewStaticRateSource(cfg.Currency.Rates)
	currencyService := services.NewCurrencyService(rateSource, cfg.Currency.Canonical)
	imageService := services.NewImageService()
	storageService, _ := services.NewStorageService(cfg)

	productRepository := repository.NewProductRepository(db)
	productService := services.NewProductService(productRepository, currencyService, imageService)

	// Initialize handlers
	productHandler := handlers.NewProductHandler(productService, storageService)
	currencyHandler := handlers.NewCurrencyHandler(currencyService, cfg.Currency.Rates)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.Frontend.BaseURL))
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	// API routes
	api := r.Group("/api")
	{
		products := api.Group("/products")
		{
			products.GET("", productHandler.GetProducts)
			products.GET("/search", productHandler.SearchProducts)
			products.PUT("/reorder", productHandler.ReorderFeatured)
			products.POST("/upload-images", middleware.UploadRateLimit(), productHandler.UploadProductImages)
			products.GET("/:id", productHandler.GetProduct)
			products.POST("", productHandler.CreateProduct)
			products.PUT("/:id", productHandler.UpdateProduct)
			products.DELETE("/:id", productHandler.DeleteProduct)
			products.PUT("/:id/related", productHandler.UpdateRelatedProducts)
		}

		api.GET("/currency", currencyHandler.GetCurrencies)
	}

	// Static file serving (for development)
	if cfg.Environment == "development" {
		r.Static("/uploads", "./uploads")
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Route not found"})
	})

	return r
}
