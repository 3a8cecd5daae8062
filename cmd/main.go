package main

import (
	"catalog-service/internal/handler"
	"catalog-service/internal/metrics"
	mid "catalog-service/internal/middleware"
	"catalog-service/pkg/config"
	"catalog-service/pkg/database"
	"catalog-service/pkg/jwtutil"
	"catalog-service/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	// Load .env file; fall back to environment variables when absent
	_ = godotenv.Load()

	appConfig, err := config.Load()
	if err != nil {
		// Can't use the structured logger yet since it's not initialized
		panic("Failed to load configuration: " + err.Error())
	}

	if err := logger.InitLogger(appConfig); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting catalog-service",
		zap.String("environment", appConfig.Server.Env),
		zap.String("port", appConfig.Server.Port))

	jwtutil.Initialize(&appConfig.JWT)
	log.Info("JWT utility initialized")

	metrics.InitMetrics(appConfig)
	log.Info("Prometheus metrics initialized",
		zap.String("metrics_prefix", appConfig.Metrics.Prefix))

	if err := database.InitDB(appConfig); err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	log.Info("Database connection established")

	e := echo.New()

	// Middleware
	e.Use(middleware.Recover())
	e.Use(mid.RequestIDMiddleware)
	e.Use(mid.MetricsMiddleware)

	// Metrics endpoint
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Health check endpoint
	e.GET("/health", handler.Health)

	// Brand API routes
	brandAPI := e.Group("/api/brands", mid.AuthMiddleware)
	brandAPI.GET("", handler.ListBrands)
	brandAPI.GET("/:id", handler.GetBrand)
	brandAPI.POST("", handler.CreateBrand)
	brandAPI.PUT("/:id", handler.UpdateBrand)
	brandAPI.DELETE("/:id", handler.DeleteBrand)
	brandAPI.POST("/:id/activate", handler.ActivateBrand)
	brandAPI.POST("/:id/deactivate", handler.DeactivateBrand)

	// Unit API routes
	unitAPI := e.Group("/api/units", mid.AuthMiddleware)
	unitAPI.GET("", handler.ListUnits)
	unitAPI.GET("/:id", handler.GetUnit)
	unitAPI.POST("", handler.CreateUnit)
	unitAPI.PUT("/:id", handler.UpdateUnit)
	unitAPI.DELETE("/:id", handler.DeleteUnit)

	// Packaging type API routes
	packagingAPI := e.Group("/api/packaging-types", mid.AuthMiddleware)
	packagingAPI.GET("", handler.ListPackagingTypes)
	packagingAPI.GET("/:id", handler.GetPackagingType)
	packagingAPI.POST("", handler.CreatePackagingType)
	packagingAPI.PUT("/:id", handler.UpdatePackagingType)
	packagingAPI.DELETE("/:id", handler.DeletePackagingType)

	// Formula product API routes
	formulaAPI := e.Group("/api/formula-products", mid.AuthMiddleware)
	formulaAPI.GET("", handler.ListFormulaProducts)
	formulaAPI.GET("/:id", handler.GetFormulaProduct)
	formulaAPI.POST("", handler.CreateFormulaProduct)
	formulaAPI.PUT("/:id", handler.UpdateFormulaProduct)
	formulaAPI.DELETE("/:id", handler.DeleteFormulaProduct)

	// Category API routes
	categoryAPI := e.Group("/api/categories", mid.AuthMiddleware)
	categoryAPI.GET("", handler.ListCategories)
	categoryAPI.GET("/:id", handler.GetCategory)
	categoryAPI.POST("", handler.CreateCategory)
	categoryAPI.PUT("/:id", handler.UpdateCategory)
	categoryAPI.DELETE("/:id", handler.DeleteCategory)

	// Product API routes
	productAPI := e.Group("/api/products", mid.AuthMiddleware)
	productAPI.GET("", handler.ListProducts)
	productAPI.GET("/:id", handler.GetProduct)
	productAPI.POST("", handler.CreateProduct)
	productAPI.PUT("/:id", handler.UpdateProduct)
	productAPI.DELETE("/:id", handler.DeleteProduct)
	productAPI.GET("/:id/prices", handler.ListProductPrices)
	productAPI.POST("/:id/prices", handler.AddProductPrice)

	// Internal route for the inventory event consumer
	e.PATCH("/internal/products/:id/stock", handler.ApplyStockEvent)

	port := appConfig.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}
}
