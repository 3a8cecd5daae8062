package handler

import (
	"net/http"
	"time"

	"catalog-service/internal/metrics"
	"catalog-service/internal/service"
	"catalog-service/pkg/database"
	"catalog-service/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ListProducts handles retrieving products with pagination, search and filters
func ListProducts(c echo.Context) error {
	log := logger.FromContext(c)
	metrics.RecordEntityOperation("product", "list")

	defer metrics.TrackDBOperation("query")(time.Now())

	svc := service.NewProductService(database.GetDB())
	result, err := svc.List(listParams(c),
		boolQuery(c, "is_active"),
		uintQuery(c, "category_id"),
		uintQuery(c, "brand_id"),
		c.QueryParam("status"))
	if err != nil {
		log.Error("Failed to list products", zap.Error(err))
		return respondError(c, err)
	}

	log.Info("Products retrieved successfully",
		zap.Int("count", len(result.Items)),
		zap.Int64("total", result.Total))
	return c.JSON(http.StatusOK, result)
}

// GetProduct handles retrieving a single product by ID with relations
func GetProduct(c echo.Context) error {
	log := logger.FromContext(c)
	metrics.RecordEntityOperation("product", "get")

	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid product ID"})
	}

	svc := service.NewProductService(database.GetDB())
	product, err := svc.Get(id)
	if err != nil {
		log.Warn("Product not found", zap.Uint("product_id", id), zap.Error(err))
		return respondError(c, err)
	}

	log.Info("Product retrieved successfully",
		zap.Uint("product_id", product.ID),
		zap.String("sku", product.SKU))
	return c.JSON(http.StatusOK, echo.Map{
		"product":      product,
		"status_label": service.ActiveStatusLabel(product.IsActive),
	})
}

// CreateProduct handles creating a new product. Supplied brand/model/unit
// IDs are resolved and their names synchronized onto the aggregate.
func CreateProduct(c echo.Context) error {
	log := logger.FromContext(c)
	metrics.RecordEntityOperation("product", "create")

	var req service.ProductCreate
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	log.Info("Product creation request",
		zap.String("sku", req.SKU),
		zap.String("name", req.Name),
		zap.Uint("category_id", req.CategoryID))

	defer metrics.TrackDBOperation("create")(time.Now())

	svc := service.NewProductService(database.GetDB())
	product, err := svc.Create(req, actorID(c))
	if err != nil {
		log.Warn("Failed to create product",
			zap.String("sku", req.SKU),
			zap.Error(err))
		return respondError(c, err)
	}

	log.Info("Product created successfully",
		zap.Uint("product_id", product.ID),
		zap.String("sku", product.SKU),
		zap.String("brand", product.BrandName))
	return c.JSON(http.StatusCreated, product)
}

// UpdateProduct handles partially updating an existing product
func UpdateProduct(c echo.Context) error {
	log := logger.FromContext(c)
	metrics.RecordEntityOperation("product", "update")

	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid product ID"})
	}

	var req service.ProductUpdate
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Uint("product_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	defer metrics.TrackDBOperation("update")(time.Now())

	svc := service.NewProductService(database.GetDB())
	product, err := svc.Update(id, req, actorID(c))
	if err != nil {
		log.Warn("Failed to update product", zap.Uint("product_id", id), zap.Error(err))
		return respondError(c, err)
	}

	log.Info("Product updated successfully",
		zap.Uint("product_id", product.ID),
		zap.String("sku", product.SKU))
	return c.JSON(http.StatusOK, product)
}

// DeleteProduct handles deleting a product and its price rows
func DeleteProduct(c echo.Context) error {
	log := logger.FromContext(c)
	metrics.RecordEntityOperation("product", "delete")

	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid product ID"})
	}

	defer metrics.TrackDBOperation("delete")(time.Now())

	svc := service.NewProductService(database.GetDB())
	if err := svc.Delete(id); err != nil {
		log.Warn("Failed to delete product", zap.Uint("product_id", id), zap.Error(err))
		return respondError(c, err)
	}

	log.Info("Product deleted successfully", zap.Uint("product_id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "Product deleted successfully"})
}

// StockEventRequest is the payload sent by the external inventory consumer.
type StockEventRequest struct {
	StockStatus string `json:"stock_status"`
}

// ApplyStockEvent handles external stock-level notifications. Only the stock
// status and updated_at are rewritten.
func ApplyStockEvent(c echo.Context) error {
	log := logger.FromContext(c)
	metrics.StockEventsCounter.Inc()

	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid product ID"})
	}

	var req StockEventRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Uint("product_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	svc := service.NewProductService(database.GetDB())
	product, err := svc.ApplyStockEvent(id, req.StockStatus)
	if err != nil {
		log.Warn("Failed to apply stock event",
			zap.Uint("product_id", id),
			zap.String("stock_status", req.StockStatus),
			zap.Error(err))
		return respondError(c, err)
	}

	log.Info("Stock event applied",
		zap.Uint("product_id", product.ID),
		zap.String("stock_status", product.StockStatus))
	return c.JSON(http.StatusOK, product)
}

// AddProductPrice handles attaching a price row to a product
func AddProductPrice(c echo.Context) error {
	log := logger.FromContext(c)
	metrics.RecordEntityOperation("product", "add_price")

	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid product ID"})
	}

	var req service.ProductPriceCreate
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Uint("product_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	svc := service.NewProductService(database.GetDB())
	price, err := svc.AddPrice(id, req)
	if err != nil {
		log.Warn("Failed to add product price", zap.Uint("product_id", id), zap.Error(err))
		return respondError(c, err)
	}

	log.Info("Product price added",
		zap.Uint("product_id", id),
		zap.String("price_type", price.PriceType),
		zap.Float64("amount", price.Amount))
	return c.JSON(http.StatusCreated, price)
}

// ListProductPrices handles retrieving the price rows of a product
func ListProductPrices(c echo.Context) error {
	log := logger.FromContext(c)
	metrics.RecordEntityOperation("product", "list_prices")

	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid product ID"})
	}

	svc := service.NewProductService(database.GetDB())
	prices, err := svc.ListPrices(id)
	if err != nil {
		log.Warn("Failed to list product prices", zap.Uint("product_id", id), zap.Error(err))
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, prices)
}
