package handler

import (
	"net/http"

	"catalog-service/internal/metrics"
	"catalog-service/internal/service"
	"catalog-service/pkg/database"
	"catalog-service/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ListFormulaProducts handles retrieving formula products with pagination and filters
func ListFormulaProducts(c echo.Context) error {
	log := logger.FromContext(c)
	metrics.RecordEntityOperation("formula_product", "list")

	svc := service.NewFormulaProductService(database.GetDB())
	result, err := svc.List(listParams(c), boolQuery(c, "is_active"), uintQuery(c, "brand_id"))
	if err != nil {
		log.Error("Failed to list formula products", zap.Error(err))
		return respondError(c, err)
	}

	log.Info("Formula products retrieved successfully",
		zap.Int("count", len(result.Items)),
		zap.Int64("total", result.Total))
	return c.JSON(http.StatusOK, result)
}

// GetFormulaProduct handles retrieving a single formula product by ID
func GetFormulaProduct(c echo.Context) error {
	log := logger.FromContext(c)
	metrics.RecordEntityOperation("formula_product", "get")

	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid formula product ID"})
	}

	svc := service.NewFormulaProductService(database.GetDB())
	fp, err := svc.Get(id)
	if err != nil {
		log.Warn("Formula product not found", zap.Uint("formula_product_id", id), zap.Error(err))
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, fp)
}

// CreateFormulaProduct handles creating a new formula product
func CreateFormulaProduct(c echo.Context) error {
	log := logger.FromContext(c)
	metrics.RecordEntityOperation("formula_product", "create")

	var req service.FormulaProductCreate
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	log.Info("Formula product creation request",
		zap.String("code", req.Code),
		zap.String("name", req.Name))

	svc := service.NewFormulaProductService(database.GetDB())
	fp, err := svc.Create(req, actorID(c))
	if err != nil {
		log.Warn("Failed to create formula product", zap.String("code", req.Code), zap.Error(err))
		return respondError(c, err)
	}

	log.Info("Formula product created successfully",
		zap.Uint("formula_product_id", fp.ID),
		zap.String("code", fp.Code))
	return c.JSON(http.StatusCreated, fp)
}

// UpdateFormulaProduct handles updating an existing formula product
func UpdateFormulaProduct(c echo.Context) error {
	log := logger.FromContext(c)
	metrics.RecordEntityOperation("formula_product", "update")

	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid formula product ID"})
	}

	var req service.FormulaProductUpdate
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Uint("formula_product_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	svc := service.NewFormulaProductService(database.GetDB())
	fp, err := svc.Update(id, req, actorID(c))
	if err != nil {
		log.Warn("Failed to update formula product", zap.Uint("formula_product_id", id), zap.Error(err))
		return respondError(c, err)
	}

	log.Info("Formula product updated successfully",
		zap.Uint("formula_product_id", fp.ID),
		zap.String("code", fp.Code))
	return c.JSON(http.StatusOK, fp)
}

// DeleteFormulaProduct handles deleting a formula product (hard delete)
func DeleteFormulaProduct(c echo.Context) error {
	log := logger.FromContext(c)
	metrics.RecordEntityOperation("formula_product", "delete")

	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid formula product ID"})
	}

	svc := service.NewFormulaProductService(database.GetDB())
	if err := svc.Delete(id); err != nil {
		log.Warn("Failed to delete formula product", zap.Uint("formula_product_id", id), zap.Error(err))
		return respondError(c, err)
	}

	log.Info("Formula product deleted successfully", zap.Uint("formula_product_id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "Formula product deleted successfully"})
}
