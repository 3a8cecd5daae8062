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

// ListBrands handles retrieving brands with pagination, search and filters
func ListBrands(c echo.Context) error {
	log := logger.FromContext(c)
	metrics.RecordEntityOperation("brand", "list")

	svc := service.NewBrandService(database.GetDB())
	result, err := svc.List(listParams(c), boolQuery(c, "is_active"))
	if err != nil {
		log.Error("Failed to list brands", zap.Error(err))
		return respondError(c, err)
	}

	log.Info("Brands retrieved successfully",
		zap.Int("count", len(result.Items)),
		zap.Int64("total", result.Total))
	return c.JSON(http.StatusOK, result)
}

// GetBrand handles retrieving a single brand by ID
func GetBrand(c echo.Context) error {
	log := logger.FromContext(c)
	metrics.RecordEntityOperation("brand", "get")

	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid brand ID"})
	}

	svc := service.NewBrandService(database.GetDB())
	brand, err := svc.Get(id)
	if err != nil {
		log.Warn("Brand not found", zap.Uint("brand_id", id), zap.Error(err))
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, brand)
}

// CreateBrand handles creating a new brand
func CreateBrand(c echo.Context) error {
	log := logger.FromContext(c)
	metrics.RecordEntityOperation("brand", "create")

	var req service.BrandCreate
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	log.Info("Brand creation request",
		zap.String("code", req.Code),
		zap.String("name", req.Name))

	svc := service.NewBrandService(database.GetDB())
	brand, err := svc.Create(req, actorID(c))
	if err != nil {
		log.Warn("Failed to create brand",
			zap.String("code", req.Code),
			zap.Error(err))
		return respondError(c, err)
	}

	log.Info("Brand created successfully",
		zap.Uint("brand_id", brand.ID),
		zap.String("code", brand.Code),
		zap.String("name", brand.Name))
	return c.JSON(http.StatusCreated, brand)
}

// UpdateBrand handles updating an existing brand
func UpdateBrand(c echo.Context) error {
	log := logger.FromContext(c)
	metrics.RecordEntityOperation("brand", "update")

	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid brand ID"})
	}

	var req service.BrandUpdate
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Uint("brand_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	svc := service.NewBrandService(database.GetDB())
	brand, err := svc.Update(id, req, actorID(c))
	if err != nil {
		log.Warn("Failed to update brand", zap.Uint("brand_id", id), zap.Error(err))
		return respondError(c, err)
	}

	log.Info("Brand updated successfully",
		zap.Uint("brand_id", brand.ID),
		zap.String("code", brand.Code))
	return c.JSON(http.StatusOK, brand)
}

// DeleteBrand handles deleting a brand (hard delete)
func DeleteBrand(c echo.Context) error {
	log := logger.FromContext(c)
	metrics.RecordEntityOperation("brand", "delete")

	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid brand ID"})
	}

	svc := service.NewBrandService(database.GetDB())
	if err := svc.Delete(id); err != nil {
		log.Warn("Failed to delete brand", zap.Uint("brand_id", id), zap.Error(err))
		return respondError(c, err)
	}

	log.Info("Brand deleted successfully", zap.Uint("brand_id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "Brand deleted successfully"})
}

// ActivateBrand handles re-activating a brand
func ActivateBrand(c echo.Context) error {
	return setBrandActive(c, true)
}

// DeactivateBrand handles deactivating a brand without deleting it
func DeactivateBrand(c echo.Context) error {
	return setBrandActive(c, false)
}

func setBrandActive(c echo.Context, active bool) error {
	log := logger.FromContext(c)
	metrics.RecordEntityOperation("brand", "set_active")

	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid brand ID"})
	}

	svc := service.NewBrandService(database.GetDB())
	brand, err := svc.SetActive(id, active, actorID(c))
	if err != nil {
		log.Warn("Failed to toggle brand active flag",
			zap.Uint("brand_id", id),
			zap.Bool("active", active),
			zap.Error(err))
		return respondError(c, err)
	}

	log.Info("Brand active flag updated",
		zap.Uint("brand_id", brand.ID),
		zap.Bool("is_active", brand.IsActive))
	return c.JSON(http.StatusOK, brand)
}
