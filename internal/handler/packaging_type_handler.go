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

// ListPackagingTypes handles retrieving packaging types with pagination and filters
func ListPackagingTypes(c echo.Context) error {
	log := logger.FromContext(c)
	metrics.RecordEntityOperation("packaging_type", "list")

	svc := service.NewPackagingTypeService(database.GetDB())
	result, err := svc.List(listParams(c), boolQuery(c, "is_active"))
	if err != nil {
		log.Error("Failed to list packaging types", zap.Error(err))
		return respondError(c, err)
	}

	log.Info("Packaging types retrieved successfully",
		zap.Int("count", len(result.Items)),
		zap.Int64("total", result.Total))
	return c.JSON(http.StatusOK, result)
}

// GetPackagingType handles retrieving a single packaging type by ID
func GetPackagingType(c echo.Context) error {
	log := logger.FromContext(c)
	metrics.RecordEntityOperation("packaging_type", "get")

	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid packaging type ID"})
	}

	svc := service.NewPackagingTypeService(database.GetDB())
	pt, err := svc.Get(id)
	if err != nil {
		log.Warn("Packaging type not found", zap.Uint("packaging_type_id", id), zap.Error(err))
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, pt)
}

// CreatePackagingType handles creating a new packaging type
func CreatePackagingType(c echo.Context) error {
	log := logger.FromContext(c)
	metrics.RecordEntityOperation("packaging_type", "create")

	var req service.PackagingTypeCreate
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	log.Info("Packaging type creation request", zap.String("name", req.Name))

	svc := service.NewPackagingTypeService(database.GetDB())
	pt, err := svc.Create(req)
	if err != nil {
		log.Warn("Failed to create packaging type", zap.String("name", req.Name), zap.Error(err))
		return respondError(c, err)
	}

	log.Info("Packaging type created successfully",
		zap.Uint("packaging_type_id", pt.ID),
		zap.String("name", pt.Name))
	return c.JSON(http.StatusCreated, pt)
}

// UpdatePackagingType handles updating an existing packaging type
func UpdatePackagingType(c echo.Context) error {
	log := logger.FromContext(c)
	metrics.RecordEntityOperation("packaging_type", "update")

	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid packaging type ID"})
	}

	var req service.PackagingTypeUpdate
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Uint("packaging_type_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	svc := service.NewPackagingTypeService(database.GetDB())
	pt, err := svc.Update(id, req)
	if err != nil {
		log.Warn("Failed to update packaging type", zap.Uint("packaging_type_id", id), zap.Error(err))
		return respondError(c, err)
	}

	log.Info("Packaging type updated successfully",
		zap.Uint("packaging_type_id", pt.ID),
		zap.String("name", pt.Name))
	return c.JSON(http.StatusOK, pt)
}

// DeletePackagingType handles deleting a packaging type. This is a soft
// delete: the row stays with is_active=false.
func DeletePackagingType(c echo.Context) error {
	log := logger.FromContext(c)
	metrics.RecordEntityOperation("packaging_type", "delete")

	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid packaging type ID"})
	}

	svc := service.NewPackagingTypeService(database.GetDB())
	if err := svc.Delete(id); err != nil {
		log.Warn("Failed to delete packaging type", zap.Uint("packaging_type_id", id), zap.Error(err))
		return respondError(c, err)
	}

	log.Info("Packaging type deactivated", zap.Uint("packaging_type_id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "Packaging type deleted successfully"})
}
