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

// ListUnits handles retrieving units with pagination, search and filters
func ListUnits(c echo.Context) error {
	log := logger.FromContext(c)
	metrics.RecordEntityOperation("unit", "list")

	svc := service.NewUnitService(database.GetDB())
	result, err := svc.List(listParams(c), boolQuery(c, "is_active"), c.QueryParam("type"))
	if err != nil {
		log.Error("Failed to list units", zap.Error(err))
		return respondError(c, err)
	}

	log.Info("Units retrieved successfully",
		zap.Int("count", len(result.Items)),
		zap.Int64("total", result.Total))
	return c.JSON(http.StatusOK, result)
}

// GetUnit handles retrieving a single unit by ID
func GetUnit(c echo.Context) error {
	log := logger.FromContext(c)
	metrics.RecordEntityOperation("unit", "get")

	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid unit ID"})
	}

	svc := service.NewUnitService(database.GetDB())
	unit, err := svc.Get(id)
	if err != nil {
		log.Warn("Unit not found", zap.Uint("unit_id", id), zap.Error(err))
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, unit)
}

// CreateUnit handles creating a new unit
func CreateUnit(c echo.Context) error {
	log := logger.FromContext(c)
	metrics.RecordEntityOperation("unit", "create")

	var req service.UnitCreate
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	log.Info("Unit creation request",
		zap.String("code", req.Code),
		zap.String("name", req.Name),
		zap.String("type", req.Type))

	svc := service.NewUnitService(database.GetDB())
	unit, err := svc.Create(req, actorID(c))
	if err != nil {
		log.Warn("Failed to create unit", zap.String("code", req.Code), zap.Error(err))
		return respondError(c, err)
	}

	log.Info("Unit created successfully",
		zap.Uint("unit_id", unit.ID),
		zap.String("code", unit.Code))
	return c.JSON(http.StatusCreated, unit)
}

// UpdateUnit handles updating an existing unit
func UpdateUnit(c echo.Context) error {
	log := logger.FromContext(c)
	metrics.RecordEntityOperation("unit", "update")

	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid unit ID"})
	}

	var req service.UnitUpdate
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Uint("unit_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	svc := service.NewUnitService(database.GetDB())
	unit, err := svc.Update(id, req, actorID(c))
	if err != nil {
		log.Warn("Failed to update unit", zap.Uint("unit_id", id), zap.Error(err))
		return respondError(c, err)
	}

	log.Info("Unit updated successfully",
		zap.Uint("unit_id", unit.ID),
		zap.String("code", unit.Code))
	return c.JSON(http.StatusOK, unit)
}

// DeleteUnit handles deleting a unit (hard delete)
func DeleteUnit(c echo.Context) error {
	log := logger.FromContext(c)
	metrics.RecordEntityOperation("unit", "delete")

	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid unit ID"})
	}

	svc := service.NewUnitService(database.GetDB())
	if err := svc.Delete(id); err != nil {
		log.Warn("Failed to delete unit", zap.Uint("unit_id", id), zap.Error(err))
		return respondError(c, err)
	}

	log.Info("Unit deleted successfully", zap.Uint("unit_id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "Unit deleted successfully"})
}
