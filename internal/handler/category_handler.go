package handler

import (
	"errors"
	"net/http"
	"strconv"

	"catalog-service/internal/metrics"
	"catalog-service/internal/service"
	"catalog-service/pkg/database"
	"catalog-service/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ListCategories handles retrieving categories with pagination and filters.
// parent_id filters one subtree; roots_only=true returns root categories.
func ListCategories(c echo.Context) error {
	log := logger.FromContext(c)
	metrics.RecordEntityOperation("category", "list")

	rootsOnly, _ := strconv.ParseBool(c.QueryParam("roots_only"))

	svc := service.NewCategoryService(database.GetDB())
	result, err := svc.List(listParams(c), boolQuery(c, "is_active"), uintQuery(c, "parent_id"), rootsOnly)
	if err != nil {
		log.Error("Failed to list categories", zap.Error(err))
		return respondError(c, err)
	}

	log.Info("Categories retrieved successfully",
		zap.Int("count", len(result.Items)),
		zap.Int64("total", result.Total))
	return c.JSON(http.StatusOK, result)
}

// GetCategory handles retrieving a single category by ID
func GetCategory(c echo.Context) error {
	log := logger.FromContext(c)
	metrics.RecordEntityOperation("category", "get")

	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid category ID"})
	}

	svc := service.NewCategoryService(database.GetDB())
	category, err := svc.Get(id)
	if err != nil {
		log.Warn("Category not found", zap.Uint("category_id", id), zap.Error(err))
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, category)
}

// CreateCategory handles creating a new category
func CreateCategory(c echo.Context) error {
	log := logger.FromContext(c)
	metrics.RecordEntityOperation("category", "create")

	var req service.CategoryCreate
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	log.Info("Category creation request", zap.String("name", req.Name))

	svc := service.NewCategoryService(database.GetDB())
	category, err := svc.Create(req, actorID(c))
	if err != nil {
		log.Warn("Failed to create category", zap.String("name", req.Name), zap.Error(err))
		return respondError(c, err)
	}

	log.Info("Category created successfully",
		zap.Uint("category_id", category.ID),
		zap.String("name", category.Name))
	return c.JSON(http.StatusCreated, category)
}

// UpdateCategory handles updating an existing category
func UpdateCategory(c echo.Context) error {
	log := logger.FromContext(c)
	metrics.RecordEntityOperation("category", "update")

	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid category ID"})
	}

	var req service.CategoryUpdate
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Uint("category_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	svc := service.NewCategoryService(database.GetDB())
	category, err := svc.Update(id, req, actorID(c))
	if err != nil {
		log.Warn("Failed to update category", zap.Uint("category_id", id), zap.Error(err))
		return respondError(c, err)
	}

	log.Info("Category updated successfully",
		zap.Uint("category_id", category.ID),
		zap.String("name", category.Name))
	return c.JSON(http.StatusOK, category)
}

// DeleteCategory handles deleting a category. Deletion is blocked while the
// category still has subcategories or attached products.
func DeleteCategory(c echo.Context) error {
	log := logger.FromContext(c)
	metrics.RecordEntityOperation("category", "delete")

	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid category ID"})
	}

	svc := service.NewCategoryService(database.GetDB())
	if err := svc.Delete(id); err != nil {
		var guarded *service.GuardedDeleteError
		if errors.As(err, &guarded) {
			metrics.RecordGuardedDelete("category", guarded.Reason)
			log.Warn("Category deletion blocked",
				zap.Uint("category_id", id),
				zap.String("reason", guarded.Reason),
				zap.Int64("dependents", guarded.Count))
		} else {
			log.Warn("Failed to delete category", zap.Uint("category_id", id), zap.Error(err))
		}
		return respondError(c, err)
	}

	log.Info("Category deleted successfully", zap.Uint("category_id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "Category deleted successfully"})
}
