package handler

import (
	"errors"
	"net/http"
	"strconv"

	"catalog-service/internal/service"
	"catalog-service/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// parseID parses the :id path parameter.
func parseID(c echo.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// listParams reads the shared page/limit/search query parameters.
func listParams(c echo.Context) service.ListParams {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	return service.ListParams{
		Page:   page,
		Limit:  limit,
		Search: c.QueryParam("search"),
	}
}

// boolQuery parses an optional boolean query parameter, nil when absent or
// malformed.
func boolQuery(c echo.Context, name string) *bool {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		logger.FromContext(c).Warn("Invalid boolean query parameter",
			zap.String("param", name), zap.String("value", raw))
		return nil
	}
	return &value
}

// uintQuery parses an optional numeric query parameter, nil when absent.
func uintQuery(c echo.Context, name string) *uint {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil
	}
	id := uint(value)
	return &id
}

// actorID retrieves the authenticated user's id for audit stamping.
func actorID(c echo.Context) *uint {
	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return nil
	}
	return &userID
}

// respondError maps the core's typed failures to HTTP status codes:
// NotFound to 404, Conflict to 409, guarded deletes and validation failures
// to 400. Anything else is an internal error and gets logged.
func respondError(c echo.Context, err error) error {
	var notFound *service.NotFoundError
	var conflict *service.ConflictError
	var guarded *service.GuardedDeleteError
	var invalid *service.ValidationError

	switch {
	case errors.As(err, &notFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": notFound.Error()})
	case errors.As(err, &conflict):
		return c.JSON(http.StatusConflict, echo.Map{"error": conflict.Error()})
	case errors.As(err, &guarded):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": guarded.Error()})
	case errors.As(err, &invalid):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": invalid.Error()})
	default:
		logger.FromContext(c).Error("Unexpected error", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
	}
}

// Health is the liveness endpoint.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
