package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"catalog-service/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T, target string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func TestRespondErrorStatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"not found", &service.NotFoundError{Entity: "brand", ID: 7}, http.StatusNotFound},
		{"conflict", &service.ConflictError{Entity: "brand", Key: "code", Value: "NIKE"}, http.StatusConflict},
		{"guarded delete", &service.GuardedDeleteError{Entity: "category", Reason: service.GuardHasChildren}, http.StatusBadRequest},
		{"validation", &service.ValidationError{Field: "sku", Message: "is required"}, http.StatusBadRequest},
		{"unexpected", assert.AnError, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := newTestContext(t, "/")
			require.NoError(t, respondError(c, tc.err))
			assert.Equal(t, tc.want, rec.Code)
		})
	}
}

func TestParseID(t *testing.T) {
	c, _ := newTestContext(t, "/")
	c.SetParamNames("id")
	c.SetParamValues("42")
	id, ok := parseID(c)
	assert.True(t, ok)
	assert.Equal(t, uint(42), id)

	c.SetParamValues("not-a-number")
	_, ok = parseID(c)
	assert.False(t, ok)
}

func TestListParams(t *testing.T) {
	c, _ := newTestContext(t, "/?page=2&limit=5&search=nike")
	params := listParams(c)
	assert.Equal(t, 2, params.Page)
	assert.Equal(t, 5, params.Limit)
	assert.Equal(t, "nike", params.Search)

	// missing params decode as zero values; the service clamps them
	c, _ = newTestContext(t, "/")
	params = listParams(c)
	assert.Equal(t, 0, params.Page)
	assert.Equal(t, 0, params.Limit)
}

func TestBoolQuery(t *testing.T) {
	c, _ := newTestContext(t, "/?is_active=true")
	value := boolQuery(c, "is_active")
	require.NotNil(t, value)
	assert.True(t, *value)

	c, _ = newTestContext(t, "/?is_active=banana")
	assert.Nil(t, boolQuery(c, "is_active"))

	c, _ = newTestContext(t, "/")
	assert.Nil(t, boolQuery(c, "is_active"))
}

func TestHealth(t *testing.T) {
	c, rec := newTestContext(t, "/health")
	require.NoError(t, Health(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}
