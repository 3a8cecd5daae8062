package service

import "strings"

const (
	defaultPage  = 1
	defaultLimit = 10
)

// ListParams is the shared pagination/search contract consumed by every list
// operation. Page and limit are clamped to a minimum of 1; zero values take
// the defaults.
type ListParams struct {
	Page   int
	Limit  int
	Search string
}

// normalized returns the clamped page, limit and the resulting offset.
func (p ListParams) normalized() (page, limit, offset int) {
	page = p.Page
	if page < 1 {
		page = defaultPage
	}
	limit = p.Limit
	if limit < 1 {
		limit = defaultLimit
	}
	return page, limit, (page - 1) * limit
}

// ListResult is the shared page shape returned by every list operation.
type ListResult[T any] struct {
	Items      []T   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

func newListResult[T any](items []T, total int64, page, limit int) ListResult[T] {
	return ListResult[T]{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: int((total + int64(limit) - 1) / int64(limit)),
	}
}

// searchPattern builds the case-insensitive substring pattern used with
// LOWER(col) LIKE ?.
func searchPattern(search string) string {
	return "%" + strings.ToLower(search) + "%"
}
