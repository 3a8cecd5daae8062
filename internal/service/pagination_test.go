package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListParamsNormalized(t *testing.T) {
	page, limit, offset := ListParams{}.normalized()
	assert.Equal(t, 1, page)
	assert.Equal(t, 10, limit)
	assert.Equal(t, 0, offset)

	page, limit, offset = ListParams{Page: -3, Limit: 0}.normalized()
	assert.Equal(t, 1, page)
	assert.Equal(t, 10, limit)
	assert.Equal(t, 0, offset)

	page, limit, offset = ListParams{Page: 3, Limit: 25}.normalized()
	assert.Equal(t, 3, page)
	assert.Equal(t, 25, limit)
	assert.Equal(t, 50, offset)
}

func TestNewListResultTotalPages(t *testing.T) {
	assert.Equal(t, 3, newListResult([]int{}, 25, 1, 10).TotalPages)
	assert.Equal(t, 1, newListResult([]int{}, 10, 1, 10).TotalPages)
	assert.Equal(t, 0, newListResult([]int{}, 0, 1, 10).TotalPages)
	assert.Equal(t, 1, newListResult([]int{}, 1, 1, 10).TotalPages)
}

func TestSearchPattern(t *testing.T) {
	assert.Equal(t, "%nike%", searchPattern("NiKe"))
	assert.Equal(t, "%%", searchPattern(""))
}
