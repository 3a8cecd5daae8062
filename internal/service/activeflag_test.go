package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeActiveFlag(t *testing.T) {
	assert.True(t, NormalizeActiveFlag(true))
	assert.False(t, NormalizeActiveFlag(false))

	// integers in either decoded width
	assert.True(t, NormalizeActiveFlag(1))
	assert.False(t, NormalizeActiveFlag(0))
	assert.True(t, NormalizeActiveFlag(int64(1)))
	assert.True(t, NormalizeActiveFlag(uint(1)))
	assert.False(t, NormalizeActiveFlag(2))

	// JSON numbers arrive as float64
	assert.True(t, NormalizeActiveFlag(float64(1)))
	assert.False(t, NormalizeActiveFlag(float64(0)))

	// absent renders inactive even though writes default to active
	assert.False(t, NormalizeActiveFlag(nil))
	assert.False(t, NormalizeActiveFlag("yes"))
}

func TestActiveStatusLabel(t *testing.T) {
	assert.Equal(t, "active", ActiveStatusLabel(true))
	assert.Equal(t, "active", ActiveStatusLabel(1))
	assert.Equal(t, "inactive", ActiveStatusLabel(false))
	assert.Equal(t, "inactive", ActiveStatusLabel(nil))
}
