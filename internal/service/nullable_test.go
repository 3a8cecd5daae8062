package service

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNullableIDUnmarshalStates(t *testing.T) {
	var absent ProductUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Runner"}`), &absent))
	assert.False(t, absent.BrandID.Set, "field missing from the payload")

	var null ProductUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"brand_id":null}`), &null))
	assert.True(t, null.BrandID.Set)
	assert.Nil(t, null.BrandID.ID)

	var set ProductUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"brand_id":42}`), &set))
	assert.True(t, set.BrandID.Set)
	require.NotNil(t, set.BrandID.ID)
	assert.Equal(t, uint(42), *set.BrandID.ID)
}

func TestNullableIDMarshal(t *testing.T) {
	out, err := json.Marshal(idSet(7))
	require.NoError(t, err)
	assert.Equal(t, "7", string(out))

	out, err = json.Marshal(idCleared())
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))

	out, err = json.Marshal(NullableID{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))
}
