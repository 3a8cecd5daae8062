package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitCreateDefaultsTypeToOther(t *testing.T) {
	db := newTestDB(t)
	svc := NewUnitService(db)

	unit, err := svc.Create(UnitCreate{Code: "PCS", Name: "Pieces", Symbol: "pcs"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "OTHER", unit.Type)
	assert.True(t, unit.IsActive)
}

func TestUnitCreateRejectsUnknownType(t *testing.T) {
	db := newTestDB(t)
	svc := NewUnitService(db)

	_, err := svc.Create(UnitCreate{Code: "KG", Name: "Kilogram", Type: "MASS"}, nil)
	var invalid *ValidationError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "type", invalid.Field)
}

func TestUnitCreateDuplicateCode(t *testing.T) {
	db := newTestDB(t)
	svc := NewUnitService(db)

	_, err := svc.Create(UnitCreate{Code: "KG", Name: "Kilogram", Type: "WEIGHT"}, nil)
	require.NoError(t, err)

	_, err = svc.Create(UnitCreate{Code: "KG", Name: "Kilo", Type: "WEIGHT"}, nil)
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "unit", conflict.Entity)
}

func TestUnitUpdateChangedCodeRechecked(t *testing.T) {
	db := newTestDB(t)
	svc := NewUnitService(db)

	_, err := svc.Create(UnitCreate{Code: "KG", Name: "Kilogram", Type: "WEIGHT"}, nil)
	require.NoError(t, err)
	gram, err := svc.Create(UnitCreate{Code: "G", Name: "Gram", Type: "WEIGHT"}, nil)
	require.NoError(t, err)

	_, err = svc.Update(gram.ID, UnitUpdate{Code: strPtr("KG")}, nil)
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)

	updated, err := svc.Update(gram.ID, UnitUpdate{Symbol: strPtr("g")}, nil)
	require.NoError(t, err)
	assert.Equal(t, "g", updated.Symbol)
	assert.Equal(t, "G", updated.Code)
}

func TestUnitListFilterByType(t *testing.T) {
	db := newTestDB(t)
	svc := NewUnitService(db)

	_, err := svc.Create(UnitCreate{Code: "KG", Name: "Kilogram", Type: "WEIGHT"}, nil)
	require.NoError(t, err)
	_, err = svc.Create(UnitCreate{Code: "L", Name: "Litre", Type: "VOLUME"}, nil)
	require.NoError(t, err)

	result, err := svc.List(ListParams{}, nil, "WEIGHT")
	require.NoError(t, err)
	assert.EqualValues(t, 1, result.Total)
	assert.Equal(t, "KG", result.Items[0].Code)
}

func TestUnitHardDelete(t *testing.T) {
	db := newTestDB(t)
	svc := NewUnitService(db)

	unit, err := svc.Create(UnitCreate{Code: "M", Name: "Metre", Type: "LENGTH"}, nil)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(unit.ID))

	_, err = svc.Get(unit.ID)
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
}
