package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormulaProductCreateWithBrandEmbed(t *testing.T) {
	db := newTestDB(t)
	svc := NewFormulaProductService(db)
	brand := seedBrand(t, db, "ACME", "Acme")

	fp, err := svc.Create(FormulaProductCreate{Code: "FP-1", Name: "Standard Mix", BrandID: &brand.ID}, nil)
	require.NoError(t, err)
	require.NotNil(t, fp.Brand)
	assert.Equal(t, brand.ID, fp.Brand.ID)
	assert.Equal(t, "Acme", fp.Brand.Name)
	assert.Equal(t, "ACME", fp.Brand.Code)
}

func TestFormulaProductCreateUnknownBrand(t *testing.T) {
	db := newTestDB(t)
	svc := NewFormulaProductService(db)

	_, err := svc.Create(FormulaProductCreate{Code: "FP-1", Name: "Standard Mix", BrandID: uintPtr(99999)}, nil)
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "brand", notFound.Entity)
}

func TestFormulaProductCreateDuplicateCode(t *testing.T) {
	db := newTestDB(t)
	svc := NewFormulaProductService(db)

	_, err := svc.Create(FormulaProductCreate{Code: "FP-1", Name: "Standard Mix"}, nil)
	require.NoError(t, err)

	_, err = svc.Create(FormulaProductCreate{Code: "FP-1", Name: "Other Mix"}, nil)
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "formula product", conflict.Entity)
}

func TestFormulaProductUpdateClearBrand(t *testing.T) {
	db := newTestDB(t)
	svc := NewFormulaProductService(db)
	brand := seedBrand(t, db, "ACME", "Acme")

	fp, err := svc.Create(FormulaProductCreate{Code: "FP-1", Name: "Standard Mix", BrandID: &brand.ID}, nil)
	require.NoError(t, err)
	require.NotNil(t, fp.Brand)

	cleared, err := svc.Update(fp.ID, FormulaProductUpdate{BrandID: idCleared()}, nil)
	require.NoError(t, err)
	assert.Nil(t, cleared.BrandID)
	assert.Nil(t, cleared.Brand)

	// Absent brand_id leaves the reference untouched.
	reattached, err := svc.Update(fp.ID, FormulaProductUpdate{BrandID: idSet(brand.ID)}, nil)
	require.NoError(t, err)
	untouched, err := svc.Update(fp.ID, FormulaProductUpdate{Name: strPtr("Renamed Mix")}, nil)
	require.NoError(t, err)
	require.NotNil(t, reattached.BrandID)
	require.NotNil(t, untouched.BrandID)
	assert.Equal(t, brand.ID, *untouched.BrandID)
}

func TestFormulaProductUpdateChangedCodeRechecked(t *testing.T) {
	db := newTestDB(t)
	svc := NewFormulaProductService(db)

	_, err := svc.Create(FormulaProductCreate{Code: "FP-1", Name: "One"}, nil)
	require.NoError(t, err)
	second, err := svc.Create(FormulaProductCreate{Code: "FP-2", Name: "Two"}, nil)
	require.NoError(t, err)

	_, err = svc.Update(second.ID, FormulaProductUpdate{Code: strPtr("FP-1")}, nil)
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)

	// Re-submitting its own code is fine.
	same, err := svc.Update(second.ID, FormulaProductUpdate{Code: strPtr("FP-2")}, nil)
	require.NoError(t, err)
	assert.Equal(t, "FP-2", same.Code)
}

func TestFormulaProductHardDelete(t *testing.T) {
	db := newTestDB(t)
	svc := NewFormulaProductService(db)

	fp, err := svc.Create(FormulaProductCreate{Code: "FP-1", Name: "Standard Mix"}, nil)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(fp.ID))

	_, err = svc.Get(fp.ID)
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestFormulaProductListFilterByBrand(t *testing.T) {
	db := newTestDB(t)
	svc := NewFormulaProductService(db)
	acme := seedBrand(t, db, "ACME", "Acme")
	other := seedBrand(t, db, "OTHR", "Other")

	_, err := svc.Create(FormulaProductCreate{Code: "FP-1", Name: "Acme Mix", BrandID: &acme.ID}, nil)
	require.NoError(t, err)
	_, err = svc.Create(FormulaProductCreate{Code: "FP-2", Name: "Other Mix", BrandID: &other.ID}, nil)
	require.NoError(t, err)

	result, err := svc.List(ListParams{}, nil, &acme.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, result.Total)
	assert.Equal(t, "FP-1", result.Items[0].Code)
}
