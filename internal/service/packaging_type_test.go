package service

import (
	"testing"

	"catalog-service/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackagingTypeCreateDuplicateName(t *testing.T) {
	db := newTestDB(t)
	svc := NewPackagingTypeService(db)

	_, err := svc.Create(PackagingTypeCreate{Name: "box", DisplayName: "Box"})
	require.NoError(t, err)

	_, err = svc.Create(PackagingTypeCreate{Name: "box", DisplayName: "Another Box"})
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "name", conflict.Key)
}

func TestPackagingTypeSoftDelete(t *testing.T) {
	db := newTestDB(t)
	svc := NewPackagingTypeService(db)

	pt, err := svc.Create(PackagingTypeCreate{Name: "crate", DisplayName: "Crate"})
	require.NoError(t, err)
	require.True(t, pt.IsActive)

	require.NoError(t, svc.Delete(pt.ID))

	// The row survives with is_active=false, unlike the brand hard delete.
	var kept model.PackagingType
	require.NoError(t, db.First(&kept, pt.ID).Error)
	assert.False(t, kept.IsActive)

	// Deleting again still succeeds; the row stays put.
	require.NoError(t, svc.Delete(pt.ID))

	var notFound *NotFoundError
	require.ErrorAs(t, svc.Delete(99999), &notFound)
}

func TestPackagingTypeUpdateNameRechecked(t *testing.T) {
	db := newTestDB(t)
	svc := NewPackagingTypeService(db)

	_, err := svc.Create(PackagingTypeCreate{Name: "box", DisplayName: "Box"})
	require.NoError(t, err)
	bag, err := svc.Create(PackagingTypeCreate{Name: "bag", DisplayName: "Bag"})
	require.NoError(t, err)

	_, err = svc.Update(bag.ID, PackagingTypeUpdate{Name: strPtr("box")})
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)

	updated, err := svc.Update(bag.ID, PackagingTypeUpdate{SortOrder: intPtr(5)})
	require.NoError(t, err)
	assert.Equal(t, 5, updated.SortOrder)
}

func TestPackagingTypeListOrdersBySortOrder(t *testing.T) {
	db := newTestDB(t)
	svc := NewPackagingTypeService(db)

	_, err := svc.Create(PackagingTypeCreate{Name: "pallet", DisplayName: "Pallet", SortOrder: 2})
	require.NoError(t, err)
	_, err = svc.Create(PackagingTypeCreate{Name: "box", DisplayName: "Box", SortOrder: 1})
	require.NoError(t, err)

	result, err := svc.List(ListParams{}, nil)
	require.NoError(t, err)
	require.Len(t, result.Items, 2)
	assert.Equal(t, "box", result.Items[0].Name)
	assert.Equal(t, "pallet", result.Items[1].Name)
}
