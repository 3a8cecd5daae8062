package service

import (
	"testing"

	"catalog-service/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryCreateWithParent(t *testing.T) {
	db := newTestDB(t)
	svc := NewCategoryService(db)
	root := seedCategory(t, db, "Beverages", nil)

	child, err := svc.Create(CategoryCreate{Name: "Juices", ParentID: &root.ID}, nil)
	require.NoError(t, err)
	require.NotNil(t, child.ParentID)
	assert.Equal(t, root.ID, *child.ParentID)

	_, err = svc.Create(CategoryCreate{Name: "Orphans", ParentID: uintPtr(99999)}, nil)
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestCategoryUpdateParentGuards(t *testing.T) {
	db := newTestDB(t)
	svc := NewCategoryService(db)
	root := seedCategory(t, db, "Beverages", nil)
	child := seedCategory(t, db, "Juices", &root.ID)

	_, err := svc.Update(child.ID, CategoryUpdate{ParentID: idSet(child.ID)}, nil)
	var invalid *ValidationError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "parent_id", invalid.Field)

	detached, err := svc.Update(child.ID, CategoryUpdate{ParentID: idCleared()}, nil)
	require.NoError(t, err)
	assert.Nil(t, detached.ParentID)
}

func TestCategoryDeleteGuardHasChildren(t *testing.T) {
	db := newTestDB(t)
	svc := NewCategoryService(db)
	root := seedCategory(t, db, "Beverages", nil)
	seedCategory(t, db, "Juices", &root.ID)
	seedCategory(t, db, "Sodas", &root.ID)

	err := svc.Delete(root.ID)
	var guarded *GuardedDeleteError
	require.ErrorAs(t, err, &guarded)
	assert.Equal(t, GuardHasChildren, guarded.Reason)
	assert.EqualValues(t, 2, guarded.Count)

	// The guarded delete leaves everything intact.
	var count int64
	require.NoError(t, db.Model(&model.Category{}).Count(&count).Error)
	assert.EqualValues(t, 3, count)
}

func TestCategoryDeleteGuardHasDependents(t *testing.T) {
	db := newTestDB(t)
	svc := NewCategoryService(db)
	category := seedCategory(t, db, "Beverages", nil)

	for _, sku := range []string{"SKU-1", "SKU-2", "SKU-3"} {
		product := model.Product{Name: "P " + sku, SKU: sku, CategoryID: category.ID, IsActive: true}
		require.NoError(t, db.Create(&product).Error)
	}

	err := svc.Delete(category.ID)
	var guarded *GuardedDeleteError
	require.ErrorAs(t, err, &guarded)
	assert.Equal(t, GuardHasDependents, guarded.Reason)
	assert.EqualValues(t, 3, guarded.Count)

	var count int64
	require.NoError(t, db.Model(&model.Category{}).Where("id = ?", category.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCategoryDeleteChildrenCheckedBeforeDependents(t *testing.T) {
	// With both subcategories and products attached, the structural problem
	// is reported first.
	db := newTestDB(t)
	svc := NewCategoryService(db)
	root := seedCategory(t, db, "Beverages", nil)
	seedCategory(t, db, "Juices", &root.ID)
	product := model.Product{Name: "Cola", SKU: "SKU-1", CategoryID: root.ID, IsActive: true}
	require.NoError(t, db.Create(&product).Error)

	err := svc.Delete(root.ID)
	var guarded *GuardedDeleteError
	require.ErrorAs(t, err, &guarded)
	assert.Equal(t, GuardHasChildren, guarded.Reason)
}

func TestCategoryDeleteAfterClearing(t *testing.T) {
	db := newTestDB(t)
	svc := NewCategoryService(db)
	root := seedCategory(t, db, "Beverages", nil)
	child := seedCategory(t, db, "Juices", &root.ID)

	require.Error(t, svc.Delete(root.ID))

	require.NoError(t, svc.Delete(child.ID))
	require.NoError(t, svc.Delete(root.ID))

	var count int64
	require.NoError(t, db.Model(&model.Category{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestCategoryListRootsAndChildren(t *testing.T) {
	db := newTestDB(t)
	svc := NewCategoryService(db)
	root := seedCategory(t, db, "Beverages", nil)
	seedCategory(t, db, "Juices", &root.ID)
	seedCategory(t, db, "Snacks", nil)

	roots, err := svc.List(ListParams{}, nil, nil, true)
	require.NoError(t, err)
	assert.EqualValues(t, 2, roots.Total)

	children, err := svc.List(ListParams{}, nil, &root.ID, false)
	require.NoError(t, err)
	assert.EqualValues(t, 1, children.Total)
	assert.Equal(t, "Juices", children.Items[0].Name)
}
