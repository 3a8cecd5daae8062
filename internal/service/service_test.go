package service

import (
	"fmt"
	"strings"
	"testing"

	"catalog-service/internal/model"
	"catalog-service/pkg/database"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory database per test with the full
// schema migrated, so the services run against a real gorm dialect
// including the unique indexes.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func boolPtr(b bool) *bool    { return &b }
func uintPtr(u uint) *uint    { return &u }
func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func idSet(u uint) NullableID { return NullableID{Set: true, ID: &u} }
func idCleared() NullableID   { return NullableID{Set: true, ID: nil} }

// seedCategory inserts a category directly and returns it.
func seedCategory(t *testing.T, db *gorm.DB, name string, parentID *uint) model.Category {
	t.Helper()
	category := model.Category{Name: name, ParentID: parentID, IsActive: true}
	require.NoError(t, db.Create(&category).Error)
	return category
}

// seedBrand inserts a brand directly and returns it.
func seedBrand(t *testing.T, db *gorm.DB, code, name string) model.Brand {
	t.Helper()
	brand := model.Brand{Code: code, Name: name, IsActive: true}
	require.NoError(t, db.Create(&brand).Error)
	return brand
}
