package model

import "time"

// Product statuses
const (
	ProductStatusActive       = "ACTIVE"
	ProductStatusInactive     = "INACTIVE"
	ProductStatusDiscontinued = "DISCONTINUED"
)

// Stock statuses
const (
	StockStatusInStock    = "IN_STOCK"
	StockStatusLowStock   = "LOW_STOCK"
	StockStatusOutOfStock = "OUT_OF_STOCK"
)

// Product is the sellable aggregate. For brand, model and unit it carries
// both a nullable foreign key and a denormalized display name: when the ID
// is set the name column holds the referenced row's name as of the last
// write ("linked"); when only the name column is set the value is caller
// supplied free text with no referential guarantee ("free-text").
type Product struct {
	ID          uint   `json:"id" gorm:"primarykey"`
	SKU         string `json:"sku" gorm:"type:varchar(100);uniqueIndex;not null"`
	Name        string `json:"name" gorm:"type:varchar(255);not null"`
	Description string `json:"description,omitempty" gorm:"type:text"`

	CategoryID uint      `json:"category_id" gorm:"index;not null"`
	Category   *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`

	MaterialID *uint `json:"material_id,omitempty"`

	BrandID   *uint  `json:"brand_id"`
	BrandName string `json:"brand,omitempty" gorm:"column:brand;type:varchar(100)"`
	Brand     *Brand `json:"brand_detail,omitempty" gorm:"foreignKey:BrandID"`

	ModelID   *uint           `json:"model_id"`
	ModelName string          `json:"model,omitempty" gorm:"column:model;type:varchar(100)"`
	Model     *FormulaProduct `json:"model_detail,omitempty" gorm:"foreignKey:ModelID"`

	UnitID   *uint  `json:"unit_id"`
	UnitName string `json:"unit,omitempty" gorm:"column:unit;type:varchar(50)"`
	Unit     *Unit  `json:"unit_detail,omitempty" gorm:"foreignKey:UnitID"`

	// Packaging is free text, independent of the packaging type reference.
	// There is no denormalized column for the packaging type name.
	PackagingTypeID *uint          `json:"packaging_type_id"`
	PackagingType   *PackagingType `json:"packaging_type,omitempty" gorm:"foreignKey:PackagingTypeID"`
	Packaging       string         `json:"packaging,omitempty" gorm:"type:varchar(100)"`

	Weight *float64 `json:"weight,omitempty"`

	Status      string `json:"status" gorm:"type:varchar(20)"`
	StockStatus string `json:"stock_status" gorm:"type:varchar(20)"`
	IsActive    bool   `json:"is_active"`

	ImageURL  string `json:"image_url,omitempty" gorm:"type:varchar(255)"`
	Images    string `json:"images,omitempty" gorm:"type:text"`
	SortOrder int    `json:"sort_order"`

	IsBatchManaged    bool `json:"is_batch_managed"`
	HasExpiryDate     bool `json:"has_expiry_date"`
	ExpiryWarningDays int  `json:"expiry_warning_days"`
	BatchRequired     bool `json:"batch_required"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	CreatedBy *uint     `json:"created_by,omitempty"`
	UpdatedBy *uint     `json:"updated_by,omitempty"`
}
