package model

import "time"

// FormulaProduct represents a product model/formula, keyed on code, with an
// optional reference to the owning brand.
type FormulaProduct struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	Code        string    `json:"code" gorm:"type:varchar(50);uniqueIndex;not null"`
	Name        string    `json:"name" gorm:"type:varchar(100);not null"`
	Description string    `json:"description,omitempty" gorm:"type:text"`
	BrandID     *uint     `json:"brand_id,omitempty"`
	Brand       *Brand    `json:"-" gorm:"foreignKey:BrandID"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	CreatedBy   *uint     `json:"created_by,omitempty"`
	UpdatedBy   *uint     `json:"updated_by,omitempty"`
}
