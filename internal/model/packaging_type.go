package model

import "time"

// PackagingType represents packaging master data, keyed on name.
// Deleting a packaging type only clears is_active; the row is kept so
// existing products can still reference it.
type PackagingType struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	Name        string    `json:"name" gorm:"type:varchar(50);uniqueIndex;not null"`
	DisplayName string    `json:"display_name" gorm:"type:varchar(100)"`
	Description string    `json:"description,omitempty" gorm:"type:text"`
	IsActive    bool      `json:"is_active"`
	SortOrder   int       `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
