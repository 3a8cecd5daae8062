package model

import "time"

// Category represents the self-referencing category tree. Root categories
// have a nil ParentID.
type Category struct {
	ID              uint      `json:"id" gorm:"primarykey"`
	Name            string    `json:"name" gorm:"type:varchar(100);not null"`
	Description     string    `json:"description,omitempty" gorm:"type:text"`
	Code            string    `json:"code,omitempty" gorm:"type:varchar(50)"`
	ParentCategory  string    `json:"parent_category,omitempty" gorm:"type:varchar(100)"`
	ParentID        *uint     `json:"parent_id,omitempty" gorm:"index"`
	SortOrder       int       `json:"sort_order"`
	IsActive        bool      `json:"is_active"`
	ImageURL        string    `json:"image_url,omitempty" gorm:"type:varchar(255)"`
	MetaTitle       string    `json:"meta_title,omitempty" gorm:"type:varchar(255)"`
	MetaDescription string    `json:"meta_description,omitempty" gorm:"type:text"`
	MetaKeywords    string    `json:"meta_keywords,omitempty" gorm:"type:varchar(255)"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	CreatedBy       *uint     `json:"created_by,omitempty"`
	UpdatedBy       *uint     `json:"updated_by,omitempty"`
}
