package model

import "time"

// Brand represents brand master data. The code is the business key and is
// enforced unique at the storage layer in addition to the service pre-check.
type Brand struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	Code        string    `json:"code" gorm:"type:varchar(20);uniqueIndex;not null"`
	Name        string    `json:"name" gorm:"type:varchar(100);not null"`
	Description string    `json:"description,omitempty" gorm:"type:text"`
	LogoURL     string    `json:"logo_url,omitempty" gorm:"type:varchar(255)"`
	Website     string    `json:"website,omitempty" gorm:"type:varchar(255)"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	CreatedBy   *uint     `json:"created_by,omitempty"`
	UpdatedBy   *uint     `json:"updated_by,omitempty"`
}
