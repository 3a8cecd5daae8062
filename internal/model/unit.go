package model

import "time"

// Unit type classification
const (
	UnitTypeWeight = "WEIGHT"
	UnitTypeLength = "LENGTH"
	UnitTypeVolume = "VOLUME"
	UnitTypePiece  = "PIECE"
	UnitTypeOther  = "OTHER"
)

// Unit represents unit-of-measure master data, keyed on code.
type Unit struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Code      string    `json:"code" gorm:"type:varchar(10);uniqueIndex;not null"`
	Name      string    `json:"name" gorm:"type:varchar(50);not null"`
	Symbol    string    `json:"symbol" gorm:"type:varchar(10)"`
	Type      string    `json:"type" gorm:"type:varchar(20)"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	CreatedBy *uint     `json:"created_by,omitempty"`
	UpdatedBy *uint     `json:"updated_by,omitempty"`
}

// ValidUnitType reports whether t is one of the known unit type values.
func ValidUnitType(t string) bool {
	switch t {
	case UnitTypeWeight, UnitTypeLength, UnitTypeVolume, UnitTypePiece, UnitTypeOther:
		return true
	}
	return false
}
