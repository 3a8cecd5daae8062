package model

import "time"

// Price types
const (
	PriceTypeRetail    = "RETAIL"
	PriceTypeWholesale = "WHOLESALE"
	PriceTypePurchase  = "PURCHASE"
)

// ProductPrice is a price row attached to a product. Rows are storage only;
// no calculation happens in this service. Deleting a product removes its
// price rows first, in the same transaction.
type ProductPrice struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	ProductID uint      `json:"product_id" gorm:"index;not null"`
	PriceType string    `json:"price_type" gorm:"type:varchar(20)"`
	Amount    float64   `json:"amount" gorm:"not null"`
	Currency  string    `json:"currency" gorm:"type:varchar(10)"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
