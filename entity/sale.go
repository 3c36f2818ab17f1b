package entity

import "time"

// Sale records a credit sale of a product to a customer. TotalPrice is fixed
// at creation (quantity × product price at time of sale) and never
// recomputed, so later price edits do not rewrite history.
type Sale struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	ProductID  uint      `json:"product_id" gorm:"index;not null"`
	CustomerID uint      `json:"customer_id" gorm:"index;not null"`
	Quantity   int       `json:"quantity" gorm:"not null"`
	TotalPrice float64   `json:"total_price" gorm:"not null"`
	Date       time.Time `json:"date" gorm:"index;not null"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
