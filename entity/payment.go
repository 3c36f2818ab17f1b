package entity

import "time"

// Payment is money received from a customer, reducing their owed balance.
type Payment struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	CustomerID uint      `json:"customer_id" gorm:"index;not null"`
	Amount     float64   `json:"amount" gorm:"not null"`
	Date       time.Time `json:"date" gorm:"index;not null"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
