package entity

import "time"

// Order is a generic credit extension to a customer (or its settlement when
// Paid is set). Unpaid orders count toward the customer's running balance;
// paid ones are settled and excluded from the statement.
type Order struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	CustomerID uint      `json:"customer_id" gorm:"index;not null"`
	Date       time.Time `json:"date" gorm:"index;not null"`
	Amount     float64   `json:"amount" gorm:"not null"`
	Paid       bool      `json:"paid" gorm:"default:false;index"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
