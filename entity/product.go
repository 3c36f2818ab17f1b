package entity

import (
	"time"

	"gorm.io/gorm"
)

// Product holds the current unit price. A product has exactly one price at a
// time; price history is not versioned. Past sales keep the price they were
// created with (see Sale.TotalPrice).
type Product struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Name      string         `json:"name" gorm:"type:text;uniqueIndex;not null"`
	Price     float64        `json:"price" gorm:"not null"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}
