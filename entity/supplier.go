package entity

import (
	"time"

	"gorm.io/gorm"
)

// Supplier mirrors Customer on the purchasing side of the shop.
type Supplier struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Name      string         `json:"name" gorm:"type:text;index;not null"`
	Contact   string         `json:"contact,omitempty" gorm:"type:text"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// Purchase records stock bought from a supplier. It must reference an
// existing supplier; the service rejects the write otherwise.
type Purchase struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	SupplierID uint      `json:"supplier_id" gorm:"index;not null"`
	Quantity   float64   `json:"quantity" gorm:"not null"`
	TotalCost  float64   `json:"total_cost" gorm:"not null"`
	Date       time.Time `json:"date" gorm:"index;not null"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
