package entity

import (
	"time"

	"gorm.io/gorm"
)

// Customer is a shop customer who can buy on credit. Phone is the natural
// key used by the shopkeeper, so it must stay unique.
type Customer struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Name      string         `json:"name" gorm:"type:text;index;not null"`
	Phone     string         `json:"phone" gorm:"type:text;uniqueIndex;not null"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}
