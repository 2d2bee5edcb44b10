package entity

import (
	"gorm.io/gorm"
)

// OrderTracking is an append-only status log; rows are never updated or
// deleted individually, only cascaded with their order.
type OrderTracking struct {
	gorm.Model
	OrderID uint   `gorm:"index;not null" json:"orderId"`
	Order   Order  `json:"-"`
	Status  string `gorm:"size:50;not null" json:"status"`
	Message string `gorm:"type:text;not null" json:"message"`
}
