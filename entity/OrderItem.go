package entity

import (
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	OrderID uint  `gorm:"index;not null" json:"orderId"`
	Order   Order `json:"-"`

	// nullable so historical orders survive catalog deletions
	ProductID *uint    `json:"productId,omitempty"`
	Product   *Product `json:"-"` // preload only when an image is wanted

	// snapshot at creation time
	ItemName  string  `gorm:"size:255;not null" json:"itemName"`
	Quantity  int     `gorm:"default:1" json:"quantity"`
	UnitPrice float64 `gorm:"not null" json:"unitPrice"`

	// customization/add-on payload frozen as JSON text
	AdditionalData string `gorm:"type:text" json:"-"`
}
