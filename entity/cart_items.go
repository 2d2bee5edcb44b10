package entity

import (
	"gorm.io/gorm"
)

type CartItem struct {
	gorm.Model
	UserID uint `gorm:"index;not null" json:"userId"`
	User   User `json:"-"`

	ProductID uint    `gorm:"not null" json:"productId"`
	Product   Product `json:"-"` // preload for live price lookups

	Quantity int `gorm:"default:1" json:"quantity"`

	// opaque JSON payloads kept as text, same shape the client sent
	Customizations string `gorm:"type:text" json:"-"`
	AddOns         string `gorm:"type:text" json:"-"`
}
