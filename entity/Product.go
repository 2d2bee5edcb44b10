package entity

import (
	"gorm.io/gorm"
)

type Product struct {
	gorm.Model
	Name        string  `gorm:"size:255;not null;index" json:"name"`
	Description string  `json:"description"`
	Price       float64 `gorm:"not null" json:"price"`
	Image       string  `gorm:"size:500" json:"image"`
	IsAvailable bool    `gorm:"default:true" json:"isAvailable"`

	CategoryID uint     `json:"categoryId"`
	Category   Category `json:"-"` // preload only for detail

	OrderItems []OrderItem `json:"-"`
}
