package entity

import (
	"gorm.io/gorm"
)

type Address struct {
	gorm.Model
	UserID    uint    `json:"userId"`
	User      User    `json:"-"`
	Name      string  `gorm:"size:255;not null" json:"name"` // e.g. "Home", "Work", or a pickup branch
	Address   string  `gorm:"not null" json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	IsDefault bool    `json:"isDefault"`
	Type      string  `gorm:"size:50;default:home" json:"type"` // home | work | other | pickup
}
