package entity

import (
	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	Name        string `gorm:"size:255;uniqueIndex;not null" json:"name"`
	Description string `json:"description"`
	Image       string `gorm:"size:500" json:"image"`

	Products []Product `json:"-"`
}
