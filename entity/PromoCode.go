package entity

import (
	"time"

	"gorm.io/gorm"
)

const (
	DiscountPercentage = "percentage"
	DiscountFixed      = "fixed"
)

type PromoCode struct {
	gorm.Model
	Code           string     `gorm:"size:50;uniqueIndex;not null" json:"code"` // stored uppercase
	DiscountType   string     `gorm:"size:50;not null" json:"discountType"`    // percentage | fixed
	DiscountValue  float64    `gorm:"not null" json:"discountValue"`
	MinOrderAmount float64    `gorm:"default:0" json:"minOrderAmount"`
	MaxDiscount    *float64   `json:"maxDiscount,omitempty"` // percentage type only
	IsActive       bool       `gorm:"default:true" json:"isActive"`
	ExpiresAt      *time.Time `json:"expiresAt,omitempty"`
	UsageLimit     *int       `json:"usageLimit,omitempty"`
	UsedCount      int        `gorm:"default:0" json:"usedCount"`
}
