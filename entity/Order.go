package entity

import (
	"time"

	"gorm.io/gorm"
)

// order statuses
const (
	OrderPending        = "pending"
	OrderConfirmed      = "confirmed"
	OrderPreparing      = "preparing"
	OrderReady          = "ready"
	OrderOutForDelivery = "out_for_delivery"
	OrderDelivered      = "delivered"
	OrderCancelled      = "cancelled"
)

// payment statuses
const (
	PaymentPending  = "pending"
	PaymentPaid     = "paid"
	PaymentFailed   = "failed"
	PaymentRefunded = "refunded"
)

// delivery types
const (
	DeliveryTypeDelivery = "delivery"
	DeliveryTypePickup   = "pickup"
)

type Order struct {
	gorm.Model
	OrderNumber string `gorm:"size:50;uniqueIndex;not null" json:"orderNumber"` // ORD-<year>-<seq>

	UserID uint `gorm:"index;not null" json:"userId"`
	User   User `json:"-"` // preload only for admin detail

	AddressID *uint    `json:"addressId,omitempty"`
	Address   *Address `json:"-"`

	DeliveryType  string `gorm:"size:50;default:delivery" json:"deliveryType"`
	PaymentMethod string `gorm:"size:100" json:"paymentMethod"`
	PaymentStatus string `gorm:"size:50;default:pending" json:"paymentStatus"`

	// fee snapshot at creation, never recomputed
	PromoCode     string  `gorm:"size:50" json:"promoCode,omitempty"`
	PromoDiscount float64 `gorm:"default:0" json:"promoDiscount"`
	Subtotal      float64 `gorm:"not null" json:"subtotal"`
	DeliveryFee   float64 `gorm:"default:0" json:"deliveryFee"`
	PlatformFee   float64 `gorm:"default:0" json:"platformFee"`
	GST           float64 `gorm:"default:0" json:"gst"`
	Total         float64 `gorm:"not null" json:"total"`

	Status                string     `gorm:"size:50;default:pending;index" json:"status"`
	Note                  string     `gorm:"type:text" json:"note,omitempty"`
	EstimatedDeliveryTime *time.Time `json:"estimatedDeliveryTime,omitempty"`

	Items    []OrderItem     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
	Tracking []OrderTracking `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Transactions []Transaction `json:"-"`
}
