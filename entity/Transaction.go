package entity

import (
	"gorm.io/gorm"
)

// transaction statuses
const (
	TxnSuccess = "success"
	TxnPending = "pending"
	TxnFailed  = "failed"
)

type Transaction struct {
	gorm.Model
	OrderID uint  `gorm:"index;not null" json:"orderId"`
	Order   Order `json:"-"`

	Amount        float64 `gorm:"not null" json:"amount"`
	PaymentMethod string  `gorm:"size:100;not null" json:"paymentMethod"`
	Status        string  `gorm:"size:50;default:pending" json:"status"`

	// gateway-style reference, distinct from the primary key
	TxnRef string `gorm:"size:100;uniqueIndex" json:"txnRef"`
}
