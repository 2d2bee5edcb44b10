package repository

import (
	"github.com/muhammadnuman-eng/shawarmabackend/entity"
	"gorm.io/gorm"
)

type PaymentRepository struct{ DB *gorm.DB }

func NewPaymentRepository(db *gorm.DB) *PaymentRepository { return &PaymentRepository{DB: db} }

func (r *PaymentRepository) CreateTransaction(tx *gorm.DB, t *entity.Transaction) error {
	return tx.Create(t).Error
}

func (r *PaymentRepository) ListByOrder(orderID uint) ([]entity.Transaction, error) {
	var rows []entity.Transaction
	err := r.DB.Where("order_id = ?", orderID).Order("id").Find(&rows).Error
	return rows, err
}
