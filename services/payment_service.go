package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/muhammadnuman-eng/shawarmabackend/entity"
	"github.com/muhammadnuman-eng/shawarmabackend/repository"
	"gorm.io/gorm"
)

type PaymentService struct {
	DB        *gorm.DB
	Repo      *repository.PaymentRepository
	OrderRepo *repository.OrderRepository
}

func NewPaymentService(db *gorm.DB, repo *repository.PaymentRepository, orderRepo *repository.OrderRepository) *PaymentService {
	return &PaymentService{DB: db, Repo: repo, OrderRepo: orderRepo}
}

type ProcessPaymentIn struct {
	OrderID       uint    `json:"orderId" binding:"required"`
	PaymentMethod string  `json:"paymentMethod" binding:"required"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
}

// Process records a payment attempt against an order. For cash the order's
// payment status stays pending (settled at delivery) while the transaction
// is recorded as success — that success means "payment intent accepted",
// not "money received". Any other method stands in for a gateway capture
// and marks the order paid.
func (s *PaymentService) Process(userID uint, in *ProcessPaymentIn) (*entity.Transaction, error) {
	order, err := s.OrderRepo.GetOrderForUser(userID, in.OrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	if order.PaymentStatus == entity.PaymentPaid {
		return nil, ErrAlreadyPaid
	}

	orderPaymentStatus := entity.PaymentPaid
	if strings.EqualFold(in.PaymentMethod, "cash") {
		orderPaymentStatus = entity.PaymentPending
	}

	txn := entity.Transaction{
		OrderID:       order.ID,
		Amount:        in.Amount,
		PaymentMethod: in.PaymentMethod,
		Status:        entity.TxnSuccess,
		TxnRef:        newTxnRef(),
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.OrderRepo.UpdatePaymentStatus(tx, order.ID, orderPaymentStatus); err != nil {
			return err
		}
		return s.Repo.CreateTransaction(tx, &txn)
	})
	if err != nil {
		return nil, err
	}
	return &txn, nil
}

// newTxnRef builds a gateway-style reference: timestamp for operators, a
// uuid fragment for uniqueness under same-second creation.
func newTxnRef() string {
	return fmt.Sprintf("TXN-%s-%s", time.Now().UTC().Format("20060102150405"), uuid.NewString()[:8])
}
