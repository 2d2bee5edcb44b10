package repository

import (
	"fmt"
	"time"

	"github.com/muhammadnuman-eng/shawarmabackend/entity"
	"gorm.io/gorm"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderForUser(userID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("id = ? AND user_id = ?", orderID, userID).
		Preload("Items").
		First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

type OrderSummary struct {
	ID          uint      `json:"id"`
	OrderNumber string    `json:"orderNumber"`
	Status      string    `json:"status"`
	Total       float64   `json:"total"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (r *OrderRepository) ListOrdersForUser(userID uint, status string, limit int) ([]OrderSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	db := r.DB.Model(&entity.Order{}).
		Select("id, order_number, status, total, created_at").
		Where("user_id = ?", userID)
	if status != "" {
		db = db.Where("status = ?", status)
	}
	var out []OrderSummary
	err := db.Order("id DESC").Limit(limit).Scan(&out).Error
	return out, err
}

func (r *OrderRepository) ListOrders(status string, page, limit int) ([]entity.Order, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 200 {
		limit = 20
	}

	db := r.DB.Model(&entity.Order{})
	if status != "" {
		db = db.Where("status = ?", status)
	}
	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var rows []entity.Order
	err := db.Order("id DESC").Limit(limit).Offset((page - 1) * limit).Find(&rows).Error
	return rows, total, err
}

// NextOrderNumber allocates ORD-<year>-<seq>. The read-max-then-increment
// alone races under concurrent creation; the unique index on order_number
// plus the caller's retry-on-conflict makes it safe.
func (r *OrderRepository) NextOrderNumber(tx *gorm.DB, now time.Time) (string, error) {
	year := now.Year()
	prefix := fmt.Sprintf("ORD-%d-", year)

	var last entity.Order
	err := tx.Where("order_number LIKE ?", prefix+"%").
		Order("order_number DESC").
		First(&last).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return fmt.Sprintf("ORD-%d-001", year), nil
		}
		return "", err
	}

	var seq int
	if _, err := fmt.Sscanf(last.OrderNumber, "ORD-%d-%d", &year, &seq); err != nil {
		return "", fmt.Errorf("malformed order number %q: %w", last.OrderNumber, err)
	}
	return fmt.Sprintf("ORD-%d-%03d", year, seq+1), nil
}

// UpdateStatusGuard is a compare-and-swap on status; affected row count
// tells the caller whether it lost a concurrent transition.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from, to string) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

func (r *OrderRepository) UpdatePaymentStatus(tx *gorm.DB, orderID uint, status string) error {
	return tx.Model(&entity.Order{}).Where("id = ?", orderID).
		Update("payment_status", status).Error
}

// ---------------- Order items ----------------

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) GetOrderItems(orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.Where("order_id = ?", orderID).Order("id").Find(&items).Error
	return items, err
}

// ---------------- Tracking ----------------

func (r *OrderRepository) CreateTracking(tx *gorm.DB, t *entity.OrderTracking) error {
	return tx.Create(t).Error
}

func (r *OrderRepository) GetTracking(orderID uint) ([]entity.OrderTracking, error) {
	var rows []entity.OrderTracking
	err := r.DB.Where("order_id = ?", orderID).Order("created_at, id").Find(&rows).Error
	return rows, err
}
