package repository

import (
	"github.com/muhammadnuman-eng/shawarmabackend/entity"
	"gorm.io/gorm"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// ListForUser joins each line to its live product so totals always reflect
// current catalog prices, unlike finalized orders.
func (r *CartRepository) ListForUser(userID uint) ([]entity.CartItem, error) {
	var items []entity.CartItem
	err := r.DB.Where("user_id = ?", userID).
		Preload("Product").
		Order("id").
		Find(&items).Error
	return items, err
}

func (r *CartRepository) Create(item *entity.CartItem) error {
	return r.DB.Create(item).Error
}

// GetForUser scopes the lookup to the owning user; a foreign line id is
// indistinguishable from a missing one.
func (r *CartRepository) GetForUser(userID, itemID uint) (*entity.CartItem, error) {
	var item entity.CartItem
	if err := r.DB.Where("id = ? AND user_id = ?", itemID, userID).
		Preload("Product").
		First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *CartRepository) UpdateQuantity(tx *gorm.DB, itemID uint, quantity int) error {
	return tx.Model(&entity.CartItem{}).Where("id = ?", itemID).
		Update("quantity", quantity).Error
}

func (r *CartRepository) Delete(tx *gorm.DB, userID, itemID uint) (int64, error) {
	res := tx.Where("id = ? AND user_id = ?", itemID, userID).Delete(&entity.CartItem{})
	return res.RowsAffected, res.Error
}

func (r *CartRepository) Clear(tx *gorm.DB, userID uint) error {
	return tx.Where("user_id = ?", userID).Delete(&entity.CartItem{}).Error
}
