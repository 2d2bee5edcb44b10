package repository

import (
	"github.com/muhammadnuman-eng/shawarmabackend/entity"
	"gorm.io/gorm"
)

type AddressRepository struct{ DB *gorm.DB }

func NewAddressRepository(db *gorm.DB) *AddressRepository { return &AddressRepository{DB: db} }

func (r *AddressRepository) ListForUser(userID uint) ([]entity.Address, error) {
	var rows []entity.Address
	err := r.DB.Where("user_id = ?", userID).Order("is_default DESC, id").Find(&rows).Error
	return rows, err
}

func (r *AddressRepository) Create(a *entity.Address) error {
	return r.DB.Create(a).Error
}

// GetForUser resolves a personal delivery address.
func (r *AddressRepository) GetForUser(userID, addressID uint) (*entity.Address, error) {
	var a entity.Address
	if err := r.DB.Where("id = ? AND user_id = ?", addressID, userID).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// GetPickup resolves an address from the system-owned pickup pool.
func (r *AddressRepository) GetPickup(addressID uint, systemEmail string) (*entity.Address, error) {
	var a entity.Address
	err := r.DB.
		Joins("JOIN users ON users.id = addresses.user_id").
		Where("addresses.id = ? AND users.email = ?", addressID, systemEmail).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}
