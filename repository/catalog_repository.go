package repository

import (
	"github.com/muhammadnuman-eng/shawarmabackend/entity"
	"gorm.io/gorm"
)

type CatalogRepository struct{ DB *gorm.DB }

func NewCatalogRepository(db *gorm.DB) *CatalogRepository { return &CatalogRepository{DB: db} }

func (r *CatalogRepository) ListCategories() ([]entity.Category, error) {
	var cats []entity.Category
	err := r.DB.Order("name").Find(&cats).Error
	return cats, err
}

func (r *CatalogRepository) ListProducts(categoryID *uint) ([]entity.Product, error) {
	db := r.DB.Order("name")
	if categoryID != nil && *categoryID != 0 {
		db = db.Where("category_id = ?", *categoryID)
	}
	var products []entity.Product
	err := db.Find(&products).Error
	return products, err
}

func (r *CatalogRepository) GetProduct(id uint) (*entity.Product, error) {
	var p entity.Product
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}
