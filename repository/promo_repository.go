package repository

import (
	"strings"

	"github.com/muhammadnuman-eng/shawarmabackend/entity"
	"gorm.io/gorm"
)

type PromoRepository struct{ DB *gorm.DB }

func NewPromoRepository(db *gorm.DB) *PromoRepository { return &PromoRepository{DB: db} }

// FindByCode is case-insensitive; codes are canonicalized to uppercase.
func (r *PromoRepository) FindByCode(code string) (*entity.PromoCode, error) {
	var p entity.PromoCode
	if err := r.DB.Where("code = ?", strings.ToUpper(strings.TrimSpace(code))).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PromoRepository) Create(p *entity.PromoCode) error {
	p.Code = strings.ToUpper(strings.TrimSpace(p.Code))
	return r.DB.Create(p).Error
}

// Redeem increments used_count with an in-database guard so concurrent
// redemptions cannot push past the usage limit. Returns affected rows;
// 0 means the guard lost the race or the limit was already reached.
func (r *PromoRepository) Redeem(tx *gorm.DB, promoID uint) (int64, error) {
	res := tx.Model(&entity.PromoCode{}).
		Where("id = ? AND (usage_limit IS NULL OR used_count < usage_limit)", promoID).
		UpdateColumn("used_count", gorm.Expr("used_count + 1"))
	return res.RowsAffected, res.Error
}
