package services

import (
	"errors"
	"time"

	"github.com/muhammadnuman-eng/shawarmabackend/entity"
	"github.com/muhammadnuman-eng/shawarmabackend/repository"
	"gorm.io/gorm"
)

// PromoService evaluates and redeems promo codes. Evaluate never mutates
// used_count; Redeem is the only mutator and must run inside the same
// transaction as order persistence.
type PromoService struct {
	Repo    *repository.PromoRepository
	Pricing *PricingCalculator
}

func NewPromoService(repo *repository.PromoRepository, pricing *PricingCalculator) *PromoService {
	return &PromoService{Repo: repo, Pricing: pricing}
}

type PromoResult struct {
	Promo    *entity.PromoCode
	Discount float64
}

// Evaluate checks a code against a subtotal and returns the discount it
// would grant. Rejections come back as distinct sentinel errors so logs and
// tests can tell them apart; controllers collapse them all into
// PromoRejectedMessage to resist code enumeration.
func (s *PromoService) Evaluate(code string, subtotal float64) (*PromoResult, error) {
	promo, err := s.Repo.FindByCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPromoNotFound
		}
		return nil, err
	}

	if !promo.IsActive {
		return nil, ErrPromoInactive
	}
	if promo.ExpiresAt != nil && promo.ExpiresAt.Before(time.Now().UTC()) {
		return nil, ErrPromoExpired
	}
	if promo.UsageLimit != nil && promo.UsedCount >= *promo.UsageLimit {
		return nil, ErrPromoExhausted
	}
	if subtotal < promo.MinOrderAmount {
		return nil, ErrPromoBelowMinimum
	}

	var discount float64
	switch promo.DiscountType {
	case entity.DiscountPercentage:
		discount = subtotal * (promo.DiscountValue / 100)
		if promo.MaxDiscount != nil && discount > *promo.MaxDiscount {
			discount = *promo.MaxDiscount
		}
	default: // fixed
		discount = promo.DiscountValue
		// cap so the calculator can never be handed a discount that
		// drives the total negative
		if limit := s.Pricing.MaxDiscountable(subtotal); discount > limit {
			discount = limit
		}
	}

	return &PromoResult{Promo: promo, Discount: discount}, nil
}

// Redeem consumes one use. The guarded in-database increment means a lost
// race surfaces as ErrPromoExhausted rather than an over-count.
func (s *PromoService) Redeem(tx *gorm.DB, promoID uint) error {
	affected, err := s.Repo.Redeem(tx, promoID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrPromoExhausted
	}
	return nil
}
