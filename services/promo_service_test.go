package services

import (
	"testing"
	"time"

	"github.com/muhammadnuman-eng/shawarmabackend/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int              { return &n }
func floatPtr(f float64) *float64    { return &f }
func timePtr(t time.Time) *time.Time { return &t }

func TestEvaluateFixed(t *testing.T) {
	db := newTestDB(t)
	svc := newPromoSvc(db)
	seedPromo(t, db, entity.PromoCode{
		Code: "SAVE20", DiscountType: entity.DiscountFixed,
		DiscountValue: 20, MinOrderAmount: 150, IsActive: true,
	})

	res, err := svc.Evaluate("SAVE20", 500)
	require.NoError(t, err)
	assert.InDelta(t, 20.0, res.Discount, 1e-9)

	// lookup is case-insensitive
	res, err = svc.Evaluate("save20", 500)
	require.NoError(t, err)
	assert.InDelta(t, 20.0, res.Discount, 1e-9)
}

func TestEvaluateFixedCappedAtOrderValue(t *testing.T) {
	db := newTestDB(t)
	svc := newPromoSvc(db)
	seedPromo(t, db, entity.PromoCode{
		Code: "HUGE", DiscountType: entity.DiscountFixed,
		DiscountValue: 5000, IsActive: true,
	})

	res, err := svc.Evaluate("HUGE", 100)
	require.NoError(t, err)
	// never more than subtotal + fees, so the total cannot go negative
	assert.InDelta(t, 208.0, res.Discount, 1e-9)
}

func TestEvaluatePercentageCap(t *testing.T) {
	db := newTestDB(t)
	svc := newPromoSvc(db)
	seedPromo(t, db, entity.PromoCode{
		Code: "WELCOME10", DiscountType: entity.DiscountPercentage,
		DiscountValue: 10, MaxDiscount: floatPtr(50), IsActive: true,
	})

	res, err := svc.Evaluate("WELCOME10", 400)
	require.NoError(t, err)
	assert.InDelta(t, 40.0, res.Discount, 1e-9)

	res, err = svc.Evaluate("WELCOME10", 900)
	require.NoError(t, err)
	assert.InDelta(t, 50.0, res.Discount, 1e-9) // capped
}

func TestEvaluateRejections(t *testing.T) {
	db := newTestDB(t)
	svc := newPromoSvc(db)
	seedPromo(t, db, entity.PromoCode{
		Code: "OFF", DiscountType: entity.DiscountFixed, DiscountValue: 10, IsActive: false,
	})
	seedPromo(t, db, entity.PromoCode{
		Code: "OLD", DiscountType: entity.DiscountFixed, DiscountValue: 10, IsActive: true,
		ExpiresAt: timePtr(time.Now().UTC().Add(-time.Hour)),
	})
	seedPromo(t, db, entity.PromoCode{
		Code: "USEDUP", DiscountType: entity.DiscountFixed, DiscountValue: 10, IsActive: true,
		UsageLimit: intPtr(5), UsedCount: 5,
	})
	seedPromo(t, db, entity.PromoCode{
		Code: "BIGMIN", DiscountType: entity.DiscountFixed, DiscountValue: 10, IsActive: true,
		MinOrderAmount: 1000,
	})

	_, err := svc.Evaluate("NOPE", 500)
	assert.ErrorIs(t, err, ErrPromoNotFound)

	_, err = svc.Evaluate("OFF", 500)
	assert.ErrorIs(t, err, ErrPromoInactive)

	_, err = svc.Evaluate("OLD", 500)
	assert.ErrorIs(t, err, ErrPromoExpired)

	_, err = svc.Evaluate("USEDUP", 500)
	assert.ErrorIs(t, err, ErrPromoExhausted)

	_, err = svc.Evaluate("BIGMIN", 500)
	assert.ErrorIs(t, err, ErrPromoBelowMinimum)

	// all of them collapse to the same client-facing rejection
	for _, code := range []string{"NOPE", "OFF", "OLD", "USEDUP", "BIGMIN"} {
		_, err := svc.Evaluate(code, 500)
		assert.True(t, IsPromoRejection(err), "code %s", code)
	}
}

func TestEvaluateDoesNotConsume(t *testing.T) {
	db := newTestDB(t)
	svc := newPromoSvc(db)
	promo := seedPromo(t, db, entity.PromoCode{
		Code: "SAVE20", DiscountType: entity.DiscountFixed, DiscountValue: 20, IsActive: true,
		UsageLimit: intPtr(3),
	})

	for i := 0; i < 10; i++ {
		_, err := svc.Evaluate("SAVE20", 500)
		require.NoError(t, err)
	}

	var reread entity.PromoCode
	require.NoError(t, db.First(&reread, promo.ID).Error)
	assert.Zero(t, reread.UsedCount)
}

func TestRedeemStopsAtLimit(t *testing.T) {
	db := newTestDB(t)
	svc := newPromoSvc(db)
	promo := seedPromo(t, db, entity.PromoCode{
		Code: "TWICE", DiscountType: entity.DiscountFixed, DiscountValue: 20, IsActive: true,
		UsageLimit: intPtr(2),
	})

	require.NoError(t, svc.Redeem(db, promo.ID))
	require.NoError(t, svc.Redeem(db, promo.ID))
	assert.ErrorIs(t, svc.Redeem(db, promo.ID), ErrPromoExhausted)

	var reread entity.PromoCode
	require.NoError(t, db.First(&reread, promo.ID).Error)
	assert.Equal(t, 2, reread.UsedCount)
}

func TestRedeemUnlimited(t *testing.T) {
	db := newTestDB(t)
	svc := newPromoSvc(db)
	promo := seedPromo(t, db, entity.PromoCode{
		Code: "FOREVER", DiscountType: entity.DiscountFixed, DiscountValue: 20, IsActive: true,
	})

	for i := 0; i < 5; i++ {
		require.NoError(t, svc.Redeem(db, promo.ID))
	}

	var reread entity.PromoCode
	require.NoError(t, db.First(&reread, promo.ID).Error)
	assert.Equal(t, 5, reread.UsedCount)
}
