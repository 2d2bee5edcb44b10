package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/muhammadnuman-eng/shawarmabackend/entity"
	"github.com/muhammadnuman-eng/shawarmabackend/pkg/notify"
	"github.com/muhammadnuman-eng/shawarmabackend/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory database per test. TranslateError is
// on so unique-index violations surface as gorm.ErrDuplicatedKey, same as
// the server.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entity.User{}, &entity.Address{},
		&entity.Category{}, &entity.Product{},
		&entity.CartItem{},
		&entity.PromoCode{},
		&entity.Order{}, &entity.OrderItem{}, &entity.OrderTracking{},
		&entity.Transaction{},
		&entity.AppSetting{},
	))
	return db
}

// newTestPricing mirrors the default fee configuration.
func newTestPricing() *PricingCalculator {
	return NewPricingCalculator(100.0, 8.0, 0.18)
}

func seedUser(t *testing.T, db *gorm.DB, email string) *entity.User {
	t.Helper()
	u := entity.User{Email: email, Password: "x", Role: "customer"}
	require.NoError(t, db.Create(&u).Error)
	return &u
}

func seedProduct(t *testing.T, db *gorm.DB, name string, price float64, available bool) *entity.Product {
	t.Helper()
	p := entity.Product{Name: name, Price: price, IsAvailable: available}
	require.NoError(t, db.Create(&p).Error)
	return &p
}

func seedPromo(t *testing.T, db *gorm.DB, promo entity.PromoCode) *entity.PromoCode {
	t.Helper()
	require.NoError(t, db.Create(&promo).Error)
	return &promo
}

func newCartSvc(db *gorm.DB) *CartService {
	return NewCartService(db,
		repository.NewCartRepository(db),
		repository.NewCatalogRepository(db),
		newTestPricing(),
	)
}

func newPromoSvc(db *gorm.DB) *PromoService {
	return NewPromoService(repository.NewPromoRepository(db), newTestPricing())
}

func newOrderSvc(db *gorm.DB) *OrderService {
	return NewOrderService(db,
		repository.NewOrderRepository(db),
		repository.NewCatalogRepository(db),
		repository.NewAddressRepository(db),
		repository.NewUserRepository(db),
		newPromoSvc(db),
		newTestPricing(),
		notify.NoopSender{},
		"system@shawarma.local",
		35*time.Minute,
	)
}

func newPaymentSvc(db *gorm.DB) *PaymentService {
	return NewPaymentService(db,
		repository.NewPaymentRepository(db),
		repository.NewOrderRepository(db),
	)
}
