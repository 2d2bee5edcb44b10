package configs

import (
	"github.com/muhammadnuman-eng/shawarmabackend/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(source string) {
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{TranslateError: true})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {
	// Migrate the schema
	db.AutoMigrate(
		&entity.User{}, &entity.Address{},
		&entity.Category{}, &entity.Product{},
		&entity.CartItem{},
		&entity.PromoCode{},
		&entity.Order{}, &entity.OrderItem{}, &entity.OrderTracking{},
		&entity.Transaction{},
		&entity.AppSetting{},
	)
}
