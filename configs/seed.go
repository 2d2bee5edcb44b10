package configs

import (
	"log"

	"github.com/muhammadnuman-eng/shawarmabackend/entity"
	"golang.org/x/crypto/bcrypt"
)

// SystemUserEmail owns the shared pickup-location address pool. Pickup
// addresses are system resources, not personal addresses.
const SystemUserEmail = "system@shawarma.local"

func SeedAdmin() error {
	db := DB()
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", email)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.User{
		Email:     email,
		Password:  string(hash),
		FirstName: "Admin",
		LastName:  "Seed",
		Role:      "admin",
	}
	return db.Create(&admin).Error
}

// SeedSystemPickup creates the system user and its pickup branches.
func SeedSystemPickup() error {
	db := DB()

	var sys entity.User
	if err := db.Where("email = ?", SystemUserEmail).
		FirstOrCreate(&sys, entity.User{Email: SystemUserEmail, FirstName: "System", LastName: "Pickup", Role: "system"}).Error; err != nil {
		return err
	}

	branches := []entity.Address{
		{UserID: sys.ID, Name: "Main Branch", Address: "12 Food Street, Gulberg", Latitude: 31.5204, Longitude: 74.3587, Type: "pickup"},
		{UserID: sys.ID, Name: "DHA Branch", Address: "Plaza 5, DHA Phase 4", Latitude: 31.4697, Longitude: 74.4104, Type: "pickup"},
	}
	for _, b := range branches {
		if err := db.Where("user_id = ? AND name = ?", sys.ID, b.Name).FirstOrCreate(&entity.Address{}, b).Error; err != nil {
			return err
		}
	}
	return nil
}

// SeedLookups inserts sample catalog rows, promo codes and default settings.
func SeedLookups() error {
	db := DB()

	db.FirstOrCreate(&entity.AppSetting{}, entity.AppSetting{Key: entity.SettingRegistrationEnabled, Value: "true"})

	var wraps, drinks entity.Category
	db.FirstOrCreate(&wraps, entity.Category{Name: "Wraps"})
	db.FirstOrCreate(&drinks, entity.Category{Name: "Drinks"})

	products := []entity.Product{
		{Name: "Chicken Shawarma", Price: 250.0, CategoryID: wraps.ID, IsAvailable: true},
		{Name: "Beef Shawarma Platter", Price: 450.0, CategoryID: wraps.ID, IsAvailable: true},
		{Name: "Mint Lemonade", Price: 120.0, CategoryID: drinks.ID, IsAvailable: true},
	}
	for _, p := range products {
		if err := db.Where("name = ?", p.Name).FirstOrCreate(&entity.Product{}, p).Error; err != nil {
			return err
		}
	}

	maxDisc := 50.0
	promos := []entity.PromoCode{
		{Code: "SAVE20", DiscountType: entity.DiscountFixed, DiscountValue: 20.0, MinOrderAmount: 150.0, IsActive: true},
		{Code: "WELCOME10", DiscountType: entity.DiscountPercentage, DiscountValue: 10.0, MaxDiscount: &maxDisc, IsActive: true},
	}
	for _, p := range promos {
		if err := db.Where("code = ?", p.Code).FirstOrCreate(&entity.PromoCode{}, p).Error; err != nil {
			return err
		}
	}

	log.Println("lookup tables seeded")
	return nil
}
