package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBSource  string
	Port      string
	JWTSecret string
	JWTTTL    time.Duration

	// pricing knobs — fixed fees, not distance-derived
	DeliveryFee float64
	PlatformFee float64
	GSTRate     float64

	EstimatedDelivery time.Duration

	NotifyProvider string // console | none
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	return &Config{
		DBSource:          getEnv("DB_SOURCE", "shawarma.db"),
		Port:              getEnv("PORT", "8000"),
		JWTSecret:         getEnv("JWT_SECRET", "changeme"),
		JWTTTL:            time.Duration(24) * time.Hour,
		DeliveryFee:       getEnvFloat("DELIVERY_FEE", 100.0),
		PlatformFee:       getEnvFloat("PLATFORM_FEE", 8.0),
		GSTRate:           getEnvFloat("GST_RATE", 0.18),
		EstimatedDelivery: time.Duration(getEnvInt("ESTIMATED_DELIVERY_MIN", 35)) * time.Minute,
		NotifyProvider:    getEnv("NOTIFY_PROVIDER", "console"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
		log.Printf("invalid %s=%q, using %v", key, v, fallback)
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Printf("invalid %s=%q, using %v", key, v, fallback)
	}
	return fallback
}
