package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/muhammadnuman-eng/shawarmabackend/configs"
	"github.com/muhammadnuman-eng/shawarmabackend/middlewares"
	"github.com/muhammadnuman-eng/shawarmabackend/routes"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()

	// migrate
	configs.SetupDatabase()

	if err := configs.SeedAdmin(); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}
	if err := configs.SeedSystemPickup(); err != nil {
		log.Fatalf("seed pickup locations failed: %v", err)
	}
	if err := configs.SeedLookups(); err != nil {
		log.Fatalf("seed lookups failed: %v", err)
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, db, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
