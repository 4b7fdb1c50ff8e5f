package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/chikoci/Restaurant-Orders/config"
	"github.com/chikoci/Restaurant-Orders/models"
	"github.com/chikoci/Restaurant-Orders/router"
	"github.com/chikoci/Restaurant-Orders/utils"
)

func init() {
	// Load .env di awal sebelum apapun
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}

	utils.InitLogger()
}

func main() {
	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Customer{},
		&models.Category{},
		&models.Menu{},
		&models.PaymentMethod{},
		&models.Table{},
		&models.Order{},
		&models.OrderDetail{},
		&models.Reservation{},
		&models.Review{},
	); err != nil {
		utils.ErrorLogger.Fatalf("Failed to migrate database: %v", err)
	}

	r := router.SetupRouter(db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	utils.InfoLogger.Printf("Report server listening on :%s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatalf("Server stopped: %v", err)
	}
}
