package main

import (
	"fmt"
	"log"
	"os"

	"movecrm-backend/config"
	"movecrm-backend/models"
	"movecrm-backend/routes"
	"movecrm-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.Client{},
		&models.Order{},
	)

	if os.Getenv("SEED_DB") == "true" {
		config.SeedDB()
	}
}

func main() {
	services.StartStatsReconciler(config.DB)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
