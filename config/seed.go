package config

import (
	"log"
	"time"

	"movecrm-backend/models"
	"movecrm-backend/services"

	"github.com/shopspring/decimal"
)

// SeedDB loads a small set of demo clients and orders for local development.
// It is a no-op when the clients table is not empty.
func SeedDB() {
	var count int64
	if err := DB.Model(&models.Client{}).Count(&count).Error; err != nil {
		log.Printf("Seed skipped: %v", err)
		return
	}
	if count > 0 {
		return
	}

	log.Println("Seeding database...")

	clients := []models.Client{
		{Name: "Анна Коэн", Phone: "+972 52-123-4567", Email: "anna.cohen@gmail.com", IsVip: true},
		{Name: "Давид Леви", Phone: "+972 54-987-6543", Email: "david.levi@gmail.com"},
		{Name: "Рут Голдштейн", Phone: "+972 50-555-1234", Email: "ruth.goldstein@gmail.com"},
	}
	for i := range clients {
		if err := DB.Create(&clients[i]).Error; err != nil {
			log.Printf("Seed failed: %v", err)
			return
		}
	}

	orders := []models.Order{
		{
			OrderNumber: "#32845",
			ClientID:    clients[0].ID,
			DateTime:    time.Date(2025, 4, 14, 14, 0, 0, 0, time.UTC),
			Status:      models.OrderStatusInProgress,
			Amount:      decimal.NewFromInt(2500),
			Description: "Переезд квартиры",
		},
		{
			OrderNumber: "#32846",
			ClientID:    clients[1].ID,
			DateTime:    time.Date(2025, 4, 14, 17, 0, 0, 0, time.UTC),
			Status:      models.OrderStatusPending,
			Amount:      decimal.NewFromInt(3200),
			Description: "Переезд офиса",
		},
		{
			OrderNumber: "#32844",
			ClientID:    clients[2].ID,
			DateTime:    time.Date(2025, 4, 14, 9, 30, 0, 0, time.UTC),
			Status:      models.OrderStatusCompleted,
			Amount:      decimal.NewFromInt(1800),
			Description: "Перевозка мебели",
		},
	}
	for i := range orders {
		if err := DB.Create(&orders[i]).Error; err != nil {
			log.Printf("Seed failed: %v", err)
			return
		}
	}

	// Bring the derived client statistics in line with the seeded orders.
	for i := range clients {
		if err := services.RecalculateClientStats(DB, clients[i].ID); err != nil {
			log.Printf("Seed stats recalculation failed for %s: %v", clients[i].Name, err)
		}
	}

	log.Println("Database seeded successfully")
}
