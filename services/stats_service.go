package services

import (
	"time"

	"movecrm-backend/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RecalculateClientStats recomputes totalOrders, totalAmount and lastOrderDate
// for one client from its current order set and writes all three back in a
// single UPDATE. The recomputation is always done from scratch — never as an
// incremental delta — so a missed or reordered update cannot leave the
// statistics drifted.
//
// Returns gorm.ErrRecordNotFound when the client does not exist. Callers that
// mutate orders must run this on the same transaction as the mutation so a
// failed recalculation rolls the whole operation back.
func RecalculateClientStats(db *gorm.DB, clientID uuid.UUID) error {
	var client models.Client
	if err := db.Select("id").First(&client, "id = ?", clientID).Error; err != nil {
		return err
	}

	// All orders count, regardless of status.
	var orders []models.Order
	if err := db.Where("client_id = ?", clientID).Find(&orders).Error; err != nil {
		return err
	}

	totalAmount := decimal.Zero
	var lastOrderDate *time.Time
	for i := range orders {
		totalAmount = totalAmount.Add(orders[i].Amount)
		if lastOrderDate == nil || orders[i].DateTime.After(*lastOrderDate) {
			t := orders[i].DateTime
			lastOrderDate = &t
		}
	}

	// Map-based Updates so a nil lastOrderDate clears the column.
	return db.Model(&models.Client{}).Where("id = ?", clientID).
		Updates(map[string]interface{}{
			"total_orders":    len(orders),
			"total_amount":    totalAmount,
			"last_order_date": lastOrderDate,
		}).Error
}
