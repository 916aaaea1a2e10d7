package services

import (
	"errors"
	"fmt"
	"math/rand"

	"movecrm-backend/models"

	"gorm.io/gorm"
)

const orderNumberAttempts = 10

// GenerateOrderNumber produces a display number of the form "#" followed by a
// five-digit numeral in [10000, 99999]. Candidates are checked against the
// store and retried on collision; the unique index on order_number backstops
// a race between two concurrent creates.
func GenerateOrderNumber(db *gorm.DB) (string, error) {
	for attempt := 0; attempt < orderNumberAttempts; attempt++ {
		number := fmt.Sprintf("#%d", rand.Intn(90000)+10000)

		var count int64
		if err := db.Model(&models.Order{}).Where("order_number = ?", number).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return number, nil
		}
	}
	return "", errors.New("could not allocate a free order number")
}
