package services_test

import (
	"fmt"
	"regexp"
	"strings"
	"testing"
	"time"

	"movecrm-backend/models"
	"movecrm-backend/services"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Client{}, &models.Order{}))
	return db
}

func createClient(t *testing.T, db *gorm.DB, email string) models.Client {
	t.Helper()

	client := models.Client{
		Name:  "Анна Коэн",
		Phone: "+972521234567",
		Email: email,
	}
	require.NoError(t, db.Create(&client).Error)
	return client
}

func createOrder(t *testing.T, db *gorm.DB, clientID uuid.UUID, number string, amount int64, dateTime time.Time) models.Order {
	t.Helper()

	order := models.Order{
		OrderNumber: number,
		ClientID:    clientID,
		DateTime:    dateTime,
		Status:      models.OrderStatusPending,
		Amount:      decimal.NewFromInt(amount),
	}
	require.NoError(t, db.Create(&order).Error)
	return order
}

func TestRecalculateClientStats(t *testing.T) {
	db := setupTestDB(t)
	client := createClient(t, db, "anna.cohen@gmail.com")

	later := time.Date(2025, 4, 14, 14, 0, 0, 0, time.UTC)
	earlier := time.Date(2025, 4, 10, 9, 30, 0, 0, time.UTC)
	createOrder(t, db, client.ID, "#10001", 2500, later)
	createOrder(t, db, client.ID, "#10002", 700, earlier)

	require.NoError(t, services.RecalculateClientStats(db, client.ID))

	var got models.Client
	require.NoError(t, db.First(&got, "id = ?", client.ID).Error)
	require.Equal(t, 2, got.TotalOrders)
	require.True(t, got.TotalAmount.Equal(decimal.NewFromInt(3200)), "totalAmount = %s", got.TotalAmount)
	require.NotNil(t, got.LastOrderDate)
	require.True(t, got.LastOrderDate.Equal(later), "lastOrderDate = %s", got.LastOrderDate)
}

func TestRecalculateClientStatsRecomputesNotIncrements(t *testing.T) {
	db := setupTestDB(t)
	client := createClient(t, db, "david.levi@gmail.com")
	order := createOrder(t, db, client.ID, "#10003", 2500, time.Date(2025, 4, 14, 14, 0, 0, 0, time.UTC))

	require.NoError(t, services.RecalculateClientStats(db, client.ID))

	// Changing the amount must be reflected exactly, not added on top
	order.Amount = decimal.NewFromInt(1000)
	require.NoError(t, db.Save(&order).Error)
	require.NoError(t, services.RecalculateClientStats(db, client.ID))

	var got models.Client
	require.NoError(t, db.First(&got, "id = ?", client.ID).Error)
	require.Equal(t, 1, got.TotalOrders)
	require.True(t, got.TotalAmount.Equal(decimal.NewFromInt(1000)), "totalAmount = %s", got.TotalAmount)
}

func TestRecalculateClientStatsEmptyOrderSet(t *testing.T) {
	db := setupTestDB(t)
	client := createClient(t, db, "ruth.goldstein@gmail.com")
	order := createOrder(t, db, client.ID, "#10004", 1800, time.Date(2025, 4, 14, 9, 30, 0, 0, time.UTC))

	require.NoError(t, services.RecalculateClientStats(db, client.ID))

	require.NoError(t, db.Unscoped().Delete(&order).Error)
	require.NoError(t, services.RecalculateClientStats(db, client.ID))

	var got models.Client
	require.NoError(t, db.First(&got, "id = ?", client.ID).Error)
	require.Equal(t, 0, got.TotalOrders)
	require.True(t, got.TotalAmount.IsZero(), "totalAmount = %s", got.TotalAmount)
	require.Nil(t, got.LastOrderDate)
}

func TestRecalculateClientStatsClientNotFound(t *testing.T) {
	db := setupTestDB(t)

	err := services.RecalculateClientStats(db, uuid.New())
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestGenerateOrderNumberFormat(t *testing.T) {
	db := setupTestDB(t)

	pattern := regexp.MustCompile(`^#\d{5}$`)
	for i := 0; i < 20; i++ {
		number, err := services.GenerateOrderNumber(db)
		require.NoError(t, err)
		require.Regexp(t, pattern, number)
	}
}

func TestGenerateOrderNumberAvoidsExisting(t *testing.T) {
	db := setupTestDB(t)
	client := createClient(t, db, "anna.cohen@gmail.com")

	taken := make(map[string]bool)
	for i := 0; i < 10; i++ {
		number, err := services.GenerateOrderNumber(db)
		require.NoError(t, err)
		require.False(t, taken[number])
		taken[number] = true
		createOrder(t, db, client.ID, number, 100, time.Now())
	}
}
