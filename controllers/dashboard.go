package controllers

import (
	"net/http"
	"time"

	"movecrm-backend/config"
	"movecrm-backend/models"
	"movecrm-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type DashboardOverview struct {
	TotalClients     int64           `json:"totalClients"`
	VipClients       int64           `json:"vipClients"`
	TotalOrders      int64           `json:"totalOrders"`
	MonthlyRevenue   decimal.Decimal `json:"monthlyRevenue"`
	PendingOrders    int64           `json:"pendingOrders"`
	InProgressOrders int64           `json:"inProgressOrders"`
	CompletedOrders  int64           `json:"completedOrders"`
	RecentOrders     []RecentOrder   `json:"recentOrders"`
}

type RecentOrder struct {
	OrderNumber string             `json:"orderNumber"`
	ClientName  string             `json:"clientName"`
	Status      models.OrderStatus `json:"status"`
	Amount      decimal.Decimal    `json:"amount"`
	Date        string             `json:"date"` // e.g. "Today", "Yesterday", "3 days ago"
}

// GetDashboardOverview returns the aggregate figures the dashboard landing page shows
func GetDashboardOverview(c *gin.Context) {
	var overview DashboardOverview

	config.DB.Model(&models.Client{}).Count(&overview.TotalClients)
	config.DB.Model(&models.Client{}).Where("is_vip = ?", true).Count(&overview.VipClients)
	config.DB.Model(&models.Order{}).Count(&overview.TotalOrders)

	config.DB.Model(&models.Order{}).Where("status = ?", models.OrderStatusPending).Count(&overview.PendingOrders)
	config.DB.Model(&models.Order{}).Where("status = ?", models.OrderStatusInProgress).Count(&overview.InProgressOrders)
	config.DB.Model(&models.Order{}).Where("status = ?", models.OrderStatusCompleted).Count(&overview.CompletedOrders)

	// This month's revenue, by job date
	now := time.Now()
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	var revenue struct{ Total decimal.Decimal }
	if err := config.DB.Raw(
		"SELECT COALESCE(SUM(amount), 0) AS total FROM orders WHERE date_time >= ?", firstOfMonth).
		Scan(&revenue).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to compute monthly revenue")
		return
	}
	overview.MonthlyRevenue = revenue.Total

	var recent []models.Order
	if err := config.DB.Preload("Client").Order("date_time DESC").Limit(5).Find(&recent).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve recent orders")
		return
	}

	overview.RecentOrders = make([]RecentOrder, 0, len(recent))
	for _, order := range recent {
		item := RecentOrder{
			OrderNumber: order.OrderNumber,
			Status:      order.Status,
			Amount:      order.Amount,
			Date:        utils.RelativeDay(order.DateTime, now),
		}
		if order.Client != nil {
			item.ClientName = order.Client.Name
		}
		overview.RecentOrders = append(overview.RecentOrders, item)
	}

	c.JSON(http.StatusOK, overview)
}
