// controllers/report.go
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

// ReportController handles all reporting functions
type ReportController struct{}

// AnalyticsSummary represents the Analytics data
type AnalyticsSummary struct {
	CurrentMonthRevenue   decimal.Decimal  `json:"currentMonthRevenue"`
	MonthGrowth           float64          `json:"monthGrowth"`
	CurrentQuarterRevenue decimal.Decimal  `json:"currentQuarterRevenue"`
	QuarterGrowth         float64          `json:"quarterGrowth"`
	CurrentYearRevenue    decimal.Decimal  `json:"currentYearRevenue"`
	YearGrowth            float64          `json:"yearGrowth"`
	TopClients            []ClientSpending `json:"topClients"`
	QuickStats            QuickStatistics  `json:"quickStats"`
}

type ClientSpending struct {
	Name   string          `json:"name"`
	Orders int             `json:"orders"`
	Spent  decimal.Decimal `json:"spent"`
	IsVip  bool            `json:"isVip"`
}

type QuickStatistics struct {
	TotalClients  int64           `json:"totalClients"`
	TotalOrders   int64           `json:"totalOrders"`
	AvgOrderValue decimal.Decimal `json:"avgOrderValue"`
}

// GetReportAnalytics returns the revenue analytics summary
func (rc *ReportController) GetReportAnalytics(c *gin.Context) {
	now := time.Now()
	currentYear, currentMonth, _ := now.Date()
	currentLocation := now.Location()

	firstOfMonth := time.Date(currentYear, currentMonth, 1, 0, 0, 0, 0, currentLocation)
	firstOfNextMonth := firstOfMonth.AddDate(0, 1, 0)

	currentMonthRevenue, err := rc.getRevenue(firstOfMonth, firstOfNextMonth)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get monthly revenue")
		return
	}

	lastMonthRevenue, err := rc.getRevenue(firstOfMonth.AddDate(0, -1, 0), firstOfMonth)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get last month revenue")
		return
	}

	quarterStart := rc.getQuarterStart(now)
	quarterEnd := quarterStart.AddDate(0, 3, 0)
	currentQuarterRevenue, err := rc.getRevenue(quarterStart, quarterEnd)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get quarterly revenue")
		return
	}

	lastQuarterRevenue, err := rc.getRevenue(quarterStart.AddDate(0, -3, 0), quarterStart)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get last quarter revenue")
		return
	}

	yearStart := time.Date(currentYear, 1, 1, 0, 0, 0, 0, currentLocation)
	currentYearRevenue, err := rc.getRevenue(yearStart, yearStart.AddDate(1, 0, 0))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get yearly revenue")
		return
	}

	lastYearRevenue, err := rc.getRevenue(yearStart.AddDate(-1, 0, 0), yearStart)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get last year revenue")
		return
	}

	topClients, err := rc.getTopClients(5)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get top clients")
		return
	}

	quickStats, err := rc.getQuickStatistics()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get quick statistics")
		return
	}

	summary := AnalyticsSummary{
		CurrentMonthRevenue:   currentMonthRevenue,
		MonthGrowth:           rc.calculateGrowthPercentage(currentMonthRevenue, lastMonthRevenue),
		CurrentQuarterRevenue: currentQuarterRevenue,
		QuarterGrowth:         rc.calculateGrowthPercentage(currentQuarterRevenue, lastQuarterRevenue),
		CurrentYearRevenue:    currentYearRevenue,
		YearGrowth:            rc.calculateGrowthPercentage(currentYearRevenue, lastYearRevenue),
		TopClients:            topClients,
		QuickStats:            quickStats,
	}

	c.JSON(http.StatusOK, summary)
}

// getRevenue sums order amounts with date_time in [start, end)
func (rc *ReportController) getRevenue(start, end time.Time) (decimal.Decimal, error) {
	var revenue struct{ Total decimal.Decimal }
	err := config.DB.Raw(
		"SELECT COALESCE(SUM(amount), 0) AS total FROM orders WHERE date_time >= ? AND date_time < ?",
		start, end).Scan(&revenue).Error
	return revenue.Total, err
}

func (rc *ReportController) getQuarterStart(t time.Time) time.Time {
	quarterMonth := time.Month(((int(t.Month())-1)/3)*3 + 1)
	return time.Date(t.Year(), quarterMonth, 1, 0, 0, 0, 0, t.Location())
}

func (rc *ReportController) calculateGrowthPercentage(current, previous decimal.Decimal) float64 {
	if previous.IsZero() {
		return 0
	}
	growth, _ := current.Sub(previous).Div(previous).Mul(decimal.NewFromInt(100)).Round(1).Float64()
	return growth
}

// getTopClients ranks clients by their derived total spending
func (rc *ReportController) getTopClients(limit int) ([]ClientSpending, error) {
	var top []ClientSpending
	err := config.DB.Model(&models.Client{}).
		Select("name, total_orders AS orders, total_amount AS spent, is_vip").
		Where("total_orders > 0").
		Order("total_amount DESC").
		Limit(limit).
		Scan(&top).Error
	if top == nil {
		top = []ClientSpending{}
	}
	return top, err
}

func (rc *ReportController) getQuickStatistics() (QuickStatistics, error) {
	var stats QuickStatistics
	if err := config.DB.Model(&models.Client{}).Count(&stats.TotalClients).Error; err != nil {
		return stats, err
	}
	if err := config.DB.Model(&models.Order{}).Count(&stats.TotalOrders).Error; err != nil {
		return stats, err
	}

	var revenue struct{ Total decimal.Decimal }
	if err := config.DB.Raw("SELECT COALESCE(SUM(amount), 0) AS total FROM orders").Scan(&revenue).Error; err != nil {
		return stats, err
	}
	if stats.TotalOrders > 0 {
		stats.AvgOrderValue = revenue.Total.Div(decimal.NewFromInt(stats.TotalOrders)).Round(2)
	} else {
		stats.AvgOrderValue = decimal.Zero
	}
	return stats, nil
}
