package controllers

import (
	"errors"
	"net/http"

	"movecrm-backend/config"
	"movecrm-backend/models"
	"movecrm-backend/services"
	"movecrm-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CreateOrderInput defines the expected JSON structure for creating an order
type CreateOrderInput struct {
	ClientID    uuid.UUID          `json:"clientId" binding:"required"`
	DateTime    string             `json:"dateTime" binding:"required"`
	Amount      *decimal.Decimal   `json:"amount" binding:"required"`
	Description string             `json:"description"`
	Status      models.OrderStatus `json:"status"`
}

// UpdateOrderInput defines the expected JSON structure for updating an order.
// The owning client cannot be changed after creation.
type UpdateOrderInput struct {
	DateTime    *string             `json:"dateTime"`
	Amount      *decimal.Decimal    `json:"amount"`
	Description *string             `json:"description"`
	Status      *models.OrderStatus `json:"status"`
}

// ClientSummary is the denormalized client shape embedded in order responses
type ClientSummary struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	IsVip bool      `json:"isVip"`
}

type orderWithClientSummary struct {
	models.Order
	Client ClientSummary `json:"client"`
}

func toOrderResponse(order models.Order) orderWithClientSummary {
	resp := orderWithClientSummary{Order: order}
	if order.Client != nil {
		resp.Client = ClientSummary{
			ID:    order.Client.ID,
			Name:  order.Client.Name,
			IsVip: order.Client.IsVip,
		}
	}
	resp.Order.Client = nil
	return resp
}

// CreateOrder creates an order for an existing client and recalculates the
// client's statistics in the same transaction
func CreateOrder(c *gin.Context) {
	var input CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	dateTime, err := utils.ParseDateTime(input.DateTime)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid dateTime: "+err.Error())
		return
	}

	if input.Amount.IsNegative() {
		utils.RespondWithError(c, http.StatusBadRequest, "Amount must be non-negative")
		return
	}

	status := input.Status
	if status == "" {
		status = models.OrderStatusPending
	}
	if !status.IsValid() {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid status: "+string(input.Status))
		return
	}

	// Check if client exists
	var client models.Client
	if err := config.DB.First(&client, "id = ?", input.ClientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Client not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	order := models.Order{
		ClientID:    input.ClientID,
		DateTime:    dateTime,
		Status:      status,
		Amount:      *input.Amount,
		Description: input.Description,
	}

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	order.OrderNumber, err = services.GenerateOrderNumber(tx)
	if err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate order number")
		return
	}

	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create order")
		return
	}

	// A failed recalculation aborts the create as a whole
	if err := services.RecalculateClientStats(tx, order.ClientID); err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Client not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update client statistics")
		}
		return
	}

	if err := tx.Commit().Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create order")
		return
	}

	order.Client = &client
	c.JSON(http.StatusCreated, toOrderResponse(order))
}

// UpdateOrder applies a partial update to an order and recalculates the owning
// client's statistics in the same transaction
func UpdateOrder(c *gin.Context) {
	orderUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid order ID format")
		return
	}

	var input UpdateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var order models.Order
	if err := config.DB.First(&order, "id = ?", orderUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Order not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	wasCompleted := order.Status == models.OrderStatusCompleted

	// Update fields if provided
	if input.DateTime != nil {
		dateTime, err := utils.ParseDateTime(*input.DateTime)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid dateTime: "+err.Error())
			return
		}
		order.DateTime = dateTime
	}
	if input.Amount != nil {
		if input.Amount.IsNegative() {
			utils.RespondWithError(c, http.StatusBadRequest, "Amount must be non-negative")
			return
		}
		order.Amount = *input.Amount
	}
	if input.Description != nil {
		order.Description = *input.Description
	}
	if input.Status != nil {
		if !input.Status.IsValid() {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid status: "+string(*input.Status))
			return
		}
		order.Status = *input.Status
	}

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Save(&order).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update order")
		return
	}

	if err := services.RecalculateClientStats(tx, order.ClientID); err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update client statistics")
		return
	}

	if err := tx.Commit().Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update order")
		return
	}

	var client models.Client
	if err := config.DB.First(&client, "id = ?", order.ClientID).Error; err == nil {
		order.Client = &client
		if !wasCompleted && order.Status == models.OrderStatusCompleted {
			services.NotifyOrderCompleted(&client, &order)
		}
	}

	c.JSON(http.StatusOK, toOrderResponse(order))
}

// GetOrders retrieves all orders, newest job date first, each with a client summary
func GetOrders(c *gin.Context) {
	var orders []models.Order
	if err := config.DB.Preload("Client").Order("date_time DESC").Find(&orders).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve orders")
		return
	}

	response := make([]orderWithClientSummary, 0, len(orders))
	for _, order := range orders {
		response = append(response, toOrderResponse(order))
	}

	c.JSON(http.StatusOK, response)
}

// GetOrder retrieves a specific order by ID with its full client record
func GetOrder(c *gin.Context) {
	orderUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid order ID format")
		return
	}

	var order models.Order
	if err := config.DB.Preload("Client").First(&order, "id = ?", orderUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Order not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if order.Client != nil && order.Client.Orders == nil {
		order.Client.Orders = []models.Order{}
	}

	c.JSON(http.StatusOK, order)
}
