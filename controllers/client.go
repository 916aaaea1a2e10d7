package controllers

import (
	"errors"
	"net/http"
	"time"

	"movecrm-backend/config"
	"movecrm-backend/models"
	"movecrm-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CreateClientInput defines the expected JSON structure for creating a client
type CreateClientInput struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	IsVip bool   `json:"isVip"`
}

// UpdateClientInput defines the expected JSON structure for updating a client
type UpdateClientInput struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
	Email *string `json:"email" binding:"omitempty,email"`
	IsVip *bool   `json:"isVip"`
}

// OrderSummary is the lightweight order shape embedded in client listings
type OrderSummary struct {
	ID          uuid.UUID          `json:"id"`
	OrderNumber string             `json:"orderNumber"`
	DateTime    time.Time          `json:"dateTime"`
	Status      models.OrderStatus `json:"status"`
	Amount      decimal.Decimal    `json:"amount"`
	ClientID    uuid.UUID          `json:"-"`
}

type clientWithOrderSummaries struct {
	models.Client
	Orders []OrderSummary `json:"orders"`
}

// CreateClient creates a new client with zeroed statistics
func CreateClient(c *gin.Context) {
	var input CreateClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	// Check if email already exists
	var existingClient models.Client
	if err := config.DB.Where("email = ?", input.Email).First(&existingClient).Error; err == nil {
		utils.RespondWithError(c, http.StatusConflict, "Email already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	client := models.Client{
		Name:        input.Name,
		Phone:       input.Phone,
		Email:       input.Email,
		IsVip:       input.IsVip,
		TotalOrders: 0,
		TotalAmount: decimal.Zero,
	}

	if err := config.DB.Create(&client).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create client")
		return
	}

	client.Orders = []models.Order{}
	c.JSON(http.StatusCreated, client)
}

// GetClients retrieves all clients, newest first, each with its order summaries
func GetClients(c *gin.Context) {
	var clients []models.Client
	if err := config.DB.Order("created_at DESC").Find(&clients).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve clients")
		return
	}

	var summaries []OrderSummary
	if err := config.DB.Model(&models.Order{}).
		Select("id", "order_number", "date_time", "status", "amount", "client_id").
		Order("date_time DESC").
		Scan(&summaries).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve orders")
		return
	}

	byClient := make(map[uuid.UUID][]OrderSummary, len(clients))
	for _, s := range summaries {
		byClient[s.ClientID] = append(byClient[s.ClientID], s)
	}

	response := make([]clientWithOrderSummaries, 0, len(clients))
	for _, client := range clients {
		orders := byClient[client.ID]
		if orders == nil {
			orders = []OrderSummary{}
		}
		response = append(response, clientWithOrderSummaries{Client: client, Orders: orders})
	}

	c.JSON(http.StatusOK, response)
}

// GetClient retrieves a specific client by ID with its full order list
func GetClient(c *gin.Context) {
	clientUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid client ID format")
		return
	}

	var client models.Client
	if err := config.DB.
		Preload("Orders", func(db *gorm.DB) *gorm.DB {
			return db.Order("date_time DESC")
		}).
		First(&client, "id = ?", clientUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Client not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if client.Orders == nil {
		client.Orders = []models.Order{}
	}

	c.JSON(http.StatusOK, client)
}

// UpdateClient updates an existing client
func UpdateClient(c *gin.Context) {
	clientUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid client ID format")
		return
	}

	var input UpdateClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var client models.Client
	if err := config.DB.First(&client, "id = ?", clientUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Client not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	// Update fields if provided
	if input.Name != nil {
		client.Name = *input.Name
	}
	if input.Phone != nil {
		if !utils.ValidatePhone(*input.Phone) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
			return
		}
		client.Phone = *input.Phone
	}
	if input.Email != nil {
		// Check if email is being changed to another existing client's
		if client.Email != *input.Email {
			var existingClient models.Client
			if err := config.DB.Where("email = ? AND id <> ?", *input.Email, client.ID).
				First(&existingClient).Error; err == nil {
				utils.RespondWithError(c, http.StatusConflict, "Email already exists")
				return
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
				return
			}
		}
		client.Email = *input.Email
	}
	if input.IsVip != nil {
		client.IsVip = *input.IsVip
	}

	if err := config.DB.Save(&client).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update client")
		return
	}

	if client.Orders == nil {
		client.Orders = []models.Order{}
	}

	c.JSON(http.StatusOK, client)
}
