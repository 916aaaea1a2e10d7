package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func init() {
	// Amounts go over the wire as JSON numbers, matching the dashboard's expectations
	decimal.MarshalJSONWithoutQuotes = true
}

type Client struct {
	ID    uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name  string    `gorm:"not null" json:"name"`
	Phone string    `gorm:"not null" json:"phone"`
	Email string    `gorm:"uniqueIndex;not null" json:"email"`
	IsVip bool      `gorm:"default:false" json:"isVip"`

	// Derived statistics, maintained exclusively by services.RecalculateClientStats.
	TotalOrders   int             `gorm:"default:0" json:"totalOrders"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"totalAmount"`
	LastOrderDate *time.Time      `json:"lastOrderDate"`

	Orders []Order `gorm:"foreignKey:ClientID" json:"orders"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Initialize UUID before creating
func (c *Client) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return
}
