package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusInProgress OrderStatus = "IN_PROGRESS"
	OrderStatusCompleted  OrderStatus = "COMPLETED"
)

// IsValid reports whether s belongs to the closed status set. There is no
// transition graph: any status may follow any other.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusInProgress, OrderStatusCompleted:
		return true
	}
	return false
}

type Order struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	OrderNumber string    `gorm:"uniqueIndex;not null" json:"orderNumber"`
	ClientID    uuid.UUID `gorm:"type:uuid;index;not null" json:"clientId"`

	DateTime    time.Time       `gorm:"not null" json:"dateTime"`
	Status      OrderStatus     `gorm:"type:varchar(20);default:'PENDING'" json:"status"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Description string          `json:"description"`

	Client *Client `gorm:"foreignKey:ClientID" json:"client,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) (err error) {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return
}
