// internal/models/common.go
package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func init() {
	// Monetary fields serialize as plain JSON numbers, matching the shapes
	// the transport collaborators consume.
	decimal.MarshalJSONWithoutQuotes = true
}

// Base model with common fields
type BaseModel struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// Enums
type OrderStatus string

const (
	OrderStatusOrdered    OrderStatus = "Ordered"
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusShipped    OrderStatus = "Shipped"
	OrderStatusDelivered  OrderStatus = "Delivered"
)

// orderStatusSequence is the display order of the fulfillment steps.
// Transitions between states are deliberately unrestricted; the sequence only
// drives the progress indicator.
var orderStatusSequence = []OrderStatus{
	OrderStatusOrdered,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
}

func (s OrderStatus) IsValid() bool {
	for _, status := range orderStatusSequence {
		if s == status {
			return true
		}
	}
	return false
}

// ProgressPercent returns the step-based completion percentage shown by the
// order tracking UI: (index + 1) / steps. Unknown statuses report 0.
func (s OrderStatus) ProgressPercent() int {
	for i, status := range orderStatusSequence {
		if s == status {
			return (i + 1) * 100 / len(orderStatusSequence)
		}
	}
	return 0
}
