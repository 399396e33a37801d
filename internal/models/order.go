// internal/models/order.go
package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// OrderItem is a line snapshot frozen at checkout time. It deliberately
// carries no product reference so later catalog edits cannot reach into a
// stored order.
type OrderItem struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// OrderItems is stored as a single JSONB column; the snapshot is written once
// and never updated.
type OrderItems []OrderItem

func (i OrderItems) Value() (driver.Value, error) {
	if i == nil {
		return nil, nil
	}
	return json.Marshal(i)
}

func (i *OrderItems) Scan(value interface{}) error {
	if value == nil {
		*i = nil
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("order items column is not a byte slice")
	}

	return json.Unmarshal(bytes, i)
}

type Order struct {
	BaseModel
	CustomerName   string          `json:"customerName" gorm:"size:255;not null"`
	CustomerEmail  string          `json:"customerEmail" gorm:"size:255;not null;index"`
	Address        string          `json:"address" gorm:"size:512;not null"`
	City           string          `json:"city" gorm:"size:100;not null"`
	ZipCode        string          `json:"zipCode" gorm:"size:20;not null"`
	PaymentMethod  string          `json:"paymentMethod" gorm:"size:50;not null"`
	Items          OrderItems      `json:"items" gorm:"type:jsonb;not null"`
	DiscountCode   string          `json:"discountCode" gorm:"size:50"`
	DiscountAmount decimal.Decimal `json:"discountAmount" gorm:"type:decimal(10,2);default:0"`
	Total          decimal.Decimal `json:"total" gorm:"type:decimal(10,2);not null"`

	// Fulfillment fields, the only mutable part of a stored order.
	Status            OrderStatus `json:"status" gorm:"type:varchar(20);default:'Ordered';index"`
	TrackingNumber    string      `json:"trackingNumber,omitempty" gorm:"size:100"`
	EstimatedDelivery *time.Time  `json:"estimatedDelivery,omitempty"`
}

// MarshalJSON adds the derived progress percentage the order tracking UI
// renders next to the status.
func (o Order) MarshalJSON() ([]byte, error) {
	type orderAlias Order
	return json.Marshal(struct {
		orderAlias
		ProgressPercent int `json:"progressPercent"`
	}{
		orderAlias:      orderAlias(o),
		ProgressPercent: o.Status.ProgressPercent(),
	})
}
