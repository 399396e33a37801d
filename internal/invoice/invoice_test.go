// internal/invoice/invoice_test.go
package invoice

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neonmart/storefront-backend/internal/models"
)

func TestProject(t *testing.T) {
	order := &models.Order{
		CustomerName:  "Asha Rao",
		CustomerEmail: "asha@example.com",
		Address:       "14 Ring Road",
		City:          "Pune",
		ZipCode:       "411001",
		PaymentMethod: "card",
		Items: models.OrderItems{
			{Name: "Neon Keyboard", Price: decimal.RequireFromString("149.99"), Quantity: 2},
			{Name: "Mousepad", Price: decimal.RequireFromString("19"), Quantity: 1},
		},
		DiscountCode:   "SAVE10",
		DiscountAmount: decimal.RequireFromString("31.898"),
		Total:          decimal.RequireFromString("287.082"),
		Status:         models.OrderStatusShipped,
	}
	order.ID = uuid.New()
	order.CreatedAt = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	p := Project(order)

	assert.Equal(t, order.ID.String(), p.OrderID)
	assert.Equal(t, "2026-03-14", p.Date)
	assert.Equal(t, "14 Ring Road, Pune, 411001", p.AddressLine)
	assert.Equal(t, "Shipped", p.Status)
	assert.Equal(t, "31.90", p.DiscountAmount)
	assert.Equal(t, "287.08", p.Total)

	require.Len(t, p.Lines, 2)
	assert.Equal(t, "299.98", p.Lines[0].LineTotal)
	assert.Equal(t, "19.00", p.Lines[1].LineTotal)
}

func TestProjectEmptyDiscount(t *testing.T) {
	order := &models.Order{
		PaymentMethod:  "upi",
		Items:          models.OrderItems{},
		DiscountAmount: decimal.Zero,
		Total:          decimal.Zero,
		Status:         models.OrderStatusOrdered,
	}
	order.ID = uuid.New()

	p := Project(order)

	assert.Empty(t, p.DiscountCode)
	assert.Equal(t, "0.00", p.DiscountAmount)
	assert.Empty(t, p.Lines)
}
