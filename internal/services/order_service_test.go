// internal/services/order_service_test.go
package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neonmart/storefront-backend/internal/discount"
	"github.com/neonmart/storefront-backend/internal/models"
)

func TestCheckoutEmptyCart(t *testing.T) {
	service := NewOrderService(nil)

	result, err := service.Checkout(&CheckoutRequest{
		CustomerName:  "Jamie Rivera",
		CustomerEmail: "jamie@example.com",
		Address:       "12 Elm St",
		City:          "Springfield",
		ZipCode:       "12345",
		PaymentMethod: "card",
	})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestCheckoutRejectsInvalidForm(t *testing.T) {
	service := NewOrderService(nil)

	req := &CheckoutRequest{
		CustomerName:  "Jamie Rivera",
		CustomerEmail: "not-an-email",
		Address:       "12 Elm St",
		City:          "Springfield",
		ZipCode:       "12345",
		PaymentMethod: "card",
		Items: []CheckoutLineInput{
			{Name: "Notebook", Price: decimal.NewFromFloat(9.99), Quantity: 1},
		},
	}

	result, err := service.Checkout(req)

	assert.Nil(t, result)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestCheckoutRejectsNegativePrice(t *testing.T) {
	service := NewOrderService(nil)

	req := &CheckoutRequest{
		CustomerName:  "Jamie Rivera",
		CustomerEmail: "jamie@example.com",
		Address:       "12 Elm St",
		City:          "Springfield",
		ZipCode:       "12345",
		PaymentMethod: "card",
		Items: []CheckoutLineInput{
			{Name: "Notebook", Price: decimal.NewFromFloat(-1), Quantity: 1},
		},
	}

	result, err := service.Checkout(req)

	assert.Nil(t, result)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "negative")
}

func TestCheckoutRejectsZeroQuantity(t *testing.T) {
	service := NewOrderService(nil)

	req := &CheckoutRequest{
		CustomerName:  "Jamie Rivera",
		CustomerEmail: "jamie@example.com",
		Address:       "12 Elm St",
		City:          "Springfield",
		ZipCode:       "12345",
		PaymentMethod: "card",
		Items: []CheckoutLineInput{
			{Name: "Notebook", Price: decimal.NewFromFloat(9.99), Quantity: 0},
		},
	}

	result, err := service.Checkout(req)

	assert.Nil(t, result)
	require.Error(t, err)
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	service := NewOrderService(nil)

	order, err := service.UpdateStatus(
		uuid.Nil,
		&UpdateStatusRequest{Status: models.OrderStatus("Cancelled")},
	)

	assert.Nil(t, order)
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestComputeTotalsRoundsToCents(t *testing.T) {
	// 10% of 19.99 is 1.999; the persisted columns hold two decimal
	// places, so the computed amounts must already be at cent precision.
	items := models.OrderItems{
		{Name: "Notebook", Price: decimal.NewFromFloat(19.99), Quantity: 1},
	}

	discountAmount, total := ComputeTotals(items, discount.Evaluate("SAVE10"))

	assert.Equal(t, "2.00", discountAmount.StringFixed(2))
	assert.True(t, discountAmount.Equal(decimal.NewFromFloat(2)))
	assert.Equal(t, "17.99", total.StringFixed(2))
	assert.True(t, total.Equal(decimal.NewFromFloat(17.99)))

	// Exponent at or above -2 means no sub-cent digits survive.
	assert.GreaterOrEqual(t, discountAmount.Exponent(), int32(-2))
	assert.GreaterOrEqual(t, total.Exponent(), int32(-2))
}

func TestComputeTotalsWithoutDiscount(t *testing.T) {
	items := models.OrderItems{
		{Name: "Notebook", Price: decimal.NewFromFloat(19.99), Quantity: 2},
	}

	discountAmount, total := ComputeTotals(items, discount.Evaluate(""))

	assert.True(t, discountAmount.IsZero())
	assert.Equal(t, "39.98", total.StringFixed(2))
}

func TestBuildLineSnapshotsCopiesInput(t *testing.T) {
	items := []CheckoutLineInput{
		{Name: "Notebook", Price: decimal.NewFromFloat(9.99), Quantity: 2},
		{Name: "Pen", Price: decimal.NewFromFloat(1.5), Quantity: 3},
	}

	snapshots := BuildLineSnapshots(items)
	require.Len(t, snapshots, 2)

	// Mutating the source after the snapshot must not change the frozen lines.
	items[0].Name = "Changed"
	items[0].Quantity = 99

	assert.Equal(t, "Notebook", snapshots[0].Name)
	assert.Equal(t, 2, snapshots[0].Quantity)
	assert.True(t, snapshots[0].Price.Equal(decimal.NewFromFloat(9.99)))
	assert.Equal(t, "Pen", snapshots[1].Name)
	assert.Equal(t, 3, snapshots[1].Quantity)
}
