// internal/models/order_test.go
package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderStatusProgressPercent(t *testing.T) {
	tests := []struct {
		status   OrderStatus
		expected int
	}{
		{OrderStatusOrdered, 25},
		{OrderStatusProcessing, 50},
		{OrderStatusShipped, 75},
		{OrderStatusDelivered, 100},
		{OrderStatus("Cancelled"), 0},
		{OrderStatus(""), 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.status.ProgressPercent())
		})
	}
}

func TestOrderStatusIsValid(t *testing.T) {
	assert.True(t, OrderStatusOrdered.IsValid())
	assert.True(t, OrderStatusDelivered.IsValid())
	assert.False(t, OrderStatus("Cancelled").IsValid())
	assert.False(t, OrderStatus("ordered").IsValid())
}

func TestOrderJSONCarriesProgressPercent(t *testing.T) {
	order := Order{
		CustomerName: "Jamie Rivera",
		Status:       OrderStatusShipped,
	}

	data, err := json.Marshal(order)
	require.NoError(t, err)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &payload))
	assert.Equal(t, "Shipped", payload["status"])
	assert.Equal(t, float64(75), payload["progressPercent"])
}
