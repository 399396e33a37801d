// internal/cart/cart_test.go
package cart

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neonmart/storefront-backend/internal/models"
)

func testProduct(title, price string) *models.Product {
	p := &models.Product{
		Title: title,
		Price: decimal.RequireFromString(price),
	}
	p.ID = uuid.New()
	return p
}

func TestAddItemAccumulatesQuantity(t *testing.T) {
	c := New()
	keyboard := testProduct("Neon Keyboard", "149.99")

	c.AddItem(keyboard)
	c.AddItem(keyboard)

	lines := c.Lines()
	require.Len(t, lines, 1, "adding the same product twice must not create two lines")
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, 2, c.TotalItems())
}

func TestAddItemKeepsInsertionOrder(t *testing.T) {
	c := New()
	first := testProduct("Headset", "89.00")
	second := testProduct("Mousepad", "19.00")

	c.AddItem(first)
	c.AddItem(second)
	c.AddItem(first)

	lines := c.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "Headset", lines[0].Title)
	assert.Equal(t, "Mousepad", lines[1].Title)
}

func TestSetQuantityZeroEqualsRemove(t *testing.T) {
	c := New()
	p := testProduct("Monitor", "499.00")
	c.AddItem(p)

	c.SetQuantity(p.ID, 0)

	assert.Empty(t, c.Lines())
	assert.Equal(t, 0, c.TotalItems())
}

func TestSetQuantityOverwrites(t *testing.T) {
	c := New()
	p := testProduct("Monitor", "499.00")
	c.AddItem(p)

	c.SetQuantity(p.ID, 5)

	assert.Equal(t, 5, c.Lines()[0].Quantity)
}

func TestRemoveItemUnknownIsNoOp(t *testing.T) {
	c := New()
	c.AddItem(testProduct("Webcam", "59.00"))

	c.RemoveItem(uuid.New())

	assert.Len(t, c.Lines(), 1)
}

func TestTotalPrice(t *testing.T) {
	c := New()
	monitor := testProduct("Monitor", "499.00")
	cable := testProduct("Cable", "9.50")

	c.AddItem(monitor)
	c.AddItem(cable)
	c.SetQuantity(cable.ID, 3)

	assert.Equal(t, "527.5", c.TotalPrice().String())
}

func TestClearIsIdempotent(t *testing.T) {
	c := New()
	var events []Event
	c.Subscribe(func(e Event) { events = append(events, e) })

	c.AddItem(testProduct("Desk Lamp", "35.00"))
	c.Clear()
	c.Clear()
	c.Clear()

	assert.Empty(t, c.Lines())

	cleared := 0
	for _, e := range events {
		if e.Op == EventCleared {
			cleared++
		}
	}
	assert.Equal(t, 1, cleared, "repeated Clear on an empty cart must emit nothing")
}

func TestObserverSeesEveryMutation(t *testing.T) {
	c := New()
	var ops []EventOp
	c.Subscribe(func(e Event) { ops = append(ops, e.Op) })

	p := testProduct("Speaker", "120.00")
	c.AddItem(p)
	c.AddItem(p)
	c.SetQuantity(p.ID, 4)
	c.RemoveItem(p.ID)

	assert.Equal(t, []EventOp{EventItemAdded, EventItemUpdated, EventItemUpdated, EventItemRemoved}, ops)
}

func TestManagerScopesCartsPerSession(t *testing.T) {
	m := NewManager(time.Hour)

	a := m.Get("session-a")
	b := m.Get("session-b")
	a.AddItem(testProduct("Poster", "12.00"))

	assert.Equal(t, 1, a.TotalItems())
	assert.Equal(t, 0, b.TotalItems())
	assert.Same(t, a, m.Get("session-a"))
}

func TestManagerDrop(t *testing.T) {
	m := NewManager(time.Hour)
	m.Get("session-a").AddItem(testProduct("Poster", "12.00"))

	m.Drop("session-a")

	assert.Equal(t, 0, m.Get("session-a").TotalItems())
}
