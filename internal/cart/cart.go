// internal/cart/cart.go

// Package cart implements the session-scoped shopping cart. Carts live in
// memory only and are discarded after checkout; losing them on restart is an
// accepted design choice, not an oversight.
package cart

import (
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/neonmart/storefront-backend/internal/models"
	"github.com/neonmart/storefront-backend/internal/pricing"
)

type EventOp string

const (
	EventItemAdded   EventOp = "item_added"
	EventItemUpdated EventOp = "item_updated"
	EventItemRemoved EventOp = "item_removed"
	EventCleared     EventOp = "cleared"
)

// Event describes a cart mutation for UI-equivalent observers. Observers are
// notified after the mutation has been applied.
type Event struct {
	Op        EventOp
	ProductID uuid.UUID
	Title     string
	Quantity  int
}

// Line is one product selection in a cart. At most one line exists per
// product id.
type Line struct {
	ProductID uuid.UUID       `json:"productId"`
	Title     string          `json:"title"`
	Price     decimal.Decimal `json:"price"`
	Thumbnail string          `json:"thumbnail"`
	Quantity  int             `json:"quantity"`
}

// Cart holds one shopper's in-progress selection. It is owned by a single
// interactive session; the mutex only guards against overlapping HTTP
// requests from that session.
type Cart struct {
	mu        sync.Mutex
	lines     []Line
	observers []func(Event)
}

func New() *Cart {
	return &Cart{}
}

// Subscribe registers an observer for mutation events. Observers run
// synchronously on the mutating goroutine and must not call back into the
// cart.
func (c *Cart) Subscribe(fn func(Event)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.observers = append(c.observers, fn)
}

func (c *Cart) notify(e Event) {
	for _, fn := range c.observers {
		fn(e)
	}
}

// AddItem appends a new line with quantity 1, or bumps the quantity when the
// product is already in the cart. It always succeeds; stock is advisory
// catalog metadata and is not checked here.
func (c *Cart) AddItem(product *models.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].ProductID == product.ID {
			c.lines[i].Quantity++
			c.notify(Event{Op: EventItemUpdated, ProductID: product.ID, Title: product.Title, Quantity: c.lines[i].Quantity})
			return
		}
	}

	c.lines = append(c.lines, Line{
		ProductID: product.ID,
		Title:     product.Title,
		Price:     product.Price,
		Thumbnail: product.Thumbnail,
		Quantity:  1,
	})
	c.notify(Event{Op: EventItemAdded, ProductID: product.ID, Title: product.Title, Quantity: 1})
}

// RemoveItem deletes the matching line. Removing an absent product is a
// no-op.
func (c *Cart) RemoveItem(productID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeLocked(productID)
}

func (c *Cart) removeLocked(productID uuid.UUID) {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			title := c.lines[i].Title
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			c.notify(Event{Op: EventItemRemoved, ProductID: productID, Title: title})
			return
		}
	}
}

// SetQuantity sets the line's quantity, removing the line when the quantity
// drops to zero or below. No upper bound is enforced.
func (c *Cart) SetQuantity(productID uuid.UUID, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if quantity <= 0 {
		c.removeLocked(productID)
		return
	}

	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines[i].Quantity = quantity
			c.notify(Event{Op: EventItemUpdated, ProductID: productID, Title: c.lines[i].Title, Quantity: quantity})
			return
		}
	}
}

// Clear empties the cart. Clearing an already-empty cart is a no-op and emits
// no event.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.lines) == 0 {
		return
	}
	c.lines = nil
	c.notify(Event{Op: EventCleared})
}

// Lines returns a copy of the current selection in insertion order.
func (c *Cart) Lines() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()

	lines := make([]Line, len(c.lines))
	copy(lines, c.lines)
	return lines
}

// TotalItems recomputes the summed quantity on every call; the cart is small
// enough that caching would only invite staleness.
func (c *Cart) TotalItems() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := 0
	for _, line := range c.lines {
		total += line.Quantity
	}
	return total
}

// TotalPrice recomputes the subtotal on every call.
func (c *Cart) TotalPrice() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	return pricing.Subtotal(pricingLines(c.lines))
}

func pricingLines(lines []Line) []pricing.Line {
	out := make([]pricing.Line, len(lines))
	for i, line := range lines {
		out[i] = pricing.Line{Price: line.Price, Quantity: line.Quantity}
	}
	return out
}
