// internal/invoice/invoice.go

// Package invoice projects a stored order into the flat field set consumed by
// the external document renderer. The projection is pure; rendering, layout
// and delivery of the document are the collaborator's concern.
package invoice

import (
	"fmt"
	"time"

	"github.com/neonmart/storefront-backend/internal/models"
	"github.com/neonmart/storefront-backend/internal/pricing"
)

// Line is one rendered invoice row: "<name> x <qty> - <line total>".
type Line struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	LineTotal string `json:"lineTotal"`
}

// Projection is the complete, stable data snapshot an invoice renders from.
// Every field is a display-ready string so the renderer needs no knowledge of
// money types or date formats.
type Projection struct {
	OrderID        string `json:"orderId"`
	Date           string `json:"date"`
	CustomerName   string `json:"customerName"`
	CustomerEmail  string `json:"customerEmail"`
	AddressLine    string `json:"addressLine"`
	PaymentMethod  string `json:"paymentMethod"`
	Status         string `json:"status"`
	DiscountCode   string `json:"discountCode,omitempty"`
	DiscountAmount string `json:"discountAmount"`
	Total          string `json:"total"`
	Lines          []Line `json:"lines"`
}

// Project builds the invoice projection from an order snapshot.
func Project(order *models.Order) Projection {
	lines := make([]Line, len(order.Items))
	for i, item := range order.Items {
		lineTotal := pricing.LineTotal(pricing.Line{Price: item.Price, Quantity: item.Quantity})
		lines[i] = Line{
			Name:      item.Name,
			Quantity:  item.Quantity,
			LineTotal: lineTotal.StringFixed(2),
		}
	}

	return Projection{
		OrderID:        order.ID.String(),
		Date:           order.CreatedAt.Format(time.DateOnly),
		CustomerName:   order.CustomerName,
		CustomerEmail:  order.CustomerEmail,
		AddressLine:    fmt.Sprintf("%s, %s, %s", order.Address, order.City, order.ZipCode),
		PaymentMethod:  order.PaymentMethod,
		Status:         string(order.Status),
		DiscountCode:   order.DiscountCode,
		DiscountAmount: order.DiscountAmount.StringFixed(2),
		Total:          order.Total.StringFixed(2),
		Lines:          lines,
	}
}
