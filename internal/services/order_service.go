// internal/services/order_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/neonmart/storefront-backend/internal/discount"
	"github.com/neonmart/storefront-backend/internal/models"
	"github.com/neonmart/storefront-backend/internal/pricing"
	"github.com/neonmart/storefront-backend/internal/utils"
)

// OrderService converts a finalized cart into an immutable order record and
// advances orders through their fulfillment states. Orders are the single
// source of truth after checkout; the originating cart is discarded by the
// caller.
type OrderService struct {
	db *gorm.DB
}

// CheckoutRequest carries the shipping form and the cart line snapshots.
// Client-computed discount amounts or totals are never accepted; everything
// monetary is re-derived here.
type CheckoutRequest struct {
	CustomerName  string              `json:"customerName" validate:"required,min=1,max=255"`
	CustomerEmail string              `json:"customerEmail" validate:"required,email"`
	Address       string              `json:"address" validate:"required,max=512"`
	City          string              `json:"city" validate:"required,max=100"`
	ZipCode       string              `json:"zipCode" validate:"required,max=20"`
	PaymentMethod string              `json:"paymentMethod" validate:"required,max=50"`
	DiscountCode  string              `json:"discountCode" validate:"max=50"`
	Items         []CheckoutLineInput `json:"items" validate:"dive"`
}

type CheckoutLineInput struct {
	Name     string          `json:"name" validate:"required"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity" validate:"gte=1"`
}

type UpdateStatusRequest struct {
	Status            models.OrderStatus `json:"status" validate:"required"`
	TrackingNumber    string             `json:"trackingNumber,omitempty"`
	EstimatedDelivery *time.Time         `json:"estimatedDelivery,omitempty"`
}

// CheckoutResult pairs the stored order with the discount label the shopper
// should see ("10% off applied", "Invalid discount code", or empty).
type CheckoutResult struct {
	Order         *models.Order `json:"order"`
	DiscountLabel string        `json:"discountLabel,omitempty"`
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

// BuildLineSnapshots freezes checkout input into order items. The copies
// share no storage with their source, so later catalog or cart changes cannot
// alter a stored order.
func BuildLineSnapshots(items []CheckoutLineInput) models.OrderItems {
	snapshots := make(models.OrderItems, len(items))
	for i, item := range items {
		snapshots[i] = models.OrderItem{
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
		}
	}
	return snapshots
}

// ComputeTotals derives the discount amount and final total from the line
// snapshots. Both are rounded to cents before they go anywhere; the stored
// decimal(10,2) columns and the checkout response must carry identical
// values.
func ComputeTotals(items models.OrderItems, policy discount.Policy) (discountAmount, total decimal.Decimal) {
	lines := make([]pricing.Line, len(items))
	for i, item := range items {
		lines[i] = pricing.Line{Price: item.Price, Quantity: item.Quantity}
	}

	subtotal := pricing.Subtotal(lines)
	discountAmount = policy.Amount(subtotal).Round(2)
	total = pricing.FinalTotal(subtotal, discountAmount).Round(2)
	return discountAmount, total
}

// Checkout validates the form, re-evaluates the discount code, computes the
// totals and persists the order in a single transaction. An invalid discount
// code does not fail the checkout; it degrades to a zero discount with a
// visible label.
func (s *OrderService) Checkout(req *CheckoutRequest) (*CheckoutResult, error) {
	if len(req.Items) == 0 {
		return nil, ErrEmptyCart
	}

	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	for _, item := range req.Items {
		if item.Price.IsNegative() {
			return nil, errors.New("item price must not be negative")
		}
	}

	items := BuildLineSnapshots(req.Items)

	policy := discount.Evaluate(req.DiscountCode)
	discountAmount, total := ComputeTotals(items, policy)

	order := &models.Order{
		CustomerName:   req.CustomerName,
		CustomerEmail:  req.CustomerEmail,
		Address:        req.Address,
		City:           req.City,
		ZipCode:        req.ZipCode,
		PaymentMethod:  req.PaymentMethod,
		Items:          items,
		DiscountCode:   req.DiscountCode,
		DiscountAmount: discountAmount,
		Total:          total,
		Status:         models.OrderStatusOrdered,
	}

	// Single insert; either the whole order lands or nothing does.
	err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(order).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"order_id": order.ID,
		"email":    order.CustomerEmail,
		"total":    order.Total.String(),
		"discount": order.DiscountCode,
	}).Info("Order placed")

	return &CheckoutResult{Order: order, DiscountLabel: policy.Label}, nil
}

// UpdateStatus overwrites only the mutable fulfillment fields. Transitions
// are permissive: any of the four states may be set, including backward
// moves. Last write wins when admins race.
func (s *OrderService) UpdateStatus(id uuid.UUID, req *UpdateStatusRequest) (*models.Order, error) {
	if !req.Status.IsValid() {
		return nil, ErrInvalidStatus
	}

	var order models.Order
	if err := s.db.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	updates := map[string]interface{}{
		"status":             req.Status,
		"tracking_number":    req.TrackingNumber,
		"estimated_delivery": req.EstimatedDelivery,
	}

	if err := s.db.Model(&order).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}

	// Reload so the response reflects exactly what was stored.
	if err := s.db.First(&order, id).Error; err != nil {
		return nil, fmt.Errorf("failed to reload order: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"order_id": order.ID,
		"status":   order.Status,
	}).Info("Order status updated")

	return &order, nil
}

func (s *OrderService) GetOrder(id uuid.UUID) (*models.Order, error) {
	var order models.Order
	if err := s.db.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &order, nil
}

// FindByEmail returns the customer's orders, exact email match, newest first.
// An email with no orders yields an empty slice, not an error.
func (s *OrderService) FindByEmail(email string) ([]models.Order, error) {
	var orders []models.Order
	if err := s.db.Where("customer_email = ?", email).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}
	return orders, nil
}

// ListOrders is the admin view over all orders.
func (s *OrderService) ListOrders(params utils.PaginationParams) ([]models.Order, int64, error) {
	query := s.db.Model(&models.Order{})

	if params.Search != "" {
		query = query.Where("customer_email = ?", params.Search)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	allowedSortFields := []string{"created_at", "updated_at", "total", "status"}
	query = utils.ApplySort(query, params, allowedSortFields)
	query = utils.ApplyPagination(query, params)

	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch orders: %w", err)
	}

	return orders, total, nil
}
