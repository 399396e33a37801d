// internal/handlers/order.go
package handlers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/neonmart/storefront-backend/internal/invoice"
	"github.com/neonmart/storefront-backend/internal/models"
	"github.com/neonmart/storefront-backend/internal/services"
	"github.com/neonmart/storefront-backend/internal/utils"
)

type OrderHandler struct {
	orderService *services.OrderService
}

// updateStatusBody is the wire shape of a status update; the estimated
// delivery arrives as a date string from the admin form.
type updateStatusBody struct {
	Status            string `json:"status"`
	TrackingNumber    string `json:"trackingNumber"`
	EstimatedDelivery string `json:"estimatedDelivery"`
}

func NewOrderHandler(orderService *services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// POST /orders
//
// Accepts the full order request including item snapshots. The discount
// amount and total in the client payload are ignored; both are recomputed
// server-side from the items and the discount code.
func (h *OrderHandler) SubmitOrder(c *gin.Context) {
	var req services.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	result, err := h.orderService.Checkout(&req)
	if err != nil {
		if errors.Is(err, services.ErrEmptyCart) {
			utils.ErrorResponse(c, 400, "EMPTY_CART", "Order must contain at least one item", nil)
			return
		}
		if validationErrors := utils.GetValidationErrors(err); len(validationErrors) > 0 {
			utils.ValidationErrorResponse(c, validationErrors)
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.CreatedResponse(c, result)
}

// GET /user-orders?email=
func (h *OrderHandler) GetUserOrders(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		utils.BadRequestResponse(c, "Missing email query parameter", nil)
		return
	}

	orders, err := h.orderService.FindByEmail(email)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, orders)
}

// GET /orders (admin)
func (h *OrderHandler) GetOrders(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	orders, total, err := h.orderService.ListOrders(params)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	result := utils.CreatePaginationResult(orders, total, params)
	utils.PaginatedResponse(c, result)
}

// PUT /orders/:id/status (admin)
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid order ID", nil)
		return
	}

	var body updateStatusBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	req := services.UpdateStatusRequest{
		Status:         models.OrderStatus(body.Status),
		TrackingNumber: body.TrackingNumber,
	}

	if body.EstimatedDelivery != "" {
		estimated, err := time.Parse(time.DateOnly, body.EstimatedDelivery)
		if err != nil {
			utils.BadRequestResponse(c, "estimatedDelivery must be a YYYY-MM-DD date", nil)
			return
		}
		req.EstimatedDelivery = &estimated
	}

	order, err := h.orderService.UpdateStatus(id, &req)
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			utils.NotFoundResponse(c, "Order")
			return
		}
		if errors.Is(err, services.ErrInvalidStatus) {
			utils.BadRequestResponse(c, "status must be one of: Ordered, Processing, Shipped, Delivered", nil)
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, order)
}

// GET /orders/:id/invoice
//
// Returns the flat projection the external document renderer consumes.
func (h *OrderHandler) GetInvoice(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid order ID", nil)
		return
	}

	order, err := h.orderService.GetOrder(id)
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			utils.NotFoundResponse(c, "Order")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, invoice.Project(order))
}
