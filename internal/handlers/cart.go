// internal/handlers/cart.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/neonmart/storefront-backend/internal/cart"
	"github.com/neonmart/storefront-backend/internal/services"
	"github.com/neonmart/storefront-backend/internal/utils"
)

// sessionHeader identifies the shopping session a cart belongs to. The
// frontend generates the value once and sends it with every cart call.
const sessionHeader = "X-Session-ID"

type CartHandler struct {
	carts          *cart.Manager
	catalogService *services.CatalogService
	orderService   *services.OrderService
}

type cartView struct {
	Items      []cart.Line     `json:"items"`
	TotalItems int             `json:"totalItems"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
}

type addItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
}

type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// checkoutForm is the shipping and payment form; the items come from the
// server-side cart, never from the client.
type checkoutForm struct {
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	Address       string `json:"address"`
	City          string `json:"city"`
	ZipCode       string `json:"zipCode"`
	PaymentMethod string `json:"paymentMethod"`
	DiscountCode  string `json:"discountCode"`
}

func NewCartHandler(carts *cart.Manager, catalogService *services.CatalogService, orderService *services.OrderService) *CartHandler {
	return &CartHandler{
		carts:          carts,
		catalogService: catalogService,
		orderService:   orderService,
	}
}

func (h *CartHandler) session(c *gin.Context) (*cart.Cart, bool) {
	sessionID := c.GetHeader(sessionHeader)
	if sessionID == "" {
		utils.BadRequestResponse(c, "Missing "+sessionHeader+" header", nil)
		return nil, false
	}
	return h.carts.Get(sessionID), true
}

func view(sc *cart.Cart) cartView {
	return cartView{
		Items:      sc.Lines(),
		TotalItems: sc.TotalItems(),
		TotalPrice: sc.TotalPrice(),
	}
}

// GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	sc, ok := h.session(c)
	if !ok {
		return
	}
	utils.SuccessResponse(c, view(sc))
}

// POST /cart/items
func (h *CartHandler) AddItem(c *gin.Context) {
	sc, ok := h.session(c)
	if !ok {
		return
	}

	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	product, err := h.catalogService.GetProduct(productID)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			utils.NotFoundResponse(c, "Product")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	sc.AddItem(product)
	utils.SuccessResponse(c, view(sc))
}

// PUT /cart/items/:productId
func (h *CartHandler) SetQuantity(c *gin.Context) {
	sc, ok := h.session(c)
	if !ok {
		return
	}

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	var req setQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	sc.SetQuantity(productID, req.Quantity)
	utils.SuccessResponse(c, view(sc))
}

// DELETE /cart/items/:productId
func (h *CartHandler) RemoveItem(c *gin.Context) {
	sc, ok := h.session(c)
	if !ok {
		return
	}

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	sc.RemoveItem(productID)
	utils.SuccessResponse(c, view(sc))
}

// DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	sc, ok := h.session(c)
	if !ok {
		return
	}
	sc.Clear()
	utils.SuccessResponse(c, view(sc))
}

// POST /cart/checkout
func (h *CartHandler) Checkout(c *gin.Context) {
	sc, ok := h.session(c)
	if !ok {
		return
	}

	var form checkoutForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	lines := sc.Lines()
	items := make([]services.CheckoutLineInput, len(lines))
	for i, line := range lines {
		items[i] = services.CheckoutLineInput{
			Name:     line.Title,
			Price:    line.Price,
			Quantity: line.Quantity,
		}
	}

	req := services.CheckoutRequest{
		CustomerName:  form.CustomerName,
		CustomerEmail: form.CustomerEmail,
		Address:       form.Address,
		City:          form.City,
		ZipCode:       form.ZipCode,
		PaymentMethod: form.PaymentMethod,
		DiscountCode:  form.DiscountCode,
		Items:         items,
	}

	result, err := h.orderService.Checkout(&req)
	if err != nil {
		if errors.Is(err, services.ErrEmptyCart) {
			utils.ErrorResponse(c, 400, "EMPTY_CART", "Your cart is empty. Add some items before checking out.", nil)
			return
		}
		if validationErrors := utils.GetValidationErrors(err); len(validationErrors) > 0 {
			utils.ValidationErrorResponse(c, validationErrors)
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	// The cart is done once the order is stored.
	sc.Clear()

	utils.CreatedResponse(c, result)
}
