// internal/handlers/cart_test.go
package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neonmart/storefront-backend/internal/cart"
	"github.com/neonmart/storefront-backend/internal/models"
	"github.com/neonmart/storefront-backend/internal/services"
)

func setupCartRouter(t *testing.T) (*gin.Engine, *cart.Manager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	manager := cart.NewManager(time.Hour)
	handler := NewCartHandler(manager, services.NewCatalogService(nil), services.NewOrderService(nil))

	r := gin.New()
	r.GET("/cart", handler.GetCart)
	r.DELETE("/cart", handler.ClearCart)
	r.PUT("/cart/items/:productId", handler.SetQuantity)
	r.DELETE("/cart/items/:productId", handler.RemoveItem)
	r.POST("/cart/checkout", handler.Checkout)
	return r, manager
}

func testProduct(title string, price float64) *models.Product {
	p := &models.Product{
		Title: title,
		Price: decimal.NewFromFloat(price),
		Stock: 10,
	}
	p.ID = uuid.New()
	return p
}

type cartEnvelope struct {
	Success bool `json:"success"`
	Data    struct {
		Items      []cart.Line     `json:"items"`
		TotalItems int             `json:"totalItems"`
		TotalPrice decimal.Decimal `json:"totalPrice"`
	} `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func TestGetCartRequiresSessionHeader(t *testing.T) {
	r, _ := setupCartRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetCartEmptySession(t *testing.T) {
	r, _ := setupCartRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.Header.Set("X-Session-ID", "session-a")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body cartEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Empty(t, body.Data.Items)
	assert.Equal(t, 0, body.Data.TotalItems)
	assert.True(t, body.Data.TotalPrice.IsZero())
}

func TestCartSessionsAreIsolated(t *testing.T) {
	r, manager := setupCartRouter(t)

	manager.Get("session-a").AddItem(testProduct("Notebook", 9.99))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.Header.Set("X-Session-ID", "session-b")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body cartEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Empty(t, body.Data.Items)
}

func TestGetCartReflectsContents(t *testing.T) {
	r, manager := setupCartRouter(t)

	product := testProduct("Notebook", 9.99)
	sc := manager.Get("session-a")
	sc.AddItem(product)
	sc.AddItem(product)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.Header.Set("X-Session-ID", "session-a")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body cartEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Data.Items, 1)
	assert.Equal(t, "Notebook", body.Data.Items[0].Title)
	assert.Equal(t, 2, body.Data.Items[0].Quantity)
	assert.Equal(t, 2, body.Data.TotalItems)
	assert.Equal(t, "19.98", body.Data.TotalPrice.StringFixed(2))
}

func TestSetQuantityToZeroRemovesLine(t *testing.T) {
	r, manager := setupCartRouter(t)

	product := testProduct("Notebook", 9.99)
	manager.Get("session-a").AddItem(product)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(
		http.MethodPut,
		"/cart/items/"+product.ID.String(),
		strings.NewReader(`{"quantity": 0}`),
	)
	req.Header.Set("X-Session-ID", "session-a")
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body cartEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Empty(t, body.Data.Items)
}

func TestSetQuantityRejectsMalformedID(t *testing.T) {
	r, _ := setupCartRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(
		http.MethodPut,
		"/cart/items/not-a-uuid",
		strings.NewReader(`{"quantity": 3}`),
	)
	req.Header.Set("X-Session-ID", "session-a")
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestClearCart(t *testing.T) {
	r, manager := setupCartRouter(t)

	manager.Get("session-a").AddItem(testProduct("Notebook", 9.99))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/cart", nil)
	req.Header.Set("X-Session-ID", "session-a")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, manager.Get("session-a").TotalItems())
}

func TestCheckoutEmptyCartReturnsEmptyCartError(t *testing.T) {
	r, _ := setupCartRouter(t)

	form := `{
		"customerName": "Jamie Rivera",
		"customerEmail": "jamie@example.com",
		"address": "12 Elm St",
		"city": "Springfield",
		"zipCode": "12345",
		"paymentMethod": "card"
	}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/cart/checkout", strings.NewReader(form))
	req.Header.Set("X-Session-ID", "session-a")
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var body cartEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	assert.Equal(t, "EMPTY_CART", body.Error.Code)
}
