// internal/services/errors.go
package services

import "errors"

// Sentinel errors surfaced to the transport layer. Handlers match them with
// errors.Is and map them to the response envelope.
var (
	ErrEmptyCart          = errors.New("cart is empty")
	ErrProductNotFound    = errors.New("product not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrReviewNotFound     = errors.New("review not found")
	ErrInvalidStatus      = errors.New("invalid order status")
	ErrInvalidCredentials = errors.New("invalid username or password")
)
