package orders

import "errors"

var (
	ErrMissingFields     = errors.New("missing purchase fields")
	ErrProductNotFound   = errors.New("product not found")
	ErrOrderNotFound     = errors.New("order not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrAlreadyCancelled  = errors.New("order already cancelled")
	ErrInvalidStatus     = errors.New("invalid order status")
)
