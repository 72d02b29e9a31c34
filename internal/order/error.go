package order

import (
	"errors"
	"fmt"
)

var (
	// -- Validation & Input --
	ErrShippingAddressRequired = errors.New("shipping address is required")
	ErrInvalidStatus           = errors.New("invalid order status")
	ErrInvalidPaymentStatus    = errors.New("invalid payment status")

	// -- Resource State --
	ErrCartEmpty     = errors.New("cart is empty")
	ErrOrderNotFound = errors.New("order not found")

	// -- Status Machine --
	ErrInvalidTransition = errors.New("cannot update order status")
)

// InsufficientStockError is returned when a checkout loses the stock race:
// the admission check found fewer units than the cart line requests. The
// whole checkout rolls back.
type InsufficientStockError struct {
	ProductName string
	Available   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s. Only %d available", e.ProductName, e.Available)
}
