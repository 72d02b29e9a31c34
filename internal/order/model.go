package order

import (
	"time"

	"stylehub-be/internal/product"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID              uint            `json:"id"`
	UserID          uint            `json:"user_id"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	Status          Status          `json:"status"`
	PaymentStatus   PaymentStatus   `json:"payment_status"`
	ShippingAddress string          `json:"shipping_address"`
	BillingAddress  string          `json:"billing_address"`
	PaymentMethod   string          `json:"payment_method"`
	CustomerEmail   string          `json:"customer_email"`
	CustomerPhone   string          `json:"customer_phone"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
	Items           []OrderItem     `json:"items"`
}

// OrderItem is an immutable snapshot of a product's price and quantity taken
// when the order was placed. The referenced product may change price or be
// deleted afterwards; Price on the item is the durable value.
type OrderItem struct {
	ID        uint            `json:"id"`
	OrderID   uint            `json:"order_id"`
	ProductID uint            `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	CreatedAt time.Time       `json:"created_at"`

	Product *product.Product `json:"product,omitempty"`
}

type CreateOrderInput struct {
	ShippingAddress string `json:"shipping_address"`
	BillingAddress  string `json:"billing_address"`
	PaymentMethod   string `json:"payment_method"`
	CustomerEmail   string `json:"customer_email"`
	CustomerPhone   string `json:"customer_phone"`
}
