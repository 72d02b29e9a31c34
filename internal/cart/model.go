package cart

import (
	"time"

	"stylehub-be/internal/product"
)

// Cart is per-user and created lazily on first access.
type Cart struct {
	ID        uint       `json:"id"`
	UserID    uint       `json:"user_id"`
	Items     []CartItem `json:"items"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CartItem is one (product, quantity) line. At most one line exists per
// (cart, product) pair; adding the same product again increments quantity.
type CartItem struct {
	ID        uint      `json:"id"`
	CartID    uint      `json:"cart_id"`
	ProductID uint      `json:"product_id"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Product *product.Product `json:"product,omitempty"`
}
