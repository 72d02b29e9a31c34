package product

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID            uint            `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	Category      string          `json:"category"`
	Subcategory   string          `json:"subcategory"`
	Style         string          `json:"style"`
	Color         string          `json:"color"`
	Size          string          `json:"size"`
	Rating        float64         `json:"rating"`
	ImageURL      string          `json:"image_url"`
	StockQuantity int             `json:"stock_quantity"`
	Brand         string          `json:"brand"`
	Model         string          `json:"model"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ListOptions narrows a catalog listing. Nil fields are not applied.
type ListOptions struct {
	Category    *string
	Subcategory *string
	Style       *string
	Color       *string
	MinPrice    *decimal.Decimal
	MaxPrice    *decimal.Decimal
	Search      *string
	Page        int
	PerPage     int
}

type NewProductInput struct {
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	Category      string          `json:"category"`
	Subcategory   string          `json:"subcategory"`
	Style         string          `json:"style"`
	Color         string          `json:"color"`
	Size          string          `json:"size"`
	Rating        float64         `json:"rating"`
	ImageURL      string          `json:"image_url"`
	StockQuantity int             `json:"stock_quantity"`
	Brand         string          `json:"brand"`
	Model         string          `json:"model"`
}

// UpdateProductInput is an explicit patch: only non-nil fields are written.
// Unknown fields are rejected at the binding layer.
type UpdateProductInput struct {
	Name          *string          `json:"name"`
	Description   *string          `json:"description"`
	Price         *decimal.Decimal `json:"price"`
	Category      *string          `json:"category"`
	Subcategory   *string          `json:"subcategory"`
	Style         *string          `json:"style"`
	Color         *string          `json:"color"`
	Size          *string          `json:"size"`
	Rating        *float64         `json:"rating"`
	ImageURL      *string          `json:"image_url"`
	StockQuantity *int             `json:"stock_quantity"`
	Brand         *string          `json:"brand"`
	Model         *string          `json:"model"`
}
