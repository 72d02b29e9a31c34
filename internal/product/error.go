package product

import "errors"

var (
	// -- Validation & Input --
	ErrNameRequired  = errors.New("product name is required")
	ErrInvalidPrice  = errors.New("product price must not be negative")
	ErrInvalidStock  = errors.New("stock quantity must not be negative")
	ErrInvalidRating = errors.New("rating must be between 0 and 5")

	// -- Resource State --
	ErrProductNotFound = errors.New("product not found")
)
