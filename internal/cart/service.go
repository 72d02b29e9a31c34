package cart

import (
	"context"

	"stylehub-be/internal/logger"
	"stylehub-be/internal/product"

	"go.uber.org/zap"
)

// Service defines the business logic for carts.
type Service interface {
	GetOrCreateCart(ctx context.Context, userID uint) (*Cart, error)
	AddItem(ctx context.Context, userID, productID uint, quantity int) (*Cart, error)
	UpdateItemQuantity(ctx context.Context, userID, itemID uint, quantity int) (*Cart, error)
	RemoveItem(ctx context.Context, userID, itemID uint) (*Cart, error)
}

type service struct {
	repo        Repository
	productRepo product.Repository
}

// NewService creates a new cart service
func NewService(repo Repository, productRepo product.Repository) Service {
	return &service{repo: repo, productRepo: productRepo}
}

// GetOrCreateCart returns the user's cart, creating an empty one on first
// access. Idempotent.
func (s *service) GetOrCreateCart(ctx context.Context, userID uint) (*Cart, error) {
	c, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		c, err = s.repo.Create(ctx, userID)
		if err != nil {
			return nil, err
		}
	}
	return s.withItems(ctx, c)
}

// AddItem puts a product into the user's cart. If a line for that product
// already exists its quantity is incremented. Stock is deliberately not
// checked here: a cart may hold more than available stock, checkout is the
// enforcement point.
func (s *service) AddItem(ctx context.Context, userID, productID uint, quantity int) (*Cart, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	p, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, product.ErrProductNotFound
	}

	c, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		c, err = s.repo.Create(ctx, userID)
		if err != nil {
			return nil, err
		}
	}

	existing, err := s.repo.GetItemByProduct(ctx, c.ID, productID)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		err = s.repo.UpdateItemQuantity(ctx, c.ID, existing.ID, existing.Quantity+quantity)
	} else {
		_, err = s.repo.CreateItem(ctx, c.ID, productID, quantity)
	}
	if err != nil {
		return nil, err
	}

	logger.FromCtx(ctx).Debug("cart item added",
		zap.Uint("user_id", userID),
		zap.Uint("product_id", productID),
		zap.Int("quantity", quantity),
	)

	return s.withItems(ctx, c)
}

// UpdateItemQuantity sets a line's quantity. Zero removes the line.
func (s *service) UpdateItemQuantity(ctx context.Context, userID, itemID uint, quantity int) (*Cart, error) {
	if quantity < 0 {
		return nil, ErrInvalidQuantity
	}

	c, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCartItemNotFound
	}

	if quantity == 0 {
		err = s.repo.RemoveItem(ctx, c.ID, itemID)
	} else {
		err = s.repo.UpdateItemQuantity(ctx, c.ID, itemID, quantity)
	}
	if err != nil {
		return nil, err
	}

	return s.withItems(ctx, c)
}

// RemoveItem deletes a line from the user's cart.
func (s *service) RemoveItem(ctx context.Context, userID, itemID uint) (*Cart, error) {
	c, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCartItemNotFound
	}

	if err := s.repo.RemoveItem(ctx, c.ID, itemID); err != nil {
		return nil, err
	}

	return s.withItems(ctx, c)
}

func (s *service) withItems(ctx context.Context, c *Cart) (*Cart, error) {
	items, err := s.repo.GetItems(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	c.Items = items
	return c, nil
}
