package product

import (
	"context"

	"stylehub-be/internal/logger"

	"go.uber.org/zap"
)

// Service defines the business logic for the catalog.
type Service interface {
	GetProduct(ctx context.Context, id uint) (*Product, error)
	ListProducts(ctx context.Context, opts ListOptions) ([]*Product, int, error)
	CreateProduct(ctx context.Context, input NewProductInput) (*Product, error)
	UpdateProduct(ctx context.Context, id uint, input UpdateProductInput) (*Product, error)
	DeleteProduct(ctx context.Context, id uint) error
	Categories(ctx context.Context) ([]string, error)
	Subcategories(ctx context.Context) ([]string, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetProduct(ctx context.Context, id uint) (*Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}
	return p, nil
}

func (s *service) ListProducts(ctx context.Context, opts ListOptions) ([]*Product, int, error) {
	return s.repo.List(ctx, opts)
}

func (s *service) CreateProduct(ctx context.Context, input NewProductInput) (*Product, error) {
	if err := validateNewProduct(input); err != nil {
		return nil, err
	}

	p, err := s.repo.Create(ctx, input)
	if err != nil {
		return nil, err
	}

	logger.FromCtx(ctx).Info("catalog product created",
		zap.Uint("product_id", p.ID),
		zap.String("name", p.Name),
	)
	return p, nil
}

func (s *service) UpdateProduct(ctx context.Context, id uint, input UpdateProductInput) (*Product, error) {
	if input.Price != nil && input.Price.IsNegative() {
		return nil, ErrInvalidPrice
	}
	if input.StockQuantity != nil && *input.StockQuantity < 0 {
		return nil, ErrInvalidStock
	}
	if input.Rating != nil && (*input.Rating < 0 || *input.Rating > 5) {
		return nil, ErrInvalidRating
	}
	return s.repo.Update(ctx, id, input)
}

func (s *service) DeleteProduct(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) Categories(ctx context.Context) ([]string, error) {
	return s.repo.Categories(ctx)
}

func (s *service) Subcategories(ctx context.Context) ([]string, error) {
	return s.repo.Subcategories(ctx)
}

func validateNewProduct(input NewProductInput) error {
	if input.Name == "" {
		return ErrNameRequired
	}
	if input.Price.IsNegative() {
		return ErrInvalidPrice
	}
	if input.StockQuantity < 0 {
		return ErrInvalidStock
	}
	if input.Rating < 0 || input.Rating > 5 {
		return ErrInvalidRating
	}
	return nil
}
