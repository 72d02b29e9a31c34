package order

import (
	"context"
	"strings"

	"stylehub-be/internal/logger"

	"go.uber.org/zap"
)

const defaultPaymentMethod = "card"

type Service interface {
	CreateOrder(ctx context.Context, userID uint, input CreateOrderInput) (*Order, error)
	GetOrders(ctx context.Context, userID uint) ([]*Order, error)
	GetOrder(ctx context.Context, userID, orderID uint) (*Order, error)
	UpdateOrderStatus(ctx context.Context, userID, orderID uint, status string) (*Order, error)
	UpdatePaymentStatus(ctx context.Context, userID, orderID uint, status string) (*Order, error)
}

type service struct {
	repo Repository

	// restockOnCancel controls whether cancelling an order restores the
	// decremented stock. Off by default.
	restockOnCancel bool
}

func NewService(repo Repository, restockOnCancel bool) Service {
	return &service{repo: repo, restockOnCancel: restockOnCancel}
}

// CreateOrder checks out the user's cart. Validation happens here; the
// atomicity of the conversion lives in the repository transaction.
func (s *service) CreateOrder(ctx context.Context, userID uint, input CreateOrderInput) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateOrder"),
		zap.Uint("user_id", userID),
	)

	input.ShippingAddress = strings.TrimSpace(input.ShippingAddress)
	if input.ShippingAddress == "" {
		log.Warn("missing shipping address")
		return nil, ErrShippingAddressRequired
	}
	if strings.TrimSpace(input.BillingAddress) == "" {
		input.BillingAddress = input.ShippingAddress
	}
	if input.PaymentMethod == "" {
		input.PaymentMethod = defaultPaymentMethod
	}

	log.Info("checkout started")

	o, err := s.repo.CreateOrder(ctx, userID, input)
	if err != nil {
		log.Warn("checkout failed", zap.Error(err))
		return nil, err
	}

	log.Info("checkout succeeded",
		zap.Uint("order_id", o.ID),
		zap.String("total_amount", o.TotalAmount.String()),
	)
	return o, nil
}

func (s *service) GetOrders(ctx context.Context, userID uint) ([]*Order, error) {
	return s.repo.GetOrders(ctx, userID)
}

func (s *service) GetOrder(ctx context.Context, userID, orderID uint) (*Order, error) {
	return s.repo.GetOrderDetail(ctx, userID, orderID)
}

// UpdateOrderStatus handles owner-initiated status changes. Regular callers
// may only cancel; every other transition is rejected.
func (s *service) UpdateOrderStatus(ctx context.Context, userID, orderID uint, status string) (*Order, error) {
	parsed, err := ParseStatus(status)
	if err != nil {
		return nil, err
	}

	if parsed != StatusCancelled {
		return nil, ErrInvalidTransition
	}

	o, err := s.repo.GetOrderDetail(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}
	if !CanCancel(o.Status) {
		return nil, ErrInvalidTransition
	}

	if err := s.repo.CancelOrder(ctx, userID, orderID, s.restockOnCancel); err != nil {
		return nil, err
	}

	return s.repo.GetOrderDetail(ctx, userID, orderID)
}

func (s *service) UpdatePaymentStatus(ctx context.Context, userID, orderID uint, status string) (*Order, error) {
	parsed, err := ParsePaymentStatus(status)
	if err != nil {
		return nil, err
	}
	return s.repo.UpdatePaymentStatus(ctx, userID, orderID, parsed)
}
