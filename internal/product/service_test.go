package product

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetByID(ctx context.Context, id uint) (*Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Product), args.Error(1)
}

func (m *MockRepository) List(ctx context.Context, opts ListOptions) ([]*Product, int, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*Product), args.Int(1), args.Error(2)
}

func (m *MockRepository) Create(ctx context.Context, input NewProductInput) (*Product, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Product), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, id uint, input UpdateProductInput) (*Product, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Product), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepository) Categories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockRepository) Subcategories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func TestService_GetProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("GetByID", ctx, uint(1)).Return(&Product{ID: 1, Name: "Denim Jacket"}, nil).Once()

		p, err := svc.GetProduct(ctx, 1)

		assert.NoError(t, err)
		assert.Equal(t, "Denim Jacket", p.Name)
		mockRepo.AssertExpectations(t)
	})

	t.Run("NotFound", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("GetByID", ctx, uint(99)).Return(nil, nil).Once()

		_, err := svc.GetProduct(ctx, 99)

		assert.ErrorIs(t, err, ErrProductNotFound)
		mockRepo.AssertExpectations(t)
	})

	t.Run("DBError", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		expectedErr := errors.New("db error")

		mockRepo.On("GetByID", ctx, uint(1)).Return(nil, expectedErr).Once()

		_, err := svc.GetProduct(ctx, 1)

		assert.Equal(t, expectedErr, err)
	})
}

func TestService_CreateProduct(t *testing.T) {
	ctx := context.Background()

	valid := NewProductInput{
		Name:          "Linen Shirt",
		Price:         decimal.NewFromInt(45),
		Category:      "tops",
		StockQuantity: 10,
	}

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("Create", ctx, valid).Return(&Product{ID: 1, Name: valid.Name}, nil).Once()

		p, err := svc.CreateProduct(ctx, valid)

		assert.NoError(t, err)
		assert.Equal(t, uint(1), p.ID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("MissingName", func(t *testing.T) {
		svc := NewService(new(MockRepository))

		input := valid
		input.Name = ""

		_, err := svc.CreateProduct(ctx, input)
		assert.ErrorIs(t, err, ErrNameRequired)
	})

	t.Run("NegativePrice", func(t *testing.T) {
		svc := NewService(new(MockRepository))

		input := valid
		input.Price = decimal.NewFromInt(-1)

		_, err := svc.CreateProduct(ctx, input)
		assert.ErrorIs(t, err, ErrInvalidPrice)
	})

	t.Run("NegativeStock", func(t *testing.T) {
		svc := NewService(new(MockRepository))

		input := valid
		input.StockQuantity = -3

		_, err := svc.CreateProduct(ctx, input)
		assert.ErrorIs(t, err, ErrInvalidStock)
	})
}

func TestService_UpdateProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("NegativePricePatch", func(t *testing.T) {
		svc := NewService(new(MockRepository))

		price := decimal.NewFromInt(-10)
		_, err := svc.UpdateProduct(ctx, 1, UpdateProductInput{Price: &price})

		assert.ErrorIs(t, err, ErrInvalidPrice)
	})

	t.Run("ValidPatch", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		name := "Renamed"
		input := UpdateProductInput{Name: &name}
		mockRepo.On("Update", ctx, uint(1), input).Return(&Product{ID: 1, Name: name}, nil).Once()

		p, err := svc.UpdateProduct(ctx, 1, input)

		assert.NoError(t, err)
		assert.Equal(t, name, p.Name)
		mockRepo.AssertExpectations(t)
	})
}
