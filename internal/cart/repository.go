package cart

import (
	"context"
	"database/sql"
	"errors"

	"stylehub-be/internal/logger"
	"stylehub-be/internal/product"

	"go.uber.org/zap"
)

type Repository interface {
	GetByUser(ctx context.Context, userID uint) (*Cart, error)
	Create(ctx context.Context, userID uint) (*Cart, error)
	GetItems(ctx context.Context, cartID uint) ([]CartItem, error)
	GetItemByProduct(ctx context.Context, cartID, productID uint) (*CartItem, error)
	CreateItem(ctx context.Context, cartID, productID uint, quantity int) (*CartItem, error)
	UpdateItemQuantity(ctx context.Context, cartID, itemID uint, quantity int) error
	RemoveItem(ctx context.Context, cartID, itemID uint) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByUser(ctx context.Context, userID uint) (*Cart, error) {
	var c Cart
	err := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, created_at, updated_at
		FROM carts
		WHERE user_id = $1
	`, userID).Scan(&c.ID, &c.UserID, &c.CreatedAt, &c.UpdatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) Create(ctx context.Context, userID uint) (*Cart, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Create"),
		zap.Uint("user_id", userID),
	)

	var c Cart
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO carts (user_id)
		VALUES ($1)
		ON CONFLICT (user_id) DO UPDATE SET updated_at = carts.updated_at
		RETURNING id, user_id, created_at, updated_at
	`, userID).Scan(&c.ID, &c.UserID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		log.Error("failed to create cart", zap.Error(err))
		return nil, err
	}

	log.Debug("cart ready", zap.Uint("cart_id", c.ID))
	return &c, nil
}

func (r *repository) GetItems(ctx context.Context, cartID uint) ([]CartItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			ci.id,
			ci.cart_id,
			ci.product_id,
			ci.quantity,
			ci.created_at,
			ci.updated_at,

			p.name,
			p.price,
			p.image_url,
			p.stock_quantity
		FROM cart_items ci
		JOIN products p ON p.id = ci.product_id
		WHERE ci.cart_id = $1
		ORDER BY ci.id
	`, cartID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []CartItem{}
	for rows.Next() {
		item := CartItem{Product: &product.Product{}}
		if err := rows.Scan(
			&item.ID,
			&item.CartID,
			&item.ProductID,
			&item.Quantity,
			&item.CreatedAt,
			&item.UpdatedAt,

			&item.Product.Name,
			&item.Product.Price,
			&item.Product.ImageURL,
			&item.Product.StockQuantity,
		); err != nil {
			return nil, err
		}
		item.Product.ID = item.ProductID
		items = append(items, item)
	}

	return items, rows.Err()
}

func (r *repository) GetItemByProduct(ctx context.Context, cartID, productID uint) (*CartItem, error) {
	var item CartItem
	err := r.db.QueryRowContext(ctx, `
		SELECT id, cart_id, product_id, quantity, created_at, updated_at
		FROM cart_items
		WHERE cart_id = $1 AND product_id = $2
	`, cartID, productID).Scan(
		&item.ID, &item.CartID, &item.ProductID, &item.Quantity,
		&item.CreatedAt, &item.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *repository) CreateItem(ctx context.Context, cartID, productID uint, quantity int) (*CartItem, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateItem"),
		zap.Uint("cart_id", cartID),
		zap.Uint("product_id", productID),
	)

	var item CartItem
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO cart_items (cart_id, product_id, quantity)
		VALUES ($1, $2, $3)
		RETURNING id, cart_id, product_id, quantity, created_at, updated_at
	`, cartID, productID, quantity).Scan(
		&item.ID, &item.CartID, &item.ProductID, &item.Quantity,
		&item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		log.Error("failed to create cart item", zap.Error(err))
		return nil, err
	}

	log.Info("cart item created", zap.Uint("cart_item_id", item.ID))
	return &item, nil
}

func (r *repository) UpdateItemQuantity(ctx context.Context, cartID, itemID uint, quantity int) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE cart_items
		SET quantity = $1, updated_at = NOW()
		WHERE id = $2 AND cart_id = $3
	`, quantity, itemID, cartID)
	if err != nil {
		return err
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrCartItemNotFound
	}
	return nil
}

func (r *repository) RemoveItem(ctx context.Context, cartID, itemID uint) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM cart_items
		WHERE id = $1 AND cart_id = $2
	`, itemID, cartID)
	if err != nil {
		return err
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrCartItemNotFound
	}
	return nil
}
