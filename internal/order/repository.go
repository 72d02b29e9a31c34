package order

import (
	"context"
	"database/sql"
	"errors"

	"stylehub-be/internal/logger"
	"stylehub-be/internal/product"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Repository interface {
	CreateOrder(ctx context.Context, userID uint, input CreateOrderInput) (*Order, error)
	GetOrders(ctx context.Context, userID uint) ([]*Order, error)
	GetOrderDetail(ctx context.Context, userID, orderID uint) (*Order, error)
	CancelOrder(ctx context.Context, userID, orderID uint, restock bool) error
	UpdatePaymentStatus(ctx context.Context, userID, orderID uint, status PaymentStatus) (*Order, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// cartLine is one cart row joined to its product, read under a row lock
// during checkout.
type cartLine struct {
	itemID    uint
	productID uint
	quantity  int
	name      string
	price     decimal.Decimal
	stock     int
}

// CreateOrder converts the user's cart into an order inside a single
// transaction. Product rows are locked for the duration, so two checkouts
// racing on the same product serialize here; the per-line admission check
// then guarantees stock never goes negative. Any failure rolls back the
// whole unit: order, items, stock decrements and the cart clearing.
func (r *repository) CreateOrder(ctx context.Context, userID uint, input CreateOrderInput) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateOrder"),
		zap.Uint("user_id", userID),
	)

	log.Debug("starting checkout transaction")

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("failed to begin transaction", zap.Error(err))
		return nil, err
	}

	committed := false
	defer func() {
		if !committed {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error("failed to rollback transaction", zap.Error(rbErr))
			} else {
				log.Debug("checkout rolled back")
			}
		}
	}()

	// 1. Load cart lines with their products, locking the product rows.
	// The inner join drops lines whose product no longer exists.
	rows, err := tx.QueryContext(ctx, `
		SELECT
			ci.id,
			ci.product_id,
			ci.quantity,
			p.name,
			p.price,
			p.stock_quantity
		FROM cart_items ci
		JOIN carts c ON c.id = ci.cart_id
		JOIN products p ON p.id = ci.product_id
		WHERE c.user_id = $1
		ORDER BY ci.id
		FOR UPDATE OF p
	`, userID)
	if err != nil {
		log.Error("failed to load cart lines", zap.Error(err))
		return nil, err
	}

	var lines []cartLine
	for rows.Next() {
		var l cartLine
		if err := rows.Scan(&l.itemID, &l.productID, &l.quantity, &l.name, &l.price, &l.stock); err != nil {
			rows.Close()
			return nil, err
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	if len(lines) == 0 {
		return nil, ErrCartEmpty
	}

	// 2. Total from current catalog prices, before any mutation.
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.price.Mul(decimal.NewFromInt(int64(l.quantity))))
	}

	// 3. Insert the order first to obtain its identity.
	o := &Order{
		UserID:          userID,
		TotalAmount:     total,
		Status:          StatusPending,
		PaymentStatus:   PaymentPending,
		ShippingAddress: input.ShippingAddress,
		BillingAddress:  input.BillingAddress,
		PaymentMethod:   input.PaymentMethod,
		CustomerEmail:   input.CustomerEmail,
		CustomerPhone:   input.CustomerPhone,
	}

	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (
			user_id, total_amount, status, payment_status,
			shipping_address, billing_address, payment_method,
			customer_email, customer_phone
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING id, created_at, updated_at
	`,
		o.UserID, o.TotalAmount, o.Status, o.PaymentStatus,
		o.ShippingAddress, o.BillingAddress, o.PaymentMethod,
		o.CustomerEmail, o.CustomerPhone,
	).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		log.Error("failed to insert order", zap.Error(err))
		return nil, err
	}

	// 4. Per line, in stored order: admission check, snapshot, decrement.
	for _, l := range lines {
		if l.stock < l.quantity {
			log.Warn("stock admission check failed",
				zap.Uint("product_id", l.productID),
				zap.Int("requested", l.quantity),
				zap.Int("available", l.stock),
			)
			return nil, &InsufficientStockError{ProductName: l.name, Available: l.stock}
		}

		item := OrderItem{
			OrderID:   o.ID,
			ProductID: l.productID,
			Quantity:  l.quantity,
			Price:     l.price,
		}

		err = tx.QueryRowContext(ctx, `
			INSERT INTO order_items (order_id, product_id, quantity, price)
			VALUES ($1, $2, $3, $4)
			RETURNING id, created_at
		`, item.OrderID, item.ProductID, item.Quantity, item.Price).
			Scan(&item.ID, &item.CreatedAt)
		if err != nil {
			log.Error("failed to insert order item",
				zap.Uint("product_id", l.productID),
				zap.Error(err),
			)
			return nil, err
		}

		// Guarded decrement: the row lock makes the Go-side check
		// authoritative, the WHERE clause is a second line of defense.
		res, err := tx.ExecContext(ctx, `
			UPDATE products
			SET stock_quantity = stock_quantity - $1, updated_at = NOW()
			WHERE id = $2 AND stock_quantity >= $1
		`, l.quantity, l.productID)
		if err != nil {
			log.Error("failed to decrement stock", zap.Error(err))
			return nil, err
		}
		if affected, _ := res.RowsAffected(); affected == 0 {
			return nil, &InsufficientStockError{ProductName: l.name, Available: l.stock}
		}

		o.Items = append(o.Items, item)
	}

	// 5. Empty the cart within the same unit.
	_, err = tx.ExecContext(ctx, `
		DELETE FROM cart_items
		USING carts
		WHERE cart_items.cart_id = carts.id AND carts.user_id = $1
	`, userID)
	if err != nil {
		log.Error("failed to clear cart", zap.Error(err))
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		log.Error("failed to commit checkout transaction", zap.Error(err))
		return nil, err
	}
	committed = true

	log.Info("checkout committed",
		zap.Uint("order_id", o.ID),
		zap.String("total_amount", o.TotalAmount.String()),
		zap.Int("item_count", len(o.Items)),
	)

	return o, nil
}

const orderColumns = `
	id, user_id, total_amount, status, payment_status,
	shipping_address, billing_address, payment_method,
	customer_email, customer_phone, created_at, updated_at`

func scanOrder(row interface{ Scan(dest ...any) error }) (*Order, error) {
	var o Order
	err := row.Scan(
		&o.ID, &o.UserID, &o.TotalAmount, &o.Status, &o.PaymentStatus,
		&o.ShippingAddress, &o.BillingAddress, &o.PaymentMethod,
		&o.CustomerEmail, &o.CustomerPhone, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// GetOrders returns the caller's order history, newest first.
func (r *repository) GetOrders(ctx context.Context, userID uint) ([]*Order, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT`+orderColumns+`
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

// GetOrderDetail returns one order with its items, scoped to the owner.
func (r *repository) GetOrderDetail(ctx context.Context, userID, orderID uint) (*Order, error) {
	o, err := scanOrder(r.db.QueryRowContext(ctx, `
		SELECT`+orderColumns+`
		FROM orders
		WHERE id = $1 AND user_id = $2
	`, orderID, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT
			oi.id, oi.order_id, oi.product_id, oi.quantity, oi.price, oi.created_at,
			p.name, p.image_url
		FROM order_items oi
		LEFT JOIN products p ON p.id = oi.product_id
		WHERE oi.order_id = $1
		ORDER BY oi.id
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item OrderItem
		var name, imageURL sql.NullString
		if err := rows.Scan(
			&item.ID, &item.OrderID, &item.ProductID, &item.Quantity,
			&item.Price, &item.CreatedAt, &name, &imageURL,
		); err != nil {
			return nil, err
		}
		if name.Valid {
			item.Product = &product.Product{
				ID:       item.ProductID,
				Name:     name.String,
				ImageURL: imageURL.String,
			}
		}
		o.Items = append(o.Items, item)
	}

	return o, rows.Err()
}

// CancelOrder flips a pending or confirmed order to cancelled. The status
// condition in the UPDATE keeps the check-and-set atomic under concurrent
// transitions. Restocking the order's lines is policy-controlled.
func (r *repository) CancelOrder(ctx context.Context, userID, orderID uint, restock bool) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CancelOrder"),
		zap.Uint("order_id", orderID),
		zap.Bool("restock", restock),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	res, err := tx.ExecContext(ctx, `
		UPDATE orders
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND user_id = $3 AND status IN ($4, $5)
	`, StatusCancelled, orderID, userID, StatusPending, StatusConfirmed)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		// Distinguish a missing order from one past the cancellable states.
		var exists bool
		err := tx.QueryRowContext(ctx, `
			SELECT EXISTS(SELECT 1 FROM orders WHERE id = $1 AND user_id = $2)
		`, orderID, userID).Scan(&exists)
		if err != nil {
			return err
		}
		if !exists {
			return ErrOrderNotFound
		}
		return ErrInvalidTransition
	}

	if restock {
		_, err = tx.ExecContext(ctx, `
			UPDATE products p
			SET stock_quantity = p.stock_quantity + oi.quantity, updated_at = NOW()
			FROM order_items oi
			WHERE oi.order_id = $1 AND oi.product_id = p.id
		`, orderID)
		if err != nil {
			log.Error("failed to restock cancelled order", zap.Error(err))
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true

	log.Info("order cancelled")
	return nil
}

// UpdatePaymentStatus sets the payment status and, when payment completes on
// a pending order, advances the order to confirmed in the same transaction.
func (r *repository) UpdatePaymentStatus(ctx context.Context, userID, orderID uint, status PaymentStatus) (*Order, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}

	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	var current Status
	err = tx.QueryRowContext(ctx, `
		SELECT status FROM orders
		WHERE id = $1 AND user_id = $2
		FOR UPDATE
	`, orderID, userID).Scan(&current)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	next := current
	if status == PaymentCompleted && current == StatusPending {
		next = StatusConfirmed
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE orders
		SET payment_status = $1, status = $2, updated_at = NOW()
		WHERE id = $3
	`, status, next, orderID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	committed = true

	return r.GetOrderDetail(ctx, userID, orderID)
}
