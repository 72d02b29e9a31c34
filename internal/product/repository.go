package product

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"stylehub-be/internal/logger"

	"go.uber.org/zap"
)

const productColumns = `
	id, name, description, price, category, subcategory,
	style, color, size, rating, image_url, stock_quantity,
	brand, model, created_at, updated_at`

type Repository interface {
	GetByID(ctx context.Context, id uint) (*Product, error)
	List(ctx context.Context, opts ListOptions) ([]*Product, int, error)
	Create(ctx context.Context, input NewProductInput) (*Product, error)
	Update(ctx context.Context, id uint, input UpdateProductInput) (*Product, error)
	Delete(ctx context.Context, id uint) error
	Categories(ctx context.Context) ([]string, error)
	Subcategories(ctx context.Context) ([]string, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func scanProduct(row interface{ Scan(dest ...any) error }) (*Product, error) {
	var p Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Category, &p.Subcategory,
		&p.Style, &p.Color, &p.Size, &p.Rating, &p.ImageURL, &p.StockQuantity,
		&p.Brand, &p.Model, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) GetByID(ctx context.Context, id uint) (*Product, error) {
	query := `SELECT` + productColumns + ` FROM products WHERE id = $1`

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *repository) List(ctx context.Context, opts ListOptions) ([]*Product, int, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "List"),
	)

	start := time.Now()

	// ---------- where ----------
	where := []string{"1=1"}
	args := []any{}

	addEq := func(column string, v *string) {
		if v != nil && *v != "" {
			where = append(where, fmt.Sprintf("%s = $%d", column, len(args)+1))
			args = append(args, *v)
		}
	}

	addEq("category", opts.Category)
	addEq("subcategory", opts.Subcategory)
	addEq("style", opts.Style)
	addEq("color", opts.Color)

	if opts.MinPrice != nil {
		where = append(where, fmt.Sprintf("price >= $%d", len(args)+1))
		args = append(args, *opts.MinPrice)
	}
	if opts.MaxPrice != nil {
		where = append(where, fmt.Sprintf("price <= $%d", len(args)+1))
		args = append(args, *opts.MaxPrice)
	}
	if opts.Search != nil && *opts.Search != "" {
		where = append(where, fmt.Sprintf(
			"(name ILIKE $%d OR description ILIKE $%d)",
			len(args)+1, len(args)+1,
		))
		args = append(args, "%"+*opts.Search+"%")
	}

	whereClause := strings.Join(where, " AND ")

	// ---------- total ----------
	var total int
	countQuery := `SELECT COUNT(*) FROM products WHERE ` + whereClause
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		log.Error("count query failed", zap.Error(err))
		return nil, 0, err
	}

	// ---------- pagination ----------
	page := opts.Page
	if page < 1 {
		page = 1
	}
	perPage := opts.PerPage
	if perPage < 1 {
		perPage = 20
	}
	if perPage > 100 {
		perPage = 100
	}
	offset := (page - 1) * perPage

	query := `SELECT` + productColumns + `
	FROM products
	WHERE ` + whereClause + `
	ORDER BY id
	LIMIT $` + fmt.Sprint(len(args)+1) + `
	OFFSET $` + fmt.Sprint(len(args)+2)

	args = append(args, perPage, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("query failed",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)),
		)
		return nil, 0, err
	}
	defer rows.Close()

	result := make([]*Product, 0, perPage)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			log.Error("row scan failed", zap.Error(err))
			return nil, 0, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		log.Error("rows iteration failed", zap.Error(err))
		return nil, 0, err
	}

	log.Debug("query success",
		zap.Int("rows", len(result)),
		zap.Int("total", total),
		zap.Duration("duration", time.Since(start)),
	)

	return result, total, nil
}

func (r *repository) Create(ctx context.Context, input NewProductInput) (*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Create"),
		zap.String("name", input.Name),
	)

	query := `
	INSERT INTO products (
		name, description, price, category, subcategory,
		style, color, size, rating, image_url, stock_quantity,
		brand, model
	)
	VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
	RETURNING` + productColumns

	p, err := scanProduct(r.db.QueryRowContext(ctx, query,
		input.Name, input.Description, input.Price, input.Category, input.Subcategory,
		input.Style, input.Color, input.Size, input.Rating, input.ImageURL,
		input.StockQuantity, input.Brand, input.Model,
	))
	if err != nil {
		log.Error("failed to create product", zap.Error(err))
		return nil, err
	}

	log.Info("product created", zap.Uint("product_id", p.ID))
	return p, nil
}

func (r *repository) Update(ctx context.Context, id uint, input UpdateProductInput) (*Product, error) {
	set := []string{}
	args := []any{}

	add := func(column string, v any) {
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)+1))
		args = append(args, v)
	}

	if input.Name != nil {
		add("name", *input.Name)
	}
	if input.Description != nil {
		add("description", *input.Description)
	}
	if input.Price != nil {
		add("price", *input.Price)
	}
	if input.Category != nil {
		add("category", *input.Category)
	}
	if input.Subcategory != nil {
		add("subcategory", *input.Subcategory)
	}
	if input.Style != nil {
		add("style", *input.Style)
	}
	if input.Color != nil {
		add("color", *input.Color)
	}
	if input.Size != nil {
		add("size", *input.Size)
	}
	if input.Rating != nil {
		add("rating", *input.Rating)
	}
	if input.ImageURL != nil {
		add("image_url", *input.ImageURL)
	}
	if input.StockQuantity != nil {
		add("stock_quantity", *input.StockQuantity)
	}
	if input.Brand != nil {
		add("brand", *input.Brand)
	}
	if input.Model != nil {
		add("model", *input.Model)
	}

	if len(set) == 0 {
		return r.getExisting(ctx, id)
	}

	set = append(set, "updated_at = NOW()")

	query := `UPDATE products SET ` + strings.Join(set, ", ") +
		fmt.Sprintf(" WHERE id = $%d RETURNING", len(args)+1) + productColumns
	args = append(args, id)

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *repository) getExisting(ctx context.Context, id uint) (*Product, error) {
	p, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}
	return p, nil
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (r *repository) Categories(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, `SELECT DISTINCT category FROM products ORDER BY category`)
}

func (r *repository) Subcategories(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, `SELECT DISTINCT subcategory FROM products WHERE subcategory <> '' ORDER BY subcategory`)
}

func (r *repository) distinct(ctx context.Context, query string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, rows.Err()
}
