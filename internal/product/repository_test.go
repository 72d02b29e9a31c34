package product

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var productCols = []string{
	"id", "name", "description", "price", "category", "subcategory",
	"style", "color", "size", "rating", "image_url", "stock_quantity",
	"brand", "model", "created_at", "updated_at",
}

func productRow() *sqlmock.Rows {
	return sqlmock.NewRows(productCols).AddRow(
		1, "Denim Jacket", "classic fit", "79.99", "tops", "jackets",
		"casual", "blue", "M", 4.5, "http://img", 12,
		"Stitch&Co", "DJ-100", time.Now(), time.Now(),
	)
}

func TestRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM products WHERE id = \$1`).
			WithArgs(uint(1)).
			WillReturnRows(productRow())

		p, err := repo.GetByID(ctx, 1)
		assert.NoError(t, err)
		require.NotNil(t, p)
		assert.Equal(t, "Denim Jacket", p.Name)
		assert.True(t, p.Price.Equal(decimal.RequireFromString("79.99")))
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM products WHERE id = \$1`).
			WithArgs(uint(42)).
			WillReturnRows(sqlmock.NewRows(productCols))

		p, err := repo.GetByID(ctx, 42)
		assert.NoError(t, err)
		assert.Nil(t, p)
	})
}

func TestRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	t.Run("NoFilters", func(t *testing.T) {
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM products WHERE 1=1`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		mock.ExpectQuery(`SELECT .* FROM products WHERE 1=1 ORDER BY id LIMIT \$1 OFFSET \$2`).
			WithArgs(20, 0).
			WillReturnRows(productRow())

		products, total, err := repo.List(ctx, ListOptions{})
		assert.NoError(t, err)
		assert.Equal(t, 1, total)
		assert.Len(t, products, 1)
	})

	t.Run("CategoryAndSearch", func(t *testing.T) {
		category := "tops"
		search := "denim"

		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM products WHERE 1=1 AND category = \$1 AND \(name ILIKE \$2 OR description ILIKE \$2\)`).
			WithArgs(category, "%denim%").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		mock.ExpectQuery(`SELECT .* FROM products WHERE 1=1 AND category = \$1 AND \(name ILIKE \$2 OR description ILIKE \$2\) ORDER BY id LIMIT \$3 OFFSET \$4`).
			WithArgs(category, "%denim%", 20, 0).
			WillReturnRows(productRow())

		_, total, err := repo.List(ctx, ListOptions{Category: &category, Search: &search})
		assert.NoError(t, err)
		assert.Equal(t, 1, total)
	})

	t.Run("PriceRange", func(t *testing.T) {
		min := decimal.NewFromInt(10)
		max := decimal.NewFromInt(100)

		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM products WHERE 1=1 AND price >= \$1 AND price <= \$2`).
			WithArgs(min, max).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		mock.ExpectQuery(`SELECT .* FROM products WHERE 1=1 AND price >= \$1 AND price <= \$2 ORDER BY id LIMIT \$3 OFFSET \$4`).
			WithArgs(min, max, 20, 0).
			WillReturnRows(sqlmock.NewRows(productCols))

		products, total, err := repo.List(ctx, ListOptions{MinPrice: &min, MaxPrice: &max})
		assert.NoError(t, err)
		assert.Equal(t, 0, total)
		assert.Empty(t, products)
	})

	t.Run("DBError", func(t *testing.T) {
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM products`).
			WillReturnError(errors.New("db error"))

		_, _, err := repo.List(ctx, ListOptions{})
		assert.Error(t, err)
	})
}

func TestRepository_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	t.Run("PatchName", func(t *testing.T) {
		name := "Renamed Jacket"

		mock.ExpectQuery(`UPDATE products SET name = \$1, updated_at = NOW\(\) WHERE id = \$2 RETURNING`).
			WithArgs(name, uint(1)).
			WillReturnRows(productRow())

		p, err := repo.Update(ctx, 1, UpdateProductInput{Name: &name})
		assert.NoError(t, err)
		assert.NotNil(t, p)
	})

	t.Run("NotFound", func(t *testing.T) {
		name := "ghost"

		mock.ExpectQuery(`UPDATE products SET name = \$1, updated_at = NOW\(\) WHERE id = \$2 RETURNING`).
			WithArgs(name, uint(9)).
			WillReturnRows(sqlmock.NewRows(productCols))

		_, err := repo.Update(ctx, 9, UpdateProductInput{Name: &name})
		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}

func TestRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM products WHERE id = \$1`).
			WithArgs(uint(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(ctx, 1))
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM products WHERE id = \$1`).
			WithArgs(uint(7)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(ctx, 7), ErrProductNotFound)
	})
}

func TestRepository_Categories(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery(`SELECT DISTINCT category FROM products ORDER BY category`).
		WillReturnRows(sqlmock.NewRows([]string{"category"}).
			AddRow("bottoms").AddRow("dresses").AddRow("tops"))

	categories, err := repo.Categories(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []string{"bottoms", "dresses", "tops"}, categories)
}
