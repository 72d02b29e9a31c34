package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSection(t *testing.T) {
	content := `
-- +migrate Up
CREATE TABLE orders (id serial PRIMARY KEY);
ALTER TABLE orders ADD COLUMN status text;

-- +migrate Down
DROP TABLE orders;
`
	t.Run("Up", func(t *testing.T) {
		up := extractSection(content, "Up")
		assert.Contains(t, up, "CREATE TABLE orders")
		assert.Contains(t, up, "ALTER TABLE orders")
		assert.NotContains(t, up, "DROP TABLE orders")
		assert.NotContains(t, up, "-- +migrate Up")
	})

	t.Run("Down", func(t *testing.T) {
		down := extractSection(content, "Down")
		assert.Contains(t, down, "DROP TABLE orders")
		assert.NotContains(t, down, "CREATE TABLE orders")
	})
}

func TestMigrateUp(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	tmpDir := t.TempDir()
	fileName := "20250101_init.sql"
	filePath := filepath.Join(tmpDir, fileName)

	content := "-- +migrate Up\nCREATE TABLE test (id int);"
	require.NoError(t, os.WriteFile(filePath, []byte(content), 0644))

	mock.ExpectQuery("SELECT EXISTS.*schema_migrations").
		WithArgs(fileName).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec("CREATE TABLE test").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO schema_migrations").
		WithArgs(fileName).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, migrateUp(db, []string{filePath}))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrateUp_SkipsApplied(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	tmpDir := t.TempDir()
	fileName := "20250101_init.sql"
	filePath := filepath.Join(tmpDir, fileName)
	require.NoError(t, os.WriteFile(filePath, []byte("-- +migrate Up\nSELECT 1;"), 0644))

	mock.ExpectQuery("SELECT EXISTS.*schema_migrations").
		WithArgs(fileName).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	require.NoError(t, migrateUp(db, []string{filePath}))
	require.NoError(t, mock.ExpectationsWereMet())
}
