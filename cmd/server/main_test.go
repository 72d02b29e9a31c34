package main

import (
	"database/sql"
	"database/sql/driver"
	"net/http"
	"net/http/httptest"
	"testing"

	"stylehub-be/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Mock Driver for Testing ---
type mockDriver struct{}
type mockConn struct{}
type mockStmt struct{}

func (m *mockDriver) Open(name string) (driver.Conn, error)         { return &mockConn{}, nil }
func (c *mockConn) Prepare(query string) (driver.Stmt, error)       { return &mockStmt{}, nil }
func (c *mockConn) Close() error                                    { return nil }
func (c *mockConn) Begin() (driver.Tx, error)                       { return nil, nil }
func (s *mockStmt) Close() error                                    { return nil }
func (s *mockStmt) NumInput() int                                   { return 0 }
func (s *mockStmt) Exec(args []driver.Value) (driver.Result, error) { return nil, nil }
func (s *mockStmt) Query(args []driver.Value) (driver.Rows, error)  { return nil, nil }

func init() {
	sql.Register("mock_driver_main", &mockDriver{})
}

func TestNewServer(t *testing.T) {
	db, err := sql.Open("mock_driver_main", "")
	require.NoError(t, err)

	cfg := &config.Config{
		AppPort:   "8080",
		AppEnv:    "test",
		SecretKey: "dummy_secret",
	}

	router := newServer(cfg, db)
	require.NotNil(t, router)

	t.Run("Health Check", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/health", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "ok")
	})

	t.Run("Protected Route Without Token", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/api/cart", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestRun(t *testing.T) {
	origInitDB := initDBFunc
	defer func() { initDBFunc = origInitDB }()
	initDBFunc = func(cfg *config.Config) *sql.DB {
		db, _ := sql.Open("mock_driver_main", "")
		return db
	}

	origStartServer := startServerFunc
	defer func() { startServerFunc = origStartServer }()
	startServerFunc = func(addr string, handler http.Handler) error {
		return nil
	}

	t.Setenv("APP_PORT", "8080")
	t.Setenv("APP_ENV", "test")
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("DB_USER", "user")
	t.Setenv("DB_PASSWORD", "pass")
	t.Setenv("DB_NAME", "db")
	t.Setenv("SECRET_KEY", "dummy_secret")

	assert.NoError(t, run())
}
