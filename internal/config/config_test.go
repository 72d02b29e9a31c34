package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_USER", "postgres")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "stylehub")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("APP_PORT", "")
	t.Setenv("RESTOCK_ON_CANCEL", "true")

	cfg := LoadConfig()

	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "stylehub", cfg.DBName)
	assert.Equal(t, "8080", cfg.AppPort, "AppPort should fall back to 8080")
	assert.True(t, cfg.RestockOnCancel)
}

func TestParseBool(t *testing.T) {
	assert.False(t, parseBool(""))
	assert.False(t, parseBool("nope"))
	assert.False(t, parseBool("0"))
	assert.True(t, parseBool("1"))
	assert.True(t, parseBool("true"))
}
