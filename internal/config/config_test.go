package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/gasgestao/gestao-plus/internal/config"
	"github.com/gasgestao/gestao-plus/internal/notifier"
)

func TestNewConfigFromEnvDefaults(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "")
	t.Setenv("DATA_DIR", "")
	t.Setenv("LOW_STOCK_INTERVAL_MINUTES", "")

	cfg := config.NewConfigFromEnv()
	assert.Equal(t, config.StorageFile, cfg.StorageBackend)
	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, notifier.DefaultLowStockInterval, cfg.LowStockInterval)
}

func TestNewConfigFromEnvOverrides(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", config.StoragePostgres)
	t.Setenv("DATA_DIR", "/var/lib/gestao")
	t.Setenv("LOW_STOCK_INTERVAL_MINUTES", "15")

	cfg := config.NewConfigFromEnv()
	assert.Equal(t, config.StoragePostgres, cfg.StorageBackend)
	assert.Equal(t, "/var/lib/gestao", cfg.DataDir)
	assert.Equal(t, 15*time.Minute, cfg.LowStockInterval)
}

func TestNewConfigFromEnvInvalidInterval(t *testing.T) {
	t.Setenv("LOW_STOCK_INTERVAL_MINUTES", "não-numérico")

	cfg := config.NewConfigFromEnv()
	assert.Equal(t, notifier.DefaultLowStockInterval, cfg.LowStockInterval)
}
