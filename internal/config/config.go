package config

import (
	"os"
	"strconv"
	"time"

	"github.com/gasgestao/gestao-plus/internal/notifier"
)

// Backends de armazenamento suportados
const (
	StorageMemory   = "memory"
	StorageFile     = "file"
	StoragePostgres = "postgres"
)

// Config contém as configurações da aplicação, lidas do ambiente
type Config struct {
	// StorageBackend seleciona a persistência: memory, file ou postgres
	StorageBackend string
	// DataDir é o diretório de dados do backend file
	DataDir string
	// LowStockInterval é o intervalo da verificação periódica de estoque
	LowStockInterval time.Duration
}

// NewConfigFromEnv cria uma nova configuração a partir de variáveis de ambiente
func NewConfigFromEnv() *Config {
	intervalMin, _ := strconv.Atoi(getEnv("LOW_STOCK_INTERVAL_MINUTES", "0"))
	interval := time.Duration(intervalMin) * time.Minute
	if interval <= 0 {
		interval = notifier.DefaultLowStockInterval
	}

	return &Config{
		StorageBackend:   getEnv("STORAGE_BACKEND", StorageFile),
		DataDir:          getEnv("DATA_DIR", "data"),
		LowStockInterval: interval,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
