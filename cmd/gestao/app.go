package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gasgestao/gestao-plus/internal/auth"
	"github.com/gasgestao/gestao-plus/internal/config"
	"github.com/gasgestao/gestao-plus/internal/infrastructure/database"
	"github.com/gasgestao/gestao-plus/internal/notifier"
	"github.com/gasgestao/gestao-plus/internal/storage"
	"github.com/gasgestao/gestao-plus/internal/store"
	"github.com/gasgestao/gestao-plus/pkg/clock"
	"github.com/gasgestao/gestao-plus/pkg/logger"
)

// App representa a aplicação e suas dependências. O Store é construído aqui
// e alcançado apenas por referência explícita, nunca por estado global.
type App struct {
	log     logger.Logger
	cfg     *config.Config
	db      *pgxpool.Pool
	store   *store.Store
	auth    *auth.Service
	watcher *notifier.LowStockWatcher
}

// NewApp cria uma nova instância da aplicação
func NewApp() (*App, error) {
	log := logger.NewLogger()
	cfg := config.NewConfigFromEnv()

	app := &App{log: log, cfg: cfg}

	st, err := app.newStorage()
	if err != nil {
		return nil, err
	}

	n := notifier.NewLogNotifier(log)
	app.store = store.New(st, clock.System(), n, log)
	app.auth = auth.NewService(app.store, log)
	app.watcher = notifier.NewLowStockWatcher(cfg.LowStockInterval, app.store.Products, n)

	return app, nil
}

// newStorage instancia o backend de persistência configurado
func (a *App) newStorage() (storage.Storage, error) {
	switch a.cfg.StorageBackend {
	case config.StorageMemory:
		return storage.NewMemoryStorage(), nil
	case config.StorageFile:
		return storage.NewFileStorage(a.cfg.DataDir)
	case config.StoragePostgres:
		db, err := database.NewPostgresDB()
		if err != nil {
			return nil, err
		}
		a.db = db
		return storage.NewPostgresStorage(db), nil
	default:
		return nil, fmt.Errorf("backend de armazenamento desconhecido: %s", a.cfg.StorageBackend)
	}
}

// Start inicia o watcher de estoque e aguarda o sinal de encerramento
func (a *App) Start() {
	stats := a.store.Stats()
	a.log.Info("aplicação iniciada",
		"storage", a.cfg.StorageBackend,
		"vendas", stats.TotalSales,
		"clientes", stats.TotalCustomers,
		"estoque_baixo", stats.LowStockItems,
		"receita_mensal", stats.MonthlyRevenue.StringFixed(2),
	)

	a.watcher.Start()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	a.log.Info("encerrando aplicação")
}

// Close libera os recursos da aplicação
func (a *App) Close() {
	if a.watcher != nil {
		a.watcher.Stop()
	}
	if a.db != nil {
		a.db.Close()
	}
}
