package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/gasgestao/gestao-plus/internal/config"
	"github.com/gasgestao/gestao-plus/internal/infrastructure/database"
	"github.com/gasgestao/gestao-plus/internal/notifier"
	"github.com/gasgestao/gestao-plus/internal/report"
	"github.com/gasgestao/gestao-plus/internal/storage"
	"github.com/gasgestao/gestao-plus/internal/store"
	"github.com/gasgestao/gestao-plus/pkg/clock"
	"github.com/gasgestao/gestao-plus/pkg/logger"
)

// Gera os relatórios em xlsx e o backup completo em JSON a partir dos dados
// persistidos, sem subir a aplicação.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: Arquivo .env não encontrado: %v", err)
	}

	outDir := flag.String("out", "reports", "diretório de saída dos relatórios")
	flag.Parse()

	cfg := config.NewConfigFromEnv()
	appLog := logger.NewLogger()

	st, err := newStorage(cfg)
	if err != nil {
		log.Fatalf("Erro ao abrir armazenamento: %v", err)
	}

	s := store.New(st, clock.System(), notifier.NewLogNotifier(appLog), appLog)

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("Erro ao criar diretório de saída: %v", err)
	}

	reports := []struct {
		name  string
		write func(f *os.File) error
	}{
		{"vendas.xlsx", func(f *os.File) error {
			return report.WriteSalesReport(f, s.Sales(), s.Customers())
		}},
		{"clientes.xlsx", func(f *os.File) error {
			return report.WriteCustomersReport(f, s.Customers())
		}},
		{"produtos.xlsx", func(f *os.File) error {
			return report.WriteProductsReport(f, s.Products())
		}},
		{"estoque.xlsx", func(f *os.File) error {
			return report.WriteInventoryReport(f, s.Products())
		}},
	}

	for _, r := range reports {
		path := filepath.Join(*outDir, r.name)
		f, err := os.Create(path)
		if err != nil {
			log.Fatalf("Erro ao criar %s: %v", path, err)
		}
		if err := r.write(f); err != nil {
			f.Close()
			log.Fatalf("Erro ao gerar %s: %v", path, err)
		}
		if err := f.Close(); err != nil {
			log.Fatalf("Erro ao gravar %s: %v", path, err)
		}
		appLog.Info("relatório gerado", "arquivo", path)
	}

	backup, err := s.Export()
	if err != nil {
		log.Fatalf("Erro ao exportar backup: %v", err)
	}
	backupPath := filepath.Join(*outDir, "backup.json")
	if err := os.WriteFile(backupPath, backup, 0o644); err != nil {
		log.Fatalf("Erro ao gravar %s: %v", backupPath, err)
	}
	appLog.Info("backup exportado", "arquivo", backupPath)
}

// newStorage abre o mesmo backend de persistência usado pela aplicação
func newStorage(cfg *config.Config) (storage.Storage, error) {
	switch cfg.StorageBackend {
	case config.StoragePostgres:
		db, err := database.NewPostgresDB()
		if err != nil {
			return nil, err
		}
		return storage.NewPostgresStorage(db), nil
	default:
		return storage.NewFileStorage(cfg.DataDir)
	}
}
