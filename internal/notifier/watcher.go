package notifier

import (
	"time"

	"github.com/gasgestao/gestao-plus/internal/domain/product"
)

// DefaultLowStockInterval é o intervalo padrão entre verificações de estoque
const DefaultLowStockInterval = 5 * time.Minute

// LowStockWatcher verifica periodicamente o estoque e dispara o aviso de
// reposição. O timer vive fora do Store: o watcher apenas lê o estado atual.
type LowStockWatcher struct {
	interval time.Duration
	products func() []product.Product
	notifier Notifier
	done     chan struct{}
}

// NewLowStockWatcher cria um watcher sobre a origem de produtos informada
func NewLowStockWatcher(interval time.Duration, products func() []product.Product, n Notifier) *LowStockWatcher {
	if interval <= 0 {
		interval = DefaultLowStockInterval
	}
	return &LowStockWatcher{
		interval: interval,
		products: products,
		notifier: n,
		done:     make(chan struct{}),
	}
}

// Start inicia a verificação periódica em segundo plano
func (w *LowStockWatcher) Start() {
	go func() {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				w.notifier.NotifyLowStock(w.products())
			case <-w.done:
				return
			}
		}
	}()
}

// Stop encerra a verificação periódica
func (w *LowStockWatcher) Stop() {
	close(w.done)
}
