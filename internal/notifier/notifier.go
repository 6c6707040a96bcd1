package notifier

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/gasgestao/gestao-plus/internal/domain/product"
	"github.com/gasgestao/gestao-plus/pkg/logger"
)

// Notifier recebe avisos dos eventos produzidos pelo Store. As chamadas são
// best-effort: o Store não depende do resultado e nenhum erro é propagado.
type Notifier interface {
	// NotifyNewSale avisa que uma nova venda foi registrada
	NotifyNewSale(saleID, customerName string, total decimal.Decimal)

	// NotifyDeliveryUpdate avisa que uma entrega mudou de status
	NotifyDeliveryUpdate(deliveryID, status, customerName string)

	// NotifyLowStock avisa sobre produtos ativos no estoque mínimo ou abaixo
	NotifyLowStock(products []product.Product)
}

// statusText traduz o status da entrega para exibição
var statusText = map[string]string{
	"pending":    "Pendente",
	"in_transit": "Em Trânsito",
	"delivered":  "Entregue",
	"failed":     "Falhou",
}

// LogNotifier publica os avisos no log da aplicação
type LogNotifier struct {
	log logger.Logger
}

// NewLogNotifier cria uma nova instância de LogNotifier
func NewLogNotifier(log logger.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

// NotifyNewSale implementa Notifier.NotifyNewSale
func (n *LogNotifier) NotifyNewSale(saleID, customerName string, total decimal.Decimal) {
	n.log.Info("Nova Venda Realizada",
		"sale_id", saleID,
		"cliente", customerName,
		"total", "R$ "+total.StringFixed(2),
	)
}

// NotifyDeliveryUpdate implementa Notifier.NotifyDeliveryUpdate
func (n *LogNotifier) NotifyDeliveryUpdate(deliveryID, status, customerName string) {
	text, ok := statusText[status]
	if !ok {
		text = status
	}

	// O identificador curto segue o formato exibido na interface
	short := deliveryID
	if len(short) > 6 {
		short = short[len(short)-6:]
	}

	n.log.Info("Entrega "+text,
		"delivery_id", short,
		"cliente", customerName,
	)
}

// NotifyLowStock implementa Notifier.NotifyLowStock
func (n *LogNotifier) NotifyLowStock(products []product.Product) {
	var names []string
	for _, p := range products {
		if p.LowStock() {
			names = append(names, p.Name)
		}
	}
	if len(names) == 0 {
		return
	}

	n.log.Warn("Estoque Baixo",
		"produtos", len(names),
		"reposicao", strings.Join(names, ", "),
	)
}
