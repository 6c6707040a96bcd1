package store

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gasgestao/gestao-plus/internal/domain/delivery"
	"github.com/gasgestao/gestao-plus/internal/domain/finance"
)

// TopProduct agrega quantidade e receita de um produto em todas as vendas
type TopProduct struct {
	ProductID string          `json:"id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Revenue   decimal.Decimal `json:"revenue"`
}

// DashboardStats reúne as estatísticas derivadas exibidas no painel. É uma
// função pura do estado corrente das coleções, nunca um estado próprio.
type DashboardStats struct {
	TotalSales          int             `json:"totalSales"`
	TotalCustomers      int             `json:"totalCustomers"`
	LowStockItems       int             `json:"lowStockItems"`
	PendingPayments     int             `json:"pendingPayments"`
	MonthlyRevenue      decimal.Decimal `json:"monthlyRevenue"`
	MonthlyExpenses     decimal.Decimal `json:"monthlyExpenses"`
	PendingDeliveries   int             `json:"pendingDeliveries"`
	CompletedDeliveries int             `json:"completedDeliveries"`
	AverageTicket       decimal.Decimal `json:"averageTicket"`
	TopProducts         []TopProduct    `json:"topProducts"`
}

// Stats recalcula as estatísticas do painel a partir do estado corrente. O
// recorte mensal começa no primeiro instante do mês corrente, inclusive, sem
// limite superior além do agora.
func (s *Store) Stats() DashboardStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := DashboardStats{
		TotalSales:      len(s.sales),
		TotalCustomers:  len(s.customers),
		MonthlyRevenue:  decimal.Zero,
		MonthlyExpenses: decimal.Zero,
		AverageTicket:   decimal.Zero,
	}

	for i := range s.products {
		if s.products[i].LowStock() {
			stats.LowStockItems++
		}
	}

	now := s.clk.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	for i := range s.transactions {
		t := &s.transactions[i]
		if t.Status == finance.StatusPending {
			stats.PendingPayments++
		}
		if t.Date.Before(monthStart) {
			continue
		}
		switch t.Type {
		case finance.TypeIncome:
			stats.MonthlyRevenue = stats.MonthlyRevenue.Add(t.Amount)
		case finance.TypeExpense:
			stats.MonthlyExpenses = stats.MonthlyExpenses.Add(t.Amount)
		}
	}

	for i := range s.deliveries {
		switch {
		case s.deliveries[i].InProgress():
			stats.PendingDeliveries++
		case s.deliveries[i].Status == delivery.StatusDelivered:
			stats.CompletedDeliveries++
		}
	}

	monthlyTotal := decimal.Zero
	monthlyCount := 0
	for i := range s.sales {
		if !s.sales[i].Date.Before(monthStart) {
			monthlyTotal = monthlyTotal.Add(s.sales[i].Total)
			monthlyCount++
		}
	}
	if monthlyCount > 0 {
		stats.AverageTicket = monthlyTotal.Div(decimal.NewFromInt(int64(monthlyCount)))
	}

	stats.TopProducts = s.topProducts(5)

	return stats
}

// topProducts agrega o desempenho por produto em todas as vendas (não apenas
// no mês corrente), ordenado por receita decrescente
func (s *Store) topProducts(limit int) []TopProduct {
	byProduct := make(map[string]*TopProduct)
	var order []string

	for i := range s.sales {
		for _, item := range s.sales[i].Items {
			agg, ok := byProduct[item.ProductID]
			if !ok {
				agg = &TopProduct{
					ProductID: item.ProductID,
					Name:      item.ProductName,
					Revenue:   decimal.Zero,
				}
				byProduct[item.ProductID] = agg
				order = append(order, item.ProductID)
			}
			agg.Quantity += item.Quantity
			agg.Revenue = agg.Revenue.Add(item.Total)
		}
	}

	top := make([]TopProduct, 0, len(order))
	for _, id := range order {
		top = append(top, *byProduct[id])
	}
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Revenue.GreaterThan(top[j].Revenue)
	})

	if len(top) > limit {
		top = top[:limit]
	}
	return top
}
