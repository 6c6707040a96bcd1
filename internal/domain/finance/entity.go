package finance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Type define o tipo de lançamento financeiro
type Type string

const (
	TypeIncome  Type = "income"  // Receita
	TypeExpense Type = "expense" // Despesa
)

// Status representa o estado do lançamento
type Status string

const (
	StatusPending   Status = "pending"
	StatusPaid      Status = "paid"
	StatusOverdue   Status = "overdue"
	StatusCancelled Status = "cancelled"
)

// CategorySale é a categoria dos lançamentos gerados automaticamente por vendas
const CategorySale = "Venda"

// Transaction representa um lançamento financeiro, manual ou gerado por uma venda
type Transaction struct {
	ID                 string          `json:"id"` // Atribuído pelo Store na criação
	Type               Type            `json:"type"`
	Category           string          `json:"category"`
	Description        string          `json:"description"`
	Amount             decimal.Decimal `json:"amount"`
	Date               time.Time       `json:"date"`
	Status             Status          `json:"status"`
	CustomerID         string          `json:"customerId,omitempty"`
	SaleID             string          `json:"saleId,omitempty"`
	DueDate            *time.Time      `json:"dueDate,omitempty"`
	PaymentMethod      string          `json:"paymentMethod,omitempty"`
	Installments       int             `json:"installments,omitempty"`
	CurrentInstallment int             `json:"currentInstallment,omitempty"`
}

// IsOpen verifica se o lançamento ainda aguarda pagamento
func (t *Transaction) IsOpen() bool {
	return t.Status == StatusPending || t.Status == StatusOverdue
}
