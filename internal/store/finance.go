package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gasgestao/gestao-plus/internal/domain/finance"
)

// TransactionPatch descreve uma atualização parcial de lançamento; campos nil
// são preservados
type TransactionPatch struct {
	Type               *finance.Type
	Category           *string
	Description        *string
	Amount             *decimal.Decimal
	Date               *time.Time
	Status             *finance.Status
	CustomerID         *string
	SaleID             *string
	DueDate            *time.Time
	PaymentMethod      *string
	Installments       *int
	CurrentInstallment *int
}

func (p TransactionPatch) apply(dst *finance.Transaction) {
	if p.Type != nil {
		dst.Type = *p.Type
	}
	if p.Category != nil {
		dst.Category = *p.Category
	}
	if p.Description != nil {
		dst.Description = *p.Description
	}
	if p.Amount != nil {
		dst.Amount = *p.Amount
	}
	if p.Date != nil {
		dst.Date = *p.Date
	}
	if p.Status != nil {
		dst.Status = *p.Status
	}
	if p.CustomerID != nil {
		dst.CustomerID = *p.CustomerID
	}
	if p.SaleID != nil {
		dst.SaleID = *p.SaleID
	}
	if p.DueDate != nil {
		dst.DueDate = p.DueDate
	}
	if p.PaymentMethod != nil {
		dst.PaymentMethod = *p.PaymentMethod
	}
	if p.Installments != nil {
		dst.Installments = *p.Installments
	}
	if p.CurrentInstallment != nil {
		dst.CurrentInstallment = *p.CurrentInstallment
	}
}

// appendTransaction adiciona um lançamento já com o mutex tomado. Usado tanto
// pela criação manual quanto pelo efeito automático da venda.
func (s *Store) appendTransaction(t finance.Transaction) finance.Transaction {
	t.ID = uuid.New().String()
	s.transactions = append(s.transactions, t)
	s.persist(keyTransactions, s.transactions)
	return t
}

// AddTransaction atribui um novo ID ao lançamento, o adiciona à coleção e
// persiste
func (s *Store) AddTransaction(t finance.Transaction) finance.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.appendTransaction(t)
}

// UpdateTransaction aplica uma atualização parcial ao lançamento com o ID
// informado
func (s *Store) UpdateTransaction(id string, patch TransactionPatch) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.transactions {
		if s.transactions[i].ID == id {
			patch.apply(&s.transactions[i])
			s.persist(keyTransactions, s.transactions)
			return ResultApplied
		}
	}
	return ResultNotFound
}

// DeleteTransaction remove o lançamento com o ID informado
func (s *Store) DeleteTransaction(id string) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.transactions {
		if s.transactions[i].ID == id {
			s.transactions = append(s.transactions[:i], s.transactions[i+1:]...)
			s.persist(keyTransactions, s.transactions)
			return ResultApplied
		}
	}
	return ResultNotFound
}
