package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gasgestao/gestao-plus/internal/domain/customer"
)

// CustomerPatch descreve uma atualização parcial de cliente; campos nil são
// preservados
type CustomerPatch struct {
	Name           *string
	Document       *string
	Phone          *string
	Email          *string
	Address        *customer.Address
	TotalPurchases *decimal.Decimal
	LastPurchase   *time.Time
	IsActive       *bool
	CustomerType   *customer.CustomerType
	CreditLimit    *decimal.Decimal
	Notes          *string
}

func (p CustomerPatch) apply(dst *customer.Customer) {
	if p.Name != nil {
		dst.Name = *p.Name
	}
	if p.Document != nil {
		dst.Document = *p.Document
	}
	if p.Phone != nil {
		dst.Phone = *p.Phone
	}
	if p.Email != nil {
		dst.Email = *p.Email
	}
	if p.Address != nil {
		dst.Address = *p.Address
	}
	if p.TotalPurchases != nil {
		dst.TotalPurchases = *p.TotalPurchases
	}
	if p.LastPurchase != nil {
		dst.LastPurchase = p.LastPurchase
	}
	if p.IsActive != nil {
		dst.IsActive = *p.IsActive
	}
	if p.CustomerType != nil {
		dst.CustomerType = *p.CustomerType
	}
	if p.CreditLimit != nil {
		dst.CreditLimit = *p.CreditLimit
	}
	if p.Notes != nil {
		dst.Notes = *p.Notes
	}
}

// AddCustomer atribui um novo ID ao cliente, o adiciona à coleção e persiste
func (s *Store) AddCustomer(c customer.Customer) customer.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()

	c.ID = uuid.New().String()
	s.customers = append(s.customers, c)
	s.persist(keyCustomers, s.customers)
	return c
}

// UpdateCustomer aplica uma atualização parcial ao cliente com o ID informado
func (s *Store) UpdateCustomer(id string, patch CustomerPatch) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.customers {
		if s.customers[i].ID == id {
			patch.apply(&s.customers[i])
			s.persist(keyCustomers, s.customers)
			return ResultApplied
		}
	}
	return ResultNotFound
}

// DeleteCustomer remove o cliente com o ID informado
func (s *Store) DeleteCustomer(id string) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.customers {
		if s.customers[i].ID == id {
			s.customers = append(s.customers[:i], s.customers[i+1:]...)
			s.persist(keyCustomers, s.customers)
			return ResultApplied
		}
	}
	return ResultNotFound
}
