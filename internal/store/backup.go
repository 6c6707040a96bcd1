package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gasgestao/gestao-plus/internal/domain/company"
	"github.com/gasgestao/gestao-plus/internal/domain/customer"
	"github.com/gasgestao/gestao-plus/internal/domain/delivery"
	"github.com/gasgestao/gestao-plus/internal/domain/finance"
	"github.com/gasgestao/gestao-plus/internal/domain/product"
	"github.com/gasgestao/gestao-plus/internal/domain/sale"
	"github.com/gasgestao/gestao-plus/internal/domain/user"
)

// ErrInvalidBackup é retornado quando o documento importado não tem a
// estrutura esperada
var ErrInvalidBackup = errors.New("estrutura de backup inválida")

// requiredBackupKeys são as coleções que um backup precisa conter como arrays
var requiredBackupKeys = []string{
	keyProducts, keyCustomers, keySales, keyTransactions, keyDeliveries, keyUsers,
}

// Backup é o documento de exportação completa do estado do sistema
type Backup struct {
	Products     []product.Product      `json:"products"`
	Customers    []customer.Customer    `json:"customers"`
	Sales        []sale.Sale            `json:"sales"`
	Transactions []finance.Transaction  `json:"transactions"`
	Deliveries   []delivery.Delivery    `json:"deliveries"`
	Users        []user.User            `json:"users"`
	Company      company.Company        `json:"company"`
	Settings     company.SystemSettings `json:"settings"`
	ExportDate   time.Time              `json:"exportDate"`
}

// Export serializa o estado completo do Store em um documento de backup
func (s *Store) Export() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := Backup{
		Products:     s.products,
		Customers:    s.customers,
		Sales:        s.sales,
		Transactions: s.transactions,
		Deliveries:   s.deliveries,
		Users:        s.users,
		Company:      s.company,
		Settings:     s.settings,
		ExportDate:   s.clk.Now(),
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("erro ao exportar dados: %w", err)
	}
	return data, nil
}

// Import substitui o estado do Store pelo documento de backup e persiste
// todas as coleções. As coleções obrigatórias precisam estar presentes como
// arrays; o restante do documento é aceito como estiver.
func (s *Store) Import(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("erro ao ler backup: %w", err)
	}

	for _, key := range requiredBackupKeys {
		value, ok := raw[key]
		if !ok {
			return fmt.Errorf("%w: %s deve ser um array", ErrInvalidBackup, key)
		}
		var probe []json.RawMessage
		if err := json.Unmarshal(value, &probe); err != nil {
			return fmt.Errorf("%w: %s deve ser um array", ErrInvalidBackup, key)
		}
	}

	var doc Backup
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("erro ao ler backup: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = doc.Products
	s.customers = doc.Customers
	s.sales = doc.Sales
	s.transactions = doc.Transactions
	s.deliveries = doc.Deliveries
	s.users = doc.Users
	if _, ok := raw[keyCompany]; ok {
		s.company = doc.Company
	}
	if _, ok := raw[keySettings]; ok {
		s.settings = doc.Settings
	}

	s.persist(keyProducts, s.products)
	s.persist(keyCustomers, s.customers)
	s.persist(keySales, s.sales)
	s.persist(keyTransactions, s.transactions)
	s.persist(keyDeliveries, s.deliveries)
	s.persist(keyUsers, s.users)
	s.persist(keyCompany, s.company)
	s.persist(keySettings, s.settings)

	return nil
}

// Reset descarta todo o estado, remove as chaves persistidas e volta aos
// conjuntos padrão
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys := []string{
		keyProducts, keyCustomers, keySales, keyTransactions,
		keyDeliveries, keyUsers, keyCompany, keySettings,
	}
	for _, key := range keys {
		if err := s.storage.Delete(key); err != nil {
			s.log.Error("erro ao limpar chave", "key", key, "error", err)
		}
	}

	s.products = SeedProducts()
	s.customers = SeedCustomers()
	s.sales = nil
	s.transactions = nil
	s.deliveries = nil
	s.users = nil
	s.company = DefaultCompany()
	s.settings = DefaultSettings()
}
