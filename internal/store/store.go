package store

import (
	"encoding/json"
	"errors"
	"sync"

	"github.com/gasgestao/gestao-plus/internal/domain/company"
	"github.com/gasgestao/gestao-plus/internal/domain/customer"
	"github.com/gasgestao/gestao-plus/internal/domain/delivery"
	"github.com/gasgestao/gestao-plus/internal/domain/finance"
	"github.com/gasgestao/gestao-plus/internal/domain/product"
	"github.com/gasgestao/gestao-plus/internal/domain/sale"
	"github.com/gasgestao/gestao-plus/internal/domain/user"
	"github.com/gasgestao/gestao-plus/internal/notifier"
	"github.com/gasgestao/gestao-plus/internal/storage"
	"github.com/gasgestao/gestao-plus/pkg/clock"
	"github.com/gasgestao/gestao-plus/pkg/logger"
)

// Chaves fixas sob as quais cada coleção é persistida
const (
	keyProducts     = "products"
	keyCustomers    = "customers"
	keyTransactions = "transactions"
	keySales        = "sales"
	keyDeliveries   = "deliveries"
	keyUsers        = "users"
	keyCompany      = "company"
	keySettings     = "settings"
)

// Result indica o desfecho de uma atualização ou remoção por ID. Um ID
// ausente é um no-op documentado, não um erro: o chamador decide se ignora
// ou reporta.
type Result int

const (
	// ResultNotFound indica que nenhum registro tinha o ID informado
	ResultNotFound Result = iota
	// ResultApplied indica que a mutação foi aplicada e persistida
	ResultApplied
)

// Store é a fonte única de verdade das coleções de domínio. Toda leitura e
// escrita passa por ele; cada mutação persiste a coleção inteira e as
// estatísticas derivadas são recalculadas a partir do estado corrente.
//
// Um mutex único garante que duas mutações nunca se entrelacem, inclusive a
// sequência de efeitos da criação de venda, que é atômica do ponto de vista
// do chamador.
type Store struct {
	mu       sync.Mutex
	storage  storage.Storage
	clk      clock.Clock
	notifier notifier.Notifier
	log      logger.Logger

	products     []product.Product
	customers    []customer.Customer
	transactions []finance.Transaction
	sales        []sale.Sale
	deliveries   []delivery.Delivery
	users        []user.User
	company      company.Company
	settings     company.SystemSettings
}

// New cria o Store carregando cada coleção do armazenamento. Na ausência de
// snapshot (ou quando o conteúdo persistido não é um JSON válido) a coleção
// cai para o conjunto padrão; a inicialização nunca falha por dados ruins.
func New(st storage.Storage, clk clock.Clock, n notifier.Notifier, log logger.Logger) *Store {
	s := &Store{
		storage:  st,
		clk:      clk,
		notifier: n,
		log:      log,
	}

	s.products = loadCollection(st, log, keyProducts, SeedProducts())
	s.customers = loadCollection(st, log, keyCustomers, SeedCustomers())
	s.transactions = loadCollection(st, log, keyTransactions, []finance.Transaction{})
	s.sales = loadCollection(st, log, keySales, []sale.Sale{})
	s.deliveries = loadCollection(st, log, keyDeliveries, []delivery.Delivery{})
	s.users = loadCollection(st, log, keyUsers, []user.User{})
	s.company = loadRecord(st, log, keyCompany, DefaultCompany())
	s.settings = loadRecord(st, log, keySettings, DefaultSettings())

	return s
}

// loadCollection carrega uma coleção persistida ou devolve o padrão
func loadCollection[T any](st storage.Storage, log logger.Logger, key string, def []T) []T {
	data, err := st.Load(key)
	if err != nil {
		if !errors.Is(err, storage.ErrKeyNotFound) {
			log.Warn("falha ao carregar coleção, usando padrão", "key", key, "error", err)
		}
		return def
	}

	var out []T
	if err := json.Unmarshal(data, &out); err != nil {
		log.Warn("dados persistidos inválidos, usando padrão", "key", key, "error", err)
		return def
	}
	return out
}

// loadRecord carrega um registro único persistido ou devolve o padrão
func loadRecord[T any](st storage.Storage, log logger.Logger, key string, def T) T {
	data, err := st.Load(key)
	if err != nil {
		if !errors.Is(err, storage.ErrKeyNotFound) {
			log.Warn("falha ao carregar registro, usando padrão", "key", key, "error", err)
		}
		return def
	}

	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		log.Warn("dados persistidos inválidos, usando padrão", "key", key, "error", err)
		return def
	}
	return out
}

// persist grava a coleção sob a chave. O Store não tem canal de erro: uma
// falha de escrita é registrada e a execução continua com o estado em
// memória.
func (s *Store) persist(key string, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		s.log.Error("erro ao serializar coleção", "key", key, "error", err)
		return
	}
	if err := s.storage.Save(key, data); err != nil {
		s.log.Error("erro ao persistir coleção", "key", key, "error", err)
	}
}

// Products retorna uma cópia da coleção de produtos
func (s *Store) Products() []product.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]product.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Customers retorna uma cópia da coleção de clientes
func (s *Store) Customers() []customer.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]customer.Customer, len(s.customers))
	copy(out, s.customers)
	return out
}

// Transactions retorna uma cópia da coleção de lançamentos financeiros
func (s *Store) Transactions() []finance.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]finance.Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}

// Sales retorna uma cópia da coleção de vendas
func (s *Store) Sales() []sale.Sale {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]sale.Sale, len(s.sales))
	copy(out, s.sales)
	return out
}

// Deliveries retorna uma cópia da coleção de entregas
func (s *Store) Deliveries() []delivery.Delivery {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]delivery.Delivery, len(s.deliveries))
	copy(out, s.deliveries)
	return out
}

// Users retorna uma cópia da coleção de usuários
func (s *Store) Users() []user.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]user.User, len(s.users))
	copy(out, s.users)
	return out
}

// Company retorna o cadastro corrente da empresa
func (s *Store) Company() company.Company {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.company
}

// Settings retorna as configurações correntes do sistema
func (s *Store) Settings() company.SystemSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}
