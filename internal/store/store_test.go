package store_test

import (
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gasgestao/gestao-plus/internal/domain/product"
	"github.com/gasgestao/gestao-plus/internal/storage"
	"github.com/gasgestao/gestao-plus/internal/store"
	"github.com/gasgestao/gestao-plus/pkg/clock"
	"github.com/gasgestao/gestao-plus/pkg/logger"
)

// saleEvent registra uma chamada de NotifyNewSale
type saleEvent struct {
	SaleID       string
	CustomerName string
	Total        decimal.Decimal
}

// deliveryEvent registra uma chamada de NotifyDeliveryUpdate
type deliveryEvent struct {
	DeliveryID   string
	Status       string
	CustomerName string
}

// fakeNotifier grava os avisos recebidos para inspeção nos testes
type fakeNotifier struct {
	mu         sync.Mutex
	sales      []saleEvent
	deliveries []deliveryEvent
	lowStock   [][]product.Product
}

func (f *fakeNotifier) NotifyNewSale(saleID, customerName string, total decimal.Decimal) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sales = append(f.sales, saleEvent{saleID, customerName, total})
}

func (f *fakeNotifier) NotifyDeliveryUpdate(deliveryID, status, customerName string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deliveries = append(f.deliveries, deliveryEvent{deliveryID, status, customerName})
}

func (f *fakeNotifier) NotifyLowStock(products []product.Product) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lowStock = append(f.lowStock, products)
}

// emptyStorage cria um armazenamento com todas as coleções vazias, para que
// os testes não dependam dos conjuntos padrão
func emptyStorage(t *testing.T) *storage.MemoryStorage {
	t.Helper()
	st := storage.NewMemoryStorage()
	for _, key := range []string{"products", "customers", "transactions", "sales", "deliveries", "users"} {
		require.NoError(t, st.Save(key, []byte("[]")))
	}
	return st
}

func newTestStore(t *testing.T, st *storage.MemoryStorage, clk clock.Clock) (*store.Store, *fakeNotifier) {
	t.Helper()
	n := &fakeNotifier{}
	return store.New(st, clk, n, logger.NewNopLogger()), n
}

func testClock() clock.Clock {
	return clock.Fixed(time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC))
}

func TestAddProductAssignsUniqueID(t *testing.T) {
	s, _ := newTestStore(t, emptyStorage(t), testClock())

	a := s.AddProduct(product.Product{Name: "Botijão P13", Category: "Botijões", Price: decimal.NewFromInt(85)})
	b := s.AddProduct(product.Product{Name: "Botijão P45", Category: "Botijões", Price: decimal.NewFromInt(320)})

	assert.NotEmpty(t, a.ID)
	assert.NotEmpty(t, b.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Len(t, s.Products(), 2)
}

func TestAddProductIgnoresCallerID(t *testing.T) {
	s, _ := newTestStore(t, emptyStorage(t), testClock())

	created := s.AddProduct(product.Product{ID: "forjado", Name: "Regulador"})
	assert.NotEqual(t, "forjado", created.ID)
}

func TestUpdateProductPartialMerge(t *testing.T) {
	s, _ := newTestStore(t, emptyStorage(t), testClock())

	created := s.AddProduct(product.Product{
		Name:     "Botijão P13",
		Category: "Botijões",
		Price:    decimal.NewFromInt(85),
		Stock:    50,
		MinStock: 10,
		Unit:     "un",
		IsActive: true,
	})

	newPrice := decimal.NewFromInt(90)
	result := s.UpdateProduct(created.ID, store.ProductPatch{Price: &newPrice})
	require.Equal(t, store.ResultApplied, result)

	got := s.Products()[0]
	assert.True(t, got.Price.Equal(newPrice), "price = %s", got.Price)
	assert.Equal(t, "Botijão P13", got.Name)
	assert.Equal(t, "Botijões", got.Category)
	assert.Equal(t, 50, got.Stock)
	assert.Equal(t, 10, got.MinStock)
	assert.True(t, got.IsActive)
}

func TestUpdateProductMissingIDIsNoOp(t *testing.T) {
	s, _ := newTestStore(t, emptyStorage(t), testClock())

	created := s.AddProduct(product.Product{Name: "Mangueira", Stock: 80})
	before := s.Products()

	name := "Outro Nome"
	result := s.UpdateProduct("inexistente", store.ProductPatch{Name: &name})

	assert.Equal(t, store.ResultNotFound, result)
	assert.Equal(t, before, s.Products())
	assert.Equal(t, "Mangueira", s.Products()[0].Name)
	_ = created
}

func TestDeleteProductRemovesExactlyOne(t *testing.T) {
	s, _ := newTestStore(t, emptyStorage(t), testClock())

	a := s.AddProduct(product.Product{Name: "A"})
	s.AddProduct(product.Product{Name: "B"})

	assert.Equal(t, store.ResultApplied, s.DeleteProduct(a.ID))
	assert.Len(t, s.Products(), 1)
	assert.Equal(t, "B", s.Products()[0].Name)

	assert.Equal(t, store.ResultNotFound, s.DeleteProduct(a.ID))
	assert.Len(t, s.Products(), 1)
}

func TestStartupSeedsWhenStorageEmpty(t *testing.T) {
	s, _ := newTestStore(t, storage.NewMemoryStorage(), testClock())

	products := s.Products()
	require.Len(t, products, 4)
	assert.Equal(t, "Botijão P13 - 13kg", products[0].Name)

	customers := s.Customers()
	require.Len(t, customers, 2)
	assert.Equal(t, "Maria Santos", customers[0].Name)

	assert.Empty(t, s.Sales())
	assert.Empty(t, s.Transactions())
	assert.Equal(t, "Distribuidora de Gás São Paulo Ltda", s.Company().Name)
}

func TestStartupFallsBackOnCorruptData(t *testing.T) {
	st := storage.NewMemoryStorage()
	require.NoError(t, st.Save("products", []byte("{isto não é json válido")))
	require.NoError(t, st.Save("company", []byte("[1,2,3]")))

	s, _ := newTestStore(t, st, testClock())

	// Nunca falha na inicialização: coleção corrompida cai para o padrão
	assert.Len(t, s.Products(), 4)
	assert.Equal(t, "Distribuidora de Gás São Paulo Ltda", s.Company().Name)
}

func TestStartupLoadsPersistedSnapshot(t *testing.T) {
	st := emptyStorage(t)
	require.NoError(t, st.Save("products", []byte(`[{"id":"p1","name":"Botijão P45","price":"320","stock":7,"minStock":2,"isActive":true}]`)))

	s, _ := newTestStore(t, st, testClock())

	products := s.Products()
	require.Len(t, products, 1)
	assert.Equal(t, "p1", products[0].ID)
	assert.Equal(t, "Botijão P45", products[0].Name)
	assert.True(t, products[0].Price.Equal(decimal.NewFromInt(320)))
}

func TestMutationsPersistImmediately(t *testing.T) {
	st := emptyStorage(t)
	s, _ := newTestStore(t, st, testClock())

	created := s.AddProduct(product.Product{Name: "Regulador", Stock: 100})

	// Um segundo Store sobre o mesmo armazenamento enxerga a mutação
	s2, _ := newTestStore(t, st, testClock())
	products := s2.Products()
	require.Len(t, products, 1)
	assert.Equal(t, created.ID, products[0].ID)
}
