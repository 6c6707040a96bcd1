package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gasgestao/gestao-plus/internal/domain/finance"
	"github.com/gasgestao/gestao-plus/internal/domain/sale"
)

// SalePatch descreve uma atualização parcial de venda; campos nil são
// preservados
type SalePatch struct {
	CustomerID      *string
	Items           *[]sale.Item
	Subtotal        *decimal.Decimal
	Discount        *decimal.Decimal
	Total           *decimal.Decimal
	Date            *time.Time
	Status          *sale.Status
	PaymentMethod   *string
	SellerID        *string
	DeliveryID      *string
	DeliveryAddress *sale.Address
	DeliveryFee     *decimal.Decimal
	DeliveryDate    *time.Time
	Notes           *string
}

func (p SalePatch) apply(dst *sale.Sale) {
	if p.CustomerID != nil {
		dst.CustomerID = *p.CustomerID
	}
	if p.Items != nil {
		dst.Items = *p.Items
	}
	if p.Subtotal != nil {
		dst.Subtotal = *p.Subtotal
	}
	if p.Discount != nil {
		dst.Discount = *p.Discount
	}
	if p.Total != nil {
		dst.Total = *p.Total
	}
	if p.Date != nil {
		dst.Date = *p.Date
	}
	if p.Status != nil {
		dst.Status = *p.Status
	}
	if p.PaymentMethod != nil {
		dst.PaymentMethod = *p.PaymentMethod
	}
	if p.SellerID != nil {
		dst.SellerID = *p.SellerID
	}
	if p.DeliveryID != nil {
		dst.DeliveryID = *p.DeliveryID
	}
	if p.DeliveryAddress != nil {
		dst.DeliveryAddress = p.DeliveryAddress
	}
	if p.DeliveryFee != nil {
		dst.DeliveryFee = *p.DeliveryFee
	}
	if p.DeliveryDate != nil {
		dst.DeliveryDate = p.DeliveryDate
	}
	if p.Notes != nil {
		dst.Notes = *p.Notes
	}
}

// AddSale registra a venda e executa, nesta ordem e de forma síncrona, os
// efeitos colaterais do fluxo de venda:
//
//  1. persiste a venda;
//  2. decrementa o estoque de cada item vendido (sem piso: o estoque pode
//     ficar negativo);
//  3. cria exatamente um lançamento financeiro de receita, quitado quando o
//     pagamento é em dinheiro e pendente nos demais casos;
//  4. acumula o total nas compras do cliente e atualiza a última compra.
//
// Cada passo regrava e persiste a própria coleção; não há transação cruzando
// coleções. Referências inexistentes (cliente ou produto) não são validadas:
// o efeito correspondente é simplesmente pulado.
func (s *Store) AddSale(v sale.Sale) sale.Sale {
	s.mu.Lock()
	defer s.mu.Unlock()

	v.ID = uuid.New().String()
	s.sales = append(s.sales, v)
	s.persist(keySales, s.sales)

	// Aviso de nova venda, apenas quando o cliente existe
	if s.notifier != nil {
		for i := range s.customers {
			if s.customers[i].ID == v.CustomerID {
				s.notifier.NotifyNewSale(v.ID, s.customers[i].Name, v.Total)
				break
			}
		}
	}

	// Baixa de estoque de todos os itens em uma única passada
	touched := false
	for _, item := range v.Items {
		for i := range s.products {
			if s.products[i].ID == item.ProductID {
				s.products[i].Stock -= item.Quantity
				touched = true
				break
			}
		}
	}
	if touched {
		s.persist(keyProducts, s.products)
	}

	// Lançamento financeiro da venda
	status := finance.StatusPending
	if v.PaidOnCreation() {
		status = finance.StatusPaid
	}
	s.appendTransaction(finance.Transaction{
		Type:          finance.TypeIncome,
		Category:      finance.CategorySale,
		Description:   "Venda #" + v.ID,
		Amount:        v.Total,
		Date:          v.Date,
		Status:        status,
		CustomerID:    v.CustomerID,
		SaleID:        v.ID,
		PaymentMethod: v.PaymentMethod,
	})

	// Histórico de compras do cliente
	for i := range s.customers {
		if s.customers[i].ID == v.CustomerID {
			s.customers[i].RegisterPurchase(v.Total, v.Date)
			s.persist(keyCustomers, s.customers)
			break
		}
	}

	return v
}

// UpdateSale aplica uma atualização parcial à venda com o ID informado.
// Nenhum efeito colateral é reexecutado: estoque, lançamento e histórico do
// cliente só são tocados na criação.
func (s *Store) UpdateSale(id string, patch SalePatch) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.sales {
		if s.sales[i].ID == id {
			patch.apply(&s.sales[i])
			s.persist(keySales, s.sales)
			return ResultApplied
		}
	}
	return ResultNotFound
}

// DeleteSale remove a venda com o ID informado sem desfazer seus efeitos
func (s *Store) DeleteSale(id string) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.sales {
		if s.sales[i].ID == id {
			s.sales = append(s.sales[:i], s.sales[i+1:]...)
			s.persist(keySales, s.sales)
			return ResultApplied
		}
	}
	return ResultNotFound
}
