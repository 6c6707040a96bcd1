package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gasgestao/gestao-plus/internal/domain/delivery"
)

// DeliveryPatch descreve uma atualização parcial de entrega; campos nil são
// preservados
type DeliveryPatch struct {
	SaleID           *string
	CustomerID       *string
	DeliveryPersonID *string
	Status           *delivery.Status
	ScheduledDate    *time.Time
	DeliveredDate    *time.Time
	Address          *delivery.Address
	Items            *[]delivery.Item
	DeliveryFee      *decimal.Decimal
	Notes            *string
	Route            *string
}

func (p DeliveryPatch) apply(dst *delivery.Delivery) {
	if p.SaleID != nil {
		dst.SaleID = *p.SaleID
	}
	if p.CustomerID != nil {
		dst.CustomerID = *p.CustomerID
	}
	if p.DeliveryPersonID != nil {
		dst.DeliveryPersonID = *p.DeliveryPersonID
	}
	if p.Status != nil {
		dst.Status = *p.Status
	}
	if p.ScheduledDate != nil {
		dst.ScheduledDate = *p.ScheduledDate
	}
	if p.DeliveredDate != nil {
		dst.DeliveredDate = p.DeliveredDate
	}
	if p.Address != nil {
		dst.Address = *p.Address
	}
	if p.Items != nil {
		dst.Items = *p.Items
	}
	if p.DeliveryFee != nil {
		dst.DeliveryFee = *p.DeliveryFee
	}
	if p.Notes != nil {
		dst.Notes = *p.Notes
	}
	if p.Route != nil {
		dst.Route = *p.Route
	}
}

// AddDelivery atribui um novo ID à entrega, a adiciona à coleção e persiste.
// O vínculo de no máximo uma entrega por venda não é imposto aqui.
func (s *Store) AddDelivery(d delivery.Delivery) delivery.Delivery {
	s.mu.Lock()
	defer s.mu.Unlock()

	d.ID = uuid.New().String()
	s.deliveries = append(s.deliveries, d)
	s.persist(keyDeliveries, s.deliveries)
	return d
}

// UpdateDelivery aplica uma atualização parcial à entrega com o ID informado.
// Quando o status passa a "delivered", a data de entrega é carimbada com o
// horário corrente na mesma chamada; qualquer mudança de status dispara o
// aviso de entrega quando o cliente é localizado.
func (s *Store) UpdateDelivery(id string, patch DeliveryPatch) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.deliveries {
		if s.deliveries[i].ID != id {
			continue
		}

		patch.apply(&s.deliveries[i])
		if patch.Status != nil && *patch.Status == delivery.StatusDelivered {
			now := s.clk.Now()
			s.deliveries[i].DeliveredDate = &now
		}
		s.persist(keyDeliveries, s.deliveries)

		if patch.Status != nil && s.notifier != nil {
			for j := range s.customers {
				if s.customers[j].ID == s.deliveries[i].CustomerID {
					s.notifier.NotifyDeliveryUpdate(id, string(*patch.Status), s.customers[j].Name)
					break
				}
			}
		}
		return ResultApplied
	}
	return ResultNotFound
}

// DeleteDelivery remove a entrega com o ID informado
func (s *Store) DeleteDelivery(id string) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.deliveries {
		if s.deliveries[i].ID == id {
			s.deliveries = append(s.deliveries[:i], s.deliveries[i+1:]...)
			s.persist(keyDeliveries, s.deliveries)
			return ResultApplied
		}
	}
	return ResultNotFound
}
