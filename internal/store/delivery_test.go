package store_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gasgestao/gestao-plus/internal/domain/customer"
	"github.com/gasgestao/gestao-plus/internal/domain/delivery"
	"github.com/gasgestao/gestao-plus/internal/store"
	"github.com/gasgestao/gestao-plus/pkg/clock"
)

func TestUpdateDeliveryDeliveredStampsDate(t *testing.T) {
	now := time.Date(2025, time.June, 15, 16, 45, 0, 0, time.UTC)
	s, _ := newTestStore(t, emptyStorage(t), clock.Fixed(now))

	created := s.AddDelivery(delivery.Delivery{Status: delivery.StatusInTransit})

	status := delivery.StatusDelivered
	require.Equal(t, store.ResultApplied, s.UpdateDelivery(created.ID, store.DeliveryPatch{Status: &status}))

	got := s.Deliveries()[0]
	assert.Equal(t, delivery.StatusDelivered, got.Status)
	require.NotNil(t, got.DeliveredDate)
	assert.True(t, got.DeliveredDate.Equal(now))
}

func TestUpdateDeliveryOtherStatusDoesNotStamp(t *testing.T) {
	s, _ := newTestStore(t, emptyStorage(t), testClock())

	created := s.AddDelivery(delivery.Delivery{Status: delivery.StatusPending})

	status := delivery.StatusInTransit
	s.UpdateDelivery(created.ID, store.DeliveryPatch{Status: &status})

	assert.Nil(t, s.Deliveries()[0].DeliveredDate)
}

func TestUpdateDeliveryStatusChangeNotifies(t *testing.T) {
	s, n := newTestStore(t, emptyStorage(t), testClock())

	c := s.AddCustomer(customer.Customer{Name: "Padaria Central"})
	created := s.AddDelivery(delivery.Delivery{Status: delivery.StatusPending, CustomerID: c.ID})

	status := delivery.StatusInTransit
	s.UpdateDelivery(created.ID, store.DeliveryPatch{Status: &status})

	require.Len(t, n.deliveries, 1)
	assert.Equal(t, created.ID, n.deliveries[0].DeliveryID)
	assert.Equal(t, "in_transit", n.deliveries[0].Status)
	assert.Equal(t, "Padaria Central", n.deliveries[0].CustomerName)

	// Atualização sem mudança de status não avisa
	route := "Rota Norte"
	s.UpdateDelivery(created.ID, store.DeliveryPatch{Route: &route})
	assert.Len(t, n.deliveries, 1)
}

func TestUpdateDeliveryMissingIDIsNoOp(t *testing.T) {
	s, n := newTestStore(t, emptyStorage(t), testClock())

	status := delivery.StatusDelivered
	assert.Equal(t, store.ResultNotFound, s.UpdateDelivery("inexistente", store.DeliveryPatch{Status: &status}))
	assert.Empty(t, n.deliveries)
}
