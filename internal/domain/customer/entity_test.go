package customer_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gasgestao/gestao-plus/internal/domain/customer"
)

func TestNewCustomer(t *testing.T) {
	addr := customer.Address{Street: "Rua das Flores", Number: "123", City: "São Paulo"}
	c, err := customer.NewCustomer("Maria Santos", "123.456.789-00", "(11) 99999-1234", customer.TypeResidential, addr)
	require.NoError(t, err)

	assert.True(t, c.IsActive)
	assert.True(t, c.TotalPurchases.IsZero())
	assert.Nil(t, c.LastPurchase)
	assert.Equal(t, customer.TypeResidential, c.CustomerType)
}

func TestRegisterPurchaseAccumulates(t *testing.T) {
	c := customer.Customer{TotalPurchases: decimal.NewFromInt(100)}

	first := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	c.RegisterPurchase(decimal.NewFromInt(70), first)

	assert.True(t, c.TotalPurchases.Equal(decimal.NewFromInt(170)))
	require.NotNil(t, c.LastPurchase)
	assert.True(t, c.LastPurchase.Equal(first))

	// Uma compra posterior avança a última compra
	second := first.AddDate(0, 0, 10)
	c.RegisterPurchase(decimal.NewFromInt(30), second)

	assert.True(t, c.TotalPurchases.Equal(decimal.NewFromInt(200)))
	assert.True(t, c.LastPurchase.Equal(second))
}
