package sale_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/gasgestao/gestao-plus/internal/domain/sale"
)

func TestComputeTotal(t *testing.T) {
	v := sale.Sale{
		Subtotal:    decimal.NewFromInt(170),
		Discount:    decimal.NewFromInt(20),
		DeliveryFee: decimal.NewFromInt(5),
	}
	assert.True(t, v.ComputeTotal().Equal(decimal.NewFromInt(155)))

	// Sem desconto nem taxa o total é o próprio subtotal
	v = sale.Sale{Subtotal: decimal.NewFromInt(85)}
	assert.True(t, v.ComputeTotal().Equal(decimal.NewFromInt(85)))
}

func TestPaidOnCreation(t *testing.T) {
	assert.True(t, (&sale.Sale{PaymentMethod: sale.PaymentCash}).PaidOnCreation())

	for _, method := range []string{sale.PaymentCard, sale.PaymentPix, sale.PaymentCredit, ""} {
		assert.False(t, (&sale.Sale{PaymentMethod: method}).PaidOnCreation(), "method %q", method)
	}
}
