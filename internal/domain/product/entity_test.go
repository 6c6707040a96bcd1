package product_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gasgestao/gestao-plus/internal/domain/product"
)

func TestNewProduct(t *testing.T) {
	p, err := product.NewProduct("Botijão P13", "Botijões", decimal.NewFromInt(85), 50, 10, "un")
	require.NoError(t, err)
	assert.Empty(t, p.ID)
	assert.True(t, p.IsActive)
	assert.Equal(t, 50, p.Stock)
}

func TestNewProductValidation(t *testing.T) {
	_, err := product.NewProduct("", "Botijões", decimal.NewFromInt(85), 0, 0, "un")
	assert.ErrorIs(t, err, product.ErrEmptyName)

	_, err = product.NewProduct("Botijão P13", "", decimal.NewFromInt(85), 0, 0, "un")
	assert.ErrorIs(t, err, product.ErrEmptyCategory)

	_, err = product.NewProduct("Botijão P13", "Botijões", decimal.NewFromInt(-1), 0, 0, "un")
	assert.ErrorIs(t, err, product.ErrNegativePrice)
}

func TestLowStock(t *testing.T) {
	cases := []struct {
		name     string
		stock    int
		minStock int
		active   bool
		want     bool
	}{
		{"abaixo do mínimo", 2, 10, true, true},
		{"exatamente no mínimo", 10, 10, true, true},
		{"acima do mínimo", 11, 10, true, false},
		{"inativo nunca conta", 0, 10, false, false},
		{"estoque negativo", -3, 0, true, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := product.Product{Stock: tc.stock, MinStock: tc.minStock, IsActive: tc.active}
			assert.Equal(t, tc.want, p.LowStock())
		})
	}
}
