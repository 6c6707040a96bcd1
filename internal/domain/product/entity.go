package product

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyName     = errors.New("nome não pode ser vazio")
	ErrEmptyCategory = errors.New("categoria não pode ser vazia")
	ErrNegativePrice = errors.New("preço não pode ser negativo")
)

// Product representa um produto do catálogo (botijões, acessórios, serviços)
type Product struct {
	ID          string          `json:"id"` // Atribuído pelo Store na criação
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	MinStock    int             `json:"minStock"`
	Unit        string          `json:"unit"`
	Description string          `json:"description,omitempty"`
	Supplier    string          `json:"supplier,omitempty"`
	Barcode     string          `json:"barcode,omitempty"`
	Weight      float64         `json:"weight,omitempty"`
	Dimensions  string          `json:"dimensions,omitempty"`
	IsActive    bool            `json:"isActive"`
}

// NewProduct cria um novo produto ativo, ainda sem ID
func NewProduct(name, category string, price decimal.Decimal, stock, minStock int, unit string) (*Product, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if category == "" {
		return nil, ErrEmptyCategory
	}
	if price.IsNegative() {
		return nil, ErrNegativePrice
	}

	return &Product{
		Name:     name,
		Category: category,
		Price:    price,
		Stock:    stock,
		MinStock: minStock,
		Unit:     unit,
		IsActive: true,
	}, nil
}

// LowStock verifica se o produto ativo está no estoque mínimo ou abaixo dele
func (p *Product) LowStock() bool {
	return p.IsActive && p.Stock <= p.MinStock
}
