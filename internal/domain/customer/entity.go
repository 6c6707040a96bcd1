package customer

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyName     = errors.New("nome não pode ser vazio")
	ErrEmptyDocument = errors.New("documento não pode ser vazio")
)

// CustomerType define o tipo de cliente
type CustomerType string

const (
	TypeResidential CustomerType = "residential" // Consumidor residencial
	TypeCommercial  CustomerType = "commercial"  // Comércio (padarias, restaurantes etc.)
)

// Address representa o endereço de entrega do cliente
type Address struct {
	Street     string `json:"street"`
	Number     string `json:"number"`
	District   string `json:"district"`
	City       string `json:"city"`
	ZipCode    string `json:"zipCode"`
	Complement string `json:"complement,omitempty"`
	Reference  string `json:"reference,omitempty"`
}

// Customer representa um cliente da distribuidora
type Customer struct {
	ID             string          `json:"id"` // Atribuído pelo Store na criação
	Name           string          `json:"name"`
	Document       string          `json:"document"` // CPF/CNPJ
	Phone          string          `json:"phone"`
	Email          string          `json:"email,omitempty"`
	Address        Address         `json:"address"`
	TotalPurchases decimal.Decimal `json:"totalPurchases"` // Mutado apenas pela criação de vendas
	LastPurchase   *time.Time      `json:"lastPurchase,omitempty"`
	IsActive       bool            `json:"isActive"`
	CustomerType   CustomerType    `json:"customerType"`
	CreditLimit    decimal.Decimal `json:"creditLimit"`
	Notes          string          `json:"notes,omitempty"`
}

// NewCustomer cria um novo cliente ativo, ainda sem ID
func NewCustomer(name, document, phone string, customerType CustomerType, addr Address) (*Customer, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if document == "" {
		return nil, ErrEmptyDocument
	}

	return &Customer{
		Name:           name,
		Document:       document,
		Phone:          phone,
		Address:        addr,
		TotalPurchases: decimal.Zero,
		IsActive:       true,
		CustomerType:   customerType,
	}, nil
}

// RegisterPurchase acumula o valor de uma venda no histórico do cliente
func (c *Customer) RegisterPurchase(total decimal.Decimal, date time.Time) {
	c.TotalPurchases = c.TotalPurchases.Add(total)
	c.LastPurchase = &date
}
