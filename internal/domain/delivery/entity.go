package delivery

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status representa o estado da entrega
type Status string

const (
	StatusPending   Status = "pending"
	StatusInTransit Status = "in_transit"
	StatusDelivered Status = "delivered"
	StatusFailed    Status = "failed"
)

// Item representa um item a ser entregue
type Item struct {
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
}

// Address representa o endereço de destino da entrega
type Address struct {
	Street     string `json:"street"`
	Number     string `json:"number"`
	District   string `json:"district"`
	City       string `json:"city"`
	ZipCode    string `json:"zipCode"`
	Complement string `json:"complement,omitempty"`
	Reference  string `json:"reference,omitempty"`
}

// Delivery representa uma entrega vinculada a uma venda
type Delivery struct {
	ID               string          `json:"id"` // Atribuído pelo Store na criação
	SaleID           string          `json:"saleId"`
	CustomerID       string          `json:"customerId"`
	DeliveryPersonID string          `json:"deliveryPersonId"`
	Status           Status          `json:"status"`
	ScheduledDate    time.Time       `json:"scheduledDate"`
	DeliveredDate    *time.Time      `json:"deliveredDate,omitempty"` // Carimbada pelo Store ao concluir
	Address          Address         `json:"address"`
	Items            []Item          `json:"items"`
	DeliveryFee      decimal.Decimal `json:"deliveryFee"`
	Notes            string          `json:"notes,omitempty"`
	Route            string          `json:"route,omitempty"`
}

// InProgress verifica se a entrega ainda está em andamento
func (d *Delivery) InProgress() bool {
	return d.Status == StatusPending || d.Status == StatusInTransit
}
