package sale

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status representa o estado da venda
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

// Formas de pagamento aceitas
const (
	PaymentCash   = "cash"   // Dinheiro
	PaymentCard   = "card"   // Cartão
	PaymentPix    = "pix"    // PIX
	PaymentCredit = "credit" // Crediário
)

// Item representa um item de venda com o preço praticado no momento da venda
type Item struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Total       decimal.Decimal `json:"total"`
}

// Address representa o endereço de entrega informado na venda
type Address struct {
	Street     string `json:"street"`
	Number     string `json:"number"`
	District   string `json:"district"`
	City       string `json:"city"`
	ZipCode    string `json:"zipCode"`
	Complement string `json:"complement,omitempty"`
	Reference  string `json:"reference,omitempty"`
}

// Sale representa uma venda realizada
type Sale struct {
	ID              string          `json:"id"` // Atribuído pelo Store na criação
	CustomerID      string          `json:"customerId"`
	Items           []Item          `json:"items"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	Discount        decimal.Decimal `json:"discount"`
	Total           decimal.Decimal `json:"total"` // subtotal - desconto + taxa de entrega
	Date            time.Time       `json:"date"`
	Status          Status          `json:"status"`
	PaymentMethod   string          `json:"paymentMethod"`
	SellerID        string          `json:"sellerId,omitempty"`
	DeliveryID      string          `json:"deliveryId,omitempty"`
	DeliveryAddress *Address        `json:"deliveryAddress,omitempty"`
	DeliveryFee     decimal.Decimal `json:"deliveryFee"`
	DeliveryDate    *time.Time      `json:"deliveryDate,omitempty"`
	Notes           string          `json:"notes,omitempty"`
}

// ComputeTotal calcula o total da venda a partir das parcelas que o compõem
func (s *Sale) ComputeTotal() decimal.Decimal {
	return s.Subtotal.Sub(s.Discount).Add(s.DeliveryFee)
}

// PaidOnCreation indica se a venda nasce quitada (pagamento em dinheiro)
func (s *Sale) PaidOnCreation() bool {
	return s.PaymentMethod == PaymentCash
}
