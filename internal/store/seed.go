package store

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/gasgestao/gestao-plus/internal/domain/company"
	"github.com/gasgestao/gestao-plus/internal/domain/customer"
	"github.com/gasgestao/gestao-plus/internal/domain/product"
)

// Conjuntos padrão usados no primeiro uso e como fallback quando o snapshot
// persistido não pode ser lido.

// SeedProducts retorna o catálogo inicial de produtos
func SeedProducts() []product.Product {
	return []product.Product{
		{
			ID:          "1",
			Name:        "Botijão P13 - 13kg",
			Category:    "Botijões",
			Price:       decimal.NewFromFloat(85.00),
			Stock:       50,
			MinStock:    10,
			Unit:        "un",
			Description: "Botijão de gás P13 para uso residencial",
			Supplier:    "Ultragaz",
			Barcode:     "7891234567890",
			Weight:      13,
			IsActive:    true,
		},
		{
			ID:          "2",
			Name:        "Botijão P20 - 20kg",
			Category:    "Botijões",
			Price:       decimal.NewFromFloat(120.00),
			Stock:       30,
			MinStock:    8,
			Unit:        "un",
			Description: "Botijão de gás P20 para uso comercial",
			Supplier:    "Ultragaz",
			Barcode:     "7891234567891",
			Weight:      20,
			IsActive:    true,
		},
		{
			ID:          "3",
			Name:        "Regulador de Pressão",
			Category:    "Acessórios",
			Price:       decimal.NewFromFloat(25.00),
			Stock:       100,
			MinStock:    20,
			Unit:        "un",
			Description: "Regulador de pressão para botijões",
			Supplier:    "Aliança",
			Barcode:     "7891234567892",
			IsActive:    true,
		},
		{
			ID:          "4",
			Name:        "Mangueira 1,5m",
			Category:    "Acessórios",
			Price:       decimal.NewFromFloat(15.00),
			Stock:       80,
			MinStock:    15,
			Unit:        "un",
			Description: "Mangueira de gás 1,5 metros",
			Supplier:    "Aliança",
			Barcode:     "7891234567893",
			IsActive:    true,
		},
	}
}

// SeedCustomers retorna a carteira inicial de clientes
func SeedCustomers() []customer.Customer {
	maria := time.Date(2024, time.December, 15, 0, 0, 0, 0, time.UTC)
	padaria := time.Date(2024, time.December, 20, 0, 0, 0, 0, time.UTC)

	return []customer.Customer{
		{
			ID:       "1",
			Name:     "Maria Santos",
			Document: "123.456.789-00",
			Phone:    "(11) 98765-4321",
			Email:    "maria@email.com",
			Address: customer.Address{
				Street:    "Rua das Palmeiras",
				Number:    "123",
				District:  "Vila Nova",
				City:      "São Paulo",
				ZipCode:   "01234-567",
				Reference: "Próximo à padaria",
			},
			TotalPurchases: decimal.NewFromFloat(1250.00),
			LastPurchase:   &maria,
			IsActive:       true,
			CustomerType:   customer.TypeResidential,
			CreditLimit:    decimal.NewFromInt(500),
		},
		{
			ID:       "2",
			Name:     "Padaria Central",
			Document: "12.345.678/0001-90",
			Phone:    "(11) 91234-5678",
			Email:    "contato@padariacentral.com",
			Address: customer.Address{
				Street:   "Rua do Comércio",
				Number:   "456",
				District: "Centro",
				City:     "São Paulo",
				ZipCode:  "01234-568",
			},
			TotalPurchases: decimal.NewFromFloat(3200.00),
			LastPurchase:   &padaria,
			IsActive:       true,
			CustomerType:   customer.TypeCommercial,
			CreditLimit:    decimal.NewFromInt(1000),
		},
	}
}

// DefaultCompany retorna o cadastro padrão da empresa
func DefaultCompany() company.Company {
	return company.Company{
		Name:     "Distribuidora de Gás São Paulo Ltda",
		Document: "98.765.432/0001-10",
		Phone:    "(11) 99999-9999",
		Email:    "contato@distribuidorasp.com.br",
		Address: company.Address{
			Street:   "Av. Industrial",
			Number:   "1500",
			District: "Distrito Industrial",
			City:     "São Paulo",
			ZipCode:  "08500-000",
		},
		SocialMedia: company.SocialMedia{
			WhatsApp:  "(11) 99999-9999",
			Instagram: "@distribuidorasp",
			Facebook:  "distribuidoraspoficial",
		},
		DeliveryRadius:       15,
		MinimumDeliveryValue: decimal.NewFromInt(80),
	}
}

// DefaultSettings retorna as configurações padrão do sistema
func DefaultSettings() company.SystemSettings {
	return company.SystemSettings{
		Company: DefaultCompany(),
		Notifications: company.NotificationSettings{
			Email:    true,
			SMS:      false,
			WhatsApp: true,
		},
		Integrations: company.IntegrationSettings{
			WhatsAppAPI:    company.WhatsAppAPISettings{Enabled: false},
			PaymentGateway: company.PaymentGatewaySettings{Enabled: false},
		},
		Features: company.FeatureSettings{
			DeliveryModule:         true,
			InvoiceGeneration:      true,
			MultiplePaymentMethods: true,
			CustomerPortal:         false,
		},
	}
}
