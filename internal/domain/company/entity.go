package company

import "github.com/shopspring/decimal"

// Address representa o endereço da empresa
type Address struct {
	Street   string `json:"street"`
	Number   string `json:"number"`
	District string `json:"district"`
	City     string `json:"city"`
	ZipCode  string `json:"zipCode"`
}

// SocialMedia agrupa os canais de contato da empresa
type SocialMedia struct {
	WhatsApp  string `json:"whatsapp,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
}

// Company representa o cadastro da empresa (registro único, não transacional)
type Company struct {
	Name                 string          `json:"name"`
	Document             string          `json:"document"` // CNPJ
	Phone                string          `json:"phone"`
	Email                string          `json:"email"`
	Address              Address         `json:"address"`
	Logo                 string          `json:"logo,omitempty"`
	Website              string          `json:"website,omitempty"`
	SocialMedia          SocialMedia     `json:"socialMedia"`
	DeliveryRadius       int             `json:"deliveryRadius"` // Em km
	MinimumDeliveryValue decimal.Decimal `json:"minimumDeliveryValue"`
}

// NotificationSettings controla os canais de aviso habilitados
type NotificationSettings struct {
	Email    bool `json:"email"`
	SMS      bool `json:"sms"`
	WhatsApp bool `json:"whatsapp"`
}

// WhatsAppAPISettings configura a integração com a API do WhatsApp
type WhatsAppAPISettings struct {
	Enabled     bool   `json:"enabled"`
	Token       string `json:"token,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

// PaymentGatewaySettings configura o gateway de pagamento
type PaymentGatewaySettings struct {
	Enabled     bool              `json:"enabled"`
	Provider    string            `json:"provider,omitempty"`
	Credentials map[string]string `json:"credentials,omitempty"`
}

// IntegrationSettings agrupa as integrações externas
type IntegrationSettings struct {
	WhatsAppAPI    WhatsAppAPISettings    `json:"whatsappApi"`
	PaymentGateway PaymentGatewaySettings `json:"paymentGateway"`
}

// FeatureSettings liga e desliga módulos do sistema
type FeatureSettings struct {
	DeliveryModule         bool `json:"deliveryModule"`
	InvoiceGeneration      bool `json:"invoiceGeneration"`
	MultiplePaymentMethods bool `json:"multiplePaymentMethods"`
	CustomerPortal         bool `json:"customerPortal"`
}

// SystemSettings representa as configurações do sistema (registro único)
type SystemSettings struct {
	Company       Company              `json:"company"`
	Notifications NotificationSettings `json:"notifications"`
	Integrations  IntegrationSettings  `json:"integrations"`
	Features      FeatureSettings      `json:"features"`
}
