package store

import (
	"github.com/shopspring/decimal"

	"github.com/gasgestao/gestao-plus/internal/domain/company"
)

// CompanyPatch descreve uma atualização parcial do cadastro da empresa. A
// mescla é rasa: um campo presente substitui o valor inteiro.
type CompanyPatch struct {
	Name                 *string
	Document             *string
	Phone                *string
	Email                *string
	Address              *company.Address
	Logo                 *string
	Website              *string
	SocialMedia          *company.SocialMedia
	DeliveryRadius       *int
	MinimumDeliveryValue *decimal.Decimal
}

func (p CompanyPatch) apply(dst *company.Company) {
	if p.Name != nil {
		dst.Name = *p.Name
	}
	if p.Document != nil {
		dst.Document = *p.Document
	}
	if p.Phone != nil {
		dst.Phone = *p.Phone
	}
	if p.Email != nil {
		dst.Email = *p.Email
	}
	if p.Address != nil {
		dst.Address = *p.Address
	}
	if p.Logo != nil {
		dst.Logo = *p.Logo
	}
	if p.Website != nil {
		dst.Website = *p.Website
	}
	if p.SocialMedia != nil {
		dst.SocialMedia = *p.SocialMedia
	}
	if p.DeliveryRadius != nil {
		dst.DeliveryRadius = *p.DeliveryRadius
	}
	if p.MinimumDeliveryValue != nil {
		dst.MinimumDeliveryValue = *p.MinimumDeliveryValue
	}
}

// SettingsPatch descreve uma atualização parcial das configurações do sistema
type SettingsPatch struct {
	Company       *company.Company
	Notifications *company.NotificationSettings
	Integrations  *company.IntegrationSettings
	Features      *company.FeatureSettings
}

func (p SettingsPatch) apply(dst *company.SystemSettings) {
	if p.Company != nil {
		dst.Company = *p.Company
	}
	if p.Notifications != nil {
		dst.Notifications = *p.Notifications
	}
	if p.Integrations != nil {
		dst.Integrations = *p.Integrations
	}
	if p.Features != nil {
		dst.Features = *p.Features
	}
}

// UpdateCompany aplica uma atualização parcial ao cadastro da empresa
func (s *Store) UpdateCompany(patch CompanyPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	patch.apply(&s.company)
	s.persist(keyCompany, s.company)
}

// UpdateSettings aplica uma atualização parcial às configurações do sistema
func (s *Store) UpdateSettings(patch SettingsPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	patch.apply(&s.settings)
	s.persist(keySettings, s.settings)
}
