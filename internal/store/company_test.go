package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gasgestao/gestao-plus/internal/domain/company"
	"github.com/gasgestao/gestao-plus/internal/store"
)

func TestUpdateCompanyPartialMerge(t *testing.T) {
	st := emptyStorage(t)
	s, _ := newTestStore(t, st, testClock())

	before := s.Company()
	phone := "(11) 4000-1234"
	s.UpdateCompany(store.CompanyPatch{Phone: &phone})

	got := s.Company()
	assert.Equal(t, phone, got.Phone)
	assert.Equal(t, before.Name, got.Name)
	assert.Equal(t, before.Document, got.Document)

	// A alteração é persistida
	s2, _ := newTestStore(t, st, testClock())
	assert.Equal(t, phone, s2.Company().Phone)
}

func TestUpdateSettingsPartialMerge(t *testing.T) {
	s, _ := newTestStore(t, emptyStorage(t), testClock())

	before := s.Settings()
	notifications := company.NotificationSettings{WhatsApp: true}
	s.UpdateSettings(store.SettingsPatch{Notifications: &notifications})

	got := s.Settings()
	assert.True(t, got.Notifications.WhatsApp)
	assert.Equal(t, before.Features, got.Features)
	assert.Equal(t, before.Integrations, got.Integrations)
}
