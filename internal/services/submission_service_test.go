package services

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gabrielbeloni06/zytechhub/internal/apperrors"
	"github.com/gabrielbeloni06/zytechhub/internal/models"
)

type mockSubmissionStore struct {
	subs      map[string]*models.Submission
	lastSince time.Time
	createErr error
}

func newMockSubmissionStore() *mockSubmissionStore {
	return &mockSubmissionStore{subs: make(map[string]*models.Submission)}
}

func (m *mockSubmissionStore) Create(s *models.Submission) error {
	if m.createErr != nil {
		return m.createErr
	}
	cp := *s
	m.subs[cp.ID] = &cp
	return nil
}

func (m *mockSubmissionStore) List(since time.Time) ([]*models.Submission, error) {
	m.lastSince = since
	var out []*models.Submission
	for _, s := range m.subs {
		cp := *s
		out = append(out, &cp)
	}
	return out, nil
}

func (m *mockSubmissionStore) GetByID(id string) (*models.Submission, error) {
	s, ok := m.subs[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (m *mockSubmissionStore) MarkViewed(id string) error {
	if s, ok := m.subs[id]; ok {
		s.Status = models.SubmissionStatusViewed
	}
	return nil
}

func (m *mockSubmissionStore) Count() (int, error) { return len(m.subs), nil }

type mockNotifier struct {
	msgs []string
	err  error
}

func (m *mockNotifier) Notify(text string) error {
	m.msgs = append(m.msgs, text)
	return m.err
}

func TestSinceFor(t *testing.T) {
	now := time.Date(2026, time.March, 18, 15, 30, 0, 0, time.UTC)
	hoje := time.Date(2026, time.March, 18, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, hoje, sinceFor("today", now))
	assert.Equal(t, hoje.AddDate(0, 0, -7), sinceFor("week", now))
	assert.Equal(t, time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), sinceFor("month", now))
	assert.True(t, sinceFor("all", now).IsZero())
	assert.True(t, sinceFor("", now).IsZero())
	assert.True(t, sinceFor("bogus", now).IsZero())
}

func TestIntakePersisteENotifica(t *testing.T) {
	store := newMockSubmissionStore()
	notifier := &mockNotifier{}
	svc := NewSubmissionService(store, notifier)

	sub, err := svc.Intake(IntakeRequest{
		NomeEmpresa:      "  Padaria Trigo Bom  ",
		Whatsapp:         "(31) 98888-7777",
		CategoriaServico: models.CategoriaChatbot,
		ProdutoPlano:     "pro",
		DadosTecnicos:    json.RawMessage(`{"saudacao":"Olá!"}`),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, sub.ID)
	assert.Equal(t, "Padaria Trigo Bom", sub.NomeEmpresa)
	assert.Equal(t, models.SubmissionStatusNew, sub.Status)

	require.Len(t, notifier.msgs, 1)
	assert.Contains(t, notifier.msgs[0], "Padaria Trigo Bom")
	assert.Contains(t, notifier.msgs[0], "chatbot")
}

func TestIntakeNotificacaoFalhandoNaoDerrubaPedido(t *testing.T) {
	store := newMockSubmissionStore()
	svc := NewSubmissionService(store, &mockNotifier{err: assert.AnError})

	sub, err := svc.Intake(IntakeRequest{
		NomeEmpresa:      "Clínica Vida",
		Whatsapp:         "(11) 3222-1100",
		CategoriaServico: models.CategoriaWebsite,
	})
	require.NoError(t, err)
	assert.NotNil(t, store.subs[sub.ID])
}

func TestIntakeSemNotifierConfigurado(t *testing.T) {
	svc := NewSubmissionService(newMockSubmissionStore(), nil)
	_, err := svc.Intake(IntakeRequest{
		NomeEmpresa:      "X",
		Whatsapp:         "123",
		CategoriaServico: models.CategoriaChatbot,
	})
	assert.NoError(t, err)
}

func TestMarkViewed(t *testing.T) {
	store := newMockSubmissionStore()
	svc := NewSubmissionService(store, nil)
	sub, err := svc.Intake(IntakeRequest{NomeEmpresa: "X", Whatsapp: "1", CategoriaServico: "chatbot"})
	require.NoError(t, err)

	require.NoError(t, svc.MarkViewed(sub.ID))
	got, err := svc.Get(sub.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SubmissionStatusViewed, got.Status)

	assert.ErrorIs(t, svc.MarkViewed("nao-existe"), apperrors.ErrNaoEncontrado)
}

func TestGetInexistente(t *testing.T) {
	svc := NewSubmissionService(newMockSubmissionStore(), nil)
	_, err := svc.Get("qualquer")
	assert.ErrorIs(t, err, apperrors.ErrNaoEncontrado)
}

func TestParseDetailsChatbot(t *testing.T) {
	sub := &models.Submission{
		CategoriaServico: models.CategoriaChatbot,
		DadosTecnicos:    json.RawMessage(`{"saudacao":"Olá!","bot_persona":"atendente simpática"}`),
	}
	det, err := ParseDetails(sub)
	require.NoError(t, err)
	cb, ok := det.(*models.ChatbotDetails)
	require.True(t, ok)
	assert.Equal(t, "Olá!", cb.Saudacao)
	assert.Equal(t, "atendente simpática", cb.BotPersona)
}

func TestParseDetailsWebsite(t *testing.T) {
	sub := &models.Submission{
		CategoriaServico: models.CategoriaWebsite,
		DadosTecnicos:    json.RawMessage(`{"identidade":"sim","site_paginas":"Home, Sobre"}`),
	}
	det, err := ParseDetails(sub)
	require.NoError(t, err)
	ws, ok := det.(*models.WebsiteDetails)
	require.True(t, ok)
	assert.Equal(t, "sim", ws.Identidade)
	assert.Equal(t, "Home, Sobre", ws.SitePaginas)
}

func TestParseDetailsCategoriaDesconhecidaVoltaCru(t *testing.T) {
	raw := json.RawMessage(`{"campo":"valor"}`)
	sub := &models.Submission{CategoriaServico: "outro", DadosTecnicos: raw}
	det, err := ParseDetails(sub)
	require.NoError(t, err)
	assert.Equal(t, raw, det)
}

func TestParseDetailsVazio(t *testing.T) {
	det, err := ParseDetails(&models.Submission{CategoriaServico: models.CategoriaChatbot})
	require.NoError(t, err)
	assert.Nil(t, det)
}
