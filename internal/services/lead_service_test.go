package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gabrielbeloni06/zytechhub/internal/apperrors"
	"github.com/gabrielbeloni06/zytechhub/internal/models"
)

// mockLeadStore guarda leads em memória e conta as chamadas de escrita.
type mockLeadStore struct {
	leads       map[int]*models.Lead
	nextID      int
	createCalls int
	bulkCalls   int
	bulkErr     error
	statusErr   error
}

func newMockLeadStore() *mockLeadStore {
	return &mockLeadStore{leads: make(map[int]*models.Lead), nextID: 1}
}

func (m *mockLeadStore) Create(lead *models.Lead) error {
	m.createCalls++
	lead.ID = m.nextID
	m.nextID++
	cp := *lead
	m.leads[cp.ID] = &cp
	return nil
}

func (m *mockLeadStore) CreateBulk(leads []*models.Lead) error {
	m.bulkCalls++
	if m.bulkErr != nil {
		return m.bulkErr
	}
	for _, l := range leads {
		l.ID = m.nextID
		m.nextID++
		cp := *l
		m.leads[cp.ID] = &cp
	}
	return nil
}

func (m *mockLeadStore) GetByID(id int) (*models.Lead, error) {
	l, ok := m.leads[id]
	if !ok {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}

func (m *mockLeadStore) ListByUser(userID int) ([]*models.Lead, error) {
	var out []*models.Lead
	for _, l := range m.leads {
		if l.UserID == userID {
			cp := *l
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *mockLeadStore) UpdateStatus(id int, status string) error {
	if m.statusErr != nil {
		return m.statusErr
	}
	if l, ok := m.leads[id]; ok {
		l.Status = status
	}
	return nil
}

func (m *mockLeadStore) Delete(id int) error {
	delete(m.leads, id)
	return nil
}

func resultado(nome string) models.LeadResult {
	return models.LeadResult{
		Nome:        nome,
		TelefoneAPI: "5531999998888",
		Tipo:        "CELULAR",
		Endereco:    "Rua Y, 200",
		Rating:      4.2,
	}
}

func TestSaveOneSemUsuarioNaoPersiste(t *testing.T) {
	store := newMockLeadStore()
	svc := NewLeadService(store)

	_, err := svc.SaveOne(0, resultado("Padaria"))
	assert.ErrorIs(t, err, apperrors.ErrNaoAutenticado)
	assert.Zero(t, store.createCalls)
}

func TestSaveOnePersisteComStatusNew(t *testing.T) {
	store := newMockLeadStore()
	svc := NewLeadService(store)

	lead, err := svc.SaveOne(7, resultado("Padaria"))
	require.NoError(t, err)
	assert.Equal(t, 7, lead.UserID)
	assert.Equal(t, models.LeadStatusNew, lead.Status)
	assert.Equal(t, "4.2", lead.Rating)
	assert.NotZero(t, lead.ID)
}

func TestSaveBulkMarcaTodosDepoisDoInsert(t *testing.T) {
	store := newMockLeadStore()
	svc := NewLeadService(store)

	sel := []models.LeadResult{resultado("A"), resultado("B"), resultado("C")}
	out, err := svc.SaveBulk(7, sel)
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, 1, store.bulkCalls)
	for _, r := range out {
		assert.True(t, r.Salvo)
	}
	// a fatia de entrada não é mutada
	for _, r := range sel {
		assert.False(t, r.Salvo)
	}
}

func TestSaveBulkFalhaNaoMarcaNada(t *testing.T) {
	store := newMockLeadStore()
	store.bulkErr = assert.AnError
	svc := NewLeadService(store)

	out, err := svc.SaveBulk(7, []models.LeadResult{resultado("A")})
	assert.Error(t, err)
	assert.Nil(t, out)
}

func TestSaveBulkVazioEhErro(t *testing.T) {
	svc := NewLeadService(newMockLeadStore())
	_, err := svc.SaveBulk(7, nil)
	assert.Error(t, err)
}

func TestUpdateStatusAlternaEValeUltimaEscrita(t *testing.T) {
	store := newMockLeadStore()
	svc := NewLeadService(store)
	saved, err := svc.SaveOne(7, resultado("A"))
	require.NoError(t, err)

	lead, err := svc.UpdateStatus(7, saved.ID, models.LeadStatusContacted)
	require.NoError(t, err)
	assert.Equal(t, models.LeadStatusContacted, lead.Status)

	lead, err = svc.UpdateStatus(7, saved.ID, models.LeadStatusNew)
	require.NoError(t, err)
	assert.Equal(t, models.LeadStatusNew, lead.Status)
}

func TestUpdateStatusRejeitaValorDesconhecido(t *testing.T) {
	svc := NewLeadService(newMockLeadStore())
	_, err := svc.UpdateStatus(7, 1, "qualquer")
	assert.Error(t, err)
}

func TestUpdateStatusDeOutroUsuario(t *testing.T) {
	store := newMockLeadStore()
	svc := NewLeadService(store)
	saved, err := svc.SaveOne(7, resultado("A"))
	require.NoError(t, err)

	_, err = svc.UpdateStatus(99, saved.ID, models.LeadStatusContacted)
	assert.ErrorIs(t, err, apperrors.ErrNaoEncontrado)
}

func TestDeleteSoDoDono(t *testing.T) {
	store := newMockLeadStore()
	svc := NewLeadService(store)
	saved, err := svc.SaveOne(7, resultado("A"))
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(99, saved.ID), apperrors.ErrNaoEncontrado)
	require.NoError(t, svc.Delete(7, saved.ID))

	lista, err := svc.List(7)
	require.NoError(t, err)
	assert.Empty(t, lista)
}
