package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gabrielbeloni06/zytechhub/internal/apperrors"
	"github.com/gabrielbeloni06/zytechhub/internal/models"
)

type mockTemplateStore struct {
	templates map[int]*models.Template
	nextID    int
}

func newMockTemplateStore() *mockTemplateStore {
	return &mockTemplateStore{templates: make(map[int]*models.Template), nextID: 1}
}

func (m *mockTemplateStore) Create(t *models.Template) error {
	t.ID = m.nextID
	m.nextID++
	cp := *t
	m.templates[cp.ID] = &cp
	return nil
}

func (m *mockTemplateStore) GetByID(id int) (*models.Template, error) {
	t, ok := m.templates[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (m *mockTemplateStore) ListByUser(userID int) ([]*models.Template, error) {
	var out []*models.Template
	for _, t := range m.templates {
		if t.UserID == userID {
			cp := *t
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *mockTemplateStore) Delete(id int) error {
	delete(m.templates, id)
	return nil
}

func TestPrimeiroNome(t *testing.T) {
	assert.Equal(t, "Padaria", PrimeiroNome("Padaria Trigo Bom"))
	assert.Equal(t, "Ana", PrimeiroNome("  Ana  "))
	assert.Equal(t, "Zytech", PrimeiroNome("Zytech"))
	assert.Equal(t, "", PrimeiroNome(""))
}

func TestRenderSubstituiPrimeiraOcorrencia(t *testing.T) {
	corpo := "Olá {nome}! Vi que a {nome} está em BH."
	assert.Equal(t, "Olá Padaria! Vi que a {nome} está em BH.", Render(corpo, "Padaria Trigo Bom"))
}

func TestRenderSemPlaceholder(t *testing.T) {
	assert.Equal(t, "mensagem fixa", Render("mensagem fixa", "Ana"))
}

func setupContact(t *testing.T) (*TemplateService, *mockLeadStore, *models.Lead, *models.Template) {
	t.Helper()
	leads := newMockLeadStore()
	tpls := newMockTemplateStore()
	svc := NewTemplateService(tpls, leads)

	lead := &models.Lead{UserID: 7, Nome: "Padaria Trigo Bom", Telefone: "5531999998888", Status: models.LeadStatusNew}
	require.NoError(t, leads.Create(lead))

	tpl, err := svc.Create(7, "Abertura", "Olá {nome}, tudo bem?")
	require.NoError(t, err)
	return svc, leads, lead, tpl
}

func TestContactRenderizaEMarcaContacted(t *testing.T) {
	svc, leads, lead, tpl := setupContact(t)

	res, err := svc.Contact(7, lead.ID, tpl.ID)
	require.NoError(t, err)

	assert.Equal(t, "Olá Padaria, tudo bem?", res.Mensagem)
	assert.Contains(t, res.Link, "https://wa.me/5531999998888?text=")
	assert.Contains(t, res.Link, "Padaria")
	assert.Equal(t, models.LeadStatusContacted, res.Lead.Status)

	// o status só muda depois do update confirmar no repositório
	stored, err := leads.GetByID(lead.ID)
	require.NoError(t, err)
	assert.Equal(t, models.LeadStatusContacted, stored.Status)
}

func TestContactFalhaNoUpdateNaoDevolveLink(t *testing.T) {
	svc, leads, lead, tpl := setupContact(t)
	leads.statusErr = assert.AnError

	res, err := svc.Contact(7, lead.ID, tpl.ID)
	assert.Error(t, err)
	assert.Nil(t, res)

	stored, err := leads.GetByID(lead.ID)
	require.NoError(t, err)
	assert.Equal(t, models.LeadStatusNew, stored.Status)
}

func TestContactLeadDeOutroUsuario(t *testing.T) {
	svc, _, lead, tpl := setupContact(t)
	_, err := svc.Contact(99, lead.ID, tpl.ID)
	assert.ErrorIs(t, err, apperrors.ErrNaoEncontrado)
}

func TestContactTemplateInexistente(t *testing.T) {
	svc, _, lead, _ := setupContact(t)
	_, err := svc.Contact(7, lead.ID, 12345)
	assert.ErrorIs(t, err, apperrors.ErrNaoEncontrado)
}

func TestTemplateDeleteSoDoDono(t *testing.T) {
	svc, _, _, tpl := setupContact(t)
	assert.ErrorIs(t, svc.Delete(99, tpl.ID), apperrors.ErrNaoEncontrado)
	require.NoError(t, svc.Delete(7, tpl.ID))
}
