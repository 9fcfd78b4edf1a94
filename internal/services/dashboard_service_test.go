package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gabrielbeloni06/zytechhub/internal/models"
)

type mockOrgLister struct {
	orgs []*models.Organization
	err  error
}

func (m *mockOrgLister) ListAll() ([]*models.Organization, error) { return m.orgs, m.err }

type mockSubCounter struct {
	n   int
	err error
}

func (m *mockSubCounter) Count() (int, error) { return m.n, m.err }

func fv(v float64) *float64 { return &v }

func TestGetSummaryAgregaComNuloComoZero(t *testing.T) {
	orgs := &mockOrgLister{orgs: []*models.Organization{
		{Nome: "A", SubscriptionValue: fv(497), Status: "active", BotStatus: true},
		{Nome: "B", SubscriptionValue: fv(197), Status: "active", BotStatus: false},
		{Nome: "C", SubscriptionValue: nil, Status: "inactive", BotStatus: false},
	}}
	svc := NewDashboardService(orgs, &mockSubCounter{n: 12}, nil)

	sum, err := svc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 694.0, sum.ReceitaMensal)
	assert.Equal(t, 2, sum.ClientesAtivos)
	assert.Equal(t, 1, sum.BotsAtivos)
	assert.Equal(t, 12, sum.TotalPedidos)
}

func TestGetSummarySemOrganizacoes(t *testing.T) {
	svc := NewDashboardService(&mockOrgLister{}, &mockSubCounter{}, nil)

	sum, err := svc.GetSummary(context.Background())
	require.NoError(t, err)
	assert.Zero(t, sum.ReceitaMensal)
	assert.Zero(t, sum.ClientesAtivos)
	assert.Zero(t, sum.BotsAtivos)
	assert.Zero(t, sum.TotalPedidos)
}

func TestGetSummaryPropagaErroDoBanco(t *testing.T) {
	svc := NewDashboardService(&mockOrgLister{err: assert.AnError}, &mockSubCounter{}, nil)
	_, err := svc.GetSummary(context.Background())
	assert.Error(t, err)
}
