package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gabrielbeloni06/zytechhub/internal/apperrors"
	"github.com/gabrielbeloni06/zytechhub/internal/phone"
	"github.com/gabrielbeloni06/zytechhub/internal/places"
)

type fakeSearcher struct {
	gotQuery string
	results  []places.Place
	err      error
}

func (f *fakeSearcher) SearchText(ctx context.Context, query string) ([]places.Place, error) {
	f.gotQuery = query
	return f.results, f.err
}

func place(nome, tel string) places.Place {
	p := places.Place{
		FormattedAddress:    "Rua X, 100 - Belo Horizonte",
		Rating:              4.5,
		UserRatingCount:     37,
		NationalPhoneNumber: tel,
	}
	p.DisplayName.Text = nome
	return p
}

func TestHunterSearchMontaQuery(t *testing.T) {
	f := &fakeSearcher{}
	svc := NewHunterService(f)

	_, err := svc.Search(context.Background(), "pizzaria", "Belo Horizonte")
	require.NoError(t, err)
	assert.Equal(t, "pizzaria em Belo Horizonte", f.gotQuery)
}

func TestHunterSearchNormalizaEOrdena(t *testing.T) {
	f := &fakeSearcher{results: []places.Place{
		place("Fixo A", "(31) 3322-4455"),
		place("Celular B", "(31) 99999-8888"),
		place("Sem Telefone", ""),
		place("Celular C", "(11) 98888-1122"),
	}}
	svc := NewHunterService(f)

	leads, err := svc.Search(context.Background(), "pizzaria", "BH")
	require.NoError(t, err)
	require.Len(t, leads, 4)

	// celulares vêm primeiro, preservando a ordem relativa da API
	assert.Equal(t, "Celular B", leads[0].Nome)
	assert.Equal(t, "Celular C", leads[1].Nome)
	assert.Equal(t, "Fixo A", leads[2].Nome)
	assert.Equal(t, "Sem Telefone", leads[3].Nome)

	assert.Equal(t, phone.TipoCelular, leads[0].Tipo)
	assert.Equal(t, "5531999998888", leads[0].TelefoneAPI)
	assert.Equal(t, "(31) 99999-8888", leads[0].TelefoneOriginal)

	assert.Equal(t, phone.TipoFixo, leads[2].Tipo)
	assert.Equal(t, "553133224455", leads[2].TelefoneAPI)

	assert.Equal(t, phone.TipoDesconhecido, leads[3].Tipo)
	assert.Equal(t, phone.SemNumero, leads[3].TelefoneAPI)
}

func TestHunterSearchPropagaErro(t *testing.T) {
	f := &fakeSearcher{err: apperrors.ErrSemResultados}
	svc := NewHunterService(f)

	_, err := svc.Search(context.Background(), "nada", "lugar nenhum")
	assert.ErrorIs(t, err, apperrors.ErrSemResultados)
}
