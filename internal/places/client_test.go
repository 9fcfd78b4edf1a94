package places

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gabrielbeloni06/zytechhub/internal/apperrors"
)

func TestSearchTextSemChave(t *testing.T) {
	c := NewClient("")
	_, err := c.SearchText(context.Background(), "pizzaria em Belo Horizonte")
	assert.ErrorIs(t, err, apperrors.ErrAPIKeyAusente)
}

func TestSearchTextOK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/places:searchText", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-Goog-Api-Key"))
		assert.Contains(t, r.Header.Get("X-Goog-FieldMask"), "places.nationalPhoneNumber")

		var req searchTextRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "imobiliária em Contagem", req.TextQuery)
		assert.Equal(t, "pt-BR", req.LanguageCode)

		_, _ = w.Write([]byte(`{"places":[
			{"displayName":{"text":"Imob Alfa"},"formattedAddress":"Rua A, 10","rating":4.5,"userRatingCount":120,"nationalPhoneNumber":"(31) 99999-8888"},
			{"displayName":{"text":"Imob Beta"},"formattedAddress":"Rua B, 20"}
		]}`))
	}))
	defer srv.Close()

	c := NewClientWithBaseURL("test-key", srv.URL)
	got, err := c.SearchText(context.Background(), "imobiliária em Contagem")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Imob Alfa", got[0].DisplayName.Text)
	assert.Equal(t, "(31) 99999-8888", got[0].NationalPhoneNumber)
	assert.Equal(t, 120, got[0].UserRatingCount)
	assert.Empty(t, got[1].NationalPhoneNumber)
}

func TestSearchTextSemResultados(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewClientWithBaseURL("test-key", srv.URL)
	_, err := c.SearchText(context.Background(), "qualquer coisa em lugar nenhum")
	assert.ErrorIs(t, err, apperrors.ErrSemResultados)
}

func TestSearchTextErroUpstream(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"message":"API key inválida"}}`))
	}))
	defer srv.Close()

	c := NewClientWithBaseURL("test-key", srv.URL)
	_, err := c.SearchText(context.Background(), "pizzaria em BH")
	var up *apperrors.ErrUpstream
	require.ErrorAs(t, err, &up)
	assert.Equal(t, http.StatusForbidden, up.Status)
	assert.Contains(t, up.Msg, "API key inválida")
}
