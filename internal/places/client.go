package places

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/gabrielbeloni06/zytechhub/internal/apperrors"
)

const defaultBaseURL = "https://places.googleapis.com/v1"

// Só os campos que a gente usa; o field mask limita a resposta a eles.
const fieldMask = "places.displayName,places.formattedAddress,places.rating,places.userRatingCount,places.nationalPhoneNumber"

type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		client:  &http.Client{},
	}
}

// NewClientWithBaseURL — usado nos testes para apontar pro httptest.Server.
func NewClientWithBaseURL(apiKey, baseURL string) *Client {
	c := NewClient(apiKey)
	c.baseURL = baseURL
	return c
}

type searchTextRequest struct {
	TextQuery    string `json:"textQuery"`
	LanguageCode string `json:"languageCode,omitempty"`
}

type searchTextResponse struct {
	Places []Place `json:"places"`
}

type Place struct {
	DisplayName struct {
		Text string `json:"text"`
	} `json:"displayName"`
	FormattedAddress    string  `json:"formattedAddress"`
	Rating              float64 `json:"rating"`
	UserRatingCount     int     `json:"userRatingCount"`
	NationalPhoneNumber string  `json:"nationalPhoneNumber"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// SearchText consulta o places:searchText com a query em linguagem natural.
// Sem retry e sem timeout próprio, só o default da plataforma.
func (c *Client) SearchText(ctx context.Context, query string) ([]Place, error) {
	if c.apiKey == "" {
		return nil, apperrors.ErrAPIKeyAusente
	}

	payload, err := json.Marshal(searchTextRequest{
		TextQuery:    query,
		LanguageCode: "pt-BR",
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/places:searchText", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Goog-Api-Key", c.apiKey)
	req.Header.Set("X-Goog-FieldMask", fieldMask)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("chamada ao places: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("leitura da resposta do places: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr errorResponse
		_ = json.Unmarshal(body, &apiErr)
		return nil, apperrors.NewUpstream(resp.StatusCode, apiErr.Error.Message)
	}

	var result searchTextResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("parse da resposta do places: %w", err)
	}
	if len(result.Places) == 0 {
		return nil, apperrors.ErrSemResultados
	}
	return result.Places, nil
}
