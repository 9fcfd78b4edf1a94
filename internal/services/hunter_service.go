package services

import (
	"context"
	"fmt"
	"log"
	"sort"

	"github.com/gabrielbeloni06/zytechhub/internal/models"
	"github.com/gabrielbeloni06/zytechhub/internal/phone"
	"github.com/gabrielbeloni06/zytechhub/internal/places"
)

// PlacesSearcher é o que o hunter precisa do client de places.
type PlacesSearcher interface {
	SearchText(ctx context.Context, query string) ([]places.Place, error)
}

// HunterService — busca de leads: places + normalização de telefone +
// ordenação celular-primeiro.
type HunterService struct {
	Places PlacesSearcher
}

func NewHunterService(placesClient PlacesSearcher) *HunterService {
	return &HunterService{Places: placesClient}
}

// Search monta a query "{termo} em {cidade}" e devolve os candidatos já
// normalizados. Strings vazias degradam pra uma query ruim, igual mandada.
func (s *HunterService) Search(ctx context.Context, termo, cidade string) ([]models.LeadResult, error) {
	query := fmt.Sprintf("%s em %s", termo, cidade)
	log.Printf("[hunter][search] query=%q", query)

	results, err := s.Places.SearchText(ctx, query)
	if err != nil {
		return nil, err
	}

	leads := make([]models.LeadResult, 0, len(results))
	for _, p := range results {
		num, tipo := phone.Clean(p.NationalPhoneNumber)
		leads = append(leads, models.LeadResult{
			Nome:             p.DisplayName.Text,
			Endereco:         p.FormattedAddress,
			Rating:           p.Rating,
			TotalReviews:     p.UserRatingCount,
			TelefoneOriginal: p.NationalPhoneNumber,
			TelefoneAPI:      num,
			Tipo:             tipo,
		})
	}

	// celulares na frente; empates mantêm a ordem da API
	sort.SliceStable(leads, func(i, j int) bool {
		return leads[i].Tipo == phone.TipoCelular && leads[j].Tipo != phone.TipoCelular
	})
	return leads, nil
}
