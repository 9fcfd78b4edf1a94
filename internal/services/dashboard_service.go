package services

import (
	"context"
	"errors"
	"log"

	"github.com/gabrielbeloni06/zytechhub/internal/cache"
	"github.com/gabrielbeloni06/zytechhub/internal/models"
)

type OrganizationLister interface {
	ListAll() ([]*models.Organization, error)
}

type SubmissionCounter interface {
	Count() (int, error)
}

// Summary — KPIs do painel principal.
type Summary struct {
	ReceitaMensal  float64 `json:"receita_mensal"`
	ClientesAtivos int     `json:"clientes_ativos"`
	BotsAtivos     int     `json:"bots_ativos"`
	TotalPedidos   int     `json:"total_pedidos"`
}

type DashboardService struct {
	Orgs        OrganizationLister
	Submissions SubmissionCounter
	Cache       *cache.Cache
}

func NewDashboardService(orgs OrganizationLister, subs SubmissionCounter, c *cache.Cache) *DashboardService {
	return &DashboardService{Orgs: orgs, Submissions: subs, Cache: c}
}

const summaryCacheKey = "dashboard:summary"

// GetSummary agrega em memória sobre o fetch completo das organizações;
// subscription_value nulo conta como zero. Com Redis configurado, a resposta
// fica cacheada por alguns segundos.
func (s *DashboardService) GetSummary(ctx context.Context) (*Summary, error) {
	var cached Summary
	if err := s.Cache.Get(ctx, summaryCacheKey, &cached); err == nil {
		return &cached, nil
	} else if !errors.Is(err, cache.ErrMiss) {
		log.Printf("[dashboard] cache indisponível, indo direto ao banco: %v", err)
	}

	orgs, err := s.Orgs.ListAll()
	if err != nil {
		return nil, err
	}

	sum := &Summary{}
	for _, o := range orgs {
		if o.SubscriptionValue != nil {
			sum.ReceitaMensal += *o.SubscriptionValue
		}
		if o.Status == "active" {
			sum.ClientesAtivos++
		}
		if o.BotStatus {
			sum.BotsAtivos++
		}
	}

	pedidos, err := s.Submissions.Count()
	if err != nil {
		return nil, err
	}
	sum.TotalPedidos = pedidos

	if err := s.Cache.Set(ctx, summaryCacheKey, sum); err != nil {
		log.Printf("[dashboard] falha ao gravar cache: %v", err)
	}
	return sum, nil
}
