package services

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gabrielbeloni06/zytechhub/internal/apperrors"
	"github.com/gabrielbeloni06/zytechhub/internal/models"
)

type SubmissionStore interface {
	Create(s *models.Submission) error
	List(since time.Time) ([]*models.Submission, error)
	GetByID(id string) (*models.Submission, error)
	MarkViewed(id string) error
	Count() (int, error)
}

// Notifier avisa o time de ops sobre um pedido novo (best effort).
type Notifier interface {
	Notify(text string) error
}

type SubmissionService struct {
	Repo     SubmissionStore
	Notifier Notifier
}

func NewSubmissionService(repo SubmissionStore, notifier Notifier) *SubmissionService {
	return &SubmissionService{Repo: repo, Notifier: notifier}
}

// sinceFor traduz o filtro de período da caixa de entrada pra um corte de data.
func sinceFor(periodo string, now time.Time) time.Time {
	hoje := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch periodo {
	case "today":
		return hoje
	case "week":
		return hoje.AddDate(0, 0, -7)
	case "month":
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	default: // "all" ou vazio
		return time.Time{}
	}
}

func (s *SubmissionService) List(periodo string) ([]*models.Submission, error) {
	return s.Repo.List(sinceFor(periodo, time.Now()))
}

func (s *SubmissionService) Get(id string) (*models.Submission, error) {
	sub, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, apperrors.ErrNaoEncontrado
	}
	return sub, nil
}

func (s *SubmissionService) MarkViewed(id string) error {
	sub, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}
	if sub == nil {
		return apperrors.ErrNaoEncontrado
	}
	return s.Repo.MarkViewed(id)
}

// ParseDetails interpreta dados_tecnicos pelas duas formas conhecidas.
// Categoria desconhecida volta o JSON cru.
func ParseDetails(sub *models.Submission) (interface{}, error) {
	if len(sub.DadosTecnicos) == 0 {
		return nil, nil
	}
	switch sub.CategoriaServico {
	case models.CategoriaChatbot:
		var d models.ChatbotDetails
		if err := json.Unmarshal(sub.DadosTecnicos, &d); err != nil {
			return nil, err
		}
		return &d, nil
	case models.CategoriaWebsite:
		var d models.WebsiteDetails
		if err := json.Unmarshal(sub.DadosTecnicos, &d); err != nil {
			return nil, err
		}
		return &d, nil
	default:
		return sub.DadosTecnicos, nil
	}
}

type IntakeRequest struct {
	NomeEmpresa      string          `json:"nome_empresa" binding:"required"`
	Whatsapp         string          `json:"whatsapp" binding:"required"`
	Segmento         string          `json:"segmento"`
	RamoAtividade    string          `json:"ramo_atividade"`
	CategoriaServico string          `json:"categoria_servico" binding:"required"`
	ProdutoPlano     string          `json:"produto_plano"`
	DadosTecnicos    json.RawMessage `json:"dados_tecnicos"`
}

// Intake recebe o formulário público de orçamento, persiste e dispara a
// notificação no Telegram. A notificação falhando não derruba o pedido.
func (s *SubmissionService) Intake(req IntakeRequest) (*models.Submission, error) {
	sub := &models.Submission{
		ID:               uuid.NewString(),
		NomeEmpresa:      strings.TrimSpace(req.NomeEmpresa),
		Whatsapp:         strings.TrimSpace(req.Whatsapp),
		Segmento:         strings.TrimSpace(req.Segmento),
		RamoAtividade:    strings.TrimSpace(req.RamoAtividade),
		CategoriaServico: strings.TrimSpace(req.CategoriaServico),
		ProdutoPlano:     strings.TrimSpace(req.ProdutoPlano),
		DadosTecnicos:    req.DadosTecnicos,
		Status:           models.SubmissionStatusNew,
	}
	if err := s.Repo.Create(sub); err != nil {
		return nil, err
	}

	if s.Notifier != nil {
		text := fmt.Sprintf("📥 Novo pedido de orçamento\nEmpresa: %s\nWhatsApp: %s\nServiço: %s (%s)",
			sub.NomeEmpresa, sub.Whatsapp, sub.CategoriaServico, sub.ProdutoPlano)
		if err := s.Notifier.Notify(text); err != nil {
			log.Printf("[forms][intake] falha ao notificar Telegram: %v", err)
		}
	}
	return sub, nil
}
