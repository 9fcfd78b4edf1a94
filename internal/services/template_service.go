package services

import (
	"strings"

	"github.com/gabrielbeloni06/zytechhub/internal/apperrors"
	"github.com/gabrielbeloni06/zytechhub/internal/models"
	"github.com/gabrielbeloni06/zytechhub/internal/utils"
)

type TemplateStore interface {
	Create(t *models.Template) error
	GetByID(id int) (*models.Template, error)
	ListByUser(userID int) ([]*models.Template, error)
	Delete(id int) error
}

type TemplateService struct {
	Repo  TemplateStore
	Leads LeadStore
}

func NewTemplateService(repo TemplateStore, leads LeadStore) *TemplateService {
	return &TemplateService{Repo: repo, Leads: leads}
}

func (s *TemplateService) Create(userID int, titulo, corpo string) (*models.Template, error) {
	if userID <= 0 {
		return nil, apperrors.ErrNaoAutenticado
	}
	t := &models.Template{UserID: userID, Titulo: strings.TrimSpace(titulo), Corpo: corpo}
	if err := s.Repo.Create(t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TemplateService) List(userID int) ([]*models.Template, error) {
	if userID <= 0 {
		return nil, apperrors.ErrNaoAutenticado
	}
	return s.Repo.ListByUser(userID)
}

func (s *TemplateService) Delete(userID, id int) error {
	t, err := s.ownedTemplate(userID, id)
	if err != nil {
		return err
	}
	return s.Repo.Delete(t.ID)
}

// PrimeiroNome — só o primeiro token do nome, até o primeiro espaço.
func PrimeiroNome(nome string) string {
	nome = strings.TrimSpace(nome)
	if i := strings.IndexByte(nome, ' '); i >= 0 {
		return nome[:i]
	}
	return nome
}

// Render substitui a primeira ocorrência de {nome}; o corpo persistido
// nunca muda.
func Render(corpo, nome string) string {
	return strings.Replace(corpo, "{nome}", PrimeiroNome(nome), 1)
}

// ContactResult — resultado explícito da ação de contato.
type ContactResult struct {
	Link     string       `json:"link"`
	Mensagem string       `json:"mensagem"`
	Lead     *models.Lead `json:"lead"`
}

// Contact renderiza o template para o lead e monta o deep link do WhatsApp.
// O status só vira contacted depois do update confirmar no banco; se o update
// falhar, nenhum link é devolvido.
func (s *TemplateService) Contact(userID, leadID, templateID int) (*ContactResult, error) {
	if userID <= 0 {
		return nil, apperrors.ErrNaoAutenticado
	}

	lead, err := s.Leads.GetByID(leadID)
	if err != nil {
		return nil, err
	}
	if lead == nil || lead.UserID != userID {
		return nil, apperrors.ErrNaoEncontrado
	}

	tpl, err := s.ownedTemplate(userID, templateID)
	if err != nil {
		return nil, err
	}

	msg := Render(tpl.Corpo, lead.Nome)

	if err := s.Leads.UpdateStatus(lead.ID, models.LeadStatusContacted); err != nil {
		return nil, err
	}
	lead.Status = models.LeadStatusContacted

	return &ContactResult{
		Link:     utils.WhatsAppLink(lead.Telefone, msg),
		Mensagem: msg,
		Lead:     lead,
	}, nil
}

func (s *TemplateService) ownedTemplate(userID, id int) (*models.Template, error) {
	if userID <= 0 {
		return nil, apperrors.ErrNaoAutenticado
	}
	t, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if t == nil || t.UserID != userID {
		return nil, apperrors.ErrNaoEncontrado
	}
	return t, nil
}
