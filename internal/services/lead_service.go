package services

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gabrielbeloni06/zytechhub/internal/apperrors"
	"github.com/gabrielbeloni06/zytechhub/internal/models"
)

// LeadStore é a fatia do repositório que o serviço usa (mockável nos testes).
type LeadStore interface {
	Create(lead *models.Lead) error
	CreateBulk(leads []*models.Lead) error
	GetByID(id int) (*models.Lead, error)
	ListByUser(userID int) ([]*models.Lead, error)
	UpdateStatus(id int, status string) error
	Delete(id int) error
}

type LeadService struct {
	Repo LeadStore
}

func NewLeadService(repo LeadStore) *LeadService {
	return &LeadService{Repo: repo}
}

func resultToLead(userID int, r models.LeadResult) *models.Lead {
	return &models.Lead{
		UserID:   userID,
		Nome:     r.Nome,
		Telefone: r.TelefoneAPI,
		Tipo:     r.Tipo,
		Endereco: r.Endereco,
		Rating:   strconv.FormatFloat(r.Rating, 'f', -1, 64),
		Status:   models.LeadStatusNew,
	}
}

// SaveOne persiste um resultado de busca como lead do usuário.
// Sem usuário autenticado nada é persistido.
func (s *LeadService) SaveOne(userID int, r models.LeadResult) (*models.Lead, error) {
	if userID <= 0 {
		return nil, apperrors.ErrNaoAutenticado
	}
	lead := resultToLead(userID, r)
	if err := s.Repo.Create(lead); err != nil {
		return nil, err
	}
	return lead, nil
}

// SaveBulk insere o subconjunto selecionado num único INSERT multi-linha.
// Só marca os resultados como salvos depois do insert confirmar; nunca antes.
func (s *LeadService) SaveBulk(userID int, selecionados []models.LeadResult) ([]models.LeadResult, error) {
	if userID <= 0 {
		return nil, apperrors.ErrNaoAutenticado
	}
	if len(selecionados) == 0 {
		return nil, errors.New("nenhum lead selecionado")
	}

	leads := make([]*models.Lead, 0, len(selecionados))
	for _, r := range selecionados {
		leads = append(leads, resultToLead(userID, r))
	}
	if err := s.Repo.CreateBulk(leads); err != nil {
		return nil, err
	}

	out := make([]models.LeadResult, len(selecionados))
	copy(out, selecionados)
	for i := range out {
		out[i].Salvo = true
	}
	return out, nil
}

// List — leads salvos do usuário, mais recentes primeiro.
func (s *LeadService) List(userID int) ([]*models.Lead, error) {
	if userID <= 0 {
		return nil, apperrors.ErrNaoAutenticado
	}
	return s.Repo.ListByUser(userID)
}

// UpdateStatus alterna new <-> contacted; vale a última escrita.
func (s *LeadService) UpdateStatus(userID, id int, status string) (*models.Lead, error) {
	if status != models.LeadStatusNew && status != models.LeadStatusContacted {
		return nil, fmt.Errorf("status inválido: %q", status)
	}
	lead, err := s.ownedLead(userID, id)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.UpdateStatus(id, status); err != nil {
		return nil, err
	}
	lead.Status = status
	return lead, nil
}

func (s *LeadService) Delete(userID, id int) error {
	if _, err := s.ownedLead(userID, id); err != nil {
		return err
	}
	return s.Repo.Delete(id)
}

func (s *LeadService) ownedLead(userID, id int) (*models.Lead, error) {
	if userID <= 0 {
		return nil, apperrors.ErrNaoAutenticado
	}
	lead, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if lead == nil || lead.UserID != userID {
		return nil, apperrors.ErrNaoEncontrado
	}
	return lead, nil
}
