package models

import "time"

// LeadResult — resultado transitório do Lead Hunter. Vive só durante a
// requisição de busca; vira Lead persistido apenas quando o usuário salva.
type LeadResult struct {
	Nome             string  `json:"nome"`
	Endereco         string  `json:"endereco"`
	Rating           float64 `json:"rating,omitempty"`
	TotalReviews     int     `json:"total_reviews"`
	TelefoneOriginal string  `json:"telefone_original,omitempty"`
	TelefoneAPI      string  `json:"telefone_api"`
	Tipo             string  `json:"tipo"`
	Salvo            bool    `json:"salvo,omitempty"`
}

// Lead — lead salvo na tabela leads, escopado por user_id.
type Lead struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	Nome      string    `json:"nome"`
	Telefone  string    `json:"telefone"`
	Tipo      string    `json:"tipo"`
	Endereco  string    `json:"endereco"`
	Rating    string    `json:"rating"` // armazenado como texto
	Status    string    `json:"status"` // new | contacted
	CreatedAt time.Time `json:"created_at"`
}

const (
	LeadStatusNew       = "new"
	LeadStatusContacted = "contacted"
)
