package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/gabrielbeloni06/zytechhub/internal/models"
)

type LeadRepository struct {
	db *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	if db == nil {
		log.Fatalf("received nil database connection")
	}
	return &LeadRepository{db: db}
}

func (r *LeadRepository) Create(lead *models.Lead) error {
	const query = `
		INSERT INTO leads (user_id, nome, telefone, tipo, endereco, rating, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`
	return r.db.QueryRow(query,
		lead.UserID, lead.Nome, lead.Telefone, lead.Tipo, lead.Endereco, lead.Rating, lead.Status,
	).Scan(&lead.ID, &lead.CreatedAt)
}

// CreateBulk insere todos os leads num único INSERT multi-linha.
// O banco aceita ou rejeita o lote inteiro; não há compensação parcial.
func (r *LeadRepository) CreateBulk(leads []*models.Lead) error {
	if len(leads) == 0 {
		return nil
	}

	var (
		sb   strings.Builder
		args []interface{}
	)
	sb.WriteString(`INSERT INTO leads (user_id, nome, telefone, tipo, endereco, rating, status) VALUES `)
	for i, l := range leads {
		if i > 0 {
			sb.WriteString(", ")
		}
		base := i * 7
		sb.WriteString(fmt.Sprintf("($%d,$%d,$%d,$%d,$%d,$%d,$%d)",
			base+1, base+2, base+3, base+4, base+5, base+6, base+7))
		args = append(args, l.UserID, l.Nome, l.Telefone, l.Tipo, l.Endereco, l.Rating, l.Status)
	}

	_, err := r.db.Exec(sb.String(), args...)
	return err
}

func (r *LeadRepository) GetByID(id int) (*models.Lead, error) {
	const query = `
		SELECT id, user_id, nome, telefone, tipo, endereco, rating, status, created_at
		FROM leads
		WHERE id = $1
	`
	lead := &models.Lead{}
	err := r.db.QueryRow(query, id).Scan(
		&lead.ID, &lead.UserID, &lead.Nome, &lead.Telefone, &lead.Tipo,
		&lead.Endereco, &lead.Rating, &lead.Status, &lead.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return lead, nil
}

// ListByUser — todos os leads do usuário, mais recentes primeiro, sem paginação.
func (r *LeadRepository) ListByUser(userID int) ([]*models.Lead, error) {
	const query = `
		SELECT id, user_id, nome, telefone, tipo, endereco, rating, status, created_at
		FROM leads
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Lead
	for rows.Next() {
		l := &models.Lead{}
		if err := rows.Scan(&l.ID, &l.UserID, &l.Nome, &l.Telefone, &l.Tipo,
			&l.Endereco, &l.Rating, &l.Status, &l.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *LeadRepository) UpdateStatus(id int, status string) error {
	_, err := r.db.Exec(`UPDATE leads SET status = $1 WHERE id = $2`, status, id)
	return err
}

func (r *LeadRepository) Delete(id int) error {
	_, err := r.db.Exec(`DELETE FROM leads WHERE id = $1`, id)
	return err
}
