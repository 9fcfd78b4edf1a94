package repositories

import (
	"database/sql"
	"errors"
	"log"

	"github.com/gabrielbeloni06/zytechhub/internal/models"
)

type TemplateRepository struct {
	db *sql.DB
}

func NewTemplateRepository(db *sql.DB) *TemplateRepository {
	if db == nil {
		log.Fatalf("received nil database connection")
	}
	return &TemplateRepository{db: db}
}

func (r *TemplateRepository) Create(t *models.Template) error {
	const query = `
		INSERT INTO templates (user_id, titulo, corpo)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	return r.db.QueryRow(query, t.UserID, t.Titulo, t.Corpo).Scan(&t.ID, &t.CreatedAt)
}

func (r *TemplateRepository) GetByID(id int) (*models.Template, error) {
	const query = `
		SELECT id, user_id, titulo, corpo, created_at
		FROM templates
		WHERE id = $1
	`
	t := &models.Template{}
	err := r.db.QueryRow(query, id).Scan(&t.ID, &t.UserID, &t.Titulo, &t.Corpo, &t.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *TemplateRepository) ListByUser(userID int) ([]*models.Template, error) {
	const query = `
		SELECT id, user_id, titulo, corpo, created_at
		FROM templates
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Template
	for rows.Next() {
		t := &models.Template{}
		if err := rows.Scan(&t.ID, &t.UserID, &t.Titulo, &t.Corpo, &t.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *TemplateRepository) Delete(id int) error {
	_, err := r.db.Exec(`DELETE FROM templates WHERE id = $1`, id)
	return err
}
