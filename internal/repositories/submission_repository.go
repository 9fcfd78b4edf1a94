package repositories

import (
	"database/sql"
	"errors"
	"log"
	"time"

	"github.com/gabrielbeloni06/zytechhub/internal/models"
)

type SubmissionRepository struct {
	db *sql.DB
}

func NewSubmissionRepository(db *sql.DB) *SubmissionRepository {
	if db == nil {
		log.Fatalf("received nil database connection")
	}
	return &SubmissionRepository{db: db}
}

func (r *SubmissionRepository) Create(s *models.Submission) error {
	const query = `
		INSERT INTO leads_zytech (id, nome_empresa, whatsapp, segmento, ramo_atividade,
			categoria_servico, produto_plano, dados_tecnicos, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at
	`
	var dados interface{}
	if len(s.DadosTecnicos) > 0 {
		dados = []byte(s.DadosTecnicos)
	}
	return r.db.QueryRow(query,
		s.ID, s.NomeEmpresa, s.Whatsapp, s.Segmento, s.RamoAtividade,
		s.CategoriaServico, s.ProdutoPlano, dados, s.Status,
	).Scan(&s.CreatedAt)
}

// List — mais recentes primeiro; since limita por data de criação (zero = todos).
func (r *SubmissionRepository) List(since time.Time) ([]*models.Submission, error) {
	query := `
		SELECT id, nome_empresa, whatsapp, COALESCE(segmento,''), COALESCE(ramo_atividade,''),
			categoria_servico, COALESCE(produto_plano,''), dados_tecnicos, status, created_at
		FROM leads_zytech
	`
	var (
		rows *sql.Rows
		err  error
	)
	if since.IsZero() {
		query += ` ORDER BY created_at DESC`
		rows, err = r.db.Query(query)
	} else {
		query += ` WHERE created_at >= $1 ORDER BY created_at DESC`
		rows, err = r.db.Query(query, since)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Submission
	for rows.Next() {
		s := &models.Submission{}
		var dados []byte
		if err := rows.Scan(&s.ID, &s.NomeEmpresa, &s.Whatsapp, &s.Segmento, &s.RamoAtividade,
			&s.CategoriaServico, &s.ProdutoPlano, &dados, &s.Status, &s.CreatedAt); err != nil {
			return nil, err
		}
		s.DadosTecnicos = dados
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *SubmissionRepository) GetByID(id string) (*models.Submission, error) {
	const query = `
		SELECT id, nome_empresa, whatsapp, COALESCE(segmento,''), COALESCE(ramo_atividade,''),
			categoria_servico, COALESCE(produto_plano,''), dados_tecnicos, status, created_at
		FROM leads_zytech
		WHERE id = $1
	`
	s := &models.Submission{}
	var dados []byte
	err := r.db.QueryRow(query, id).Scan(&s.ID, &s.NomeEmpresa, &s.Whatsapp, &s.Segmento,
		&s.RamoAtividade, &s.CategoriaServico, &s.ProdutoPlano, &dados, &s.Status, &s.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	s.DadosTecnicos = dados
	return s, nil
}

func (r *SubmissionRepository) MarkViewed(id string) error {
	_, err := r.db.Exec(`UPDATE leads_zytech SET status = $1 WHERE id = $2`,
		models.SubmissionStatusViewed, id)
	return err
}

func (r *SubmissionRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM leads_zytech`).Scan(&count)
	return count, err
}
