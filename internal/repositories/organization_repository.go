package repositories

import (
	"database/sql"
	"log"

	"github.com/gabrielbeloni06/zytechhub/internal/models"
)

// OrganizationRepository só lê: a tabela é gerida pelo fluxo de billing,
// fora deste serviço.
type OrganizationRepository struct {
	db *sql.DB
}

func NewOrganizationRepository(db *sql.DB) *OrganizationRepository {
	if db == nil {
		log.Fatalf("received nil database connection")
	}
	return &OrganizationRepository{db: db}
}

func (r *OrganizationRepository) ListAll() ([]*models.Organization, error) {
	const query = `
		SELECT id, nome, subscription_value, status, bot_status, created_at
		FROM organizations
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Organization
	for rows.Next() {
		o := &models.Organization{}
		var subValue sql.NullFloat64
		if err := rows.Scan(&o.ID, &o.Nome, &subValue, &o.Status, &o.BotStatus, &o.CreatedAt); err != nil {
			return nil, err
		}
		if subValue.Valid {
			v := subValue.Float64
			o.SubscriptionValue = &v
		}
		out = append(out, o)
	}
	return out, rows.Err()
}
