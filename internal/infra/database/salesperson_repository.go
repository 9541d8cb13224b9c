package database

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/xavierca1/solar-crm/internal/entity"
)

type SalespersonRepository struct {
	DB *sql.DB
}

func NewSalespersonRepository(db *sql.DB) *SalespersonRepository {
	return &SalespersonRepository{DB: db}
}

// Upsert keys on email, same discipline as leads.
func (r *SalespersonRepository) Upsert(ctx context.Context, p *entity.Salesperson) error {
	query := `
		INSERT INTO salespersons (id, name, email, phone, department, region, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		ON CONFLICT (email)
		DO UPDATE SET
			name = EXCLUDED.name,
			phone = EXCLUDED.phone,
			department = EXCLUDED.department,
			region = EXCLUDED.region,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	return r.DB.QueryRowContext(
		ctx,
		query,
		uuid.New().String(),
		p.Name,
		p.Email,
		p.Phone,
		p.Department,
		p.Region,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *SalespersonRepository) List(ctx context.Context) ([]entity.Salesperson, error) {
	query := `
		SELECT id, name, email, phone, department, region, created_at, updated_at
		FROM salespersons
		ORDER BY name ASC
	`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var people []entity.Salesperson
	for rows.Next() {
		var p entity.Salesperson
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Email, &p.Phone, &p.Department,
			&p.Region, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		people = append(people, p)
	}
	return people, rows.Err()
}

func (r *SalespersonRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM salespersons WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
