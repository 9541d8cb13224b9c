package database

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/xavierca1/solar-crm/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

// Upsert inserts a lead or, when the email already exists, updates every
// mapped field in place. A single statement: safe under concurrent syncs
// and never duplicates a lead.
func (r *LeadRepository) Upsert(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO leads (
			id, name, email, phone, company, status, assigned_to,
			note1, note2, street_address, post_code, lead_status,
			electricity_bill, source, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NOW(), NOW())
		ON CONFLICT (email)
		DO UPDATE SET
			name = EXCLUDED.name,
			phone = EXCLUDED.phone,
			company = EXCLUDED.company,
			status = EXCLUDED.status,
			assigned_to = EXCLUDED.assigned_to,
			note1 = EXCLUDED.note1,
			note2 = EXCLUDED.note2,
			street_address = EXCLUDED.street_address,
			post_code = EXCLUDED.post_code,
			lead_status = EXCLUDED.lead_status,
			electricity_bill = EXCLUDED.electricity_bill,
			source = EXCLUDED.source,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	return r.DB.QueryRowContext(
		ctx,
		query,
		uuid.New().String(),
		lead.Name,
		lead.Email,
		lead.Phone,
		lead.Company,
		lead.Status,
		lead.AssignedTo,
		lead.Note1,
		lead.Note2,
		lead.StreetAddress,
		lead.PostCode,
		lead.LeadStatus,
		lead.ElectricityBill,
		lead.Source,
	).Scan(&lead.ID, &lead.CreatedAt, &lead.UpdatedAt)
}

func (r *LeadRepository) List(ctx context.Context) ([]entity.Lead, error) {
	query := `
		SELECT id, name, email, phone, company, status, assigned_to,
			note1, note2, street_address, post_code, lead_status,
			electricity_bill, source, created_at, updated_at
		FROM leads
		ORDER BY created_at DESC
	`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leads []entity.Lead
	for rows.Next() {
		var l entity.Lead
		if err := rows.Scan(
			&l.ID, &l.Name, &l.Email, &l.Phone, &l.Company, &l.Status,
			&l.AssignedTo, &l.Note1, &l.Note2, &l.StreetAddress,
			&l.PostCode, &l.LeadStatus, &l.ElectricityBill, &l.Source,
			&l.CreatedAt, &l.UpdatedAt,
		); err != nil {
			return nil, err
		}
		leads = append(leads, l)
	}
	return leads, rows.Err()
}

func (r *LeadRepository) Update(ctx context.Context, lead *entity.Lead) error {
	query := `
		UPDATE leads SET
			name = $1, phone = $2, company = $3, status = $4,
			assigned_to = $5, note1 = $6, note2 = $7,
			street_address = $8, post_code = $9, lead_status = $10,
			electricity_bill = $11, updated_at = NOW()
		WHERE id = $12
	`

	res, err := r.DB.ExecContext(ctx, query,
		lead.Name, lead.Phone, lead.Company, lead.Status,
		lead.AssignedTo, lead.Note1, lead.Note2,
		lead.StreetAddress, lead.PostCode, lead.LeadStatus,
		lead.ElectricityBill, lead.ID,
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *LeadRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM leads WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
