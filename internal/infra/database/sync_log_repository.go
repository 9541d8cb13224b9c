package database

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/xavierca1/solar-crm/internal/entity"
)

type SyncLogRepository struct {
	DB *sql.DB
}

func NewSyncLogRepository(db *sql.DB) *SyncLogRepository {
	return &SyncLogRepository{DB: db}
}

func (r *SyncLogRepository) Record(ctx context.Context, entry *entity.SyncLogEntry) error {
	query := `
		INSERT INTO sync_log (
			id, sheet_type, spreadsheet_id, sheet_id, status,
			rows_processed, rows_valid, rows_synced, error_message, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		RETURNING id, created_at
	`

	return r.DB.QueryRowContext(
		ctx,
		query,
		uuid.New().String(),
		entry.SheetType,
		entry.SpreadsheetID,
		entry.SheetID,
		entry.Status,
		entry.RowsProcessed,
		entry.RowsValid,
		entry.RowsSynced,
		entry.ErrorMessage,
	).Scan(&entry.ID, &entry.CreatedAt)
}

func (r *SyncLogRepository) ListRecent(ctx context.Context, limit int) ([]entity.SyncLogEntry, error) {
	if limit <= 0 {
		limit = 20
	}
	query := `
		SELECT id, sheet_type, spreadsheet_id, sheet_id, status,
			rows_processed, rows_valid, rows_synced, error_message, created_at
		FROM sync_log
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []entity.SyncLogEntry
	for rows.Next() {
		var e entity.SyncLogEntry
		if err := rows.Scan(
			&e.ID, &e.SheetType, &e.SpreadsheetID, &e.SheetID, &e.Status,
			&e.RowsProcessed, &e.RowsValid, &e.RowsSynced, &e.ErrorMessage,
			&e.CreatedAt,
		); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
