package entity

import (
	"context"
	"time"
)

// Sync run outcomes recorded in sync_log.
const (
	SyncStatusCompleted = "completed"
	SyncStatusFailed    = "failed"
)

// SyncLogEntry records one sheet ingestion run for troubleshooting,
// whether it succeeded or not.
type SyncLogEntry struct {
	ID            string    `json:"id"`
	SheetType     string    `json:"sheet_type"`
	SpreadsheetID string    `json:"spreadsheet_id"`
	SheetID       string    `json:"sheet_id"`
	Status        string    `json:"status"`
	RowsProcessed int       `json:"rows_processed"`
	RowsValid     int       `json:"rows_valid"`
	RowsSynced    int       `json:"rows_synced"`
	ErrorMessage  string    `json:"error_message,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type SyncLogRepositoryInterface interface {
	Record(ctx context.Context, entry *SyncLogEntry) error
	ListRecent(ctx context.Context, limit int) ([]SyncLogEntry, error)
}
