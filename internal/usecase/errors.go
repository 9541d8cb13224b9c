package usecase

import "fmt"

// FetchError wraps a network/HTTP failure retrieving the sheet export.
// It is never retried here; the caller decides.
type FetchError struct {
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch google sheet: %v", e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Reasons carried by EmptyInputError so callers can fix their sheet
// instead of retrying blindly.
const (
	ReasonEmptySheet     = "sheet is empty or has no data rows"
	ReasonHeaderDegraded = "header row could not be resolved"
	ReasonNoValidRows    = "no row passed validation (name and email required)"
)

// EmptyInputError means the sync produced nothing to persist. The Report
// still carries the per-row rejections collected along the way.
type EmptyInputError struct {
	Reason string
	Report *SyncReport
}

func (e *EmptyInputError) Error() string { return e.Reason }

// PersistenceError means the store rejected every upsert that was
// attempted. Partial failures do not raise it; they show up in the report
// as synced < valid.
type PersistenceError struct {
	Rows   int
	Err    error
	Report *SyncReport
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persisting %d rows failed: %v", e.Rows, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// DomainError marks caller mistakes (bad sync type, missing spreadsheet
// id) as distinct from infrastructure failures.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string { return e.Message }
