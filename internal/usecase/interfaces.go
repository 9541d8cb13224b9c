package usecase

import (
	"context"

	"github.com/xavierca1/solar-crm/internal/entity"
)

// SheetFetcher retrieves the CSV export text for a spreadsheet. Any
// text-returning fetcher satisfies it.
type SheetFetcher interface {
	FetchCSV(ctx context.Context, spreadsheetID, sheetID string) (string, error)
}

type LeadRepository interface {
	Upsert(ctx context.Context, lead *entity.Lead) error
}

type SalespersonRepository interface {
	Upsert(ctx context.Context, p *entity.Salesperson) error
}

type SyncLogRepository interface {
	Record(ctx context.Context, entry *entity.SyncLogEntry) error
}

// ReportPublisher pushes a completed report onto the message bus so
// other consumers (dashboard, audit) can react.
type ReportPublisher interface {
	PublishSyncCompleted(ctx context.Context, report SyncReport) error
}

// ReportMailer emails the report to whoever owns the sheet.
type ReportMailer interface {
	SendSyncReport(to string, report SyncReport) error
}
