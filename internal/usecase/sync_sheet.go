package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/xavierca1/solar-crm/internal/entity"
	"github.com/xavierca1/solar-crm/internal/sheet"
)

// SyncSheetUseCase drives one ingestion run: fetch CSV text, run the
// pipeline, upsert the resulting drafts and report what happened.
//
// SyncLog, Publisher and Mailer are optional collaborators; a nil value
// simply disables that side effect.
type SyncSheetUseCase struct {
	Fetcher      SheetFetcher
	Leads        LeadRepository
	Salespersons SalespersonRepository
	SyncLog      SyncLogRepository
	Publisher    ReportPublisher
	Mailer       ReportMailer
	AdminEmail   string
	SheetConfig  sheet.Config
}

func NewSyncSheetUseCase(
	fetcher SheetFetcher,
	leads LeadRepository,
	salespersons SalespersonRepository,
	syncLog SyncLogRepository,
	publisher ReportPublisher,
	mailer ReportMailer,
	adminEmail string,
	cfg sheet.Config,
) *SyncSheetUseCase {
	return &SyncSheetUseCase{
		Fetcher:      fetcher,
		Leads:        leads,
		Salespersons: salespersons,
		SyncLog:      syncLog,
		Publisher:    publisher,
		Mailer:       mailer,
		AdminEmail:   adminEmail,
		SheetConfig:  cfg,
	}
}

// Execute runs a full sync. Row-level problems (bad rows, individual
// upsert failures) are collected into the report; systemic problems
// (fetch failure, nothing valid, nothing persisted) abort with a typed
// error that still carries the report where one exists.
func (uc *SyncSheetUseCase) Execute(ctx context.Context, input SyncInput) (*SyncReport, error) {
	if strings.TrimSpace(input.SpreadsheetID) == "" {
		return nil, &DomainError{Code: "MISSING_SPREADSHEET_ID", Message: "spreadsheet_id is required"}
	}
	if input.Type != SyncTypeLeads && input.Type != SyncTypeSalespersons {
		return nil, &DomainError{Code: "INVALID_TYPE", Message: "type must be 'leads' or 'salespersons'"}
	}
	if input.SheetID == "" {
		input.SheetID = "0"
	}

	report := &SyncReport{
		Type:          input.Type,
		SpreadsheetID: input.SpreadsheetID,
		SheetID:       input.SheetID,
	}

	csvText, err := uc.Fetcher.FetchCSV(ctx, input.SpreadsheetID, input.SheetID)
	if err != nil {
		uc.recordRun(ctx, input, report, fmt.Sprintf("fetch: %v", err))
		return nil, &FetchError{Err: err}
	}

	doc := sheet.Parse(csvText, uc.SheetConfig)
	report.Processed = len(doc.Rows)
	report.HeaderDegraded = doc.Resolution.Degraded

	if len(doc.Rows) == 0 {
		uc.recordRun(ctx, input, report, ReasonEmptySheet)
		return nil, &EmptyInputError{Reason: ReasonEmptySheet, Report: report}
	}

	fields := sheet.LeadFields()
	if input.Type == SyncTypeSalespersons {
		fields = sheet.SalespersonFields()
	}
	binding := sheet.MatchColumns(doc.Header, fields, uc.SheetConfig)
	report.ResolvedFields = binding.Resolved()
	log.Printf("[sync] %s sheet %s: header at record %d, %d/%d fields resolved",
		input.Type, input.SpreadsheetID, doc.Resolution.HeaderIndex, binding.Len(), len(fields))

	if input.Type == SyncTypeLeads {
		err = uc.syncLeads(ctx, doc, binding, report)
	} else {
		err = uc.syncSalespersons(ctx, doc, binding, report)
	}
	if err != nil {
		uc.recordRun(ctx, input, report, err.Error())
		return nil, err
	}

	report.Message = fmt.Sprintf("synced %d of %d rows (%d rejected)",
		report.Synced, report.Processed, report.RejectionsTotal)
	uc.recordRun(ctx, input, report, "")
	uc.notify(ctx, report)
	return report, nil
}

func (uc *SyncSheetUseCase) syncLeads(ctx context.Context, doc sheet.Sheet, binding sheet.ColumnBinding, report *SyncReport) error {
	var drafts []sheet.LeadDraft
	var draftRows []int
	for i, row := range doc.Rows {
		draft, err := sheet.MapLeadRow(row, binding, uc.SheetConfig)
		if err != nil {
			report.addRejection(fmt.Sprintf("row %d: %v", i+1, err))
			continue
		}
		drafts = append(drafts, draft)
		draftRows = append(draftRows, i+1)
	}
	report.Valid = len(drafts)

	if len(drafts) == 0 {
		return uc.emptyError(report)
	}

	var lastErr error
	for i, draft := range drafts {
		lead := &entity.Lead{
			Name:            draft.Name,
			Email:           draft.Email,
			Phone:           draft.Phone,
			Company:         draft.Company,
			Status:          draft.Status,
			AssignedTo:      draft.AssignedTo,
			Note1:           draft.Note1,
			Note2:           draft.Note2,
			StreetAddress:   draft.StreetAddress,
			PostCode:        draft.PostCode,
			LeadStatus:      draft.LeadStatus,
			ElectricityBill: draft.ElectricityBill,
			Source:          entity.SourceGoogleSheet,
		}
		if err := uc.Leads.Upsert(ctx, lead); err != nil {
			// Row index, never the record contents: emails and phone
			// numbers stay out of logs and reports.
			report.addRejection(fmt.Sprintf("row %d: persist failed", draftRows[i]))
			log.Printf("[sync] upsert lead row %d: %v", draftRows[i], err)
			lastErr = err
			continue
		}
		report.Synced++
	}

	if report.Synced == 0 {
		return &PersistenceError{Rows: report.Valid, Err: lastErr, Report: report}
	}
	return nil
}

func (uc *SyncSheetUseCase) syncSalespersons(ctx context.Context, doc sheet.Sheet, binding sheet.ColumnBinding, report *SyncReport) error {
	var drafts []sheet.SalespersonDraft
	var draftRows []int
	for i, row := range doc.Rows {
		draft, err := sheet.MapSalespersonRow(row, binding, uc.SheetConfig)
		if err != nil {
			report.addRejection(fmt.Sprintf("row %d: %v", i+1, err))
			continue
		}
		drafts = append(drafts, draft)
		draftRows = append(draftRows, i+1)
	}
	report.Valid = len(drafts)

	if len(drafts) == 0 {
		return uc.emptyError(report)
	}

	var lastErr error
	for i, draft := range drafts {
		p := &entity.Salesperson{
			Name:       draft.Name,
			Email:      draft.Email,
			Phone:      draft.Phone,
			Department: draft.Department,
			Region:     draft.Region,
		}
		if err := uc.Salespersons.Upsert(ctx, p); err != nil {
			report.addRejection(fmt.Sprintf("row %d: persist failed", draftRows[i]))
			log.Printf("[sync] upsert salesperson row %d: %v", draftRows[i], err)
			lastErr = err
			continue
		}
		report.Synced++
	}

	if report.Synced == 0 {
		return &PersistenceError{Rows: report.Valid, Err: lastErr, Report: report}
	}
	return nil
}

func (uc *SyncSheetUseCase) emptyError(report *SyncReport) error {
	reason := ReasonNoValidRows
	if report.HeaderDegraded {
		reason = ReasonHeaderDegraded
	}
	return &EmptyInputError{Reason: reason, Report: report}
}

// FetchRows fetches and parses a sheet without persisting anything, for
// the raw inspection endpoint.
func (uc *SyncSheetUseCase) FetchRows(ctx context.Context, spreadsheetID, sheetID string) ([]map[string]string, error) {
	if strings.TrimSpace(spreadsheetID) == "" {
		return nil, &DomainError{Code: "MISSING_SPREADSHEET_ID", Message: "spreadsheetId is required"}
	}
	if sheetID == "" {
		sheetID = "0"
	}
	csvText, err := uc.Fetcher.FetchCSV(ctx, spreadsheetID, sheetID)
	if err != nil {
		return nil, &FetchError{Err: err}
	}
	return sheet.Parse(csvText, uc.SheetConfig).RowMaps(), nil
}

func (uc *SyncSheetUseCase) recordRun(ctx context.Context, input SyncInput, report *SyncReport, errMsg string) {
	if uc.SyncLog == nil {
		return
	}
	status := entity.SyncStatusCompleted
	if errMsg != "" {
		status = entity.SyncStatusFailed
	}
	entry := &entity.SyncLogEntry{
		SheetType:     input.Type,
		SpreadsheetID: input.SpreadsheetID,
		SheetID:       input.SheetID,
		Status:        status,
		RowsProcessed: report.Processed,
		RowsValid:     report.Valid,
		RowsSynced:    report.Synced,
		ErrorMessage:  errMsg,
	}
	if err := uc.SyncLog.Record(ctx, entry); err != nil {
		log.Printf("[sync] record sync log: %v", err)
	}
}

// notify pushes the report to the optional collaborators. Failures are
// logged, never fatal: the rows are already persisted.
func (uc *SyncSheetUseCase) notify(ctx context.Context, report *SyncReport) {
	if uc.Publisher != nil {
		if err := uc.Publisher.PublishSyncCompleted(ctx, *report); err != nil {
			log.Printf("[sync] publish report: %v", err)
		}
	}
	if uc.Mailer != nil && uc.AdminEmail != "" {
		if err := uc.Mailer.SendSyncReport(uc.AdminEmail, *report); err != nil {
			log.Printf("[sync] mail report: %v", err)
		}
	}
}
