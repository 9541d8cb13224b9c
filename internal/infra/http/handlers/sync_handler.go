package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/xavierca1/solar-crm/internal/entity"
	"github.com/xavierca1/solar-crm/internal/infra/http/middleware"
	"github.com/xavierca1/solar-crm/internal/usecase"
)

// SyncEnqueuer queues a sync request for the background worker instead
// of running it inline.
type SyncEnqueuer interface {
	PublishSyncRequest(ctx context.Context, input usecase.SyncInput) error
}

type SyncHandler struct {
	uc                   *usecase.SyncSheetUseCase
	enqueuer             SyncEnqueuer // nil when RabbitMQ is not configured
	syncLog              entity.SyncLogRepositoryInterface
	defaultSpreadsheetID string
	defaultSheetID       string
}

func NewSyncHandler(uc *usecase.SyncSheetUseCase, enqueuer SyncEnqueuer, syncLog entity.SyncLogRepositoryInterface, defaultSpreadsheetID, defaultSheetID string) *SyncHandler {
	return &SyncHandler{
		uc:                   uc,
		enqueuer:             enqueuer,
		syncLog:              syncLog,
		defaultSpreadsheetID: defaultSpreadsheetID,
		defaultSheetID:       defaultSheetID,
	}
}

type syncResponse struct {
	Success bool `json:"success"`
	*usecase.SyncReport
}

// HandleSync runs POST /api/sync-google-sheet. With ?async=true and a
// configured queue the job is enqueued instead and 202 is returned.
func (h *SyncHandler) HandleSync(w http.ResponseWriter, r *http.Request) {
	var input usecase.SyncInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "request body is not valid JSON")
		return
	}

	if input.SpreadsheetID == "" {
		input.SpreadsheetID = h.defaultSpreadsheetID
	}
	if input.SheetID == "" {
		input.SheetID = h.defaultSheetID
	}

	if r.URL.Query().Get("async") == "true" && h.enqueuer != nil {
		if err := h.enqueuer.PublishSyncRequest(r.Context(), input); err != nil {
			writeError(w, http.StatusInternalServerError, "ENQUEUE_FAILED", "could not enqueue sync request")
			return
		}
		writeJSON(w, http.StatusAccepted, map[string]any{"success": true, "queued": true})
		return
	}

	report, err := h.uc.Execute(r.Context(), input)
	if err != nil {
		h.writeSyncError(w, input, err)
		return
	}

	middleware.RecordSync(input.Type, "completed", report.Processed, report.Valid, report.Synced)
	writeJSON(w, http.StatusOK, syncResponse{Success: true, SyncReport: report})
}

// writeSyncError maps the use case error taxonomy onto HTTP statuses so
// callers can tell a broken sheet from a broken network from a broken
// database.
func (h *SyncHandler) writeSyncError(w http.ResponseWriter, input usecase.SyncInput, err error) {
	var domainErr *usecase.DomainError
	var fetchErr *usecase.FetchError
	var emptyErr *usecase.EmptyInputError
	var persistErr *usecase.PersistenceError

	switch {
	case errors.As(err, &domainErr):
		writeError(w, http.StatusBadRequest, domainErr.Code, domainErr.Message)

	case errors.As(err, &fetchErr):
		middleware.RecordIntegrationError("google_sheets")
		middleware.RecordSync(input.Type, "failed", 0, 0, 0)
		writeError(w, http.StatusBadGateway, "FETCH_FAILED", err.Error())

	case errors.As(err, &emptyErr):
		middleware.RecordSync(input.Type, "failed", emptyErr.Report.Processed, emptyErr.Report.Valid, 0)
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"success": false,
			"error":   "NO_VALID_ROWS",
			"message": emptyErr.Reason,
			"report":  emptyErr.Report,
		})

	case errors.As(err, &persistErr):
		middleware.RecordSync(input.Type, "failed", persistErr.Report.Processed, persistErr.Report.Valid, 0)
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"success": false,
			"error":   "SYNC_FAILED",
			"message": "failed to persist any row; see report",
			"report":  persistErr.Report,
		})

	default:
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
	}
}

// HandleFetch runs GET /api/fetch-google-sheet: fetch and parse without
// persisting, for sheet debugging.
func (h *SyncHandler) HandleFetch(w http.ResponseWriter, r *http.Request) {
	spreadsheetID := r.URL.Query().Get("spreadsheetId")
	sheetID := r.URL.Query().Get("sheetId")
	if spreadsheetID == "" {
		spreadsheetID = h.defaultSpreadsheetID
	}

	rows, err := h.uc.FetchRows(r.Context(), spreadsheetID, sheetID)
	if err != nil {
		var domainErr *usecase.DomainError
		if errors.As(err, &domainErr) {
			writeError(w, http.StatusBadRequest, domainErr.Code, domainErr.Message)
			return
		}
		middleware.RecordIntegrationError("google_sheets")
		writeError(w, http.StatusBadGateway, "FETCH_FAILED", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"rows":    rows,
		"count":   len(rows),
	})
}

// HandleSyncLog runs GET /api/sync-log: the most recent ingestion runs,
// newest first.
func (h *SyncHandler) HandleSyncLog(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	entries, err := h.syncLog.ListRecent(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "LIST_FAILED", "failed to load sync log")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"entries": entries,
		"count":   len(entries),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]string{"error": code, "message": message})
}
