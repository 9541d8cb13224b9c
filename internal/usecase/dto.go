package usecase

// Sync target types.
const (
	SyncTypeLeads        = "leads"
	SyncTypeSalespersons = "salespersons"
)

// maxReportedRejections bounds the rejection list returned to callers;
// the total count is always reported.
const maxReportedRejections = 25

type SyncInput struct {
	SpreadsheetID string `json:"spreadsheet_id"`
	SheetID       string `json:"sheet_id,omitempty"`
	Type          string `json:"type"`
}

// SyncReport is returned for every sync run, including failed ones, so
// the UI can show "synced N of M rows, see K rejected".
type SyncReport struct {
	Type            string   `json:"type"`
	SpreadsheetID   string   `json:"spreadsheet_id"`
	SheetID         string   `json:"sheet_id"`
	Processed       int      `json:"processed"`
	Valid           int      `json:"valid"`
	Synced          int      `json:"synced"`
	HeaderDegraded  bool     `json:"header_degraded,omitempty"`
	ResolvedFields  []string `json:"resolved_fields,omitempty"`
	Rejections      []string `json:"rejections,omitempty"`
	RejectionsTotal int      `json:"rejections_total,omitempty"`
	Message         string   `json:"message,omitempty"`
}

func (r *SyncReport) addRejection(reason string) {
	r.RejectionsTotal++
	if len(r.Rejections) < maxReportedRejections {
		r.Rejections = append(r.Rejections, reason)
	}
}
