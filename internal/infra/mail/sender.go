package mail

import (
	"bytes"
	"fmt"
	"text/template"

	"gopkg.in/gomail.v2"

	"github.com/xavierca1/solar-crm/internal/usecase"
)

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

func NewEmailSender(host string, port int, user, password, from string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
	}
}

var reportTemplate = template.Must(template.New("syncReport").Parse(`Sheet sync finished for {{.Type}}.

Spreadsheet: {{.SpreadsheetID}} (gid {{.SheetID}})
Rows processed: {{.Processed}}
Rows valid:     {{.Valid}}
Rows synced:    {{.Synced}}
{{- if .HeaderDegraded}}

WARNING: the header row could not be resolved; check the sheet layout.
{{- end}}
{{- if .Rejections}}

Rejected rows ({{.RejectionsTotal}} total):
{{- range .Rejections}}
  - {{.}}
{{- end}}
{{- end}}
`))

// SendSyncReport emails a plain-text summary of one ingestion run.
func (s *EmailSender) SendSyncReport(to string, report usecase.SyncReport) error {
	var body bytes.Buffer
	if err := reportTemplate.Execute(&body, report); err != nil {
		return fmt.Errorf("render report template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("CRM sync: %d of %d %s rows synced", report.Synced, report.Processed, report.Type))
	m.SetBody("text/plain", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("send report email: %w", err)
	}

	return nil
}
