package sheet

import (
	"errors"
	"strings"
)

// Row-level validation failures. Rows failing these produce no draft;
// the sync report accumulates them instead.
var (
	ErrMissingName  = errors.New("missing name")
	ErrMissingEmail = errors.New("missing email")
	ErrMissingPhone = errors.New("missing phone")
)

// LeadDraft is the canonical lead assembled from one sheet row. It lives
// only for the duration of a sync run.
type LeadDraft struct {
	Name            string
	Email           string
	Phone           string
	Company         string
	Status          string
	AssignedTo      string
	Note1           string
	Note2           string
	StreetAddress   string
	PostCode        string
	LeadStatus      string
	ElectricityBill string
}

// SalespersonDraft is the canonical salesperson assembled from one row.
type SalespersonDraft struct {
	Name       string
	Email      string
	Phone      string
	Department string
	Region     string
}

// MapLeadRow applies a column binding to one data row. Unbound fields
// fall back to their defaults. Rows without name or email (and phone,
// when required) are rejected.
func MapLeadRow(row []string, binding ColumnBinding, cfg Config) (LeadDraft, error) {
	draft := LeadDraft{
		Name:            valueFor(row, binding, FieldName),
		Email:           valueFor(row, binding, FieldEmail),
		Phone:           valueFor(row, binding, FieldPhone),
		Company:         valueFor(row, binding, FieldCompany),
		Status:          valueFor(row, binding, FieldStatus),
		AssignedTo:      valueFor(row, binding, FieldAssignedTo),
		Note1:           valueFor(row, binding, FieldNote1),
		Note2:           valueFor(row, binding, FieldNote2),
		StreetAddress:   valueFor(row, binding, FieldStreetAddress),
		PostCode:        valueFor(row, binding, FieldPostCode),
		LeadStatus:      valueFor(row, binding, FieldLeadStatus),
		ElectricityBill: valueFor(row, binding, FieldElectricityBill),
	}

	if draft.Status == "" {
		draft.Status = "Not lifted"
	}
	if draft.AssignedTo == "" {
		draft.AssignedTo = "Unassigned"
	}
	if draft.Company == "" {
		draft.Company = "N/A"
	}

	if draft.Name == "" {
		return LeadDraft{}, ErrMissingName
	}
	if draft.Email == "" {
		return LeadDraft{}, ErrMissingEmail
	}
	if cfg.PhoneRequired && draft.Phone == "" {
		return LeadDraft{}, ErrMissingPhone
	}

	return draft, nil
}

// MapSalespersonRow applies a column binding to one salesperson row.
// Upserts key on email, so name and email are both required.
func MapSalespersonRow(row []string, binding ColumnBinding, cfg Config) (SalespersonDraft, error) {
	draft := SalespersonDraft{
		Name:       valueFor(row, binding, FieldName),
		Email:      valueFor(row, binding, FieldEmail),
		Phone:      valueFor(row, binding, FieldPhone),
		Department: valueFor(row, binding, FieldDepartment),
		Region:     valueFor(row, binding, FieldRegion),
	}

	if draft.Name == "" {
		return SalespersonDraft{}, ErrMissingName
	}
	if draft.Email == "" {
		return SalespersonDraft{}, ErrMissingEmail
	}
	if cfg.PhoneRequired && draft.Phone == "" {
		return SalespersonDraft{}, ErrMissingPhone
	}

	return draft, nil
}

func valueFor(row []string, binding ColumnBinding, f Field) string {
	bind, ok := binding.Lookup(f)
	if !ok || bind.Index < 0 || bind.Index >= len(row) {
		return ""
	}
	return cleanValue(row[bind.Index])
}

// cleanValue trims a raw cell and strips one pair of wrapping quote
// characters that survive some sheet exports.
func cleanValue(v string) string {
	return strings.TrimSpace(stripWrappingQuotes(strings.TrimSpace(v)))
}
