package entity

import (
	"context"
	"time"
)

// Default values applied when a sheet does not carry the column.
const (
	DefaultLeadStatus = "Not lifted"
	DefaultAssignee   = "Unassigned"
	DefaultCompany    = "N/A"

	SourceGoogleSheet = "google_sheet"
)

type Lead struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone,omitempty"`
	Company         string    `json:"company,omitempty"`
	Status          string    `json:"status"`
	AssignedTo      string    `json:"assigned_to"`
	Note1           string    `json:"note1,omitempty"`
	Note2           string    `json:"note2,omitempty"`
	StreetAddress   string    `json:"street_address,omitempty"`
	PostCode        string    `json:"post_code,omitempty"`
	LeadStatus      string    `json:"lead_status,omitempty"`
	ElectricityBill string    `json:"electricity_bill,omitempty"`
	Source          string    `json:"source,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// LeadRepositoryInterface is the persistence contract for leads.
// Upsert is keyed by email: an existing lead with the same email is
// updated in place, created_at untouched.
type LeadRepositoryInterface interface {
	Upsert(ctx context.Context, lead *Lead) error
	List(ctx context.Context) ([]Lead, error)
	Update(ctx context.Context, lead *Lead) error
	Delete(ctx context.Context, id string) error
}
