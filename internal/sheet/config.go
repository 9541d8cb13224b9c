package sheet

// Field is a canonical semantic slot that sheet columns are mapped onto,
// regardless of their literal header text.
type Field string

const (
	FieldName            Field = "name"
	FieldEmail           Field = "email"
	FieldPhone           Field = "phone"
	FieldCompany         Field = "company"
	FieldStreetAddress   Field = "street_address"
	FieldPostCode        Field = "post_code"
	FieldLeadStatus      Field = "lead_status"
	FieldElectricityBill Field = "electricity_bill"
	FieldNote1           Field = "note1"
	FieldNote2           Field = "note2"
	FieldStatus          Field = "status"
	FieldAssignedTo      Field = "assigned_to"
	FieldDepartment      Field = "department"
	FieldRegion          Field = "region"
)

// LeadFields returns the canonical field set for lead sheets, in the
// order the matcher considers them.
func LeadFields() []Field {
	return []Field{
		FieldName, FieldEmail, FieldPhone, FieldStreetAddress,
		FieldPostCode, FieldLeadStatus, FieldElectricityBill,
		FieldNote1, FieldNote2, FieldCompany, FieldStatus, FieldAssignedTo,
	}
}

// SalespersonFields returns the canonical field set for salesperson sheets.
func SalespersonFields() []Field {
	return []Field{FieldName, FieldEmail, FieldPhone, FieldDepartment, FieldRegion}
}

// Config carries every ingestion tunable. Sheets exported from the CRM's
// Google account keep changing shape, so none of this is hardcoded in the
// pipeline itself.
type Config struct {
	// HeaderScanLimit bounds the forward scan for a header row when
	// record 0 looks like data.
	HeaderScanLimit int

	// MaxLeadColumnLen marks the first header field as malformed when its
	// text exceeds this length (or contains a question mark).
	MaxLeadColumnLen int

	// PhoneRequired additionally rejects rows without a phone value.
	// Off by default: the sheets only reliably carry name and email.
	PhoneRequired bool

	// Aliases maps each canonical field to normalized header names that
	// bind it exactly. Keywords are the substring fallback, consulted only
	// when no alias matched anywhere in the header.
	Aliases  map[Field][]string
	Keywords map[Field][]string
}

// DefaultConfig returns the alias and keyword tables observed across the
// production sheets, plus the standard heuristics thresholds.
func DefaultConfig() Config {
	return Config{
		HeaderScanLimit:  50,
		MaxLeadColumnLen: 50,
		PhoneRequired:    false,
		Aliases: map[Field][]string{
			FieldName:            {"full_name", "name", "fname"},
			FieldEmail:           {"email", "email_address", "e-mail"},
			FieldPhone:           {"phone", "telephone", "mobile"},
			FieldCompany:         {"company", "business_name"},
			FieldStreetAddress:   {"street_address", "address"},
			FieldPostCode:        {"post_code", "postcode", "zip", "zip_code", "postal_code"},
			FieldLeadStatus:      {"lead_status"},
			FieldElectricityBill: {"electricity_bill"},
			FieldNote1:           {"note1", "note_1"},
			FieldNote2:           {"note2", "note_2"},
			FieldStatus:          {"status"},
			FieldAssignedTo:      {"assigned_to", "owner", "salesperson"},
			FieldDepartment:      {"department", "dept"},
			FieldRegion:          {"region", "area"},
		},
		Keywords: map[Field][]string{
			FieldName:            {"full", "name"},
			FieldEmail:           {"email"},
			FieldPhone:           {"phone", "telephone"},
			FieldCompany:         {"company", "property"},
			FieldStreetAddress:   {"street", "address"},
			FieldPostCode:        {"post", "zip", "postal"},
			FieldLeadStatus:      {"lead", "status"},
			FieldElectricityBill: {"electricity", "bill"},
			FieldNote1:           {"note"},
			FieldAssignedTo:      {"assigned", "owner"},
			FieldDepartment:      {"department"},
			FieldRegion:          {"region"},
		},
	}
}
