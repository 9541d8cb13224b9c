package sheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeHeader(t *testing.T) {
	assert.Equal(t, "full_name", NormalizeHeader("  Full Name  "))
	assert.Equal(t, "email", NormalizeHeader(`"Email"`))
	assert.Equal(t, "street_address", NormalizeHeader("'Street   Address'"))
	assert.Equal(t, "", NormalizeHeader("   "))
}

func TestMatchColumnsExactAliases(t *testing.T) {
	header := []string{"Full Name", "Email", "Phone"}

	binding := MatchColumns(header, LeadFields(), DefaultConfig())

	name, ok := binding.Lookup(FieldName)
	assert.True(t, ok)
	assert.Equal(t, 0, name.Index)
	assert.Equal(t, "Full Name", name.Header)

	email, ok := binding.Lookup(FieldEmail)
	assert.True(t, ok)
	assert.Equal(t, 1, email.Index)

	phone, ok := binding.Lookup(FieldPhone)
	assert.True(t, ok)
	assert.Equal(t, 2, phone.Index)
}

func TestMatchColumnsExactBeatsSubstring(t *testing.T) {
	// "lead_status" is an exact alias of lead_status but also contains the
	// "status" keyword; the exact pass must claim it for lead_status before
	// the keyword pass can hand it to status.
	header := []string{"Lead Status", "Status", "Email"}

	binding := MatchColumns(header, []Field{FieldStatus, FieldLeadStatus, FieldEmail}, DefaultConfig())

	leadStatus, ok := binding.Lookup(FieldLeadStatus)
	assert.True(t, ok)
	assert.Equal(t, 0, leadStatus.Index)

	status, ok := binding.Lookup(FieldStatus)
	assert.True(t, ok)
	assert.Equal(t, 1, status.Index)
}

func TestMatchColumnsSingleBind(t *testing.T) {
	// One status column cannot feed both status and lead_status.
	header := []string{"Status", "Email"}

	binding := MatchColumns(header, []Field{FieldStatus, FieldLeadStatus, FieldEmail}, DefaultConfig())

	_, hasStatus := binding.Lookup(FieldStatus)
	_, hasLeadStatus := binding.Lookup(FieldLeadStatus)
	assert.True(t, hasStatus)
	assert.False(t, hasLeadStatus)
}

func TestMatchColumnsKeywordFallback(t *testing.T) {
	header := []string{"what_type_of_property?", "Full Name", "Email", "Phone"}

	binding := MatchColumns(header, LeadFields(), DefaultConfig())

	company, ok := binding.Lookup(FieldCompany)
	assert.True(t, ok)
	assert.Equal(t, 0, company.Index)
}

func TestMatchColumnsFirstHeaderWins(t *testing.T) {
	header := []string{"Email", "Email Address"}

	binding := MatchColumns(header, []Field{FieldEmail}, DefaultConfig())

	email, ok := binding.Lookup(FieldEmail)
	assert.True(t, ok)
	assert.Equal(t, 0, email.Index)
}

func TestMatchColumnsEmptyHeadersIgnored(t *testing.T) {
	header := []string{"", "Email"}

	binding := MatchColumns(header, []Field{FieldEmail}, DefaultConfig())

	email, ok := binding.Lookup(FieldEmail)
	assert.True(t, ok)
	assert.Equal(t, 1, email.Index)
}

func TestMatchColumnsUnresolvedFieldAbsent(t *testing.T) {
	header := []string{"Full Name", "Email"}

	binding := MatchColumns(header, LeadFields(), DefaultConfig())

	_, ok := binding.Lookup(FieldPostCode)
	assert.False(t, ok)
	assert.Contains(t, binding.Resolved(), "name")
	assert.Contains(t, binding.Resolved(), "email")
}
