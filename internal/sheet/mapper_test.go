package sheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func leadBinding(t *testing.T, header []string) ColumnBinding {
	t.Helper()
	return MatchColumns(header, LeadFields(), DefaultConfig())
}

func TestMapLeadRowDefaults(t *testing.T) {
	binding := leadBinding(t, []string{"Full Name", "Email", "Phone"})

	draft, err := MapLeadRow([]string{"John Doe", "john@x.com", "555-1111"}, binding, DefaultConfig())

	require.NoError(t, err)
	assert.Equal(t, "John Doe", draft.Name)
	assert.Equal(t, "john@x.com", draft.Email)
	assert.Equal(t, "555-1111", draft.Phone)
	assert.Equal(t, "Not lifted", draft.Status)
	assert.Equal(t, "Unassigned", draft.AssignedTo)
	assert.Equal(t, "N/A", draft.Company)
}

func TestMapLeadRowMissingName(t *testing.T) {
	binding := leadBinding(t, []string{"Full Name", "Email", "Phone"})

	_, err := MapLeadRow([]string{"", "john@x.com", "555"}, binding, DefaultConfig())

	assert.ErrorIs(t, err, ErrMissingName)
}

func TestMapLeadRowMissingEmail(t *testing.T) {
	binding := leadBinding(t, []string{"Full Name", "Email", "Phone"})

	_, err := MapLeadRow([]string{"John", "", "555"}, binding, DefaultConfig())

	assert.ErrorIs(t, err, ErrMissingEmail)
}

func TestMapLeadRowPhoneOptionalByDefault(t *testing.T) {
	binding := leadBinding(t, []string{"Full Name", "Email", "Phone"})

	draft, err := MapLeadRow([]string{"John", "john@x.com", ""}, binding, DefaultConfig())

	require.NoError(t, err)
	assert.Empty(t, draft.Phone)
}

func TestMapLeadRowPhoneRequired(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PhoneRequired = true
	binding := MatchColumns([]string{"Full Name", "Email", "Phone"}, LeadFields(), cfg)

	_, err := MapLeadRow([]string{"John", "john@x.com", ""}, binding, cfg)

	assert.ErrorIs(t, err, ErrMissingPhone)
}

func TestMapLeadRowShortRow(t *testing.T) {
	binding := leadBinding(t, []string{"Full Name", "Email", "Phone"})

	// Row shorter than the header: trailing columns read as empty.
	draft, err := MapLeadRow([]string{"John", "john@x.com"}, binding, DefaultConfig())

	require.NoError(t, err)
	assert.Empty(t, draft.Phone)
}

func TestMapLeadRowStripsWrappingQuotes(t *testing.T) {
	binding := leadBinding(t, []string{"Full Name", "Email", "Phone"})

	draft, err := MapLeadRow([]string{"'John Doe'", "john@x.com", "555"}, binding, DefaultConfig())

	require.NoError(t, err)
	assert.Equal(t, "John Doe", draft.Name)
}

func TestMapLeadRowPropertyColumn(t *testing.T) {
	binding := leadBinding(t, []string{"what_type_of_property?", "Full Name", "Email", "Phone"})

	draft, err := MapLeadRow([]string{"House", "Jane Doe", "jane@x.com", "555-2222"}, binding, DefaultConfig())

	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", draft.Name)
	assert.Equal(t, "jane@x.com", draft.Email)
	assert.Equal(t, "House", draft.Company)
}

func TestMapSalespersonRowRequiresNameAndEmail(t *testing.T) {
	binding := MatchColumns([]string{"Name", "Email", "Phone", "Region"}, SalespersonFields(), DefaultConfig())

	draft, err := MapSalespersonRow([]string{"Ann", "ann@x.com", "555", "North"}, binding, DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, "Ann", draft.Name)
	assert.Equal(t, "North", draft.Region)

	_, err = MapSalespersonRow([]string{"Ann", "", "555", "North"}, binding, DefaultConfig())
	assert.ErrorIs(t, err, ErrMissingEmail)
}
