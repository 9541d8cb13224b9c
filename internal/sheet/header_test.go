package sheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveHeaderRecordZeroByDefault(t *testing.T) {
	records := [][]string{
		{"Full Name", "Email", "Phone"},
		{"John", "j@x.com", "555"},
	}

	res := ResolveHeader(records, DefaultConfig())

	assert.Equal(t, 0, res.HeaderIndex)
	assert.Equal(t, 1, res.DataStart)
	assert.False(t, res.Degraded)
}

func TestResolveHeaderScansPastDataRows(t *testing.T) {
	// Export junk above the real header, starting with a data-like token.
	records := [][]string{
		{"solar enquiry 2024", "", ""},
		{"_form_export", "", ""},
		{"Full Name", "Email", "Phone"},
		{"John", "j@x.com", "555"},
	}

	res := ResolveHeader(records, DefaultConfig())

	assert.Equal(t, 2, res.HeaderIndex)
	assert.Equal(t, 3, res.DataStart)
	assert.False(t, res.Degraded)
}

func TestResolveHeaderDegradedWhenNoPlausibleHeader(t *testing.T) {
	records := [][]string{
		{"solar quote", "yes"},
		{"12345", "no"},
	}

	res := ResolveHeader(records, DefaultConfig())

	assert.True(t, res.Degraded)
	assert.Equal(t, 0, res.HeaderIndex)
	assert.Equal(t, 1, res.DataStart)
}

func TestResolveHeaderScanLimitBounds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.HeaderScanLimit = 2

	records := [][]string{
		{"solar", "x"},
		{"123", "y"},
		{"Full Name", "Email", "Phone"}, // beyond the bound
		{"John", "j@x.com", "555"},
	}

	res := ResolveHeader(records, cfg)

	assert.True(t, res.Degraded)
	assert.Equal(t, 0, res.HeaderIndex)
}

func TestResolveHeaderDropsOverlongLeadColumn(t *testing.T) {
	long := "What do you want to achieve by going solar and how much is your average electricity spend"
	records := [][]string{
		{long, "Full Name", "Email", "Phone"},
		{"answer", "John", "j@x.com", "555"},
	}

	res := ResolveHeader(records, DefaultConfig())

	assert.True(t, res.DropLeadColumn)
}

func TestResolveHeaderKeepsClaimableQuestionColumn(t *testing.T) {
	// Contains "?" but a canonical field's keyword table can still claim
	// it, so it survives.
	records := [][]string{
		{"what_type_of_property?", "Full Name", "Email", "Phone"},
		{"House", "Jane", "jane@x.com", "555"},
	}

	res := ResolveHeader(records, DefaultConfig())

	assert.False(t, res.DropLeadColumn)
	assert.Equal(t, 0, res.HeaderIndex)
}

func TestResolveHeaderDropsUnclaimableQuestionColumn(t *testing.T) {
	records := [][]string{
		{"agree_to_terms?", "Full Name", "Email", "Phone"},
		{"yes", "Jane", "jane@x.com", "555"},
	}

	res := ResolveHeader(records, DefaultConfig())

	assert.True(t, res.DropLeadColumn)
}

func TestResolveHeaderEmptyDocument(t *testing.T) {
	res := ResolveHeader(nil, DefaultConfig())

	assert.Equal(t, 0, res.HeaderIndex)
	assert.Equal(t, 0, res.DataStart)
}
