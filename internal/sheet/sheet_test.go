package sheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSimpleSheet(t *testing.T) {
	doc := Parse("Full Name,Email,Phone\nJohn Doe,john@x.com,555-1111\n", DefaultConfig())

	assert.Equal(t, []string{"Full Name", "Email", "Phone"}, doc.Header)
	require.Len(t, doc.Rows, 1)
	assert.Equal(t, []string{"John Doe", "john@x.com", "555-1111"}, doc.Rows[0])
	assert.False(t, doc.Resolution.Degraded)
}

func TestParseDropsEmptyRows(t *testing.T) {
	doc := Parse("Full Name,Email,Phone\nJohn,j@x.com,555\n,,\nJane,ja@x.com,556\n", DefaultConfig())

	assert.Len(t, doc.Rows, 2)
}

func TestParseDropsMalformedLeadColumn(t *testing.T) {
	long := "What do you want to achieve by going solar and how much is your average electricity spend"
	doc := Parse(long+",Full Name,Email,Phone\nanswer,John,j@x.com,555\n", DefaultConfig())

	assert.Equal(t, []string{"Full Name", "Email", "Phone"}, doc.Header)
	require.Len(t, doc.Rows, 1)
	assert.Equal(t, []string{"John", "j@x.com", "555"}, doc.Rows[0])
}

func TestParseEmptyDocument(t *testing.T) {
	doc := Parse("", DefaultConfig())

	assert.Empty(t, doc.Header)
	assert.Empty(t, doc.Rows)
}

func TestRowMaps(t *testing.T) {
	doc := Parse("Name,Email,\nJohn,j@x.com,x\nJane,ja@x.com\n", DefaultConfig())

	maps := doc.RowMaps()

	require.Len(t, maps, 2)
	assert.Equal(t, map[string]string{"Name": "John", "Email": "j@x.com"}, maps[0])
	// Short row pads missing columns with empty values.
	assert.Equal(t, map[string]string{"Name": "Jane", "Email": "ja@x.com"}, maps[1])
}
