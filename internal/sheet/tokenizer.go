package sheet

import "strings"

// Tokenize splits raw CSV text into records of string fields.
//
// Quote state is tracked across the entire document, not per line: an
// unquoted line break terminates a record, a line break inside a quoted
// field is literal content. A doubled quote inside a quoted field is an
// escaped quote. Fields are trimmed of surrounding whitespace after
// unquoting. Blank lines produce no record.
func Tokenize(text string) [][]string {
	text = strings.TrimPrefix(text, "\ufeff")

	var (
		records  [][]string
		fields   []string
		cur      strings.Builder
		inQuotes bool
		quoted   bool // current field opened with a quote
	)

	flushField := func() {
		fields = append(fields, strings.TrimSpace(cur.String()))
		cur.Reset()
		quoted = false
	}
	flushRecord := func() {
		flushField()
		// A record holding a single empty field is a blank line.
		if len(fields) == 1 && fields[0] == "" {
			fields = nil
			return
		}
		records = append(records, fields)
		fields = nil
	}

	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c == '"':
			if inQuotes {
				if i+1 < len(text) && text[i+1] == '"' {
					cur.WriteByte('"')
					i++
				} else {
					inQuotes = false
				}
			} else if !quoted && strings.TrimSpace(cur.String()) == "" {
				// Opening quote: drop any whitespace seen before it.
				cur.Reset()
				inQuotes = true
				quoted = true
			}
			// A stray quote inside an unquoted field carries no meaning.
		case c == ',' && !inQuotes:
			flushField()
		case c == '\n' && !inQuotes:
			flushRecord()
		case c == '\r' && !inQuotes:
			// Swallowed; the following \n (if any) ends the record.
		default:
			cur.WriteByte(c)
		}
	}

	if cur.Len() > 0 || len(fields) > 0 {
		flushRecord()
	}

	return records
}
