// Package sheet implements the CSV ingestion pipeline: tokenizer, header
// resolver, column matcher and row mapper. It turns the messy CSV exports
// of the CRM's Google Sheets into canonical lead and salesperson drafts.
package sheet

// Sheet is one tokenized document with its header resolved and the
// malformed leading column (if any) already dropped.
type Sheet struct {
	Header     []string
	Rows       [][]string
	Resolution HeaderResolution
}

// Parse tokenizes raw CSV text and resolves its header. Data rows with no
// non-empty cell are discarded.
func Parse(text string, cfg Config) Sheet {
	records := Tokenize(text)
	res := ResolveHeader(records, cfg)

	doc := Sheet{Resolution: res}
	if len(records) == 0 {
		return doc
	}

	doc.Header = dropLead(records[res.HeaderIndex], res.DropLeadColumn)
	for i := res.DataStart; i < len(records); i++ {
		row := dropLead(records[i], res.DropLeadColumn)
		if hasContent(row) {
			doc.Rows = append(doc.Rows, row)
		}
	}
	return doc
}

// RowMaps renders the data rows as header-to-value maps, in header order,
// for the raw fetch endpoint. Columns with empty header text are skipped.
func (s Sheet) RowMaps() []map[string]string {
	out := make([]map[string]string, 0, len(s.Rows))
	for _, row := range s.Rows {
		m := make(map[string]string, len(s.Header))
		for i, h := range s.Header {
			if h == "" {
				continue
			}
			if i < len(row) {
				m[h] = row[i]
			} else {
				m[h] = ""
			}
		}
		out = append(out, m)
	}
	return out
}

func dropLead(record []string, drop bool) []string {
	if drop && len(record) > 0 {
		return record[1:]
	}
	return record
}

func hasContent(record []string) bool {
	for _, f := range record {
		if f != "" {
			return true
		}
	}
	return false
}
