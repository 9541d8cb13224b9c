package sheet

import (
	"regexp"
	"sort"
	"strings"
)

// Binding ties one canonical field to the sheet column that feeds it.
type Binding struct {
	Header string // raw header text as it appeared in the sheet
	Index  int    // column index within the header record
}

// ColumnBinding is the resolved mapping from canonical fields to a
// sheet's actual columns, computed once per ingestion run. At most one
// column binds a given field and a column is consumed by at most one
// field.
type ColumnBinding struct {
	fields map[Field]Binding
}

// Lookup returns the binding for a canonical field, if any column
// resolved to it.
func (b ColumnBinding) Lookup(f Field) (Binding, bool) {
	bind, ok := b.fields[f]
	return bind, ok
}

// Len reports how many canonical fields resolved.
func (b ColumnBinding) Len() int { return len(b.fields) }

// Resolved lists the bound canonical fields, sorted for stable
// diagnostics output.
func (b ColumnBinding) Resolved() []string {
	out := make([]string, 0, len(b.fields))
	for f := range b.fields {
		out = append(out, string(f))
	}
	sort.Strings(out)
	return out
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// NormalizeHeader canonicalizes a raw header string for matching: trim,
// strip one pair of wrapping quotes, lowercase, collapse whitespace runs
// to a single underscore.
func NormalizeHeader(h string) string {
	s := stripWrappingQuotes(strings.TrimSpace(h))
	s = strings.ToLower(strings.TrimSpace(s))
	return whitespaceRun.ReplaceAllString(s, "_")
}

func stripWrappingQuotes(s string) string {
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

// MatchColumns resolves a header record against a canonical field set.
//
// Two passes, in priority order: exact alias matches first, for every
// field, then substring keywords for whatever is still unresolved. Within
// a pass the first matching header in document order wins, and a header
// claimed by one field leaves candidacy for all others.
func MatchColumns(header []string, fields []Field, cfg Config) ColumnBinding {
	normalized := make([]string, len(header))
	for i, h := range header {
		normalized[i] = NormalizeHeader(h)
	}
	claimed := make([]bool, len(header))
	out := ColumnBinding{fields: make(map[Field]Binding, len(fields))}

	for _, f := range fields {
		aliases := cfg.Aliases[f]
		for i, n := range normalized {
			if claimed[i] || n == "" {
				continue
			}
			if containsString(aliases, n) {
				out.fields[f] = Binding{Header: header[i], Index: i}
				claimed[i] = true
				break
			}
		}
	}

	for _, f := range fields {
		if _, ok := out.fields[f]; ok {
			continue
		}
		keywords := cfg.Keywords[f]
		if len(keywords) == 0 {
			continue
		}
		for i, n := range normalized {
			if claimed[i] || n == "" {
				continue
			}
			if containsAnySubstring(n, keywords) {
				out.fields[f] = Binding{Header: header[i], Index: i}
				claimed[i] = true
				break
			}
		}
	}

	return out
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func containsAnySubstring(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
