package sheet

import (
	"regexp"
	"strings"
)

// HeaderResolution reports which tokenized record is the header row and
// where the data starts.
type HeaderResolution struct {
	HeaderIndex int
	DataStart   int

	// DropLeadColumn is set when the header's first field is malformed
	// (over-long or question-mark-bearing export junk). The first value of
	// every data record is dropped along with it.
	DropLeadColumn bool

	// Degraded is set when record 0 looked like data but no plausible
	// header was found within the scan bound. Ingestion proceeds with
	// record 0 as header; most rows are expected to fail validation.
	Degraded bool
}

// dataLikePattern matches header fields that are really data: form-export
// prefixes, survey answers, bare numbers.
var dataLikePattern = regexp.MustCompile(`^(_|what_|to_|solar|electricity|bill)|^\d+$`)

func looksLikeData(record []string) bool {
	for _, f := range record {
		if dataLikePattern.MatchString(strings.ToLower(strings.TrimSpace(f))) {
			return true
		}
	}
	return false
}

// plausibleHeader requires email, phone and name (or "full") tokens to
// appear together somewhere in the record's field text.
func plausibleHeader(record []string) bool {
	joined := strings.ToLower(strings.Join(record, "|"))
	return strings.Contains(joined, "email") &&
		strings.Contains(joined, "phone") &&
		(strings.Contains(joined, "name") || strings.Contains(joined, "full"))
}

// ResolveHeader picks the header record for a tokenized document.
//
// Record 0 is the default. When it looks like data, the first record
// within the scan bound that carries email, phone and name tokens wins.
// If none does, record 0 stands and the resolution is marked degraded
// rather than failing the whole sync.
func ResolveHeader(records [][]string, cfg Config) HeaderResolution {
	res := HeaderResolution{HeaderIndex: 0, DataStart: 1}
	if len(records) == 0 {
		res.DataStart = 0
		return res
	}

	if looksLikeData(records[0]) {
		found := false
		limit := cfg.HeaderScanLimit
		if limit <= 0 || limit > len(records) {
			limit = len(records)
		}
		for i := 0; i < limit; i++ {
			if plausibleHeader(records[i]) {
				res.HeaderIndex = i
				res.DataStart = i + 1
				found = true
				break
			}
		}
		if !found {
			res.Degraded = true
		}
	}

	header := records[res.HeaderIndex]
	if len(header) > 0 {
		res.DropLeadColumn = malformedLeadColumn(header[0], cfg)
	}

	return res
}

// malformedLeadColumn decides whether the first header field is export
// noise. Over-long fields always are. Question-mark-bearing fields (form
// questions) are kept when some canonical field could still claim them,
// e.g. "what_type_of_property?" feeding company.
func malformedLeadColumn(first string, cfg Config) bool {
	if len(first) > cfg.MaxLeadColumnLen {
		return true
	}
	if !strings.Contains(first, "?") {
		return false
	}
	normalized := NormalizeHeader(first)
	for _, aliases := range cfg.Aliases {
		for _, a := range aliases {
			if normalized == a {
				return false
			}
		}
	}
	for _, keywords := range cfg.Keywords {
		for _, k := range keywords {
			if strings.Contains(normalized, k) {
				return false
			}
		}
	}
	return true
}
