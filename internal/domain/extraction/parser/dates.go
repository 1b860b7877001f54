package parser

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// dateLayouts are tried strictly in order; the first layout that parses to a
// valid calendar date wins. The US form deliberately comes before the
// European one, so an ambiguous "03/04/2024" is always March 4th. Keep the
// order stable: reordering silently changes every ambiguous date in every
// upload.
var dateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"02/01/2006",
	"02-01-2006",
	"01-02-2006",
	"2006/01/02",
	"02.01.2006",
	"01.02.2006",
}

// NormalizeDate parses an arbitrary date cell. It returns the parsed date
// and true, or the zero time and false when the cell is empty or matches
// nothing. It never panics.
func NormalizeDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	// Last resort: a general-purpose parse for anything the fixed layouts
	// miss ("Jan 15, 2023", RFC 3339 timestamps, ...).
	if t, err := dateparse.ParseAny(s); err == nil {
		return t, true
	}

	return time.Time{}, false
}
