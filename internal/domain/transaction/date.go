package transaction

import (
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar date without a time component.
//
// Its JSON form is "yyyy-mm-dd". Decoding is lenient: RFC 3339 timestamps are
// accepted (review UIs tend to echo back whatever they received), and values
// that parse as neither become the zero Date rather than a decode error.
// The validation gate treats a zero Date as "date missing" and drops the
// record, which keeps the silent-drop policy intact for hand-edited rows.
type Date struct {
	t time.Time
}

// NewDate truncates t to its calendar date.
func NewDate(t time.Time) Date {
	return Date{t: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// Time returns the underlying time at midnight UTC.
func (d Date) Time() time.Time { return d.t }

// IsZero reports whether the date is unset.
func (d Date) IsZero() bool { return d.t.IsZero() }

// Equal reports whether two dates name the same calendar day.
func (d Date) Equal(other Date) bool { return d.t.Equal(other.t) }

func (d Date) String() string {
	if d.t.IsZero() {
		return ""
	}
	return d.t.Format(dateLayout)
}

// MarshalJSON encodes the date as "yyyy-mm-dd", or null when unset.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.t.Format(dateLayout) + `"`), nil
}

// UnmarshalJSON decodes "yyyy-mm-dd" or RFC 3339 strings. Null and
// unparseable values yield the zero Date.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" || len(s) < 2 || s[0] != '"' {
		d.t = time.Time{}
		return nil
	}
	s = s[1 : len(s)-1]
	for _, layout := range []string{dateLayout, time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			*d = NewDate(t)
			return nil
		}
	}
	d.t = time.Time{}
	return nil
}
