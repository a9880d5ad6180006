package importing

import (
	"strconv"
	"time"

	crerr "github.com/cockroachdb/errors"
)

// DateLayouts are the accepted spellings of a calendar date, tried in order.
var DateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006/01/02",
}

// ParseDate parses raw with DateLayouts and truncates it to the UTC day.
func ParseDate(raw string) (time.Time, error) {
	for _, layout := range DateLayouts {
		t, err := time.Parse(layout, raw)
		if err != nil {
			continue
		}
		u := t.UTC()
		return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return time.Time{}, crerr.Mark(crerr.Newf("unparsable date %q", raw), ErrParse)
}

// ParseBool accepts only the literal strings "true" and "false".
func ParseBool(raw string) (value bool, ok bool) {
	switch raw {
	case "true":
		return true, true
	case "false":
		return false, true
	default:
		return false, false
	}
}

// BoolOr returns fallback for anything ParseBool rejects.
func BoolOr(raw string, fallback bool) bool {
	if v, ok := ParseBool(raw); ok {
		return v
	}
	return fallback
}

// NonNegativeIntOr returns fallback for blank, malformed or negative values.
func NonNegativeIntOr(raw string, fallback int) int {
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return fallback
	}
	return v
}

// IntInRange returns nil for blank, malformed or out of range values.
func IntInRange(raw string, lo, hi int) *int {
	v, err := strconv.Atoi(raw)
	if err != nil || v < lo || v > hi {
		return nil
	}
	return &v
}
