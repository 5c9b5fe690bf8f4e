package task

import (
	"strings"
	"time"
)

// DateLayout is the ISO 8601 calendar date format used for due dates.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD calendar date. Out-of-range months and
// days (2024-13-40, 2024-02-30) are rejected.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return d, nil
}

// NormalizeDate validates s and returns its canonical form.
func NormalizeDate(s string) (string, error) {
	d, err := ParseDate(s)
	if err != nil {
		return "", err
	}
	return d.Format(DateLayout), nil
}

// Day truncates t to midnight UTC of its local calendar date so it
// compares directly with values from ParseDate.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
