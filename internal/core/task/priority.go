package task

import (
	"encoding/json"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Priority is the importance of a task.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Priorities returns all priorities from highest to lowest.
func Priorities() []Priority {
	return []Priority{PriorityHigh, PriorityMedium, PriorityLow}
}

// IsValid checks if the priority is one of the known values.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	default:
		return false
	}
}

// Label returns the title-cased priority, e.g. "High".
func (p Priority) Label() string {
	return cases.Title(language.English).String(string(p))
}

// ParsePriority matches s case-insensitively after trimming whitespace.
func ParsePriority(s string) (Priority, error) {
	p := Priority(strings.ToLower(strings.TrimSpace(s)))
	if !p.IsValid() {
		return "", ErrInvalidPriority
	}
	return p, nil
}

// ParsePriorityOrDefault is ParsePriority with anything unrecognised,
// including blank input, mapped to PriorityMedium.
func ParsePriorityOrDefault(s string) Priority {
	p, err := ParsePriority(s)
	if err != nil {
		return PriorityMedium
	}
	return p
}

// PromptLabels returns "High/Medium/Low".
func PromptLabels() string {
	labels := make([]string, 0, 3)
	for _, p := range Priorities() {
		labels = append(labels, p.Label())
	}
	return strings.Join(labels, "/")
}

// UnmarshalJSON accepts any casing and falls back to medium for unknown
// values, so files written by older versions ("High") still load.
func (p *Priority) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*p = ParsePriorityOrDefault(s)
	return nil
}
