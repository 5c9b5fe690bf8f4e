// Package task defines the to-do task domain model.
package task

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrEmptyDescription is returned when a task description is blank.
	ErrEmptyDescription = errors.New("task description is empty")
	// ErrInvalidDate is returned when a due date does not match YYYY-MM-DD.
	ErrInvalidDate = errors.New("invalid date format")
	// ErrInvalidPriority is returned when a priority is not high, medium, or low.
	ErrInvalidPriority = errors.New("invalid priority")
)

// Task is a single to-do entry. Tasks have no identity beyond their
// position in the list.
type Task struct {
	Description string   `json:"task" validate:"required"`
	Done        bool     `json:"done"`
	DueDate     string   `json:"due_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Priority    Priority `json:"priority" validate:"oneof=high medium low"`
}

var validate = validator.New()

// New builds a pending task from already-parsed input and checks the
// record invariants.
func New(description, dueDate string, priority Priority) (Task, error) {
	t := Task{
		Description: strings.TrimSpace(description),
		DueDate:     dueDate,
		Priority:    priority,
	}

	if t.Description == "" {
		return Task{}, ErrEmptyDescription
	}

	if err := validate.Struct(t); err != nil {
		return Task{}, fmt.Errorf("validate task: %w", err)
	}

	return t, nil
}

// HasDueDate reports whether a due date is set.
func (t Task) HasDueDate() bool {
	return t.DueDate != ""
}

// Due parses the stored due date. Stored dates are not re-validated after
// load, so callers must handle ErrInvalidDate.
func (t Task) Due() (time.Time, error) {
	return ParseDate(t.DueDate)
}

// IsOverdue reports whether the task is not done and due strictly before
// today. Tasks without a valid due date are never overdue.
func (t Task) IsOverdue(today time.Time) bool {
	if t.Done || !t.HasDueDate() {
		return false
	}
	due, err := t.Due()
	if err != nil {
		return false
	}
	return due.Before(Day(today))
}
