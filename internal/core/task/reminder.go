package task

import (
	"fmt"
	"time"
)

// ReminderKind classifies a reminder.
type ReminderKind string

const (
	ReminderOverdue  ReminderKind = "overdue"
	ReminderDueToday ReminderKind = "due_today"
)

// Reminder is a derived notice for a pending task that is overdue or due
// today. Reminders are never persisted.
type Reminder struct {
	Kind ReminderKind
	Task Task
}

// String renders the reminder line without the list bullet.
func (r Reminder) String() string {
	switch r.Kind {
	case ReminderOverdue:
		return fmt.Sprintf("OVERDUE: %s (was due %s)", r.Task.Description, r.Task.DueDate)
	default:
		return fmt.Sprintf("DUE TODAY: %s", r.Task.Description)
	}
}

// Reminders scans pending tasks with a due date, in list order. Tasks
// whose stored due date does not parse are skipped without error.
func Reminders(tasks []Task, now time.Time) []Reminder {
	today := Day(now)

	var out []Reminder
	for _, t := range tasks {
		if t.Done || !t.HasDueDate() {
			continue
		}

		due, err := t.Due()
		if err != nil {
			continue
		}

		switch {
		case due.Before(today):
			out = append(out, Reminder{Kind: ReminderOverdue, Task: t})
		case due.Equal(today):
			out = append(out, Reminder{Kind: ReminderDueToday, Task: t})
		}
	}
	return out
}
