package todo

import (
	"fmt"
	"time"

	"github.com/hay-kot/todo/internal/core/styles"
	"github.com/hay-kot/todo/internal/core/task"
)

// MsgNoTasks is printed instead of an empty listing.
const MsgNoTasks = "No tasks found."

// FormatTask renders one listing line:
//
//	<n>. [<glyph>] <description> [Priority: <priority>]<due suffix>
func FormatTask(n int, t task.Task, today time.Time, st styles.Styles) string {
	glyph, desc := styles.IconPending, t.Description
	if t.Done {
		glyph, desc = styles.IconDone, st.Render(st.Muted, t.Description)
	}

	return fmt.Sprintf("%d. [%s] %s [Priority: %s]%s", n, glyph, desc, t.Priority, dueSuffix(t, today, st))
}

func dueSuffix(t task.Task, today time.Time, st styles.Styles) string {
	if !t.HasDueDate() {
		return ""
	}

	due, err := t.Due()
	if err != nil {
		return " (Due: " + t.DueDate + st.Render(st.Warning, " - INVALID DATE") + ")"
	}

	if !t.Done && due.Before(task.Day(today)) {
		return " (Due: " + t.DueDate + st.Render(st.Error, " - OVERDUE") + ")"
	}

	return " (Due: " + t.DueDate + ")"
}

// FormatList renders tasks numbered from 1. An empty list renders as the
// single MsgNoTasks line.
func FormatList(tasks []task.Task, today time.Time, st styles.Styles) []string {
	if len(tasks) == 0 {
		return []string{MsgNoTasks}
	}

	lines := make([]string, 0, len(tasks))
	for i, t := range tasks {
		lines = append(lines, FormatTask(i+1, t, today, st))
	}
	return lines
}

// FormatReminders renders the reminder block, or nothing when there are
// no reminders.
func FormatReminders(reminders []task.Reminder, st styles.Styles) []string {
	if len(reminders) == 0 {
		return nil
	}

	lines := make([]string, 0, len(reminders)+1)
	lines = append(lines, st.Render(st.Header, "Reminders:"))
	for _, r := range reminders {
		lines = append(lines, "- "+r.String())
	}
	return lines
}
