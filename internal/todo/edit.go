package todo

import (
	"context"
	"fmt"
	"strings"

	"github.com/hay-kot/todo/internal/core/task"
)

// Edit lists the tasks, selects one and prompts for a replacement of each
// field. All three answers are read before any is applied; a blank answer
// keeps the field and a rejected date or priority leaves only that field
// unchanged.
func (m *Manager) Edit(ctx context.Context) error {
	m.printList(m.tasks)

	idx, ok, err := m.selectTask()
	if err != nil || !ok {
		return err
	}

	t := &m.tasks[idx]
	m.console.Println("Editing task: " + t.Description)

	currentDue := t.DueDate
	if currentDue == "" {
		currentDue = "None"
	}

	desc, err := m.console.ReadLine(fmt.Sprintf("New description (press Enter to keep '%s'): ", t.Description))
	if err != nil {
		return err
	}
	due, err := m.console.ReadLine(fmt.Sprintf("New due date (YYYY-MM-DD, press Enter to keep '%s'): ", currentDue))
	if err != nil {
		return err
	}
	prio, err := m.console.ReadLine(fmt.Sprintf("New priority (%s, press Enter to keep '%s'): ", task.PromptLabels(), t.Priority))
	if err != nil {
		return err
	}

	if desc = strings.TrimSpace(desc); desc != "" {
		t.Description = desc
	}

	if due = strings.TrimSpace(due); due != "" {
		normalized, err := task.NormalizeDate(due)
		if err != nil {
			m.fail("Invalid date format. Due date not updated.")
		} else {
			t.DueDate = normalized
		}
	}

	if prio = strings.TrimSpace(prio); prio != "" {
		p, err := task.ParsePriority(prio)
		if err != nil {
			m.fail("Invalid priority. Priority not updated.")
		} else {
			t.Priority = p
		}
	}

	m.log.Debug().Ctx(ctx).Int("index", idx+1).Str("task", t.Description).Msg("task edited")
	m.ok("Task updated.")
	return nil
}
