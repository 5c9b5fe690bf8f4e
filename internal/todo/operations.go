package todo

import (
	"context"
	"fmt"
	"strings"

	"github.com/hay-kot/todo/internal/core/task"
)

// View prints the full task list.
func (m *Manager) View(ctx context.Context) error {
	m.printList(m.tasks)
	return nil
}

func (m *Manager) printList(tasks []task.Task) {
	for _, line := range FormatList(tasks, m.today(), m.styles) {
		m.console.Println(line)
	}
}

// Add prompts for a new task and appends it. A blank description or an
// unparseable due date aborts without changing the list; an unknown
// priority becomes medium.
func (m *Manager) Add(ctx context.Context) error {
	desc, err := m.console.ReadLine("Enter the task: ")
	if err != nil {
		return err
	}
	desc = strings.TrimSpace(desc)
	if desc == "" {
		m.fail("Empty task not added.")
		return nil
	}

	dueInput, err := m.console.ReadLine("Enter due date (YYYY-MM-DD) or leave blank: ")
	if err != nil {
		return err
	}

	var due string
	if dueInput = strings.TrimSpace(dueInput); dueInput != "" {
		due, err = task.NormalizeDate(dueInput)
		if err != nil {
			m.fail("Invalid date format. Task not added.")
			return nil
		}
	}

	prioInput, err := m.console.ReadLine(fmt.Sprintf("Enter priority (%s, default %s): ", task.PromptLabels(), task.PriorityMedium.Label()))
	if err != nil {
		return err
	}

	t, err := task.New(desc, due, task.ParsePriorityOrDefault(prioInput))
	if err != nil {
		m.log.Error().Ctx(ctx).Err(err).Msg("rejected new task")
		m.fail("Task not added.")
		return nil
	}

	m.tasks = append(m.tasks, t)
	m.log.Debug().Ctx(ctx).Str("task", t.Description).Str("priority", string(t.Priority)).Msg("task added")
	m.ok("Task added.")
	return nil
}

// MarkDone lists the tasks and marks the selected one as done.
func (m *Manager) MarkDone(ctx context.Context) error {
	m.printList(m.tasks)

	idx, ok, err := m.selectTask()
	if err != nil || !ok {
		return err
	}

	m.tasks[idx].Done = true
	m.log.Debug().Ctx(ctx).Int("index", idx+1).Msg("task marked done")
	m.ok("Task marked as done.")
	return nil
}

// Remove lists the tasks and deletes the selected one. Later tasks shift
// down by one position.
func (m *Manager) Remove(ctx context.Context) error {
	m.printList(m.tasks)

	idx, ok, err := m.selectTask()
	if err != nil || !ok {
		return err
	}

	removed := m.tasks[idx]
	m.tasks = append(m.tasks[:idx], m.tasks[idx+1:]...)
	m.log.Debug().Ctx(ctx).Int("index", idx+1).Str("task", removed.Description).Msg("task removed")
	m.console.Println("Removed task: " + removed.Description)
	return nil
}

// ShowReminders prints overdue and due-today reminders for pending tasks.
// Nothing is printed when there are none.
func (m *Manager) ShowReminders(ctx context.Context) {
	lines := FormatReminders(task.Reminders(m.tasks, m.now()), m.styles)
	if len(lines) == 0 {
		return
	}

	m.console.Println()
	for _, line := range lines {
		m.console.Println(line)
	}
}
