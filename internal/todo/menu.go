package todo

import (
	"context"
	"errors"
	"io"
	"strings"
)

var mainMenu = []string{
	"",
	"To-Do List Menu",
	"1. View tasks",
	"2. Add task",
	"3. Mark task as done",
	"4. Remove task",
	"5. Edit task",
	"6. Exit",
	"7. Search tasks",
}

// RunOptions controls a menu session.
type RunOptions struct {
	// Reminders prints the reminder block once before the first menu.
	Reminders bool
}

// Run loads the task list and drives the menu until the user exits or
// input ends. The list is saved on exit either way. A failed save is
// reported on the console and logged but does not fail the session.
func (m *Manager) Run(ctx context.Context, opts RunOptions) error {
	m.Load(ctx)
	m.log.Debug().Ctx(ctx).Int("tasks", len(m.tasks)).Msg("session started")

	if opts.Reminders {
		m.ShowReminders(ctx)
	}

	actions := map[string]func(context.Context) error{
		"1": m.View,
		"2": m.Add,
		"3": m.MarkDone,
		"4": m.Remove,
		"5": m.Edit,
		"7": m.Search,
	}

	for {
		if err := ctx.Err(); err != nil {
			_ = m.Save(ctx)
			return err
		}

		for _, line := range mainMenu {
			m.console.Println(m.menuLine(line))
		}

		choice, err := m.console.ReadLine("Choose an option (1-7): ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				m.console.Println()
				return m.exit(ctx)
			}
			return err
		}

		choice = strings.TrimSpace(choice)
		if choice == "6" {
			return m.exit(ctx)
		}

		action, ok := actions[choice]
		if !ok {
			m.fail("Invalid choice.")
			continue
		}

		if err := action(ctx); err != nil {
			if errors.Is(err, io.EOF) {
				m.console.Println()
				return m.exit(ctx)
			}
			return err
		}
	}
}

func (m *Manager) menuLine(line string) string {
	if line == "To-Do List Menu" {
		return m.styles.Render(m.styles.Header, line)
	}
	return line
}

func (m *Manager) exit(ctx context.Context) error {
	_ = m.Save(ctx)
	m.console.Println("Goodbye!")
	return nil
}
