package todo

import (
	"context"
	"fmt"
	"strings"

	"github.com/hay-kot/todo/internal/core/task"
)

var searchMenu = []string{
	"",
	"Search Tasks",
	"1. By keyword",
	"2. By due date (YYYY-MM-DD)",
	"3. By priority (High/Medium/Low)",
	"4. Completed tasks",
	"5. Incomplete tasks",
}

// Search asks for a search type and criterion and prints the matching
// tasks numbered from 1 within the result.
func (m *Manager) Search(ctx context.Context) error {
	if len(m.tasks) == 0 {
		m.console.Println("No tasks to search.")
		return nil
	}

	for _, line := range searchMenu {
		m.console.Println(line)
	}

	choice, err := m.console.ReadLine("Choose search type (1-5): ")
	if err != nil {
		return err
	}

	var filter task.Filter
	switch strings.TrimSpace(choice) {
	case "1":
		keyword, err := m.console.ReadLine("Enter keyword to search: ")
		if err != nil {
			return err
		}
		filter = task.ByKeyword(keyword)
	case "2":
		date, err := m.console.ReadLine("Enter due date (YYYY-MM-DD): ")
		if err != nil {
			return err
		}
		filter = task.ByDueDate(date)
	case "3":
		input, err := m.console.ReadLine(fmt.Sprintf("Enter priority (%s): ", task.PromptLabels()))
		if err != nil {
			return err
		}
		p, err := task.ParsePriority(input)
		if err != nil {
			m.fail("Invalid priority.")
			return nil
		}
		filter = task.ByPriority(p)
	case "4":
		filter = task.ByDone(true)
	case "5":
		filter = task.ByDone(false)
	default:
		m.fail("Invalid choice.")
		return nil
	}

	results := task.Apply(m.tasks, filter)
	if len(results) == 0 {
		m.console.Println("No matching tasks found.")
		return nil
	}

	m.console.Println()
	m.console.Println(m.styles.Render(m.styles.Header, fmt.Sprintf("Found %d matching task(s):", len(results))))
	m.printList(results)
	return nil
}
