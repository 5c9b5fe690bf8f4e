package task

import "strings"

// Filter selects tasks. Results keep list order.
type Filter func(Task) bool

// Apply returns the tasks matching f.
func Apply(tasks []Task, f Filter) []Task {
	var out []Task
	for _, t := range tasks {
		if f(t) {
			out = append(out, t)
		}
	}
	return out
}

// ByKeyword matches a case-insensitive substring of the description.
func ByKeyword(keyword string) Filter {
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	return func(t Task) bool {
		return strings.Contains(strings.ToLower(t.Description), keyword)
	}
}

// ByDueDate matches the stored due date exactly. Tasks without a due date
// never match.
func ByDueDate(date string) Filter {
	date = strings.TrimSpace(date)
	return func(t Task) bool {
		return t.HasDueDate() && t.DueDate == date
	}
}

// ByPriority matches the stored priority exactly.
func ByPriority(p Priority) Filter {
	return func(t Task) bool {
		return t.Priority == p
	}
}

// ByDone matches tasks whose done flag equals done.
func ByDone(done bool) Filter {
	return func(t Task) bool {
		return t.Done == done
	}
}
