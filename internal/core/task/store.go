package task

import "context"

// Store defines whole-list task persistence.
type Store interface {
	// Load returns all persisted tasks in list order. Implementations
	// degrade to an empty list instead of failing.
	Load(ctx context.Context) []Task

	// Save replaces the persisted list with tasks.
	Save(ctx context.Context, tasks []Task) error
}

// StrictLoader is implemented by stores that can report why a list could
// not be loaded. A store that has nothing persisted yet returns an empty
// list and no error.
type StrictLoader interface {
	LoadStrict(ctx context.Context) ([]Task, error)
}
