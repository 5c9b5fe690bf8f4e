package todo

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/hay-kot/todo/internal/core/config"
	"github.com/hay-kot/todo/internal/core/styles"
	"github.com/hay-kot/todo/internal/core/task"
)

// App holds the dependencies shared by all commands. It is populated once
// the configuration has been loaded.
type App struct {
	Config *config.Config
	Store  task.Store
	Styles styles.Styles
	Log    zerolog.Logger

	// Now defaults to time.Now when nil.
	Now func() time.Time
}

// Clock returns the configured clock.
func (a *App) Clock() func() time.Time {
	if a.Now == nil {
		return time.Now
	}
	return a.Now
}

// NewManager builds a Manager over the app's store using the given streams.
func (a *App) NewManager(in io.Reader, out io.Writer) *Manager {
	return NewManager(a.Store, NewConsole(in, out), a.Log,
		WithClock(a.Clock()),
		WithStyles(a.Styles),
	)
}

// LoadForUpdate returns the stored list for a caller that will save it back.
// Stores that implement task.StrictLoader fail here instead of degrading to
// an empty list, so a damaged file is never overwritten.
func (a *App) LoadForUpdate(ctx context.Context) ([]task.Task, error) {
	sl, ok := a.Store.(task.StrictLoader)
	if !ok {
		return a.Store.Load(ctx), nil
	}

	tasks, err := sl.LoadStrict(ctx)
	if err != nil {
		return nil, fmt.Errorf("task file not changed: %w", err)
	}
	return tasks, nil
}
