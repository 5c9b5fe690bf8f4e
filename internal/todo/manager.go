package todo

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/hay-kot/todo/internal/core/logging"
	"github.com/hay-kot/todo/internal/core/styles"
	"github.com/hay-kot/todo/internal/core/task"
)

var (
	// ErrNotANumber is returned when a task number is not an integer.
	ErrNotANumber = errors.New("task number is not a number")
	// ErrInvalidIndex is returned when a task number is outside the list.
	ErrInvalidIndex = errors.New("task number out of range")
)

// Manager owns the in-memory task list for one session and implements
// the user-facing operations over it. Changes reach the store only
// through Save.
type Manager struct {
	store   task.Store
	console Console
	log     zerolog.Logger
	styles  styles.Styles
	now     func() time.Time

	tasks []task.Task
}

// Option configures a Manager.
type Option func(*Manager)

// WithClock overrides the source of the current date.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// WithStyles sets the output styles. Defaults to styles.Plain().
func WithStyles(s styles.Styles) Option {
	return func(m *Manager) { m.styles = s }
}

// NewManager creates a Manager with an empty task list. Call Load to read
// the persisted list.
func NewManager(store task.Store, console Console, log zerolog.Logger, opts ...Option) *Manager {
	m := &Manager{
		store:   store,
		console: console,
		log:     logging.Component(log, "todo"),
		styles:  styles.Plain(),
		now:     time.Now,
		tasks:   []task.Task{},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Load replaces the in-memory list with the persisted one.
func (m *Manager) Load(ctx context.Context) {
	m.tasks = m.store.Load(ctx)
}

// Save persists the in-memory list. Failures are logged and reported on
// the console; the returned error is for callers that need it.
func (m *Manager) Save(ctx context.Context) error {
	if err := m.store.Save(ctx, m.tasks); err != nil {
		m.log.Error().Ctx(ctx).Err(err).Msg("failed to save tasks")
		m.console.Println(m.styles.Render(m.styles.Error, fmt.Sprintf("Failed to save tasks: %v", err)))
		return err
	}
	return nil
}

// Tasks returns a copy of the current list.
func (m *Manager) Tasks() []task.Task {
	out := make([]task.Task, len(m.tasks))
	copy(out, m.tasks)
	return out
}

func (m *Manager) today() time.Time {
	return task.Day(m.now())
}

func (m *Manager) fail(msg string) {
	m.console.Println(m.styles.Render(m.styles.Error, msg))
}

func (m *Manager) ok(msg string) {
	m.console.Println(m.styles.Render(m.styles.Success, msg))
}

// ParseIndex converts a 1-based task number typed by the user into a
// 0-based index into a list of count tasks.
func ParseIndex(input string, count int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return -1, ErrNotANumber
	}
	if n < 1 || n > count {
		return -1, ErrInvalidIndex
	}
	return n - 1, nil
}

// selectTask asks for a task number. ok is false when the list is empty
// or the input was rejected; err is only set for console failures.
func (m *Manager) selectTask() (idx int, ok bool, err error) {
	if len(m.tasks) == 0 {
		return -1, false, nil
	}

	input, err := m.console.ReadLine("Enter task number: ")
	if err != nil {
		return -1, false, err
	}

	idx, err = ParseIndex(input, len(m.tasks))
	switch {
	case errors.Is(err, ErrNotANumber):
		m.fail("Please enter a valid number.")
		return -1, false, nil
	case errors.Is(err, ErrInvalidIndex):
		m.fail("Invalid task number.")
		return -1, false, nil
	}

	return idx, true, nil
}
