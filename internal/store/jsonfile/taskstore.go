// Package jsonfile implements task persistence as a single JSON file.
package jsonfile

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/spf13/afero"

	"github.com/hay-kot/todo/internal/core/logging"
	"github.com/hay-kot/todo/internal/core/task"
)

//go:embed schema.json
var schemaSource string

var schema = jsonschema.MustCompileString("schema.json", schemaSource)

// record is the on-disk shape of a task. DueDate is a pointer so an
// absent date is written as null.
type record struct {
	Task     string  `json:"task"`
	Done     bool    `json:"done"`
	DueDate  *string `json:"due_date"`
	Priority string  `json:"priority"`
}

// TaskStore implements task.Store over a JSON array file. Every Save
// rewrites the whole file.
type TaskStore struct {
	fs   afero.Fs
	path string
	log  zerolog.Logger
}

// NewTaskStore creates a store for the file at path on fs.
func NewTaskStore(fs afero.Fs, path string, log zerolog.Logger) *TaskStore {
	return &TaskStore{
		fs:   fs,
		path: path,
		log:  logging.Component(log, "task-store").With().Str("path", path).Logger(),
	}
}

// Load returns every task in file order. A missing, unreadable, or
// malformed file yields an empty list.
func (s *TaskStore) Load(ctx context.Context) []task.Task {
	tasks, err := s.load()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.log.Debug().Ctx(ctx).Msg("task file not found, starting empty")
		} else {
			s.log.Warn().Err(err).Ctx(ctx).Msg("failed to load tasks, starting empty")
		}
		return []task.Task{}
	}

	s.log.Debug().Int("count", len(tasks)).Ctx(ctx).Msg("loaded tasks")
	return tasks
}

// LoadStrict is Load for callers about to overwrite the file. A missing
// file yields an empty list; any other failure is returned so the caller
// can refuse to save over tasks it never read.
func (s *TaskStore) LoadStrict(ctx context.Context) ([]task.Task, error) {
	tasks, err := s.load()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []task.Task{}, nil
		}
		s.log.Error().Err(err).Ctx(ctx).Msg("task file could not be loaded")
		return nil, err
	}
	return tasks, nil
}

// Save overwrites the file with tasks, pretty-printed with two-space
// indentation.
func (s *TaskStore) Save(ctx context.Context, tasks []task.Task) error {
	records := make([]record, 0, len(tasks))
	for _, t := range tasks {
		r := record{
			Task:     t.Description,
			Done:     t.Done,
			Priority: string(t.Priority),
		}
		if t.HasDueDate() {
			due := t.DueDate
			r.DueDate = &due
		}
		records = append(records, r)
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode tasks: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." && dir != "" {
		if err := s.fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	tmp := s.path + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}

	if err := s.fs.Rename(tmp, s.path); err != nil {
		_ = s.fs.Remove(tmp)
		return fmt.Errorf("replace %s: %w", s.path, err)
	}

	s.log.Debug().Int("count", len(tasks)).Ctx(ctx).Msg("saved tasks")
	return nil
}

func (s *TaskStore) load() ([]task.Task, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		return nil, err
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}

	if err := schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("validate %s: %w", s.path, err)
	}

	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}

	tasks := make([]task.Task, 0, len(records))
	for _, r := range records {
		t := task.Task{
			Description: r.Task,
			Done:        r.Done,
			Priority:    task.ParsePriorityOrDefault(r.Priority),
		}
		if r.DueDate != nil {
			t.DueDate = *r.DueDate
		}
		tasks = append(tasks, t)
	}

	return tasks, nil
}
