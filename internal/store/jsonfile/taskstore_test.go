package jsonfile

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/todo/internal/core/task"
)

const testPath = "/data/todo_list.json"

func newTestStore(t *testing.T) (*TaskStore, afero.Fs) {
	t.Helper()

	fs := afero.NewMemMapFs()
	return NewTaskStore(fs, testPath, zerolog.Nop()), fs
}

func TestTaskStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	want := []task.Task{
		{Description: "Pay rent", DueDate: "2024-06-10", Priority: task.PriorityHigh},
		{Description: "Walk dog", Done: true, Priority: task.PriorityMedium},
		{Description: "Read book", Priority: task.PriorityLow, DueDate: "2024-07-01"},
	}

	require.NoError(t, s.Save(ctx, want))
	assert.Equal(t, want, s.Load(ctx))
}

func TestTaskStore_SaveFormat(t *testing.T) {
	ctx := context.Background()
	s, fs := newTestStore(t)

	require.NoError(t, s.Save(ctx, []task.Task{
		{Description: "Pay rent", DueDate: "2024-06-10", Priority: task.PriorityHigh},
		{Description: "Walk dog", Priority: task.PriorityMedium},
	}))

	data, err := afero.ReadFile(fs, testPath)
	require.NoError(t, err)

	want := `[
  {
    "task": "Pay rent",
    "done": false,
    "due_date": "2024-06-10",
    "priority": "high"
  },
  {
    "task": "Walk dog",
    "done": false,
    "due_date": null,
    "priority": "medium"
  }
]`
	assert.Equal(t, want, string(data))

	exists, err := afero.Exists(fs, testPath+".tmp")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestTaskStore_SaveEmpty(t *testing.T) {
	ctx := context.Background()
	s, fs := newTestStore(t)

	require.NoError(t, s.Save(ctx, nil))

	data, err := afero.ReadFile(fs, testPath)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
	assert.Empty(t, s.Load(ctx))
}

func TestTaskStore_LoadDegradesToEmpty(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "malformed json", content: `[{"task": "oops",`},
		{name: "object instead of array", content: `{"tasks": []}`},
		{name: "missing description", content: `[{"done": true}]`},
		{name: "empty description", content: `[{"task": ""}]`},
		{name: "wrong field type", content: `[{"task": "x", "done": "yes"}]`},
		{name: "empty file", content: ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, fs := newTestStore(t)
			require.NoError(t, afero.WriteFile(fs, testPath, []byte(tt.content), 0o644))

			got := s.Load(context.Background())
			assert.NotNil(t, got)
			assert.Empty(t, got)
		})
	}
}

func TestTaskStore_LoadMissingFile(t *testing.T) {
	s, _ := newTestStore(t)

	got := s.Load(context.Background())
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestTaskStore_LoadLegacyRecords(t *testing.T) {
	s, fs := newTestStore(t)

	// Older files: capitalised priorities, no due_date key, missing priority.
	content := `[
  {"task": "Old one", "done": true, "priority": "High"},
  {"task": "No priority", "done": false},
  {"task": "Bad date", "done": false, "due_date": "2024-99-99", "priority": "LOW"}
]`
	require.NoError(t, afero.WriteFile(fs, testPath, []byte(content), 0o644))

	got := s.Load(context.Background())
	require.Len(t, got, 3)

	assert.Equal(t, task.Task{Description: "Old one", Done: true, Priority: task.PriorityHigh}, got[0])
	assert.Equal(t, task.PriorityMedium, got[1].Priority)
	assert.Empty(t, got[1].DueDate)
	assert.Equal(t, "2024-99-99", got[2].DueDate)
	assert.Equal(t, task.PriorityLow, got[2].Priority)
}

func TestTaskStore_SaveFailure(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	s := NewTaskStore(fs, testPath, zerolog.Nop())

	err := s.Save(context.Background(), []task.Task{{Description: "x", Priority: task.PriorityLow}})
	require.Error(t, err)
}

func TestTaskStore_LoadStrict(t *testing.T) {
	ctx := context.Background()

	t.Run("missing file", func(t *testing.T) {
		s, _ := newTestStore(t)

		got, err := s.LoadStrict(ctx)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("valid file", func(t *testing.T) {
		s, _ := newTestStore(t)
		want := []task.Task{{Description: "Walk dog", Priority: task.PriorityMedium}}
		require.NoError(t, s.Save(ctx, want))

		got, err := s.LoadStrict(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("bad record", func(t *testing.T) {
		s, fs := newTestStore(t)
		content := `[{"task": "a", "done": false}, {"task": "b", "done": "false"}]`
		require.NoError(t, afero.WriteFile(fs, testPath, []byte(content), 0o644))

		got, err := s.LoadStrict(ctx)
		require.Error(t, err)
		assert.Nil(t, got)
		assert.Empty(t, s.Load(ctx))
	})
}
