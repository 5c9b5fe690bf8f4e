package todo

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/todo/internal/core/task"
)

// strictStore reports load failures through LoadStrict.
type strictStore struct {
	memStore
	loadErr error
}

func (s *strictStore) LoadStrict(context.Context) ([]task.Task, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	return append([]task.Task{}, s.loaded...), nil
}

func TestApp_LoadForUpdate(t *testing.T) {
	ctx := context.Background()
	existing := []task.Task{pending("Pay rent", "", task.PriorityHigh)}

	t.Run("plain store", func(t *testing.T) {
		app := &App{Store: &memStore{loaded: existing}}

		got, err := app.LoadForUpdate(ctx)
		require.NoError(t, err)
		assert.Equal(t, existing, got)
	})

	t.Run("strict store", func(t *testing.T) {
		app := &App{Store: &strictStore{memStore: memStore{loaded: existing}}}

		got, err := app.LoadForUpdate(ctx)
		require.NoError(t, err)
		assert.Equal(t, existing, got)
	})

	t.Run("strict store failure", func(t *testing.T) {
		loadErr := errors.New("validate todo_list.json: bad record")
		app := &App{Store: &strictStore{loadErr: loadErr}}

		_, err := app.LoadForUpdate(ctx)
		require.ErrorIs(t, err, loadErr)
		assert.Contains(t, err.Error(), "task file not changed")
	})
}
