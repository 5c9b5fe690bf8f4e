package todo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/todo/internal/core/task"
)

func TestManager_Edit(t *testing.T) {
	existing := pending("Write report", "2024-07-01", task.PriorityMedium)

	tests := []struct {
		name     string
		input    string
		want     task.Task
		messages []string
	}{
		{
			name:  "blank answers keep every field",
			input: "1\n\n\n\n",
			want:  existing,
		},
		{
			name:  "all fields replaced",
			input: "1\nWrite final report\n2024-08-01\nhigh\n",
			want:  pending("Write final report", "2024-08-01", task.PriorityHigh),
		},
		{
			name:     "invalid date keeps date only",
			input:    "1\nWrite memo\n2024-13-40\nLOW\n",
			want:     pending("Write memo", "2024-07-01", task.PriorityLow),
			messages: []string{"Invalid date format. Due date not updated."},
		},
		{
			name:     "invalid priority keeps priority only",
			input:    "1\n\n2024-09-09\nurgent\n",
			want:     pending("Write report", "2024-09-09", task.PriorityMedium),
			messages: []string{"Invalid priority. Priority not updated."},
		},
		{
			name:  "both rejected",
			input: "1\n\nsoon\nurgent\n",
			want:  existing,
			messages: []string{
				"Invalid date format. Due date not updated.",
				"Invalid priority. Priority not updated.",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, out, _ := newTestManager(t, tt.input, existing)

			require.NoError(t, m.Edit(context.Background()))

			assert.Equal(t, []task.Task{tt.want}, m.Tasks())
			assert.Contains(t, out.String(), "Editing task: Write report\n")
			for _, msg := range tt.messages {
				assert.Contains(t, out.String(), msg+"\n")
			}
			assert.Contains(t, out.String(), "Task updated.\n")
		})
	}
}

func TestManager_Edit_Prompts(t *testing.T) {
	m, out, _ := newTestManager(t, "1\n\n\n\n", pending("Read", "", task.PriorityLow))

	require.NoError(t, m.Edit(context.Background()))

	assert.Contains(t, out.String(), "New description (press Enter to keep 'Read'): ")
	assert.Contains(t, out.String(), "New due date (YYYY-MM-DD, press Enter to keep 'None'): ")
	assert.Contains(t, out.String(), "New priority (High/Medium/Low, press Enter to keep 'low'): ")
}

func TestManager_Edit_KeepsDoneFlag(t *testing.T) {
	done := task.Task{Description: "Ship", Done: true, Priority: task.PriorityHigh}
	m, _, _ := newTestManager(t, "1\nShip it\n\n\n", done)

	require.NoError(t, m.Edit(context.Background()))

	got := m.Tasks()[0]
	assert.True(t, got.Done)
	assert.Equal(t, "Ship it", got.Description)
}
