package task

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReminders(t *testing.T) {
	now := time.Date(2024, 6, 15, 9, 0, 0, 0, time.Local)

	tasks := []Task{
		{Description: "Pay rent", DueDate: "2024-06-10", Priority: PriorityHigh},
		{Description: "Call mom", DueDate: "2024-06-15", Priority: PriorityMedium},
		{Description: "Old done", DueDate: "2024-06-10", Done: true, Priority: PriorityLow},
		{Description: "Later", DueDate: "2024-06-20", Priority: PriorityLow},
		{Description: "No date", Priority: PriorityLow},
		{Description: "Garbage", DueDate: "not-a-date", Priority: PriorityLow},
	}

	got := Reminders(tasks, now)
	require.Len(t, got, 2)

	assert.Equal(t, ReminderOverdue, got[0].Kind)
	assert.Equal(t, "OVERDUE: Pay rent (was due 2024-06-10)", got[0].String())

	assert.Equal(t, ReminderDueToday, got[1].Kind)
	assert.Equal(t, "DUE TODAY: Call mom", got[1].String())
}

func TestReminders_Empty(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.Local)
	assert.Empty(t, Reminders(nil, now))
	assert.Empty(t, Reminders([]Task{{Description: "x", DueDate: "2030-01-01"}}, now))
}

func TestFilters(t *testing.T) {
	tasks := []Task{
		{Description: "Buy Milk", Priority: PriorityLow, DueDate: "2024-06-15"},
		{Description: "milkshake", Priority: PriorityHigh, Done: true},
		{Description: "Write report", Priority: PriorityLow, DueDate: "2024-06-16"},
	}

	assert.Len(t, Apply(tasks, ByKeyword("MILK")), 2)
	assert.Empty(t, Apply(tasks, ByKeyword("zzz")))

	byDate := Apply(tasks, ByDueDate("2024-06-15"))
	require.Len(t, byDate, 1)
	assert.Equal(t, "Buy Milk", byDate[0].Description)
	assert.Empty(t, Apply(tasks, ByDueDate("")))

	low := Apply(tasks, ByPriority(PriorityLow))
	require.Len(t, low, 2)
	assert.Equal(t, "Buy Milk", low[0].Description)
	assert.Equal(t, "Write report", low[1].Description)

	assert.Len(t, Apply(tasks, ByDone(true)), 1)
	assert.Len(t, Apply(tasks, ByDone(false)), 2)
}
