package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/todo/internal/core/task"
	"github.com/hay-kot/todo/internal/todo"
	"github.com/hay-kot/todo/pkg/iojson"
)

// Status filters for ls.
const (
	StatusAll     = "all"
	StatusDone    = "done"
	StatusPending = "pending"
)

type LsCmd struct {
	flags *Flags
	app   *todo.App

	// flags
	jsonOutput bool
	status     string
}

// taskInfo is the JSON line written per task by ls --json.
type taskInfo struct {
	Index    int           `json:"index"`
	Task     string        `json:"task"`
	Done     bool          `json:"done"`
	DueDate  *string       `json:"due_date"`
	Priority task.Priority `json:"priority"`
	Overdue  bool          `json:"overdue"`
}

// NewLsCmd creates a new ls command
func NewLsCmd(flags *Flags, app *todo.App) *LsCmd {
	return &LsCmd{flags: flags, app: app}
}

// Register adds the ls command to the application
func (cmd *LsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "ls",
		Usage:     "List tasks",
		UsageText: "todo ls [--json] [--status all|done|pending]",
		Description: `Prints the task list the same way the menu's "View tasks" does.

Task numbers always refer to the position in the full list, so they can be
used with the menu and with 'todo task' even when --status hides some tasks.

Use --json for one JSON object per line.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON lines",
				Destination: &cmd.jsonOutput,
			},
			&cli.StringFlag{
				Name:        "status",
				Aliases:     []string{"s"},
				Usage:       "filter by status (all, done, pending)",
				Value:       StatusAll,
				Destination: &cmd.status,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *LsCmd) run(ctx context.Context, c *cli.Command) error {
	keep, err := statusFilter(cmd.status)
	if err != nil {
		return err
	}

	tasks := cmd.app.Store.Load(ctx)
	today := task.Day(cmd.app.Clock()())
	out := c.Root().Writer

	printed := 0
	for i, t := range tasks {
		if !keep(t) {
			continue
		}
		printed++

		if cmd.jsonOutput {
			if err := iojson.WriteLine(out, newTaskInfo(i+1, t, today)); err != nil {
				return fmt.Errorf("encode task: %w", err)
			}
			continue
		}

		_, _ = fmt.Fprintln(out, todo.FormatTask(i+1, t, today, cmd.app.Styles))
	}

	if printed == 0 && !cmd.jsonOutput {
		_, _ = fmt.Fprintln(out, todo.MsgNoTasks)
	}

	return nil
}

func statusFilter(status string) (task.Filter, error) {
	switch status {
	case "", StatusAll:
		return func(task.Task) bool { return true }, nil
	case StatusDone:
		return task.ByDone(true), nil
	case StatusPending:
		return task.ByDone(false), nil
	default:
		return nil, fmt.Errorf("invalid status %q: must be one of all, done, pending", status)
	}
}

func newTaskInfo(index int, t task.Task, today time.Time) taskInfo {
	info := taskInfo{
		Index:    index,
		Task:     t.Description,
		Done:     t.Done,
		Priority: t.Priority,
		Overdue:  t.IsOverdue(today),
	}
	if t.HasDueDate() {
		due := t.DueDate
		info.DueDate = &due
	}
	return info
}
