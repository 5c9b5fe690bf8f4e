package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/todo/internal/core/task"
	"github.com/hay-kot/todo/internal/todo"
	"github.com/hay-kot/todo/pkg/iojson"
)

type RemindCmd struct {
	flags *Flags
	app   *todo.App

	jsonOutput bool
}

type reminderInfo struct {
	Kind    task.ReminderKind `json:"kind"`
	Task    string            `json:"task"`
	DueDate string            `json:"due_date"`
}

// NewRemindCmd creates a new remind command
func NewRemindCmd(flags *Flags, app *todo.App) *RemindCmd {
	return &RemindCmd{flags: flags, app: app}
}

// Register adds the remind command to the application
func (cmd *RemindCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "remind",
		Usage:     "Show overdue and due-today tasks",
		UsageText: "todo remind [--json]",
		Description: `Prints the reminder block shown when the menu starts and exits.
Nothing is printed when no pending task is overdue or due today.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON lines",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *RemindCmd) run(ctx context.Context, c *cli.Command) error {
	reminders := task.Reminders(cmd.app.Store.Load(ctx), cmd.app.Clock()())
	out := c.Root().Writer

	if cmd.jsonOutput {
		for _, r := range reminders {
			info := reminderInfo{Kind: r.Kind, Task: r.Task.Description, DueDate: r.Task.DueDate}
			if err := iojson.WriteLine(out, info); err != nil {
				return fmt.Errorf("encode reminder: %w", err)
			}
		}
		return nil
	}

	for _, line := range todo.FormatReminders(reminders, cmd.app.Styles) {
		_, _ = fmt.Fprintln(out, line)
	}
	return nil
}
