package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/todo/internal/core/task"
	"github.com/hay-kot/todo/internal/todo"
)

// TaskCmd implements the non-interactive task command group.
type TaskCmd struct {
	flags *Flags
	app   *todo.App

	// add flags
	addDue      string
	addPriority string
}

// NewTaskCmd creates a new task command.
func NewTaskCmd(flags *Flags, app *todo.App) *TaskCmd {
	return &TaskCmd{flags: flags, app: app}
}

// Register adds the task command to the application.
func (cmd *TaskCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "task",
		Usage: "Change tasks without the menu",
		Description: `Scriptable versions of the menu operations. Task numbers are the
ones printed by 'todo ls'.

Examples:
  todo task add "Pay rent" --due 2024-07-01 --priority high
  todo task done 2
  todo task rm 3`,
		Commands: []*cli.Command{
			cmd.addCmd(),
			cmd.doneCmd(),
			cmd.rmCmd(),
		},
	})

	return app
}

func (cmd *TaskCmd) addCmd() *cli.Command {
	return &cli.Command{
		Name:      "add",
		Usage:     "Add a task",
		UsageText: "todo task add <description...> [--due YYYY-MM-DD] [--priority high|medium|low]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "due",
				Aliases:     []string{"d"},
				Usage:       "due date (YYYY-MM-DD)",
				Destination: &cmd.addDue,
			},
			&cli.StringFlag{
				Name:        "priority",
				Aliases:     []string{"p"},
				Usage:       "priority (high, medium, low)",
				Value:       string(task.PriorityMedium),
				Destination: &cmd.addPriority,
			},
		},
		Action: cmd.runAdd,
	}
}

func (cmd *TaskCmd) doneCmd() *cli.Command {
	return &cli.Command{
		Name:      "done",
		Usage:     "Mark a task as done",
		UsageText: "todo task done <number>",
		Action:    cmd.runDone,
	}
}

func (cmd *TaskCmd) rmCmd() *cli.Command {
	return &cli.Command{
		Name:      "rm",
		Aliases:   []string{"remove"},
		Usage:     "Remove a task",
		UsageText: "todo task rm <number>",
		Action:    cmd.runRemove,
	}
}

func (cmd *TaskCmd) runAdd(ctx context.Context, c *cli.Command) error {
	var due string
	if cmd.addDue != "" {
		normalized, err := task.NormalizeDate(cmd.addDue)
		if err != nil {
			return fmt.Errorf("due date %q: %w", cmd.addDue, err)
		}
		due = normalized
	}

	priority, err := task.ParsePriority(cmd.addPriority)
	if err != nil {
		return fmt.Errorf("priority %q: %w", cmd.addPriority, err)
	}

	t, err := task.New(strings.Join(c.Args().Slice(), " "), due, priority)
	if err != nil {
		return err
	}

	tasks, err := cmd.app.LoadForUpdate(ctx)
	if err != nil {
		return err
	}

	tasks = append(tasks, t)
	if err := cmd.app.Store.Save(ctx, tasks); err != nil {
		return fmt.Errorf("save tasks: %w", err)
	}

	log.Debug().Ctx(ctx).Str("task", t.Description).Msg("task added from cli")
	_, _ = fmt.Fprintf(c.Root().Writer, "Task added: %d. %s\n", len(tasks), t.Description)
	return nil
}

func (cmd *TaskCmd) runDone(ctx context.Context, c *cli.Command) error {
	return cmd.withTask(ctx, c, func(tasks []task.Task, idx int) ([]task.Task, string) {
		tasks[idx].Done = true
		return tasks, "Task marked as done."
	})
}

func (cmd *TaskCmd) runRemove(ctx context.Context, c *cli.Command) error {
	return cmd.withTask(ctx, c, func(tasks []task.Task, idx int) ([]task.Task, string) {
		removed := tasks[idx]
		return append(tasks[:idx], tasks[idx+1:]...), "Removed task: " + removed.Description
	})
}

// withTask loads the list, resolves the task number argument, applies fn
// and saves the result.
func (cmd *TaskCmd) withTask(ctx context.Context, c *cli.Command, fn func([]task.Task, int) ([]task.Task, string)) error {
	if c.Args().Len() != 1 {
		return fmt.Errorf("expected exactly one task number")
	}

	tasks, err := cmd.app.LoadForUpdate(ctx)
	if err != nil {
		return err
	}

	idx, err := todo.ParseIndex(c.Args().First(), len(tasks))
	switch {
	case errors.Is(err, todo.ErrNotANumber):
		return fmt.Errorf("%q is not a task number", c.Args().First())
	case errors.Is(err, todo.ErrInvalidIndex):
		return fmt.Errorf("task %s does not exist (%d task(s))", c.Args().First(), len(tasks))
	}

	tasks, msg := fn(tasks, idx)
	if err := cmd.app.Store.Save(ctx, tasks); err != nil {
		return fmt.Errorf("save tasks: %w", err)
	}

	_, _ = fmt.Fprintln(c.Root().Writer, msg)
	return nil
}
