package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/todo/internal/todo"
)

// MenuCmd runs the interactive menu. It is the root action rather than a
// named subcommand.
type MenuCmd struct {
	flags *Flags
	app   *todo.App

	noReminders bool
}

// NewMenuCmd creates the interactive menu command.
func NewMenuCmd(flags *Flags, app *todo.App) *MenuCmd {
	return &MenuCmd{flags: flags, app: app}
}

// Flags returns the menu flags, registered on the root command.
func (cmd *MenuCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:        "no-reminders",
			Usage:       "skip the reminder block shown before the first menu",
			Destination: &cmd.noReminders,
		},
	}
}

// Run starts the menu on the root command's reader and writer.
func (cmd *MenuCmd) Run(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() > 0 {
		return fmt.Errorf("unknown command %q. Run 'todo --help' for usage", c.Args().First())
	}

	root := c.Root()
	m := cmd.app.NewManager(root.Reader, root.Writer)

	return m.Run(ctx, todo.RunOptions{
		Reminders: cmd.app.Config.Reminders && !cmd.noReminders,
	})
}
