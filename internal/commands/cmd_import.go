package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/todo/internal/core/task"
	"github.com/hay-kot/todo/internal/todo"
	"github.com/hay-kot/todo/pkg/iojson"
)

// importRecord mirrors the on-disk task record, so a task file from
// another machine can be imported as is.
type importRecord struct {
	Task     string  `json:"task"`
	Done     bool    `json:"done"`
	DueDate  *string `json:"due_date"`
	Priority string  `json:"priority"`
}

// rejection explains why one import record was skipped. Record is 1-based.
type rejection struct {
	Record int
	Err    error
}

func (r rejection) String() string {
	return fmt.Sprintf("record %d: %v", r.Record, r.Err)
}

type ImportCmd struct {
	flags  *Flags
	app    *todo.App
	reader *iojson.FileReader[[]importRecord]
	json   bool
}

// NewImportCmd creates a new import command
func NewImportCmd(flags *Flags, app *todo.App) *ImportCmd {
	return &ImportCmd{flags: flags, app: app, reader: iojson.NewFileReader[[]importRecord](nil)}
}

// Register adds the import command to the application
func (cmd *ImportCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "import",
		Usage:     "Append tasks from a JSON task file",
		UsageText: "todo import [-i file.json] < tasks.json",
		Description: `Reads a JSON array of task records, in the same format as the task file,
and appends the valid ones to the current list. Invalid records are reported
and skipped; unknown priorities become medium. With --json each skipped
record is reported on stderr as a JSON error document.

The current task file must load cleanly; a damaged file is left untouched.`,
		Flags: []cli.Flag{
			cmd.reader.Flag(),
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "report skipped records as JSON",
				Destination: &cmd.json,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ImportCmd) run(ctx context.Context, c *cli.Command) error {
	records, err := cmd.reader.Read()
	if err != nil {
		return err
	}

	imported, skipped := convertRecords(records)
	if err := cmd.reportSkipped(c, skipped); err != nil {
		return err
	}

	if len(imported) == 0 {
		_, _ = fmt.Fprintln(c.Root().Writer, "No tasks imported.")
		return nil
	}

	tasks, err := cmd.app.LoadForUpdate(ctx)
	if err != nil {
		return err
	}

	tasks = append(tasks, imported...)
	if err := cmd.app.Store.Save(ctx, tasks); err != nil {
		return fmt.Errorf("save tasks: %w", err)
	}

	log.Info().Ctx(ctx).Int("imported", len(imported)).Int("skipped", len(skipped)).Msg("tasks imported")
	_, _ = fmt.Fprintf(c.Root().Writer, "Imported %d task(s).\n", len(imported))
	return nil
}

func (cmd *ImportCmd) reportSkipped(c *cli.Command, skipped []rejection) error {
	ew := c.Root().ErrWriter
	for _, r := range skipped {
		if !cmd.json {
			_, _ = fmt.Fprintln(ew, r.String())
			continue
		}

		err := iojson.WriteError(ew, "record skipped", map[string]any{
			"record": r.Record,
			"error":  r.Err.Error(),
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// convertRecords validates records with the same rules as Add. It returns
// the accepted tasks and one rejection per skipped record.
func convertRecords(records []importRecord) ([]task.Task, []rejection) {
	var (
		tasks   []task.Task
		skipped []rejection
	)

	for i, r := range records {
		var due string
		if r.DueDate != nil && strings.TrimSpace(*r.DueDate) != "" {
			normalized, err := task.NormalizeDate(*r.DueDate)
			if err != nil {
				skipped = append(skipped, rejection{Record: i + 1, Err: fmt.Errorf("due date %q: %w", *r.DueDate, err)})
				continue
			}
			due = normalized
		}

		t, err := task.New(r.Task, due, task.ParsePriorityOrDefault(r.Priority))
		if err != nil {
			skipped = append(skipped, rejection{Record: i + 1, Err: err})
			continue
		}
		t.Done = r.Done
		tasks = append(tasks, t)
	}

	return tasks, skipped
}
