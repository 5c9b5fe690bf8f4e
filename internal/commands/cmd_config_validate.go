package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/todo/internal/todo"
	"github.com/hay-kot/todo/pkg/iojson"
)

type ConfigValidateCmd struct {
	flags  *Flags
	app    *todo.App
	format string
}

type validationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// NewConfigValidateCmd creates a new config validate command.
func NewConfigValidateCmd(flags *Flags, app *todo.App) *ConfigValidateCmd {
	return &ConfigValidateCmd{flags: flags, app: app}
}

// Register adds the config validate command to the application.
func (cmd *ConfigValidateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "Validate configuration file",
				UsageText:   "todo config validate [options]",
				Description: "Validates the configuration file and checks that the task file path is usable.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "format",
						Usage:       "output format (text, json)",
						Value:       "text",
						Destination: &cmd.format,
					},
				},
				Action: cmd.run,
			},
		},
	})

	return app
}

func (cmd *ConfigValidateCmd) run(ctx context.Context, c *cli.Command) error {
	cfg := *cmd.flags.Config
	cfg.DataFile = cmd.flags.ResolveDataFile()

	errs := collectErrors(cfg.ValidateDeep(cmd.flags.ConfigPath))
	out := c.Root().Writer

	if cmd.format == "json" {
		result := struct {
			Valid    bool              `json:"valid"`
			Config   string            `json:"config"`
			DataFile string            `json:"data_file"`
			Errors   []validationError `json:"errors,omitempty"`
		}{
			Valid:    len(errs) == 0,
			Config:   cmd.flags.ConfigPath,
			DataFile: cfg.DataFile,
			Errors:   errs,
		}
		if err := iojson.WriteWith(out, c.Root().ErrWriter, result); err != nil {
			return err
		}
		if len(errs) > 0 {
			return cli.Exit("", 1)
		}
		return nil
	}

	st := cmd.app.Styles
	for _, e := range errs {
		_, _ = fmt.Fprintln(out, st.Render(st.Error, fmt.Sprintf("%s: %s", e.Field, e.Message)))
	}

	if len(errs) == 0 {
		_, _ = fmt.Fprintln(out, st.Render(st.Success, "Configuration is valid"))
		_, _ = fmt.Fprintf(out, "  Config: %s\n", cmd.flags.ConfigPath)
		_, _ = fmt.Fprintf(out, "  Task file: %s\n", cfg.DataFile)
		return nil
	}

	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprintln(out, st.Render(st.Error, fmt.Sprintf("%d error(s) found", len(errs))))
	return cli.Exit("", 1)
}

func collectErrors(err error) []validationError {
	if err == nil {
		return nil
	}

	var fieldErrs criterio.FieldErrors
	if !errors.As(err, &fieldErrs) {
		return []validationError{{Field: "config", Message: err.Error()}}
	}

	out := make([]validationError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, validationError{Field: fe.Field, Message: fe.Err.Error()})
	}
	return out
}
