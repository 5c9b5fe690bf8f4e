package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/todo/internal/commands"
	"github.com/hay-kot/todo/internal/core/config"
	"github.com/hay-kot/todo/internal/core/logging"
	"github.com/hay-kot/todo/internal/store/jsonfile"
	"github.com/hay-kot/todo/internal/todo"
	"github.com/hay-kot/todo/pkg/logutils"
	"github.com/hay-kot/todo/pkg/randid"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, build() falls back
	// to runtime/debug.BuildInfo instead.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	v, c, d := version, commit, date

	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	short := c
	if len(c) > 7 {
		short = c[:7]
	}

	return fmt.Sprintf("%s (%s) %s", v, short, d)
}

func main() {
	ctx := context.Background()

	var (
		logCloser func()
		todoApp   = &todo.App{}
	)

	flags := &commands.Flags{}

	app := &cli.Command{
		Name:      "todo",
		Usage:     "Keep a to-do list in a JSON file",
		UsageText: "todo [global options] [command [command options]]",
		Description: `A console to-do list with due dates, priorities and reminders.

Run 'todo' with no arguments to open the interactive menu.
Run 'todo ls' or 'todo remind' for one-shot output.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic, disabled)",
				Sources:     cli.EnvVars("TODO_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file",
				Sources:     cli.EnvVars("TODO_LOG_FILE"),
				Value:       commands.DefaultLogFile(),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("TODO_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "file",
				Aliases:     []string{"f"},
				Usage:       "path to the task file (overrides data_file from the config)",
				Sources:     cli.EnvVars("TODO_FILE"),
				Destination: &flags.DataFile,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger, closer, err := logutils.New(flags.LogLevel, flags.LogFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger.Hook(logging.ContextHook{})
			logCloser = closer

			command := c.Args().First()
			if command == "" {
				command = "menu"
			}
			ctx = logging.WithRunID(ctx, randid.Generate(8))
			ctx = logging.WithCommand(ctx, command)

			// config validate reports invalid values itself.
			load := config.Load
			if command == "config" {
				load = config.Read
			}

			cfg, err := load(flags.ConfigPath)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}
			flags.Config = cfg

			dataFile := flags.ResolveDataFile()
			st := commands.SelectStyles(c.Root().Writer, cfg)
			log.Debug().
				Ctx(ctx).
				Str("config", flags.ConfigPath).
				Str("data_file", dataFile).
				Str("color", string(cfg.Color)).
				Bool("styled", st.Enabled()).
				Msg("config loaded")

			*todoApp = todo.App{
				Config: cfg,
				Store:  jsonfile.NewTaskStore(afero.NewOsFs(), dataFile, log.Logger),
				Styles: st,
				Log:    log.Logger,
			}

			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	menuCmd := commands.NewMenuCmd(flags, todoApp)

	app = commands.NewLsCmd(flags, todoApp).Register(app)
	app = commands.NewRemindCmd(flags, todoApp).Register(app)
	app = commands.NewTaskCmd(flags, todoApp).Register(app)
	app = commands.NewImportCmd(flags, todoApp).Register(app)
	app = commands.NewConfigValidateCmd(flags, todoApp).Register(app)

	app.Flags = append(app.Flags, menuCmd.Flags()...)

	// Interactive menu when no subcommand is provided
	app.Action = menuCmd.Run

	exitCode := 0
	runErr := app.Run(ctx, os.Args)
	if runErr != nil {
		fmt.Println()
		fmt.Println(runErr.Error())
		exitCode = 1
	}

	os.Exit(exitCode)
}
