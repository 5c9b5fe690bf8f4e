package commands

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/hay-kot/todo/internal/core/config"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string

	// DataFile overrides the config's data_file when set.
	DataFile string

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config
}

// ResolveDataFile returns the task file path: the flag value when set,
// otherwise the configured one.
func (f *Flags) ResolveDataFile() string {
	if f.DataFile != "" {
		return f.DataFile
	}
	if f.Config != nil && f.Config.DataFile != "" {
		return f.Config.DataFile
	}
	return config.DefaultDataFile
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "todo", "config.yaml")
}

// DefaultLogFile returns the default log file path using the system's state directory.
// On macOS: ~/Library/Logs/todo/todo.log
// On Linux: $XDG_STATE_HOME/todo/todo.log (defaults to ~/.local/state/todo/todo.log)
func DefaultLogFile() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome != "" {
		return filepath.Join(stateHome, "todo", "todo.log")
	}

	home, _ := os.UserHomeDir()

	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Logs", "todo", "todo.log")
	}

	return filepath.Join(home, ".local", "state", "todo", "todo.log")
}
