package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/hay-kot/criterio"

	"github.com/hay-kot/todo/internal/core/styles"
)

// Validate checks that the configuration values are well formed. It does
// not touch the filesystem; see ValidateDeep.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("data_file", c.DataFile, notBlank),
		criterio.Run("color", string(c.Color), validColor),
		criterio.Run("theme", c.Theme, knownTheme),
	)
}

// ValidateDeep runs Validate and then checks that the config file and the
// task file paths are usable. An empty configPath skips the config file
// check.
func (c *Config) ValidateDeep(configPath string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	return criterio.ValidateStruct(
		validateConfigFile(configPath),
		criterio.Run("data_file", c.DataFile, isFileOrNotExist),
	)
}

func notBlank(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("cannot be empty")
	}
	return nil
}

func validColor(s string) error {
	if !ColorMode(s).IsValid() {
		return fmt.Errorf("invalid color mode %q (want %q or %q)", s, ColorAuto, ColorNever)
	}
	return nil
}

func knownTheme(name string) error {
	if !slices.Contains(styles.ThemeNames(), name) {
		return fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(styles.ThemeNames(), ", "))
	}
	return nil
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}

// isFileOrNotExist validates that a path is a regular file or doesn't exist
// yet while its parent, if present, is a directory.
func isFileOrNotExist(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		parent, perr := os.Stat(filepath.Dir(path))
		if perr == nil && !parent.IsDir() {
			return fmt.Errorf("parent %s is not a directory", filepath.Dir(path))
		}
		return nil // will be created on first save
	}
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory, not a file", path)
	}
	return nil
}
