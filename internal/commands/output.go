package commands

import (
	"io"
	"os"

	"golang.org/x/term"

	"github.com/hay-kot/todo/internal/core/config"
	"github.com/hay-kot/todo/internal/core/styles"
)

// SelectStyles returns colored styles only when color is allowed by the
// config and w is a terminal.
func SelectStyles(w io.Writer, cfg *config.Config) styles.Styles {
	if cfg == nil || cfg.Color == config.ColorNever || !isTerminal(w) {
		return styles.Plain()
	}
	return styles.New(w, cfg.Palette())
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
