package iojson

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

// FileReader decodes a JSON document of type T from the file named by its
// flag, or from piped stdin when the flag is unset.
type FileReader[T any] struct {
	inputFlagValue string
	stdin          io.Reader
	isTerminal     func() bool
}

// Flag returns the --input flag bound to the reader.
func (fr *FileReader[T]) Flag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:        "input",
		Aliases:     []string{"i"},
		Usage:       "path to JSON file (reads from stdin if not provided)",
		Destination: &fr.inputFlagValue,
	}
}

func (fr *FileReader[T]) Read() (T, error) {
	var reader io.Reader
	var input T

	if fr.inputFlagValue != "" {
		f, err := os.Open(fr.inputFlagValue)
		if err != nil {
			return input, fmt.Errorf("open file: %w", err)
		}
		defer func() { _ = f.Close() }()
		reader = f
	} else {
		if fr.stdinIsTerminal() {
			return input, fmt.Errorf("no input provided (stdin is a terminal); use -i flag or pipe JSON input")
		}
		reader = fr.stdinReader()
	}

	if err := json.NewDecoder(reader).Decode(&input); err != nil {
		return input, fmt.Errorf("decode JSON: %w", err)
	}

	return input, nil
}

func (fr *FileReader[T]) stdinReader() io.Reader {
	if fr.stdin != nil {
		return fr.stdin
	}
	return os.Stdin
}

func (fr *FileReader[T]) stdinIsTerminal() bool {
	if fr.isTerminal != nil {
		return fr.isTerminal()
	}
	if fr.stdin != nil {
		return false
	}
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// NewFileReader creates a reader that falls back to stdin. A nil stdin
// means os.Stdin.
func NewFileReader[T any](stdin io.Reader) *FileReader[T] {
	return &FileReader[T]{stdin: stdin}
}
