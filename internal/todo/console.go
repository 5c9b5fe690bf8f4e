// Package todo implements the interactive to-do list operations and the
// menu loop that drives them.
package todo

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Console is the line-oriented input/output used by every operation.
type Console interface {
	// ReadLine writes prompt without a trailing newline and returns the next
	// input line without its line terminator. It returns io.EOF once input
	// is exhausted.
	ReadLine(prompt string) (string, error)
	Println(a ...any)
	Printf(format string, a ...any)
}

// StreamConsole is a Console over plain reader/writer streams.
type StreamConsole struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsole creates a console reading lines from in and writing to out.
func NewConsole(in io.Reader, out io.Writer) *StreamConsole {
	return &StreamConsole{in: bufio.NewReader(in), out: out}
}

func (c *StreamConsole) ReadLine(prompt string) (string, error) {
	if prompt != "" {
		_, _ = fmt.Fprint(c.out, prompt)
	}

	line, err := c.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}

func (c *StreamConsole) Println(a ...any) {
	_, _ = fmt.Fprintln(c.out, a...)
}

func (c *StreamConsole) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(c.out, format, a...)
}
