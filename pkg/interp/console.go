package interp

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Console is the pair of primitive effects a program can ask for.
// Implementations are not safe for concurrent use; an interpreter owns its
// console for the whole run.
type Console interface {
	// WriteLine emits text followed by a single line terminator.
	WriteLine(text string) error

	// ReadLine blocks until a full line is available and returns it without
	// the terminator. It returns io.EOF when input is exhausted.
	ReadLine() (string, error)
}

// LineConsole is a Console over an io.Reader and io.Writer pair.
type LineConsole struct {
	Reader *bufio.Reader
	Writer io.Writer
}

// NewLineConsole creates a console for line-based text IO.
// A nil reader or writer falls back to os.Stdin or os.Stdout.
func NewLineConsole(r io.Reader, w io.Writer) *LineConsole {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	return &LineConsole{
		Reader: bufio.NewReader(r),
		Writer: w,
	}
}

func (c *LineConsole) WriteLine(text string) error {
	_, err := fmt.Fprintln(c.Writer, text)
	return err
}

// ReadLine strips only the terminator ("\n" or "\r\n"). Surrounding
// whitespace is content and stays in the line.
func (c *LineConsole) ReadLine() (string, error) {
	line, err := c.Reader.ReadString('\n')
	switch {
	case err == nil:
	case errors.Is(err, io.EOF) && line != "":
		// A final line without its terminator still counts as a line.
		// The next read reports io.EOF.
	default:
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}
