// Package interptest provides a scripted console for testing programs
// without a terminal.
package interptest

import (
	"io"

	"github.com/aretw0/vine/pkg/interp"
)

// Op kinds recorded by Console.
const (
	OpWrite = "write"
	OpRead  = "read"
)

// Op is one recorded console operation.
type Op struct {
	Kind string
	Text string
}

// Console is an interp.Console that serves reads from a fixed script and
// records every operation in order. Once the script is exhausted ReadLine
// reports io.EOF, like a closed stdin.
type Console struct {
	// WriteErr, when set, makes every WriteLine fail without recording.
	WriteErr error
	// ReadErr, when set, makes every ReadLine fail without consuming.
	ReadErr error

	script []string
	trace  []Op
}

var _ interp.Console = (*Console)(nil)

// New creates a console that will serve the given lines, in order.
func New(lines ...string) *Console {
	return &Console{script: append([]string(nil), lines...)}
}

func (c *Console) WriteLine(text string) error {
	if c.WriteErr != nil {
		return c.WriteErr
	}
	c.trace = append(c.trace, Op{Kind: OpWrite, Text: text})
	return nil
}

func (c *Console) ReadLine() (string, error) {
	if c.ReadErr != nil {
		return "", c.ReadErr
	}
	if len(c.script) == 0 {
		return "", io.EOF
	}
	line := c.script[0]
	c.script = c.script[1:]
	c.trace = append(c.trace, Op{Kind: OpRead, Text: line})
	return line, nil
}

// Trace returns a copy of the operations recorded so far, in order.
func (c *Console) Trace() []Op {
	return append([]Op(nil), c.trace...)
}

// Writes returns only the written lines, in order.
func (c *Console) Writes() []string {
	var lines []string
	for _, op := range c.trace {
		if op.Kind == OpWrite {
			lines = append(lines, op.Text)
		}
	}
	return lines
}

// Remaining reports how many scripted lines were never served.
func (c *Console) Remaining() int {
	return len(c.script)
}
