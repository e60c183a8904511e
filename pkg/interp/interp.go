package interp

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/vine"
)

// Interpreter holds the configuration for a run. Options mutate it before
// the walk starts; the zero value interprets against stdin/stdout with
// logging discarded.
type Interpreter struct {
	// Console performs the program's effects. When nil, a LineConsole over
	// Input and Output is used.
	Console Console
	// Input and Output back the default console. Ignored when Console is set.
	Input  io.Reader
	Output io.Writer
	// Logger receives one debug record per interpreted node.
	Logger *slog.Logger
	// Hooks observe effects after they succeed.
	Hooks Hooks
}

// Hooks are optional callbacks fired during a run, after the corresponding
// console call succeeded. Nil callbacks are skipped.
type Hooks struct {
	OnWrite func(text string)
	OnRead  func(line string)
}

// Run interprets p to completion and returns its result.
//
// The walk is a plain loop: a Write emits its line and advances, a Read
// pulls one line and resumes the continuation, a Done stops. The first
// console error aborts the run with a zero result and the wrapped cause;
// effects already performed stay performed.
func Run[T any](p vine.Program[T], opts ...Option) (T, error) {
	in := &Interpreter{}
	for _, opt := range opts {
		opt(in)
	}
	console := in.Console
	if console == nil {
		console = NewLineConsole(in.Input, in.Output)
	}
	logger := in.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	var zero T
	for {
		switch node := p.(type) {
		case *vine.Write[T]:
			if err := console.WriteLine(node.Text); err != nil {
				return zero, fmt.Errorf("write line: %w", err)
			}
			if in.Hooks.OnWrite != nil {
				in.Hooks.OnWrite(node.Text)
			}
			logger.Debug("wrote line", "text", node.Text)
			p = node.Next
		case *vine.Read[T]:
			line, err := console.ReadLine()
			if err != nil {
				return zero, fmt.Errorf("read line: %w", err)
			}
			if in.Hooks.OnRead != nil {
				in.Hooks.OnRead(line)
			}
			logger.Debug("read line", "line", line)
			p = node.Resume(line)
		case *vine.Done[T]:
			logger.Debug("program done", "value", node.Value)
			return node.Value, nil
		default:
			return zero, fmt.Errorf("invalid program node %T", p)
		}
	}
}
