package interp

import (
	"io"
	"log/slog"
)

// Option defines a functional option for configuring a run.
type Option func(*Interpreter)

// WithConsole runs the program against a custom console.
// It takes precedence over WithInput and WithOutput.
func WithConsole(c Console) Option {
	return func(in *Interpreter) {
		in.Console = c
	}
}

// WithInput sets the reader backing the default console.
func WithInput(r io.Reader) Option {
	return func(in *Interpreter) {
		in.Input = r
	}
}

// WithOutput sets the writer backing the default console.
func WithOutput(w io.Writer) Option {
	return func(in *Interpreter) {
		in.Output = w
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(in *Interpreter) {
		in.Logger = logger
	}
}

// WithHooks configures effect observers.
func WithHooks(hooks Hooks) Option {
	return func(in *Interpreter) {
		in.Hooks = hooks
	}
}
