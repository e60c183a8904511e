package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/vine"
	"github.com/aretw0/vine/internal/logging"
	"github.com/aretw0/vine/internal/presentation/tui"
	"github.com/aretw0/vine/pkg/interp"
)

// RunOptions contains all the configuration for the run command.
type RunOptions struct {
	// Names selects demos by name. Empty means the whole gallery.
	Names []string
	// Debug enables step logging on stderr.
	Debug bool
	// Banner prints the TUI banner before the first demo.
	Banner bool
	// Input and Output default to Stdin and Stdout.
	Input  io.Reader
	Output io.Writer
}

// Execute handles the run command logic: it interprets the selected demos
// in order against one shared console and prints each result followed by a
// separator line.
func Execute(opts RunOptions) error {
	logger := createLogger(opts.Debug)
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	demos, err := selectDemos(opts.Names)
	if err != nil {
		return err
	}

	if opts.Banner {
		tui.PrintBanner(out, vine.Version)
	}

	// One console for the whole gallery, so consecutive demos consume
	// their input lines from a single buffered stream.
	console := interp.NewLineConsole(opts.Input, out)

	for _, demo := range demos {
		fmt.Fprintf(out, "%s:\n", demo.Name)

		var writes, reads int
		runOpts := []interp.Option{
			interp.WithConsole(console),
			interp.WithHooks(interp.Hooks{
				OnWrite: func(string) { writes++ },
				OnRead:  func(string) { reads++ },
			}),
		}
		if opts.Debug {
			runOpts = append(runOpts, interp.WithLogger(logger))
		}

		value, err := demo.run(runOpts...)
		if err != nil {
			return fmt.Errorf("demo %s: %w", demo.Name, err)
		}
		logger.Debug("Demo finished", "demo", demo.Name, "writes", writes, "reads", reads)

		fmt.Fprintln(out, value)
		fmt.Fprintln(out, "----------")
	}
	return nil
}

func selectDemos(names []string) ([]Demo, error) {
	gallery := Demos()
	if len(names) == 0 {
		return gallery, nil
	}

	byName := make(map[string]Demo, len(gallery))
	for _, demo := range gallery {
		byName[demo.Name] = demo
	}

	picked := make([]Demo, 0, len(names))
	for _, name := range names {
		demo, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("unknown demo %q (try 'vine list')", name)
		}
		picked = append(picked, demo)
	}
	return picked, nil
}

// createLogger configures the application logger.
// In debug mode it writes to Stderr, to stay out of the Stdout transcript.
func createLogger(debug bool) *slog.Logger {
	if debug {
		return logging.New(true)
	}
	return logging.Nop()
}
