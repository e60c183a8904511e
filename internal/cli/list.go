package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/vine/internal/presentation/tui"
)

// List writes the demo gallery as markdown. With rendered set, the markdown
// goes through the TUI renderer first.
func List(w io.Writer, rendered bool) error {
	var b strings.Builder
	b.WriteString("# Demos\n\n")
	for _, demo := range Demos() {
		fmt.Fprintf(&b, "- **%s**: %s\n", demo.Name, demo.About)
	}
	b.WriteString("\nRun one with `vine run <name>`, or the whole gallery with `vine run`.\n")

	doc := b.String()
	if rendered {
		render, err := tui.NewRenderer()
		if err != nil {
			return fmt.Errorf("init renderer: %w", err)
		}
		out, err := render(doc)
		if err != nil {
			return fmt.Errorf("render demo list: %w", err)
		}
		doc = out
	}

	_, err := fmt.Fprint(w, doc)
	return err
}
