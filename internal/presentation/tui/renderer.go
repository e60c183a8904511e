package tui

import (
	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders markdown using glamour.
func NewRenderer() (func(string) (string, error), error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Detect light/dark background
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return nil, err
	}
	return r.Render, nil
}
