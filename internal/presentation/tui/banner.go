package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the ASCII art banner for Vine, with the version below.
func PrintBanner(w io.Writer, version string) {
	p := termenv.ColorProfile()
	// Leafy gradient (green into teal)
	rows := []struct {
		art string
		hex string
	}{
		{"        _            ", "#86efac"},
		{" __   _(_)_ __   ___ ", "#4ade80"},
		{" \\ \\ / / | '_ \\ / _ \\", "#34d399"},
		{"  \\ V /| | | | |  __/", "#2dd4bf"},
		{"   \\_/ |_|_| |_|\\___|", "#14b8a6"},
	}

	fmt.Fprintln(w)
	for _, row := range rows {
		fmt.Fprintln(w, termenv.String(row.art).Foreground(p.Color(row.hex)))
	}
	fmt.Fprintf(w, "   programs as data, v%s\n\n", version)
}
