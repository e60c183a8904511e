package vine_test

import (
	"fmt"
	"testing"

	"github.com/aretw0/vine"
	"github.com/stretchr/testify/require"
)

func TestWriteLine(t *testing.T) {
	p := vine.WriteLine("Knock knock")

	w, ok := p.(*vine.Write[vine.Unit])
	require.True(t, ok, "WriteLine should produce a Write node")
	require.Equal(t, "Knock knock", w.Text)

	d, ok := w.Next.(*vine.Done[vine.Unit])
	require.True(t, ok, "a lone write ends right after its line")
	require.Equal(t, vine.Unit{}, d.Value)
}

func TestReadLine(t *testing.T) {
	p := vine.ReadLine()

	r, ok := p.(*vine.Read[string])
	require.True(t, ok, "ReadLine should produce a Read node")

	t.Run("Yields Line Verbatim", func(t *testing.T) {
		d, ok := r.Resume("  spaced out  ").(*vine.Done[string])
		require.True(t, ok)
		require.Equal(t, "  spaced out  ", d.Value, "input must not be trimmed")
	})

	t.Run("Yields Empty Line", func(t *testing.T) {
		d, ok := r.Resume("").(*vine.Done[string])
		require.True(t, ok)
		require.Equal(t, "", d.Value)
	})
}

func TestPure(t *testing.T) {
	d, ok := vine.Pure(42).(*vine.Done[int])
	require.True(t, ok, "Pure should produce a Done node")
	require.Equal(t, 42, d.Value)
}

func TestUnitString(t *testing.T) {
	require.Equal(t, "()", vine.Unit{}.String())
	require.Equal(t, "()", fmt.Sprint(vine.Unit{}))
}
