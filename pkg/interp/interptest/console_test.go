package interptest

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConsole_ScriptAndTrace(t *testing.T) {
	con := New("a", "b")

	require.NoError(t, con.WriteLine("hi"))
	line, err := con.ReadLine()
	require.NoError(t, err)
	require.Equal(t, "a", line)
	require.Equal(t, 1, con.Remaining())

	require.Equal(t, []Op{
		{Kind: OpWrite, Text: "hi"},
		{Kind: OpRead, Text: "a"},
	}, con.Trace())
	require.Equal(t, []string{"hi"}, con.Writes())
}

func TestConsole_ExhaustedScriptReportsEOF(t *testing.T) {
	con := New()
	_, err := con.ReadLine()
	require.ErrorIs(t, err, io.EOF)
}

func TestConsole_InjectedErrors(t *testing.T) {
	errWrite := errors.New("write broken")
	errRead := errors.New("read broken")
	con := New("unused")
	con.WriteErr = errWrite
	con.ReadErr = errRead

	require.ErrorIs(t, con.WriteLine("x"), errWrite)
	_, err := con.ReadLine()
	require.ErrorIs(t, err, errRead)

	require.Empty(t, con.Trace(), "failed calls are not recorded")
	require.Equal(t, 1, con.Remaining(), "failed reads consume nothing")
}
