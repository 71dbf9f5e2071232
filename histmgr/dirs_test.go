package histmgr

import (
	"testing"

	"github.com/joshuapare/histkit/outfile"
	"github.com/stretchr/testify/require"
)

func TestResolveDir(t *testing.T) {
	out := newOutput(t, "out.yaml")
	m, _ := newManager(t, out)

	ab := m.ResolveDir("a/b")
	require.Equal(t, "a/b", ab.Path())
	require.Equal(t, "a", ab.Parent().Name())
	require.Same(t, out.Dir, ab.Parent().Parent())

	require.Same(t, out.Dir, m.ResolveDir(""))
	require.Same(t, out.Dir, m.ResolveDir("   "))
	require.Same(t, ab, m.ResolveDir("a/b"))
	require.Same(t, ab, m.ResolveDir(" a / b /"))

	a, _ := out.Subdir("a")
	require.Len(t, a.Subdirs(), 1)
	require.Len(t, out.Subdirs(), 1)
}

func TestResolveDir_FailureFallsBackToParent(t *testing.T) {
	out := newOutput(t, "out.yaml")
	m, sink := newManager(t, out)

	d := m.ResolveDir("a/bad\x01name/c")
	require.Equal(t, "a", d.Path())
	require.Len(t, sink.errorsContaining(t, outfile.ErrInvalidName.Error()), 1)
}

func TestAddIn_BlankDirIsTopLevel(t *testing.T) {
	out := newOutput(t, "out.yaml")
	m, _ := newManager(t, out)

	require.True(t, m.AddHisto1DIn("  ", "h", "", 1, 0, 1, "TH1F"))
	m.WriteAll(false)
	_, ok := out.Get("h")
	require.True(t, ok)
	require.Empty(t, out.Subdirs())
}
