package outfile

import (
	"path/filepath"
	"testing"

	"github.com/joshuapare/histkit/hist"
	"github.com/stretchr/testify/require"
)

// newTestFile creates a writable YAML-backed file in a temp dir.
func newTestFile(t *testing.T) *File {
	t.Helper()
	f, err := Create(filepath.Join(t.TempDir(), "out.yaml"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func newTestH1(t *testing.T, name string) *hist.H1 {
	t.Helper()
	h, err := hist.NewH1(hist.TH1F, name, "title "+name, 10, 0, 10)
	require.NoError(t, err)
	return h
}

func TestDir_MkdirAll_Nests(t *testing.T) {
	f := newTestFile(t)

	sub, err := f.MkdirAll("a/b")
	require.NoError(t, err)
	require.Equal(t, "b", sub.Name())
	require.Equal(t, "a/b", sub.Path())
	require.Equal(t, "a", sub.Parent().Name())
	require.True(t, sub.Parent().Parent().IsRoot())
	require.Same(t, f.Dir, sub.Parent().Parent())
}

func TestDir_MkdirAll_ReusesExisting(t *testing.T) {
	f := newTestFile(t)

	first, err := f.MkdirAll("a/b")
	require.NoError(t, err)
	second, err := f.MkdirAll("a/b")
	require.NoError(t, err)
	require.Same(t, first, second)

	a, ok := f.Subdir("a")
	require.True(t, ok)
	require.Len(t, a.Subdirs(), 1)
	require.Len(t, f.Subdirs(), 1)
}

func TestDir_MkdirAll_BlankPathIsSelf(t *testing.T) {
	f := newTestFile(t)

	for _, p := range []string{"", "   ", "/", " / / "} {
		d, err := f.MkdirAll(p)
		require.NoError(t, err)
		require.Same(t, f.Dir, d, "path %q", p)
	}
	require.Empty(t, f.Subdirs())
}

func TestDir_MkdirAll_TrimsSegments(t *testing.T) {
	f := newTestFile(t)

	d, err := f.MkdirAll(" data // sub ")
	require.NoError(t, err)
	require.Equal(t, "data/sub", d.Path())

	again, ok := f.Lookup("data/sub")
	require.True(t, ok)
	require.Same(t, d, again)
}

func TestDir_Mkdir_Errors(t *testing.T) {
	f := newTestFile(t)

	_, err := f.Mkdir("x")
	require.NoError(t, err)

	_, err = f.Mkdir("x")
	require.ErrorIs(t, err, ErrExists)

	for _, bad := range []string{"", ".", "..", "a/b", "tab\there"} {
		_, err = f.Mkdir(bad)
		require.ErrorIs(t, err, ErrInvalidName, "name %q", bad)
	}
}

func TestDir_Lookup_Missing(t *testing.T) {
	f := newTestFile(t)
	_, err := f.MkdirAll("a")
	require.NoError(t, err)

	_, ok := f.Lookup("a/b")
	require.False(t, ok)
	_, ok = f.Subdir("b")
	require.False(t, ok)
}

func TestDir_Put_CycleBumps(t *testing.T) {
	f := newTestFile(t)
	h := newTestH1(t, "h1")

	require.NoError(t, f.Put(h))
	rec, ok := f.Get("h1")
	require.True(t, ok)
	require.Equal(t, 1, rec.Cycle)
	require.Equal(t, hist.TH1F, rec.Kind)
	require.Equal(t, "title h1", rec.Title)
	require.Contains(t, string(rec.Payload), "/h1")

	h.Fill(1, 1)
	require.NoError(t, f.Put(h))
	rec, ok = f.Get("h1")
	require.True(t, ok)
	require.Equal(t, 2, rec.Cycle)
	require.Equal(t, int64(1), rec.Entries)
	require.Len(t, f.Keys(), 1)
}

func TestDir_Keys_InsertionOrder(t *testing.T) {
	f := newTestFile(t)
	for _, name := range []string{"c", "a", "b"} {
		require.NoError(t, f.Put(newTestH1(t, name)))
	}

	var names []string
	for _, rec := range f.Keys() {
		names = append(names, rec.Name)
	}
	require.Equal(t, []string{"c", "a", "b"}, names)
}

func TestDir_Walk(t *testing.T) {
	f := newTestFile(t)
	_, err := f.MkdirAll("a/b")
	require.NoError(t, err)
	_, err = f.MkdirAll("c")
	require.NoError(t, err)

	var paths []string
	require.NoError(t, f.Walk(func(d *Dir) error {
		paths = append(paths, d.Path())
		return nil
	}))
	require.Equal(t, []string{"", "a", "a/b", "c"}, paths)
}

func TestSplitPath(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"  ", nil},
		{"a", []string{"a"}},
		{"a/b", []string{"a", "b"}},
		{"/a/b/", []string{"a", "b"}},
		{" a / b ", []string{"a", "b"}},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, SplitPath(tt.in), "input %q", tt.in)
	}
}
