package histmgr

import (
	"strings"

	"github.com/joshuapare/histkit/hist"
	"github.com/joshuapare/histkit/outfile"
)

// ResolveDir returns the directory at the slash-separated path below the
// top level of the output file, creating missing directories and reusing
// existing ones. Blank segments are ignored and a blank path yields the top
// level. If a segment cannot be created the failure is logged and the
// deepest directory reached so far is returned. Without an output file it
// logs ErrNoOutput and returns nil.
func (m *Manager) ResolveDir(path string) *outfile.Dir {
	if m.out == nil {
		m.log.Warn("directory not resolved", "dir", path, "error", ErrNoOutput)
		return nil
	}

	cur := m.out.Dir
	for _, seg := range outfile.SplitPath(path) {
		if sub, ok := cur.Subdir(seg); ok {
			cur = sub
			continue
		}
		sub, err := cur.Mkdir(seg)
		if err != nil {
			m.log.Error("cannot create directory, using parent",
				"dir", path, "segment", seg, "parent", displayPath(cur), "error", err)
			return cur
		}
		cur = sub
	}
	return cur
}

func newEntry[T hist.Object](m *Manager, obj T, path string) *entry[T] {
	e := &entry[T]{obj: obj, path: strings.TrimSpace(path)}
	if m.out != nil {
		e.dir = m.ResolveDir(e.path)
	}
	return e
}

// target returns the directory e is written to, resolving it on first use.
// The caller guarantees an output file.
func (e *entry[T]) target(m *Manager) *outfile.Dir {
	if e.dir == nil {
		e.dir = m.ResolveDir(e.path)
	}
	if e.dir == nil {
		return m.out.Dir
	}
	return e.dir
}

func displayPath(d *outfile.Dir) string {
	if d.IsRoot() {
		return outfile.PathSeparator
	}
	return d.Path()
}
