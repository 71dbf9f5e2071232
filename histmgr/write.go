package histmgr

import (
	"github.com/joshuapare/histkit/hist"
	"github.com/joshuapare/histkit/outfile"
)

// WriteAll puts every object into its directory of the output file: 1D
// histograms first, then 2D histograms, 1D profiles and 2D profiles, each
// in creation order. Objects without a directory go to the top level. With
// flush set the output file is flushed to durable storage afterwards.
// Without an output file it logs ErrNoOutput and does nothing.
func (m *Manager) WriteAll(flush bool) {
	if m.out == nil {
		m.log.Warn("histograms not written", "count", m.Len(), "error", ErrNoOutput)
		return
	}

	n := writeTable(m, m.h1)
	n += writeTable(m, m.h2)
	n += writeTable(m, m.p1)
	n += writeTable(m, m.p2)
	m.log.Info("wrote histograms", "count", n, "file", m.out.Path())

	if flush {
		if err := m.out.Flush(); err != nil {
			m.log.Error("flush failed", "file", m.out.Path(), "error", err)
		}
	}
}

func writeTable[T hist.Object](m *Manager, t *table[T]) int {
	n := 0
	for _, e := range t.entries {
		if m.put(e.obj, e.target(m)) {
			n++
		}
	}
	return n
}

// Write puts the first object named name into its directory, searching
// the collections in the order of Lookup. A missing name is logged with
// ErrNotFound.
func (m *Manager) Write(name string) {
	if m.out == nil {
		m.log.Warn("histogram not written", "name", name, "error", ErrNoOutput)
		return
	}

	switch {
	case writeNamed(m, m.h1, name):
	case writeNamed(m, m.h2, name):
	case writeNamed(m, m.p1, name):
	case writeNamed(m, m.p2, name):
	default:
		m.log.Error("histogram not written", "name", name, "error", ErrNotFound)
	}
}

func writeNamed[T hist.Object](m *Manager, t *table[T], name string) bool {
	e, ok := t.lookup(name)
	if !ok {
		return false
	}
	m.put(e.obj, e.target(m))
	return true
}

// WriteTo puts the first object named name into dir. A nil dir means the
// top level of the output file.
func (m *Manager) WriteTo(name string, dir *outfile.Dir) {
	obj, ok := m.Lookup(name)
	if !ok {
		m.log.Error("histogram not written", "name", name, "error", ErrNotFound)
		return
	}
	if dir == nil {
		if m.out == nil {
			m.log.Warn("histogram not written", "name", name, "error", ErrNoOutput)
			return
		}
		dir = m.out.Dir
	}
	m.put(obj, dir)
}

func (m *Manager) put(obj hist.Object, dir *outfile.Dir) bool {
	if err := dir.Put(obj); err != nil {
		m.log.Error("histogram not written", "name", obj.Name(), "dir", displayPath(dir), "error", err)
		return false
	}
	return true
}
