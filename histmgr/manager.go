package histmgr

import (
	"log/slog"

	"github.com/joshuapare/histkit/hist"
	"github.com/joshuapare/histkit/outfile"
)

// Manager owns the histograms and profiles of one run.
//
// Thread safety: Manager instances are NOT thread-safe.
type Manager struct {
	out    *outfile.File
	log    *slog.Logger
	layout Layout

	h1 *table[*hist.H1]
	h2 *table[*hist.H2]
	p1 *table[*hist.Profile1D]
	p2 *table[*hist.Profile2D]
}

// New creates a Manager writing into out. out may be nil, in which case
// objects can be created and filled but every write is logged with
// ErrNoOutput and skipped until SetOutput is called.
func New(out *outfile.File, opts ...Option) *Manager {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return &Manager{
		out:    out,
		log:    o.Logger,
		layout: o.Layout,
		h1:     newTable[*hist.H1](),
		h2:     newTable[*hist.H2](),
		p1:     newTable[*hist.Profile1D](),
		p2:     newTable[*hist.Profile2D](),
	}
}

// Output returns the output file, or nil.
func (m *Manager) Output() *outfile.File { return m.out }

// SetOutput replaces the output file. Directories are resolved again in
// the new file on the next write.
func (m *Manager) SetOutput(out *outfile.File) {
	m.out = out
	detach(m.h1)
	detach(m.h2)
	detach(m.p1)
	detach(m.p2)
}

func detach[T hist.Object](t *table[T]) {
	for _, e := range t.entries {
		e.dir = nil
	}
}

// Histo1D returns the TH1F or TH1D named name.
func (m *Manager) Histo1D(name string) (*hist.H1, bool) { return m.h1.get(name) }

// Histo2D returns the TH2F or TH2D named name.
func (m *Manager) Histo2D(name string) (*hist.H2, bool) { return m.h2.get(name) }

// Profile1D returns the TProfile named name.
func (m *Manager) Profile1D(name string) (*hist.Profile1D, bool) { return m.p1.get(name) }

// Profile2D returns the TProfile2D named name.
func (m *Manager) Profile2D(name string) (*hist.Profile2D, bool) { return m.p2.get(name) }

// Lookup returns the first object named name, searching 1D histograms, 2D
// histograms, 1D profiles and 2D profiles in that order.
func (m *Manager) Lookup(name string) (hist.Object, bool) {
	if e, ok := m.h1.lookup(name); ok {
		return e.obj, true
	}
	if e, ok := m.h2.lookup(name); ok {
		return e.obj, true
	}
	if e, ok := m.p1.lookup(name); ok {
		return e.obj, true
	}
	if e, ok := m.p2.lookup(name); ok {
		return e.obj, true
	}
	return nil, false
}

// Len returns the number of objects across all collections.
func (m *Manager) Len() int {
	return m.h1.len() + m.h2.len() + m.p1.len() + m.p2.len()
}

// Names returns every object name in write order.
func (m *Manager) Names() []string {
	names := m.h1.names()
	names = append(names, m.h2.names()...)
	names = append(names, m.p1.names()...)
	return append(names, m.p2.names()...)
}

// Close releases every object. Later lookups miss. The output file is not
// closed; it belongs to the caller.
func (m *Manager) Close() {
	n := m.Len()
	m.h1.reset()
	m.h2.reset()
	m.p1.reset()
	m.p2.reset()
	m.log.Debug("released histograms", "count", n)
}
