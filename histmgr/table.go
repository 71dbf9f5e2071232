package histmgr

import (
	"github.com/joshuapare/histkit/hist"
	"github.com/joshuapare/histkit/outfile"
)

// entry is one registered object with the directory it is written to.
type entry[T hist.Object] struct {
	obj T
	// dir is the resolved output directory, nil until resolved.
	dir *outfile.Dir
	// path is the configured sub-directory, "" for the top level.
	path string
}

// table is a name-keyed collection that remembers insertion order.
type table[T hist.Object] struct {
	entries []*entry[T]
	byName  map[string]*entry[T]
}

func newTable[T hist.Object]() *table[T] {
	return &table[T]{byName: make(map[string]*entry[T])}
}

func (t *table[T]) has(name string) bool {
	_, ok := t.byName[name]
	return ok
}

// add stores e. The caller checks has first.
func (t *table[T]) add(e *entry[T]) {
	t.entries = append(t.entries, e)
	t.byName[e.obj.Name()] = e
}

func (t *table[T]) get(name string) (T, bool) {
	e, ok := t.byName[name]
	if !ok {
		var zero T
		return zero, false
	}
	return e.obj, true
}

func (t *table[T]) lookup(name string) (*entry[T], bool) {
	e, ok := t.byName[name]
	return e, ok
}

func (t *table[T]) len() int { return len(t.entries) }

func (t *table[T]) names() []string {
	out := make([]string, 0, len(t.entries))
	for _, e := range t.entries {
		out = append(out, e.obj.Name())
	}
	return out
}

func (t *table[T]) reset() {
	t.entries = nil
	t.byName = make(map[string]*entry[T])
}
