package outfile

import (
	"fmt"
	"strings"

	"github.com/joshuapare/histkit/hist"
)

// PathSeparator separates directory names in a path.
const PathSeparator = "/"

// Record is the stored form of one object inside a directory.
type Record struct {
	Name    string
	Title   string
	Kind    hist.Kind
	Entries int64
	// Cycle starts at 1 and grows each time the same name is put again.
	Cycle   int
	Payload []byte
}

// Dir is a directory inside a File.
type Dir struct {
	name    string
	parent  *Dir
	file    *File
	subdirs []*Dir
	byName  map[string]*Dir
	records []Record
	index   map[string]int
}

func newDir(f *File, parent *Dir, name string) *Dir {
	return &Dir{
		name:   name,
		parent: parent,
		file:   f,
		byName: make(map[string]*Dir),
		index:  make(map[string]int),
	}
}

// Name returns the directory name. The top-level directory has an empty name.
func (d *Dir) Name() string { return d.name }

// Parent returns the enclosing directory, or nil for the top level.
func (d *Dir) Parent() *Dir { return d.parent }

// File returns the file this directory belongs to.
func (d *Dir) File() *File { return d.file }

// IsRoot reports whether d is the top-level directory of its file.
func (d *Dir) IsRoot() bool { return d.parent == nil }

// Path returns the slash-separated path from the top level, "" for the top
// level itself.
func (d *Dir) Path() string {
	if d.parent == nil {
		return ""
	}
	if d.parent.parent == nil {
		return d.name
	}
	return d.parent.Path() + PathSeparator + d.name
}

// Subdir returns the direct child named name.
func (d *Dir) Subdir(name string) (*Dir, bool) {
	sub, ok := d.byName[name]
	return sub, ok
}

// Subdirs returns the direct children in creation order.
func (d *Dir) Subdirs() []*Dir {
	out := make([]*Dir, len(d.subdirs))
	copy(out, d.subdirs)
	return out
}

// Mkdir creates a direct child named name. It fails with ErrExists if the
// child already exists.
func (d *Dir) Mkdir(name string) (*Dir, error) {
	if err := d.file.writable(); err != nil {
		return nil, err
	}
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	if _, ok := d.byName[name]; ok {
		return nil, fmt.Errorf("%w: %q in %q", ErrExists, name, d.displayPath())
	}
	return d.addSubdir(name), nil
}

// MkdirAll walks path below d, reusing existing directories and creating
// missing ones. Blank segments are skipped, so "a//b" equals "a/b" and a
// blank path returns d itself.
func (d *Dir) MkdirAll(path string) (*Dir, error) {
	cur := d
	for _, seg := range SplitPath(path) {
		if sub, ok := cur.byName[seg]; ok {
			cur = sub
			continue
		}
		sub, err := cur.Mkdir(seg)
		if err != nil {
			return nil, err
		}
		cur = sub
	}
	return cur, nil
}

// Lookup returns the directory at path below d without creating anything.
func (d *Dir) Lookup(path string) (*Dir, bool) {
	cur := d
	for _, seg := range SplitPath(path) {
		sub, ok := cur.byName[seg]
		if !ok {
			return nil, false
		}
		cur = sub
	}
	return cur, true
}

// Put encodes obj and stores it under obj.Name(). Putting a name that is
// already present replaces the record and increments its cycle.
func (d *Dir) Put(obj hist.Object) error {
	if err := d.file.writable(); err != nil {
		return err
	}
	if err := ValidateName(obj.Name()); err != nil {
		return err
	}
	payload, err := obj.MarshalYODA()
	if err != nil {
		return fmt.Errorf("encode %s %q: %w", obj.Kind(), obj.Name(), err)
	}
	rec := Record{
		Name:    obj.Name(),
		Title:   obj.Title(),
		Kind:    obj.Kind(),
		Entries: obj.Entries(),
		Cycle:   1,
		Payload: payload,
	}
	if i, ok := d.index[rec.Name]; ok {
		rec.Cycle = d.records[i].Cycle + 1
		d.records[i] = rec
		return nil
	}
	d.addRecord(rec)
	return nil
}

// Get returns the record stored under name in d.
func (d *Dir) Get(name string) (Record, bool) {
	i, ok := d.index[name]
	if !ok {
		return Record{}, false
	}
	return d.records[i], true
}

// Keys returns the records of d in insertion order.
func (d *Dir) Keys() []Record {
	out := make([]Record, len(d.records))
	copy(out, d.records)
	return out
}

// Walk calls fn for d and every directory below it, parents before
// children. Returning an error from fn stops the walk.
func (d *Dir) Walk(fn func(*Dir) error) error {
	if err := fn(d); err != nil {
		return err
	}
	for _, sub := range d.subdirs {
		if err := sub.Walk(fn); err != nil {
			return err
		}
	}
	return nil
}

func (d *Dir) addSubdir(name string) *Dir {
	sub := newDir(d.file, d, name)
	d.subdirs = append(d.subdirs, sub)
	d.byName[name] = sub
	return sub
}

func (d *Dir) addRecord(rec Record) {
	d.index[rec.Name] = len(d.records)
	d.records = append(d.records, rec)
}

func (d *Dir) displayPath() string {
	if p := d.Path(); p != "" {
		return p
	}
	return PathSeparator
}

// SplitPath splits a slash-delimited path into trimmed, non-blank segments.
func SplitPath(path string) []string {
	var segs []string
	for _, seg := range strings.Split(path, PathSeparator) {
		seg = strings.TrimSpace(seg)
		if seg != "" {
			segs = append(segs, seg)
		}
	}
	return segs
}

// ValidateName checks a single directory or object name.
func ValidateName(name string) error {
	switch {
	case name == "", name == ".", name == "..":
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	case strings.Contains(name, PathSeparator):
		return fmt.Errorf("%w: %q contains %q", ErrInvalidName, name, PathSeparator)
	case strings.ContainsFunc(name, func(r rune) bool { return r < 0x20 || r == 0x7f }):
		return fmt.Errorf("%w: %q contains control characters", ErrInvalidName, name)
	}
	return nil
}
