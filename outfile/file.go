package outfile

import (
	"errors"
	"fmt"
	"os"
)

// store persists a directory tree.
type store interface {
	save(root *Dir) error
	close() error
}

// File is an output file. It embeds its top-level directory, so Mkdir, Put
// and friends can be called on the file directly.
type File struct {
	*Dir
	path     string
	opts     *Options
	store    store
	readOnly bool
	closed   bool
}

// Create creates (or truncates) the file at path and writes an empty tree so
// that an unwritable location fails here rather than at Flush.
func Create(path string, opts *Options) (*File, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	f := &File{path: path, opts: opts}
	f.Dir = newDir(f, nil, "")

	var err error
	switch opts.storeFor(path) {
	case StoreSQLite:
		f.store, err = createSQLite(path, opts.FullFsync)
	default:
		f.store = &yamlStore{path: path, fullFsync: opts.FullFsync}
	}
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}
	if err := f.store.save(f.Dir); err != nil {
		_ = f.store.close()
		return nil, fmt.Errorf("create %s: %w", path, err)
	}
	return f, nil
}

// Open loads an existing file read-only.
func Open(path string) (*File, error) {
	return OpenWithOptions(path, nil)
}

// OpenWithOptions loads an existing file read-only using opts to pick the
// store.
func OpenWithOptions(path string, opts *Options) (*File, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	f := &File{path: path, opts: opts, readOnly: true}
	f.Dir = newDir(f, nil, "")

	var err error
	switch opts.storeFor(path) {
	case StoreSQLite:
		f.store, err = loadSQLite(path, f.Dir)
	default:
		f.store, err = loadYAML(path, f.Dir)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return f, nil
}

// Path returns the file system path of the file.
func (f *File) Path() string { return f.path }

// ReadOnly reports whether the file was opened with Open.
func (f *File) ReadOnly() bool { return f.readOnly }

// Flush writes the whole tree to the store and forces it to durable
// storage.
func (f *File) Flush() error {
	if err := f.writable(); err != nil {
		return err
	}
	if err := f.store.save(f.Dir); err != nil {
		return fmt.Errorf("flush %s: %w", f.path, err)
	}
	return nil
}

// Close flushes a writable file and releases the store. Closing twice is a
// no-op.
func (f *File) Close() error {
	if f.closed {
		return nil
	}
	var flushErr error
	if !f.readOnly {
		flushErr = f.Flush()
	}
	f.closed = true
	return errors.Join(flushErr, f.store.close())
}

func (f *File) writable() error {
	switch {
	case f.closed:
		return ErrClosed
	case f.readOnly:
		return ErrReadOnly
	}
	return nil
}
