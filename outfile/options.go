package outfile

import (
	"path/filepath"
	"strings"
)

// StoreKind selects the on-disk encoding of a File.
type StoreKind string

const (
	// StoreAuto picks the store from the file extension.
	StoreAuto StoreKind = ""
	// StoreYAML writes a single YAML document.
	StoreYAML StoreKind = "yaml"
	// StoreSQLite writes a SQLite database.
	StoreSQLite StoreKind = "sqlite"
)

// Options configures Create and Open.
type Options struct {
	// Store selects the encoding. Default: StoreAuto.
	Store StoreKind

	// FullFsync requests F_FULLFSYNC on darwin (and PRAGMA fullfsync for
	// SQLite) so Flush survives power loss, not just a crash.
	// Default: false
	FullFsync bool
}

// DefaultOptions returns the options used when nil is passed.
func DefaultOptions() *Options {
	return &Options{
		Store:     StoreAuto,
		FullFsync: false,
	}
}

func (o *Options) storeFor(path string) StoreKind {
	if o.Store != StoreAuto {
		return o.Store
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return StoreSQLite
	default:
		return StoreYAML
	}
}
