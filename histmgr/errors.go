package histmgr

import (
	"errors"

	"github.com/joshuapare/histkit/internal/histcfg"
)

var (
	// ErrConfigNotFound is logged when a configuration file cannot be opened.
	ErrConfigNotFound = histcfg.ErrNotFound
	// ErrMalformedLine is logged for configuration entries with missing or
	// ill-typed fields, and for invalid binning.
	ErrMalformedLine = histcfg.ErrMalformedLine
	// ErrUnknownKind is logged for type tokens that name no known kind, or
	// a kind with the wrong number of axes for the call.
	ErrUnknownKind = histcfg.ErrUnknownKind
	// ErrDuplicateName is logged when a name is already in its collection.
	ErrDuplicateName = errors.New("duplicate histogram name")
	// ErrNoOutput is logged when writing without an output file.
	ErrNoOutput = errors.New("output file not set")
	// ErrNotFound is logged when Write finds no object with the name.
	ErrNotFound = errors.New("histogram not found")
)
