package histcfg

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a configuration file cannot be opened.
	ErrNotFound = errors.New("config file not found")
	// ErrMalformedLine classifies lines with missing or ill-typed fields,
	// including invalid binning.
	ErrMalformedLine = errors.New("malformed config line")
	// ErrUnknownKind classifies lines whose type token is not a known kind.
	ErrUnknownKind = errors.New("unknown histogram kind")
)

// Diagnostic describes one rejected configuration entry. Err wraps one of
// ErrMalformedLine or ErrUnknownKind.
type Diagnostic struct {
	Source string
	Line   int
	Err    error
	// Text is the offending line (or a summary of the YAML entry).
	Text string
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("%s:%d: %v", d.Source, d.Line, d.Err)
}

func (d Diagnostic) Unwrap() error { return d.Err }

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedLine, fmt.Sprintf(format, args...))
}

func unknownKind(token string) error {
	return fmt.Errorf("%w: %q", ErrUnknownKind, token)
}
