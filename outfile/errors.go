package outfile

import "errors"

var (
	// ErrExists is returned by Mkdir when the name is already taken.
	ErrExists = errors.New("outfile: directory already exists")
	// ErrInvalidName is returned for empty names, names containing '/', or
	// the reserved names "." and "..".
	ErrInvalidName = errors.New("outfile: invalid name")
	// ErrReadOnly is returned when modifying a file opened with Open.
	ErrReadOnly = errors.New("outfile: file is read-only")
	// ErrClosed is returned when using a closed file.
	ErrClosed = errors.New("outfile: file is closed")
	// ErrBadFormat is returned when a file cannot be decoded.
	ErrBadFormat = errors.New("outfile: unrecognized file format")
)
