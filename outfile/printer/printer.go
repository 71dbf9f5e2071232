// Package printer renders the directory tree of an outfile as text or JSON.
package printer

import (
	"fmt"
	"io"

	"github.com/joshuapare/histkit/outfile"
)

const (
	DefaultIndentSize = 2
	DefaultMaxDepth   = 0
)

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs human-readable text format.
	FormatText Format = "text"

	// FormatJSON outputs JSON format.
	FormatJSON Format = "json"
)

// Options controls printing behavior.
type Options struct {
	// Format specifies output format (text, json).
	// Default: FormatText
	Format Format

	// IndentSize is the number of spaces per indent level (text format only).
	// Default: 2
	IndentSize int

	// MaxDepth limits recursion depth (0 = unlimited).
	// Default: 0 (unlimited)
	MaxDepth int

	// ShowObjects lists the object records of each directory.
	// Default: true
	ShowObjects bool

	// ShowPayload includes the encoded object payload (PrintObject only).
	// Default: false
	ShowPayload bool
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() Options {
	return Options{
		Format:      FormatText,
		IndentSize:  DefaultIndentSize,
		MaxDepth:    DefaultMaxDepth,
		ShowObjects: true,
		ShowPayload: false,
	}
}

// Printer handles formatted output of an outfile tree.
type Printer struct {
	opts   Options
	writer io.Writer
	root   *outfile.Dir
}

// New creates a new Printer rooted at root.
//
// Example:
//
//	f, _ := outfile.Open("run.yaml")
//	p := printer.New(f.Dir, os.Stdout, printer.DefaultOptions())
//	p.PrintTree("")
func New(root *outfile.Dir, w io.Writer, opts Options) *Printer {
	return &Printer{
		root:   root,
		writer: w,
		opts:   opts,
	}
}

// PrintTree prints the subtree at path. An empty path prints the whole
// tree.
func (p *Printer) PrintTree(path string) error {
	d, ok := p.root.Lookup(path)
	if !ok {
		return fmt.Errorf("find directory %q: not found", path)
	}

	switch p.opts.Format {
	case FormatJSON:
		return p.printTreeJSON(d)
	default:
		return p.printTreeText(d, 0)
	}
}

// PrintObject prints the record named name in the directory at path.
func (p *Printer) PrintObject(path, name string) error {
	d, ok := p.root.Lookup(path)
	if !ok {
		return fmt.Errorf("find directory %q: not found", path)
	}
	rec, ok := d.Get(name)
	if !ok {
		return fmt.Errorf("find object %q in %q: not found", name, path)
	}

	switch p.opts.Format {
	case FormatJSON:
		return p.printObjectJSON(rec)
	default:
		return p.printObjectText(rec, 0)
	}
}
