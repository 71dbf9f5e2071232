package histmgr

import (
	"io"
	"log/slog"

	"github.com/joshuapare/histkit/internal/histcfg"
)

// Layout selects how configuration lines are read. See LayoutAuto.
type Layout = histcfg.Layout

const (
	// LayoutAuto accepts both "TYPE NAME ..." and "DIR TYPE NAME ..." lines.
	LayoutAuto = histcfg.LayoutAuto
	// LayoutFlat reads every line as "TYPE NAME ...".
	LayoutFlat = histcfg.LayoutFlat
	// LayoutDirectory reads every line as "DIR TYPE NAME ...".
	LayoutDirectory = histcfg.LayoutDirectory
)

// Options configures a Manager.
type Options struct {
	// Logger receives every diagnostic.
	// Default: a logger that discards everything.
	Logger *slog.Logger

	// Layout is used by LoadConfig for line-format files.
	// Default: LayoutAuto
	Layout Layout
}

// Option modifies Options.
type Option func(*Options)

// WithLogger sets the diagnostic logger. A nil logger keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithConfigLayout sets the line layout used by LoadConfig.
func WithConfigLayout(l Layout) Option { return func(o *Options) { o.Layout = l } }

// DefaultOptions returns the options New starts from.
func DefaultOptions() Options {
	return Options{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Layout: LayoutAuto,
	}
}
