package histcfg

import "github.com/joshuapare/histkit/hist"

// Meta holds the fields shared by one- and two-axis records.
type Meta struct {
	// Dir is the slash-separated output sub-directory, "" for the top level.
	Dir   string
	Kind  hist.Kind
	Name  string
	Title string
	// Line is the 1-based source line, 0 for records built in code.
	Line int
}

// Record1D configures a TH1F, TH1D or TProfile.
type Record1D struct {
	Meta
	NBinsX int
	XMin   float64
	XMax   float64
}

// Record2D configures a TH2F, TH2D or TProfile2D.
type Record2D struct {
	Meta
	NBinsX int
	XMin   float64
	XMax   float64
	NBinsY int
	YMin   float64
	YMax   float64
}

// Record is either a Record1D or a Record2D.
type Record interface {
	Common() Meta
	record()
}

func (r Record1D) Common() Meta { return r.Meta }
func (r Record2D) Common() Meta { return r.Meta }

func (Record1D) record() {}
func (Record2D) record() {}

// X returns the x axis binning.
func (r Record1D) X() hist.Axis { return hist.Axis{Bins: r.NBinsX, Min: r.XMin, Max: r.XMax} }

// X returns the x axis binning.
func (r Record2D) X() hist.Axis { return hist.Axis{Bins: r.NBinsX, Min: r.XMin, Max: r.XMax} }

// Y returns the y axis binning.
func (r Record2D) Y() hist.Axis { return hist.Axis{Bins: r.NBinsY, Min: r.YMin, Max: r.YMax} }

// Result is the outcome of parsing one source. Records are in source order.
type Result struct {
	Records     []Record
	Diagnostics []Diagnostic
}

func (r *Result) reject(source string, line int, err error, text string) {
	r.Diagnostics = append(r.Diagnostics, Diagnostic{Source: source, Line: line, Err: err, Text: text})
}
