package hist

import (
	"bytes"
	"fmt"
	"math"

	"go-hep.org/x/hep/hbook"
	"gonum.org/v1/gonum/floats"
)

// Profile1D is a one-dimensional profile (TProfile): the mean of y per x bin.
type Profile1D struct {
	x Axis
	p *hbook.P1D
}

// NewProfile1D creates a 1D profile with nbins uniform bins over [xmin, xmax).
func NewProfile1D(name, title string, nbins int, xmin, xmax float64) (*Profile1D, error) {
	x := Axis{Bins: nbins, Min: xmin, Max: xmax}
	if err := x.Validate(); err != nil {
		return nil, err
	}
	p := hbook.NewP1D(nbins, xmin, xmax)
	annotate(p.Annotation(), name, title)
	return &Profile1D{x: x, p: p}, nil
}

func (p *Profile1D) Name() string   { return p.p.Name() }
func (p *Profile1D) Title() string  { return annTitle(p.p.Annotation()) }
func (p *Profile1D) Kind() Kind     { return TProfile }
func (p *Profile1D) Entries() int64 { return p.p.Entries() }

// X returns the binning of the x axis.
func (p *Profile1D) X() Axis { return p.x }

// Fill accumulates y in the bin containing x with weight w.
func (p *Profile1D) Fill(x, y, w float64) { p.p.Fill(x, y, w) }

// Profile exposes the underlying hbook profile.
func (p *Profile1D) Profile() *hbook.P1D { return p.p }

// MarshalYODA implements Object.
func (p *Profile1D) MarshalYODA() ([]byte, error) { return p.p.MarshalYODA() }

// profBin holds the weighted moments of z for one (x, y) cell.
type profBin struct {
	entries int64
	sumw    float64
	sumw2   float64
	sumwz   float64
	sumwz2  float64
}

// Profile2D is a two-dimensional profile (TProfile2D): the mean of z per
// (x, y) bin.
type Profile2D struct {
	name, title string
	x, y        Axis
	xedges      []float64
	yedges      []float64
	bins        []profBin
	entries     int64
	outOfRange  int64
}

// NewProfile2D creates a 2D profile with uniform binning on both axes.
func NewProfile2D(name, title string, nbinsx int, xmin, xmax float64, nbinsy int, ymin, ymax float64) (*Profile2D, error) {
	x := Axis{Bins: nbinsx, Min: xmin, Max: xmax}
	y := Axis{Bins: nbinsy, Min: ymin, Max: ymax}
	if err := x.Validate(); err != nil {
		return nil, err
	}
	if err := y.Validate(); err != nil {
		return nil, err
	}
	return &Profile2D{
		name:   name,
		title:  title,
		x:      x,
		y:      y,
		xedges: floats.Span(make([]float64, nbinsx+1), xmin, xmax),
		yedges: floats.Span(make([]float64, nbinsy+1), ymin, ymax),
		bins:   make([]profBin, nbinsx*nbinsy),
	}, nil
}

func (p *Profile2D) Name() string   { return p.name }
func (p *Profile2D) Title() string  { return p.title }
func (p *Profile2D) Kind() Kind     { return TProfile2D }
func (p *Profile2D) Entries() int64 { return p.entries }

// X returns the binning of the x axis.
func (p *Profile2D) X() Axis { return p.x }

// Y returns the binning of the y axis.
func (p *Profile2D) Y() Axis { return p.y }

// OutOfRange returns how many fills fell outside either axis.
func (p *Profile2D) OutOfRange() int64 { return p.outOfRange }

// Fill accumulates z in the bin containing (x, y) with weight w.
func (p *Profile2D) Fill(x, y, z, w float64) {
	p.entries++
	ix := floats.Within(p.xedges, x)
	iy := floats.Within(p.yedges, y)
	if ix < 0 || iy < 0 {
		p.outOfRange++
		return
	}
	b := &p.bins[iy*p.x.Bins+ix]
	b.entries++
	b.sumw += w
	b.sumw2 += w * w
	b.sumwz += w * z
	b.sumwz2 += w * z * z
}

// BinEntries returns the number of fills recorded in bin (ix, iy).
// Indices are zero-based; out-of-range indices report zero.
func (p *Profile2D) BinEntries(ix, iy int) int64 {
	b, ok := p.bin(ix, iy)
	if !ok {
		return 0
	}
	return b.entries
}

// BinMean returns the weighted mean of z in bin (ix, iy). ok is false when
// the bin is out of range or holds no weight.
func (p *Profile2D) BinMean(ix, iy int) (mean float64, ok bool) {
	b, ok := p.bin(ix, iy)
	if !ok || b.sumw == 0 {
		return 0, false
	}
	return b.sumwz / b.sumw, true
}

// BinStdDev returns the weighted spread of z in bin (ix, iy).
func (p *Profile2D) BinStdDev(ix, iy int) (float64, bool) {
	b, ok := p.bin(ix, iy)
	if !ok || b.sumw == 0 {
		return 0, false
	}
	mean := b.sumwz / b.sumw
	v := b.sumwz2/b.sumw - mean*mean
	if v < 0 {
		v = 0
	}
	return math.Sqrt(v), true
}

func (p *Profile2D) bin(ix, iy int) (profBin, bool) {
	if ix < 0 || ix >= p.x.Bins || iy < 0 || iy >= p.y.Bins {
		return profBin{}, false
	}
	return p.bins[iy*p.x.Bins+ix], true
}

// MarshalYODA implements Object. The layout follows the YODA Profile2D
// block with one line per bin.
func (p *Profile2D) MarshalYODA() ([]byte, error) {
	var buf bytes.Buffer
	path := "/" + p.name
	fmt.Fprintf(&buf, "BEGIN YODA_PROFILE2D_V2 %s\n", path)
	fmt.Fprintf(&buf, "Path: %s\n", path)
	fmt.Fprintf(&buf, "Title: %s\n", p.title)
	fmt.Fprintf(&buf, "Type: Profile2D\n")
	fmt.Fprintf(&buf, "---\n")
	fmt.Fprintf(&buf, "# Entries: %d\n", p.entries)
	fmt.Fprintf(&buf, "# OutOfRange: %d\n", p.outOfRange)
	fmt.Fprintf(&buf, "# xlow\t xhigh\t ylow\t yhigh\t sumw\t sumw2\t sumwz\t sumwz2\t numEntries\n")
	for iy := 0; iy < p.y.Bins; iy++ {
		for ix := 0; ix < p.x.Bins; ix++ {
			b := p.bins[iy*p.x.Bins+ix]
			fmt.Fprintf(&buf, "%e\t%e\t%e\t%e\t%e\t%e\t%e\t%e\t%d\n",
				p.xedges[ix], p.xedges[ix+1], p.yedges[iy], p.yedges[iy+1],
				b.sumw, b.sumw2, b.sumwz, b.sumwz2, b.entries)
		}
	}
	fmt.Fprintf(&buf, "END YODA_PROFILE2D_V2\n\n")
	return buf.Bytes(), nil
}
