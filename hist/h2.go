package hist

import (
	"go-hep.org/x/hep/hbook"
)

// H2 is a two-dimensional histogram (TH2F or TH2D).
type H2 struct {
	kind Kind
	x, y Axis
	h    *hbook.H2D
}

// NewH2 creates a 2D histogram with uniform binning on both axes.
func NewH2(kind Kind, name, title string, nbinsx int, xmin, xmax float64, nbinsy int, ymin, ymax float64) (*H2, error) {
	if kind != TH2F && kind != TH2D {
		return nil, &KindError{Token: kind.String(), Want: 2}
	}
	x := Axis{Bins: nbinsx, Min: xmin, Max: xmax}
	y := Axis{Bins: nbinsy, Min: ymin, Max: ymax}
	if err := x.Validate(); err != nil {
		return nil, err
	}
	if err := y.Validate(); err != nil {
		return nil, err
	}
	h := hbook.NewH2D(nbinsx, xmin, xmax, nbinsy, ymin, ymax)
	annotate(h.Annotation(), name, title)
	return &H2{kind: kind, x: x, y: y, h: h}, nil
}

func (h *H2) Name() string   { return h.h.Name() }
func (h *H2) Title() string  { return annTitle(h.h.Annotation()) }
func (h *H2) Kind() Kind     { return h.kind }
func (h *H2) Entries() int64 { return h.h.Entries() }

// X returns the binning of the x axis.
func (h *H2) X() Axis { return h.x }

// Y returns the binning of the y axis.
func (h *H2) Y() Axis { return h.y }

// Fill adds (x, y) with weight w.
func (h *H2) Fill(x, y, w float64) { h.h.Fill(x, y, w) }

// Hist exposes the underlying hbook histogram.
func (h *H2) Hist() *hbook.H2D { return h.h }

// MarshalYODA implements Object.
func (h *H2) MarshalYODA() ([]byte, error) { return h.h.MarshalYODA() }
