package hist

import (
	"go-hep.org/x/hep/hbook"
)

// H1 is a one-dimensional histogram (TH1F or TH1D).
type H1 struct {
	kind Kind
	x    Axis
	h    *hbook.H1D
}

// NewH1 creates a 1D histogram with nbins uniform bins over [xmin, xmax).
func NewH1(kind Kind, name, title string, nbins int, xmin, xmax float64) (*H1, error) {
	if kind != TH1F && kind != TH1D {
		return nil, &KindError{Token: kind.String(), Want: 1}
	}
	x := Axis{Bins: nbins, Min: xmin, Max: xmax}
	if err := x.Validate(); err != nil {
		return nil, err
	}
	h := hbook.NewH1D(nbins, xmin, xmax)
	annotate(h.Annotation(), name, title)
	return &H1{kind: kind, x: x, h: h}, nil
}

func (h *H1) Name() string   { return h.h.Name() }
func (h *H1) Title() string  { return annTitle(h.h.Annotation()) }
func (h *H1) Kind() Kind     { return h.kind }
func (h *H1) Entries() int64 { return h.h.Entries() }

// X returns the binning of the x axis.
func (h *H1) X() Axis { return h.x }

// Fill adds x with weight w. Values outside the axis land in under/overflow.
func (h *H1) Fill(x, w float64) { h.h.Fill(x, w) }

// Hist exposes the underlying hbook histogram.
func (h *H1) Hist() *hbook.H1D { return h.h }

// MarshalYODA implements Object.
func (h *H1) MarshalYODA() ([]byte, error) { return h.h.MarshalYODA() }

func annotate(ann hbook.Annotation, name, title string) {
	ann["name"] = name
	ann["title"] = title
}

func annTitle(ann hbook.Annotation) string {
	if v, ok := ann["title"].(string); ok {
		return v
	}
	return ""
}
