package hist

import (
	"errors"
	"fmt"
	"math"
)

// Object is implemented by every histogram and profile.
type Object interface {
	Name() string
	Title() string
	Kind() Kind
	// Entries is the number of Fill calls, including out-of-range ones.
	Entries() int64
	// MarshalYODA encodes the object in the YODA text format.
	MarshalYODA() ([]byte, error)
}

// Axis describes a uniformly binned axis over [Min, Max).
type Axis struct {
	Bins int
	Min  float64
	Max  float64
}

// Validate checks that the axis can be binned. A non-positive bin count and
// an empty or inverted range are errors: nothing is clamped to one bin and
// no range is derived from the data.
func (a Axis) Validate() error {
	if a.Bins <= 0 {
		return &BinningError{Axis: a, Reason: "bin count must be positive"}
	}
	if math.IsNaN(a.Min) || math.IsNaN(a.Max) || math.IsInf(a.Min, 0) || math.IsInf(a.Max, 0) {
		return &BinningError{Axis: a, Reason: "range must be finite"}
	}
	if a.Min >= a.Max {
		return &BinningError{Axis: a, Reason: "min must be below max"}
	}
	return nil
}

// Width returns the width of a single bin.
func (a Axis) Width() float64 {
	return (a.Max - a.Min) / float64(a.Bins)
}

// ErrBinning is matched by every BinningError.
var ErrBinning = errors.New("hist: invalid binning")

// BinningError reports an axis that cannot be constructed.
type BinningError struct {
	Axis   Axis
	Reason string
}

func (e *BinningError) Error() string {
	return fmt.Sprintf("hist: invalid axis (bins=%d, range=[%g, %g)): %s", e.Axis.Bins, e.Axis.Min, e.Axis.Max, e.Reason)
}

func (e *BinningError) Is(target error) bool { return target == ErrBinning }

// ErrKind is matched by every KindError.
var ErrKind = errors.New("hist: unknown kind")

// KindError reports a type token that names no known kind, or a kind used
// with a constructor of the wrong dimension.
type KindError struct {
	Token string
	Want  int // expected dimension, 0 when the token is simply unknown
}

func (e *KindError) Error() string {
	if e.Want > 0 {
		return fmt.Sprintf("hist: kind %q is not a %dD kind", e.Token, e.Want)
	}
	return fmt.Sprintf("hist: unknown kind %q", e.Token)
}

func (e *KindError) Is(target error) bool { return target == ErrKind }

// New builds the object for kind from one or two axes. For 1D kinds y is
// ignored.
func New(kind Kind, name, title string, x, y Axis) (Object, error) {
	var (
		obj Object
		err error
	)
	switch kind {
	case TH1F, TH1D:
		var h *H1
		h, err = NewH1(kind, name, title, x.Bins, x.Min, x.Max)
		obj = h
	case TProfile:
		var p *Profile1D
		p, err = NewProfile1D(name, title, x.Bins, x.Min, x.Max)
		obj = p
	case TH2F, TH2D:
		var h *H2
		h, err = NewH2(kind, name, title, x.Bins, x.Min, x.Max, y.Bins, y.Min, y.Max)
		obj = h
	case TProfile2D:
		var p *Profile2D
		p, err = NewProfile2D(name, title, x.Bins, x.Min, x.Max, y.Bins, y.Min, y.Max)
		obj = p
	default:
		return nil, &KindError{Token: kind.String()}
	}
	if err != nil {
		return nil, err
	}
	return obj, nil
}
