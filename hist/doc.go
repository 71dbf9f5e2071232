// Package hist is the histogram object model used by the registry.
//
// Every object carries an explicit Kind tag chosen at construction time, so
// callers recover the concrete type through the Kind rather than by probing
// interfaces at run time.
//
// One-dimensional histograms, two-dimensional histograms and one-dimensional
// profiles are thin wrappers over go-hep's hbook types, which own the binning
// and fill arithmetic. hbook has no two-dimensional profile, so Profile2D
// keeps its own per-bin accumulators.
//
// # Kinds
//
//	TH1F, TH1D    -> *H1        (hbook.H1D)
//	TH2F, TH2D    -> *H2        (hbook.H2D)
//	TProfile      -> *Profile1D (hbook.P1D)
//	TProfile2D    -> *Profile2D
//
// The F/D suffix is kept as metadata only; hbook stores float64 everywhere.
//
// # Basic Usage
//
//	h, err := hist.NewH1(hist.TH1F, "h1", "Energy", 100, 0, 50)
//	if err != nil {
//	    return err
//	}
//	h.Fill(12.5, 1)
//	raw, err := h.MarshalYODA()
package hist
