package histmgr

import (
	"fmt"

	"github.com/joshuapare/histkit/hist"
	"github.com/joshuapare/histkit/internal/histcfg"
	"github.com/joshuapare/histkit/outfile"
)

// Record1D configures a one-axis histogram or profile.
type Record1D = histcfg.Record1D

// Record2D configures a two-axis histogram or profile.
type Record2D = histcfg.Record2D

// Meta holds the fields shared by Record1D and Record2D.
type Meta = histcfg.Meta

// Record is a Record1D or a Record2D.
type Record = histcfg.Record

// AddHisto1D creates a TH1F, TH1D or TProfile at the top level of the
// output file. It reports whether the object was created.
func (m *Manager) AddHisto1D(name, title string, nbinsx int, xmin, xmax float64, kind string) bool {
	return m.AddHisto1DIn("", name, title, nbinsx, xmin, xmax, kind)
}

// AddHisto1DIn is AddHisto1D writing into the sub-directory dir.
func (m *Manager) AddHisto1DIn(dir, name, title string, nbinsx int, xmin, xmax float64, kind string) bool {
	k, ok := m.parseKind(kind, 1, name)
	if !ok {
		return false
	}
	return m.AddHisto1DRecord(Record1D{
		Meta:   Meta{Dir: dir, Kind: k, Name: name, Title: title},
		NBinsX: nbinsx, XMin: xmin, XMax: xmax,
	})
}

// AddHisto1DRecord creates the object described by rec.
func (m *Manager) AddHisto1DRecord(rec Record1D) bool {
	log := m.log.With("name", rec.Name, "kind", rec.Kind.String())
	if rec.Line > 0 {
		log = log.With("line", rec.Line)
	}
	if err := outfile.ValidateName(rec.Name); err != nil {
		log.Error("histogram not created", "error", err)
		return false
	}

	switch rec.Kind {
	case hist.TH1F, hist.TH1D:
		if m.h1.has(rec.Name) {
			log.Error("histogram not created", "error", duplicate(rec.Name))
			return false
		}
		h, err := hist.NewH1(rec.Kind, rec.Name, rec.Title, rec.NBinsX, rec.XMin, rec.XMax)
		if err != nil {
			log.Error("histogram not created", "error", err)
			return false
		}
		m.h1.add(newEntry(m, h, rec.Dir))
	case hist.TProfile:
		if m.p1.has(rec.Name) {
			log.Error("profile not created", "error", duplicate(rec.Name))
			return false
		}
		p, err := hist.NewProfile1D(rec.Name, rec.Title, rec.NBinsX, rec.XMin, rec.XMax)
		if err != nil {
			log.Error("profile not created", "error", err)
			return false
		}
		m.p1.add(newEntry(m, p, rec.Dir))
	default:
		log.Error("histogram not created", "error", fmt.Errorf("%w: %s is not a 1D kind", ErrUnknownKind, rec.Kind))
		return false
	}
	log.Debug("created", "dir", rec.Dir)
	return true
}

// AddHisto2D creates a TH2F, TH2D or TProfile2D at the top level of the
// output file. It reports whether the object was created.
func (m *Manager) AddHisto2D(name, title string, nbinsx int, xmin, xmax float64, nbinsy int, ymin, ymax float64, kind string) bool {
	return m.AddHisto2DIn("", name, title, nbinsx, xmin, xmax, nbinsy, ymin, ymax, kind)
}

// AddHisto2DIn is AddHisto2D writing into the sub-directory dir.
func (m *Manager) AddHisto2DIn(dir, name, title string, nbinsx int, xmin, xmax float64, nbinsy int, ymin, ymax float64, kind string) bool {
	k, ok := m.parseKind(kind, 2, name)
	if !ok {
		return false
	}
	return m.AddHisto2DRecord(Record2D{
		Meta:   Meta{Dir: dir, Kind: k, Name: name, Title: title},
		NBinsX: nbinsx, XMin: xmin, XMax: xmax,
		NBinsY: nbinsy, YMin: ymin, YMax: ymax,
	})
}

// AddHisto2DRecord creates the object described by rec.
func (m *Manager) AddHisto2DRecord(rec Record2D) bool {
	log := m.log.With("name", rec.Name, "kind", rec.Kind.String())
	if rec.Line > 0 {
		log = log.With("line", rec.Line)
	}
	if err := outfile.ValidateName(rec.Name); err != nil {
		log.Error("histogram not created", "error", err)
		return false
	}

	switch rec.Kind {
	case hist.TH2F, hist.TH2D:
		if m.h2.has(rec.Name) {
			log.Error("histogram not created", "error", duplicate(rec.Name))
			return false
		}
		h, err := hist.NewH2(rec.Kind, rec.Name, rec.Title, rec.NBinsX, rec.XMin, rec.XMax, rec.NBinsY, rec.YMin, rec.YMax)
		if err != nil {
			log.Error("histogram not created", "error", err)
			return false
		}
		m.h2.add(newEntry(m, h, rec.Dir))
	case hist.TProfile2D:
		if m.p2.has(rec.Name) {
			log.Error("profile not created", "error", duplicate(rec.Name))
			return false
		}
		p, err := hist.NewProfile2D(rec.Name, rec.Title, rec.NBinsX, rec.XMin, rec.XMax, rec.NBinsY, rec.YMin, rec.YMax)
		if err != nil {
			log.Error("profile not created", "error", err)
			return false
		}
		m.p2.add(newEntry(m, p, rec.Dir))
	default:
		log.Error("histogram not created", "error", fmt.Errorf("%w: %s is not a 2D kind", ErrUnknownKind, rec.Kind))
		return false
	}
	log.Debug("created", "dir", rec.Dir)
	return true
}

// AddRecord creates the object described by a Record1D or Record2D.
func (m *Manager) AddRecord(rec Record) bool {
	switch r := rec.(type) {
	case Record1D:
		return m.AddHisto1DRecord(r)
	case Record2D:
		return m.AddHisto2DRecord(r)
	}
	return false
}

func (m *Manager) parseKind(token string, dim int, name string) (hist.Kind, bool) {
	k, ok := hist.ParseKind(token)
	if !ok || k.Dim() != dim {
		m.log.Error("histogram not created", "name", name,
			"error", fmt.Errorf("%w: %q is not a %dD kind", ErrUnknownKind, token, dim))
		return hist.KindInvalid, false
	}
	return k, true
}

func duplicate(name string) error {
	return fmt.Errorf("%w: %q", ErrDuplicateName, name)
}
