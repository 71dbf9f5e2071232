package histmgr

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/joshuapare/histkit/hist"
	"github.com/stretchr/testify/require"
)

const mixedConfig = `# one of each kind
TH1F h1 "Energy" 100 0 50
TH1D h1d "Energy (double)" 10 0 1
TH2F h2f "XY float" 4 0 4 4 0 4
data/sub TH2D h2 "XY" 10 0 10 10 0 10
TProfile p1 "Mean" 20 0 20
det/ecal TProfile2D p2 "Mean map" 5 0 5 5 0 5
`

func TestLoad_ExampleLine(t *testing.T) {
	m, _ := newManager(t, newOutput(t, "out.yaml"))
	load(t, m, `TH1F h1 "Energy" 100 0 50`)

	h, ok := m.Histo1D("h1")
	require.True(t, ok)
	require.Equal(t, "h1", h.Name())
	require.Equal(t, "Energy", h.Title())
	require.Equal(t, hist.TH1F, h.Kind())
	require.Equal(t, hist.Axis{Bins: 100, Min: 0, Max: 50}, h.X())

	_, ok = m.Histo2D("h1")
	require.False(t, ok)
	_, ok = m.Profile1D("h1")
	require.False(t, ok)
	_, ok = m.Profile2D("h1")
	require.False(t, ok)
}

func TestLoad_EveryKindLandsInItsCollection(t *testing.T) {
	m, sink := newManager(t, newOutput(t, "out.yaml"))
	load(t, m, mixedConfig)
	require.Empty(t, sink.errorsContaining(t, ""))
	require.Equal(t, 6, m.Len())

	for _, name := range []string{"h1", "h1d"} {
		_, ok := m.Histo1D(name)
		require.True(t, ok, name)
	}
	for _, name := range []string{"h2f", "h2"} {
		_, ok := m.Histo2D(name)
		require.True(t, ok, name)
	}
	p1, ok := m.Profile1D("p1")
	require.True(t, ok)
	require.Equal(t, hist.TProfile, p1.Kind())
	p2, ok := m.Profile2D("p2")
	require.True(t, ok)
	require.Equal(t, hist.TProfile2D, p2.Kind())

	_, ok = m.Histo1D("p1")
	require.False(t, ok, "profiles are not histograms")
	_, ok = m.Histo2D("p2")
	require.False(t, ok, "profiles are not histograms")

	require.Equal(t, []string{"h1", "h1d", "h2f", "h2", "p1", "p2"}, m.Names())
}

func TestLoad_MalformedLineDoesNotAbort(t *testing.T) {
	m, sink := newManager(t, newOutput(t, "out.yaml"))
	load(t, m, `TH1F bad "Energy" 100 0
TH1F nobins "Energy" x 0 50
TH9Z weird "Weird" 1 0 1
TH1F good "Energy" 100 0 50
`)

	require.Equal(t, 1, m.Len())
	_, ok := m.Histo1D("good")
	require.True(t, ok)
	_, ok = m.Histo1D("bad")
	require.False(t, ok)

	require.Len(t, sink.errorsContaining(t, ErrMalformedLine.Error()), 2)
	unknown := sink.errorsContaining(t, ErrUnknownKind.Error())
	require.Len(t, unknown, 1)
	require.EqualValues(t, 3, unknown[0]["line"])
}

func TestLoadConfig_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "histos.cfg")
	require.NoError(t, os.WriteFile(path, []byte(mixedConfig), 0o644))

	m, _ := newManager(t, newOutput(t, "out.yaml"))
	require.True(t, m.LoadConfig(path))
	require.Equal(t, 6, m.Len())
}

func TestLoadConfig_YAMLMatchesLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "histos.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`histograms:
  - {type: TH1F, name: h1, title: Energy, x: {bins: 100, min: 0, max: 50}}
  - dir: data/sub
    type: TH2D
    name: h2
    title: XY
    x: {bins: 10, min: 0, max: 10}
    y: {bins: 10, min: 0, max: 10}
`), 0o644))

	fromYAML, _ := newManager(t, newOutput(t, "a.yaml"))
	require.True(t, fromYAML.LoadConfig(path))
	fromLines, _ := newManager(t, newOutput(t, "b.yaml"))
	load(t, fromLines, "TH1F h1 \"Energy\" 100 0 50\ndata/sub TH2D h2 \"XY\" 10 0 10 10 0 10\n")

	require.Equal(t, fromLines.Names(), fromYAML.Names())
	a, _ := fromLines.Histo2D("h2")
	b, _ := fromYAML.Histo2D("h2")
	require.Equal(t, a.X(), b.X())
	require.Equal(t, a.Y(), b.Y())
	require.Equal(t, a.Title(), b.Title())
}

func TestLoadConfig_Missing(t *testing.T) {
	m, sink := newManager(t, newOutput(t, "out.yaml"))
	require.False(t, m.LoadConfig(filepath.Join(t.TempDir(), "nope.cfg")))
	require.Len(t, sink.errorsContaining(t, ErrConfigNotFound.Error()), 1)
	require.Zero(t, m.Len())
}

func TestLoadConfig_LayoutOption(t *testing.T) {
	sink := &logSink{}
	m := New(newOutput(t, "out.yaml"), WithLogger(sink.logger()), WithConfigLayout(LayoutFlat))
	load(t, m, `data TH1F h "T" 1 0 1`)
	require.Zero(t, m.Len())
	require.Len(t, sink.errorsContaining(t, ErrUnknownKind.Error()), 1)
}

func TestAdd_DuplicateKeepsFirst(t *testing.T) {
	m, sink := newManager(t, newOutput(t, "out.yaml"))

	require.True(t, m.AddHisto1D("h", "first", 10, 0, 1, "TH1F"))
	require.False(t, m.AddHisto1D("h", "second", 20, 0, 2, "TH1D"))

	h, ok := m.Histo1D("h")
	require.True(t, ok)
	require.Equal(t, "first", h.Title())
	require.Equal(t, hist.TH1F, h.Kind())
	require.Equal(t, 1, m.Len())
	require.Len(t, sink.errorsContaining(t, ErrDuplicateName.Error()), 1)

	require.True(t, m.AddHisto2D("g", "first", 1, 0, 1, 1, 0, 1, "TProfile2D"))
	require.False(t, m.AddHisto2D("g", "second", 1, 0, 1, 1, 0, 1, "TProfile2D"))
	p, _ := m.Profile2D("g")
	require.Equal(t, "first", p.Title())
	require.Equal(t, 2, m.Len())
}

func TestAdd_SameNameInDifferentCollections(t *testing.T) {
	m, _ := newManager(t, newOutput(t, "out.yaml"))

	require.True(t, m.AddHisto1D("x", "hist", 10, 0, 1, "TH1F"))
	require.True(t, m.AddHisto1D("x", "prof", 10, 0, 1, "TProfile"))
	require.Equal(t, 2, m.Len())

	obj, ok := m.Lookup("x")
	require.True(t, ok)
	require.Equal(t, hist.TH1F, obj.Kind())
}

func TestAdd_Rejects(t *testing.T) {
	m, sink := newManager(t, newOutput(t, "out.yaml"))

	require.False(t, m.AddHisto1D("a", "t", 10, 0, 1, "TH2F"))
	require.False(t, m.AddHisto1D("b", "t", 10, 0, 1, "TH7"))
	require.False(t, m.AddHisto2D("c", "t", 1, 0, 1, 1, 0, 1, "TProfile"))
	require.Len(t, sink.errorsContaining(t, ErrUnknownKind.Error()), 3)

	require.False(t, m.AddHisto1D("d", "t", 0, 0, 1, "TH1F"))
	require.False(t, m.AddHisto2D("e", "t", 1, 1, 0, 1, 0, 1, "TH2F"))
	require.False(t, m.AddHisto1DRecord(Record1D{Meta: Meta{Kind: hist.TH2D, Name: "f"}, NBinsX: 1, XMax: 1}))
	require.Zero(t, m.Len())
}

func TestAdd_RejectsUnwritableNames(t *testing.T) {
	m, sink := newManager(t, newOutput(t, "out.yaml"))

	require.False(t, m.AddHisto1D("a/b", "t", 10, 0, 1, "TH1F"))
	require.False(t, m.AddHisto1DIn("data", "..", "t", 10, 0, 1, "TProfile"))
	require.False(t, m.AddHisto2D(".", "t", 1, 0, 1, 1, 0, 1, "TH2D"))
	require.False(t, m.AddRecord(Record2D{
		Meta:   Meta{Kind: hist.TProfile2D, Name: ""},
		NBinsX: 1, XMax: 1, NBinsY: 1, YMax: 1,
	}))
	require.Zero(t, m.Len())
	require.Len(t, sink.errorsContaining(t, "invalid name"), 4)
}

func TestAdd_RecordForm(t *testing.T) {
	m, _ := newManager(t, newOutput(t, "out.yaml"))

	require.True(t, m.AddHisto1DRecord(Record1D{
		Meta:   Meta{Kind: hist.TProfile, Name: "p", Title: "P"},
		NBinsX: 4, XMin: 0, XMax: 4,
	}))
	require.True(t, m.AddRecord(Record2D{
		Meta:   Meta{Dir: "x/y", Kind: hist.TH2F, Name: "h", Title: "H"},
		NBinsX: 2, XMin: 0, XMax: 2, NBinsY: 2, YMin: 0, YMax: 2,
	}))

	_, ok := m.Profile1D("p")
	require.True(t, ok)
	_, ok = m.Histo2D("h")
	require.True(t, ok)
	_, ok = m.Output().Lookup("x/y")
	require.True(t, ok, "directory is created when the object is added")
}

func TestClose_ReleasesObjects(t *testing.T) {
	m, _ := newManager(t, newOutput(t, "out.yaml"))
	load(t, m, mixedConfig)

	m.Close()
	require.Zero(t, m.Len())
	_, ok := m.Histo1D("h1")
	require.False(t, ok)
	_, ok = m.Profile2D("p2")
	require.False(t, ok)

	require.True(t, m.AddHisto1D("h1", "again", 1, 0, 1, "TH1F"))
}
