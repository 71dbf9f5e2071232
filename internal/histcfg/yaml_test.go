package histcfg

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/joshuapare/histkit/hist"
	"github.com/stretchr/testify/require"
)

const yamlConfigText = `histograms:
  - type: TH1F
    name: h1
    title: Energy
    x: {bins: 100, min: 0, max: 50}
  - dir: data/sub
    type: TH2D
    name: h2
    title: XY
    x: {bins: 10, min: 0, max: 10}
    y: {bins: 10, min: 0, max: 10}
  - type: TH3F
    name: cube
    x: {bins: 1, min: 0, max: 1}
  - type: TH2F
    name: noy
    x: {bins: 1, min: 0, max: 1}
  - type: TH1D
    name: badbins
    x: {bins: many, min: 0, max: 1}
  - dir: .
    type: TProfile
    name: p1
    x: {bins: 5, min: 0, max: 5}
`

func TestParseYAML(t *testing.T) {
	res, err := ParseYAML(strings.NewReader(yamlConfigText), "cfg.yaml")
	require.NoError(t, err)

	require.Len(t, res.Records, 3)
	require.Equal(t, Record1D{
		Meta:   Meta{Kind: hist.TH1F, Name: "h1", Title: "Energy", Line: 2},
		NBinsX: 100, XMin: 0, XMax: 50,
	}, res.Records[0])
	require.Equal(t, Record2D{
		Meta:   Meta{Dir: "data/sub", Kind: hist.TH2D, Name: "h2", Title: "XY", Line: 6},
		NBinsX: 10, XMin: 0, XMax: 10,
		NBinsY: 10, YMin: 0, YMax: 10,
	}, res.Records[1])
	require.Equal(t, "", res.Records[2].Common().Dir)
	require.Equal(t, hist.TProfile, res.Records[2].Common().Kind)

	require.Len(t, res.Diagnostics, 3)
	require.ErrorIs(t, res.Diagnostics[0], ErrUnknownKind)
	require.Equal(t, 12, res.Diagnostics[0].Line)
	require.ErrorIs(t, res.Diagnostics[1], ErrMalformedLine)
	require.ErrorIs(t, res.Diagnostics[2], ErrMalformedLine)
}

func TestParseYAML_MatchesLineFormat(t *testing.T) {
	lines := `TH1F h1 "Energy" 100 0 50
data/sub TH2D h2 "XY" 10 0 10 10 0 10
`
	fromLines, err := Parse(strings.NewReader(lines), "cfg.txt", LayoutAuto)
	require.NoError(t, err)
	fromYAML, err := ParseYAML(strings.NewReader(yamlConfigText), "cfg.yaml")
	require.NoError(t, err)

	for i := range fromLines.Records {
		a, b := fromLines.Records[i], fromYAML.Records[i]
		ma, mb := a.Common(), b.Common()
		ma.Line, mb.Line = 0, 0
		require.Equal(t, ma, mb)
	}
	require.Equal(t, fromLines.Records[0].(Record1D).X(), fromYAML.Records[0].(Record1D).X())
	require.Equal(t, fromLines.Records[1].(Record2D).Y(), fromYAML.Records[1].(Record2D).Y())
}

func TestParseYAML_Empty(t *testing.T) {
	res, err := ParseYAML(strings.NewReader(""), "empty.yaml")
	require.NoError(t, err)
	require.Empty(t, res.Records)
}

func TestParseYAML_Invalid(t *testing.T) {
	_, err := ParseYAML(strings.NewReader("histograms: [unclosed"), "bad.yaml")
	require.Error(t, err)
}

func TestParseFile_YAMLByExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "histos.yml")
	require.NoError(t, os.WriteFile(path, []byte(yamlConfigText), 0o644))

	res, err := ParseFile(path, LayoutFlat)
	require.NoError(t, err)
	require.Len(t, res.Records, 3)
}
