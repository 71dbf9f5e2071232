package histcfg

import (
	"fmt"
	"io"

	"github.com/joshuapare/histkit/hist"
	"gopkg.in/yaml.v3"
)

// yamlConfig is the document layout of a YAML configuration:
//
//	histograms:
//	  - dir: data/sub
//	    type: TH2D
//	    name: h2
//	    title: XY
//	    x: {bins: 10, min: 0, max: 10}
//	    y: {bins: 10, min: 0, max: 10}
type yamlConfig struct {
	Histograms []yaml.Node `yaml:"histograms"`
}

type yamlEntry struct {
	Dir   string    `yaml:"dir"`
	Type  string    `yaml:"type"`
	Name  string    `yaml:"name"`
	Title string    `yaml:"title"`
	X     *yamlAxis `yaml:"x"`
	Y     *yamlAxis `yaml:"y"`
}

type yamlAxis struct {
	Bins int     `yaml:"bins"`
	Min  float64 `yaml:"min"`
	Max  float64 `yaml:"max"`
}

// ParseYAML reads YAML configuration from r. Each entry is checked like a
// configuration line; Line in records and diagnostics is the entry's line
// in the document. The error is non-nil only when the document itself
// cannot be decoded.
func ParseYAML(r io.Reader, source string) (Result, error) {
	var (
		res Result
		cfg yamlConfig
	)
	dec := yaml.NewDecoder(decodeInput(r))
	if err := dec.Decode(&cfg); err != nil {
		if err == io.EOF {
			return res, nil
		}
		return res, fmt.Errorf("decode %s: %w", source, err)
	}

	for i := range cfg.Histograms {
		node := &cfg.Histograms[i]
		var e yamlEntry
		if err := node.Decode(&e); err != nil {
			res.reject(source, node.Line, malformed("%v", err), fmt.Sprintf("histograms[%d]", i))
			continue
		}
		rec, err := e.record(node.Line)
		if err != nil {
			res.reject(source, node.Line, err, fmt.Sprintf("histograms[%d] %s %s", i, e.Type, e.Name))
			continue
		}
		res.Records = append(res.Records, rec)
	}
	return res, nil
}

func (e yamlEntry) record(line int) (Record, error) {
	kind, ok := hist.ParseKind(e.Type)
	if !ok {
		return nil, unknownKind(e.Type)
	}
	if e.X == nil {
		return nil, malformed("%s %q: missing x axis", kind, e.Name)
	}
	meta := Meta{Dir: normalizeDir(e.Dir), Kind: kind, Name: e.Name, Title: e.Title, Line: line}

	if kind.Dim() == 1 {
		rec := Record1D{Meta: meta, NBinsX: e.X.Bins, XMin: e.X.Min, XMax: e.X.Max}
		if err := validate1D(rec); err != nil {
			return nil, err
		}
		return rec, nil
	}

	if e.Y == nil {
		return nil, malformed("%s %q: missing y axis", kind, e.Name)
	}
	rec := Record2D{
		Meta:   meta,
		NBinsX: e.X.Bins, XMin: e.X.Min, XMax: e.X.Max,
		NBinsY: e.Y.Bins, YMin: e.Y.Min, YMax: e.Y.Max,
	}
	if err := validate2D(rec); err != nil {
		return nil, err
	}
	return rec, nil
}
