package printer

import (
	"encoding/json"
	"fmt"

	"github.com/joshuapare/histkit/outfile"
)

// jsonDir represents a directory in JSON format.
type jsonDir struct {
	Name     string       `json:"name"`
	Path     string       `json:"path"`
	Objects  []jsonObject `json:"objects,omitempty"`
	Children []jsonDir    `json:"children,omitempty"`
}

// jsonObject represents an object record in JSON format.
type jsonObject struct {
	Name    string `json:"name"`
	Title   string `json:"title"`
	Kind    string `json:"kind"`
	Entries int64  `json:"entries"`
	Cycle   int    `json:"cycle"`
	Payload string `json:"payload,omitempty"`
}

func (p *Printer) buildJSONDir(d *outfile.Dir, depth int) jsonDir {
	out := jsonDir{Name: dirLabel(d), Path: d.Path()}
	if p.opts.ShowObjects {
		for _, rec := range d.Keys() {
			out.Objects = append(out.Objects, p.buildJSONObject(rec))
		}
	}
	if p.opts.MaxDepth > 0 && depth+1 >= p.opts.MaxDepth {
		return out
	}
	for _, sub := range d.Subdirs() {
		out.Children = append(out.Children, p.buildJSONDir(sub, depth+1))
	}
	return out
}

func (p *Printer) buildJSONObject(rec outfile.Record) jsonObject {
	obj := jsonObject{
		Name:    rec.Name,
		Title:   rec.Title,
		Kind:    rec.Kind.String(),
		Entries: rec.Entries,
		Cycle:   rec.Cycle,
	}
	if p.opts.ShowPayload {
		obj.Payload = string(rec.Payload)
	}
	return obj
}

// printTreeJSON prints a subtree as a single JSON document.
func (p *Printer) printTreeJSON(d *outfile.Dir) error {
	return p.writeJSON(p.buildJSONDir(d, 0))
}

// printObjectJSON prints one record as JSON.
func (p *Printer) printObjectJSON(rec outfile.Record) error {
	return p.writeJSON(p.buildJSONObject(rec))
}

func (p *Printer) writeJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(p.writer, "%s\n", data)
	return err
}
