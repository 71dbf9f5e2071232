package printer

import (
	"fmt"
	"strings"

	"github.com/joshuapare/histkit/outfile"
)

func dirLabel(d *outfile.Dir) string {
	if d.IsRoot() {
		return outfile.PathSeparator
	}
	return d.Name()
}

// printTreeText recursively prints a subtree in text format.
func (p *Printer) printTreeText(d *outfile.Dir, depth int) error {
	if p.opts.MaxDepth > 0 && depth >= p.opts.MaxDepth {
		return nil
	}

	indent := strings.Repeat(" ", depth*p.opts.IndentSize)
	subdirs := d.Subdirs()
	records := d.Keys()
	if _, err := fmt.Fprintf(p.writer, "%s[%s]  dirs: %d, objects: %d\n",
		indent, dirLabel(d), len(subdirs), len(records)); err != nil {
		return err
	}

	if p.opts.ShowObjects {
		for _, rec := range records {
			if err := p.printObjectText(rec, depth+1); err != nil {
				return err
			}
		}
	}

	for _, sub := range subdirs {
		if err := p.printTreeText(sub, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// printObjectText prints one record in text format.
func (p *Printer) printObjectText(rec outfile.Record, depth int) error {
	indent := strings.Repeat(" ", depth*p.opts.IndentSize)
	_, err := fmt.Fprintf(p.writer, "%s%s;%d [%s] %q entries=%d\n",
		indent, rec.Name, rec.Cycle, rec.Kind, rec.Title, rec.Entries)
	if err != nil || !p.opts.ShowPayload {
		return err
	}

	inner := strings.Repeat(" ", (depth+1)*p.opts.IndentSize)
	for _, line := range strings.Split(strings.TrimRight(string(rec.Payload), "\n"), "\n") {
		if _, err := fmt.Fprintf(p.writer, "%s%s\n", inner, line); err != nil {
			return err
		}
	}
	return nil
}
