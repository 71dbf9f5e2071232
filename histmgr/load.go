package histmgr

import (
	"io"

	"github.com/joshuapare/histkit/internal/histcfg"
)

// LoadConfig reads the configuration file at path and creates every object
// it describes. Files ending in .yaml or .yml use the YAML format; others
// use the line format with the Manager's layout. Rejected entries are
// logged and skipped. It returns false only when the file cannot be opened
// or read.
func (m *Manager) LoadConfig(path string) bool {
	res, err := histcfg.ParseFile(path, m.layout)
	created := m.apply(res)
	if err != nil {
		m.log.Error("cannot load config", "config", path, "error", err)
		return false
	}
	m.log.Info("loaded config", "config", path, "created", created, "rejected", len(res.Diagnostics))
	return true
}

// LoadConfigReader is LoadConfig for line-format input read from r. source
// names r in log records.
func (m *Manager) LoadConfigReader(r io.Reader, source string) bool {
	res, err := histcfg.Parse(r, source, m.layout)
	created := m.apply(res)
	if err != nil {
		m.log.Error("cannot load config", "config", source, "error", err)
		return false
	}
	m.log.Info("loaded config", "config", source, "created", created, "rejected", len(res.Diagnostics))
	return true
}

func (m *Manager) apply(res histcfg.Result) int {
	for _, d := range res.Diagnostics {
		m.log.Error("config line skipped", "config", d.Source, "line", d.Line, "text", d.Text, "error", d.Err)
	}
	created := 0
	for _, rec := range res.Records {
		if m.AddRecord(rec) {
			created++
		}
	}
	return created
}
