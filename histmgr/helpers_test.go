package histmgr

import (
	"bufio"
	"bytes"
	"encoding/json"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/joshuapare/histkit/outfile"
	"github.com/stretchr/testify/require"
)

// logSink collects JSON log records written by a Manager.
type logSink struct {
	buf bytes.Buffer
}

func (s *logSink) logger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(&s.buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func (s *logSink) records(t *testing.T) []map[string]any {
	t.Helper()
	var out []map[string]any
	sc := bufio.NewScanner(bytes.NewReader(s.buf.Bytes()))
	for sc.Scan() {
		var rec map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &rec))
		out = append(out, rec)
	}
	return out
}

// errorsContaining returns the records at level ERROR or WARN whose error
// attribute contains substr.
func (s *logSink) errorsContaining(t *testing.T, substr string) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, rec := range s.records(t) {
		if rec["level"] != "ERROR" && rec["level"] != "WARN" {
			continue
		}
		if msg, _ := rec["error"].(string); strings.Contains(msg, substr) {
			out = append(out, rec)
		}
	}
	return out
}

func newOutput(t *testing.T, name string) *outfile.File {
	t.Helper()
	f, err := outfile.Create(filepath.Join(t.TempDir(), name), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func newManager(t *testing.T, out *outfile.File) (*Manager, *logSink) {
	t.Helper()
	sink := &logSink{}
	return New(out, WithLogger(sink.logger())), sink
}

func load(t *testing.T, m *Manager, config string) {
	t.Helper()
	require.True(t, m.LoadConfigReader(strings.NewReader(config), "test.cfg"))
}
