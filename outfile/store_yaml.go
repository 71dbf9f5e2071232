package outfile

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joshuapare/histkit/hist"
	"gopkg.in/yaml.v3"
)

// yamlFormat tags documents written by this package.
const yamlFormat = "histkit/v1"

type yamlDoc struct {
	Format string  `yaml:"format"`
	Root   yamlDir `yaml:"root"`
}

type yamlDir struct {
	Name    string       `yaml:"name,omitempty"`
	Objects []yamlRecord `yaml:"objects,omitempty"`
	Dirs    []yamlDir    `yaml:"dirs,omitempty"`
}

type yamlRecord struct {
	Name    string `yaml:"name"`
	Title   string `yaml:"title,omitempty"`
	Kind    string `yaml:"kind"`
	Entries int64  `yaml:"entries"`
	Cycle   int    `yaml:"cycle"`
	Payload string `yaml:"payload"`
}

type yamlStore struct {
	path      string
	fullFsync bool
}

func (s *yamlStore) save(root *Dir) error {
	data, err := yaml.Marshal(yamlDoc{Format: yamlFormat, Root: toYAMLDir(root)})
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	return writeFileDurable(s.path, data, s.fullFsync)
}

func (s *yamlStore) close() error { return nil }

func loadYAML(path string, root *Dir) (*yamlStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc yamlDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadFormat, err)
	}
	if doc.Format != yamlFormat {
		return nil, fmt.Errorf("%w: format %q", ErrBadFormat, doc.Format)
	}
	if err := fromYAMLDir(root, doc.Root); err != nil {
		return nil, err
	}
	return &yamlStore{path: path}, nil
}

func toYAMLDir(d *Dir) yamlDir {
	out := yamlDir{Name: d.name}
	for _, rec := range d.records {
		out.Objects = append(out.Objects, yamlRecord{
			Name:    rec.Name,
			Title:   rec.Title,
			Kind:    rec.Kind.String(),
			Entries: rec.Entries,
			Cycle:   rec.Cycle,
			Payload: string(rec.Payload),
		})
	}
	for _, sub := range d.subdirs {
		out.Dirs = append(out.Dirs, toYAMLDir(sub))
	}
	return out
}

func fromYAMLDir(d *Dir, in yamlDir) error {
	for _, r := range in.Objects {
		kind, ok := hist.ParseKind(r.Kind)
		if !ok {
			return fmt.Errorf("%w: object %q has kind %q", ErrBadFormat, r.Name, r.Kind)
		}
		d.addRecord(Record{
			Name:    r.Name,
			Title:   r.Title,
			Kind:    kind,
			Entries: r.Entries,
			Cycle:   r.Cycle,
			Payload: []byte(r.Payload),
		})
	}
	for _, sub := range in.Dirs {
		if err := ValidateName(sub.Name); err != nil {
			return fmt.Errorf("%w: %v", ErrBadFormat, err)
		}
		if err := fromYAMLDir(d.addSubdir(sub.Name), sub); err != nil {
			return err
		}
	}
	return nil
}

// fileMode returns the permissions of the file at path, or 0644 when it
// does not exist yet.
func fileMode(path string) os.FileMode {
	if fi, err := os.Stat(path); err == nil {
		return fi.Mode().Perm()
	}
	return 0o644
}

// writeFileDurable replaces path with data: it writes a temp file in the
// same directory, syncs it, renames it over path and syncs the directory.
func writeFileDurable(path string, data []byte, fullFsync bool) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	cleanup := func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}

	if _, err := tmp.Write(data); err != nil {
		cleanup()
		return err
	}
	if err := tmp.Chmod(fileMode(path)); err != nil {
		cleanup()
		return err
	}
	if err := fdatasync(tmp, fullFsync); err != nil {
		cleanup()
		return fmt.Errorf("sync %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return syncDir(dir)
}
