package histcfg

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joshuapare/histkit/hist"
	"github.com/joshuapare/histkit/outfile"
)

// Layout selects how the leading tokens of a line are read.
type Layout uint8

const (
	// LayoutAuto reads a line as flat when its first token is a known kind
	// and as directory form when its second token is.
	LayoutAuto Layout = iota
	// LayoutFlat reads every line as TYPE NAME TITLE ...
	LayoutFlat
	// LayoutDirectory reads every line as DIRECTORY TYPE NAME TITLE ...
	LayoutDirectory
)

var layoutNames = map[Layout]string{
	LayoutAuto:      "auto",
	LayoutFlat:      "flat",
	LayoutDirectory: "directory",
}

func (l Layout) String() string {
	if s, ok := layoutNames[l]; ok {
		return s
	}
	return fmt.Sprintf("Layout(%d)", uint8(l))
}

// ParseLayout maps "auto", "flat" or "directory" to a Layout.
func ParseLayout(s string) (Layout, error) {
	for l, name := range layoutNames {
		if strings.EqualFold(s, name) {
			return l, nil
		}
	}
	return LayoutAuto, fmt.Errorf("unknown layout %q (want auto, flat or directory)", s)
}

// ParseFile reads the configuration at path. Files ending in .yaml or .yml
// are read with ParseYAML and layout is ignored; everything else uses the
// line format. The error is non-nil only when the file cannot be opened or
// read; rejected entries are reported in Result.Diagnostics.
func ParseFile(path string, layout Layout) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Result{}, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return Result{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ExtYAML, ExtYML:
		return ParseYAML(f, path)
	default:
		return Parse(f, path, layout)
	}
}

// Parse reads line-format configuration from r. source names r in
// diagnostics. A line longer than 1 MiB is rejected as malformed unless it
// is a comment; reading continues with the next line.
func Parse(r io.Reader, source string, layout Layout) (Result, error) {
	var res Result
	br := bufio.NewReaderSize(decodeInput(r), 64*1024)

	lineNo := 0
	for {
		line, long, err := readLine(br)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return res, fmt.Errorf("read %s: %w", source, err)
		}
		lineNo++
		trim := strings.TrimSpace(strings.TrimRight(line, "\r"))
		if isComment(trim) {
			continue
		}
		if long {
			res.reject(source, lineNo, malformed("line exceeds %d bytes", maxLineBytes), excerpt(trim))
			continue
		}
		rec, err := parseLine(trim, layout, lineNo)
		if err != nil {
			res.reject(source, lineNo, err, trim)
			continue
		}
		res.Records = append(res.Records, rec)
	}
	return res, nil
}

// readLine returns the next line without its terminator. A line longer than
// maxLineBytes is consumed to its end and returned cut to maxLineBytes with
// long set.
func readLine(br *bufio.Reader) (line string, long bool, err error) {
	var buf []byte
	for {
		chunk, more, err := br.ReadLine()
		if err != nil {
			return string(buf), long, err
		}
		if !long {
			if room := maxLineBytes - len(buf); len(chunk) > room {
				buf = append(buf, chunk[:room]...)
				long = true
			} else {
				buf = append(buf, chunk...)
			}
		}
		if !more {
			return string(buf), long, nil
		}
	}
}

// excerpt shortens text for a diagnostic.
func excerpt(text string) string {
	if len(text) <= excerptBytes {
		return text
	}
	return text[:excerptBytes] + "..."
}

// ParseLine parses a single non-comment line.
func ParseLine(line string, layout Layout) (Record, error) {
	return parseLine(strings.TrimSpace(line), layout, 0)
}

func parseLine(line string, layout Layout, lineNo int) (Record, error) {
	fields, err := splitFields(line)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, malformed("empty line")
	}

	dir := ""
	switch layout {
	case LayoutDirectory:
		dir, fields = fields[0], fields[1:]
	case LayoutAuto:
		if _, ok := hist.ParseKind(fields[0]); !ok && len(fields) > 1 {
			if _, ok := hist.ParseKind(fields[1]); ok {
				dir, fields = fields[0], fields[1:]
			} else if isDirToken(fields[0]) {
				return nil, unknownKind(fields[1])
			}
		}
	}
	if len(fields) == 0 {
		return nil, malformed("missing type")
	}

	kind, ok := hist.ParseKind(fields[0])
	if !ok {
		return nil, unknownKind(fields[0])
	}
	meta := Meta{Dir: normalizeDir(dir), Kind: kind, Line: lineNo}

	if kind.Dim() == 1 {
		if len(fields) < Fields1D {
			return nil, malformed("%s needs %d fields, got %d", kind, Fields1D, len(fields))
		}
		rec := Record1D{Meta: meta}
		rec.Name, rec.Title = fields[1], fields[2]
		if rec.NBinsX, rec.XMin, rec.XMax, err = parseAxis(fields[3:6], "x"); err != nil {
			return nil, err
		}
		if err := validate1D(rec); err != nil {
			return nil, err
		}
		return rec, nil
	}

	if len(fields) < Fields2D {
		return nil, malformed("%s needs %d fields, got %d", kind, Fields2D, len(fields))
	}
	rec := Record2D{Meta: meta}
	rec.Name, rec.Title = fields[1], fields[2]
	if rec.NBinsX, rec.XMin, rec.XMax, err = parseAxis(fields[3:6], "x"); err != nil {
		return nil, err
	}
	if rec.NBinsY, rec.YMin, rec.YMax, err = parseAxis(fields[6:9], "y"); err != nil {
		return nil, err
	}
	if err := validate2D(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func parseAxis(f []string, axis string) (bins int, lo, hi float64, err error) {
	if bins, err = strconv.Atoi(f[0]); err != nil {
		return 0, 0, 0, malformed("%s bins %q is not an integer", axis, f[0])
	}
	if lo, err = strconv.ParseFloat(f[1], 64); err != nil {
		return 0, 0, 0, malformed("%s min %q is not a number", axis, f[1])
	}
	if hi, err = strconv.ParseFloat(f[2], 64); err != nil {
		return 0, 0, 0, malformed("%s max %q is not a number", axis, f[2])
	}
	return bins, lo, hi, nil
}

func validate1D(r Record1D) error {
	if err := outfile.ValidateName(r.Name); err != nil {
		return malformed("name: %v", err)
	}
	if err := r.X().Validate(); err != nil {
		return malformed("x axis: %v", err)
	}
	return nil
}

func validate2D(r Record2D) error {
	if err := outfile.ValidateName(r.Name); err != nil {
		return malformed("name: %v", err)
	}
	if err := r.X().Validate(); err != nil {
		return malformed("x axis: %v", err)
	}
	if err := r.Y().Validate(); err != nil {
		return malformed("y axis: %v", err)
	}
	return nil
}

// isDirToken reports whether a leading token can only be a directory path.
func isDirToken(tok string) bool {
	return tok == "" || tok == DirDot || strings.Contains(tok, DirSlash)
}

// normalizeDir maps the top-level tokens to "" and trims blanks.
func normalizeDir(dir string) string {
	dir = strings.TrimSpace(dir)
	if dir == DirDot || dir == DirSlash {
		return ""
	}
	return dir
}
