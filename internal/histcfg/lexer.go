package histcfg

import (
	"strings"
	"unicode"
)

// splitFields splits a line into blank-separated tokens. A token starting
// with a quote runs to the matching closing quote and may contain blanks;
// inside it Escape makes the next quote or Escape literal.
func splitFields(line string) ([]string, error) {
	var (
		fields []string
		sb     strings.Builder
	)
	rs := []rune(line)
	for i := 0; i < len(rs); {
		if unicode.IsSpace(rs[i]) {
			i++
			continue
		}

		if rs[i] != Quote {
			start := i
			for i < len(rs) && !unicode.IsSpace(rs[i]) {
				i++
			}
			fields = append(fields, string(rs[start:i]))
			continue
		}

		sb.Reset()
		i++
		closed := false
		for i < len(rs) {
			c := rs[i]
			if c == Escape && i+1 < len(rs) && (rs[i+1] == Quote || rs[i+1] == Escape) {
				sb.WriteRune(rs[i+1])
				i += 2
				continue
			}
			i++
			if c == Quote {
				closed = true
				break
			}
			sb.WriteRune(c)
		}
		if !closed {
			return nil, malformed("unterminated quoted token")
		}
		if i < len(rs) && !unicode.IsSpace(rs[i]) {
			return nil, malformed("unexpected %q after closing quote", rs[i])
		}
		fields = append(fields, sb.String())
	}
	return fields, nil
}

// isComment reports whether a trimmed line is blank or a comment.
func isComment(trimmed string) bool {
	return trimmed == "" || strings.HasPrefix(trimmed, CommentPrefix)
}
