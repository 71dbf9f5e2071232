package histcfg

import (
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// decodeInput returns a reader yielding UTF-8. A UTF-8 BOM is dropped and
// a UTF-16 BOM (either byte order) switches to UTF-16 decoding; input
// without a BOM is taken as UTF-8.
func decodeInput(r io.Reader) io.Reader {
	return transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
}
