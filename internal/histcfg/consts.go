package histcfg

const (
	// ============================================================================
	// Line Format Tokens
	// ============================================================================

	// CommentPrefix marks a comment line (after optional leading blanks).
	CommentPrefix = "#"

	// Quote opens and closes a token that may contain blanks.
	Quote = '"'

	// Escape makes the following quote or escape literal inside a quoted token.
	Escape = '\\'

	// ============================================================================
	// Top-Level Directory Tokens
	// ============================================================================

	// DirDot names the top-level directory in a directory-form line.
	DirDot = "."

	// DirSlash names the top-level directory in a directory-form line.
	DirSlash = "/"

	// ============================================================================
	// Field Counts
	// ============================================================================

	// Fields1D is the number of tokens of a flat one-axis line:
	// TYPE NAME TITLE NBINSX XMIN XMAX.
	Fields1D = 6

	// Fields2D is the number of tokens of a flat two-axis line:
	// TYPE NAME TITLE NBINSX XMIN XMAX NBINSY YMIN YMAX.
	Fields2D = 9

	// ============================================================================
	// File Extensions
	// ============================================================================

	// ExtYAML and ExtYML select the YAML configuration format.
	ExtYAML = ".yaml"
	ExtYML  = ".yml"

	// maxLineBytes bounds a single configuration line.
	maxLineBytes = 1 << 20

	// excerptBytes bounds the line text kept in a diagnostic for an
	// over-long line.
	excerptBytes = 80
)
