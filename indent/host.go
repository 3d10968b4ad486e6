package indent

import (
	"github.com/gopg/opg"
	"github.com/gopg/opg/scan"
)

// Pos is a buffer offset, consistent with the positions scan.Host and
// opg.Span already use.
type Pos = int64

// Host is the buffer-level capability the calculator needs beyond plain
// tokenization (spec section 4.5 rules reference line structure,
// existing indentation, and comment layout, none of which scan.Host
// exposes). A host editor implements both.
type Host interface {
	scan.Host

	// Column returns the 0-based column of pos on its line.
	Column(pos Pos) int
	// LineStart returns the position of the first non-whitespace
	// character on the line containing pos.
	LineStart(pos Pos) Pos
	// AtLineStart reports whether pos is exactly its line's first
	// non-whitespace character.
	AtLineStart(pos Pos) bool
	// GotoPos moves the cursor to an absolute position.
	GotoPos(pos Pos)
	// PeekForwardToken returns the next token without moving the cursor.
	PeekForwardToken() opg.Token
	// IsHangingAhead reports whether the token immediately following the
	// cursor is hanging: the last non-whitespace token on its line, but
	// not the first (spec section 4.5, glossary "Hanging token").
	IsHangingAhead() bool
	// AtCloseDelimiter reports whether the cursor sits at a closing
	// bracket, and if so the position of its matching opener.
	AtCloseDelimiter() (opener Pos, ok bool)
	// InBlockComment reports whether the cursor's line is inside a block
	// comment whose continuation lines are prefixed with "*", returning
	// the column to align that prefix with: either the previous line's
	// "*" column, or the comment opener's column plus one.
	InBlockComment() (alignCol int, ok bool)
	// CurrentIndent returns the width of the whitespace currently
	// leading the cursor's line.
	CurrentIndent() int
	// SetIndent rewrites the cursor line's leading whitespace to the
	// given column width, preserving the cursor's placement per spec
	// section 4.5's indent-line step 3.
	SetIndent(col int)
}
