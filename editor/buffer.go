/*
Package editor provides a minimal in-memory indent.Host over a complete
source text, for driving the indentation calculator from a CLI or a test
without a real interactive text widget behind it.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 The OPG Authors

*/
package editor

import (
	"strings"

	"github.com/gopg/opg"
	"github.com/gopg/opg/scan"
)

// Buffer wraps a scan.GoHost with the line-oriented bookkeeping
// indent.Host needs on top of plain tokenization: column arithmetic,
// line boundaries and comment/bracket awareness all read the original
// source text directly rather than going through the token stream.
type Buffer struct {
	*scan.GoHost
	source      string
	lineStarts  []int64 // offset of the first byte of each line
	lastIndent  int     // last column SetIndent recorded, for CurrentIndent
	hasIndent   bool
}

// NewBuffer builds a Buffer over source, tokenizing it with
// scan.GoTokenizer. pairs follows the same convention as GoTokenizer: nil
// defaults to "()", "[]", "{}".
func NewBuffer(sourceID, source string, pairs [][2]string) *Buffer {
	host := scan.GoTokenizer(sourceID, strings.NewReader(source), pairs)
	b := &Buffer{GoHost: host, source: source}
	b.lineStarts = append(b.lineStarts, 0)
	for i := 0; i < len(source); i++ {
		if source[i] == '\n' {
			b.lineStarts = append(b.lineStarts, int64(i+1))
		}
	}
	return b
}

func (b *Buffer) lineIndexOf(pos int64) int {
	lo, hi := 0, len(b.lineStarts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if b.lineStarts[mid] <= pos {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

func (b *Buffer) lineBounds(line int) (start, end int64) {
	start = b.lineStarts[line]
	if line+1 < len(b.lineStarts) {
		end = b.lineStarts[line+1] - 1 // exclude the newline itself
	} else {
		end = int64(len(b.source))
	}
	return
}

// Column returns pos's byte offset from the start of its line.
func (b *Buffer) Column(pos int64) int {
	start := b.lineStarts[b.lineIndexOf(pos)]
	return int(pos - start)
}

// LineStart returns the offset of the first non-whitespace byte on
// pos's line, or the line's end if the line is blank.
func (b *Buffer) LineStart(pos int64) int64 {
	start, end := b.lineBounds(b.lineIndexOf(pos))
	i := start
	for i < end && isBlank(b.source[i]) {
		i++
	}
	return i
}

// AtLineStart reports whether pos sits exactly at its line's first
// non-whitespace byte.
func (b *Buffer) AtLineStart(pos int64) bool {
	return pos == b.LineStart(pos)
}

// GotoPos repositions the underlying tokenizer cursor.
func (b *Buffer) GotoPos(pos int64) {
	b.SeekTo(pos)
}

// PeekForwardToken returns the next token without consuming it.
func (b *Buffer) PeekForwardToken() opg.Token {
	pos := b.Pos()
	tok := b.ForwardToken()
	b.SeekTo(pos)
	return tok
}

// IsHangingAhead reports whether the token immediately ahead of the
// cursor is the last token on its line but not the first (spec section
// 4.5, glossary "Hanging token").
func (b *Buffer) IsHangingAhead() bool {
	pos := b.Pos()
	defer b.SeekTo(pos)

	tok := b.ForwardToken()
	if tok == nil {
		return false
	}
	if b.AtLineStart(tok.Span().From()) {
		return false // it is the first token on its line, not a trailing one
	}
	next := b.ForwardToken()
	if next == nil {
		return true
	}
	return b.lineIndexOf(next.Span().From()) != b.lineIndexOf(tok.Span().From())
}

// AtCloseDelimiter reports whether the token immediately ahead of the
// cursor is a registered closing bracket, returning the offset of its
// matching opener.
func (b *Buffer) AtCloseDelimiter() (int64, bool) {
	save := b.Pos()
	tok := b.ForwardToken()
	if tok == nil || !b.IsCloser(tok.Text()) {
		b.SeekTo(save)
		return 0, false
	}
	kind, _ := b.SkipBalancedBackward()
	opener := b.Pos()
	b.SeekTo(save)
	if kind != scan.Skipped {
		return 0, false
	}
	return opener, true
}

// InBlockComment reports whether pos's line is a continuation line of a
// "/* ... */"-style comment, aligning with the previous line's leading
// "*" or, absent one, the comment opener's column plus one.
func (b *Buffer) InBlockComment() (int, bool) {
	pos := b.Pos()
	line := b.lineIndexOf(pos)
	start, end := b.lineBounds(line)
	trimmed := start
	for trimmed < end && isBlank(b.source[trimmed]) {
		trimmed++
	}
	if trimmed >= end || b.source[trimmed] != '*' {
		return 0, false
	}
	if !b.insideComment(start) {
		return 0, false
	}
	if line > 0 {
		prevStart, prevEnd := b.lineBounds(line - 1)
		i := prevStart
		for i < prevEnd && isBlank(b.source[i]) {
			i++
		}
		if i < prevEnd && b.source[i] == '*' {
			return int(i - prevStart), true
		}
	}
	openerLine := b.commentOpenerLine(start)
	openerStart, openerEnd := b.lineBounds(openerLine)
	openerCol := 0
	for i := openerStart; i+1 < openerEnd; i++ {
		if b.source[i] == '/' && b.source[i+1] == '*' {
			openerCol = int(i - openerStart)
		}
	}
	return openerCol + 1, true
}

// insideComment is a conservative "count unterminated /* before start"
// check over the raw source; sufficient for the CLI's diagnostic use.
func (b *Buffer) insideComment(before int64) bool {
	depth := 0
	for i := int64(0); i < before-1; i++ {
		if b.source[i] == '/' && b.source[i+1] == '*' {
			depth++
			i++
		} else if b.source[i] == '*' && b.source[i+1] == '/' {
			depth--
			i++
		}
	}
	return depth > 0
}

func (b *Buffer) commentOpenerLine(before int64) int {
	for i := before - 2; i >= 0; i-- {
		if b.source[i] == '/' && b.source[i+1] == '*' {
			return b.lineIndexOf(i)
		}
	}
	return 0
}

// CurrentIndent returns the column last applied by SetIndent, whichever
// line that call was for; SetIndent is not tracked per line. Only before
// the first SetIndent on this Buffer does it return the actual leading
// whitespace width of the cursor's line.
func (b *Buffer) CurrentIndent() int {
	if b.hasIndent {
		return b.lastIndent
	}
	return b.Column(b.LineStart(b.Pos()))
}

// SetIndent records the column the calculator assigned. The CLI reports
// this rather than rewriting the in-memory source, since Buffer is a
// read-only diagnostic view over a fixed text, not a live editor widget.
func (b *Buffer) SetIndent(col int) {
	b.lastIndent = col
	b.hasIndent = true
}

func isBlank(c byte) bool { return c == ' ' || c == '\t' }
