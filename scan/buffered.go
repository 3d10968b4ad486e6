package scan

import "github.com/gopg/opg"

// ForwardSource produces tokens once, left to right, e.g. a generated
// lexer such as sub-package lexmach. It has no notion of a cursor.
type ForwardSource interface {
	// Next returns the next token, or ok=false at end of input.
	Next() (tok opg.Token, ok bool)
}

// Buffered turns any ForwardSource into a bidirectional Tokenizer by
// caching every token it has pulled from the source behind the current
// cursor position (spec section 4.3 asks only for a bidirectional
// interface; how a host achieves that is left open, and caching is the
// natural adapter for lexers that can only run forward).
type Buffered struct {
	src       ForwardSource
	tokens    []opg.Token
	idx       int // tokens[idx] is the next token ForwardToken() would return
	exhausted bool
}

// NewBuffered wraps a forward-only source.
func NewBuffered(src ForwardSource) *Buffered {
	return &Buffered{src: src}
}

func (b *Buffered) fillTo(i int) bool {
	for len(b.tokens) <= i {
		if b.exhausted {
			return false
		}
		tok, ok := b.src.Next()
		if !ok {
			b.exhausted = true
			return false
		}
		b.tokens = append(b.tokens, tok)
	}
	return true
}

// ForwardToken returns the token immediately after the cursor.
func (b *Buffered) ForwardToken() opg.Token {
	if !b.fillTo(b.idx) {
		return nil
	}
	tok := b.tokens[b.idx]
	b.idx++
	return tok
}

// BackwardToken returns the token immediately before the cursor.
func (b *Buffered) BackwardToken() opg.Token {
	if b.idx == 0 {
		return nil
	}
	b.idx--
	return b.tokens[b.idx]
}

// Pos reports the buffer offset of the token boundary the cursor
// currently sits at.
func (b *Buffered) Pos() int64 {
	if b.idx < len(b.tokens) {
		return b.tokens[b.idx].Span().From()
	}
	if b.idx > 0 && b.idx-1 < len(b.tokens) {
		return b.tokens[b.idx-1].Span().To()
	}
	return 0
}

// SeekTo moves the cursor to sit just before the first token starting
// at or after pos, pulling further tokens from the source as needed. If
// no such token exists, the cursor is left after the last token.
func (b *Buffered) SeekTo(pos int64) {
	for i := 0; b.fillTo(i); i++ {
		if b.tokens[i].Span().From() >= pos {
			b.idx = i
			return
		}
	}
	b.idx = len(b.tokens)
}
