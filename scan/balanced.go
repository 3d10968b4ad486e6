package scan

import "github.com/gopg/opg"

// Brackets is a reusable BalancedSkipper for token streams delimited by
// a fixed set of matching pairs (spec section 4.3's "balanced-delimiter
// skipping" fallback). Embed it, or wrap a Buffered with it, to give any
// Tokenizer host balanced-skip behaviour without hand-writing bracket
// matching for every language mode.
type Brackets struct {
	Tok      Tokenizer
	openers  map[string]string // opener -> matching closer
	closers  map[string]string // closer -> matching opener
}

// NewBrackets builds a Brackets fallback from a list of (opener, closer)
// token-text pairs, e.g. NewBrackets(tok, [2]string{"(", ")"}, [2]string{"[", "]"}).
func NewBrackets(tok Tokenizer, pairs ...[2]string) *Brackets {
	b := &Brackets{Tok: tok, openers: map[string]string{}, closers: map[string]string{}}
	for _, p := range pairs {
		b.openers[p[0]] = p[1]
		b.closers[p[1]] = p[0]
	}
	return b
}

// IsOpener reports whether text is a registered opening bracket.
func (b *Brackets) IsOpener(text string) bool {
	_, ok := b.openers[text]
	return ok
}

// IsCloser reports whether text is a registered closing bracket.
func (b *Brackets) IsCloser(text string) bool {
	_, ok := b.closers[text]
	return ok
}

// SkipBalancedBackward skips one token backward, classifying it as a
// closer (begin bracket matching), an opener (stop, unmatched), or
// ordinary (already skipped, caller should retry from further back).
func (b *Brackets) SkipBalancedBackward() (BoundaryKind, opg.Span) {
	pos := b.Tok.Pos()
	tok := b.Tok.BackwardToken()
	if tok == nil || tok.Text() == "" {
		return BufferBoundary, opg.Span{pos, pos}
	}
	if _, isOpener := b.openers[tok.Text()]; isOpener {
		return OpenParen, tok.Span()
	}
	opener, isCloser := b.closers[tok.Text()]
	if !isCloser {
		return Skipped, tok.Span()
	}
	depth := 1
	for depth > 0 {
		t := b.Tok.BackwardToken()
		if t == nil || t.Text() == "" {
			return BufferBoundary, tok.Span()
		}
		switch {
		case t.Text() == opener:
			depth--
		case b.closers[t.Text()] == opener:
			depth++
		}
	}
	return Skipped, tok.Span()
}

// SkipBalancedForward is the mirror of SkipBalancedBackward.
func (b *Brackets) SkipBalancedForward() (BoundaryKind, opg.Span) {
	pos := b.Tok.Pos()
	tok := b.Tok.ForwardToken()
	if tok == nil || tok.Text() == "" {
		return BufferBoundary, opg.Span{pos, pos}
	}
	if _, isCloser := b.closers[tok.Text()]; isCloser {
		return CloseParen, tok.Span()
	}
	closer, isOpener := b.openers[tok.Text()]
	if !isOpener {
		return Skipped, tok.Span()
	}
	depth := 1
	for depth > 0 {
		t := b.Tok.ForwardToken()
		if t == nil || t.Text() == "" {
			return BufferBoundary, tok.Span()
		}
		switch {
		case t.Text() == closer:
			depth--
		case b.openers[t.Text()] == closer:
			depth++
		}
	}
	return Skipped, tok.Span()
}
