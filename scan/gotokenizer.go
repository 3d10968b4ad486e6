package scan

import (
	"io"
	"text/scanner"

	"github.com/gopg/opg"
)

// goSource adapts the standard library's text/scanner into a
// ForwardSource, mirroring the teacher toolbox's DefaultTokenizer.
type goSource struct {
	s    scanner.Scanner
	skip bool
}

func (g *goSource) Next() (opg.Token, bool) {
	for {
		r := g.s.Scan()
		if r == scanner.EOF {
			return nil, false
		}
		if g.skip && r == scanner.Comment {
			continue
		}
		text := g.s.TokenText()
		from := int64(g.s.Position.Offset)
		to := int64(g.s.Pos().Offset)
		return opg.NewToken(text, opg.Span{from, to}), true
	}
}

// GoOption configures a GoTokenizer.
type GoOption func(*goSource)

// SkipComments discards Comment tokens instead of returning them.
func SkipComments(b bool) GoOption {
	return func(g *goSource) { g.skip = b }
}

// GoHost is the bidirectional, balanced-skip-capable Host produced by
// GoTokenizer: text/scanner lexing plus caching plus bracket matching,
// wired together exactly as the scanner package expects (spec section
// 4.3).
type GoHost struct {
	*Buffered
	*Brackets
}

// GoTokenizer builds a Host over Go-like lexical syntax (identifiers,
// numbers, strings, operators as single runes) with the given bracket
// pairs registered for the balanced-skip fallback. If no pairs are
// given, the conventional "()", "[]", "{}" triple is used.
func GoTokenizer(sourceID string, input io.Reader, pairs [][2]string, opts ...GoOption) *GoHost {
	src := &goSource{}
	src.s.Init(input)
	src.s.Filename = sourceID
	for _, opt := range opts {
		opt(src)
	}
	if len(pairs) == 0 {
		pairs = [][2]string{{"(", ")"}, {"[", "]"}, {"{", "}"}}
	}
	buf := NewBuffered(src)
	return &GoHost{Buffered: buf, Brackets: NewBrackets(buf, pairs...)}
}
