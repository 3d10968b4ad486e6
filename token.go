package opg

import "fmt"

// Token is a single lexical unit as produced by a host editor's tokenizer.
// The engine never interprets the characters of a token's text; it only
// ever compares token identities against entries of a level table or rule
// table.
type Token interface {
	// Text is the token's literal spelling, used as the key into prec2,
	// level and rule tables.
	Text() string
	// Span reports where in the buffer the token was found.
	Span() Span
}

// Span is a half-open range [From, To) of buffer positions, in whatever
// unit the host editor's buffer uses (byte offset, rune offset, ...).
type Span [2]int64

// From returns the start of the span.
func (s Span) From() int64 { return s[0] }

// To returns the position just behind the end of the span.
func (s Span) To() int64 { return s[1] }

// Len returns the length of the span.
func (s Span) Len() int64 { return s[1] - s[0] }

// IsNull reports whether the span carries no information.
func (s Span) IsNull() bool { return s == Span{} }

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}

// simpleToken is the default Token implementation, sufficient for hosts
// that have no richer notion of a lexical unit than "text plus position".
type simpleToken struct {
	text string
	span Span
}

// NewToken builds a Token from raw text and a span.
func NewToken(text string, span Span) Token {
	return simpleToken{text: text, span: span}
}

func (t simpleToken) Text() string { return t.text }
func (t simpleToken) Span() Span   { return t.span }

func (t simpleToken) String() string {
	return fmt.Sprintf("%q%s", t.text, t.span)
}
