package scan

import "github.com/gopg/opg"

// Tokenizer is the interface a host editor implements to let the engine
// retrieve tokens around a cursor (spec section 4.3). Implementations
// skip comments and whitespace as part of each call. The empty-text
// token (Text() == "") is a sentinel meaning "no token was consumed",
// e.g. because the cursor is pinned by a non-token character such as a
// delimiter, or the buffer boundary was reached.
type Tokenizer interface {
	// BackwardToken skips backward past comments/whitespace, returns the
	// token immediately before the cursor, and leaves the cursor at the
	// token's start.
	BackwardToken() opg.Token
	// ForwardToken is the mirror operation.
	ForwardToken() opg.Token
	// Pos reports the tokenizer's current cursor position.
	Pos() int64
	// SeekTo moves the cursor to an absolute buffer position, used by the
	// scanner to un-consume a boundary token it decided not to cross.
	SeekTo(pos int64)
}

// BoundaryKind identifies what a host's balanced-delimiter fallback
// skip stopped at (spec section 4.3: "the scanner falls back to
// balanced-delimiter skipping ... signalling open-paren / close-paren /
// beginning-of-buffer as appropriate").
type BoundaryKind int8

const (
	// Skipped means the host matched and crossed one whole balanced span;
	// the cursor has already moved past it and scanning should continue.
	Skipped BoundaryKind = iota
	// OpenParen means the fallback stopped at an opening delimiter.
	OpenParen
	// CloseParen means the fallback found an unmatched closing delimiter
	// (a scan error, translated to StoppedAtOpener by the caller).
	CloseParen
	// BufferBoundary means the fallback reached the beginning (backward)
	// or end (forward) of the buffer.
	BufferBoundary
)

// BalancedSkipper is the host capability backing the scanner's fallback
// for tokens the tokenizer could not classify (spec section 4.3/4.4
// step 1).
type BalancedSkipper interface {
	SkipBalancedBackward() (BoundaryKind, opg.Span)
	SkipBalancedForward() (BoundaryKind, opg.Span)
}

// Host combines the two host-provided capabilities the scanner needs.
type Host interface {
	Tokenizer
	BalancedSkipper
}
