package scan_test

import (
	"testing"

	"github.com/gopg/opg"
	"github.com/gopg/opg/level"
	"github.com/gopg/opg/prec2"
	"github.com/gopg/opg/scan"
)

// listHost is a minimal, in-memory Host over a fixed token list, used to
// exercise Scanner without a real buffer or lexer. Token i occupies the
// half-open span [i, i+1); the cursor position is the index itself.
type listHost struct {
	toks []opg.Token
	idx  int64
}

func newListHost(words ...string) *listHost {
	h := &listHost{}
	for i, w := range words {
		h.toks = append(h.toks, opg.NewToken(w, opg.Span{int64(i), int64(i + 1)}))
	}
	h.idx = int64(len(words))
	return h
}

func (h *listHost) BackwardToken() opg.Token {
	if h.idx == 0 {
		return nil
	}
	h.idx--
	return h.toks[h.idx]
}

func (h *listHost) ForwardToken() opg.Token {
	if int(h.idx) >= len(h.toks) {
		return nil
	}
	tok := h.toks[h.idx]
	h.idx++
	return tok
}

func (h *listHost) Pos() int64     { return h.idx }
func (h *listHost) SeekTo(p int64) { h.idx = p }

func (h *listHost) SkipBalancedBackward() (scan.BoundaryKind, opg.Span) {
	return scan.BufferBoundary, opg.Span{0, 0}
}
func (h *listHost) SkipBalancedForward() (scan.BoundaryKind, opg.Span) {
	n := int64(len(h.toks))
	return scan.BufferBoundary, opg.Span{n, n}
}

// parenIdLevels builds a level table for the tiny grammar "( id )".
func parenIdLevels(t *testing.T) *level.Table {
	t.Helper()
	table := prec2.New()
	table.Set("(", "id", opg.LT, false)
	table.Set("id", ")", opg.GT, false)
	table.Set("(", ")", opg.EQ, false)
	levels, err := level.Solve(table)
	if err != nil {
		t.Fatalf("level.Solve failed: %v", err)
	}
	return levels
}

func TestBackwardSexpSkipsBalancedPair(t *testing.T) {
	host := newListHost("(", "id", ")")
	s := scan.NewScanner(parenIdLevels(t), host)

	result, err := s.BackwardSexp(false)
	if err != nil {
		t.Fatalf("BackwardSexp returned error: %v", err)
	}
	if result.Kind != opg.SkippedPair {
		t.Errorf("Kind = %v; want SkippedPair", result.Kind)
	}
	if host.Pos() != 0 {
		t.Errorf("cursor left at %d; want 0 (rewound to before the opener)", host.Pos())
	}
}

func TestBackwardSexpStopsAtUnattachedOperator(t *testing.T) {
	table := prec2.New()
	table.Set("+", "+", opg.GT, false)
	levels, err := level.Solve(table)
	if err != nil {
		t.Fatalf("level.Solve failed: %v", err)
	}
	host := newListHost("+")
	s := scan.NewScanner(levels, host)

	result, err := s.BackwardSexp(false)
	if err != nil {
		t.Fatalf("BackwardSexp returned error: %v", err)
	}
	if result.Kind != opg.StoppedAtOp {
		t.Errorf("Kind = %v; want StoppedAtOp", result.Kind)
	}
}

func TestBackwardSexpHalfsexpAcceptsLoneOperator(t *testing.T) {
	table := prec2.New()
	table.Set("+", "+", opg.GT, false)
	levels, err := level.Solve(table)
	if err != nil {
		t.Fatalf("level.Solve failed: %v", err)
	}
	host := newListHost("+")
	s := scan.NewScanner(levels, host)

	result, err := s.BackwardSexp(true)
	if err != nil {
		t.Fatalf("BackwardSexp returned error: %v", err)
	}
	if result.Kind != opg.StoppedAtOpener {
		t.Errorf("Kind = %v; want StoppedAtOpener (ran off the buffer after accepting the operator)", result.Kind)
	}
}

// TestBackwardSexpSkipsSinglePlainAtom exercises a plain token that never
// appears in the level table at all (an identifier, as a real tokenizer
// would produce) rather than a bracket. It must be skipped as its own
// atomic sub-expression, not routed through the balanced-delimiter
// fallback: scanning backward from the end of "a + b" must stop after
// "b" alone, leaving "+" unconsumed.
func TestBackwardSexpSkipsSinglePlainAtom(t *testing.T) {
	table := prec2.New()
	table.Set("+", "+", opg.GT, false)
	levels, err := level.Solve(table)
	if err != nil {
		t.Fatalf("level.Solve failed: %v", err)
	}
	host := newListHost("a", "+", "b")
	s := scan.NewScanner(levels, host)

	result, err := s.BackwardSexp(false)
	if err != nil {
		t.Fatalf("BackwardSexp returned error: %v", err)
	}
	if result.Kind != opg.SkippedPlain {
		t.Errorf("Kind = %v; want SkippedPlain", result.Kind)
	}
	if host.Pos() != 2 {
		t.Errorf("cursor left at %d; want 2 (rewound to just before \"+\", having skipped only \"b\")", host.Pos())
	}
}
