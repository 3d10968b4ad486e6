package scan

import (
	"errors"
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/gopg/opg"
	"github.com/gopg/opg/level"
)

// ErrSelfEqual is returned when a scan discovers a token whose left and
// right level coincide at the point where the stack of pending levels
// closes — an ambiguous grammar per the resolution of the "self-equal
// token" open question (spec section 9, DESIGN.md).
var ErrSelfEqual = errors.New("scan: self-equal token, cannot resolve sibling boundary")

// ErrGrammarInconsistency is returned when the level stack empties on a
// pop that matches neither a legitimate pair close nor a self-equal
// token — a sign the level table itself is malformed.
var ErrGrammarInconsistency = errors.New("scan: level stack closed on an inconsistent boundary")

// Scanner walks a token stream using a level.Table to find sexp
// boundaries (spec section 4.4). It holds no buffer state of its own;
// all position tracking lives in the Host.
type Scanner struct {
	Levels *level.Table
	Host   Host
}

// NewScanner builds a Scanner over a solved level table and a host.
func NewScanner(levels *level.Table, host Host) *Scanner {
	return &Scanner{Levels: levels, Host: host}
}

type direction int8

const (
	dirBackward direction = iota
	dirForward
)

// sideLevels picks the "near" (the side facing the cursor, used to seed
// and grow the pending stack) and "far" (the side facing outward,
// compared against the stack) level of a token's Pair for a scan
// direction. Backward scanning consumes tokens right-to-left, so the
// token's Left level is what a preceding neighbour must satisfy (near)
// and Right is what it exposes leftward (far); forward scanning is the
// mirror image.
func sideLevels(pair level.Pair, dir direction) (near, far *int) {
	if dir == dirBackward {
		return pair.Left, pair.Right
	}
	return pair.Right, pair.Left
}

// BackwardSexp skips exactly one sub-expression ending at the host's
// current cursor position, moving the cursor to its start. If halfsexp
// is set, a lone operator immediately at the cursor is accepted as if
// it were an atom (its own left operand is consumed too), per spec
// section 4.4.
func (s *Scanner) BackwardSexp(halfsexp bool) (opg.ScanResult, error) {
	return s.sexp(halfsexp, dirBackward)
}

// ForwardSexp is the mirror of BackwardSexp.
func (s *Scanner) ForwardSexp(halfsexp bool) (opg.ScanResult, error) {
	return s.sexp(halfsexp, dirForward)
}

func (s *Scanner) readToken(dir direction) opg.Token {
	if dir == dirBackward {
		return s.Host.BackwardToken()
	}
	return s.Host.ForwardToken()
}

func (s *Scanner) fallback(dir direction) (opg.ScanResult, error) {
	var kind BoundaryKind
	var span opg.Span
	if dir == dirBackward {
		kind, span = s.Host.SkipBalancedBackward()
	} else {
		kind, span = s.Host.SkipBalancedForward()
	}
	switch kind {
	case Skipped:
		// host already crossed a balanced span; caller should keep scanning
		// as though nothing happened at this level, so we simply recurse.
		return s.sexp(false, dir)
	case OpenParen, CloseParen, BufferBoundary:
		return opg.ScanResult{Kind: opg.StoppedAtOpener, Pos: span}, nil
	default:
		return opg.ScanResult{}, fmt.Errorf("scan: unrecognised boundary kind %d from host", kind)
	}
}

// sexp implements the per-token loop of spec section 4.4, unified for
// both directions via the near/far abstraction. It maintains a stack of
// still-open "far" thresholds; a token attaches to the sexp under
// construction as long as it does not overshoot every pending
// threshold. The two ScanKind outcomes StoppedAtOp and SkippedPlain —
// which the spec's per-step prose does not literally distinguish — are
// told apart here as follows: no progress before
// the stack empties means the cursor was already sitting at an
// unattachable operator (StoppedAtOp); one or more tokens consumed
// first means a complete sub-expression was found and only the
// trailing boundary token is un-consumed (SkippedPlain).
func (s *Scanner) sexp(halfsexp bool, dir direction) (opg.ScanResult, error) {
	stack := arraystack.New()
	consumed := 0

	for {
		pos := s.Host.Pos()
		tok := s.readToken(dir)
		if tok == nil || tok.Text() == "" {
			return s.fallback(dir)
		}

		pair := s.Levels.Get(tok.Text())
		near, far := sideLevels(pair, dir)

		if near == nil && far == nil {
			// The token was simply never declared in the level table — an
			// ordinary atom (identifier, literal, ...), not a bracket. It is
			// a fully skipped unit on its own: absorb it into the sexp
			// under construction and keep scanning, the same as any other
			// token that doesn't touch the pending-level stack. This is
			// distinct from tok == nil/"" above (spec section 4.3's "no
			// token was consumed" signal), which is the only case that
			// should fall back to the host's balanced-delimiter skip.
			consumed++
			continue
		}

		if far == nil {
			// A closer in this direction (no right level): crossing it
			// always begins a fresh nested search for its matching opener,
			// regardless of what is already pending on the stack.
			stack.Push(*near)
			halfsexp = false
			consumed++
			continue
		}

		if near == nil {
			// An opener in this direction (no left level): it can only
			// ever discharge a pending closer expectation already on the
			// stack, so it runs through the same comparison the generic
			// token case below does, but never pushes anything itself.
			if stack.Empty() {
				return opg.ScanResult{Kind: opg.StoppedAtOpener, Pos: tok.Span(), Token: tok}, nil
			}
			for {
				top, ok := stack.Peek()
				if !ok || top.(int) <= *far {
					break
				}
				stack.Pop()
			}
			if stack.Empty() {
				return opg.ScanResult{Kind: opg.StoppedAtOpener, Pos: tok.Span(), Token: tok}, nil
			}
			for {
				top, ok := stack.Peek()
				if !ok || top.(int) != *far {
					break
				}
				stack.Pop()
			}
			consumed++
			if stack.Empty() {
				return opg.ScanResult{Kind: opg.SkippedPair, Pos: tok.Span(), Token: tok}, nil
			}
			continue
		}

		if stack.Empty() {
			if halfsexp {
				stack.Push(*near)
				halfsexp = false
				consumed++
				continue
			}
			if consumed == 0 {
				return opg.ScanResult{Kind: opg.StoppedAtOp, Level: *near, Pos: tok.Span(), Token: tok}, nil
			}
			s.Host.SeekTo(pos)
			return opg.ScanResult{Kind: opg.SkippedPlain, Pos: opg.Span{pos, pos}}, nil
		}

		for {
			top, ok := stack.Peek()
			if !ok || top.(int) <= *far {
				break
			}
			stack.Pop()
		}
		if stack.Empty() {
			if consumed == 0 {
				return opg.ScanResult{Kind: opg.StoppedAtOp, Level: *near, Pos: tok.Span(), Token: tok}, nil
			}
			s.Host.SeekTo(pos)
			return opg.ScanResult{Kind: opg.SkippedPlain, Pos: opg.Span{pos, pos}}, nil
		}

		for {
			top, ok := stack.Peek()
			if !ok || top.(int) != *far {
				break
			}
			stack.Pop()
		}
		consumed++
		if stack.Empty() {
			// An ordinary (non-bracket) token can legitimately empty the
			// stack via the '==' phase only when it is self-equal; any
			// other case means the level table itself is inconsistent.
			if *near == *far {
				return opg.ScanResult{}, ErrSelfEqual
			}
			return opg.ScanResult{}, ErrGrammarInconsistency
		}
		stack.Push(*near)
	}
}
