package level

import (
	"fmt"

	"github.com/cnf/structhash"
	"golang.org/x/exp/slices"
)

// Pair is a token's level variable: an optional left and an optional
// right integer level. A token whose Left is absent after solving is an
// opener; a token whose Right is absent is a closer (spec section 3).
type Pair struct {
	Left, Right *int
}

// HasLeft reports whether this token has a left level (is not an opener).
func (p Pair) HasLeft() bool { return p.Left != nil }

// HasRight reports whether this token has a right level (is not a closer).
func (p Pair) HasRight() bool { return p.Right != nil }

func (p Pair) String() string {
	l, r := "_", "_"
	if p.Left != nil {
		l = fmt.Sprintf("%d", *p.Left)
	}
	if p.Right != nil {
		r = fmt.Sprintf("%d", *p.Right)
	}
	return fmt.Sprintf("(%s,%s)", l, r)
}

// Table maps a token to its level Pair (spec section 3, "level table").
// It is built once per language mode by Solve and is immutable afterwards.
type Table struct {
	levels map[string]Pair
}

// Get returns the level pair for a token, or the zero Pair (both sides
// absent) if the token never appeared in the source prec2 table.
func (t *Table) Get(token string) Pair {
	return t.levels[token]
}

// Tokens returns every token with a recorded level pair.
func (t *Table) Tokens() []string {
	out := make([]string, 0, len(t.levels))
	for tok := range t.levels {
		out = append(out, tok)
	}
	slices.Sort(out)
	return out
}

// Dump renders the table for interactive debugging (mirrors the
// teacher toolbox's Grammar.Dump habit).
func (t *Table) Dump() string {
	out := ""
	for _, tok := range t.Tokens() {
		out += fmt.Sprintf("%s\t%s\n", tok, t.levels[tok])
	}
	return out
}

// Signature returns a content hash of the solved table, so a host editor
// can cheaply tell whether a language mode's derived levels changed
// across a Setup call and invalidate any cached scanner state that was
// built from the previous table.
func (t *Table) Signature() string {
	type entry struct {
		Token string
		L, R  int
		HasL  bool
		HasR  bool
	}
	entries := make([]entry, 0, len(t.levels))
	for _, tok := range t.Tokens() {
		p := t.levels[tok]
		e := entry{Token: tok, HasL: p.HasLeft(), HasR: p.HasRight()}
		if p.Left != nil {
			e.L = *p.Left
		}
		if p.Right != nil {
			e.R = *p.Right
		}
		entries = append(entries, e)
	}
	sig, err := structhash.Hash(entries, 1)
	if err != nil {
		tracer().Errorf("computing level table signature: %v", err)
		return ""
	}
	return sig
}
