package prec2

import (
	"fmt"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/utils"
	"golang.org/x/exp/slices"

	"github.com/gopg/opg"
	"github.com/gopg/opg/internal/matrix"
)

// Conflict records a cell that was written twice with different values.
// Per spec section 9's open question on override tie-breaks, both the
// original and the conflicting value are retained here rather than
// silently dropped, even when an override table decides the winner.
type Conflict struct {
	Left, Right string
	Old, New    opg.RelValue
}

func (c Conflict) String() string {
	return fmt.Sprintf("(%s,%s): %s vs %s", c.Left, c.Right, c.Old, c.New)
}

// Table is a prec2 relation table: a mapping (TokenLeft, TokenRight) ->
// RelValue, backed by a sparse matrix keyed by interned token indices.
type Table struct {
	m         *matrix.IntMatrix
	ids       map[string]int
	names     []string
	conflicts []Conflict
}

const noRel int32 = 0 // matrix null-value; RelValue's own zero value is unused

// New creates an empty prec2 table.
func New() *Table {
	return &Table{
		m:   matrix.NewIntMatrix(noRel),
		ids: make(map[string]int),
	}
}

func (t *Table) id(tok string) int {
	if i, ok := t.ids[tok]; ok {
		return i
	}
	i := len(t.names)
	t.ids[tok] = i
	t.names = append(t.names, tok)
	return i
}

// Get returns the relation declared between left and right, and whether
// one was declared at all (the "absent" outcome of spec section 3).
func (t *Table) Get(left, right string) (opg.RelValue, bool) {
	l, okl := t.ids[left]
	if !okl {
		return 0, false
	}
	r, okr := t.ids[right]
	if !okr {
		return 0, false
	}
	v, ok := t.m.Value(l, r)
	if !ok {
		return 0, false
	}
	return opg.RelValue(v), true
}

// Set writes a relation into the table. Writes are monotonic with
// conflict detection: if a different value is already present, the
// write is recorded as a Conflict and the *original* value is kept,
// unless override is true, in which case the new value wins but the
// conflict is still recorded (spec section 9, open question).
func (t *Table) Set(left, right string, v opg.RelValue, override bool) {
	l, r := t.id(left), t.id(right)
	old, had := t.m.Value(l, r)
	if had && opg.RelValue(old) != v {
		c := Conflict{Left: left, Right: right, Old: opg.RelValue(old), New: v}
		t.conflicts = append(t.conflicts, c)
		tracer().Errorf("prec2 conflict at %s", c)
		if !override {
			return
		}
	}
	t.m.Set(l, r, int32(v))
}

// Conflicts returns every conflicting write observed while building this
// table, in the order encountered.
func (t *Table) Conflicts() []Conflict {
	return t.conflicts
}

// Each calls f once per populated cell, in an unspecified order.
func (t *Table) Each(f func(left, right string, v opg.RelValue)) {
	t.m.Each(func(row, col int, value int32) {
		f(t.names[row], t.names[col], opg.RelValue(value))
	})
}

// Tokens returns every token that appears as either side of some
// relation, sorted for deterministic output.
func (t *Table) Tokens() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	slices.Sort(out)
	return out
}

// Dump renders the table for interactive debugging (mirrors the
// teacher toolbox's Grammar.Dump habit of giving every built artifact a
// human-readable form).
func (t *Table) Dump() string {
	rows := arraylist.New()
	t.m.Each(func(row, col int, value int32) {
		rows.Add([3]int{row, col, int(value)})
	})
	rows.Sort(func(a, b interface{}) int {
		ta, tb := a.([3]int), b.([3]int)
		if c := utils.IntComparator(ta[0], tb[0]); c != 0 {
			return c
		}
		return utils.IntComparator(ta[1], tb[1])
	})
	out := ""
	it := rows.Iterator()
	for it.Next() {
		r := it.Value().([3]int)
		out += fmt.Sprintf("%s %s %s\n", t.names[r[0]], opg.RelValue(r[2]), t.names[r[1]])
	}
	return out
}
