package prec2

import (
	"golang.org/x/tools/container/intsets"

	"github.com/gopg/opg"
)

// Production is a single BNF alternative: LHS derives the sequence Alt.
// A symbol in Alt is a non-terminal iff it is the LHS of some Production
// in the same Grammar; otherwise it is a literal operator token. The
// grammar is assumed to be an operator grammar: no two adjacent
// non-terminals may appear in any alternative.
type Production struct {
	LHS string
	Alt []string
}

// Grammar is a set of BNF productions (spec section 4.1, input form B).
type Grammar struct {
	Productions []Production
}

// operatorSets tracks FIRST-OPS/LAST-OPS as bitsets over an interned
// operator-token index, so each propagation step of the fixed-point
// computation is a single bitset union.
type operatorSets struct {
	opID    map[string]int
	opNames []string
	first   map[string]*intsets.Sparse
	last    map[string]*intsets.Sparse
}

func newOperatorSets() *operatorSets {
	return &operatorSets{
		opID:  make(map[string]int),
		first: make(map[string]*intsets.Sparse),
		last:  make(map[string]*intsets.Sparse),
	}
}

func (o *operatorSets) id(name string) int {
	if id, ok := o.opID[name]; ok {
		return id
	}
	id := len(o.opNames)
	o.opID[name] = id
	o.opNames = append(o.opNames, name)
	return id
}

func (o *operatorSets) name(id int) string {
	return o.opNames[id]
}

func ensureSet(m map[string]*intsets.Sparse, key string) *intsets.Sparse {
	s, ok := m[key]
	if !ok {
		s = &intsets.Sparse{}
		m[key] = s
	}
	return s
}

// BNFTable compiles a BNF grammar into a prec2 table (spec section 4.1,
// input form B). Any precedence lists passed in are merged into a single
// override table (via MergePrec2) that pre-seeds the result: wherever
// the BNF derivation and an override disagree, the override's value
// wins but the disagreement is still recorded as a Conflict.
func BNFTable(g Grammar, overrides ...PrecList) (*Table, error) {
	nonterm := make(map[string]bool, len(g.Productions))
	for _, p := range g.Productions {
		nonterm[p.LHS] = true
	}

	ops := newOperatorSets()
	seedOperatorSets(g, nonterm, ops)
	propagateOperatorSets(g, nonterm, ops)

	t := New()
	if len(overrides) > 0 {
		tables := make([]*Table, len(overrides))
		for i, pl := range overrides {
			tables[i] = PrecsTable(pl)
		}
		merged := MergePrec2(tables)
		merged.Each(func(left, right string, v opg.RelValue) {
			t.Set(left, right, v, false)
		})
	}

	for _, p := range g.Productions {
		writeAlternative(t, p, nonterm, ops)
	}
	return t, nil
}

// seedOperatorSets initializes FIRST-OPS(N)/LAST-OPS(N) from each
// alternative's own leading/trailing operator: if the first symbol is
// itself an operator it seeds FIRST-OPS directly; if the first symbol is
// a non-terminal, the operator-grammar assumption guarantees the second
// symbol is a literal, which is seeded instead. Symmetric for LAST-OPS.
func seedOperatorSets(g Grammar, nonterm map[string]bool, ops *operatorSets) {
	for _, p := range g.Productions {
		alt := p.Alt
		if len(alt) == 0 {
			continue
		}
		if !nonterm[alt[0]] {
			ensureSet(ops.first, p.LHS).Insert(ops.id(alt[0]))
		} else if len(alt) >= 2 && !nonterm[alt[1]] {
			ensureSet(ops.first, p.LHS).Insert(ops.id(alt[1]))
		}
		last := alt[len(alt)-1]
		if !nonterm[last] {
			ensureSet(ops.last, p.LHS).Insert(ops.id(last))
		} else if len(alt) >= 2 && !nonterm[alt[len(alt)-2]] {
			ensureSet(ops.last, p.LHS).Insert(ops.id(alt[len(alt)-2]))
		}
	}
}

// propagateOperatorSets runs the fixed-point pass: for every alternative
// starting (ending) with a non-terminal M, FIRST-OPS(M) (LAST-OPS(M)) is
// unioned into FIRST-OPS(LHS) (LAST-OPS(LHS)), and all productions are
// walked again until a full pass changes no set.
// intsets.Sparse.UnionWith reports whether it changed the receiver,
// which drives termination directly instead of a separate dirty flag.
func propagateOperatorSets(g Grammar, nonterm map[string]bool, ops *operatorSets) {
	changed := true
	for changed {
		changed = false
		for _, p := range g.Productions {
			alt := p.Alt
			if len(alt) == 0 {
				continue
			}
			if nonterm[alt[0]] {
				if ensureSet(ops.first, p.LHS).UnionWith(ensureSet(ops.first, alt[0])) {
					changed = true
				}
			}
			li := len(alt) - 1
			if nonterm[alt[li]] {
				if ensureSet(ops.last, p.LHS).UnionWith(ensureSet(ops.last, alt[li])) {
					changed = true
				}
			}
		}
	}
}

// writeAlternative writes the prec2 cells implied by every adjacent pair
// of symbols in one alternative, per the table in spec section 4.1.
// Per spec section 7, prec2 construction never aborts: a violation of
// the operator-grammar assumption (two adjacent non-terminals) is
// reported through the tracer and that pair is skipped.
func writeAlternative(t *Table, p Production, nonterm map[string]bool, ops *operatorSets) {
	alt := p.Alt
	for i := 0; i+1 < len(alt); i++ {
		a, b := alt[i], alt[i+1]
		aIsOp, bIsOp := !nonterm[a], !nonterm[b]
		switch {
		case aIsOp && bIsOp:
			t.Set(a, b, opg.EQ, false)
		case !aIsOp && bIsOp:
			for _, id := range ensureSet(ops.last, a).AppendTo(nil) {
				t.Set(ops.name(id), b, opg.GT, false)
			}
		case aIsOp && !bIsOp:
			for _, id := range ensureSet(ops.first, b).AppendTo(nil) {
				t.Set(a, ops.name(id), opg.LT, false)
			}
			if i+2 < len(alt) {
				c := alt[i+2]
				if !nonterm[c] {
					t.Set(a, c, opg.EQ, false)
				}
			}
		default:
			tracer().Errorf("adjacent non-terminals %q %q in production %q violate the operator-grammar assumption", a, b, p.LHS)
		}
	}
}
