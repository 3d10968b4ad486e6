package prec2

import "github.com/gopg/opg"

// Group is one precedence-group entry of a precedence list: a set of
// operator tokens sharing an associativity tag.
type Group struct {
	Assoc opg.Assoc
	Ops   []string
}

// PrecList is an ordered sequence of operator groups, tightest-binding
// group last (the conventional reading: "+" before "*").
type PrecList []Group

// PrecsTable compiles a precedence list into a prec2 table (spec section
// 4.1, input form A).
//
// Within a group, the relation derived from the group's associativity
// tag is written between every pair of the group's operators, including
// a token against itself:
//
//	LEFT     -> GT
//	RIGHT    -> LT
//	ASSOC    -> EQ
//	NONASSOC -> no intra-group relation
//
// Between groups, every token of an earlier (looser) group gets LT
// against every token of a later (tighter) group, and the mirror GT.
func PrecsTable(list PrecList) *Table {
	t := New()
	for _, g := range list {
		writeIntraGroup(t, g)
	}
	for i, looser := range list {
		for _, tighter := range list[i+1:] {
			for _, a := range looser.Ops {
				for _, b := range tighter.Ops {
					t.Set(a, b, opg.LT, false)
					t.Set(b, a, opg.GT, false)
				}
			}
		}
	}
	return t
}

func writeIntraGroup(t *Table, g Group) {
	if g.Assoc == opg.NONASSOC {
		return
	}
	var v opg.RelValue
	switch g.Assoc {
	case opg.LEFT:
		v = opg.GT
	case opg.RIGHT:
		v = opg.LT
	case opg.ASSOC:
		v = opg.EQ
	}
	for _, a := range g.Ops {
		for _, b := range g.Ops {
			t.Set(a, b, v, false)
		}
	}
}
