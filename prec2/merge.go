package prec2

import "github.com/gopg/opg"

// MergePrec2 combines several prec2 tables into one, left to right: later
// tables win conflicts against earlier ones, but the conflict is still
// recorded on the result — per the open-question resolution in
// SPEC_FULL.md, an override must never hide the disagreement it resolves.
//
// Exposed as the mergePrec2 entry point of spec section 6.
func MergePrec2(tables []*Table) *Table {
	out := New()
	for _, t := range tables {
		if t == nil {
			continue
		}
		t.Each(func(left, right string, v opg.RelValue) {
			out.Set(left, right, v, true)
		})
	}
	return out
}
