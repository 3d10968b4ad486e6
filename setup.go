package opg

import (
	"fmt"

	"github.com/gopg/opg/level"
	"github.com/gopg/opg/prec2"
)

// GrammarSource builds a prec2.Table from one notation (spec section 6:
// bnfPrecedenceTable, precsPrecedenceTable). A language mode typically
// combines several sources with MergeTables before calling level.Solve.
type GrammarSource interface {
	Prec2Table() (*prec2.Table, error)
}

// BNFSource adapts prec2.BNFTable to a GrammarSource.
type BNFSource struct {
	Grammar   prec2.Grammar
	Overrides []prec2.PrecList
}

// Prec2Table builds the relation table implied by the BNF grammar.
func (s BNFSource) Prec2Table() (*prec2.Table, error) {
	return prec2.BNFTable(s.Grammar, s.Overrides...)
}

// PrecsSource adapts prec2.PrecsTable to a GrammarSource.
type PrecsSource struct{ List prec2.PrecList }

// Prec2Table builds the relation table implied by the explicit
// precedence/associativity groups.
func (s PrecsSource) Prec2Table() (*prec2.Table, error) {
	return prec2.PrecsTable(s.List), nil
}

// MergeTables combines several GrammarSources into one prec2.Table, later
// sources overriding earlier ones at conflicting cells (spec section
// 6's mergePrec2, spec section 7's override-but-warn policy).
func MergeTables(sources ...GrammarSource) (*prec2.Table, error) {
	tables := make([]*prec2.Table, 0, len(sources))
	for _, s := range sources {
		t, err := s.Prec2Table()
		if err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}
	return prec2.MergePrec2(tables), nil
}

// Setup is the external configuration surface for one language mode
// (spec section 6): a solved level table plus everything the scanner
// and indentation calculator need derived from it. Building one is the
// only step that can fail (an unresolvable precedence cycle); using it
// afterwards never does.
type Setup struct {
	Levels *level.Table
}

// NewSetup merges sources and solves the result into a level table. It is
// the "setup" operation of spec section 6.
func NewSetup(sources ...GrammarSource) (*Setup, error) {
	table, err := MergeTables(sources...)
	if err != nil {
		return nil, fmt.Errorf("opg: setup failed: %w", err)
	}
	levels, err := level.Solve(table)
	if err != nil {
		return nil, fmt.Errorf("opg: setup failed: %w", err)
	}
	return &Setup{Levels: levels}, nil
}
