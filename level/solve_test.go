package level_test

import (
	"testing"

	"github.com/gopg/opg"
	"github.com/gopg/opg/level"
	"github.com/gopg/opg/prec2"
)

// bracketTable relates an opener and closer to an inner atom so both
// get exactly the level side an opener/closer should: "(" never appears
// as the right-hand token of any cell (so it never gets a left level),
// and ")" never appears as the left-hand token of any cell (so it never
// gets a right level).
func bracketTable() *prec2.Table {
	t := prec2.New()
	t.Set("(", "x", opg.LT, false)
	t.Set("x", ")", opg.GT, false)
	return t
}

func TestSolveBracketPairGetsOpenerCloserShape(t *testing.T) {
	levels, err := level.Solve(bracketTable())
	if err != nil {
		t.Fatalf("Solve returned error: %v", err)
	}
	open := levels.Get("(")
	if open.HasLeft() {
		t.Errorf("opener %q should have no left level, got %v", "(", open)
	}
	if !open.HasRight() {
		t.Errorf("opener %q should have a right level", "(")
	}
	closeTok := levels.Get(")")
	if closeTok.HasRight() {
		t.Errorf("closer %q should have no right level, got %v", ")", closeTok)
	}
	if !closeTok.HasLeft() {
		t.Errorf("closer %q should have a left level", ")")
	}
}

func TestSolveOrdersTighterOperatorAboveLooser(t *testing.T) {
	// "+" looser than "*": R(+) < L(*).
	table := prec2.New()
	table.Set("+", "+", opg.GT, false) // left-assoc
	table.Set("*", "*", opg.GT, false) // left-assoc
	table.Set("+", "*", opg.LT, false)
	table.Set("*", "+", opg.GT, false)

	levels, err := level.Solve(table)
	if err != nil {
		t.Fatalf("Solve returned error: %v", err)
	}
	plus := levels.Get("+")
	star := levels.Get("*")
	if !plus.HasRight() || !star.HasLeft() {
		t.Fatalf("expected both + and * to carry the relevant level: %v %v", plus, star)
	}
	if *plus.Right >= *star.Left {
		t.Errorf("R(+)=%d should be < L(*)=%d", *plus.Right, *star.Left)
	}
}

func TestSolveDetectsConstraintCycle(t *testing.T) {
	table := prec2.New()
	// Three mutually tighter-than tokens, each EQ with itself so its left
	// and right level merge into a single variable: p > q > r > p is an
	// unsatisfiable cycle among those three merged variables.
	table.Set("p", "p", opg.EQ, false)
	table.Set("q", "q", opg.EQ, false)
	table.Set("r", "r", opg.EQ, false)
	table.Set("p", "q", opg.GT, false)
	table.Set("q", "r", opg.GT, false)
	table.Set("r", "p", opg.GT, false)

	_, err := level.Solve(table)
	if err == nil {
		t.Fatal("expected an error for a cyclic precedence table")
	}
}

func TestSignatureIsStableAcrossCalls(t *testing.T) {
	levels, err := level.Solve(bracketTable())
	if err != nil {
		t.Fatalf("Solve returned error: %v", err)
	}
	if levels.Signature() != levels.Signature() {
		t.Error("Signature should be deterministic for the same table")
	}
}
