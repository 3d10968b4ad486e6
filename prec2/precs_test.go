package prec2_test

import (
	"testing"

	"github.com/gopg/opg"
	"github.com/gopg/opg/prec2"
)

func TestPrecsTableIntraGroup(t *testing.T) {
	list := prec2.PrecList{
		{Assoc: opg.LEFT, Ops: []string{"+", "-"}},
		{Assoc: opg.LEFT, Ops: []string{"*", "/"}},
	}
	table := prec2.PrecsTable(list)

	if v, ok := table.Get("+", "+"); !ok || v != opg.GT {
		t.Errorf("(+,+) = %v, %v; want GT, true", v, ok)
	}
	if v, ok := table.Get("+", "-"); !ok || v != opg.GT {
		t.Errorf("(+,-) = %v, %v; want GT, true", v, ok)
	}
	if v, ok := table.Get("+", "*"); !ok || v != opg.LT {
		t.Errorf("(+,*) = %v, %v; want LT, true", v, ok)
	}
	if v, ok := table.Get("*", "+"); !ok || v != opg.GT {
		t.Errorf("(*,+) = %v, %v; want GT, true", v, ok)
	}
}

func TestPrecsTableAssocGroup(t *testing.T) {
	list := prec2.PrecList{
		{Assoc: opg.ASSOC, Ops: []string{"->"}},
	}
	table := prec2.PrecsTable(list)
	if v, ok := table.Get("->", "->"); !ok || v != opg.EQ {
		t.Errorf("(->,->) = %v, %v; want EQ, true", v, ok)
	}
}

func TestPrecsTableNonassocHasNoIntraRelation(t *testing.T) {
	list := prec2.PrecList{
		{Assoc: opg.NONASSOC, Ops: []string{"=="}},
	}
	table := prec2.PrecsTable(list)
	if _, ok := table.Get("==", "=="); ok {
		t.Error("NONASSOC group should not declare a self-relation")
	}
}

func TestTableSetConflictIsRecordedAndKeptUnlessOverride(t *testing.T) {
	table := prec2.New()
	table.Set("a", "b", opg.LT, false)
	table.Set("a", "b", opg.GT, false) // conflicting, no override: kept as LT

	v, ok := table.Get("a", "b")
	if !ok || v != opg.LT {
		t.Errorf("got %v, %v; want LT, true (conflict should not overwrite without override)", v, ok)
	}
	if len(table.Conflicts()) != 1 {
		t.Fatalf("got %d conflicts; want 1", len(table.Conflicts()))
	}

	table.Set("a", "b", opg.EQ, true) // override: wins
	v, ok = table.Get("a", "b")
	if !ok || v != opg.EQ {
		t.Errorf("got %v, %v; want EQ, true after override", v, ok)
	}
	if len(table.Conflicts()) != 2 {
		t.Fatalf("got %d conflicts; want 2", len(table.Conflicts()))
	}
}

func TestMergePrec2LaterTableOverridesEarlier(t *testing.T) {
	a := prec2.New()
	a.Set("x", "y", opg.LT, false)
	b := prec2.New()
	b.Set("x", "y", opg.GT, false)

	merged := prec2.MergePrec2([]*prec2.Table{a, b})
	v, ok := merged.Get("x", "y")
	if !ok || v != opg.GT {
		t.Errorf("got %v, %v; want GT, true (later table wins on merge)", v, ok)
	}
}
