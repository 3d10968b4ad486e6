package level

import (
	"fmt"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"

	"github.com/gopg/opg"
	"github.com/gopg/opg/prec2"
)

// Solve compiles a prec2 table into a level table (spec section 4.2,
// the Level Solver). The only fatal failure is an unresolvable
// precedence cycle in the inequality constraints; prec2 conflicts were
// already surfaced as warnings when the table was built.
func Solve(t *prec2.Table) (*Table, error) {
	tokens := t.Tokens()
	// two variables per token: varOf(tok, leftSide) and varOf(tok, rightSide)
	varOf := make(map[string]int, len(tokens)*2)
	nextVar := 0
	allocVar := func(tok string, left bool) int {
		key := varKey(tok, left)
		if id, ok := varOf[key]; ok {
			return id
		}
		id := nextVar
		nextVar++
		varOf[key] = id
		return id
	}
	for _, tok := range tokens {
		allocVar(tok, true)
		allocVar(tok, false)
	}

	uf := newUnionFind(nextVar)
	type ineq struct{ smaller, larger int }
	var inequalities []ineq

	t.Each(func(left, right string, v opg.RelValue) {
		rLeft := allocVar(left, false)  // R(left)
		lRight := allocVar(right, true) // L(right)
		switch v {
		case opg.EQ:
			uf.union(rLeft, lRight)
		case opg.LT:
			inequalities = append(inequalities, ineq{smaller: rLeft, larger: lRight})
		case opg.GT:
			inequalities = append(inequalities, ineq{smaller: lRight, larger: rLeft})
		}
	})

	// Phase 2: resolve every inequality to its union-find representative,
	// then assign integer levels to the resulting DAG batch by batch.
	indegree := make(map[int]int)
	succ := make(map[int][]int)
	participant := make(map[int]bool)
	for _, e := range inequalities {
		a, b := uf.find(e.smaller), uf.find(e.larger)
		if a == b {
			continue // already equated; no ordering constraint left to enforce
		}
		succ[a] = append(succ[a], b)
		indegree[b]++
		participant[a] = true
		participant[b] = true
	}

	ready := treeset.NewWith(utils.IntComparator)
	for rep := range participant {
		if indegree[rep] == 0 {
			ready.Add(rep)
		}
	}

	assigned := make(map[int]int)
	i := 0
	for !ready.Empty() {
		batch := ready.Values()
		ready.Clear()
		for _, v := range batch {
			rep := v.(int)
			assigned[rep] = i
		}
		for _, v := range batch {
			rep := v.(int)
			for _, s := range succ[rep] {
				indegree[s]--
				if indegree[s] == 0 {
					ready.Add(s)
				}
			}
		}
		i++
	}
	if len(assigned) != len(participant) {
		return nil, fmt.Errorf("level: cannot resolve precedence table to levels: constraint cycle among %d variables", len(participant)-len(assigned))
	}

	// Phase 3: propagate levels back through the union-find groups and
	// populate the per-token Pair. A variable never touched by Phase 2
	// (not a participant, and never assigned by the batch loop) stays
	// absent: it is the correct representation of an opener/closer.
	levels := make(map[string]Pair, len(tokens))
	for _, tok := range tokens {
		var p Pair
		if lv, ok := levelOf(uf, assigned, varOf, tok, true); ok {
			v := lv
			p.Left = &v
		}
		if rv, ok := levelOf(uf, assigned, varOf, tok, false); ok {
			v := rv
			p.Right = &v
		}
		// A self-equal token is one whose left and right variables were
		// actually merged by an EQ relation (e.g. a token declared EQ with
		// itself) — not one whose levels merely happen to land on the same
		// integer because two otherwise-unrelated constraints resolved into
		// the same DAG batch. Only the former is the ambiguity the "self-equal
		// token" open question (spec section 9) is about.
		if p.Left != nil && p.Right != nil {
			if uf.find(varOf[varKey(tok, true)]) == uf.find(varOf[varKey(tok, false)]) {
				return nil, fmt.Errorf("level: token %q's left and right levels were merged by an EQ relation with itself — ambiguous self-equal token, treated as a grammar error per spec section 9", tok)
			}
		}
		levels[tok] = p
	}
	return &Table{levels: levels}, nil
}

func levelOf(uf *unionFind, assigned map[int]int, varOf map[string]int, tok string, left bool) (int, bool) {
	id, ok := varOf[varKey(tok, left)]
	if !ok {
		return 0, false
	}
	v, ok := assigned[uf.find(id)]
	return v, ok
}

func varKey(tok string, left bool) string {
	if left {
		return "L\x00" + tok
	}
	return "R\x00" + tok
}
