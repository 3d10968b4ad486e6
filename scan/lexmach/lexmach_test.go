package lexmach_test

import (
	"testing"

	"github.com/timtadh/lexmachine"

	"github.com/gopg/opg/scan"
	"github.com/gopg/opg/scan/lexmach"
)

func arithAdapter(t *testing.T) *lexmach.Adapter {
	t.Helper()
	a, err := lexmach.NewAdapter(func(lx *lexmachine.Lexer) {
		lx.Add([]byte(`[a-z]+`), lexmach.MakeIdentAction())
		lx.Add([]byte(" +"), lexmach.Skip)
	}, []string{"(", ")", "+", "*"}, nil)
	if err != nil {
		t.Fatalf("NewAdapter failed: %v", err)
	}
	return a
}

func TestAdapterTokenizesLiterals(t *testing.T) {
	a := arithAdapter(t)
	src, err := a.Source([]byte("( a + b )"))
	if err != nil {
		t.Fatalf("Source failed: %v", err)
	}
	buf := scan.NewBuffered(src)

	var got []string
	for {
		tok := buf.ForwardToken()
		if tok == nil {
			break
		}
		got = append(got, tok.Text())
	}
	want := []string{"(", "a", "+", "b", ")"}
	if len(got) != len(want) {
		t.Fatalf("got %v tokens; want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d = %q; want %q", i, got[i], want[i])
		}
	}
}

func TestBufferedOverLexmachIsBidirectional(t *testing.T) {
	a := arithAdapter(t)
	src, err := a.Source([]byte("( x )"))
	if err != nil {
		t.Fatalf("Source failed: %v", err)
	}
	buf := scan.NewBuffered(src)

	first := buf.ForwardToken()
	second := buf.ForwardToken()
	if first == nil || second == nil {
		t.Fatal("expected two tokens")
	}
	back := buf.BackwardToken()
	if back == nil || back.Text() != second.Text() {
		t.Fatalf("BackwardToken() = %v; want the just-read token %q", back, second.Text())
	}
}
