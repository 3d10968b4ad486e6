package lexmach

import (
	"strings"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"

	"github.com/gopg/opg"
)

// Adapter compiles a lexmachine DFA from a set of literals and keywords
// and hands out scan.ForwardSource-compatible scanners over input text,
// grounded on the teacher toolbox's lr/scanner/lexmach adapter.
type Adapter struct {
	Lexer *lexmachine.Lexer
}

// NewAdapter builds a DFA. init registers any additional patterns (e.g.
// identifiers, numbers, whitespace-skip) before literals and keywords
// are added; Compile is called before returning.
func NewAdapter(init func(*lexmachine.Lexer), literals, keywords []string) (*Adapter, error) {
	a := &Adapter{Lexer: lexmachine.NewLexer()}
	init(a.Lexer)
	for _, lit := range literals {
		pattern := "\\" + strings.Join(strings.Split(lit, ""), "\\")
		a.Lexer.Add([]byte(pattern), tokenAction(lit))
	}
	for _, kw := range keywords {
		a.Lexer.Add([]byte(strings.ToLower(kw)), tokenAction(kw))
	}
	if err := a.Lexer.Compile(); err != nil {
		tracer().Errorf("compiling lexmachine DFA: %v", err)
		return nil, err
	}
	return a, nil
}

// Source produces a scan.ForwardSource over one input buffer.
func (a *Adapter) Source(input []byte) (*Source, error) {
	s, err := a.Lexer.Scanner(input)
	if err != nil {
		return nil, err
	}
	return &Source{scanner: s}, nil
}

// Source is a scan.ForwardSource backed by a compiled lexmachine DFA.
type Source struct {
	scanner *lexmachine.Scanner
}

// Next is part of the scan.ForwardSource interface.
func (s *Source) Next() (opg.Token, bool) {
	tok, err, eof := s.scanner.Next()
	for err != nil {
		tracer().Errorf("lexmachine scan error: %v", err)
		if ui, ok := err.(*machines.UnconsumedInput); ok {
			s.scanner.TC = ui.FailTC
		}
		tok, err, eof = s.scanner.Next()
	}
	if eof {
		return nil, false
	}
	lm := tok.(*lexmachine.Token)
	return opg.NewToken(string(lm.Lexeme), opg.Span{int64(lm.StartColumn), int64(lm.EndColumn)}), true
}

// Skip is a lexmachine action that discards the match, e.g. for
// whitespace patterns registered by the init callback passed to
// NewAdapter.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func tokenAction(text string) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(0, text, m), nil
	}
}

// MakeIdentAction returns a lexmachine action for variable-content
// patterns (identifiers, numbers): unlike the fixed text NewAdapter uses
// for literals and keywords, the token's text is whatever the pattern
// matched.
func MakeIdentAction() lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(0, string(m.Bytes), m), nil
	}
}
