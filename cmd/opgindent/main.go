package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/gopg/opg"
	"github.com/gopg/opg/editor"
	"github.com/gopg/opg/indent"
	"github.com/gopg/opg/prec2"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 The OPG Authors

*/

// main starts opgindent, a small CLI around the engine: given a language
// preset and a source file (or stdin, read line by line in a REPL), it
// prints the indentation column the cascade computes for every line.
//
// opgindent is a diagnostic tool, not an editor mode; it exists to drive
// Setup, the Scanner and the Calculator the same way a host editor's
// indent-line command would, without needing a real text widget.
func main() {
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	mode := flag.String("mode", "expr", "Language preset [expr|block]")
	basic := flag.Int("basic", 4, "Basic indentation width")
	flag.Parse()
	tracer().SetTraceLevel(traceLevel(*tlevel))
	pterm.Info.Println("Welcome to opgindent")

	setup, rules, err := buildPreset(*mode, *basic)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}

	if args := flag.Args(); len(args) > 0 {
		indentFile(args[0], setup, rules, *basic)
		return
	}
	repl(setup, rules, *basic)
}

func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}

// buildPreset wires a GrammarSource and a rule table for one of two demo
// language modes, exercising both prec2 input forms (spec section 4.1):
// "expr" is a BNF-derived arithmetic grammar, "block" is a precedence-list
// grammar with an if/then/else bracket triple and "->" right-associative
// chaining.
func buildPreset(mode string, basic int) (*opg.Setup, *indent.Rules, error) {
	rules := indent.NewRules()
	switch mode {
	case "expr":
		g := prec2.Grammar{Productions: []prec2.Production{
			{LHS: "E", Alt: []string{"E", "+", "E"}},
			{LHS: "E", Alt: []string{"E", "*", "E"}},
			{LHS: "E", Alt: []string{"(", "E", ")"}},
			{LHS: "E", Alt: []string{"id"}},
		}}
		setup, err := opg.NewSetup(opg.BNFSource{Grammar: g})
		if err != nil {
			return nil, nil, err
		}
		rules.SetPair("(", "id", basic)
		rules.SetWildcard(basic)
		return setup, rules, nil

	case "block":
		list := prec2.PrecList{
			{Assoc: opg.ASSOC, Ops: []string{"if", "then", "else"}},
			{Assoc: opg.RIGHT, Ops: []string{"->"}},
		}
		setup, err := opg.NewSetup(opg.PrecsSource{List: list})
		if err != nil {
			return nil, nil, err
		}
		rules.SetPair("if", "then", basic)
		rules.SetPair("then", "else", 0)
		rules.SetTokenHanging("->", basic, basic)
		rules.SetWildcard(basic)
		return setup, rules, nil

	default:
		return nil, nil, fmt.Errorf("unknown mode %q", mode)
	}
}

func indentFile(path string, setup *opg.Setup, rules *indent.Rules, basic int) {
	data, err := os.ReadFile(path)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
	buf := editor.NewBuffer(path, string(data), nil)
	calc := indent.NewCalculator(setup.Levels, rules, basic, buf)

	lines := strings.Split(string(data), "\n")
	offset := int64(0)
	for i, line := range lines {
		buf.GotoPos(offset)
		col := calc.IndentLine()
		pterm.Info.Printf("line %d: indent %d\n", i+1, col)
		offset += int64(len(line)) + 1
	}
}

func repl(setup *opg.Setup, rules *indent.Rules, basic int) {
	rl, err := readline.New("opgindent> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	defer rl.Close()
	tracer().Infof("Quit with <ctrl>D")

	var lines []string
	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF
			break
		}
		lines = append(lines, line)
		source := strings.Join(lines, "\n")
		buf := editor.NewBuffer("repl", source, nil)
		calc := indent.NewCalculator(setup.Levels, rules, basic, buf)
		buf.GotoPos(int64(len(source)))
		col := calc.IndentLine()
		pterm.Info.Printf("suggested indent: %d\n", col)
	}
	println("Good bye!")
}

func tracer() tracing.Trace {
	return tracing.Select("opg.cmd")
}
