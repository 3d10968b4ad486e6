package indent

import (
	"errors"
	"fmt"

	"github.com/gopg/opg"
	"github.com/gopg/opg/level"
	"github.com/gopg/opg/scan"
)

// Virtual selects how much an existing line's indentation is trusted
// before the rule cascade recomputes it from scratch (spec section 4.5).
type Virtual int8

const (
	// VirtualNone always recomputes.
	VirtualNone Virtual = iota
	// VirtualBOLP trusts the existing column only when the cursor is
	// already at the start of its line.
	VirtualBOLP
	// VirtualHanging trusts the existing column unless the following
	// token is hanging.
	VirtualHanging
)

// maxCascadeDepth bounds the recursion the cascade can perform on one
// line. Spec section 5 argues cycles are structurally impossible (each
// recursive step moves the cursor strictly backward or narrows the rule
// considered); this is a defensive backstop, not a expected limit.
const maxCascadeDepth = 200

var errCascadeTooDeep = errors.New("indent: rule cascade exceeded its recursion bound")

// Calculator computes indentation columns for one language mode (spec
// section 4.5, C5). It is bound to an immutable level table and rule
// table plus the host buffer it drives through a scanner (spec section
// 9's "no ambient state" design note: everything the cascade needs is
// carried on this value, not process-global).
type Calculator struct {
	Levels  *level.Table
	Rules   *Rules
	Basic   int
	Host    Host
	scanner *scan.Scanner
}

// NewCalculator builds a Calculator. basic <= 0 defaults to 4, the
// conventional indent-basic default (spec section 6).
func NewCalculator(levels *level.Table, rules *Rules, basic int, host Host) *Calculator {
	if basic <= 0 {
		basic = 4
	}
	return &Calculator{
		Levels:  levels,
		Rules:   rules,
		Basic:   basic,
		Host:    host,
		scanner: scan.NewScanner(levels, host),
	}
}

// IndentLine is the entry point (spec section 4.5, "indent-line"): move
// to the line's first non-whitespace, run the cascade, and apply the
// result. Any internal error is swallowed and treated as column 0 (spec
// section 7); a NoIndent sentinel passes through untouched.
func (c *Calculator) IndentLine() int {
	c.Host.GotoPos(c.Host.LineStart(c.Host.Pos()))
	col, err := c.safeCalculate(VirtualNone)
	if err != nil {
		tracer().Errorf("indentLine: %v", err)
		return 0
	}
	if col == NoIndent {
		return NoIndent
	}
	if col < 0 {
		col = 0
	}
	c.Host.SetIndent(col)
	return col
}

func (c *Calculator) safeCalculate(virtual Virtual) (col int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic during indent calculation: %v", r)
		}
	}()
	return c.calculate(virtual, 0)
}

// Calculate runs the rule cascade at the cursor's current position and
// returns the column it computes (spec section 4.5's numbered steps).
func (c *Calculator) Calculate(virtual Virtual) (int, error) {
	return c.calculate(virtual, 0)
}

func (c *Calculator) calculateAt(pos Pos, virtual Virtual, depth int) (int, error) {
	c.Host.GotoPos(pos)
	return c.calculate(virtual, depth)
}

func (c *Calculator) calculate(virtual Virtual, depth int) (int, error) {
	if depth > maxCascadeDepth {
		return 0, errCascadeTooDeep
	}
	pos := c.Host.Pos()

	// Step 1: trust pre-existing indentation.
	if virtual == VirtualBOLP && c.Host.AtLineStart(pos) {
		return c.Host.Column(pos), nil
	}
	if virtual == VirtualHanging && !c.Host.IsHangingAhead() {
		return c.Host.Column(pos), nil
	}

	// Step 2: closing paren.
	if opener, ok := c.Host.AtCloseDelimiter(); ok {
		return c.calculateAt(opener, VirtualHanging, depth+1)
	}

	// Step 3: aligning token / closer keyword.
	if fwd := c.Host.PeekForwardToken(); fwd != nil && fwd.Text() != "" {
		if c.Levels.Get(fwd.Text()).HasLeft() {
			return c.alignToken(fwd, depth)
		}
	}

	// Step 4: inside a block comment.
	if col, ok := c.Host.InBlockComment(); ok {
		return col, nil
	}

	// Step 5: after a keyword that opens a block.
	if col, handled, err := c.afterBlockOpener(virtual, depth); handled || err != nil {
		return col, err
	}

	// Step 6: main expression walk.
	return c.mainWalk(virtual, depth)
}

// alignToken implements spec section 4.5 step 3.
func (c *Calculator) alignToken(fwd opg.Token, depth int) (int, error) {
	res, err := c.scanner.BackwardSexp(true)
	if err != nil {
		return 0, err
	}
	if res.Kind != opg.StoppedAtOp || res.Token == nil {
		// The construct extends past a bracketed group or off the buffer;
		// treat like an ordinary aligning token with no useful anchor.
		return c.mainWalk(VirtualNone, depth+1)
	}

	fwdPair := c.Levels.Get(fwd.Text())
	tokPair := c.Levels.Get(res.Token.Text())
	if fwdPair.HasLeft() && tokPair.HasRight() && *fwdPair.Left == *tokPair.Right {
		// Sibling: same construct, chain through.
		c.Host.GotoPos(res.Token.Span().From())
		return c.calculate(VirtualBOLP, depth+1)
	}

	if res.Token.Text() == fwd.Text() {
		// Repeated occurrences of the same token: jump to the earliest one
		// in the chain (spec section 4.5 step 3, "earliest-opener
		// chaining", exercised by scenario S4).
		pos := res.Token.Span().From()
		for {
			c.Host.GotoPos(pos)
			next, err := c.scanner.BackwardSexp(true)
			if err != nil || next.Kind != opg.StoppedAtOp || next.Token == nil || next.Token.Text() != fwd.Text() {
				break
			}
			pos = next.Token.Span().From()
		}
		c.Host.GotoPos(pos)
		return c.calculate(VirtualBOLP, depth+1)
	}

	offset, _ := c.Rules.Pair(res.Token.Text(), fwd.Text())
	base, err := c.calculateAt(res.Pos.From(), VirtualBOLP, depth+1)
	if err != nil {
		return 0, err
	}
	return base + offset, nil
}

// afterBlockOpener implements spec section 4.5 step 5. handled is false
// when the step does not apply and the cascade should fall through.
func (c *Calculator) afterBlockOpener(virtual Virtual, depth int) (int, bool, error) {
	prevPos := c.Host.Pos()
	c.Host.SeekTo(prevPos)
	prev := c.Host.BackwardToken()
	if prev == nil || prev.Text() == "" {
		return 0, false, nil
	}
	_, hasRule := c.Rules.Token(prev.Text())
	pair := c.Levels.Get(prev.Text())
	if !hasRule && pair.HasRight() {
		c.Host.SeekTo(prevPos)
		return 0, false, nil
	}
	c.Host.SeekTo(prevPos)

	offset := c.Basic
	hanging := c.Host.IsHangingAhead()
	if o, ok := c.Rules.Token(prev.Text()); ok {
		if hanging && o.HasHanging {
			offset = o.Hanging
		} else {
			offset = o.Normal
		}
	} else if o, ok := c.Rules.Basic(); ok {
		offset = o
	}

	nextVirtual := VirtualNone
	if hanging || virtual != VirtualNone {
		nextVirtual = VirtualBOLP
	}
	base, err := c.calculateAt(prev.Span().From(), nextVirtual, depth+1)
	if err != nil {
		return 0, true, err
	}
	return base + offset, true, nil
}

// mainWalk implements spec section 4.5 step 6.
func (c *Calculator) mainWalk(_ Virtual, depth int) (int, error) {
	var positions []Pos
	var stoppedAtOpener bool
	var openerPos Pos
	var lastSiblingIsListIntro bool

	for {
		res, err := c.scanner.BackwardSexp(false)
		if err != nil {
			return 0, err
		}
		switch res.Kind {
		case opg.SkippedPlain, opg.SkippedPair:
			pos := res.Pos.From()
			positions = append(positions, pos)
			if c.Host.AtLineStart(pos) {
				goto done
			}
			c.Host.GotoPos(pos)
			continue
		case opg.StoppedAtOpener:
			stoppedAtOpener = true
			openerPos = res.Pos.From()
		case opg.StoppedAtOp:
			if res.Token != nil {
				lastSiblingIsListIntro = c.Rules.IsListIntro(res.Token.Text())
			}
		}
		break
	}
done:

	switch {
	case len(positions) > 0 && (stoppedAtOpener == false || lastSiblingIsListIntro):
		// Argument of a call: align with the first collected sibling.
		return c.Host.Column(positions[len(positions)-1]), nil

	case len(positions) > 0:
		// First argument: the function itself starts the line.
		fnCol := c.Host.Column(positions[len(positions)-1])
		offset := c.Basic
		if o, ok := c.Rules.Args(); ok {
			offset = o
		}
		return fnCol + offset, nil

	case stoppedAtOpener:
		return c.calculateAt(openerPos, VirtualHanging, depth+1)

	default:
		// Function itself, immediately after an infix operator with no
		// collected siblings: back over its left operand and align.
		res, err := c.scanner.BackwardSexp(true)
		if err != nil {
			return 0, err
		}
		if res.Kind == opg.SkippedPlain || res.Kind == opg.SkippedPair {
			return c.Host.Column(res.Pos.From()), nil
		}
		if res.Kind == opg.StoppedAtOpener {
			return c.calculateAt(res.Pos.From(), VirtualHanging, depth+1)
		}
		return c.Host.Column(c.Host.Pos()), nil
	}
}
