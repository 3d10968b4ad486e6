/*
Package prec2 builds the two-dimensional precedence relation table
("prec2") that is the intermediate representation between grammar
declarations and a one-dimensional level table (package level).

A prec2 table can be built two ways:

■ From a precedence list (PrecsTable): an ordered sequence of operator
groups, tightest-binding last, each carrying an associativity tag.

■ From a restricted BNF grammar (BNFTable): a set of productions over
an operator grammar (no two adjacent non-terminals in any alternative),
from which FIRST-OPS/LAST-OPS sets are derived by fixed-point iteration
and turned into prec2 cells.

The two forms may be combined: a precedence-list table can be supplied
as an override table during BNF compilation, so grammar authors can
pin down associativity the BNF form cannot express directly.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 The OPG Authors

*/
package prec2

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'opg.prec2'.
func tracer() tracing.Trace {
	return tracing.Select("opg.prec2")
}
