/*
Package scan defines the tokenizer interface a host editor implements
(spec section 4.3) and the bidirectional operator-precedence scanner
built on top of it (spec section 4.4): BackwardSexp / ForwardSexp skip
exactly one sub-expression, reporting the boundary token where they
stopped.

Two default, bidirectional-capable tokenizers are provided: GoTokenizer,
a thin wrapper over the Go standard library's text/scanner, and
Buffered, an adapter that turns any forward-only token source (including
a generated lexer, see sub-package lexmach) into a bidirectional one by
caching tokens behind the cursor.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 The OPG Authors

*/
package scan

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'opg.scan'.
func tracer() tracing.Trace {
	return tracing.Select("opg.scan")
}
