/*
Package indent implements the indentation calculator (spec section 4.5):
a prioritized rule cascade that uses a scan.Scanner and a language's rule
table to decide the column of the cursor's line.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 The OPG Authors

*/
package indent

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'opg.indent'.
func tracer() tracing.Trace {
	return tracing.Select("opg.indent")
}

// NoIndent is the sentinel "do not touch this line's indentation" result,
// passed through verbatim by IndentLine when a rule produces it (spec
// section 4.5, "indent-line" step 2).
const NoIndent = -1
