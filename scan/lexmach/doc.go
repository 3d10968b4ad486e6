/*
Package lexmach adapts a github.com/timtadh/lexmachine DFA-based lexer
into a scan.ForwardSource, so a generated lexer can be wrapped by
scan.Buffered into a full scan.Host.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 The OPG Authors

*/
package lexmach

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'opg.scan'.
func tracer() tracing.Trace {
	return tracing.Select("opg.scan")
}
