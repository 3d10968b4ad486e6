/*
Package level compresses a prec2 relation table into a one-dimensional
table of integer left/right precedence levels per token (spec section
4.2).

Each token owns one level variable with two slots, L (left) and R
(right), initially both absent. Equality cells of the prec2 table merge
variables via a union-find structure; inequality cells become edges of a
DAG that is then assigned integer levels batch by batch (phase 2), the
way a longest-path layering algorithm assigns ranks to a DAG. A variable
whose union-find group takes part in no inequality constraint stays
absent, even if EQ cells merged it with others — the correct
representation for an opener (no left level) or a closer (no right
level).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 The OPG Authors

*/
package level

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'opg.level'.
func tracer() tracing.Trace {
	return tracing.Select("opg.level")
}
