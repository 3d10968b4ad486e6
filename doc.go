/*
Package opg implements the core of a generic, language-agnostic
indentation engine driven by operator-precedence grammars (OPG).

A host editor supplies either a restricted BNF grammar or a plain list of
precedence declarations, plus a small table of indentation rules. From
those inputs the engine derives a table of integer precedence levels per
token and uses it to walk source text bidirectionally and to compute the
indentation column of any line — without the editor ever writing a full
parser for the language.

Package structure is as follows:

■ prec2: builds the two-dimensional precedence relation table from BNF
grammars or precedence lists.

■ level: solves a prec2 table into one-dimensional left/right levels
per token.

■ scan: a pluggable tokenizer interface plus the bidirectional
operator-precedence scanner (backward-sexp / forward-sexp).

■ indent: the indentation rule table and the rule cascade that computes
a line's column.

The base package contains data types shared throughout all of the above:
tokens, spans, precedence relation values and scan results.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 The OPG Authors

*/
package opg
