/*
Package literals rewrites based-number literals embedded in notebook text.

A based literal is a run of digits with an optional base and encoding
annotation and an optional conversion target:

   DIGITS [ _BASE | _{BASE} ] [ :V [M.E] ] [ \to b_BASE [ :V [M.E] ] ]

with V being one of the variant letters u, s, m, x, f, n (see package radix).
Examples:

   FF_{16}              ⟹ 255
   FF_{16}:u \to b_{2}  ⟹ 11111111
   11111111_2:s         ⟹ -1
   101.1_2:x3.1         ⟹ 5.5

Everything which is not a well-formed based literal is left untouched, and so
are plain decimal numbers. A literal which fails to convert is left as text and
scanning resumes one character after the start of the failed match. Normalizing
is idempotent, as every replacement is a plain decimal (or a digit string
without annotations).

The scanner is a hand-written state machine working on bytes. LaTeX macros
(backslash followed by a character, or \to) are skipped.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package literals

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'onyx.literals'.
func tracer() tracing.Trace {
	return tracing.Select("onyx.literals")
}
