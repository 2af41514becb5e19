/*
Package notation translates between onyx, the LaTeX-like display notation of
notebook lines, and plain infix notation understood by algebra engines.

Both directions are ordered pipelines of rewrite steps, each step rewriting
the whole string. The order of steps matters: fractions are rewritten before
braces are turned into parentheses, roots before powers, etc. Neither
direction is a parser; text which no step recognizes is left alone (or, for
unknown LaTeX macros, dropped).

	ToInfix(`\dfrac{1}{2}`)  ⟹  (1)/(2)
	ToOnyx(`(1)/(2)`)        ⟹  \dfrac{1}{2}

Bare quotients such as 1/2 are rewritten only outside of brace groups. Go's
regular expressions lack look-around, so this step tokenizes the string with
a lexmachine lexer and tracks the brace depth.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package notation

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'onyx.notation'.
func tracer() tracing.Trace {
	return tracing.Select("onyx.notation")
}
