/*
Package luaengine is a numeric algebra engine on top of an embedded Lua VM.

Infix expressions are evaluated as Lua expressions. The functions of Lua's
math library are available without the "math." prefix, together with
a few aliases common in math notation (ln, arcsin, nthRoot, …). Products
may be written without an operator after numbers and closing parentheses:

   2x      →  2*x
   (a)(b)  →  (a)*(b)

Expressions containing unknown symbols cannot be evaluated numerically and
are returned unchanged. Failures are reported as two lines, the input
followed by a line starting with "Stop:".

Every evaluation runs in a fresh Lua state, so an Engine is safe for
concurrent use.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package luaengine

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'onyx.engine'.
func tracer() tracing.Trace {
	return tracing.Select("onyx.engine")
}
