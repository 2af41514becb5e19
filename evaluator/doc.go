/*
Package evaluator evaluates notebook lines.

Evaluating a math line runs it through a fixed sequence of stages:

   1. based-number literals are converted (package literals)
   2. a declaration "name = expr" is split off
   3. variables declared on preceding lines are substituted (package variables)
   4. the expression is transcribed from onyx to infix (package notation)
   5. a trailing '=' is dropped, remembering to show the answer inline
   6. the infix expression is handed to an algebra engine
   7. the engine's answer is transcribed back to onyx

Engines report problems with output of more than one line, the second line
of which gives a hint prefixed with "Stop:". Such output is not transcribed
but becomes the line's error.

Plot lines and raw text lines are handled without calling the engine.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package evaluator

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'onyx.evaluator'.
func tracer() tracing.Trace {
	return tracing.Select("onyx.evaluator")
}
