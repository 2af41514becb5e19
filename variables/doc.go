/*
Package variables implements variable declarations of notebook lines.

A notebook line declares a variable if it has the form

   name = value

where name consists of letters or pictographic symbols only (x, α, 🍎).
The variable is visible to every later line, until it is re-declared by a
later line. Re-declaration does not change the value seen by lines in
between:

   0:  x = 5
   1:  x + 1      ⟹ 5 + 1
   2:  x = 7
   3:  x + 1      ⟹ 7 + 1

Declarations are kept in an overlay ordered by line index. Resolving the
variables for line n means folding the declarations of lines 0…n-1, later
ones shadowing earlier ones, and substituting them into the text of line n.
Substitution works on whole words: longer names are substituted first, and
a digit immediately preceding a name denotes multiplication (2x ⟹ 2\cdot 5).

Names are compared in Unicode normal form C.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package variables

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'onyx.variables'.
func tracer() tracing.Trace {
	return tracing.Select("onyx.variables")
}
