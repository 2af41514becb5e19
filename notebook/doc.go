/*
Package notebook holds the lines of a notebook.

A notebook is an ordered sequence of lines. Every line has user content,
prefixed by an optional format tag, and the outcome of its last evaluation:

   .m  math line, evaluated by an algebra engine (default)
   .p  plot line, a comma separated list of functions
   .r  raw text, displayed as is

Lines may be appended, inserted, removed and updated. Changing the content
of a line clears its outcome (including a variable declaration); it is up
to the caller to re-evaluate it.

A Store is safe for concurrent use.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package notebook

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'onyx.notebook'.
func tracer() tracing.Trace {
	return tracing.Select("onyx.notebook")
}
