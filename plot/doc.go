/*
Package plot extracts functions to plot from plot lines.

A plot line is a comma separated list of functions. Only simple polynomials
are recognized as functions:

   x^2
   -2x^3 + 4.5*x - 1
   3 * t + t^2

Every term but constant ones carries a single-letter variable with an
optional non-negative integer exponent. Parts which are not polynomials are
kept in the line's result but not plotted.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package plot

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'onyx.plot'.
func tracer() tracing.Trace {
	return tracing.Select("onyx.plot")
}
