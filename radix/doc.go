/*
Package radix converts digit strings of arbitrary bases to and from decimal
values, and knows how to interpret signed and bit-field encodings of them.

Digits are taken from a fixed alphabet of 62 symbols:

   0 … 9   ⟹  0 … 9
   A … Z   ⟹ 10 … 35
   a … z   ⟹ 36 … 61

Every conversion funnels through a decimal pivot value (shopspring/decimal).
There is no shortcut from one base to another: a hexadecimal number is first
decoded to a decimal.Decimal and then encoded into the target base. Thus, if
one direction is correct, the composition of both directions is, too.

Bases need not be integers when decoding: with a base of 2.5 digits are
weighted with powers of 2.5. Digit validity is always checked against
floor(base). Target bases for encoding have to be integral and at most 62.

Encodings

Besides plain positional notation, the following encodings are supported:

   two's complement    leading digit ≠ 0 subtracts base^(n-1)
   sign-and-magnitude  leading digit ≠ 0 means negative
   fixed               m integer digits followed by e fractional digits
   floating            m digits of two's complement mantissa, e digits of
                       two's complement exponent, scaled by radix 2

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package radix

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'onyx.radix'.
func tracer() tracing.Trace {
	return tracing.Select("onyx.radix")
}
