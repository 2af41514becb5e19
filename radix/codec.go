package radix

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// Variant is the encoding of a digit string.
type Variant uint8

// Encoding variants. Integer and Decimal are plain positional numbers and
// differ only in that decimal literals may pass through unchanged.
const (
	Integer Variant = iota
	Decimal
	Unsigned
	TwosComplement
	SignMagnitude
	Fixed
	Floating
	Normalized
)

var variantNames = [...]string{
	"integer", "decimal", "unsigned", "twos-complement",
	"sign-and-magnitude", "fixed", "floating", "normalized",
}

func (v Variant) String() string {
	if int(v) < len(variantNames) {
		return variantNames[v]
	}
	return fmt.Sprintf("Variant(%d)", uint8(v))
}

// VariantForSymbol maps a variant letter of the literal grammar to a Variant.
//
//	u  unsigned
//	s  two's complement
//	m  sign-and-magnitude
//	x  fixed point (needs bit widths)
//	f  floating point (needs bit widths)
//	n  normalized floating point (needs bit widths)
func VariantForSymbol(c byte) (Variant, bool) {
	switch c {
	case 'u':
		return Unsigned, true
	case 's':
		return TwosComplement, true
	case 'm':
		return SignMagnitude, true
	case 'x':
		return Fixed, true
	case 'f':
		return Floating, true
	case 'n':
		return Normalized, true
	}
	return Integer, false
}

// HasBitWidths is true for variants which carry MANT.EXP bit widths.
func (v Variant) HasBitWidths() bool {
	return v == Fixed || v == Floating || v == Normalized
}

// Encoding describes how a digit string represents a number.
type Encoding struct {
	Base     decimal.Decimal
	Variant  Variant
	Mantissa int // width of the mantissa (or integer) field in digits
	Exponent int // width of the exponent (or fractional) field in digits
}

// maxExponent limits the exponent of floating literals. 2^4096 is far beyond
// what a notebook line can sensibly display.
const maxExponent = 4096

// Decode computes the value of digits under encoding enc.
func (c Converter) Decode(digits string, enc Encoding) (decimal.Decimal, error) {
	b := FloorBase(enc.Base)
	if b < 2 {
		return decimal.Zero, ErrDegenerateBase
	}
	switch enc.Variant {
	case TwosComplement:
		return c.TwosComplementToDecimal(strings.Replace(digits, ".", "", 1), b)
	case SignMagnitude:
		return c.signMagnitudeToDecimal(digits, enc.Base)
	case Fixed:
		m, e, err := splitFields(digits, enc)
		if err != nil {
			return decimal.Zero, err
		}
		return c.ToDecimal(m+"."+e, enc.Base)
	case Floating, Normalized:
		return c.floatingToDecimal(digits, enc, b)
	}
	return c.ToDecimal(digits, enc.Base)
}

// splitFields removes the fractional separator and splits the digits into
// mantissa and exponent fields. Fields of zero width are rejected.
func splitFields(digits string, enc Encoding) (mant, exp string, err error) {
	if enc.Mantissa <= 0 || enc.Exponent <= 0 {
		return "", "", fmt.Errorf("%w: %d.%d", ErrBitWidths, enc.Mantissa, enc.Exponent)
	}
	clean := strings.Replace(digits, ".", "", 1)
	if enc.Mantissa+enc.Exponent != len(clean) {
		return "", "", fmt.Errorf("%w: %d.%d for %q", ErrBitWidths, enc.Mantissa, enc.Exponent, digits)
	}
	return clean[:enc.Mantissa], clean[enc.Mantissa:], nil
}

// TwosComplementToDecimal decodes a complement-encoded digit string.
// A leading zero digit denotes a non-negative number. Otherwise the value is
// unsigned(rest) − base^(len−1).
func (c Converter) TwosComplementToDecimal(digits string, base int) (decimal.Decimal, error) {
	if base < 2 {
		return decimal.Zero, ErrDegenerateBase
	}
	if digits == "" {
		return decimal.Zero, nil
	}
	bd := decimal.NewFromInt(int64(base))
	lead := DigitValue(digits[0])
	if lead < 0 || lead >= base {
		return decimal.Zero, fmt.Errorf("%w: %q in base %d", ErrInvalidDigit, digits, base)
	}
	if lead == 0 {
		return c.ToDecimal(digits, bd)
	}
	rest, err := c.ToDecimal(digits[1:], bd)
	if err != nil {
		return decimal.Zero, err
	}
	return rest.Sub(intPow(base, len(digits)-1)), nil
}

// DecimalToTwosComplement encodes v in base using exactly length digits
// (or more, if v does not fit). Negative numbers are encoded as
// base^length + v.
func (c Converter) DecimalToTwosComplement(v decimal.Decimal, base, length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("%w: length %d", ErrBitWidths, length)
	}
	bd := decimal.NewFromInt(int64(base))
	if v.IsNegative() {
		v = intPow(base, length).Add(v)
	}
	s, err := c.FromDecimal(v, bd)
	if err != nil {
		return "", err
	}
	return padDigits(s, length), nil
}

func (c Converter) signMagnitudeToDecimal(digits string, base decimal.Decimal) (decimal.Decimal, error) {
	if digits == "" {
		return decimal.Zero, nil
	}
	lead := DigitValue(digits[0])
	if lead < 0 || lead >= FloorBase(base) {
		return decimal.Zero, fmt.Errorf("%w: sign digit %q", ErrInvalidDigit, digits[0])
	}
	mag, err := c.ToDecimal(digits[1:], base)
	if err != nil {
		return decimal.Zero, err
	}
	if lead > 0 {
		mag = mag.Neg()
	}
	return mag, nil
}

// floatingToDecimal decodes mantissa and exponent as two's complement and
// computes mantissa / 2^(m−1) · 2^exponent. The scaling is radix 2 whatever
// the base of the digits.
func (c Converter) floatingToDecimal(digits string, enc Encoding, b int) (decimal.Decimal, error) {
	m, e, err := splitFields(digits, enc)
	if err != nil {
		return decimal.Zero, err
	}
	mant, err := c.TwosComplementToDecimal(m, b)
	if err != nil {
		return decimal.Zero, err
	}
	exp, err := c.TwosComplementToDecimal(e, b)
	if err != nil {
		return decimal.Zero, err
	}
	if exp.Abs().GreaterThan(decimal.NewFromInt(maxExponent)) {
		return decimal.Zero, fmt.Errorf("%w: exponent %s", ErrUnsupported, exp)
	}
	x := int(exp.IntPart())
	tracer().Debugf("floating point literal %s: mantissa=%s, exponent=%d", digits, mant, x)
	num, den := mant, intPow(2, enc.Mantissa-1)
	if x >= 0 {
		num = num.Mul(intPow(2, x))
	} else {
		den = den.Mul(intPow(2, -x))
	}
	return num.DivRound(den, c.opts.Precision), nil
}

// Encode renders v under encoding enc. length is the digit count of the
// source literal and is used to size complement encodings.
func (c Converter) Encode(v decimal.Decimal, enc Encoding, length int) (string, error) {
	switch enc.Variant {
	case TwosComplement:
		b, err := targetBase(enc.Base)
		if err != nil {
			return "", err
		}
		return c.DecimalToTwosComplement(v, b, length)
	case SignMagnitude:
		return c.encodeSignMagnitude(v, enc.Base, length)
	case Fixed:
		return c.encodeFixed(v, enc)
	case Floating, Normalized:
		return "", fmt.Errorf("%w: encoding into %s", ErrUnsupported, enc.Variant)
	}
	return c.FromDecimal(v, enc.Base)
}

func (c Converter) encodeSignMagnitude(v decimal.Decimal, base decimal.Decimal, length int) (string, error) {
	if length < 2 {
		return "", fmt.Errorf("%w: length %d", ErrBitWidths, length)
	}
	mag, err := c.FromDecimal(v.Abs(), base)
	if err != nil {
		return "", err
	}
	sign := "0"
	if v.IsNegative() {
		sign = "1"
	}
	return sign + padDigits(mag, length-1), nil
}

// encodeFixed renders a non-negative value with exactly enc.Mantissa integer
// digits and enc.Exponent fractional digits. The fraction is truncated.
func (c Converter) encodeFixed(v decimal.Decimal, enc Encoding) (string, error) {
	if enc.Mantissa <= 0 || enc.Exponent <= 0 {
		return "", fmt.Errorf("%w: %d.%d", ErrBitWidths, enc.Mantissa, enc.Exponent)
	}
	if v.IsNegative() {
		return "", fmt.Errorf("%w: negative fixed-point value", ErrUnsupported)
	}
	b, err := targetBase(enc.Base)
	if err != nil {
		return "", err
	}
	bb := big.NewInt(int64(b))
	ip := v.Floor()
	scaled, carry := c.scaleFraction(v.Sub(ip), bb, enc.Exponent)
	n := ip.BigInt()
	if carry {
		n.Add(n, big.NewInt(1))
		scaled.SetInt64(0)
	}
	intDigits := formatInt(n, bb)
	if len(intDigits) > enc.Mantissa {
		return "", fmt.Errorf("%w: %s needs more than %d integer digits", ErrBitWidths, v, enc.Mantissa)
	}
	return padDigits(intDigits, enc.Mantissa) + "." + padDigits(formatInt(scaled, bb), enc.Exponent), nil
}

func intPow(base, exp int) decimal.Decimal {
	p := new(big.Int).Exp(big.NewInt(int64(base)), big.NewInt(int64(exp)), nil)
	return decimal.NewFromBigInt(p, 0)
}
