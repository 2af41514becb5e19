package radix

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// Errors returned by conversions. Callers may test for them with errors.Is.
var (
	ErrInvalidDigit   = errors.New("invalid digit for base")
	ErrDegenerateBase = errors.New("degenerate base")
	ErrBitWidths      = errors.New("bit-field widths do not match number of digits")
	ErrUnsupported    = errors.New("unsupported conversion")
)

// Options control the precision of conversions.
type Options struct {
	Precision      int32 // decimal places kept for non-terminating divisions
	FractionDigits int   // maximum fractional digits produced when encoding
}

// DefaultOptions are used for zero-valued option fields.
var DefaultOptions = Options{
	Precision:      64,
	FractionDigits: 10,
}

// Converter converts between digit strings and decimal values.
// A Converter is a value type without internal state and safe for concurrent use.
type Converter struct {
	opts Options
}

// NewConverter creates a converter. Fields of opts which are not positive
// are replaced by defaults.
func NewConverter(opts Options) Converter {
	if opts.Precision <= 0 {
		opts.Precision = DefaultOptions.Precision
	}
	if opts.FractionDigits <= 0 {
		opts.FractionDigits = DefaultOptions.FractionDigits
	}
	return Converter{opts: opts}
}

// Options returns the effective options of a converter.
func (c Converter) Options() Options {
	return c.opts
}

var two = decimal.NewFromInt(2)

// ParseBase parses a base annotation, e.g. "16" or "2.5". A trailing
// fractional separator is tolerated ("16." is 16). Bases with a floor
// below 2 are degenerate.
func ParseBase(s string) (decimal.Decimal, error) {
	s = strings.TrimSuffix(s, ".")
	b, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrDegenerateBase, s)
	}
	if b.Floor().LessThan(two) {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrDegenerateBase, b)
	}
	return b, nil
}

// FloorBase returns floor(base) as an int, the number of legal digit values.
func FloorBase(base decimal.Decimal) int {
	f := base.Floor()
	if f.GreaterThan(decimal.NewFromInt(1 << 20)) {
		return 1 << 20
	}
	return int(f.IntPart())
}

// ToDecimal evaluates a digit string in base, i.e. Σ digitᵢ · base^positionᵢ,
// with positions counted from the fractional separator. A leading '-' negates
// the result. Only the first separator is significant; anything following a
// second separator is ignored.
func (c Converter) ToDecimal(digits string, base decimal.Decimal) (decimal.Decimal, error) {
	b := FloorBase(base)
	if b < 2 {
		return decimal.Zero, ErrDegenerateBase
	}
	neg := strings.HasPrefix(digits, "-")
	if neg {
		digits = digits[1:]
	}
	intPart, fracPart, _ := strings.Cut(digits, ".")
	fracPart, _, _ = strings.Cut(fracPart, ".")
	if !ValidDigits(intPart, b) || !ValidDigits(fracPart, b) {
		return decimal.Zero, fmt.Errorf("%w: %q in base %s", ErrInvalidDigit, digits, base)
	}
	var v decimal.Decimal
	if base.IsInteger() {
		v = c.integralBaseToDecimal(intPart, fracPart, b)
	} else {
		v = c.realBaseToDecimal(intPart, fracPart, base)
	}
	if neg {
		v = v.Neg()
	}
	return v, nil
}

// For integral bases the digits are accumulated into a single big integer,
// followed by at most one division. No rounding errors occur for terminating
// fractions.
func (c Converter) integralBaseToDecimal(intPart, fracPart string, b int) decimal.Decimal {
	bb := big.NewInt(int64(b))
	n := new(big.Int)
	for _, part := range [2]string{intPart, fracPart} {
		for i := 0; i < len(part); i++ {
			n.Mul(n, bb)
			n.Add(n, big.NewInt(int64(DigitValue(part[i]))))
		}
	}
	v := decimal.NewFromBigInt(n, 0)
	if len(fracPart) == 0 {
		return v
	}
	den := new(big.Int).Exp(bb, big.NewInt(int64(len(fracPart))), nil)
	return v.DivRound(decimal.NewFromBigInt(den, 0), c.opts.Precision)
}

// Non-integral bases use Horner's scheme in both directions from the
// fractional separator.
func (c Converter) realBaseToDecimal(intPart, fracPart string, base decimal.Decimal) decimal.Decimal {
	v := decimal.Zero
	for i := 0; i < len(intPart); i++ {
		v = v.Mul(base).Add(decimal.NewFromInt(int64(DigitValue(intPart[i]))))
	}
	f := decimal.Zero
	for i := len(fracPart) - 1; i >= 0; i-- {
		f = f.Add(decimal.NewFromInt(int64(DigitValue(fracPart[i])))).DivRound(base, c.opts.Precision)
	}
	return v.Add(f)
}

// FromDecimal renders v in base. The base has to be integral and must not
// exceed MaxBase. Fractions are expanded to at most Options.FractionDigits
// digits, trailing zeros removed.
func (c Converter) FromDecimal(v decimal.Decimal, base decimal.Decimal) (string, error) {
	b, err := targetBase(base)
	if err != nil {
		return "", err
	}
	if v.IsZero() {
		return "0", nil
	}
	neg := v.IsNegative()
	v = v.Abs()
	bb := big.NewInt(int64(b))
	ip := v.Floor()
	s := formatInt(ip.BigInt(), bb)
	if frac := v.Sub(ip); !frac.IsZero() {
		scaled, carry := c.scaleFraction(frac, bb, c.opts.FractionDigits)
		if carry {
			s = formatInt(new(big.Int).Add(ip.BigInt(), big.NewInt(1)), bb)
		} else if fd := strings.TrimRight(padDigits(formatInt(scaled, bb), c.opts.FractionDigits), "0"); fd != "" {
			s += "." + fd
		}
	}
	if neg {
		s = "-" + s
	}
	return s, nil
}

func targetBase(base decimal.Decimal) (int, error) {
	if !base.IsInteger() {
		return 0, fmt.Errorf("%w: non-integral target base %s", ErrUnsupported, base)
	}
	b := FloorBase(base)
	if b < 2 || b > MaxBase {
		return 0, fmt.Errorf("%w: %d", ErrDegenerateBase, b)
	}
	return b, nil
}

// scaleFraction returns floor(frac · b^n). The pivot value may carry a
// rounding error from a preceding division (0.333… for 1/3), therefore
// results within half the working precision of the next integer are rounded
// up. carry reports that the result reached b^n.
func (c Converter) scaleFraction(frac decimal.Decimal, bb *big.Int, n int) (*big.Int, bool) {
	limit := new(big.Int).Exp(bb, big.NewInt(int64(n)), nil)
	scaled := frac.Mul(decimal.NewFromBigInt(limit, 0))
	r := scaled.Round(0)
	eps := decimal.New(1, -c.opts.Precision/2)
	if r.Sub(scaled).Abs().GreaterThan(eps) {
		r = scaled.Floor()
	}
	s := r.BigInt()
	return s, s.Cmp(limit) >= 0
}

func formatInt(n *big.Int, bb *big.Int) string {
	if n.Sign() == 0 {
		return "0"
	}
	n = new(big.Int).Abs(n)
	var digits []byte
	m := new(big.Int)
	for n.Sign() > 0 {
		n.DivMod(n, bb, m)
		c, _ := DigitSymbol(int(m.Int64()))
		digits = append(digits, c)
	}
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return string(digits)
}

func padDigits(s string, n int) string {
	if len(s) >= n {
		return s
	}
	return strings.Repeat("0", n-len(s)) + s
}
