package literals

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/onyx/radix"
	"github.com/shopspring/decimal"
)

// Scanner normalizes based literals in text. It holds no state between calls
// and may be shared between goroutines.
type Scanner struct {
	conv radix.Converter
}

// NewScanner creates a scanner converting with conv.
func NewScanner(conv radix.Converter) *Scanner {
	return &Scanner{conv: conv}
}

// Normalize uses a scanner with default options to normalize text.
func Normalize(text string) string {
	return NewScanner(radix.NewConverter(radix.DefaultOptions)).Normalize(text)
}

var ten = decimal.NewFromInt(10)

// Normalize replaces every based literal in text by its converted value.
func (sc *Scanner) Normalize(text string) string {
	input := []byte(text)
	var out strings.Builder
	out.Grow(len(input))
	i := 0
	for i < len(input) {
		c := input[i]
		if c == '\\' { // skip macros
			n := 2
			if strings.HasPrefix(text[i:], `\to`) {
				n = 3
			}
			n = min(n, len(input)-i)
			out.Write(input[i : i+n])
			i += n
			continue
		}
		if radix.DigitValue(c) < 0 {
			out.WriteByte(c)
			i++
			continue
		}
		lit := matchLiteral(input, i)
		if lit.plain() && radix.ValidDigits(lit.digitString(input), 10) {
			out.Write(input[i:lit.commit])
			i = lit.commit
			continue
		}
		repl, err := sc.convert(input, lit)
		if err != nil {
			tracer().Debugf("skipping literal %q: %v", input[i:lit.commit], err)
			out.WriteByte(c)
			i++
			continue
		}
		tracer().Debugf("literal %q ⟹ %q", input[i:lit.commit], repl)
		out.WriteString(repl)
		i = lit.commit
	}
	return out.String()
}

func (l *literal) digitString(input []byte) string {
	return string(input[l.digits.from:l.digits.to])
}

var errNoDigits = errors.New("empty literal")

// convert decodes a literal and, if it carries a target, re-encodes it.
// Panics of the conversion are turned into errors.
func (sc *Scanner) convert(input []byte, lit *literal) (repl string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("literal conversion failed: %v", r)
		}
	}()
	digits := lit.digitString(input)
	if digits == "" {
		return "", errNoDigits
	}
	src, err := sc.encoding(input, &lit.source, ten)
	if err != nil {
		return "", err
	}
	if !src.Variant.HasBitWidths() && !lit.source.explicit && strings.Contains(digits, ".") {
		src.Variant = radix.Decimal
	}
	if !radix.ValidDigits(digits, radix.FloorBase(src.Base)) {
		return "", fmt.Errorf("%w: %q in base %s", radix.ErrInvalidDigit, digits, src.Base)
	}
	v, err := sc.conv.Decode(digits, src)
	if err != nil {
		return "", err
	}
	if !lit.hasTarget {
		return v.String(), nil
	}
	dest, err := sc.encoding(input, &lit.target, ten)
	if err != nil {
		return "", err
	}
	return sc.conv.Encode(v, dest, len(strings.Replace(digits, ".", "", 1)))
}

func (sc *Scanner) encoding(input []byte, a *annotation, dflt decimal.Decimal) (radix.Encoding, error) {
	enc := radix.Encoding{
		Base:     dflt,
		Variant:  a.variant,
		Mantissa: a.mant,
		Exponent: a.exp,
	}
	if !a.base.empty() {
		b, err := radix.ParseBase(string(input[a.base.from:a.base.to]))
		if err != nil {
			return enc, err
		}
		enc.Base = b
	}
	return enc, nil
}
