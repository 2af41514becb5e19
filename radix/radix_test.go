package radix

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestDigitAlphabet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "onyx.radix")
	defer teardown()
	//
	for v := 0; v < MaxBase; v++ {
		c, ok := DigitSymbol(v)
		if !ok || DigitValue(c) != v {
			t.Errorf("digit value %d does not map back from %q", v, c)
		}
	}
	if DigitValue('-') != -1 || DigitValue('.') != -1 {
		t.Errorf("expected separators not to be digits")
	}
	if _, ok := DigitSymbol(62); ok {
		t.Errorf("expected 62 to have no digit symbol")
	}
	if !ValidDigits("1.01", 2) || ValidDigits("102", 2) {
		t.Errorf("binary digit validation broken")
	}
}

func TestParseBase(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "onyx.radix")
	defer teardown()
	//
	for i, x := range []struct {
		s   string
		b   string
		err bool
	}{
		{s: "16", b: "16"},
		{s: "2.5", b: "2.5"},
		{s: "16.", b: "16"},
		{s: "1", err: true},
		{s: "1.9", err: true},
		{s: "", err: true},
		{s: "x", err: true},
	} {
		b, err := ParseBase(x.s)
		if x.err {
			if !errors.Is(err, ErrDegenerateBase) {
				t.Errorf("test %d: expected base %q to be degenerate", i, x.s)
			}
			continue
		}
		if err != nil || !b.Equal(decimal.RequireFromString(x.b)) {
			t.Errorf("test %d: expected base %q to parse as %s, is %s (%v)", i, x.s, x.b, b, err)
		}
	}
}

func TestToDecimal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "onyx.radix")
	defer teardown()
	//
	c := NewConverter(Options{})
	for i, x := range []struct {
		digits string
		base   string
		v      string
	}{
		{digits: "FF", base: "16", v: "255"},
		{digits: "11111111", base: "2", v: "255"},
		{digits: "0.1", base: "2", v: "0.5"},
		{digits: "-101", base: "2", v: "-5"},
		{digits: "Z", base: "36", v: "35"},
		{digits: "z", base: "62", v: "61"},
		{digits: "10", base: "62", v: "62"},
		{digits: "11", base: "2.5", v: "3.5"},
		{digits: "0.1", base: "2.5", v: "0.4"},
		{digits: "1.8.9", base: "10", v: "1.8"},
	} {
		v, err := c.ToDecimal(x.digits, decimal.RequireFromString(x.base))
		if err != nil {
			t.Errorf("test %d: unexpected error %v", i, err)
			continue
		}
		if !v.Equal(decimal.RequireFromString(x.v)) {
			t.Errorf("test %d: expected %s_%s = %s, is %s", i, x.digits, x.base, x.v, v)
		}
	}
	if _, err := c.ToDecimal("102", decimal.NewFromInt(2)); !errors.Is(err, ErrInvalidDigit) {
		t.Errorf("expected invalid digit error, got %v", err)
	}
}

func TestFromDecimal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "onyx.radix")
	defer teardown()
	//
	c := NewConverter(Options{})
	for i, x := range []struct {
		v      string
		base   int64
		digits string
	}{
		{v: "255", base: 2, digits: "11111111"},
		{v: "255", base: 16, digits: "FF"},
		{v: "0", base: 7, digits: "0"},
		{v: "0.5", base: 2, digits: "0.1"},
		{v: "-10", base: 16, digits: "-A"},
		{v: "61", base: 62, digits: "z"},
		{v: "0.1", base: 2, digits: "0.000110011"},
	} {
		s, err := c.FromDecimal(decimal.RequireFromString(x.v), decimal.NewFromInt(x.base))
		if err != nil || s != x.digits {
			t.Errorf("test %d: expected %s in base %d = %q, is %q (%v)", i, x.v, x.base, x.digits, s, err)
		}
	}
	if _, err := c.FromDecimal(decimal.NewFromInt(1), decimal.NewFromInt(63)); !errors.Is(err, ErrDegenerateBase) {
		t.Errorf("expected base 63 to be rejected as target, got %v", err)
	}
	if _, err := c.FromDecimal(decimal.NewFromInt(1), decimal.RequireFromString("2.5")); !errors.Is(err, ErrUnsupported) {
		t.Errorf("expected non-integral target base to be rejected, got %v", err)
	}
}

func TestThirdsSurvivePivot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "onyx.radix")
	defer teardown()
	//
	c := NewConverter(Options{})
	three := decimal.NewFromInt(3)
	v, err := c.ToDecimal("0.1", three)
	require.NoError(t, err)
	s, err := c.FromDecimal(v, three)
	require.NoError(t, err)
	require.Equal(t, "0.1", s)
}

func TestBaseRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "onyx.radix")
	defer teardown()
	//
	c := NewConverter(Options{})
	values := []string{"0", "1", "7", "61", "62", "255", "1000", "123456789", "-42"}
	halves := []string{"0.5", "3.25", "-0.75"} // terminating in even bases only
	for b := 2; b <= MaxBase; b++ {
		base := decimal.NewFromInt(int64(b))
		vv := values
		if b%2 == 0 {
			vv = append(vv[:len(vv):len(vv)], halves...)
		}
		for _, s := range vv {
			v := decimal.RequireFromString(s)
			digits, err := c.FromDecimal(v, base)
			require.NoError(t, err, "base %d, value %s", b, s)
			back, err := c.ToDecimal(digits, base)
			require.NoError(t, err, "base %d, digits %q", b, digits)
			require.True(t, back.Equal(v), "base %d: %s -> %q -> %s", b, s, digits, back)
		}
	}
}

func TestTwosComplementRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "onyx.radix")
	defer teardown()
	//
	c := NewConverter(Options{})
	for n := -128; n < 128; n++ {
		v := decimal.NewFromInt(int64(n))
		bits, err := c.DecimalToTwosComplement(v, 2, 8)
		require.NoError(t, err)
		require.Len(t, bits, 8)
		back, err := c.TwosComplementToDecimal(bits, 2)
		require.NoError(t, err)
		require.True(t, back.Equal(v), "%d -> %q -> %s", n, bits, back)
	}
	for n := -16; n < 16; n++ {
		v := decimal.NewFromInt(int64(n))
		digits, err := c.DecimalToTwosComplement(v, 16, 2)
		require.NoError(t, err)
		back, err := c.TwosComplementToDecimal(digits, 16)
		require.NoError(t, err)
		require.True(t, back.Equal(v), "%d -> %q -> %s", n, digits, back)
	}
}

func TestDecodeVariants(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "onyx.radix")
	defer teardown()
	//
	c := NewConverter(Options{})
	bin := decimal.NewFromInt(2)
	for i, x := range []struct {
		digits string
		enc    Encoding
		v      string
	}{
		{digits: "11111111", enc: Encoding{Base: bin, Variant: Unsigned}, v: "255"},
		{digits: "11111111", enc: Encoding{Base: bin, Variant: TwosComplement}, v: "-1"},
		{digits: "01111111", enc: Encoding{Base: bin, Variant: TwosComplement}, v: "127"},
		{digits: "1101", enc: Encoding{Base: bin, Variant: SignMagnitude}, v: "-5"},
		{digits: "0101", enc: Encoding{Base: bin, Variant: SignMagnitude}, v: "5"},
		{digits: "101.1", enc: Encoding{Base: bin, Variant: Fixed, Mantissa: 3, Exponent: 1}, v: "5.5"},
		{digits: "1011", enc: Encoding{Base: bin, Variant: Fixed, Mantissa: 3, Exponent: 1}, v: "5.5"},
		{digits: "010001", enc: Encoding{Base: bin, Variant: Floating, Mantissa: 4, Exponent: 2}, v: "1"},
		{digits: "011011", enc: Encoding{Base: bin, Variant: Normalized, Mantissa: 4, Exponent: 2}, v: "0.375"},
	} {
		v, err := c.Decode(x.digits, x.enc)
		if err != nil {
			t.Errorf("test %d: unexpected error %v", i, err)
			continue
		}
		if !v.Equal(decimal.RequireFromString(x.v)) {
			t.Errorf("test %d: expected %q as %s = %s, is %s", i, x.digits, x.enc.Variant, x.v, v)
		}
	}
}

func TestBitWidthsRejected(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "onyx.radix")
	defer teardown()
	//
	c := NewConverter(Options{})
	bin := decimal.NewFromInt(2)
	for i, enc := range []Encoding{
		{Base: bin, Variant: Fixed, Mantissa: 3, Exponent: 3},
		{Base: bin, Variant: Floating, Mantissa: 0, Exponent: 4},
		{Base: bin, Variant: Normalized, Mantissa: 4, Exponent: 0},
	} {
		if _, err := c.Decode("0100", enc); !errors.Is(err, ErrBitWidths) {
			t.Errorf("test %d: expected bit width error, got %v", i, err)
		}
	}
}

func TestEncodeVariants(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "onyx.radix")
	defer teardown()
	//
	c := NewConverter(Options{})
	bin := decimal.NewFromInt(2)
	for i, x := range []struct {
		v      string
		enc    Encoding
		length int
		digits string
	}{
		{v: "255", enc: Encoding{Base: bin, Variant: Unsigned}, digits: "11111111"},
		{v: "-1", enc: Encoding{Base: bin, Variant: TwosComplement}, length: 4, digits: "1111"},
		{v: "3", enc: Encoding{Base: bin, Variant: TwosComplement}, length: 4, digits: "0011"},
		{v: "-5", enc: Encoding{Base: bin, Variant: SignMagnitude}, length: 5, digits: "10101"},
		{v: "5.5", enc: Encoding{Base: bin, Variant: Fixed, Mantissa: 4, Exponent: 2}, digits: "0101.10"},
	} {
		s, err := c.Encode(decimal.RequireFromString(x.v), x.enc, x.length)
		if err != nil || s != x.digits {
			t.Errorf("test %d: expected %s as %s = %q, is %q (%v)", i, x.v, x.enc.Variant, x.digits, s, err)
		}
	}
	_, err := c.Encode(decimal.NewFromInt(1), Encoding{Base: bin, Variant: Floating, Mantissa: 4, Exponent: 4}, 8)
	if !errors.Is(err, ErrUnsupported) {
		t.Errorf("expected floating point target to be unsupported, got %v", err)
	}
}
