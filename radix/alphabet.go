package radix

// Alphabet is the ordered set of digit symbols. The position of a symbol
// is its digit value.
const Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// MaxBase is the largest base for which every digit value has a symbol.
const MaxBase = len(Alphabet)

var digitValues = makeDigitTable()

func makeDigitTable() (t [256]int8) {
	for i := range t {
		t[i] = -1
	}
	for v := 0; v < len(Alphabet); v++ {
		t[Alphabet[v]] = int8(v)
	}
	return
}

// DigitValue returns the value of digit symbol c, or -1 if c is not a
// digit symbol.
func DigitValue(c byte) int {
	return int(digitValues[c])
}

// DigitSymbol returns the symbol for digit value v. ok is false for
// values outside of 0…61.
func DigitSymbol(v int) (c byte, ok bool) {
	if v < 0 || v >= MaxBase {
		return '?', false
	}
	return Alphabet[v], true
}

// IsDigit is a predicate: is c a valid digit in base?
// Bases greater than MaxBase accept every symbol of the alphabet.
func IsDigit(c byte, base int) bool {
	v := digitValues[c]
	return v >= 0 && int(v) < base
}

// ValidDigits checks that every byte of s, except a fractional separator,
// is a digit in base.
func ValidDigits(s string, base int) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			continue
		}
		if !IsDigit(s[i], base) {
			return false
		}
	}
	return true
}
