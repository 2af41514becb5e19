package variables

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Declaration binds a variable name to a value in onyx notation.
type Declaration struct {
	Name  string
	Value string
}

// ParseDeclaration checks if text is a declaration of the form "name = value".
// The text is split at the first '='. Both sides have to be non-empty, and the
// trimmed left side must consist of letters or pictographic symbols only.
func ParseDeclaration(text string) (Declaration, bool) {
	left, right, found := strings.Cut(text, "=")
	if !found {
		return Declaration{}, false
	}
	name, value := strings.TrimSpace(left), strings.TrimSpace(right)
	if name == "" || value == "" {
		return Declaration{}, false
	}
	for _, r := range name {
		if !isNameRune(r) {
			return Declaration{}, false
		}
	}
	return Declaration{Name: norm.NFC.String(name), Value: value}, true
}

func isNameRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsMark(r) || isPictographic(r)
}

// isPictographic approximates the Extended_Pictographic property, which is
// not part of package unicode: other symbols plus the emoji planes.
func isPictographic(r rune) bool {
	return unicode.Is(unicode.So, r) || (r >= 0x1F000 && r <= 0x1FAFF)
}

// isWordRune is true for runes which may not surround a substituted name.
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r) || isPictographic(r)
}
