package notation

import (
	"regexp"
	"strings"
)

// step is a total rewrite of a string.
type step func(string) string

// pipeline is an ordered sequence of rewrite steps.
type pipeline []step

func (p pipeline) apply(s string) string {
	for _, st := range p {
		s = st(s)
	}
	return s
}

// replace creates a step replacing every match of pattern by template.
// Templates use ${n} to refer to sub-matches.
func replace(pattern, template string) step {
	re := regexp.MustCompile(pattern)
	return func(s string) string {
		return re.ReplaceAllString(s, template)
	}
}

// replaceFunc creates a step replacing every match of pattern by the result
// of f. f receives the sub-matches, index 0 being the complete match.
func replaceFunc(pattern string, f func(groups []string) string) step {
	re := regexp.MustCompile(pattern)
	return func(s string) string {
		return re.ReplaceAllStringFunc(s, func(m string) string {
			return f(re.FindStringSubmatch(m))
		})
	}
}

// literally replaces a fixed string.
func literally(old, new string) step {
	return func(s string) string {
		return strings.ReplaceAll(s, old, new)
	}
}

// Function names known to both notations. In onyx they are written as
// macros (\sin), in infix as plain identifiers (sin).
var functionNames = []string{
	"sin", "cos", "tan", "asin", "acos", "atan", "arcsin", "arccos", "arctan",
	"log", "ln", "exp", "abs", "min", "max", "mod", "floor", "ceil", "round",
	"pow", "nthRoot", "det",
}
