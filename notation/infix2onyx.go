package notation

import (
	"strings"
)

const operand = `([a-zA-Z0-9_]+|\([^()]+\))`

// toOnyx is the pipeline infix ⟹ onyx.
var toOnyx = pipeline{
	// reciprocal powers become roots
	replace(operand+`\^\(1/2\)`, `\sqrt{${1}}`),
	replace(operand+`\^\(1/([^()]+)\)`, `\sqrt[${2}]{${1}}`),
	replace(operand+`\^\(-1/2\)`, `\frac{1}{\sqrt{${1}}}`),
	replace(operand+`\^\(-1/([^()]+)\)`, `\frac{1}{\sqrt[${2}]{${1}}}`),
	// remaining powers: ^(x)  ⟹  ^{x}
	replace(`\^\(([^()]+)\)`, `^{${1}}`),
	// quotients
	replace(`\(\s*([^()]+?)\s*\)/\(\s*([^()]+?)\s*\)`, `\dfrac{${1}}{${2}}`),
	bareQuotients,
	replace(`sqrt\(([^()]+)\)`, `\sqrt{${1}}`),
	// operators
	literally(`*`, `\cdot `),
	literally(`+/-`, `\pm `),
	functionMacros,
	// [a,b;c,d] is a matrix, [a,b,c] a list
	replaceFunc(`\[([^\]]+)\]`, bracketLiteral),
	literally(`=`, `\to`),
	// no \cdot between adjacent fractions, roots and numbers
	replace(`(\\dfrac\{[^}]+\}\{[^}]+\}|\\sqrt(?:\[[^\]]*\])?\{[^}]+\})\\cdot\s*(\w|\\dfrac|\\sqrt)`, `${1}${2}`),
	replace(`(\w)\\cdot\s*(\\dfrac|\\sqrt)`, `${1}${2}`),
	strings.TrimSpace,
}

// ToOnyx translates plain infix notation, as produced by an algebra engine,
// to onyx notation.
func ToOnyx(infix string) string {
	onyx := toOnyx.apply(infix)
	tracer().Debugf("infix→onyx: %q ⟹ %q", infix, onyx)
	return onyx
}

// functionMacros prefixes every known function name with a backslash.
func functionMacros(s string) string {
	for _, f := range functionSteps {
		s = f(s)
	}
	return s
}

var functionSteps = func() []step {
	steps := make([]step, len(functionNames))
	for i, f := range functionNames {
		steps[i] = replace(`\b`+f+`\b`, `\`+f)
	}
	return steps
}()

func bracketLiteral(groups []string) string {
	content := groups[1]
	if strings.Contains(content, ";") {
		rows := strings.Split(content, ";")
		for i, r := range rows {
			rows[i] = strings.ReplaceAll(strings.TrimSpace(r), ",", " & ")
		}
		return `\begin{bmatrix} ` + strings.Join(rows, ` \\ `) + ` \end{bmatrix}`
	}
	return "[" + strings.ReplaceAll(strings.TrimSpace(content), ",", `, \space `) + "]"
}
