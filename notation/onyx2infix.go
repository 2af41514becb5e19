package notation

import (
	"strings"
)

// toInfix is the pipeline onyx ⟹ infix.
var toInfix = pipeline{
	// \frac{a}{b}, \dfrac{a}{b}, \tfrac{a}{b}  ⟹  (a)/(b)
	replace(`\\[dt]?frac\s*\{([^{}]+)\}\s*\{([^{}]+)\}`, `(${1})/(${2})`),
	// \sqrt[n]{x}  ⟹  (x)^(1/(n))
	replace(`\\sqrt\s*\[([^{}\]]+)\]\s*\{([^{}]+)\}`, `(${2})^(1/(${1}))`),
	replace(`\\sqrt\s*\{([^{}]+)\}`, `sqrt(${1})`),
	// operator glyphs
	replace(`\\times\b`, `*`),
	replace(`\\cdot\b`, `*`),
	replace(`\\div\b`, `/`),
	replace(`\\pm\b`, `+/-`),
	// function macros
	replace(`\\(`+strings.Join(append(functionNames, "sqrt"), "|")+`)\b`, `${1}`),
	// matrices: \begin{bmatrix} a & b \\ c & d \end{bmatrix}  ⟹  [a,b;c,d]
	replace(`\\begin\{(?:bmatrix|pmatrix|vmatrix)\}`, `[`),
	replace(`\\end\{(?:bmatrix|pmatrix|vmatrix)\}`, `]`),
	literally(`&`, `,`),
	literally(`\\`, `;`),
	// \left( … \right)
	literally(`\left`, ``),
	literally(`\right`, ``),
	// superscript braces first, then every other grouping brace
	replace(`\^\s*\{([^{}]+)\}`, `^(${1})`),
	literally(`{`, `(`),
	literally(`}`, `)`),
	// spacing macros, then any unknown macro
	replace(`\\(?:,|;|!|quad|qquad|enspace|thinspace|space)`, ``),
	replace(`\\[a-zA-Z]+`, ``),
	replace(`\s+`, ` `),
	strings.TrimSpace,
}

// ToInfix translates onyx notation to plain infix notation.
func ToInfix(onyx string) string {
	infix := toInfix.apply(onyx)
	tracer().Debugf("onyx→infix: %q ⟹ %q", onyx, infix)
	return infix
}
