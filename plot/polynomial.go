package plot

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// polyGrammar is the participle grammar for polynomials. Terms are
// accepted loosely by the grammar and checked by validate.
//
//nolint:govet // participle grammar tags are not standard struct tags
type polyGrammar struct {
	Sign  string       `@("+" | "-")?`
	First *termGrammar `@@`
	Rest  []*tailPart  `@@*`
}

//nolint:govet // participle grammar tags are not standard struct tags
type tailPart struct {
	Op   string       `@("+" | "-")`
	Term *termGrammar `@@`
}

//nolint:govet // participle grammar tags are not standard struct tags
type termGrammar struct {
	Coeff    *string `@Number?`
	Star     bool    `@"*"?`
	Var      *string `@Var?`
	Exponent *string `( "^" @Number )?`
}

var polyLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Number", Pattern: `\d+(\.\d+)?`},
	{Name: "Var", Pattern: `[a-zA-Z]`},
	{Name: "Op", Pattern: `[-+*^]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

// polyParser is the participle parser for polynomials.
var polyParser = participle.MustBuild[polyGrammar](
	participle.Lexer(polyLexer),
	participle.Elide("Whitespace"),
)

// ErrNotPolynomial is returned for input which is not a simple polynomial.
var ErrNotPolynomial = errors.New("not a polynomial")

// Term is a term c·v^n of a polynomial. Constant terms have an empty
// variable.
type Term struct {
	Coeff    float64
	Var      string
	Exponent int
}

// Polynomial is a sum of terms.
type Polynomial struct {
	Source string // as written
	Terms  []Term
}

// ParsePolynomial parses a polynomial like "-2x^3 + 4.5*x - 1".
func ParsePolynomial(s string) (Polynomial, error) {
	s = strings.TrimSpace(s)
	g, err := polyParser.ParseString("", s)
	if err != nil {
		return Polynomial{}, fmt.Errorf("%w: %q: %v", ErrNotPolynomial, s, err)
	}
	p := Polynomial{Source: s}
	t, err := g.First.term(g.Sign == "-", false)
	if err != nil {
		return Polynomial{}, fmt.Errorf("%w: %q: %v", ErrNotPolynomial, s, err)
	}
	p.Terms = append(p.Terms, t)
	for _, tail := range g.Rest {
		t, err := tail.Term.term(tail.Op == "-", true)
		if err != nil {
			return Polynomial{}, fmt.Errorf("%w: %q: %v", ErrNotPolynomial, s, err)
		}
		p.Terms = append(p.Terms, t)
	}
	return p, nil
}

// term checks a parsed term and converts it. The first term of a
// polynomial has to carry a variable.
func (g *termGrammar) term(negative, constOK bool) (Term, error) {
	t := Term{Coeff: 1}
	if g.Coeff != nil {
		c, err := strconv.ParseFloat(*g.Coeff, 64)
		if err != nil {
			return t, err
		}
		t.Coeff = c
	}
	if negative {
		t.Coeff = -t.Coeff
	}
	if g.Var == nil {
		switch {
		case !constOK:
			return t, errors.New("leading term without variable")
		case g.Coeff == nil:
			return t, errors.New("empty term")
		case g.Star || g.Exponent != nil:
			return t, errors.New("constant with operator")
		}
		return t, nil
	}
	if g.Star && g.Coeff == nil {
		return t, errors.New("multiplication without factor")
	}
	t.Var = *g.Var
	t.Exponent = 1
	if g.Exponent != nil {
		n, err := strconv.Atoi(*g.Exponent)
		if err != nil {
			return t, fmt.Errorf("exponent %q", *g.Exponent)
		}
		t.Exponent = n
	}
	return t, nil
}

// Eval evaluates p at x. Every variable of p is bound to x.
func (p Polynomial) Eval(x float64) float64 {
	var y float64
	for _, t := range p.Terms {
		if t.Var == "" {
			y += t.Coeff
			continue
		}
		y += t.Coeff * math.Pow(x, float64(t.Exponent))
	}
	return y
}

func (p Polynomial) String() string {
	return p.Source
}
