package notation

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestToInfix(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "onyx.notation")
	defer teardown()
	//
	for i, x := range []struct {
		onyx, infix string
	}{
		{onyx: `\dfrac{1}{2}`, infix: `(1)/(2)`},
		{onyx: `\frac{a}{b} + \tfrac{c}{d}`, infix: `(a)/(b) + (c)/(d)`},
		{onyx: `\sqrt[3]{x}`, infix: `(x)^(1/(3))`},
		{onyx: `\sqrt{2}`, infix: `sqrt(2)`},
		{onyx: `2 \times 3 \cdot 4 \div 5`, infix: `2 * 3 * 4 / 5`},
		{onyx: `\pm 3`, infix: `+/- 3`},
		{onyx: `\sin{x}`, infix: `sin(x)`},
		{onyx: `\begin{bmatrix} 1 & 2 \\ 3 & 4 \end{bmatrix}`, infix: `[ 1 , 2 ; 3 , 4 ]`},
		{onyx: `\left( x \right)`, infix: `( x )`},
		{onyx: `x^{2}`, infix: `x^(2)`},
		{onyx: `a \, b \quad c`, infix: `a b c`},
		{onyx: `\alpha + 1`, infix: `+ 1`},
	} {
		if infix := ToInfix(x.onyx); infix != x.infix {
			t.Errorf("test %d: expected %q to translate to %q, is %q", i, x.onyx, x.infix, infix)
		}
	}
}

func TestToOnyx(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "onyx.notation")
	defer teardown()
	//
	for i, x := range []struct {
		infix, onyx string
	}{
		{infix: `(1)/(2)`, onyx: `\dfrac{1}{2}`},
		{infix: `1/2`, onyx: `\dfrac{1}{2}`},
		{infix: `(x+1)/(x-1)`, onyx: `\dfrac{x+1}{x-1}`},
		{infix: `x^(1/2)`, onyx: `\sqrt{x}`},
		{infix: `x^(1/3)`, onyx: `\sqrt[3]{x}`},
		{infix: `x^(-1/2)`, onyx: `\frac{1}{\sqrt{x}}`},
		{infix: `x^(2)`, onyx: `x^{2}`},
		{infix: `x^(a/b)`, onyx: `x^{a/b}`},
		{infix: `sqrt(2)`, onyx: `\sqrt{2}`},
		{infix: `2*x`, onyx: `2\cdot x`},
		{infix: `2*(1)/(3)`, onyx: `2\dfrac{1}{3}`},
		{infix: `sin(x)`, onyx: `\sin(x)`},
		{infix: `asin(x)`, onyx: `\asin(x)`},
		{infix: `[1,2;3,4]`, onyx: `\begin{bmatrix} 1 & 2 \\ 3 & 4 \end{bmatrix}`},
		{infix: `[1,2,3]`, onyx: `[1, \space 2, \space 3]`},
		{infix: `x=3`, onyx: `x\to3`},
	} {
		if onyx := ToOnyx(x.infix); onyx != x.onyx {
			t.Errorf("test %d: expected %q to translate to %q, is %q", i, x.infix, x.onyx, onyx)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "onyx.notation")
	defer teardown()
	//
	canonical := func(s string) string {
		return strings.Join(strings.Fields(s), "")
	}
	for i, x := range []struct {
		infix, canonical string
	}{
		{infix: `(1)/(2)`, canonical: `(1)/(2)`},
		{infix: `1/2`, canonical: `(1)/(2)`},
		{infix: `sqrt(2)`, canonical: `sqrt(2)`},
		{infix: `x^(2)`, canonical: `x^(2)`},
		{infix: `x^(1/2)`, canonical: `sqrt(x)`},
		{infix: `x^(1/3)`, canonical: `(x)^(1/(3))`},
		{infix: `sin(x)`, canonical: `sin(x)`},
		{infix: `2*x`, canonical: `2*x`},
		{infix: `(x+1)/(x-1)`, canonical: `(x+1)/(x-1)`},
		{infix: `[1,2;3,4]`, canonical: `[1,2;3,4]`},
		{infix: `[1,2,3]`, canonical: `[1,2,3]`},
	} {
		back := ToInfix(ToOnyx(x.infix))
		if canonical(back) != x.canonical {
			t.Errorf("test %d: %q does not survive a round trip, is %q", i, x.infix, back)
		}
	}
}

func TestBareQuotientsTokenize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "onyx.notation")
	defer teardown()
	//
	input := `\dfrac{a}{b} + c/d - {e/f}`
	toks, err := tokenize(input)
	if err != nil {
		t.Fatal(err)
	}
	var sb strings.Builder
	for _, tok := range toks {
		sb.Write(tok.Lexeme)
	}
	if sb.String() != input {
		t.Errorf("expected lexemes to concatenate to input, have %q", sb.String())
	}
	if out := bareQuotients(input); out != `\dfrac{a}{b} + \dfrac{c}{d} - {e/f}` {
		t.Errorf("unexpected quotient rewrite: %q", out)
	}
}
