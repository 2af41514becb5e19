package evaluator_test

import (
	"context"
	"testing"

	"github.com/npillmayer/onyx/engine/luaengine"
	"github.com/npillmayer/onyx/evaluator"
	"github.com/npillmayer/onyx/notebook"
	"github.com/npillmayer/onyx/variables"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// fakeEngine answers from a table and records its input.
type fakeEngine struct {
	answers map[string]string
	seen    []string
	latex   bool
}

func (fe *fakeEngine) Evaluate(ctx context.Context, infix string, latex bool) string {
	fe.seen = append(fe.seen, infix)
	fe.latex = latex
	if a, ok := fe.answers[infix]; ok {
		return a
	}
	return infix
}

func (fe *fakeEngine) last() string {
	if len(fe.seen) == 0 {
		return ""
	}
	return fe.seen[len(fe.seen)-1]
}

func TestCalculate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "onyx.evaluator")
	defer teardown()
	//
	fe := &fakeEngine{answers: map[string]string{
		"1+2":     "3",
		"255+1":   "256",
		"(1)/(2)": "1/2",
		"1+":      "1+\nStop: syntax error",
	}}
	ev := evaluator.New(fe, evaluator.Config{})
	for i, x := range []struct {
		content string
		infix   string
		outcome notebook.Outcome
	}{
		{"1+2", "1+2", notebook.Outcome{Result: "1+2", Answer: "3"}},
		{".m 1+2", "1+2", notebook.Outcome{Result: "1+2", Answer: "3"}},
		{"1+2=", "1+2", notebook.Outcome{Result: `1+2= \color{#c084fc}{3}`}},
		{"FF_{16}+1", "255+1", notebook.Outcome{Result: "FF_{16}+1", Answer: "256"}},
		{`\frac{1}{2}`, "(1)/(2)", notebook.Outcome{Result: `\frac{1}{2}`, Answer: `\dfrac{1}{2}`}},
		{"1+", "1+", notebook.Outcome{
			Result:    `1+ \quad \color{red}{\text{syntax error}}`,
			Error:     "1+\nStop: syntax error",
			ErrorHint: "syntax error",
		}},
	} {
		o := ev.Calculate(context.Background(), x.content, nil, 0)
		if fe.last() != x.infix {
			t.Errorf("test %d: expected engine to see %q, saw %q", i, x.infix, fe.last())
		}
		if o.Result != x.outcome.Result || o.Answer != x.outcome.Answer ||
			o.Error != x.outcome.Error || o.ErrorHint != x.outcome.ErrorHint {
			t.Errorf("test %d: expected outcome %+v, have %+v", i, x.outcome, o)
		}
	}
}

func TestCalculateDeclaration(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "onyx.evaluator")
	defer teardown()
	//
	fe := &fakeEngine{answers: map[string]string{"2+3": "5"}}
	ev := evaluator.New(fe, evaluator.Config{})
	o := ev.Calculate(context.Background(), "x = 2+3", nil, 0)
	if o.Declaration == nil || o.Declaration.Name != "x" || o.Declaration.Value != "5" {
		t.Fatalf("expected declaration x = 5, have %+v", o.Declaration)
	}
	if o.Answer != "5" || o.Result != "" {
		t.Errorf("unexpected outcome %+v", o)
	}
	ov := variables.NewOverlay()
	ov.Declare(0, *o.Declaration)
	ev.Calculate(context.Background(), "2x", ov, 1)
	if fe.last() != "2* 5" {
		t.Errorf("expected engine to see 2* 5, saw %q", fe.last())
	}
}

func TestCalculateOtherTags(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "onyx.evaluator")
	defer teardown()
	//
	fe := &fakeEngine{}
	ev := evaluator.New(fe, evaluator.Config{})
	o := ev.Calculate(context.Background(), ".r just some text", nil, 0)
	if o.Result != "just some text" {
		t.Errorf("unexpected raw outcome %+v", o)
	}
	o = ev.Calculate(context.Background(), ".p x^2,  sin(x)", nil, 0)
	if o.Result != "x^2, sin(x)" || len(o.Plot) != 1 || o.Plot[0] != "x^2" {
		t.Errorf("unexpected plot outcome %+v", o)
	}
	o = ev.Calculate(context.Background(), ".m   ", nil, 0)
	if o.Result != "" || o.Answer != "" {
		t.Errorf("expected empty outcome for blank line, have %+v", o)
	}
	if len(fe.seen) != 0 {
		t.Errorf("expected engine not to be called, saw %v", fe.seen)
	}
}

func TestLatexFlag(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "onyx.evaluator")
	defer teardown()
	//
	fe := &fakeEngine{}
	ev := evaluator.New(fe, evaluator.Config{Latex: true})
	ev.Calculate(context.Background(), "1", nil, 0)
	if !fe.latex {
		t.Errorf("expected engine to be asked for LaTeX output")
	}
	ev.SetLatex(false)
	ev.Calculate(context.Background(), "1", nil, 0)
	if fe.latex {
		t.Errorf("expected engine to be asked for plain output")
	}
}

func TestShadowing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "onyx.evaluator")
	defer teardown()
	//
	fe := &fakeEngine{answers: map[string]string{"5+1": "6", "7+1": "8"}}
	ev := evaluator.New(fe, evaluator.Config{})
	nb := notebook.New(0)
	for _, c := range []string{"x = 5", "x+1", "x = 7", "x+1"} {
		nb.Append(c)
	}
	if err := ev.EvaluateAll(context.Background(), nb); err != nil {
		t.Fatal(err)
	}
	for i, answer := range []string{"5", "6", "7", "8"} {
		l, _ := nb.Line(i)
		if l.Answer != answer {
			t.Errorf("line %d: expected answer %q, have %q", i, answer, l.Answer)
		}
	}
	// re-declaring x on line 0 changes line 1 after re-evaluation
	nb.SetContent(0, "x = 6")
	fe.answers["6+1"] = "7"
	if err := ev.EvaluateFrom(context.Background(), nb, 0); err != nil {
		t.Fatal(err)
	}
	if l, _ := nb.Line(1); l.Answer != "7" {
		t.Errorf("expected line 1 to use x = 6, answer is %q", l.Answer)
	}
	if l, _ := nb.Line(3); l.Answer != "8" {
		t.Errorf("expected line 3 to use x = 7, answer is %q", l.Answer)
	}
}

func TestWithLuaEngine(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "onyx.evaluator")
	defer teardown()
	//
	ev := evaluator.New(luaengine.New(), evaluator.Config{})
	nb := notebook.New(0)
	for _, c := range []string{"x = 2", "y = 3x", "y^2 =", `\sqrt{x+2}`, "11_{2} + 1"} {
		nb.Append(c)
	}
	if err := ev.EvaluateAll(context.Background(), nb); err != nil {
		t.Fatal(err)
	}
	lines := nb.Lines()
	if d := lines[1].Declaration; d == nil || d.Value != "6" {
		t.Errorf("expected y to be declared as 6, is %+v", d)
	}
	if lines[2].Result != `y^2 = \color{#c084fc}{36}` {
		t.Errorf("unexpected result of line 2: %q", lines[2].Result)
	}
	if lines[3].Answer != "2" {
		t.Errorf("expected sqrt(4) = 2, have %q", lines[3].Answer)
	}
	if lines[4].Answer != "4" {
		t.Errorf("expected 11 in base 2 plus 1 to be 4, have %q", lines[4].Answer)
	}
}
