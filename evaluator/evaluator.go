package evaluator

import (
	"context"
	"fmt"
	"strings"

	"github.com/npillmayer/onyx/literals"
	"github.com/npillmayer/onyx/notation"
	"github.com/npillmayer/onyx/notebook"
	"github.com/npillmayer/onyx/plot"
	"github.com/npillmayer/onyx/radix"
	"github.com/npillmayer/onyx/variables"
)

// Engine is an algebra engine evaluating infix expressions.
//
// Evaluate returns the engine's answer in infix notation, or a diagnostic
// of more than one line. If latex is set, the engine is asked to answer in
// LaTeX notation.
type Engine interface {
	Evaluate(ctx context.Context, infix string, latex bool) string
}

// Config holds the settings for evaluation.
type Config struct {
	Latex bool          // ask the engine for LaTeX output
	Radix radix.Options // conversion of based-number literals
}

// Evaluator evaluates notebook lines with the help of an algebra engine.
type Evaluator struct {
	engine  Engine
	conf    Config
	scanner *literals.Scanner
}

// New creates an evaluator calling engine.
func New(engine Engine, conf Config) *Evaluator {
	conv := radix.NewConverter(conf.Radix)
	conf.Radix = conv.Options()
	return &Evaluator{
		engine:  engine,
		conf:    conf,
		scanner: literals.NewScanner(conv),
	}
}

// Config returns the configuration of ev.
func (ev *Evaluator) Config() Config {
	return ev.conf
}

// SetLatex switches LaTeX output of the engine on or off.
func (ev *Evaluator) SetLatex(on bool) {
	ev.conf.Latex = on
}

// Colors of answers and error hints in results.
const (
	answerColor = "#c084fc"
	errorColor  = "red"
)

// Calculate evaluates content, the content of line index of a notebook.
// Variables are taken from declarations in ov preceding index.
func (ev *Evaluator) Calculate(ctx context.Context, content string, ov *variables.Overlay, index int) notebook.Outcome {
	tag, text := notebook.SplitTag(content)
	switch tag {
	case notebook.Raw:
		return notebook.Outcome{Result: text}
	case notebook.Plot:
		pl := plot.Parse(text)
		return notebook.Outcome{Result: pl.Result(), Plot: pl.Sources()}
	}
	if strings.TrimSpace(text) == "" {
		return notebook.Outcome{}
	}
	return ev.calculate(ctx, text, ov, index)
}

func (ev *Evaluator) calculate(ctx context.Context, orig string, ov *variables.Overlay, index int) notebook.Outcome {
	text := ev.scanner.Normalize(orig)
	decl, isDecl := variables.ParseDeclaration(text)
	if isDecl {
		text = decl.Value
	}
	if ov != nil {
		text = ov.Substitute(index, text)
	}
	infix := notation.ToInfix(text)
	inline := false
	if strings.HasSuffix(infix, "=") {
		inline = true
		infix = strings.TrimSpace(strings.TrimSuffix(infix, "="))
	}
	tracer().Debugf("line %d: evaluating %q", index, infix)
	answer := ev.engine.Evaluate(ctx, infix, ev.conf.Latex)
	if strings.Contains(answer, "\n") {
		hint := errorHint(answer)
		tracer().Infof("line %d: %s", index, hint)
		return notebook.Outcome{
			Result:    fmt.Sprintf(`%s \quad \color{%s}{\text{%s}}`, orig, errorColor, hint),
			Error:     answer,
			ErrorHint: hint,
		}
	}
	onyx := notation.ToOnyx(answer)
	switch {
	case isDecl:
		return notebook.Outcome{
			Answer:      onyx,
			Declaration: &variables.Declaration{Name: decl.Name, Value: onyx},
		}
	case inline:
		return notebook.Outcome{
			Result: fmt.Sprintf(`%s \color{%s}{%s}`, orig, answerColor, onyx),
		}
	}
	return notebook.Outcome{Result: orig, Answer: onyx}
}

// errorHint extracts the hint from the second line of an engine diagnostic.
func errorHint(diagnostic string) string {
	lines := strings.SplitN(diagnostic, "\n", 3)
	if len(lines) < 2 {
		return ""
	}
	return strings.TrimSpace(strings.Replace(lines[1], "Stop:", "", 1))
}
