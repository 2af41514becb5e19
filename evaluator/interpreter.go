package evaluator

import (
	"context"

	"github.com/npillmayer/onyx/notebook"
)

// EvaluateLine evaluates line index of nb and stores its outcome.
// Lines following index are not re-evaluated, even if they use a variable
// declared by index.
func (ev *Evaluator) EvaluateLine(ctx context.Context, nb *notebook.Store, index int) (notebook.Outcome, error) {
	line, err := nb.Line(index)
	if err != nil {
		return notebook.Outcome{}, err
	}
	o := ev.Calculate(ctx, line.Content, nb.Overlay(), index)
	return o, nb.SetOutcome(index, o)
}

// EvaluateFrom evaluates the lines of nb from line index on, in order.
// Every line sees the declarations of the lines preceding it. Evaluation
// stops early if ctx is cancelled.
func (ev *Evaluator) EvaluateFrom(ctx context.Context, nb *notebook.Store, index int) error {
	ov := nb.Overlay()
	lines := nb.Lines()
	if index < 0 || index > len(lines) {
		return notebook.ErrNoSuchLine
	}
	for pc := index; pc < len(lines); pc++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		ov.Retract(pc)
		o := ev.Calculate(ctx, lines[pc].Content, ov, pc)
		if o.Declaration != nil {
			ov.Declare(pc, *o.Declaration)
		}
		if err := nb.SetOutcome(pc, o); err != nil {
			return err
		}
	}
	tracer().Debugf("evaluated lines %d to %d", index, len(lines)-1)
	return nil
}

// EvaluateAll evaluates every line of nb, in order.
func (ev *Evaluator) EvaluateAll(ctx context.Context, nb *notebook.Store) error {
	return ev.EvaluateFrom(ctx, nb, 0)
}
