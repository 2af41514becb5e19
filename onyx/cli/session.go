package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/npillmayer/onyx"
	"github.com/npillmayer/onyx/evaluator"
	"github.com/npillmayer/onyx/literals"
	"github.com/npillmayer/onyx/notation"
	"github.com/npillmayer/onyx/notebook"
	"github.com/npillmayer/onyx/notebook/nbstore"
	"github.com/npillmayer/onyx/onyx/ui/termui"
	"github.com/npillmayer/onyx/plot"
	"github.com/npillmayer/onyx/radix"
)

// errUsage is returned for commands with missing or malformed arguments.
var errUsage = errors.New("usage")

// session is an interactive notebook session in the terminal.
type session struct {
	*termui.BaseREPL
	*interpreter
}

func newSession(ev *evaluator.Evaluator, paths AppPaths) (*session, error) {
	repl, err := termui.NewBaseREPL("onyx", onyx.Version, interpreterCommands...)
	if err != nil {
		return nil, err
	}
	stdout, _ := repl.Outputs()
	s := &session{
		BaseREPL:    repl,
		interpreter: newInterpreter(onyx.SignalContext, ev, paths, stdout),
	}
	s.Interpreter = s
	s.Helper = func(w io.Writer) {
		io.WriteString(w, interpreterHelp)
	}
	s.updatePrompt()
	return s, nil
}

// InterpretCommand is called by the REPL for every line not handled by the
// REPL itself.
func (s *session) InterpretCommand(command string) {
	command = strings.Trim(command, "\x00")
	if err := s.execute(command); err != nil {
		_, stderr := s.Outputs()
		fmt.Fprintf(stderr, "interpreter error: %s\n", err.Error())
	}
	s.updatePrompt()
}

func (s *session) updatePrompt() {
	s.SetPrompt(fmt.Sprintf("onyx[%d]> ", s.nb.Len()))
}

// --- Interpreter -----------------------------------------------------------

var interpreterCommands = []string{
	"list", "vars", "edit", "insert", "delete", "clear", "save", "load",
	"latex", "plot", "infix", "onyx", "convert",
}

const interpreterHelp = `
Every other line is appended to the notebook and evaluated. Lines may start
with a format tag: .m (math, default), .p (plot) or .r (raw text).

  list                  : list the notebook
  vars                  : list the variables declared
  edit <n> <text>       : replace line n and re-evaluate
  insert <n> [<text>]   : insert a line before line n
  delete <n>            : delete line n
  clear                 : start a new notebook
  save <name>           : save the notebook
  load <name>           : load and evaluate a notebook
  latex [on|off]        : display or set LaTeX output of the engine
  plot <n> [<from> <to> [<steps>]] : tabulate the functions of plot line n
  infix <onyx>          : transcribe onyx to infix notation
  onyx <infix>          : transcribe infix to onyx notation
  convert <text>        : convert based-number literals

`

// interpreter executes the commands of a notebook session.
type interpreter struct {
	ctx   context.Context
	nb    *notebook.Store
	ev    *evaluator.Evaluator
	paths AppPaths
	out   io.Writer
	fmtr  Formatter
}

func newInterpreter(ctx context.Context, ev *evaluator.Evaluator, paths AppPaths, out io.Writer) *interpreter {
	if ctx == nil {
		ctx = context.Background()
	}
	return &interpreter{
		ctx:   ctx,
		nb:    notebook.New(0),
		ev:    ev,
		paths: paths,
		out:   out,
	}
}

// execute executes a command or, if line does not start with a command,
// appends line to the notebook.
func (intp *interpreter) execute(line string) error {
	cmd, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
	rest = strings.TrimSpace(rest)
	switch cmd {
	case "":
		return nil
	case "list":
		return intp.show(notebookTable("Notebook", intp.nb.Lines()))
	case "vars":
		return intp.show(variablesTable(intp.nb.Overlay(), intp.nb.Len()))
	case "edit":
		n, text, err := lineArg(rest)
		if err != nil {
			return err
		}
		if err := intp.nb.SetContent(n, text); err != nil {
			return err
		}
		return intp.reevaluate(n, true)
	case "insert":
		n, text, err := lineArg(rest)
		if err != nil {
			return err
		}
		if err := intp.nb.Insert(n); err != nil {
			return err
		}
		if text != "" {
			intp.nb.SetContent(n, text)
		}
		return intp.reevaluate(n, text != "")
	case "delete":
		n, _, err := lineArg(rest)
		if err != nil {
			return err
		}
		if err := intp.nb.Remove(n); err != nil {
			return err
		}
		return intp.reevaluate(n, false)
	case "clear":
		intp.nb = notebook.New(0)
		return nil
	case "save":
		return intp.save(rest)
	case "load":
		return intp.load(rest)
	case "latex":
		return intp.latex(rest)
	case "plot":
		return intp.plot(rest)
	case "infix":
		return intp.show(notation.ToInfix(rest))
	case "onyx":
		return intp.show(notation.ToOnyx(rest))
	case "convert":
		sc := literals.NewScanner(radix.NewConverter(intp.ev.Config().Radix))
		return intp.show(sc.Normalize(rest))
	}
	n := intp.nb.Append(line)
	return intp.reevaluate(n, true)
}

func (intp *interpreter) show(item interface{}) error {
	_, err := intp.fmtr.Format(item, intp.out)
	return err
}

// reevaluate evaluates the notebook from line n on. If showLine is set,
// the outcome of line n is displayed.
func (intp *interpreter) reevaluate(n int, showLine bool) error {
	if n >= intp.nb.Len() {
		return nil
	}
	if err := intp.ev.EvaluateFrom(intp.ctx, intp.nb, n); err != nil {
		return err
	}
	if !showLine {
		return nil
	}
	l, err := intp.nb.Line(n)
	if err != nil {
		return err
	}
	return intp.show(numbered{index: n, line: l})
}

func (intp *interpreter) save(name string) error {
	if name == "" {
		return fmt.Errorf("%w: save <name>", errUsage)
	}
	path := NotebookPath(intp.paths, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	if err := nbstore.Save(intp.ctx, path, intp.nb); err != nil {
		return err
	}
	return intp.show("saved " + path)
}

func (intp *interpreter) load(name string) error {
	if name == "" {
		return fmt.Errorf("%w: load <name>", errUsage)
	}
	path := NotebookPath(intp.paths, name)
	nb, err := nbstore.Load(intp.ctx, path)
	if err != nil {
		return err
	}
	if err := intp.ev.EvaluateAll(intp.ctx, nb); err != nil {
		return err
	}
	intp.nb = nb
	return intp.show(notebookTable(filepath.Base(path), nb.Lines()))
}

func (intp *interpreter) latex(arg string) error {
	switch arg {
	case "":
	case "on":
		intp.ev.SetLatex(true)
	case "off":
		intp.ev.SetLatex(false)
	default:
		return fmt.Errorf("%w: latex [on|off]", errUsage)
	}
	if arg != "" && intp.nb.Len() > 0 {
		if err := intp.ev.EvaluateAll(intp.ctx, intp.nb); err != nil {
			return err
		}
	}
	return intp.show(fmt.Sprintf("LaTeX output is %v", intp.ev.Config().Latex))
}

func (intp *interpreter) plot(args string) error {
	fields := strings.Fields(args)
	if len(fields) == 0 {
		return fmt.Errorf("%w: plot <n> [<from> <to> [<steps>]]", errUsage)
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return fmt.Errorf("%w: line number expected, have %q", errUsage, fields[0])
	}
	l, err := intp.nb.Line(n)
	if err != nil {
		return err
	}
	tag, text := notebook.SplitTag(l.Content)
	if tag != notebook.Plot {
		return fmt.Errorf("line %d is not a plot line", n)
	}
	from, to, steps := -5.0, 5.0, 10
	if len(fields) >= 3 {
		if from, err = strconv.ParseFloat(fields[1], 64); err != nil {
			return fmt.Errorf("%w: %v", errUsage, err)
		}
		if to, err = strconv.ParseFloat(fields[2], 64); err != nil {
			return fmt.Errorf("%w: %v", errUsage, err)
		}
	}
	if len(fields) >= 4 {
		if steps, err = strconv.Atoi(fields[3]); err != nil {
			return fmt.Errorf("%w: %v", errUsage, err)
		}
	}
	pl := plot.Parse(text)
	if len(pl.Functions) == 0 {
		return fmt.Errorf("line %d has no functions to plot", n)
	}
	return intp.show(sampleTable(pl, from, to, steps))
}

// lineArg splits "<n> <text>" into a line number and text.
func lineArg(args string) (int, string, error) {
	num, text, _ := strings.Cut(args, " ")
	n, err := strconv.Atoi(num)
	if err != nil {
		return 0, "", fmt.Errorf("%w: line number expected, have %q", errUsage, num)
	}
	return n, strings.TrimSpace(text), nil
}
