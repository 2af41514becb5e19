package cli

import (
	"fmt"
	"io"
	"strings"

	prtxt "github.com/jedib0t/go-pretty/v6/text"
	"github.com/npillmayer/onyx/notebook"
	"github.com/npillmayer/onyx/onyx/ui/termui"
)

// Formatter formats notebook items for the terminal. Anything else is
// diverted to the default formatter.
type Formatter struct {
	termui.DefaultFormatter
}

// numbered is a notebook line together with its index.
type numbered struct {
	index int
	line  notebook.Line
}

func (f Formatter) Format(item interface{}, w io.Writer) (bool, error) {
	tracer().Debugf("Format called for item %T", item)
	switch t := item.(type) {
	case numbered:
		_, err := io.WriteString(w, formatOutcome(t.index, t.line))
		return err == nil, err
	}
	return f.DefaultFormatter.Format(item, w)
}

// formatOutcome renders the outcome of a line as a single line of text.
func formatOutcome(index int, l notebook.Line) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%d] ", index)
	switch {
	case l.Failed():
		fmt.Fprintf(&b, "%s %s", prtxt.FgRed.Sprint("▶"), l.ErrorHint)
	case l.Declaration != nil:
		fmt.Fprintf(&b, "▶ %s := %s", l.Declaration.Name, l.Declaration.Value)
	case len(l.Plot) > 0:
		fmt.Fprintf(&b, "▶ plot %s", strings.Join(l.Plot, "; "))
	case l.Answer != "":
		fmt.Fprintf(&b, "▶ %s", prtxt.FgMagenta.Sprint(l.Answer))
	default:
		fmt.Fprintf(&b, "▶ %s", l.Result)
	}
	b.WriteByte('\n')
	return b.String()
}
