package cli

import (
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/npillmayer/onyx/notebook"
	"github.com/npillmayer/onyx/onyx/ui/termui"
	"github.com/npillmayer/onyx/plot"
	"github.com/npillmayer/onyx/variables"
)

// notebookTable renders the lines of a notebook with their outcomes.
// Empty lines are skipped.
func notebookTable(title string, lines []notebook.Line) table.Writer {
	tw := termui.NewTable(title, "#", "line", "answer", "error")
	for i, l := range lines {
		if l.Content == "" {
			continue
		}
		answer := l.Answer
		if answer == "" && l.Result != l.Content {
			answer = l.Result
		}
		tw.AppendRow(table.Row{i, l.Content, answer, l.ErrorHint})
	}
	return tw
}

// variablesTable lists the variables visible after the last line.
func variablesTable(ov *variables.Overlay, end int) table.Writer {
	tw := termui.NewTable("Variables", "name", "value")
	b := ov.Bindings(end)
	names := make([]string, 0, len(b))
	for n := range b {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		tw.AppendRow(table.Row{n, b[n]})
	}
	return tw
}

// sampleTable tabulates the functions of a plot line.
func sampleTable(l plot.Line, from, to float64, n int) table.Writer {
	header := []interface{}{"x"}
	for _, f := range l.Functions {
		header = append(header, f.Source)
	}
	tw := termui.NewTable("", header...)
	for _, s := range l.Table(from, to, n) {
		row := table.Row{s.X}
		for _, y := range s.Y {
			row = append(row, y)
		}
		tw.AppendRow(row)
	}
	return tw
}
