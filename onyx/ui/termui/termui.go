// Package termui provides objects and methods for interactive UI in terminal windows.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2024 Norbert Pillmayer <norbert@pillmayer.com>
//
package termui

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	prtxt "github.com/jedib0t/go-pretty/v6/text"
	"github.com/npillmayer/schuko/tracing"
)

// trace traces with key 'onyx.cli'.
func trace() tracing.Trace {
	return tracing.Select("onyx.cli")
}

// Formatter writes items of the REPL to an output. It returns false if it did
// not know how to format an item.
type Formatter interface {
	Format(interface{}, io.Writer) (bool, error)
}

// DefaultFormatter formats strings, errors, string lists and tables.
type DefaultFormatter struct{}

func (df DefaultFormatter) Format(item interface{}, w io.Writer) (bool, error) {
	var err error
	switch t := item.(type) {
	case string:
		_, err = fmt.Fprintf(w, "▶ %s\n", t)
	case error:
		_, err = fmt.Fprintf(w, "%s %s\n", prtxt.FgRed.Sprint("▶"), t.Error())
	case []string:
		if len(t) == 0 {
			_, err = io.WriteString(w, "▶ (none)\n")
			break
		}
		_, err = fmt.Fprintf(w, "▶ %s\n", strings.Join(t, "\n  "))
	case table.Writer:
		if t == nil {
			_, err = io.WriteString(w, "▶ (empty table)\n")
		} else {
			_, err = fmt.Fprintf(w, "%s\n", t.Render())
		}
	default:
		_, err = fmt.Fprintf(w, "▶ object of type %T\n", t)
	}
	return err == nil, err
}

// NewTable creates a table with a light style and a header row.
func NewTable(title string, header ...interface{}) table.Writer {
	tw := table.NewWriter()
	if title != "" {
		tw.SetTitle(title)
	}
	if len(header) > 0 {
		tw.AppendHeader(table.Row(header))
	}
	tw.SetStyle(table.StyleLight)
	return tw
}
