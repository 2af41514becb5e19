/*
Package onyx holds application-wide state of the onyx notebook tool.

Onyx evaluates notebooks of math lines written in a LaTeX-like notation
("onyx"). Lines are transcribed to infix notation, evaluated by an algebra
engine, and the answers are transcribed back. Numbers may be written in
any base, and variables declared on one line are visible in the lines
following it.

The work is done by packages

   radix       conversion of numbers between bases and binary encodings
   literals    scanning and converting based-number literals in text
   notation    transcription between onyx and infix notation
   variables   declarations and their substitution
   notebook    the lines of a notebook
   evaluator   evaluation of notebook lines

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package onyx

import (
	"context"
	"io"
	"os"

	"github.com/knadh/koanf"
	"github.com/npillmayer/schuko/tracing"
)

// Version is the version of the onyx tool.
const Version = "0.1 experimental"

// tracer traces with key 'onyx'.
func tracer() tracing.Trace {
	return tracing.Select("onyx")
}

// Configuration holds global configuration values. We use koanf.
var Configuration *koanf.Koanf

// Tracefile is the file we write our log output, if not nil.
var Tracefile io.WriteCloser

// SignalContext is a global context for terminating the application by an interrupt
// signal.
var SignalContext context.Context = context.Background()

// Exit exits the application. It gracefully shuts down all resources.
func Exit(errcode int) {
	tracer().Infof("exiting with code %d", errcode)
	if Tracefile != nil {
		Tracefile.Close()
	}
	os.Exit(errcode)
}
