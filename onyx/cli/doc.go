// Package cli implements the onyx command line interface.
//
// Called without a sub-command, onyx starts an interactive notebook session
// in the terminal. Every line entered which is not a command is appended to
// the notebook and evaluated. Sub-commands evaluate notebook files in batch
// mode or transcribe single expressions.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2024 Norbert Pillmayer <norbert@pillmayer.com>
//
package cli

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'onyx.cli'
func tracer() tracing.Trace {
	return tracing.Select("onyx.cli")
}
