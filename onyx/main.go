// Onyx is a notebook for math in LaTeX-like notation.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2024 Norbert Pillmayer <norbert@pillmayer.com>
//
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/npillmayer/onyx"
	"github.com/npillmayer/onyx/onyx/cli"
)

func main() {
	var stop context.CancelFunc
	onyx.SignalContext, stop = signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	cli.Execute()
}
