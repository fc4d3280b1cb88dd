// SPDX-License-Identifier: MIT

// Command trackswitch solves rail-network switch puzzles: for each track
// system it prints a route from the entry switch to an exit that throws the
// fewest switches, marking the thrown ones in parentheses.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app carries state shared by subcommands after PersistentPreRunE.
type app struct {
	configPath string
	verbose    bool
	logger     *zap.Logger
}
