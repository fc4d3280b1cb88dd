// SPDX-License-Identifier: MIT

package search

import (
	"context"
	"errors"
)

var (
	// ErrNilNetwork is returned when Solve receives a nil network.
	ErrNilNetwork = errors.New("search: network is nil")

	// ErrStartOutOfRange indicates a start switch outside [1, N].
	ErrStartOutOfRange = errors.New("search: start switch out of range")

	// ErrNoExit indicates that no exit switch is reachable from start.
	ErrNoExit = errors.New("search: no reachable exit")
)

// Option configures Solve.
type Option func(*Options)

// Options holds the search configuration.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	// It is polled every checkEvery node events.
	Ctx context.Context

	// NoPrune disables the incumbent bound. The answer is unchanged; only
	// useful for tests and benchmarks.
	NoPrune bool
}

// DefaultOptions returns Options with a background context and pruning on.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the cancellation context. A nil ctx has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithoutPruning disables the branch-and-bound cut.
func WithoutPruning() Option {
	return func(o *Options) {
		o.NoPrune = true
	}
}

// Stats reports how much work a search did.
type Stats struct {
	// Visited counts calls into the search, one per (switch, route) pair.
	Visited int

	// Pruned counts branches abandoned because they could not beat the incumbent.
	Pruned int

	// Improvements counts how many times a strictly cheaper route was recorded.
	Improvements int
}

// Result is the outcome of Solve.
type Result struct {
	// Path lists the switches from start to the exit, both included.
	Path []int

	// Throws is the number of switches thrown along Path.
	Throws int

	// Stats holds search diagnostics.
	Stats Stats
}
