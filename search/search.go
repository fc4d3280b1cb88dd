// SPDX-License-Identifier: MIT

package search

import (
	"fmt"

	"github.com/katalvlaran/trackswitch/track"
)

// checkEvery is the node-event period of cancellation checks (power of two).
const checkEvery = 1024

// engine holds the state of one search. It is owned by a single Solve call;
// recursion mutates it in place instead of threading it through parameters.
type engine struct {
	nw   *track.Network
	n    int
	opts Options

	// Current route: path[0:depth].
	path []int

	// Incumbent.
	best     []int
	bestCost int

	stats Stats
	err   error // sticky cancellation error
}

// cancelled polls the context on the first and every checkEvery-th node event.
func (e *engine) cancelled() bool {
	if e.err != nil {
		return true
	}
	if (e.stats.Visited-1)&(checkEvery-1) != 0 {
		return false
	}
	select {
	case <-e.opts.Ctx.Done():
		e.err = e.opts.Ctx.Err()
		return true
	default:
		return false
	}
}

// record commits path[0:depth] as the new incumbent.
func (e *engine) record(depth, cost int) {
	e.best = append(e.best[:0], e.path[:depth]...)
	e.bestCost = cost
	e.stats.Improvements++
}

// visit explores every route leaving cur, having arrived from prev (0 for the
// start) with throws switches thrown so far.
func (e *engine) visit(cur, prev, throws, depth int) {
	e.stats.Visited++
	if e.cancelled() {
		return
	}

	// 1. A converging switch (or the exit) settles its throw on arrival.
	out := e.nw.OutDegree(cur)
	if out <= 1 && prev != 0 && e.nw.ArrivalThrow(cur, prev) {
		throws++
	}

	// 2. Bound: this route can no longer beat the incumbent.
	if throws >= e.bestCost && !e.opts.NoPrune {
		e.stats.Pruned++
		return
	}

	// A route longer than N switches revisits one.
	if depth == e.n {
		e.err = fmt.Errorf("%w: route exceeds %d switches", track.ErrCycleDetected, e.n)
		return
	}
	e.path[depth] = cur
	depth++

	// 3. Exit reached.
	if out == 0 {
		if throws < e.bestCost {
			e.record(depth, throws)
		}
		return
	}

	// 4. Branch on forward tracks in ascending order.
	var (
		to int
		c  track.Connection
	)
	for to = 1; to <= e.n; to++ {
		c = e.nw.At(cur, to)
		switch {
		case c == track.Manual && out > 1:
			e.visit(to, cur, throws+1, depth)
		case c == track.Manual, c == track.DefaultManual:
			e.visit(to, cur, throws, depth)
		default:
			continue
		}
		if e.err != nil {
			return
		}
	}
}

// Solve returns a route from start to an exit of nw with the minimum number
// of thrown switches. Pass nw.Entry() as start for a contest system.
//
// Parameters:
//   - nw:    switch network; should be acyclic (track.Network.Validate).
//   - start: switch the cart is inserted at, in [1, N].
//   - opts:  WithContext, WithoutPruning.
//
// Returns:
//   - Result with the first minimum-throw route in ascending branch order.
//
// Errors:
//   - ErrNilNetwork, ErrStartOutOfRange for malformed arguments.
//   - track.ErrCycleDetected if the search walks a cycle.
//   - The context error if Ctx is cancelled.
//   - ErrNoExit if no exit is reachable from start.
//
// Complexity: O(paths) worst case; the incumbent bound cuts every branch that
// already costs as much as the best route found.
func Solve(nw *track.Network, start int, opts ...Option) (Result, error) {
	// 1. Validate input.
	if nw == nil {
		return Result{}, ErrNilNetwork
	}
	n := nw.Size()
	if start < 1 || start > n {
		return Result{}, fmt.Errorf("%w: start=%d n=%d", ErrStartOutOfRange, start, n)
	}

	// 2. Apply options.
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Engine state; N+1 exceeds any feasible throw count.
	e := &engine{
		nw:       nw,
		n:        n,
		opts:     o,
		path:     make([]int, n),
		best:     make([]int, 0, n),
		bestCost: n + 1,
	}

	// 4. Search.
	e.visit(start, 0, 0, 0)
	if e.err != nil {
		return Result{Stats: e.stats}, fmt.Errorf("search: aborted after %d nodes: %w", e.stats.Visited, e.err)
	}
	if len(e.best) == 0 {
		return Result{Stats: e.stats}, fmt.Errorf("%w from switch %d", ErrNoExit, start)
	}

	return Result{Path: e.best, Throws: e.bestCost, Stats: e.stats}, nil
}
