// SPDX-License-Identifier: MIT

package track

import "fmt"

// Visitation states for the cycle check.
const (
	white = iota // not visited yet
	gray         // on the current DFS stack
	black        // fully explored
)

// Validate checks the structural guarantees the search relies on: forward
// tracks are acyclic and exactly one switch has no incoming track.
// It returns ErrCycleDetected or ErrMultipleEntries wrapped with the
// offending switches.
//
// Complexity: O(N²) over the dense rows.
func (nw *Network) Validate() error {
	// 1. Acyclicity by three-colour DFS from every unvisited switch.
	state := make([]int, nw.n+1)
	var sw int
	for sw = 1; sw <= nw.n; sw++ {
		if state[sw] == white {
			if err := nw.visit(sw, state); err != nil {
				return err
			}
		}
	}

	// 2. Single entry.
	if entries := nw.Entries(); len(entries) > 1 {
		return fmt.Errorf("%w: %v", ErrMultipleEntries, entries)
	}

	return nil
}

// visit marks sw gray, descends into its forward targets and reports a back
// edge to a gray switch as a cycle.
func (nw *Network) visit(sw int, state []int) error {
	state[sw] = gray
	var to int
	for to = 1; to <= nw.n; to++ {
		if !nw.cells[nw.idx(sw, to)].IsTraversable() {
			continue
		}
		switch state[to] {
		case gray:
			return fmt.Errorf("%w: back edge %d->%d", ErrCycleDetected, sw, to)
		case white:
			if err := nw.visit(to, state); err != nil {
				return err
			}
		}
	}
	state[sw] = black

	return nil
}
