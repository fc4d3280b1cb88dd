// SPDX-License-Identifier: MIT

package track

import "fmt"

// Network is a dense connectivity table over switches 1..n.
//
// cells is row-major and 0-indexed internally: cells[(from-1)*n+(to-1)].
// out caches the number of traversable cells per row; def records the rest
// position of every switch (0 = none). Both are maintained by DeclareEdge and
// DeclareDefault, so queries on the search hot path are O(1).
type Network struct {
	n     int
	cells []Connection
	out   []int
	def   []int
}

// NewNetwork returns an empty network of n switches (every cell None).
// Complexity: O(n²) zeroing.
func NewNetwork(n int) (*Network, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: n=%d", ErrBadSize, n)
	}

	return &Network{
		n:     n,
		cells: make([]Connection, n*n),
		out:   make([]int, n),
		def:   make([]int, n),
	}, nil
}

// Size returns the number of switches.
func (nw *Network) Size() int { return nw.n }

// valid reports whether id names a switch of nw.
func (nw *Network) valid(id int) bool { return id >= 1 && id <= nw.n }

// idx maps a 1-indexed (from, to) pair to its flat cell offset.
func (nw *Network) idx(from, to int) int { return (from-1)*nw.n + (to - 1) }

// DeclareEdge marks (from, to) as a forward track. A cell that already
// carries the rest flag becomes DefaultManual; redeclaring is a no-op.
func (nw *Network) DeclareEdge(from, to int) error {
	if !nw.valid(from) || !nw.valid(to) {
		return fmt.Errorf("%w: edge %d->%d (n=%d)", ErrSwitchOutOfRange, from, to, nw.n)
	}
	if from == to {
		return fmt.Errorf("%w: switch %d", ErrSelfLoop, from)
	}

	i := nw.idx(from, to)
	switch nw.cells[i] {
	case None:
		nw.cells[i] = Manual
		nw.out[from-1]++
	case Default:
		nw.cells[i] = DefaultManual
		nw.out[from-1]++
	}

	return nil
}

// DeclareDefault adds the rest flag to (sw, target). Call it after every
// DeclareEdge of sw: over a Manual cell it yields DefaultManual, over None it
// yields a backward rest position (Default). target == 0 declares no rest
// position and is a no-op.
func (nw *Network) DeclareDefault(sw, target int) error {
	if !nw.valid(sw) {
		return fmt.Errorf("%w: switch %d (n=%d)", ErrSwitchOutOfRange, sw, nw.n)
	}
	if target == 0 {
		return nil
	}
	if !nw.valid(target) {
		return fmt.Errorf("%w: default %d of switch %d (n=%d)", ErrSwitchOutOfRange, target, sw, nw.n)
	}
	if nw.def[sw-1] != 0 {
		return fmt.Errorf("%w: switch %d rests on %d, got %d", ErrDuplicateDefault, sw, nw.def[sw-1], target)
	}

	i := nw.idx(sw, target)
	switch nw.cells[i] {
	case None:
		nw.cells[i] = Default
	case Manual:
		nw.cells[i] = DefaultManual
	}
	nw.def[sw-1] = target

	return nil
}

// At returns the connection from one switch to another. Out-of-range IDs
// read as None.
func (nw *Network) At(from, to int) Connection {
	if !nw.valid(from) || !nw.valid(to) {
		return None
	}

	return nw.cells[nw.idx(from, to)]
}

// OutDegree returns how many forward tracks leave sw. A switch with more than
// one is diverging; with at most one it is converging (or the exit when zero).
func (nw *Network) OutDegree(sw int) int {
	if !nw.valid(sw) {
		return 0
	}

	return nw.out[sw-1]
}

// DefaultOf returns the rest position of sw, or 0 if it has none.
func (nw *Network) DefaultOf(sw int) int {
	if !nw.valid(sw) {
		return 0
	}

	return nw.def[sw-1]
}

// Successors returns the forward targets of sw in ascending order.
func (nw *Network) Successors(sw int) []int {
	if !nw.valid(sw) {
		return nil
	}
	succ := make([]int, 0, nw.out[sw-1])
	row := nw.cells[(sw-1)*nw.n : sw*nw.n]
	for j, c := range row {
		if c.IsTraversable() {
			succ = append(succ, j+1)
		}
	}

	return succ
}

// ArrivalThrow reports whether rolling into the converging switch cur from
// prev requires cur to be thrown: cur rests backward toward some switch other
// than prev. A switch resting forward, or with no rest position, accepts the
// cart from any incoming track.
func (nw *Network) ArrivalThrow(cur, prev int) bool {
	d := nw.DefaultOf(cur)
	if d == 0 || d == prev {
		return false
	}

	return nw.cells[nw.idx(cur, d)] == Default
}
