// SPDX-License-Identifier: MIT

package track

// indegree counts forward tracks converging onto sw.
func (nw *Network) indegree(sw int) int {
	var count, from int
	for from = 1; from <= nw.n; from++ {
		if nw.cells[nw.idx(from, sw)].IsTraversable() {
			count++
		}
	}

	return count
}

// Entry returns the switch where the cart is inserted: the lowest-numbered
// switch with no forward track converging onto it. If every switch has an
// incoming track (impossible for an acyclic network) Entry returns 1.
//
// Complexity: O(N²).
func (nw *Network) Entry() int {
	var sw int
	for sw = 1; sw <= nw.n; sw++ {
		if nw.indegree(sw) == 0 {
			return sw
		}
	}

	return 1
}

// Entries returns every switch with no incoming forward track, ascending.
// A well-formed system has exactly one.
func (nw *Network) Entries() []int {
	var res []int
	var sw int
	for sw = 1; sw <= nw.n; sw++ {
		if nw.indegree(sw) == 0 {
			res = append(res, sw)
		}
	}

	return res
}
