// SPDX-License-Identifier: MIT

// Package search finds a route through a track.Network that throws the fewest
// switches, using a depth-first Branch-and-Bound over the forward tracks.
//
// Cost model (0 or 1 per step):
//
//   - Leaving a diverging switch (OutDegree > 1) along a Manual track costs 1;
//     along its DefaultManual track costs 0.
//   - Leaving a switch with a single track costs nothing; the question is
//     settled on arrival instead.
//   - Arriving at a converging switch (OutDegree ≤ 1) costs 1 when
//     track.Network.ArrivalThrow reports it rests toward another track.
//
// Search:
//
//   - Targets are tried in ascending switch order, so ties resolve to the
//     lexicographically first optimal path.
//   - The incumbent (best cost) starts at N+1; any partial route whose cost
//     reaches it is pruned.
//   - The network must be acyclic (see track.Network.Validate); depth is
//     bounded by N.
//
// Complexity:
//
//   - Worst case exponential in the number of diverging switches; pruning
//     keeps contest-sized systems (N ≤ 100) fast.
//   - Per node: O(N) to scan a dense row. Memory: O(N).
//
// Errors:
//
//   - ErrNilNetwork       network is nil
//   - ErrStartOutOfRange  start switch outside [1, N]
//   - ErrNoExit           no exit reachable from start
//   - context errors      when cancelled via WithContext
package search
