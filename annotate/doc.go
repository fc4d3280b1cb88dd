// SPDX-License-Identifier: MIT

// Package annotate turns a route found by package search into the printed
// token sequence, marking every switch that must be thrown.
//
// Each switch on the route is emitted exactly once:
//
//   - a diverging switch X (more than one forward track) leaving toward N
//     prints as "X(N)" when N is not its rest position, else "X";
//   - a converging switch or exit X (at most one forward track) entered
//     from P prints as "(P)X" when X rests toward another incoming track,
//     else "X".
//
// The number of marked tokens equals the search's throw count for the same
// route. Annotate re-derives the markers from the network alone; it checks
// that the route is walkable and ends at an exit instead of trusting it.
package annotate
