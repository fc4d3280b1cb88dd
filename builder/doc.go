// SPDX-License-Identifier: MIT

// Package builder generates well-formed track systems for tests, benchmarks
// and the `trackswitch generate` command.
//
// Every generated system satisfies the guarantees the search relies on:
//
//   - switches are numbered in topological order, so forward tracks only run
//     from a lower to a higher ID (acyclic);
//   - every switch except 1 has at least one incoming track, so switch 1 is
//     the unique entry and every switch is reachable from it;
//   - the last switch has no outgoing track, so an exit always exists;
//   - each switch has at most one rest position: diverging switches rest on
//     one of their tracks, converging switches usually rest backward toward
//     one of their incoming tracks.
//
// Determinism: the same n, options and seed yield the same system.
//
// Constructors:
//
//   - Chain(n)                    linear, default-forward chain 1→2→…→n
//   - RandomSystem(n, opts...)    random layered DAG
//   - RandomSystems(k, n, opts...) k independent systems from one RNG stream
package builder
