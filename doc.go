// SPDX-License-Identifier: MIT

// Package trackswitch routes a cart through a network of rail switches from
// the entry switch to an exit while throwing as few switches as possible.
//
// The work is split across small packages:
//
//	track/    - switch declarations, the dense connectivity table, entry and
//	            structural validation, and the arrival-throw rule
//	search/   - branch-and-bound depth-first search for a minimum-throw route
//	annotate/ - marks thrown switches on a route and formats the report line
//	input/    - count-prefixed whitespace-separated reader and writer
//	builder/  - deterministic generators for chains and random systems
//	config/   - YAML configuration with environment overrides
//	runner/   - the decode, solve and report pipeline with structured logging
//
// The trackswitch command (cmd/trackswitch) wires them together:
//
//	trackswitch solve cymbal.in
//	trackswitch generate --systems 3 --switches 10 --seed 7
package trackswitch
