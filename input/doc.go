// SPDX-License-Identifier: MIT

// Package input reads and writes the whitespace-delimited track system format:
//
//	total_systems
//	for each system:
//	  total_switches
//	  for each switch 1..total_switches:
//	    default_target connection_count target...
//
// Line breaks carry no meaning; any run of whitespace separates tokens.
// Decoder streams one system at a time so large files are solved as they are
// read. A default_target of 0 declares no rest position.
package input
