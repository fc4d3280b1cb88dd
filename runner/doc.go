// SPDX-License-Identifier: MIT

// Package runner solves every track system of an input stream in order and
// writes the report:
//
//	Track System <n>:
//	<annotated route>
//	<blank line>
//
// Each system goes through input decoding, track.Build, optional
// track.Network.Validate, track.Network.Entry, search.Solve and
// annotate.Annotate. No state is shared between systems. Progress is logged
// through an injected *zap.Logger; the report itself is the only thing
// written to the output.
package runner
