// SPDX-License-Identifier: MIT

// Package track models a gravity-driven rail system as a dense connectivity
// table over numbered switches.
//
// What:
//
//   - Network: an N×N table (1-indexed) whose cells hold a Connection:
//     None, Default, Manual or DefaultManual.
//   - Entry Finder: Entry returns the unique switch nothing converges onto.
//   - Validate: structural checks (acyclic, single entry) before a search.
//
// Cell semantics:
//
//   - Manual         a forward track exists; using it means throwing the switch.
//   - DefaultManual  a forward track exists and it is the switch's rest position.
//   - Default        a backward rest position: a converging switch resting toward
//     one of its incoming tracks. It is not a forward track.
//   - None           no track.
//
// Each switch has at most one rest position (ErrDuplicateDefault) and the forward
// tracks form a DAG: the cart only rolls downhill.
//
// Complexity:
//
//   - NewNetwork:      Time O(N²), Memory O(N²)
//   - OutDegree/Entry: Time O(N) / O(N²)
//   - Validate:        Time O(N²) (dense rows), Memory O(N)
//
// Errors:
//
//   - ErrBadSize            switch count < 1
//   - ErrSwitchOutOfRange   a switch ID outside [1, N]
//   - ErrSelfLoop           a track from a switch to itself
//   - ErrDuplicateDefault   a second rest position for one switch
//   - ErrCycleDetected      forward tracks contain a cycle
//   - ErrMultipleEntries    more than one switch has no incoming track
package track
