// SPDX-License-Identifier: MIT

package track

import "errors"

// Sentinel errors for connectivity model operations.
var (
	// ErrBadSize indicates a network with fewer than one switch.
	ErrBadSize = errors.New("track: switch count must be >= 1")

	// ErrSwitchOutOfRange indicates a switch ID outside [1, N].
	ErrSwitchOutOfRange = errors.New("track: switch out of range")

	// ErrSelfLoop indicates a track declared from a switch to itself.
	ErrSelfLoop = errors.New("track: self-loop not allowed")

	// ErrDuplicateDefault indicates a second rest position declared for one switch.
	ErrDuplicateDefault = errors.New("track: switch already has a default")

	// ErrCycleDetected indicates the forward tracks are not acyclic.
	ErrCycleDetected = errors.New("track: cycle detected")

	// ErrMultipleEntries indicates more than one switch without incoming tracks.
	ErrMultipleEntries = errors.New("track: more than one entry switch")
)

// Connection is the state of one (from, to) cell of a Network.
type Connection uint8

const (
	// None means no track runs from the row switch to the column switch.
	None Connection = iota
	// Default is a rest position without a forward track (backward-looking).
	Default
	// Manual is a forward track that requires throwing the switch.
	Manual
	// DefaultManual is a forward track the switch rests on; no throw needed.
	DefaultManual
)

// IsTraversable reports whether the cart can roll along this cell.
func (c Connection) IsTraversable() bool { return c == Manual || c == DefaultManual }

// IsDefault reports whether the cell is the switch's rest position.
func (c Connection) IsDefault() bool { return c == Default || c == DefaultManual }

// String returns a short lower-case name for c.
func (c Connection) String() string {
	switch c {
	case None:
		return "none"
	case Default:
		return "default"
	case Manual:
		return "manual"
	case DefaultManual:
		return "default+manual"
	default:
		return "unknown"
	}
}

// Declaration is the input record of one switch: its rest position and the
// switches its tracks lead to. Default == 0 means no rest position.
type Declaration struct {
	Default int
	Targets []int
}

// System is one track system as declared in the input: Switches[i] describes
// switch i+1.
type System struct {
	Switches []Declaration
}

// Size returns the number of switches declared in s.
func (s System) Size() int { return len(s.Switches) }
