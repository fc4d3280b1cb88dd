// SPDX-License-Identifier: MIT

// errors.go - sentinel errors for the builder package. Callers branch with
// errors.Is; constructors attach context with %w.

package builder

import "errors"

// ErrTooFewSwitches indicates a switch count below the minimum.
var ErrTooFewSwitches = errors.New("builder: too few switches")

// ErrTooFewSystems indicates a system count below the minimum.
var ErrTooFewSystems = errors.New("builder: too few systems")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")
