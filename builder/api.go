// SPDX-License-Identifier: MIT

// api.go - public entry points; implementations live in impl_*.go.

package builder

import "github.com/katalvlaran/trackswitch/track"

// Chain returns a linear system 1→2→…→n where every switch rests on its only
// forward track. Its optimal route throws nothing.
func Chain(n int) (track.System, error) {
	if n < minSwitches {
		return track.System{}, builderErrorf(methodChain, "n=%d < min=%d: %w", n, minSwitches, ErrTooFewSwitches)
	}

	return buildChain(n), nil
}

// RandomSystem returns a random well-formed system of n switches.
func RandomSystem(n int, opts ...Option) (track.System, error) {
	cfg := newConfig(opts...)
	if err := cfg.validate(methodRandomSystem); err != nil {
		return track.System{}, err
	}
	if n < minSwitches {
		return track.System{}, builderErrorf(methodRandomSystem, "n=%d < min=%d: %w", n, minSwitches, ErrTooFewSwitches)
	}

	return buildRandom(n, cfg), nil
}

// RandomSystems returns count systems of n switches drawn from one RNG stream.
func RandomSystems(count, n int, opts ...Option) ([]track.System, error) {
	cfg := newConfig(opts...)
	if err := cfg.validate(methodRandomSystems); err != nil {
		return nil, err
	}
	if count < minSystems {
		return nil, builderErrorf(methodRandomSystems, "count=%d < min=%d: %w", count, minSystems, ErrTooFewSystems)
	}
	if n < minSwitches {
		return nil, builderErrorf(methodRandomSystems, "n=%d < min=%d: %w", n, minSwitches, ErrTooFewSwitches)
	}

	systems := make([]track.System, count)
	for i := range systems {
		systems[i] = buildRandom(n, cfg)
	}

	return systems, nil
}
