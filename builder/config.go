// SPDX-License-Identifier: MIT

// config.go - internal configuration and deterministic defaults.
//
// Defaults:
//   - seed         = 1
//   - fanOut       = 2    (Y-shaped switches)
//   - extraTracks  = 0.3  (probability of each optional track)
//   - backwardRest = 0.9  (probability a converging switch rests backward)

package builder

import "math/rand"

const (
	defaultSeed         = int64(1)
	defaultFanOut       = 2
	defaultExtraTracks  = 0.3
	defaultBackwardRest = 0.9

	minSwitches = 1
	minSystems  = 1
	probMin     = 0.0
	probMax     = 1.0
)

// config aggregates all generator knobs. It is passed by value.
type config struct {
	seed         int64
	rng          *rand.Rand // when non-nil, overrides seed
	fanOut       int
	extraTracks  float64
	backwardRest float64
}

// newConfig applies opts over the defaults in order (last wins).
func newConfig(opts ...Option) config {
	cfg := config{
		seed:         defaultSeed,
		fanOut:       defaultFanOut,
		extraTracks:  defaultExtraTracks,
		backwardRest: defaultBackwardRest,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(cfg.seed))
	}

	return cfg
}

// validate checks probabilities; fan-out is checked in its option constructor.
func (c config) validate(method string) error {
	if c.extraTracks < probMin || c.extraTracks > probMax {
		return builderErrorf(method, "extra tracks p=%.3f: %w", c.extraTracks, ErrInvalidProbability)
	}
	if c.backwardRest < probMin || c.backwardRest > probMax {
		return builderErrorf(method, "backward rest p=%.3f: %w", c.backwardRest, ErrInvalidProbability)
	}

	return nil
}
