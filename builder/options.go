// SPDX-License-Identifier: MIT

// options.go - functional options. Constructors panic only on nonsensical
// values (programmer error); probabilities are validated by the generators so
// they surface as ErrInvalidProbability.

package builder

import "math/rand"

const panicFanOutInvalid = "builder: WithFanOut: k must be >= 1"

// Option customizes generator behavior.
type Option func(*config)

// WithSeed fixes the RNG seed for reproducible systems.
func WithSeed(seed int64) Option {
	return func(c *config) { c.seed = seed }
}

// WithRand supplies an RNG directly; useful to draw many systems from one
// stream. A nil r is ignored.
func WithRand(r *rand.Rand) Option {
	return func(c *config) {
		if r != nil {
			c.rng = r
		}
	}
}

// WithFanOut caps the number of forward tracks per switch.
func WithFanOut(k int) Option {
	if k < 1 {
		panic(panicFanOutInvalid)
	}

	return func(c *config) { c.fanOut = k }
}

// WithExtraTracks sets the probability of adding each optional forward track
// beyond the spanning one every switch receives.
func WithExtraTracks(p float64) Option {
	return func(c *config) { c.extraTracks = p }
}

// WithBackwardRest sets the probability that a converging switch rests
// backward toward one of its incoming tracks instead of forward.
func WithBackwardRest(p float64) Option {
	return func(c *config) { c.backwardRest = p }
}
