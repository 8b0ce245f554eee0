// SPDX-License-Identifier: MIT

package builder

import (
	"math"
	"math/rand"
)

// BuilderOption customizes BuildImage by mutating builderConfig before any
// constructor runs.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithAmplitude sets the blob height A (>0). Panics if A <= 0 or not finite.
func WithAmplitude(a float64) BuilderOption {
	if !(a > 0) || math.IsInf(a, 0) {
		panic("builder: WithAmplitude(A<=0)")
	}

	return func(c *builderConfig) { c.amplitude = a }
}

// WithClamp bounds every written value to [lo, hi]. Panics if lo > hi or
// either bound is NaN.
func WithClamp(lo, hi float64) BuilderOption {
	if math.IsNaN(lo) || math.IsNaN(hi) || lo > hi {
		panic("builder: WithClamp(lo>hi)")
	}

	return func(c *builderConfig) { c.lo, c.hi, c.clamp = lo, hi, true }
}
