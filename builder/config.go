// SPDX-License-Identifier: MIT

package builder

import (
	"math"
	"math/rand"
)

// builderConfig aggregates all knobs used by constructors. It is passed by
// value.
type builderConfig struct {
	rng       *rand.Rand // nil: deterministic constructors only
	amplitude float64    // > 0
	clamp     bool
	lo, hi    float64
}

const defaultAmplitude = 1.0

// newBuilderConfig applies options in order over the defaults; last wins.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{amplitude: defaultAmplitude}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// bound applies the clamp, if any.
func (c builderConfig) bound(v float64) float64 {
	if !c.clamp {
		return v
	}

	return math.Max(c.lo, math.Min(c.hi, v))
}
