// SPDX-License-Identifier: MIT

// Package algorithms: functional configuration shared by every entry point.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strict validation (panic on nonsensical values),
//   - gatherOptions helper that layers per-call options over entry defaults.
//
// Notes:
//   - Threshold levels have two defaults: in-place thresholding writes the
//     8-bit display levels 255/0, allocating variants write 1/0.
//   - Options that an entry point does not read are ignored, never rejected.

package algorithms

import (
	"math"
	"runtime"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultInPlaceHigh / DefaultInPlaceLow are the levels written by
	// ThresholdInPlace.
	DefaultInPlaceHigh = 255.0
	DefaultInPlaceLow  = 0.0

	// DefaultHigh / DefaultLow are the levels written by Threshold and
	// ThresholdTo.
	DefaultHigh = 1.0
	DefaultLow  = 0.0

	// DefaultBackground is the constant read outside the source by Transform.
	DefaultBackground = 0.0

	// DefaultTraversal lets the iteration orders decide.
	DefaultTraversal = TraversalAuto

	// DefaultInterpolation is N-linear.
	DefaultInterpolation = InterpNLinear

	// DefaultBoundary is a constant background.
	DefaultBoundary = BoundaryValue
)

// DefaultWorkers is the GradientParallel worker limit: GOMAXPROCS.
func DefaultWorkers() int { return runtime.GOMAXPROCS(0) }

// Traversal selects the pairwise traversal path.
type Traversal int

const (
	// TraversalAuto zips when orders match and falls back to positional.
	TraversalAuto Traversal = iota
	// TraversalZip requires matching orders (ErrIncompatibleOrder otherwise).
	TraversalZip
	// TraversalPositional always uses a localizing cursor plus RandomAccess.
	TraversalPositional
)

func (t Traversal) String() string {
	switch t {
	case TraversalAuto:
		return "auto"
	case TraversalZip:
		return "zip"
	case TraversalPositional:
		return "positional"
	default:
		return "invalid"
	}
}

// Interp selects the interpolator used by Transform.
type Interp int

const (
	InterpNLinear Interp = iota
	InterpNearest
)

// Boundary selects the extension policy used by Transform.
type Boundary int

const (
	// BoundaryValue reads the background constant outside the source.
	BoundaryValue Boundary = iota
	BoundaryMirrorSingle
	BoundaryMirrorDouble
	BoundaryBorder
)

// ---------- Internal panic messages ----------

const (
	panicTraversalInvalid = "algorithms: WithTraversal: unknown traversal"
	panicLevelsInvalid    = "algorithms: WithLevels: levels must be finite"
	panicWorkersInvalid   = "algorithms: WithWorkers: n must be >= 1"
	panicInterpInvalid    = "algorithms: WithInterpolation: unknown interpolator"
	panicBoundaryInvalid  = "algorithms: WithBoundary: unknown boundary"
	panicBackgroundNaN    = "algorithms: WithBackground: value must not be NaN"
)

// ---------- Public option type (functional) ----------

// Option mutates Options. Constructors panic only on nonsensical values.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	traversal  Traversal
	high, low  float64
	workers    int
	interp     Interp
	boundary   Boundary
	background float64
}

// WithTraversal forces a pairwise traversal path.
// Panics on an unknown value.
func WithTraversal(t Traversal) Option {
	if t < TraversalAuto || t > TraversalPositional {
		panic(panicTraversalInvalid)
	}

	return func(o *Options) { o.traversal = t }
}

// WithLevels sets the values written above (high) and at-or-below (low)
// the cutoff. Values are converted with core.FromReal and not clamped.
// Panics on NaN or ±Inf.
func WithLevels(high, low float64) Option {
	if isNonFinite(high) || isNonFinite(low) {
		panic(panicLevelsInvalid)
	}

	return func(o *Options) { o.high, o.low = high, low }
}

// WithWorkers bounds GradientParallel's concurrency.
// Panics when n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithInterpolation selects the Transform interpolator.
func WithInterpolation(i Interp) Option {
	if i != InterpNLinear && i != InterpNearest {
		panic(panicInterpInvalid)
	}

	return func(o *Options) { o.interp = i }
}

// WithBoundary selects how Transform samples outside the source.
func WithBoundary(b Boundary) Option {
	if b < BoundaryValue || b > BoundaryBorder {
		panic(panicBoundaryInvalid)
	}

	return func(o *Options) { o.boundary = b }
}

// WithBackground sets the constant for BoundaryValue.
func WithBackground(v float64) Option {
	if math.IsNaN(v) {
		panic(panicBackgroundNaN)
	}

	return func(o *Options) { o.background = v }
}

// defaultOptions returns the baseline shared by all entry points; high/low
// are overridden per entry point before user options apply.
func defaultOptions() Options {
	return Options{
		traversal:  DefaultTraversal,
		high:       DefaultHigh,
		low:        DefaultLow,
		workers:    DefaultWorkers(),
		interp:     DefaultInterpolation,
		boundary:   DefaultBoundary,
		background: DefaultBackground,
	}
}

// gatherOptions applies opts over base in order; later options win.
func gatherOptions(base Options, opts ...Option) Options {
	for _, opt := range opts {
		if opt != nil {
			opt(&base)
		}
	}

	return base
}

func isNonFinite(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }
