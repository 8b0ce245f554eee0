// SPDX-License-Identifier: MIT

// Package algorithms - threshold family.
//
// One algorithm, four policies:
//   - ThresholdInPlace: overwrite the input, levels 255/0.
//   - Threshold: new image of the same type and layout, levels 1/0.
//   - ThresholdTo: new image of another real type from any factory.
//   - ThresholdBits: ordering comparison only, Bit output.
//
// Every variant uses strict ">": a sample equal to the cutoff maps to low.
// The cutoff is compared in the real domain for Real inputs, so a
// fractional cutoff on integer input is not rounded first.

package algorithms

import (
	"cmp"

	"github.com/katalvlaran/lvlimg/core"
)

const (
	ctxThresholdTo   = "ThresholdTo"
	ctxThresholdBits = "ThresholdBits"
)

// ThresholdInPlace overwrites every sample of ii with high (> cutoff) or low.
// Defaults: levels DefaultInPlaceHigh / DefaultInPlaceLow.
// Complexity: O(size).
func ThresholdInPlace[T core.Real](ii core.IterableInterval[T], cutoff float64, opts ...Option) {
	base := defaultOptions()
	base.high, base.low = DefaultInPlaceHigh, DefaultInPlaceLow
	o := gatherOptions(base, opts...)
	high, low := core.FromReal[T](o.high), core.FromReal[T](o.low)

	c := ii.Cursor()
	for c.HasNext() {
		c.Fwd()
		if core.ToReal(c.Get()) > cutoff {
			c.Set(high)
		} else {
			c.Set(low)
		}
	}
}

// Threshold returns a new image, created by im's own factory, holding high
// where im > cutoff and low elsewhere.
// Defaults: levels DefaultHigh / DefaultLow.
// Errors: factory allocation errors.
func Threshold[T core.Real](im core.Img[T], cutoff float64, opts ...Option) (core.Img[T], error) {
	return ThresholdTo[T, T](im, cutoff, im.Factory(), opts...)
}

// ThresholdTo thresholds any iterable interval into a new zero-min image of
// element type D created by f. ii may be a view with a non-zero min.
// Errors: factory allocation errors, ErrIncompatibleOrder (forced zip).
func ThresholdTo[S, D core.Real](ii core.IterableInterval[S], cutoff float64, f core.Factory[D], opts ...Option) (core.Img[D], error) {
	o := gatherOptions(defaultOptions(), opts...)
	high, low := core.FromReal[D](o.high), core.FromReal[D](o.low)

	out, err := core.CreateLike(f, ii, low)
	if err != nil {
		return nil, algErrorf(ctxThresholdTo, err)
	}
	err = pairwise(ctxThresholdTo, ii, out, o.traversal, func(v S) D {
		if core.ToReal(v) > cutoff {
			return high
		}

		return low
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// ThresholdBits compares with cmp.Compare only, so it accepts any ordered
// element (strings included) and writes BitOn where v > cutoff.
// Errors: factory allocation errors, ErrIncompatibleOrder (forced zip).
func ThresholdBits[T cmp.Ordered](ii core.IterableInterval[T], cutoff T, f core.Factory[core.Bit], opts ...Option) (core.Img[core.Bit], error) {
	o := gatherOptions(defaultOptions(), opts...)

	out, err := core.CreateLike(f, ii, core.BitOff)
	if err != nil {
		return nil, algErrorf(ctxThresholdBits, err)
	}
	err = pairwise(ctxThresholdBits, ii, out, o.traversal, func(v T) core.Bit {
		return core.BitOf(cmp.Compare(v, cutoff) > 0)
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}
