// SPDX-License-Identifier: MIT

// Package core - Interval: immutable axis-aligned integer box.
//
// Purpose:
//   - Describe the domain of an image or view: min[d] <= max[d] for every d.
//   - Stay immutable: accessors return copies, derived intervals are new values.
//
// Complexity quicksheet:
//   - NumDimensions/Min/Max/Dimension: O(1); Contains/Size/Translate: O(N).

package core

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxNewInterval   = "NewInterval"
	ctxIntervalDims  = "NewIntervalFromDims"
	ctxTranslate     = "Interval.Translate"
	ctxIntersect     = "Interval.Intersect"
	ctxValidatePoint = "ValidatePosition"
)

// Interval is an axis-aligned N-dimensional range of integer coordinates,
// closed on both ends. The zero value has no dimensions and is only useful
// as a "not set" marker; construct intervals with NewInterval or
// NewIntervalFromDims.
type Interval struct {
	min []int // inclusive lower corner
	max []int // inclusive upper corner (len(max) == len(min))
}

// Bounded is implemented by anything with a declared Interval: storage
// backends, bounded views and iterable intervals.
type Bounded interface {
	// Bounds returns the declared domain. Implementations return a value
	// whose slices are not shared with internal state.
	Bounds() Interval
}

// NewInterval builds an Interval from inclusive corners.
// Stage 1 (Validate): equal, non-zero lengths; min[d] <= max[d].
// Stage 2 (Finalize): copy both corners so the caller may reuse its slices.
// Errors: ErrDimensionMismatch, ErrBadShape.
// Complexity: O(N).
func NewInterval(min, max []int) (Interval, error) {
	if len(min) != len(max) {
		return Interval{}, coreErrorf(ctxNewInterval, ErrDimensionMismatch)
	}
	if len(min) == 0 {
		return Interval{}, coreErrorf(ctxNewInterval, ErrBadShape)
	}
	for d := range min {
		if min[d] > max[d] {
			return Interval{}, fmt.Errorf("%s: axis %d min %d > max %d: %w",
				ctxNewInterval, d, min[d], max[d], ErrBadShape)
		}
	}

	return Interval{min: cloneInts(min), max: cloneInts(max)}, nil
}

// NewIntervalFromDims builds the zero-min Interval [0, dims[d]-1] per axis.
// Errors: ErrBadShape when dims is empty or any extent is <= 0.
// Complexity: O(N).
func NewIntervalFromDims(dims ...int) (Interval, error) {
	if len(dims) == 0 {
		return Interval{}, coreErrorf(ctxIntervalDims, ErrBadShape)
	}
	min := make([]int, len(dims))
	max := make([]int, len(dims))
	for d, n := range dims {
		if n <= 0 {
			return Interval{}, fmt.Errorf("%s: axis %d extent %d: %w", ctxIntervalDims, d, n, ErrBadShape)
		}
		max[d] = n - 1
	}

	return Interval{min: min, max: max}, nil
}

// NumDimensions returns N.
func (iv Interval) NumDimensions() int { return len(iv.min) }

// Min returns the inclusive lower bound along axis d. Panics if d >= N.
func (iv Interval) Min(d int) int { return iv.min[d] }

// Max returns the inclusive upper bound along axis d. Panics if d >= N.
func (iv Interval) Max(d int) int { return iv.max[d] }

// Dimension returns the number of samples along axis d (max - min + 1).
func (iv Interval) Dimension(d int) int { return iv.max[d] - iv.min[d] + 1 }

// Mins returns a copy of the lower corner.
func (iv Interval) Mins() []int { return cloneInts(iv.min) }

// Maxs returns a copy of the upper corner.
func (iv Interval) Maxs() []int { return cloneInts(iv.max) }

// Dims returns a copy of the per-axis extents.
func (iv Interval) Dims() []int {
	dims := make([]int, len(iv.min))
	for d := range dims {
		dims[d] = iv.Dimension(d)
	}

	return dims
}

// Size returns the total number of coordinates inside the interval.
// Complexity: O(N).
func (iv Interval) Size() int {
	if len(iv.min) == 0 {
		return 0
	}
	n := 1
	for d := range iv.min {
		n *= iv.Dimension(d)
	}

	return n
}

// IsZeroMin reports whether every lower bound is 0.
func (iv Interval) IsZeroMin() bool {
	for _, m := range iv.min {
		if m != 0 {
			return false
		}
	}

	return true
}

// Contains reports whether pos lies inside the interval.
// A position of the wrong length is never contained.
// Complexity: O(N).
func (iv Interval) Contains(pos []int) bool {
	if len(pos) != len(iv.min) {
		return false
	}
	for d, p := range pos {
		if p < iv.min[d] || p > iv.max[d] {
			return false
		}
	}

	return true
}

// ContainsLocalizable is Contains for an accessor's current position.
func (iv Interval) ContainsLocalizable(l Localizable) bool {
	if l.NumDimensions() != len(iv.min) {
		return false
	}
	for d := range iv.min {
		p := l.Position(d)
		if p < iv.min[d] || p > iv.max[d] {
			return false
		}
	}

	return true
}

// Translate returns the interval shifted by offset.
// Errors: ErrDimensionMismatch when len(offset) != N.
func (iv Interval) Translate(offset []int) (Interval, error) {
	if len(offset) != len(iv.min) {
		return Interval{}, coreErrorf(ctxTranslate, ErrDimensionMismatch)
	}
	out := Interval{min: make([]int, len(iv.min)), max: make([]int, len(iv.max))}
	for d := range offset {
		out.min[d] = iv.min[d] + offset[d]
		out.max[d] = iv.max[d] + offset[d]
	}

	return out, nil
}

// Intersect returns the overlap of iv and o.
// Errors: ErrDimensionMismatch for differing N, ErrBadShape when the
// intervals do not overlap.
func (iv Interval) Intersect(o Interval) (Interval, error) {
	if len(o.min) != len(iv.min) {
		return Interval{}, coreErrorf(ctxIntersect, ErrDimensionMismatch)
	}
	min := make([]int, len(iv.min))
	max := make([]int, len(iv.max))
	for d := range min {
		min[d] = maxInt(iv.min[d], o.min[d])
		max[d] = minInt(iv.max[d], o.max[d])
	}

	return NewInterval(min, max)
}

// Equal reports identical corners.
func (iv Interval) Equal(o Interval) bool {
	return equalInts(iv.min, o.min) && equalInts(iv.max, o.max)
}

// EqualDimensions reports identical per-axis extents regardless of origin.
func (iv Interval) EqualDimensions(o Interval) bool {
	if len(iv.min) != len(o.min) {
		return false
	}
	for d := range iv.min {
		if iv.Dimension(d) != o.Dimension(d) {
			return false
		}
	}

	return true
}

// String renders "[min0..max0, min1..max1, ...]".
func (iv Interval) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for d := range iv.min {
		if d > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%d..%d", iv.min[d], iv.max[d])
	}
	sb.WriteString("]")

	return sb.String()
}

// ValidatePosition checks that pos has exactly n components.
// Errors: ErrDimensionMismatch.
func ValidatePosition(pos []int, n int) error {
	if len(pos) != n {
		return fmt.Errorf("%s: got %d components, want %d: %w", ctxValidatePoint, len(pos), n, ErrDimensionMismatch)
	}

	return nil
}

// SameShape reports whether two bounded values share N and every extent.
// Errors: ErrDimensionMismatch.
func SameShape(a, b Bounded) error {
	ba, bb := a.Bounds(), b.Bounds()
	if !ba.EqualDimensions(bb) {
		return fmt.Errorf("SameShape: %v vs %v: %w", ba, bb, ErrDimensionMismatch)
	}

	return nil
}

func cloneInts(s []int) []int {
	out := make([]int, len(s))
	copy(out, s)

	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

func minInt(a, b int) int {
	if a < b {
		return a
	}

	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}
