// SPDX-License-Identifier: MIT

// Package outofbounds - extension policies for bounded sources.
//
// Purpose:
//   - Turn a RandomAccessibleInterval into an accessor defined on every
//     integer coordinate.
//   - Keep relative moves O(1): each move folds only the axis it touches
//     and forwards the folded coordinate to the wrapped accessor.
//
// Policies:
//   - MirrorSingle: period 2·(n−1), min−1 ↦ min+1 (edge not repeated).
//   - MirrorDouble: period 2·n, min−1 ↦ min (edge repeated).
//   - Value: outside reads a constant, writes are dropped.
//   - Border: outside clamps to the nearest edge sample.

package outofbounds

import "github.com/katalvlaran/lvlimg/core"

// OutOfBounds is a RandomAccess that may sit outside its source interval.
type OutOfBounds[T any] interface {
	core.RandomAccess[T]
	// IsOutOfBounds reports whether the current position lies outside the
	// source interval on at least one axis.
	IsOutOfBounds() bool
}

// Factory creates out-of-bounds accessors over a bounded source. Every
// policy in this package is a Factory and composes with any source.
type Factory[T any] interface {
	Create(src core.RandomAccessibleInterval[T]) OutOfBounds[T]
}

// foldFunc maps a coordinate x on an axis [min, min+n) back into that axis.
type foldFunc func(x, min, n int) int

// floorMod is the non-negative remainder.
func floorMod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}

	return r
}

func foldMirrorSingle(x, min, n int) int {
	if n == 1 {
		return min
	}
	period := 2 * (n - 1)
	r := floorMod(x-min, period)
	if r >= n {
		r = period - r
	}

	return min + r
}

func foldMirrorDouble(x, min, n int) int {
	period := 2 * n
	r := floorMod(x-min, period)
	if r >= n {
		r = period - 1 - r
	}

	return min + r
}

func foldBorder(x, min, n int) int {
	switch {
	case x < min:
		return min
	case x >= min+n:
		return min + n - 1
	default:
		return x
	}
}

// accessor is the single implementation behind every policy. The wrapped
// accessor always sits on a valid coordinate; constant policies only
// decide whether its sample is used.
type accessor[T any] struct {
	inner    core.RandomAccess[T]
	fold     foldFunc
	pos      []int
	min      []int
	dims     []int
	outside  []bool
	nOutside int
	constant bool
	value    T
}

var _ OutOfBounds[float64] = (*accessor[float64])(nil)

func newAccessor[T any](src core.RandomAccessibleInterval[T], fold foldFunc) *accessor[T] {
	b := src.Bounds()
	a := &accessor[T]{
		inner:   src.RandomAccess(),
		fold:    fold,
		pos:     b.Mins(),
		min:     b.Mins(),
		dims:    b.Dims(),
		outside: make([]bool, b.NumDimensions()),
	}
	a.inner.SetPosition(a.pos)

	return a
}

// sync re-folds axis d after pos[d] changed.
func (a *accessor[T]) sync(d int) {
	x := a.pos[d]
	out := x < a.min[d] || x >= a.min[d]+a.dims[d]
	if out != a.outside[d] {
		a.outside[d] = out
		if out {
			a.nOutside++
		} else {
			a.nOutside--
		}
	}
	if out {
		x = a.fold(x, a.min[d], a.dims[d])
	}
	a.inner.SetPositionAt(d, x)
}

func (a *accessor[T]) NumDimensions() int { return len(a.pos) }
func (a *accessor[T]) Position(d int) int { return a.pos[d] }
func (a *accessor[T]) Localize(out []int) { copy(out, a.pos) }
func (a *accessor[T]) IsOutOfBounds() bool { return a.nOutside > 0 }

func (a *accessor[T]) Fwd(d int) {
	a.pos[d]++
	a.sync(d)
}

func (a *accessor[T]) Bck(d int) {
	a.pos[d]--
	a.sync(d)
}

func (a *accessor[T]) Move(d, distance int) {
	a.pos[d] += distance
	a.sync(d)
}

func (a *accessor[T]) SetPositionAt(d, v int) {
	a.pos[d] = v
	a.sync(d)
}

func (a *accessor[T]) SetPosition(pos []int) {
	for d := range a.pos {
		a.pos[d] = pos[d]
		a.sync(d)
	}
}

func (a *accessor[T]) Get() T {
	if a.constant && a.nOutside > 0 {
		return a.value
	}

	return a.inner.Get()
}

// Set writes through to the folded coordinate; under Value it is dropped
// outside the interval.
func (a *accessor[T]) Set(v T) {
	if a.constant && a.nOutside > 0 {
		return
	}
	a.inner.Set(v)
}

func (a *accessor[T]) Copy() core.RandomAccess[T] {
	cp := *a
	cp.inner = a.inner.Copy()
	cp.pos = append([]int(nil), a.pos...)
	cp.outside = append([]bool(nil), a.outside...)

	return &cp
}

// ---------- policies ----------

// MirrorSingle reflects without repeating the edge sample.
type MirrorSingle[T any] struct{}

// Create implements Factory.
func (MirrorSingle[T]) Create(src core.RandomAccessibleInterval[T]) OutOfBounds[T] {
	return newAccessor(src, foldMirrorSingle)
}

// MirrorDouble reflects and repeats the edge sample.
type MirrorDouble[T any] struct{}

// Create implements Factory.
func (MirrorDouble[T]) Create(src core.RandomAccessibleInterval[T]) OutOfBounds[T] {
	return newAccessor(src, foldMirrorDouble)
}

// Border clamps to the nearest edge sample.
type Border[T any] struct{}

// Create implements Factory.
func (Border[T]) Create(src core.RandomAccessibleInterval[T]) OutOfBounds[T] {
	return newAccessor(src, foldBorder)
}

// Value returns a fixed element everywhere outside the interval.
type Value[T any] struct {
	Value T
}

// NewValue returns the constant policy for v.
func NewValue[T any](v T) Value[T] { return Value[T]{Value: v} }

// Create implements Factory.
func (p Value[T]) Create(src core.RandomAccessibleInterval[T]) OutOfBounds[T] {
	a := newAccessor(src, foldBorder)
	a.constant = true
	a.value = p.Value

	return a
}
