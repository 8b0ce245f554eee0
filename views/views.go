// SPDX-License-Identifier: MIT

// Package views - decorator chains over sources. No view copies samples.

package views

import (
	"fmt"

	"github.com/katalvlaran/lvlimg/core"
	"github.com/katalvlaran/lvlimg/interpolation"
	"github.com/katalvlaran/lvlimg/outofbounds"
)

// ---------- error context tags ----------

const (
	ctxInterval       = "views.Interval"
	ctxIntervalMinMax = "views.IntervalMinMax"
	ctxTranslate      = "views.Translate"
)

// ---------- extension ----------

// Extended is an unbounded view of a bounded source under an extension policy.
type Extended[T any] struct {
	src    core.RandomAccessibleInterval[T]
	policy outofbounds.Factory[T]
}

var _ core.RandomAccessible[int] = (*Extended[int])(nil)

// Extend makes src defined everywhere according to policy.
func Extend[T any](src core.RandomAccessibleInterval[T], policy outofbounds.Factory[T]) *Extended[T] {
	return &Extended[T]{src: src, policy: policy}
}

// ExtendMirrorSingle reflects without repeating edge samples.
func ExtendMirrorSingle[T any](src core.RandomAccessibleInterval[T]) *Extended[T] {
	return Extend[T](src, outofbounds.MirrorSingle[T]{})
}

// ExtendMirrorDouble reflects and repeats edge samples.
func ExtendMirrorDouble[T any](src core.RandomAccessibleInterval[T]) *Extended[T] {
	return Extend[T](src, outofbounds.MirrorDouble[T]{})
}

// ExtendValue reads v everywhere outside src.
func ExtendValue[T any](src core.RandomAccessibleInterval[T], v T) *Extended[T] {
	return Extend[T](src, outofbounds.NewValue(v))
}

// ExtendZero reads the zero element outside src.
func ExtendZero[T any](src core.RandomAccessibleInterval[T]) *Extended[T] {
	var zero T

	return ExtendValue(src, zero)
}

// ExtendBorder clamps to the nearest edge sample.
func ExtendBorder[T any](src core.RandomAccessibleInterval[T]) *Extended[T] {
	return Extend[T](src, outofbounds.Border[T]{})
}

func (e *Extended[T]) NumDimensions() int { return e.src.NumDimensions() }

// RandomAccess returns an out-of-bounds accessor of the policy.
func (e *Extended[T]) RandomAccess() core.RandomAccess[T] { return e.policy.Create(e.src) }

// Source returns the wrapped bounded source.
func (e *Extended[T]) Source() core.RandomAccessibleInterval[T] { return e.src }

// ---------- interpolation ----------

// Interpolated is a continuous view of a discrete source.
type Interpolated[T core.Real] struct {
	src     core.RandomAccessible[T]
	factory interpolation.Factory[T]
}

var _ core.RealRandomAccessible = (*Interpolated[float32])(nil)

// Interpolate samples src at real coordinates through factory. src should be
// extended first unless every sampled position stays well inside it.
func Interpolate[T core.Real](src core.RandomAccessible[T], factory interpolation.Factory[T]) *Interpolated[T] {
	return &Interpolated[T]{src: src, factory: factory}
}

func (v *Interpolated[T]) NumDimensions() int { return v.src.NumDimensions() }

// RealRandomAccess returns an independent sampler.
func (v *Interpolated[T]) RealRandomAccess() core.RealRandomAccess { return v.factory.Create(v.src) }

// ---------- interval restriction ----------

// Interval restricts src to iv, producing a bounded, iterable view.
// Errors: core.ErrDimensionMismatch when iv and src disagree on N.
func Interval[T any](src core.RandomAccessible[T], iv core.Interval) (*IntervalView[T], error) {
	if iv.NumDimensions() != src.NumDimensions() {
		return nil, fmt.Errorf("%s: %d-D interval over %d-D source: %w",
			ctxInterval, iv.NumDimensions(), src.NumDimensions(), core.ErrDimensionMismatch)
	}

	return &IntervalView[T]{src: src, iv: iv}, nil
}

// IntervalMinMax is Interval with inclusive corners.
// Errors: core.ErrDimensionMismatch, core.ErrBadShape.
func IntervalMinMax[T any](src core.RandomAccessible[T], min, max []int) (*IntervalView[T], error) {
	iv, err := core.NewInterval(min, max)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxIntervalMinMax, err)
	}

	return Interval(src, iv)
}

// ---------- translation ----------

// Translated shifts a source so that view(x) == src(x - offset).
type Translated[T any] struct {
	src    core.RandomAccessible[T]
	offset []int
}

// Translate shifts src by offset (one component per axis).
// Errors: core.ErrDimensionMismatch.
func Translate[T any](src core.RandomAccessible[T], offset ...int) (*Translated[T], error) {
	if err := core.ValidatePosition(offset, src.NumDimensions()); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxTranslate, err)
	}

	return &Translated[T]{src: src, offset: append([]int(nil), offset...)}, nil
}

func (t *Translated[T]) NumDimensions() int { return t.src.NumDimensions() }

func (t *Translated[T]) RandomAccess() core.RandomAccess[T] {
	return &translatedAccess[T]{inner: t.src.RandomAccess(), offset: t.offset, buf: make([]int, len(t.offset))}
}

// TranslateInterval shifts a bounded source and its bounds together.
// Errors: core.ErrDimensionMismatch.
func TranslateInterval[T any](src core.RandomAccessibleInterval[T], offset ...int) (*IntervalView[T], error) {
	tr, err := Translate[T](src, offset...)
	if err != nil {
		return nil, err
	}
	iv, err := src.Bounds().Translate(offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxTranslate, err)
	}

	return &IntervalView[T]{src: tr, iv: iv}, nil
}

// ZeroMin translates a bounded source so that its min is the origin.
func ZeroMin[T any](src core.RandomAccessibleInterval[T]) *IntervalView[T] {
	mins := src.Bounds().Mins()
	for d := range mins {
		mins[d] = -mins[d]
	}
	v, _ := TranslateInterval(src, mins...) // N always matches

	return v
}

// translatedAccess forwards every move; only absolute positions are shifted.
type translatedAccess[T any] struct {
	inner  core.RandomAccess[T]
	offset []int
	buf    []int
}

func (a *translatedAccess[T]) NumDimensions() int { return len(a.offset) }
func (a *translatedAccess[T]) Position(d int) int { return a.inner.Position(d) + a.offset[d] }

func (a *translatedAccess[T]) Localize(out []int) {
	a.inner.Localize(out)
	for d := range a.offset {
		out[d] += a.offset[d]
	}
}

func (a *translatedAccess[T]) Fwd(d int) { a.inner.Fwd(d) }
func (a *translatedAccess[T]) Bck(d int) { a.inner.Bck(d) }
func (a *translatedAccess[T]) Move(d, distance int) { a.inner.Move(d, distance) }
func (a *translatedAccess[T]) SetPositionAt(d, v int) { a.inner.SetPositionAt(d, v-a.offset[d]) }

func (a *translatedAccess[T]) SetPosition(pos []int) {
	for d := range a.offset {
		a.buf[d] = pos[d] - a.offset[d]
	}
	a.inner.SetPosition(a.buf)
}

func (a *translatedAccess[T]) Get() T { return a.inner.Get() }
func (a *translatedAccess[T]) Set(v T) { a.inner.Set(v) }

func (a *translatedAccess[T]) Copy() core.RandomAccess[T] {
	return &translatedAccess[T]{inner: a.inner.Copy(), offset: a.offset, buf: make([]int, len(a.offset))}
}

// ---------- iterable adaptation ----------

// Iterable returns rai as an IterableInterval: rai itself when it already
// iterates exactly its bounds, otherwise a flat-order interval view.
func Iterable[T any](rai core.RandomAccessibleInterval[T]) core.IterableInterval[T] {
	if ii, ok := rai.(core.IterableInterval[T]); ok && ii.Bounds().Equal(rai.Bounds()) {
		return ii
	}

	return &IntervalView[T]{src: rai, iv: rai.Bounds()}
}
