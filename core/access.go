// SPDX-License-Identifier: MIT

// Package core - accessor contracts.
//
// Purpose:
//   - Cursor: sequential, single-owner traversal in a declared order.
//   - RandomAccess: single-owner accessor movable to any coordinate.
//   - RealRandomAccess: continuous-coordinate sampler (float64 result).
//   - RandomAccessible / IterableInterval / Img: the sources that hand
//     out accessors.
//
// Accessors are borrows: they stay valid as long as their source does and
// never copy element buffers.

package core

// Sampler reads and writes the element an accessor currently points at.
// Set through an accessor that cannot store (e.g. constant out-of-bounds
// value) is discarded.
type Sampler[T any] interface {
	Get() T
	Set(v T)
}

// RandomAccess is a repositionable accessor. Get at a coordinate outside
// the source's domain is undefined unless the source is an extended view.
type RandomAccess[T any] interface {
	Localizable
	Positionable
	Sampler[T]
	// Copy returns an independent accessor at the same position.
	Copy() RandomAccess[T]
}

// Cursor iterates every coordinate of an IterableInterval exactly once.
// Fwd when HasNext is false panics.
type Cursor[T any] interface {
	Localizable
	Sampler[T]
	HasNext() bool
	Fwd()
	// Next is Fwd followed by Get.
	Next() T
	// Reset returns the cursor to the NotStarted state.
	Reset()
	// Jump advances by steps positions (steps >= 0).
	Jump(steps int)
	Copy() Cursor[T]
}

// RandomAccessible hands out RandomAccess instances; it may be unbounded.
type RandomAccessible[T any] interface {
	EuclideanSpace
	RandomAccess() RandomAccess[T]
}

// RandomAccessibleInterval is a RandomAccessible with a declared domain.
type RandomAccessibleInterval[T any] interface {
	RandomAccessible[T]
	Bounded
}

// IterableInterval hands out cursors over its Bounds in IterationOrder.
type IterableInterval[T any] interface {
	EuclideanSpace
	Bounded
	// Cursor may compute Position on demand (cheap Fwd, O(N) Localize).
	Cursor() Cursor[T]
	// LocalizingCursor tracks its position incrementally (cheap Localize).
	LocalizingCursor() Cursor[T]
	// Size is the number of coordinates a cursor visits.
	Size() int
	IterationOrder() IterationOrder
}

// Img is an owning storage backend: random access and iteration over the
// same zero-min domain, plus the factory that created it.
type Img[T any] interface {
	RandomAccessibleInterval[T]
	IterableInterval[T]
	Factory() Factory[T]
}

// Factory allocates images of one storage layout.
type Factory[T any] interface {
	// Create allocates a zero-min image of the given extents filled with fill.
	// Errors: ErrBadShape for empty or non-positive dims.
	Create(fill T, dims ...int) (Img[T], error)
	// Name identifies the layout ("array", "planar", "cell").
	Name() string
}

// RealRandomAccess samples a source at continuous coordinates.
type RealRandomAccess interface {
	RealLocalizable
	RealPositionable
	Get() float64
	Copy() RealRandomAccess
}

// RealRandomAccessible hands out RealRandomAccess instances (unbounded).
type RealRandomAccessible interface {
	EuclideanSpace
	RealRandomAccess() RealRandomAccess
}

// FirstElement returns the first sample in iteration order.
func FirstElement[T any](ii IterableInterval[T]) T {
	c := ii.Cursor()

	return c.Next()
}

// CreateLike allocates an image with the same extents as b through f.
func CreateLike[T any](f Factory[T], b Bounded, fill T) (Img[T], error) {
	return f.Create(fill, b.Bounds().Dims()...)
}
