// SPDX-License-Identifier: MIT

// Package img - ArrayImg: flat storage & O(1) accessors.
//
// Purpose:
//   - One contiguous buffer, offset = Σ pos[d]*steps[d] with steps[0] = 1.
//   - Safe checked access at the public surface (At/SetAt return errors);
//     accessors trade checks for speed, like Dense's flat-slice fast paths.
//
// Complexity quicksheet:
//   - NewArrayImg: O(size); RandomAccess moves: O(1); Cursor Fwd: O(1).

package img

import "github.com/katalvlaran/lvlimg/core"

// ---------- error context tags ----------

const (
	ctxNewArray = "NewArrayImg"
	ctxArrayAt  = "ArrayImg.At"
	ctxArraySet = "ArrayImg.SetAt"
)

// ArrayImg stores all elements in one flat slice, axis 0 fastest.
type ArrayImg[T any] struct {
	data   []T           // len == bounds.Size()
	bounds core.Interval // zero-min domain
	dims   []int         // per-axis extents
	steps  []int         // flat strides
}

// Compile-time conformance.
var _ core.Img[float32] = (*ArrayImg[float32])(nil)

// NewArrayImg allocates an image of the given extents filled with fill.
// Errors: core.ErrBadShape (wrapped) for empty or non-positive dims.
// Complexity: O(size) time and memory.
func NewArrayImg[T any](fill T, dims ...int) (*ArrayImg[T], error) {
	iv, err := core.NewIntervalFromDims(dims...)
	if err != nil {
		return nil, imgErrorf(ctxNewArray, err)
	}
	data := make([]T, iv.Size())
	for i := range data {
		data[i] = fill
	}

	return newArrayImg(data, iv), nil
}

// newArrayImg adopts data without copying; len(data) must equal iv.Size().
func newArrayImg[T any](data []T, iv core.Interval) *ArrayImg[T] {
	dims := iv.Dims()

	return &ArrayImg[T]{data: data, bounds: iv, dims: dims, steps: stepsFor(dims)}
}

func (a *ArrayImg[T]) NumDimensions() int { return len(a.dims) }
func (a *ArrayImg[T]) Bounds() core.Interval { return a.bounds }
func (a *ArrayImg[T]) Size() int { return len(a.data) }
func (a *ArrayImg[T]) Factory() core.Factory[T] { return ArrayFactory[T]{} }
func (a *ArrayImg[T]) IterationOrder() core.IterationOrder { return core.NewFlatOrder(a.bounds) }

// Dimension returns the extent along axis d.
func (a *ArrayImg[T]) Dimension(d int) int { return a.dims[d] }

// Data exposes the backing slice (shared, not copied). Collaborators use it
// to hand results to display code without a copy.
func (a *ArrayImg[T]) Data() []T { return a.data }

// At returns the element at pos.
// Errors: core.ErrDimensionMismatch, ErrOutOfBounds.
// Complexity: O(N).
func (a *ArrayImg[T]) At(pos ...int) (T, error) {
	idx, err := indexOf(ctxArrayAt, a.bounds, a.steps, pos)
	if err != nil {
		var zero T
		return zero, err
	}

	return a.data[idx], nil
}

// SetAt stores v at pos.
// Errors: core.ErrDimensionMismatch, ErrOutOfBounds.
func (a *ArrayImg[T]) SetAt(v T, pos ...int) error {
	idx, err := indexOf(ctxArraySet, a.bounds, a.steps, pos)
	if err != nil {
		return err
	}
	a.data[idx] = v

	return nil
}

// RandomAccess returns an accessor at the origin.
func (a *ArrayImg[T]) RandomAccess() core.RandomAccess[T] {
	return &arrayRandomAccess[T]{img: a, pos: make([]int, len(a.dims))}
}

// Cursor returns a flat cursor that derives positions from its index.
func (a *ArrayImg[T]) Cursor() core.Cursor[T] {
	return &arrayCursor[T]{img: a, index: -1, last: len(a.data) - 1}
}

// LocalizingCursor returns a flat cursor that tracks its position.
func (a *ArrayImg[T]) LocalizingCursor() core.Cursor[T] {
	return &arrayLocalizingCursor[T]{
		arrayCursor: arrayCursor[T]{img: a, index: -1, last: len(a.data) - 1},
		loc:         newFlatLocalizer(make([]int, len(a.dims)), a.dims),
	}
}

// ArrayFactory creates ArrayImg instances.
type ArrayFactory[T any] struct{}

// Create implements core.Factory.
func (ArrayFactory[T]) Create(fill T, dims ...int) (core.Img[T], error) {
	a, err := NewArrayImg(fill, dims...)
	if err != nil {
		return nil, err
	}

	return a, nil
}

// Name implements core.Factory.
func (ArrayFactory[T]) Name() string { return "array" }

// ---------- accessors ----------

// arrayRandomAccess keeps pos and the matching flat offset in sync.
type arrayRandomAccess[T any] struct {
	img    *ArrayImg[T]
	pos    []int
	offset int
}

func (r *arrayRandomAccess[T]) NumDimensions() int { return len(r.pos) }
func (r *arrayRandomAccess[T]) Position(d int) int { return r.pos[d] }
func (r *arrayRandomAccess[T]) Localize(out []int) { copy(out, r.pos) }

func (r *arrayRandomAccess[T]) Fwd(d int) {
	r.pos[d]++
	r.offset += r.img.steps[d]
}

func (r *arrayRandomAccess[T]) Bck(d int) {
	r.pos[d]--
	r.offset -= r.img.steps[d]
}

func (r *arrayRandomAccess[T]) Move(d, distance int) {
	r.pos[d] += distance
	r.offset += distance * r.img.steps[d]
}

func (r *arrayRandomAccess[T]) SetPositionAt(d, v int) {
	r.offset += (v - r.pos[d]) * r.img.steps[d]
	r.pos[d] = v
}

func (r *arrayRandomAccess[T]) SetPosition(pos []int) {
	for d := range r.pos {
		r.offset += (pos[d] - r.pos[d]) * r.img.steps[d]
		r.pos[d] = pos[d]
	}
}

func (r *arrayRandomAccess[T]) Get() T { return r.img.data[r.offset] }
func (r *arrayRandomAccess[T]) Set(v T) { r.img.data[r.offset] = v }

func (r *arrayRandomAccess[T]) Copy() core.RandomAccess[T] {
	return &arrayRandomAccess[T]{img: r.img, pos: cloneInts(r.pos), offset: r.offset}
}

// arrayCursor walks the flat index; Position is derived on demand.
type arrayCursor[T any] struct {
	img   *ArrayImg[T]
	index int
	last  int
}

func (c *arrayCursor[T]) NumDimensions() int { return len(c.img.dims) }
func (c *arrayCursor[T]) HasNext() bool { return c.index < c.last }

func (c *arrayCursor[T]) Fwd() {
	if c.index >= c.last {
		panic(panicExhausted)
	}
	c.index++
}

func (c *arrayCursor[T]) Next() T {
	c.Fwd()

	return c.img.data[c.index]
}

func (c *arrayCursor[T]) Jump(steps int) {
	if c.index+steps > c.last {
		panic(panicJumpPastEnd)
	}
	c.index += steps
}

func (c *arrayCursor[T]) Reset() { c.index = -1 }
func (c *arrayCursor[T]) Get() T { return c.img.data[c.index] }
func (c *arrayCursor[T]) Set(v T) { c.img.data[c.index] = v }

func (c *arrayCursor[T]) Position(d int) int {
	return positionAt(c.index, d, c.img.dims, c.img.steps)
}

func (c *arrayCursor[T]) Localize(out []int) { localizeIndex(c.index, c.img.dims, out) }

func (c *arrayCursor[T]) Copy() core.Cursor[T] {
	cp := *c

	return &cp
}

// arrayLocalizingCursor adds incremental position tracking.
type arrayLocalizingCursor[T any] struct {
	arrayCursor[T]
	loc flatLocalizer
}

func (c *arrayLocalizingCursor[T]) Fwd() {
	c.arrayCursor.Fwd()
	c.loc.inc()
}

func (c *arrayLocalizingCursor[T]) Next() T {
	c.Fwd()

	return c.img.data[c.index]
}

func (c *arrayLocalizingCursor[T]) Jump(steps int) {
	c.arrayCursor.Jump(steps)
	c.loc.setIndex(c.index)
}

func (c *arrayLocalizingCursor[T]) Reset() {
	c.arrayCursor.Reset()
	c.loc.reset()
}

func (c *arrayLocalizingCursor[T]) Position(d int) int { return c.loc.pos[d] }
func (c *arrayLocalizingCursor[T]) Localize(out []int) { copy(out, c.loc.pos) }

func (c *arrayLocalizingCursor[T]) Copy() core.Cursor[T] {
	return &arrayLocalizingCursor[T]{arrayCursor: c.arrayCursor, loc: c.loc.clone()}
}
