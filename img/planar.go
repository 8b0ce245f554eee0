// SPDX-License-Identifier: MIT

// Package img - PlanarImg: one slice per 2-D plane.
//
// Purpose:
//   - Axes 0 and 1 span a plane; every combination of the remaining axes
//     selects one plane. This is how display collaborators hand over
//     multi-channel or z-stack data without interleaving.
//   - Iteration order is identical to ArrayImg (flat), so Array/Planar pairs
//     zip without a positional fallback.
//
// Complexity quicksheet:
//   - NewPlanarImg: O(size); RandomAccess moves: O(1); Cursor Fwd: O(1).

package img

import "github.com/katalvlaran/lvlimg/core"

const (
	ctxNewPlanar = "NewPlanarImg"
	ctxPlanarAt  = "PlanarImg.At"
	ctxPlanarSet = "PlanarImg.SetAt"
)

// PlanarImg stores each plane over axes 0 (and 1) in its own slice.
type PlanarImg[T any] struct {
	planes     [][]T
	bounds     core.Interval
	dims       []int
	steps      []int // flat strides, used for derived positions
	planeSteps []int // plane-index stride per axis (0 for axes 0 and 1)
	planeSize  int
}

var _ core.Img[uint8] = (*PlanarImg[uint8])(nil)

// NewPlanarImg allocates a planar image filled with fill.
// Errors: core.ErrBadShape (wrapped).
func NewPlanarImg[T any](fill T, dims ...int) (*PlanarImg[T], error) {
	iv, err := core.NewIntervalFromDims(dims...)
	if err != nil {
		return nil, imgErrorf(ctxNewPlanar, err)
	}
	planeSize, numPlanes := planeLayout(iv.Dims())
	planes := make([][]T, numPlanes)
	for p := range planes {
		plane := make([]T, planeSize)
		for i := range plane {
			plane[i] = fill
		}
		planes[p] = plane
	}

	return newPlanarImg(planes, iv), nil
}

// planeLayout splits dims into the per-plane size and the plane count.
func planeLayout(dims []int) (planeSize, numPlanes int) {
	if len(dims) == 1 {
		return dims[0], 1
	}

	return dims[0] * dims[1], product(dims[2:])
}

func newPlanarImg[T any](planes [][]T, iv core.Interval) *PlanarImg[T] {
	dims := iv.Dims()
	planeSize, _ := planeLayout(dims)
	planeSteps := make([]int, len(dims))
	stride := 1
	for d := 2; d < len(dims); d++ {
		planeSteps[d] = stride
		stride *= dims[d]
	}

	return &PlanarImg[T]{
		planes:     planes,
		bounds:     iv,
		dims:       dims,
		steps:      stepsFor(dims),
		planeSteps: planeSteps,
		planeSize:  planeSize,
	}
}

func (p *PlanarImg[T]) NumDimensions() int { return len(p.dims) }
func (p *PlanarImg[T]) Bounds() core.Interval { return p.bounds }
func (p *PlanarImg[T]) Size() int { return p.planeSize * len(p.planes) }
func (p *PlanarImg[T]) Factory() core.Factory[T] { return PlanarFactory[T]{} }
func (p *PlanarImg[T]) IterationOrder() core.IterationOrder { return core.NewFlatOrder(p.bounds) }

// NumPlanes returns the number of 2-D planes.
func (p *PlanarImg[T]) NumPlanes() int { return len(p.planes) }

// Plane returns plane i (shared, not copied).
func (p *PlanarImg[T]) Plane(i int) []T { return p.planes[i] }

// split maps a validated position to (plane, offset).
func (p *PlanarImg[T]) split(pos []int) (plane, offset int) {
	for d, v := range pos {
		if d < 2 {
			offset += v * p.steps[d]
		} else {
			plane += v * p.planeSteps[d]
		}
	}

	return plane, offset
}

// At returns the element at pos.
// Errors: core.ErrDimensionMismatch, ErrOutOfBounds.
func (p *PlanarImg[T]) At(pos ...int) (T, error) {
	if _, err := indexOf(ctxPlanarAt, p.bounds, p.steps, pos); err != nil {
		var zero T
		return zero, err
	}
	plane, off := p.split(pos)

	return p.planes[plane][off], nil
}

// SetAt stores v at pos.
// Errors: core.ErrDimensionMismatch, ErrOutOfBounds.
func (p *PlanarImg[T]) SetAt(v T, pos ...int) error {
	if _, err := indexOf(ctxPlanarSet, p.bounds, p.steps, pos); err != nil {
		return err
	}
	plane, off := p.split(pos)
	p.planes[plane][off] = v

	return nil
}

func (p *PlanarImg[T]) RandomAccess() core.RandomAccess[T] {
	return &planarRandomAccess[T]{img: p, pos: make([]int, len(p.dims))}
}

func (p *PlanarImg[T]) Cursor() core.Cursor[T] {
	return &planarCursor[T]{img: p, offset: -1}
}

func (p *PlanarImg[T]) LocalizingCursor() core.Cursor[T] {
	return &planarLocalizingCursor[T]{
		planarCursor: planarCursor[T]{img: p, offset: -1},
		loc:          newFlatLocalizer(make([]int, len(p.dims)), p.dims),
	}
}

// PlanarFactory creates PlanarImg instances.
type PlanarFactory[T any] struct{}

// Create implements core.Factory.
func (PlanarFactory[T]) Create(fill T, dims ...int) (core.Img[T], error) {
	p, err := NewPlanarImg(fill, dims...)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// Name implements core.Factory.
func (PlanarFactory[T]) Name() string { return "planar" }

// ---------- accessors ----------

type planarRandomAccess[T any] struct {
	img    *PlanarImg[T]
	pos    []int
	plane  int
	offset int
}

func (r *planarRandomAccess[T]) NumDimensions() int { return len(r.pos) }
func (r *planarRandomAccess[T]) Position(d int) int { return r.pos[d] }
func (r *planarRandomAccess[T]) Localize(out []int) { copy(out, r.pos) }

func (r *planarRandomAccess[T]) Move(d, distance int) {
	r.pos[d] += distance
	if d < 2 {
		r.offset += distance * r.img.steps[d]
	} else {
		r.plane += distance * r.img.planeSteps[d]
	}
}

func (r *planarRandomAccess[T]) Fwd(d int) { r.Move(d, 1) }
func (r *planarRandomAccess[T]) Bck(d int) { r.Move(d, -1) }
func (r *planarRandomAccess[T]) SetPositionAt(d, v int) { r.Move(d, v-r.pos[d]) }

func (r *planarRandomAccess[T]) SetPosition(pos []int) {
	for d := range r.pos {
		r.Move(d, pos[d]-r.pos[d])
	}
}

func (r *planarRandomAccess[T]) Get() T { return r.img.planes[r.plane][r.offset] }
func (r *planarRandomAccess[T]) Set(v T) { r.img.planes[r.plane][r.offset] = v }

func (r *planarRandomAccess[T]) Copy() core.RandomAccess[T] {
	return &planarRandomAccess[T]{img: r.img, pos: cloneInts(r.pos), plane: r.plane, offset: r.offset}
}

// planarCursor walks plane by plane; offset -1 in plane 0 is NotStarted.
type planarCursor[T any] struct {
	img    *PlanarImg[T]
	plane  int
	offset int
}

func (c *planarCursor[T]) index() int { return c.plane*c.img.planeSize + c.offset }
func (c *planarCursor[T]) NumDimensions() int { return len(c.img.dims) }
func (c *planarCursor[T]) HasNext() bool { return c.index() < c.img.Size()-1 }

func (c *planarCursor[T]) Fwd() {
	if !c.HasNext() {
		panic(panicExhausted)
	}
	c.offset++
	if c.offset == c.img.planeSize {
		c.offset = 0
		c.plane++
	}
}

func (c *planarCursor[T]) Next() T {
	c.Fwd()

	return c.Get()
}

func (c *planarCursor[T]) Jump(steps int) {
	i := c.index() + steps
	if i >= c.img.Size() {
		panic(panicJumpPastEnd)
	}
	c.plane, c.offset = i/c.img.planeSize, i%c.img.planeSize
}

func (c *planarCursor[T]) Reset() { c.plane, c.offset = 0, -1 }
func (c *planarCursor[T]) Get() T { return c.img.planes[c.plane][c.offset] }
func (c *planarCursor[T]) Set(v T) { c.img.planes[c.plane][c.offset] = v }

func (c *planarCursor[T]) Position(d int) int {
	return positionAt(c.index(), d, c.img.dims, c.img.steps)
}

func (c *planarCursor[T]) Localize(out []int) { localizeIndex(c.index(), c.img.dims, out) }

func (c *planarCursor[T]) Copy() core.Cursor[T] {
	cp := *c

	return &cp
}

type planarLocalizingCursor[T any] struct {
	planarCursor[T]
	loc flatLocalizer
}

func (c *planarLocalizingCursor[T]) Fwd() {
	c.planarCursor.Fwd()
	c.loc.inc()
}

func (c *planarLocalizingCursor[T]) Next() T {
	c.Fwd()

	return c.Get()
}

func (c *planarLocalizingCursor[T]) Jump(steps int) {
	c.planarCursor.Jump(steps)
	c.loc.setIndex(c.index())
}

func (c *planarLocalizingCursor[T]) Reset() {
	c.planarCursor.Reset()
	c.loc.reset()
}

func (c *planarLocalizingCursor[T]) Position(d int) int { return c.loc.pos[d] }
func (c *planarLocalizingCursor[T]) Localize(out []int) { copy(out, c.loc.pos) }

func (c *planarLocalizingCursor[T]) Copy() core.Cursor[T] {
	return &planarLocalizingCursor[T]{planarCursor: c.planarCursor, loc: c.loc.clone()}
}
