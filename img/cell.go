// SPDX-License-Identifier: MIT

// Package img - CellImg: storage tiled into fixed-size cells.
//
// Purpose:
//   - Every cell is a small flat array; edge cells are clipped to the image.
//   - Cursors visit cells in flat order over the cell grid and samples in
//     flat order inside each cell, which is NOT flat order over the image
//     unless cells span whole rows. Pairwise algorithms must check
//     IterationOrder before zipping with an ArrayImg.
//
// Complexity quicksheet:
//   - NewCellImg: O(size + cells); RandomAccess moves: O(1) inside a cell,
//     O(N) when crossing a cell border; Cursor Fwd: O(1).

package img

import (
	"fmt"

	"github.com/katalvlaran/lvlimg/core"
)

const (
	ctxNewCell  = "NewCellImg"
	ctxCellAt   = "CellImg.At"
	ctxCellSet  = "CellImg.SetAt"
	ctxCellSize = "CellFactory.Create"
)

// DefaultCellSize is the per-axis cell extent used by NewCellFactory().
const DefaultCellSize = 16

// cell is one flat tile of a CellImg.
type cell[T any] struct {
	min   []int
	dims  []int
	steps []int
	data  []T
}

// CellImg stores its elements in a grid of cells.
type CellImg[T any] struct {
	cells     []cell[T]
	bounds    core.Interval
	dims      []int
	cellDims  []int // clipped to dims
	gridDims  []int // number of cells per axis
	gridSteps []int
	size      int
}

var _ core.Img[float64] = (*CellImg[float64])(nil)

// NewCellImg allocates a cell image. cellDims holds one extent per axis or a
// single extent applied to every axis; extents larger than the image are
// clipped.
// Errors: core.ErrBadShape, core.ErrDimensionMismatch (wrapped).
func NewCellImg[T any](fill T, cellDims []int, dims ...int) (*CellImg[T], error) {
	iv, err := core.NewIntervalFromDims(dims...)
	if err != nil {
		return nil, imgErrorf(ctxNewCell, err)
	}
	cd, err := resolveCellDims(cellDims, len(dims))
	if err != nil {
		return nil, imgErrorf(ctxNewCell, err)
	}
	for d := range cd {
		cd[d] = min(cd[d], dims[d])
	}

	c := &CellImg[T]{bounds: iv, dims: iv.Dims(), cellDims: cd, size: iv.Size()}
	c.gridDims = make([]int, len(dims))
	for d := range dims {
		c.gridDims[d] = (dims[d] + cd[d] - 1) / cd[d]
	}
	c.gridSteps = stepsFor(c.gridDims)
	c.cells = make([]cell[T], product(c.gridDims))

	grid := make([]int, len(dims))
	for i := range c.cells {
		localizeIndex(i, c.gridDims, grid)
		cmin := make([]int, len(dims))
		cdims := make([]int, len(dims))
		for d := range dims {
			cmin[d] = grid[d] * cd[d]
			cdims[d] = min(cd[d], dims[d]-cmin[d])
		}
		data := make([]T, product(cdims))
		for j := range data {
			data[j] = fill
		}
		c.cells[i] = cell[T]{min: cmin, dims: cdims, steps: stepsFor(cdims), data: data}
	}

	return c, nil
}

// resolveCellDims broadcasts a single extent and validates positivity.
func resolveCellDims(cellDims []int, n int) ([]int, error) {
	switch len(cellDims) {
	case 1:
		out := make([]int, n)
		for d := range out {
			out[d] = cellDims[0]
		}
		cellDims = out
	case n:
		cellDims = cloneInts(cellDims)
	default:
		return nil, fmt.Errorf("%d cell extents for %d axes: %w", len(cellDims), n, core.ErrDimensionMismatch)
	}
	for d, v := range cellDims {
		if v <= 0 {
			return nil, fmt.Errorf("cell extent %d on axis %d: %w", v, d, core.ErrBadShape)
		}
	}

	return cellDims, nil
}

func (c *CellImg[T]) NumDimensions() int { return len(c.dims) }
func (c *CellImg[T]) Bounds() core.Interval { return c.bounds }
func (c *CellImg[T]) Size() int { return c.size }
func (c *CellImg[T]) Factory() core.Factory[T] { return CellFactory[T]{cell: cloneInts(c.cellDims)} }

// IterationOrder declares cell order over the clipped cell extents.
func (c *CellImg[T]) IterationOrder() core.IterationOrder {
	return core.NewCellOrder(c.bounds, c.cellDims)
}

// CellDims returns the effective (clipped) cell extents.
func (c *CellImg[T]) CellDims() []int { return cloneInts(c.cellDims) }

// NumCells returns the number of cells in the grid.
func (c *CellImg[T]) NumCells() int { return len(c.cells) }

// locate maps an in-bounds position to (cell index, offset inside the cell).
func (c *CellImg[T]) locate(pos []int) (ci, off int) {
	for d, p := range pos {
		ci += (p / c.cellDims[d]) * c.gridSteps[d]
	}
	cl := &c.cells[ci]
	for d, p := range pos {
		off += (p - cl.min[d]) * cl.steps[d]
	}

	return ci, off
}

// At returns the element at pos.
// Errors: core.ErrDimensionMismatch, ErrOutOfBounds.
func (c *CellImg[T]) At(pos ...int) (T, error) {
	if err := c.check(ctxCellAt, pos); err != nil {
		var zero T
		return zero, err
	}
	ci, off := c.locate(pos)

	return c.cells[ci].data[off], nil
}

// SetAt stores v at pos.
// Errors: core.ErrDimensionMismatch, ErrOutOfBounds.
func (c *CellImg[T]) SetAt(v T, pos ...int) error {
	if err := c.check(ctxCellSet, pos); err != nil {
		return err
	}
	ci, off := c.locate(pos)
	c.cells[ci].data[off] = v

	return nil
}

func (c *CellImg[T]) check(method string, pos []int) error {
	if err := core.ValidatePosition(pos, len(c.dims)); err != nil {
		return imgErrorf(method, err)
	}
	if !c.bounds.Contains(pos) {
		return fmt.Errorf("%s%v: %w", method, pos, ErrOutOfBounds)
	}

	return nil
}

func (c *CellImg[T]) RandomAccess() core.RandomAccess[T] {
	r := &cellRandomAccess[T]{img: c, pos: make([]int, len(c.dims))}
	r.update()

	return r
}

func (c *CellImg[T]) Cursor() core.Cursor[T] {
	return &cellCursor[T]{img: c, index: -1, offset: -1}
}

func (c *CellImg[T]) LocalizingCursor() core.Cursor[T] {
	lc := &cellLocalizingCursor[T]{cellCursor: cellCursor[T]{img: c, index: -1, offset: -1}}
	lc.enterCell()

	return lc
}

// CellFactory creates CellImg instances with a fixed cell size.
type CellFactory[T any] struct {
	cell []int
}

// NewCellFactory returns a factory for cells of the given extents: none
// means DefaultCellSize on every axis, one value is broadcast.
// Panics on a non-positive extent (option-style programmer error).
func NewCellFactory[T any](cellSize ...int) CellFactory[T] {
	if len(cellSize) == 0 {
		cellSize = []int{DefaultCellSize}
	}
	for _, v := range cellSize {
		if v <= 0 {
			panic(fmt.Sprintf("img: NewCellFactory(%v): cell extents must be > 0", cellSize))
		}
	}

	return CellFactory[T]{cell: cloneInts(cellSize)}
}

// Create implements core.Factory.
func (f CellFactory[T]) Create(fill T, dims ...int) (core.Img[T], error) {
	cell := f.cell
	if len(cell) == 0 {
		cell = []int{DefaultCellSize}
	}
	c, err := NewCellImg(fill, cell, dims...)
	if err != nil {
		return nil, imgErrorf(ctxCellSize, err)
	}

	return c, nil
}

// Name implements core.Factory.
func (f CellFactory[T]) Name() string { return "cell" }

// ---------- accessors ----------

// cellRandomAccess tracks the current cell and the offset inside it. A
// position outside the image leaves it without a cell (ci == -1) until it
// moves back in.
type cellRandomAccess[T any] struct {
	img    *CellImg[T]
	pos    []int
	ci     int
	offset int
}

func (r *cellRandomAccess[T]) NumDimensions() int { return len(r.pos) }
func (r *cellRandomAccess[T]) Position(d int) int { return r.pos[d] }
func (r *cellRandomAccess[T]) Localize(out []int) { copy(out, r.pos) }

// update relocates the accessor after a cell border was crossed.
func (r *cellRandomAccess[T]) update() {
	if !r.img.bounds.Contains(r.pos) {
		r.ci = -1
		return
	}
	r.ci, r.offset = r.img.locate(r.pos)
}

func (r *cellRandomAccess[T]) Move(d, distance int) {
	r.pos[d] += distance
	if r.ci >= 0 {
		cl := &r.img.cells[r.ci]
		if rel := r.pos[d] - cl.min[d]; rel >= 0 && rel < cl.dims[d] {
			r.offset += distance * cl.steps[d]
			return
		}
	}
	r.update()
}

func (r *cellRandomAccess[T]) Fwd(d int) { r.Move(d, 1) }
func (r *cellRandomAccess[T]) Bck(d int) { r.Move(d, -1) }
func (r *cellRandomAccess[T]) SetPositionAt(d, v int) { r.Move(d, v-r.pos[d]) }

func (r *cellRandomAccess[T]) SetPosition(pos []int) {
	copy(r.pos, pos)
	r.update()
}

func (r *cellRandomAccess[T]) Get() T {
	if r.ci < 0 {
		panic(panicCellOutside)
	}

	return r.img.cells[r.ci].data[r.offset]
}

func (r *cellRandomAccess[T]) Set(v T) {
	if r.ci < 0 {
		panic(panicCellOutside)
	}
	r.img.cells[r.ci].data[r.offset] = v
}

func (r *cellRandomAccess[T]) Copy() core.RandomAccess[T] {
	return &cellRandomAccess[T]{img: r.img, pos: cloneInts(r.pos), ci: r.ci, offset: r.offset}
}

// cellCursor walks cells in grid order. index counts visited samples.
type cellCursor[T any] struct {
	img    *CellImg[T]
	index  int
	ci     int
	offset int
}

func (c *cellCursor[T]) NumDimensions() int { return len(c.img.dims) }
func (c *cellCursor[T]) HasNext() bool { return c.index < c.img.size-1 }

// advance moves one sample and reports whether a new cell was entered.
func (c *cellCursor[T]) advance() bool {
	if !c.HasNext() {
		panic(panicExhausted)
	}
	c.index++
	c.offset++
	if c.offset == len(c.img.cells[c.ci].data) {
		c.ci++
		c.offset = 0
		return true
	}

	return false
}

func (c *cellCursor[T]) Fwd() { c.advance() }

func (c *cellCursor[T]) Next() T {
	c.advance()

	return c.Get()
}

// jump skips whole cells where possible and reports whether the cell changed.
func (c *cellCursor[T]) jump(steps int) bool {
	if c.index+steps >= c.img.size {
		panic(panicJumpPastEnd)
	}
	c.index += steps
	changed := false
	for {
		left := len(c.img.cells[c.ci].data) - 1 - c.offset
		if steps <= left {
			c.offset += steps
			return changed
		}
		steps -= left + 1
		c.ci++
		c.offset = 0
		changed = true
	}
}

func (c *cellCursor[T]) Jump(steps int) { c.jump(steps) }

func (c *cellCursor[T]) Reset() { c.index, c.ci, c.offset = -1, 0, -1 }
func (c *cellCursor[T]) Get() T { return c.img.cells[c.ci].data[c.offset] }
func (c *cellCursor[T]) Set(v T) { c.img.cells[c.ci].data[c.offset] = v }

func (c *cellCursor[T]) Position(d int) int {
	cl := &c.img.cells[c.ci]

	return cl.min[d] + positionAt(c.offset, d, cl.dims, cl.steps)
}

func (c *cellCursor[T]) Localize(out []int) {
	cl := &c.img.cells[c.ci]
	localizeIndex(c.offset, cl.dims, out)
	for d := range out {
		out[d] += cl.min[d]
	}
}

func (c *cellCursor[T]) Copy() core.Cursor[T] {
	cp := *c

	return &cp
}

// cellLocalizingCursor keeps a flatLocalizer scoped to the current cell.
type cellLocalizingCursor[T any] struct {
	cellCursor[T]
	loc flatLocalizer
}

// enterCell rebinds the localizer to the current cell, one step before its
// first sample.
func (c *cellLocalizingCursor[T]) enterCell() {
	cl := &c.img.cells[c.ci]
	c.loc = newFlatLocalizer(cl.min, cl.dims)
}

func (c *cellLocalizingCursor[T]) Fwd() {
	if c.advance() {
		c.enterCell()
	}
	c.loc.inc()
}

func (c *cellLocalizingCursor[T]) Next() T {
	c.Fwd()

	return c.Get()
}

func (c *cellLocalizingCursor[T]) Jump(steps int) {
	if c.jump(steps) {
		c.enterCell()
	}
	c.loc.setIndex(c.offset)
}

func (c *cellLocalizingCursor[T]) Reset() {
	c.cellCursor.Reset()
	c.enterCell()
}

func (c *cellLocalizingCursor[T]) Position(d int) int { return c.loc.pos[d] }
func (c *cellLocalizingCursor[T]) Localize(out []int) { copy(out, c.loc.pos) }

func (c *cellLocalizingCursor[T]) Copy() core.Cursor[T] {
	return &cellLocalizingCursor[T]{cellCursor: c.cellCursor, loc: c.loc.clone()}
}
