// SPDX-License-Identifier: MIT

// Package core - iteration-order descriptors.
//
// Two IterableIntervals may be zipped (traversed with two cursors in
// lock-step) only when their declared orders are structurally equal. The
// decision never reads element values.
//
// Orders are relative: a flat order over [20..79]x[20..59] equals a flat
// order over [0..59]x[0..39] because the k-th visited coordinate has the
// same offset from min in both.

package core

import "fmt"

// IterationOrder declares how an IterableInterval enumerates coordinates.
type IterationOrder interface {
	// SameOrder reports pointwise agreement of the two enumerations.
	SameOrder(other IterationOrder) bool
	fmt.Stringer
}

// FlatOrder enumerates coordinates with axis 0 varying fastest.
type FlatOrder struct {
	dims []int
}

// NewFlatOrder declares flat order over iv's extents.
func NewFlatOrder(iv Interval) FlatOrder { return FlatOrder{dims: iv.Dims()} }

// SameOrder is true for another FlatOrder over identical extents.
func (o FlatOrder) SameOrder(other IterationOrder) bool {
	f, ok := other.(FlatOrder)

	return ok && equalInts(o.dims, f.dims)
}

func (o FlatOrder) String() string { return fmt.Sprintf("flat%v", o.dims) }

// CellOrder enumerates cells in flat order over the cell grid and, inside
// each cell, samples in flat order over the (possibly clipped) cell.
type CellOrder struct {
	dims []int
	cell []int
}

// NewCellOrder declares cell order over iv's extents with the given cell extents.
func NewCellOrder(iv Interval, cell []int) CellOrder {
	return CellOrder{dims: iv.Dims(), cell: cloneInts(cell)}
}

// SameOrder is true for another CellOrder with identical extents and cell
// extents, and for a FlatOrder when the cells degenerate to flat order
// (every cell spans the whole image except along the last axis).
func (o CellOrder) SameOrder(other IterationOrder) bool {
	switch x := other.(type) {
	case CellOrder:
		return equalInts(o.dims, x.dims) && equalInts(o.cell, x.cell)
	case FlatOrder:
		return o.isFlat() && equalInts(o.dims, x.dims)
	default:
		return false
	}
}

func (o CellOrder) isFlat() bool {
	for d := 0; d < len(o.dims)-1; d++ {
		if o.cell[d] < o.dims[d] {
			return false
		}
	}

	return true
}

func (o CellOrder) String() string { return fmt.Sprintf("cell%v/%v", o.dims, o.cell) }

// SameIterationOrder is the capability check used by pairwise algorithms.
func SameIterationOrder(a, b IterationOrder) bool {
	if a == nil || b == nil {
		return false
	}

	return a.SameOrder(b) || b.SameOrder(a)
}
