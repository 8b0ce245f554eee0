// SPDX-License-Identifier: MIT

// Package algorithms - order-aware pairwise traversal.
//
// Steps:
//  1. Validate: src and dst share N and every extent.
//  2. Decide: zip when the declared orders agree (or when forced), else
//     positional.
//  3. Walk: zip advances both cursors; positional moves a destination
//     RandomAccess, translated so that src.min lands on dst.min, to every
//     source cursor position.
//
// Complexity: O(size) for zip, O(size·N) for positional.

package algorithms

import (
	"fmt"

	"github.com/katalvlaran/lvlimg/core"
	"github.com/katalvlaran/lvlimg/views"
)

const ctxCopy = "Copy"

// Target is a destination that can be both iterated and randomly accessed.
// Every core.Img and every views.IntervalView qualifies.
type Target[T any] interface {
	core.RandomAccessibleInterval[T]
	core.IterableInterval[T]
}

// pairwise writes fn(sample) into dst for every coordinate of src.
func pairwise[S, D any](method string, src core.IterableInterval[S], dst Target[D], mode Traversal, fn func(S) D) error {
	if err := core.SameShape(src, dst); err != nil {
		return algErrorf(method, err)
	}
	same := core.SameIterationOrder(src.IterationOrder(), dst.IterationOrder())

	switch {
	case mode == TraversalZip && !same:
		return fmt.Errorf("%s: %v vs %v: %w", method, src.IterationOrder(), dst.IterationOrder(), ErrIncompatibleOrder)
	case mode == TraversalPositional || !same:
		return positional(method, src, dst, fn)
	default:
		zip(src, dst, fn)
		return nil
	}
}

func zip[S, D any](src core.IterableInterval[S], dst core.IterableInterval[D], fn func(S) D) {
	in, out := src.Cursor(), dst.Cursor()
	for in.HasNext() {
		v := in.Next()
		out.Fwd()
		out.Set(fn(v))
	}
}

func positional[S, D any](method string, src core.IterableInterval[S], dst Target[D], fn func(S) D) error {
	sb, db := src.Bounds(), dst.Bounds()
	offset := make([]int, sb.NumDimensions())
	for d := range offset {
		offset[d] = sb.Min(d) - db.Min(d)
	}
	tr, err := views.Translate[D](dst, offset...)
	if err != nil {
		return algErrorf(method, err)
	}
	ra := tr.RandomAccess()
	in := src.LocalizingCursor()
	for in.HasNext() {
		v := in.Next()
		core.SetPositionFrom(ra, in)
		ra.Set(fn(v))
	}

	return nil
}

// Copy writes every sample of src into dst at the same relative position.
// Errors: core.ErrDimensionMismatch, ErrIncompatibleOrder (forced zip).
// Complexity: O(size), O(size·N) on the positional path.
func Copy[T any](src core.IterableInterval[T], dst Target[T], opts ...Option) error {
	o := gatherOptions(defaultOptions(), opts...)

	return pairwise(ctxCopy, src, dst, o.traversal, func(v T) T { return v })
}
