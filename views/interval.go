// SPDX-License-Identifier: MIT

// Package views - IntervalView: bounded, iterable restriction of a source.
//
// Cursors are driven by a RandomAccess on the source and visit iv in flat
// order, so a view over any layout (cells included) declares FlatOrder.

package views

import "github.com/katalvlaran/lvlimg/core"

// IntervalView restricts a RandomAccessible to an Interval.
type IntervalView[T any] struct {
	src core.RandomAccessible[T]
	iv  core.Interval
}

var (
	_ core.RandomAccessibleInterval[int] = (*IntervalView[int])(nil)
	_ core.IterableInterval[int]         = (*IntervalView[int])(nil)
)

func (v *IntervalView[T]) NumDimensions() int { return v.iv.NumDimensions() }
func (v *IntervalView[T]) Bounds() core.Interval { return v.iv }
func (v *IntervalView[T]) Size() int { return v.iv.Size() }

// RandomAccess is the source accessor; positions are not clipped to iv.
func (v *IntervalView[T]) RandomAccess() core.RandomAccess[T] { return v.src.RandomAccess() }

func (v *IntervalView[T]) IterationOrder() core.IterationOrder { return core.NewFlatOrder(v.iv) }

// Cursor and LocalizingCursor are the same type: the underlying accessor
// always knows its position.
func (v *IntervalView[T]) Cursor() core.Cursor[T] { return v.newCursor() }
func (v *IntervalView[T]) LocalizingCursor() core.Cursor[T] { return v.newCursor() }

func (v *IntervalView[T]) newCursor() *intervalCursor[T] {
	return &intervalCursor[T]{
		ra:    v.src.RandomAccess(),
		min:   v.iv.Mins(),
		max:   v.iv.Maxs(),
		dims:  v.iv.Dims(),
		last:  v.iv.Size() - 1,
		index: -1,
		buf:   make([]int, v.iv.NumDimensions()),
	}
}

// intervalCursor walks [min, max] in flat order with relative moves.
type intervalCursor[T any] struct {
	ra    core.RandomAccess[T]
	min   []int
	max   []int
	dims  []int
	last  int
	index int
	buf   []int
}

func (c *intervalCursor[T]) NumDimensions() int { return len(c.min) }
func (c *intervalCursor[T]) Position(d int) int { return c.ra.Position(d) }
func (c *intervalCursor[T]) Localize(out []int) { c.ra.Localize(out) }
func (c *intervalCursor[T]) HasNext() bool { return c.index < c.last }

func (c *intervalCursor[T]) Fwd() {
	if c.index >= c.last {
		panic("views: Fwd on exhausted cursor")
	}
	c.index++
	if c.index == 0 {
		c.ra.SetPosition(c.min)
		return
	}
	c.ra.Fwd(0)
	for d := 0; d < len(c.dims)-1 && c.ra.Position(d) > c.max[d]; d++ {
		c.ra.Move(d, -c.dims[d])
		c.ra.Fwd(d + 1)
	}
}

func (c *intervalCursor[T]) Next() T {
	c.Fwd()

	return c.ra.Get()
}

func (c *intervalCursor[T]) Jump(steps int) {
	i := c.index + steps
	if i > c.last {
		panic("views: Jump past the last element")
	}
	c.index = i
	for d, n := range c.dims {
		c.buf[d] = c.min[d] + i%n
		i /= n
	}
	c.ra.SetPosition(c.buf)
}

func (c *intervalCursor[T]) Reset() { c.index = -1 }
func (c *intervalCursor[T]) Get() T { return c.ra.Get() }
func (c *intervalCursor[T]) Set(v T) { c.ra.Set(v) }

func (c *intervalCursor[T]) Copy() core.Cursor[T] {
	cp := *c
	cp.ra = c.ra.Copy()
	cp.buf = make([]int, len(c.buf))

	return &cp
}
