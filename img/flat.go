// SPDX-License-Identifier: MIT

package img

import (
	"fmt"

	"github.com/katalvlaran/lvlimg/core"
)

// stepsFor returns flat strides with axis 0 fastest: steps[0]=1,
// steps[d]=steps[d-1]*dims[d-1].
func stepsFor(dims []int) []int {
	steps := make([]int, len(dims))
	steps[0] = 1
	for d := 1; d < len(dims); d++ {
		steps[d] = steps[d-1] * dims[d-1]
	}

	return steps
}

// product multiplies all extents (1 for an empty slice).
func product(dims []int) int {
	n := 1
	for _, v := range dims {
		n *= v
	}

	return n
}

// indexOf maps a zero-min position to its flat index, or fails with
// ErrOutOfBounds for a position outside iv.
func indexOf(method string, iv core.Interval, steps []int, pos []int) (int, error) {
	if err := core.ValidatePosition(pos, iv.NumDimensions()); err != nil {
		return 0, imgErrorf(method, err)
	}
	if !iv.Contains(pos) {
		return 0, fmt.Errorf("%s%v: %w", method, pos, ErrOutOfBounds)
	}
	idx := 0
	for d, p := range pos {
		idx += p * steps[d]
	}

	return idx, nil
}

// flatLocalizer tracks a position enumerated in flat order over dims,
// offset by min. Used by every localizing cursor.
type flatLocalizer struct {
	min  []int
	pos  []int
	dims []int
}

func newFlatLocalizer(min, dims []int) flatLocalizer {
	l := flatLocalizer{min: min, pos: make([]int, len(dims)), dims: dims}
	l.reset()

	return l
}

// reset places the position one step before the first coordinate.
func (l *flatLocalizer) reset() {
	copy(l.pos, l.min)
	l.pos[0]--
}

// inc advances one coordinate with carry into higher axes.
func (l *flatLocalizer) inc() {
	l.pos[0]++
	for d := 0; d < len(l.dims)-1 && l.pos[d] == l.min[d]+l.dims[d]; d++ {
		l.pos[d] = l.min[d]
		l.pos[d+1]++
	}
}

// setIndex positions at the i-th coordinate in flat order.
func (l *flatLocalizer) setIndex(i int) {
	for d, n := range l.dims {
		l.pos[d] = l.min[d] + i%n
		i /= n
	}
}

func (l *flatLocalizer) clone() flatLocalizer {
	c := flatLocalizer{min: l.min, pos: make([]int, len(l.pos)), dims: l.dims}
	copy(c.pos, l.pos)

	return c
}

// positionAt returns axis d of the i-th coordinate in flat order.
func positionAt(i int, d int, dims, steps []int) int {
	return (i / steps[d]) % dims[d]
}

// localizeIndex writes all axes of the i-th flat coordinate.
func localizeIndex(i int, dims []int, out []int) {
	for d, n := range dims {
		out[d] = i % n
		i /= n
	}
}

func cloneInts(s []int) []int {
	out := make([]int, len(s))
	copy(out, s)

	return out
}
