// SPDX-License-Identifier: MIT

package core

import (
	"fmt"
	"strings"
)

// EuclideanSpace is anything living in an N-dimensional coordinate space.
type EuclideanSpace interface {
	NumDimensions() int
}

// Localizable exposes an integer position.
type Localizable interface {
	EuclideanSpace
	// Position returns the coordinate along axis d.
	Position(d int) int
	// Localize writes all N coordinates into out (len(out) >= N).
	Localize(out []int)
}

// Positionable can be moved along integer coordinates.
// Relative moves (Fwd, Bck, Move) must be O(1) in every implementation.
type Positionable interface {
	EuclideanSpace
	Fwd(d int)
	Bck(d int)
	Move(d, distance int)
	SetPosition(pos []int)
	SetPositionAt(d, value int)
}

// RealLocalizable exposes a continuous position.
type RealLocalizable interface {
	EuclideanSpace
	RealPosition(d int) float64
	LocalizeReal(out []float64)
}

// RealPositionable can be moved to continuous coordinates.
type RealPositionable interface {
	EuclideanSpace
	SetRealPosition(pos []float64)
	SetRealPositionAt(d int, value float64)
}

// SetPositionFrom moves p to the current position of l, axis by axis.
// Both must share N; otherwise the call panics on the first missing axis.
// Complexity: O(N) calls to SetPositionAt.
func SetPositionFrom(p Positionable, l Localizable) {
	for d := 0; d < p.NumDimensions(); d++ {
		p.SetPositionAt(d, l.Position(d))
	}
}

// LocalizeReal writes an integer position as float64 coordinates.
func LocalizeReal(l Localizable, out []float64) {
	for d := 0; d < l.NumDimensions(); d++ {
		out[d] = float64(l.Position(d))
	}
}

// Point is a mutable N-dimensional integer position. It implements both
// Localizable and Positionable and is the plain "position" value passed
// between accessors.
type Point struct {
	pos []int // owned; never shared with callers
}

// Compile-time conformance.
var (
	_ Localizable  = (*Point)(nil)
	_ Positionable = (*Point)(nil)
	_ fmt.Stringer = (*Point)(nil)
)

// NewPoint returns the origin of an n-dimensional space. Panics if n <= 0.
func NewPoint(n int) *Point {
	if n <= 0 {
		panic("core: NewPoint: n must be > 0")
	}

	return &Point{pos: make([]int, n)}
}

// PointOf returns a point at the given coordinates (copied).
func PointOf(pos ...int) *Point {
	if len(pos) == 0 {
		panic("core: PointOf: no coordinates")
	}

	return &Point{pos: cloneInts(pos)}
}

// PointFrom snapshots the current position of l.
func PointFrom(l Localizable) *Point {
	p := NewPoint(l.NumDimensions())
	l.Localize(p.pos)

	return p
}

func (p *Point) NumDimensions() int { return len(p.pos) }
func (p *Point) Position(d int) int { return p.pos[d] }
func (p *Point) Localize(out []int) { copy(out, p.pos) }
func (p *Point) Fwd(d int) { p.pos[d]++ }
func (p *Point) Bck(d int) { p.pos[d]-- }
func (p *Point) Move(d, distance int) { p.pos[d] += distance }
func (p *Point) SetPositionAt(d, v int) { p.pos[d] = v }

// SetPosition copies pos; extra components are ignored.
func (p *Point) SetPosition(pos []int) { copy(p.pos, pos[:len(p.pos)]) }

// Coords returns a copy of the coordinates.
func (p *Point) Coords() []int { return cloneInts(p.pos) }

// Equal reports identical coordinates.
func (p *Point) Equal(o *Point) bool { return equalInts(p.pos, o.pos) }

// String renders "(x, y, ...)".
func (p *Point) String() string {
	parts := make([]string, len(p.pos))
	for i, v := range p.pos {
		parts[i] = fmt.Sprint(v)
	}

	return "(" + strings.Join(parts, ", ") + ")"
}
