// SPDX-License-Identifier: MIT

// Package interpolation - continuous samplers over discrete sources.
//
// Complexity quicksheet:
//   - NLinear Get: O(2^N) samples, O(2^N) relative moves.
//   - NearestNeighbor Get: O(N).

package interpolation

import (
	"math"

	"github.com/katalvlaran/lvlimg/core"
)

// Factory builds a RealRandomAccess over a discrete, usually extended,
// source. The source must be defined wherever the sampler may land; wrap
// bounded images with an extension policy first.
type Factory[T core.Real] interface {
	Create(src core.RandomAccessible[T]) core.RealRandomAccess
}

// NLinear interpolates linearly along every axis.
type NLinear[T core.Real] struct{}

// Create implements Factory.
func (NLinear[T]) Create(src core.RandomAccessible[T]) core.RealRandomAccess {
	n := src.NumDimensions()

	return &nLinear[T]{
		sampler: newSampler(n),
		ra:      src.RandomAccess(),
		floor:   make([]int, n),
		frac:    make([]float64, n),
	}
}

// NearestNeighbor samples the closest discrete coordinate, rounding .5 up.
type NearestNeighbor[T core.Real] struct{}

// Create implements Factory.
func (NearestNeighbor[T]) Create(src core.RandomAccessible[T]) core.RealRandomAccess {
	n := src.NumDimensions()

	return &nearest[T]{sampler: newSampler(n), ra: src.RandomAccess(), at: make([]int, n)}
}

// sampler holds the continuous position shared by both interpolators.
type sampler struct {
	pos []float64
}

func newSampler(n int) sampler { return sampler{pos: make([]float64, n)} }

func (s *sampler) NumDimensions() int { return len(s.pos) }
func (s *sampler) RealPosition(d int) float64 { return s.pos[d] }
func (s *sampler) LocalizeReal(out []float64) { copy(out, s.pos) }
func (s *sampler) SetRealPosition(pos []float64) { copy(s.pos, pos[:len(s.pos)]) }
func (s *sampler) SetRealPositionAt(d int, v float64) { s.pos[d] = v }

func (s sampler) clone() sampler {
	return sampler{pos: append([]float64(nil), s.pos...)}
}

// ---------- N-linear ----------

type nLinear[T core.Real] struct {
	sampler
	ra    core.RandomAccess[T]
	floor []int
	frac  []float64
}

// Get blends the 2^N neighbours of the current position. A coordinate with
// zero fractional part reads one sample only, so integer positions return
// the discrete value unchanged.
func (l *nLinear[T]) Get() float64 {
	for d, x := range l.pos {
		f := math.Floor(x)
		l.floor[d] = int(f)
		l.frac[d] = x - f
	}
	l.ra.SetPosition(l.floor)

	return l.reduce(len(l.pos) - 1)
}

// reduce interpolates the (d+1)-dimensional hypercube anchored at the
// current accessor position by interpolating along axis d between two
// d-dimensional reductions.
func (l *nLinear[T]) reduce(d int) float64 {
	if d < 0 {
		return core.ToReal(l.ra.Get())
	}
	a := l.reduce(d - 1)
	t := l.frac[d]
	if t == 0 {
		return a
	}
	l.ra.Fwd(d)
	b := l.reduce(d - 1)
	l.ra.Bck(d)

	return a + t*(b-a)
}

func (l *nLinear[T]) Copy() core.RealRandomAccess {
	return &nLinear[T]{
		sampler: l.sampler.clone(),
		ra:      l.ra.Copy(),
		floor:   make([]int, len(l.floor)),
		frac:    make([]float64, len(l.frac)),
	}
}

// ---------- nearest neighbour ----------

type nearest[T core.Real] struct {
	sampler
	ra core.RandomAccess[T]
	at []int
}

func (n *nearest[T]) Get() float64 {
	for d, x := range n.pos {
		n.at[d] = int(math.Floor(x + 0.5))
	}
	n.ra.SetPosition(n.at)

	return core.ToReal(n.ra.Get())
}

func (n *nearest[T]) Copy() core.RealRandomAccess {
	return &nearest[T]{sampler: n.sampler.clone(), ra: n.ra.Copy(), at: make([]int, len(n.at))}
}
