// SPDX-License-Identifier: MIT

// Package model - Affine: homogeneous (N+1)x(N+1) matrix on gonum/mat.
//
// Inversion and composition go through gonum; Apply reads a cached flat
// copy so per-pixel mapping does not touch the mat API.

package model

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvlimg/core"
	"gonum.org/v1/gonum/mat"
)

const (
	ctxNewAffine   = "NewAffine"
	ctxInverse     = "Affine.Inverse"
	ctxConcatenate = "Concatenate"
)

// singularEps bounds |det| of the linear part below which a model is treated
// as non-invertible.
const singularEps = 1e-12

// Affine is x -> A·x + t in N dimensions.
type Affine struct {
	n    int
	h    *mat.Dense // (n+1)x(n+1), last row [0 … 0 1]
	flat []float64  // row-major n x (n+1) cache of the top rows
}

var _ Model = (*Affine)(nil)

// NewAffine builds an N-d affine model from n rows of n+1 values each
// ([A | t], row-major).
// Errors: core.ErrBadShape when len(rows) != n*(n+1) or n <= 0.
func NewAffine(n int, rows ...float64) (*Affine, error) {
	if n <= 0 || len(rows) != n*(n+1) {
		return nil, fmt.Errorf("%s: %d values for n=%d: %w", ctxNewAffine, len(rows), n, core.ErrBadShape)
	}
	a := identity(n)
	for r := 0; r < n; r++ {
		for c := 0; c <= n; c++ {
			a.h.Set(r, c, rows[r*(n+1)+c])
		}
	}

	return a.refresh(), nil
}

// identity returns the N-d identity (cache not yet built).
func identity(n int) *Affine {
	h := mat.NewDense(n+1, n+1, nil)
	for i := 0; i <= n; i++ {
		h.Set(i, i, 1)
	}

	return &Affine{n: n, h: h}
}

func (a *Affine) setShift(d int, v float64) { a.h.Set(d, a.n, v) }

// refresh rebuilds the flat cache after h changed.
func (a *Affine) refresh() *Affine {
	a.flat = make([]float64, a.n*(a.n+1))
	for r := 0; r < a.n; r++ {
		for c := 0; c <= a.n; c++ {
			a.flat[r*(a.n+1)+c] = a.h.At(r, c)
		}
	}

	return a
}

func (a *Affine) NumDimensions() int { return a.n }
func (a *Affine) Affine() *Affine { return a }

// Apply computes A·src + t. dst may alias src.
func (a *Affine) Apply(src, dst []float64) {
	var buf [4]float64
	tmp := buf[:0]
	if a.n > len(buf) {
		tmp = make([]float64, 0, a.n)
	}
	stride := a.n + 1
	for r := 0; r < a.n; r++ {
		row := a.flat[r*stride : (r+1)*stride]
		v := row[a.n]
		for c := 0; c < a.n; c++ {
			v += row[c] * src[c]
		}
		tmp = append(tmp, v)
	}
	copy(dst, tmp)
}

// At returns matrix entry (r, c) of [A | t].
func (a *Affine) At(r, c int) float64 { return a.h.At(r, c) }

// Inverse inverts the homogeneous matrix.
// Errors: ErrNonInvertible when the linear part is singular.
// Complexity: O(N^3).
func (a *Affine) Inverse() (Model, error) {
	lin := a.h.Slice(0, a.n, 0, a.n)
	if math.Abs(mat.Det(lin)) < singularEps {
		return nil, fmt.Errorf("%s: %w", ctxInverse, ErrNonInvertible)
	}
	var inv mat.Dense
	if err := inv.Inverse(a.h); err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) {
			return nil, fmt.Errorf("%s: %v: %w", ctxInverse, err, ErrNonInvertible)
		}
	}

	return (&Affine{n: a.n, h: &inv}).refresh(), nil
}

// Concatenate composes models so that the first one is applied first:
// Concatenate(m1, m2)(x) == m2(m1(x)).
// Errors: core.ErrDimensionMismatch, core.ErrBadShape (no models).
func Concatenate(models ...Model) (*Affine, error) {
	if len(models) == 0 {
		return nil, fmt.Errorf("%s: no models: %w", ctxConcatenate, core.ErrBadShape)
	}
	n := models[0].NumDimensions()
	if err := checkDims(ctxConcatenate, n, models...); err != nil {
		return nil, err
	}
	acc := mat.DenseCopyOf(models[0].Affine().h)
	for _, m := range models[1:] {
		var next mat.Dense
		next.Mul(m.Affine().h, acc)
		acc = &next
	}

	return (&Affine{n: n, h: acc}).refresh(), nil
}

func (a *Affine) String() string {
	return fmt.Sprintf("Affine%dD%v", a.n, a.flat)
}
