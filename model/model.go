// SPDX-License-Identifier: MIT

// Package model - coordinate transformations.
//
// Purpose:
//   - Map real coordinates forward (Apply) and provide an inverse model for
//     backward mapping, which is what image transforms actually use.
//   - Every model converts to an Affine, so heterogeneous chains compose
//     into a single homogeneous matrix (gonum/mat).

package model

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvlimg/core"
)

// ErrNonInvertible indicates a model whose inverse does not exist
// (zero scale, singular linear part).
var ErrNonInvertible = errors.New("model: transform is not invertible")

// Model maps N-dimensional real coordinates.
type Model interface {
	NumDimensions() int
	// Apply writes the image of src into dst; dst may alias src.
	Apply(src, dst []float64)
	// Inverse returns the inverse model or ErrNonInvertible.
	Inverse() (Model, error)
	// Affine returns the equivalent homogeneous affine model.
	Affine() *Affine
}

// ---------- Translation ----------

// Translation adds a constant offset.
type Translation struct {
	t []float64
}

var _ Model = (*Translation)(nil)

// NewTranslation returns x -> x + t. Panics on an empty offset.
func NewTranslation(t ...float64) *Translation {
	if len(t) == 0 {
		panic("model: NewTranslation: no components")
	}

	return &Translation{t: append([]float64(nil), t...)}
}

func (m *Translation) NumDimensions() int { return len(m.t) }

func (m *Translation) Apply(src, dst []float64) {
	for d, v := range m.t {
		dst[d] = src[d] + v
	}
}

// Inverse never fails.
func (m *Translation) Inverse() (Model, error) {
	inv := make([]float64, len(m.t))
	for d, v := range m.t {
		inv[d] = -v
	}

	return &Translation{t: inv}, nil
}

func (m *Translation) Affine() *Affine {
	a := identity(len(m.t))
	for d, v := range m.t {
		a.setShift(d, v)
	}

	return a.refresh()
}

func (m *Translation) String() string { return fmt.Sprintf("Translation%v", m.t) }

// ---------- Scale ----------

// Scale multiplies every axis by its own factor.
type Scale struct {
	s []float64
}

var _ Model = (*Scale)(nil)

// NewScale returns x -> s∘x. Panics on empty factors.
func NewScale(s ...float64) *Scale {
	if len(s) == 0 {
		panic("model: NewScale: no components")
	}

	return &Scale{s: append([]float64(nil), s...)}
}

func (m *Scale) NumDimensions() int { return len(m.s) }

func (m *Scale) Apply(src, dst []float64) {
	for d, v := range m.s {
		dst[d] = src[d] * v
	}
}

// Inverse fails with ErrNonInvertible when any factor is zero.
func (m *Scale) Inverse() (Model, error) {
	inv := make([]float64, len(m.s))
	for d, v := range m.s {
		if v == 0 {
			return nil, fmt.Errorf("Scale.Inverse: factor 0 on axis %d: %w", d, ErrNonInvertible)
		}
		inv[d] = 1 / v
	}

	return &Scale{s: inv}, nil
}

func (m *Scale) Affine() *Affine {
	a := identity(len(m.s))
	for d, v := range m.s {
		a.h.Set(d, d, v)
	}

	return a.refresh()
}

// ---------- Rigid2D ----------

// Rigid2D rotates by Theta radians about the origin, then translates.
//
//	x' = cos·x − sin·y + tx
//	y' = sin·x + cos·y + ty
type Rigid2D struct {
	theta, tx, ty float64
	cos, sin      float64
}

var _ Model = (*Rigid2D)(nil)

// NewRigid2D returns the rigid model for theta (radians) and (tx, ty).
func NewRigid2D(theta, tx, ty float64) *Rigid2D {
	return &Rigid2D{theta: theta, tx: tx, ty: ty, cos: math.Cos(theta), sin: math.Sin(theta)}
}

// Degrees converts an angle for NewRigid2D.
func Degrees(deg float64) float64 { return deg * math.Pi / 180 }

func (m *Rigid2D) NumDimensions() int { return 2 }

func (m *Rigid2D) Apply(src, dst []float64) {
	x, y := src[0], src[1]
	dst[0] = m.cos*x - m.sin*y + m.tx
	dst[1] = m.sin*x + m.cos*y + m.ty
}

// Inverse never fails: R^T·(x − t).
func (m *Rigid2D) Inverse() (Model, error) {
	tx := -(m.cos*m.tx + m.sin*m.ty)
	ty := -(-m.sin*m.tx + m.cos*m.ty)

	return &Rigid2D{theta: -m.theta, tx: tx, ty: ty, cos: m.cos, sin: -m.sin}, nil
}

func (m *Rigid2D) Affine() *Affine {
	a := identity(2)
	a.h.Set(0, 0, m.cos)
	a.h.Set(0, 1, -m.sin)
	a.h.Set(1, 0, m.sin)
	a.h.Set(1, 1, m.cos)
	a.setShift(0, m.tx)
	a.setShift(1, m.ty)

	return a.refresh()
}

func (m *Rigid2D) String() string {
	return fmt.Sprintf("Rigid2D(θ=%.4g, t=(%.4g, %.4g))", m.theta, m.tx, m.ty)
}

// checkDims is shared by the constructors that take several models.
func checkDims(method string, n int, ms ...Model) error {
	for i, m := range ms {
		if m.NumDimensions() != n {
			return fmt.Errorf("%s: model %d is %d-D, want %d-D: %w",
				method, i, m.NumDimensions(), n, core.ErrDimensionMismatch)
		}
	}

	return nil
}
