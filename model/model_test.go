package model_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlimg/core"
	"github.com/katalvlaran/lvlimg/model"
	"github.com/stretchr/testify/require"
)

// roundTrip applies m then its inverse and expects the input back.
func roundTrip(t *testing.T, m model.Model, p []float64) {
	t.Helper()
	inv, err := m.Inverse()
	require.NoError(t, err)
	q := make([]float64, len(p))
	m.Apply(p, q)
	inv.Apply(q, q)
	require.InDeltaSlice(t, p, q, 1e-9)
}

func TestRoundTrips(t *testing.T) {
	aff, err := model.NewAffine(3,
		2, 0.5, 0, 1,
		0, 1, -1, 2,
		0.25, 0, 3, -4)
	require.NoError(t, err)

	tests := []struct {
		name string
		m    model.Model
		p    []float64
	}{
		{"translation", model.NewTranslation(10.1, -12.34), []float64{3, 4}},
		{"scale", model.NewScale(2, 0.5, -1), []float64{1, 2, 3}},
		{"rigid", model.NewRigid2D(model.Degrees(15), 5, -3), []float64{17, -2}},
		{"affine", aff, []float64{1, -1, 0.5}},
		{"rigid-as-affine", model.NewRigid2D(0.3, 1, 2).Affine(), []float64{4, 4}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) { roundTrip(t, tc.m, tc.p) })
	}
}

// TestRigidZeroIsIdentity: a rotation of 0 rad without shift changes nothing.
func TestRigidZeroIsIdentity(t *testing.T) {
	m := model.NewRigid2D(0, 0, 0)
	p := []float64{7.5, -2}
	q := make([]float64, 2)
	m.Apply(p, q)
	require.Equal(t, p, q)
}

func TestRigidQuarterTurn(t *testing.T) {
	m := model.NewRigid2D(math.Pi/2, 1, 0)
	q := make([]float64, 2)
	m.Apply([]float64{1, 0}, q)
	require.InDeltaSlice(t, []float64{1, 1}, q, 1e-12)
}

func TestNonInvertible(t *testing.T) {
	_, err := model.NewScale(1, 0).Inverse()
	require.ErrorIs(t, err, model.ErrNonInvertible)

	flat, err := model.NewAffine(2,
		1, 2, 0,
		2, 4, 0)
	require.NoError(t, err)
	_, err = flat.Inverse()
	require.ErrorIs(t, err, model.ErrNonInvertible)

	_, err = model.NewAffine(2, 1, 2, 3)
	require.ErrorIs(t, err, core.ErrBadShape)
}

// TestConcatenate applies models in argument order.
func TestConcatenate(t *testing.T) {
	tr := model.NewTranslation(1, 0)
	sc := model.NewScale(2, 3)
	c, err := model.Concatenate(tr, sc)
	require.NoError(t, err)

	q := make([]float64, 2)
	c.Apply([]float64{1, 1}, q)
	require.InDeltaSlice(t, []float64{4, 3}, q, 1e-12) // scale(translate(p))
	require.InDelta(t, 2.0, c.At(0, 2), 1e-12)

	_, err = model.Concatenate(tr, model.NewScale(1, 1, 1))
	require.ErrorIs(t, err, core.ErrDimensionMismatch)
	_, err = model.Concatenate()
	require.ErrorIs(t, err, core.ErrBadShape)
}

func TestConstructorPanics(t *testing.T) {
	require.Panics(t, func() { model.NewTranslation() })
	require.Panics(t, func() { model.NewScale() })
}
