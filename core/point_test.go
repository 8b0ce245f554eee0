package core_test

import (
	"testing"

	"github.com/katalvlaran/lvlimg/core"
	"github.com/stretchr/testify/require"
)

// TestPointMoves exercises every Positionable method on Point.
func TestPointMoves(t *testing.T) {
	p := core.NewPoint(3)
	p.Fwd(0)
	p.Fwd(0)
	p.Bck(1)
	p.Move(2, 7)
	require.Equal(t, []int{2, -1, 7}, p.Coords())

	p.SetPosition([]int{4, 5, 6})
	p.SetPositionAt(1, 9)
	require.Equal(t, "(4, 9, 6)", p.String())

	out := make([]int, 3)
	p.Localize(out)
	require.Equal(t, []int{4, 9, 6}, out)
}

// TestSetPositionFrom copies one localizable into another positionable.
func TestSetPositionFrom(t *testing.T) {
	src := core.PointOf(3, 1)
	dst := core.NewPoint(2)
	core.SetPositionFrom(dst, src)
	require.True(t, dst.Equal(src))

	snap := core.PointFrom(src)
	src.Fwd(0)
	require.Equal(t, 3, snap.Position(0)) // snapshot is independent

	real := make([]float64, 2)
	core.LocalizeReal(src, real)
	require.Equal(t, []float64{4, 1}, real)
}

// TestNewPointPanics documents the programmer-error guard.
func TestNewPointPanics(t *testing.T) {
	require.Panics(t, func() { core.NewPoint(0) })
	require.Panics(t, func() { core.PointOf() })
}
