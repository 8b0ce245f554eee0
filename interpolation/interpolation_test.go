package interpolation_test

import (
	"testing"

	"github.com/katalvlaran/lvlimg/img"
	"github.com/katalvlaran/lvlimg/interpolation"
	"github.com/katalvlaran/lvlimg/views"
	"github.com/stretchr/testify/require"
)

func source(t *testing.T) *img.ArrayImg[uint8] {
	t.Helper()
	// 3x2:
	//   10 20 30
	//   50 60 70
	a, err := img.WrapSlice([]uint8{10, 20, 30, 50, 60, 70}, 3, 2)
	require.NoError(t, err)

	return a
}

// TestNLinearIntegerPositionsAreExact: no blending at grid points.
func TestNLinearIntegerPositionsAreExact(t *testing.T) {
	src := source(t)
	rra := views.Interpolate[uint8](views.ExtendZero[uint8](src), interpolation.NLinear[uint8]{}).RealRandomAccess()
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			rra.SetRealPosition([]float64{float64(x), float64(y)})
			want, _ := src.At(x, y)
			require.Equal(t, float64(want), rra.Get())
		}
	}
}

func TestNLinearBlends(t *testing.T) {
	src := source(t)
	rra := views.Interpolate[uint8](views.ExtendBorder[uint8](src), interpolation.NLinear[uint8]{}).RealRandomAccess()

	tests := []struct {
		x, y float64
		want float64
	}{
		{0.5, 0, 15},
		{0, 0.5, 30},
		{0.5, 0.5, 35},
		{1.25, 1, 62.5},
		{1.5, 0.25, 35},
		{-3, 0.5, 30}, // border-clamped on x
	}
	for _, tc := range tests {
		rra.SetRealPositionAt(0, tc.x)
		rra.SetRealPositionAt(1, tc.y)
		require.InDelta(t, tc.want, rra.Get(), 1e-9, "at (%v, %v)", tc.x, tc.y)
	}

	cp := rra.Copy()
	rra.SetRealPositionAt(0, 0)
	require.Equal(t, -3.0, cp.RealPosition(0))
	out := make([]float64, 2)
	cp.LocalizeReal(out)
	require.Equal(t, []float64{-3, 0.5}, out)
}

func TestNearestNeighbor(t *testing.T) {
	src := source(t)
	rra := views.Interpolate[uint8](views.ExtendZero[uint8](src), interpolation.NearestNeighbor[uint8]{}).RealRandomAccess()

	rra.SetRealPosition([]float64{0.5, 0.49})
	require.Equal(t, 20.0, rra.Get())
	rra.SetRealPosition([]float64{1.7, 0.6})
	require.Equal(t, 70.0, rra.Get())
	rra.SetRealPosition([]float64{-0.6, 0})
	require.Equal(t, 0.0, rra.Get())
	require.Equal(t, 2, rra.NumDimensions())
}
