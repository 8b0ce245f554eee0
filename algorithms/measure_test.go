package algorithms_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlimg/algorithms"
	"github.com/katalvlaran/lvlimg/img"
	"github.com/katalvlaran/lvlimg/views"
	"github.com/stretchr/testify/require"
)

func TestCenterOfMass(t *testing.T) {
	t.Run("all-zero is NaN", func(t *testing.T) {
		z, err := img.NewArrayImg[uint8](0, 5, 4, 3)
		require.NoError(t, err)
		for _, v := range algorithms.CenterOfMass[uint8](z) {
			require.True(t, math.IsNaN(v))
		}
	})

	t.Run("impulse", func(t *testing.T) {
		c, err := img.NewCellImg[float32](0, []int{2}, 5, 4, 3)
		require.NoError(t, err)
		require.NoError(t, c.SetAt(7, 3, 1, 2))
		require.Equal(t, []float64{3, 1, 2}, algorithms.CenterOfMass[float32](c))
	})

	t.Run("view coordinates", func(t *testing.T) {
		a, err := img.WrapSlice([]uint16{0, 0, 0, 0, 2, 2, 0, 0, 0}, 3, 3)
		require.NoError(t, err)
		tv, err := views.TranslateInterval[uint16](a, 10, 20)
		require.NoError(t, err)
		require.Equal(t, []float64{11.5, 21}, algorithms.CenterOfMass[uint16](tv))
	})
}

func TestStatistics(t *testing.T) {
	a, err := img.WrapSlice([]float64{4, 1, 3, 2}, 2, 2)
	require.NoError(t, err)
	s, err := algorithms.Statistics[float64](a)
	require.NoError(t, err)
	require.Equal(t, 4, s.Count)
	require.Equal(t, 10.0, s.Sum)
	require.Equal(t, 1.0, s.Min)
	require.Equal(t, 4.0, s.Max)
	require.Equal(t, 2.5, s.Mean)
	require.Equal(t, 2.5, s.Median)
	require.InDelta(t, math.Sqrt(1.25), s.StdDev, 1e-12)
	require.Contains(t, s.String(), "n=4")

	p, err := algorithms.Percentile[float64](a, 100)
	require.NoError(t, err)
	require.Equal(t, 4.0, p)
	_, err = algorithms.Percentile[float64](a, 0)
	require.Error(t, err)
}
