package algorithms_test

import (
	"testing"

	"github.com/katalvlaran/lvlimg/algorithms"
	"github.com/katalvlaran/lvlimg/core"
	"github.com/katalvlaran/lvlimg/img"
	"github.com/katalvlaran/lvlimg/views"
	"github.com/stretchr/testify/require"
)

// TestThresholdStrictCutoff maps samples equal to the cutoff to low.
func TestThresholdStrictCutoff(t *testing.T) {
	a, err := img.WrapSlice([]uint8{99, 100, 101, 250}, 4)
	require.NoError(t, err)

	out, err := algorithms.Threshold[uint8](a, 100)
	require.NoError(t, err)
	require.Equal(t, []uint8{0, 0, 1, 1}, collect[uint8](out))
	require.Equal(t, "array", out.Factory().Name())

	algorithms.ThresholdInPlace[uint8](a, 100)
	require.Equal(t, []uint8{0, 0, 255, 255}, a.Data())
}

// TestThresholdIdempotent: thresholding a two-valued output again with the
// same cutoff and levels changes nothing.
func TestThresholdIdempotent(t *testing.T) {
	src := filled(t, img.ArrayFactory[float32]{}, blobs, 30, 20)
	once, err := algorithms.Threshold(src, 100, algorithms.WithLevels(255, 0))
	require.NoError(t, err)
	twice, err := algorithms.Threshold(once, 100, algorithms.WithLevels(255, 0))
	require.NoError(t, err)
	require.Equal(t, collect[float32](once), collect[float32](twice))

	algorithms.ThresholdInPlace[float32](once, 100)
	require.Equal(t, collect[float32](twice), collect[float32](once))
}

// TestThresholdToOtherType writes a different element type and layout.
func TestThresholdToOtherType(t *testing.T) {
	src := filled(t, img.ArrayFactory[float32]{}, blobs, 16, 12)
	out, err := algorithms.ThresholdTo[float32, int16](src, 127.5, img.PlanarFactory[int16]{}, algorithms.WithLevels(-1, 7))
	require.NoError(t, err)

	want := make([]int16, 0, src.Size())
	for _, v := range collect[float32](src) {
		if v > 127.5 {
			want = append(want, -1)
		} else {
			want = append(want, 7)
		}
	}
	require.Equal(t, want, collect[int16](out))
}

// TestZipAndPositionalAgree for flat and cell destinations, whole images and
// translated sub-intervals alike.
func TestZipAndPositionalAgree(t *testing.T) {
	srcArray := filled(t, img.ArrayFactory[float32]{}, blobs, 64, 48)
	srcCell := filled(t, cellFactory, blobs, 64, 48)
	inner, err := views.IntervalMinMax[float32](srcArray, []int{20, 20}, []int{44, 28})
	require.NoError(t, err)

	dstFactories := []core.Factory[core.Bit]{
		img.ArrayFactory[core.Bit]{},
		img.PlanarFactory[core.Bit]{},
		img.NewCellFactory[core.Bit](16),
	}
	sources := map[string]core.IterableInterval[float32]{"array": srcArray, "cell": srcCell, "inner": inner}

	for name, src := range sources {
		var reference []core.Bit
		for _, f := range dstFactories {
			auto, err := algorithms.ThresholdBits[float32](src, 100, f)
			require.NoError(t, err)
			pos, err := algorithms.ThresholdBits[float32](src, 100, f, algorithms.WithTraversal(algorithms.TraversalPositional))
			require.NoError(t, err)

			got := collect[core.Bit](auto)
			require.Equal(t, got, collect[core.Bit](pos), "%s -> %s", name, f.Name())
			if reference == nil {
				reference = got
			}
			require.Equal(t, reference, got, "%s -> %s", name, f.Name())
		}
	}
}

// TestForcedZipOnIncompatibleOrder is rejected, not scrambled.
func TestForcedZipOnIncompatibleOrder(t *testing.T) {
	src := filled(t, img.ArrayFactory[float32]{}, blobs, 32, 32)
	_, err := algorithms.ThresholdBits[float32](src, 100, img.NewCellFactory[core.Bit](16),
		algorithms.WithTraversal(algorithms.TraversalZip))
	require.ErrorIs(t, err, algorithms.ErrIncompatibleOrder)

	// Compatible orders accept the forced zip.
	_, err = algorithms.ThresholdBits[float32](src, 100, img.PlanarFactory[core.Bit]{},
		algorithms.WithTraversal(algorithms.TraversalZip))
	require.NoError(t, err)
}

// TestThresholdBitsOrdered works for any ordered element.
func TestThresholdBitsOrdered(t *testing.T) {
	words, err := img.WrapSlice([]string{"apple", "kiwi", "melon", "fig"}, 2, 2)
	require.NoError(t, err)
	out, err := algorithms.ThresholdBits[string](words, "fig", img.ArrayFactory[core.Bit]{})
	require.NoError(t, err)
	require.Equal(t, []core.Bit{core.BitOff, core.BitOn, core.BitOn, core.BitOff}, collect[core.Bit](out))
}

// TestCopy across layouts, and the shape guard.
func TestCopy(t *testing.T) {
	src := filled(t, cellFactory, blobs, 10, 9)
	dst, err := img.NewArrayImg[float32](0, 10, 9)
	require.NoError(t, err)
	require.NoError(t, algorithms.Copy[float32](src, dst))
	require.Equal(t, collect[float32](src), dst.Data())

	wrong, _ := img.NewArrayImg[float32](0, 9, 10)
	require.ErrorIs(t, algorithms.Copy[float32](src, wrong), core.ErrDimensionMismatch)
}

func TestOptionPanics(t *testing.T) {
	require.Panics(t, func() { algorithms.WithTraversal(algorithms.Traversal(9)) })
	require.Panics(t, func() { algorithms.WithWorkers(0) })
	require.Panics(t, func() { algorithms.WithInterpolation(algorithms.Interp(-1)) })
	require.Panics(t, func() { algorithms.WithBoundary(algorithms.Boundary(7)) })
	require.Equal(t, "positional", algorithms.TraversalPositional.String())
}
