package algorithms_test

import (
	"testing"

	"github.com/katalvlaran/lvlimg/algorithms"
	"github.com/katalvlaran/lvlimg/img"
	"github.com/katalvlaran/lvlimg/model"
	"github.com/stretchr/testify/require"
)

// TestTransformZeroRotationIsIdentity holds for every layout.
func TestTransformZeroRotationIsIdentity(t *testing.T) {
	src := filled(t, cellFactory, blobs, 12, 9)
	out, err := algorithms.Transform(src, model.NewRigid2D(0, 0, 0))
	require.NoError(t, err)
	require.Equal(t, "cell", out.Factory().Name())
	require.Equal(t, collect[float32](src), collect[float32](out))
}

// TestTransformIntegerShift moves samples and fills the background.
func TestTransformIntegerShift(t *testing.T) {
	src, err := img.WrapSlice([]float64{1, 2, 3, 4, 5, 6}, 3, 2)
	require.NoError(t, err)

	out, err := algorithms.Transform[float64](src, model.NewTranslation(1, 0), algorithms.WithBackground(-1))
	require.NoError(t, err)
	require.Equal(t, []float64{-1, 1, 2, -1, 4, 5}, collect[float64](out))

	border, err := algorithms.Transform[float64](src, model.NewTranslation(1, 0), algorithms.WithBoundary(algorithms.BoundaryBorder))
	require.NoError(t, err)
	require.Equal(t, []float64{1, 1, 2, 4, 4, 5}, collect[float64](border))
}

// TestTransformSubPixel blends neighbours with N-linear, not with nearest.
func TestTransformSubPixel(t *testing.T) {
	src, err := img.WrapSlice([]float32{0, 10, 20, 30}, 4)
	require.NoError(t, err)
	shift := model.NewTranslation(-0.5)

	lin, err := algorithms.Transform[float32](src, shift, algorithms.WithBoundary(algorithms.BoundaryBorder))
	require.NoError(t, err)
	require.Equal(t, []float32{5, 15, 25, 30}, collect[float32](lin))

	nn, err := algorithms.Transform[float32](src, shift,
		algorithms.WithBoundary(algorithms.BoundaryBorder), algorithms.WithInterpolation(algorithms.InterpNearest))
	require.NoError(t, err)
	require.Equal(t, []float32{10, 20, 30, 30}, collect[float32](nn))
}

// TestTransformIntoRejectsBeforeWriting leaves dst untouched.
func TestTransformIntoRejectsBeforeWriting(t *testing.T) {
	src := filled(t, img.ArrayFactory[float32]{}, blobs, 4, 4)
	dst, err := img.NewArrayImg[uint8](9, 4, 4)
	require.NoError(t, err)

	err = algorithms.TransformInto[float32, uint8](src, dst, model.NewScale(1, 0))
	require.ErrorIs(t, err, model.ErrNonInvertible)
	for _, v := range dst.Data() {
		require.Equal(t, uint8(9), v)
	}

	require.NoError(t, algorithms.TransformInto[float32, uint8](src, dst, model.NewScale(1, 1)))
	want := collect[float32](src)
	for i, v := range dst.Data() {
		require.Equal(t, uint8(want[i]), v)
	}

	_, err = algorithms.Transform[float32](src, model.NewTranslation(1, 2, 3))
	require.Error(t, err)
}
