package builder_test

import (
	"testing"

	"github.com/katalvlaran/lvlimg/builder"
	"github.com/katalvlaran/lvlimg/core"
	"github.com/katalvlaran/lvlimg/img"
	"github.com/stretchr/testify/require"
)

func flat[T any](t *testing.T, im core.Img[T]) []T {
	t.Helper()
	a, ok := im.(*img.ArrayImg[T])
	require.True(t, ok)

	return a.Data()
}

func TestDeterministicConstructors(t *testing.T) {
	f := img.ArrayFactory[float64]{}
	im, err := builder.BuildImage[float64](f, []int{4, 2}, nil,
		builder.Constant[float64](1),
		builder.Ramp[float64](0, 2),
		builder.Impulse[float64](-5, 3, 1),
	)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 3, 5, 7, 1, 3, 5, -5}, flat(t, im))

	cb, err := builder.BuildImage[uint8](img.ArrayFactory[uint8]{}, []int{4, 4}, nil,
		builder.Checkerboard[uint8](2, 0, 9))
	require.NoError(t, err)
	require.Equal(t, []uint8{
		0, 0, 9, 9,
		0, 0, 9, 9,
		9, 9, 0, 0,
		9, 9, 0, 0,
	}, flat(t, cb))
}

func TestClampForIntegerTypes(t *testing.T) {
	im, err := builder.BuildImage[uint8](img.ArrayFactory[uint8]{}, []int{4},
		[]builder.BuilderOption{builder.WithClamp(0, 255)},
		builder.Ramp[uint8](0, 200))
	require.NoError(t, err)
	require.Equal(t, []uint8{0, 200, 255, 255}, flat(t, im))
}

func TestGaussianBlobs(t *testing.T) {
	opts := []builder.BuilderOption{builder.WithSeed(3), builder.WithAmplitude(100)}
	a, err := builder.BuildImage[float32](img.ArrayFactory[float32]{}, []int{20, 10}, opts,
		builder.GaussianBlobs[float32](3, 2))
	require.NoError(t, err)

	opts = []builder.BuilderOption{builder.WithSeed(3), builder.WithAmplitude(100)}
	b, err := builder.BuildImage[float32](img.ArrayFactory[float32]{}, []int{20, 10}, opts,
		builder.GaussianBlobs[float32](3, 2))
	require.NoError(t, err)
	require.Equal(t, flat(t, a), flat(t, b))

	peak := float32(0)
	for _, v := range flat(t, a) {
		require.GreaterOrEqual(t, v, float32(0))
		if v > peak {
			peak = v
		}
	}
	require.Greater(t, peak, float32(50))
}

// TestBlobCentresIndependentOfLayout: blob centres are drawn before
// painting, so any layout yields the same field.
func TestBlobCentresIndependentOfLayout(t *testing.T) {
	build := func(f core.Factory[float64]) []float64 {
		im, err := builder.BuildImage[float64](f, []int{9, 7},
			[]builder.BuilderOption{builder.WithSeed(11)}, builder.GaussianBlobs[float64](2, 1.5))
		require.NoError(t, err)
		out := make([]float64, 0, 63)
		ra := im.RandomAccess()
		for y := 0; y < 7; y++ {
			for x := 0; x < 9; x++ {
				ra.SetPosition([]int{x, y})
				out = append(out, ra.Get())
			}
		}

		return out
	}
	require.Equal(t, build(img.ArrayFactory[float64]{}), build(img.NewCellFactory[float64](4)))
}

func TestConstructorErrors(t *testing.T) {
	f := img.ArrayFactory[float32]{}
	cases := []struct {
		name string
		cons builder.Constructor[float32]
		want error
	}{
		{"ramp axis", builder.Ramp[float32](2, 1), builder.ErrTooSmall},
		{"impulse outside", builder.Impulse[float32](1, 5, 0), img.ErrOutOfBounds},
		{"impulse rank", builder.Impulse[float32](1, 0), core.ErrDimensionMismatch},
		{"square", builder.Checkerboard[float32](0, 0, 1), builder.ErrTooSmall},
		{"blob count", builder.GaussianBlobs[float32](0, 1), builder.ErrTooSmall},
		{"blob sigma", builder.GaussianBlobs[float32](1, 0), builder.ErrTooSmall},
		{"blob rng", builder.GaussianBlobs[float32](1, 1), builder.ErrNeedRandSource},
		{"noise rng", builder.Noise[float32](1), builder.ErrNeedRandSource},
		{"noise sigma", builder.Noise[float32](-1), builder.ErrTooSmall},
		{"nil", nil, builder.ErrConstructFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.BuildImage[float32](f, []int{3, 3}, nil, tc.cons)
			require.ErrorIs(t, err, tc.want)
		})
	}

	_, err := builder.BuildImage[float32](f, []int{0, 3}, nil)
	require.ErrorIs(t, err, builder.ErrConstructFailed)
	require.ErrorIs(t, err, core.ErrBadShape)
}

func TestNoiseSeeded(t *testing.T) {
	build := func() []float64 {
		im, err := builder.BuildImage[float64](img.ArrayFactory[float64]{}, []int{16},
			[]builder.BuilderOption{builder.WithSeed(5)}, builder.Noise[float64](1))
		require.NoError(t, err)

		return flat(t, im)
	}
	a := build()
	require.Equal(t, a, build())
	require.NotEqual(t, make([]float64, 16), a)
}
