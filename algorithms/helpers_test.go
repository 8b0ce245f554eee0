package algorithms_test

import (
	"testing"

	"github.com/katalvlaran/lvlimg/core"
	"github.com/katalvlaran/lvlimg/img"
	"github.com/stretchr/testify/require"
)

// filled creates an image through f and sets every sample to fn(pos).
func filled[T any](t *testing.T, f core.Factory[T], fn func(pos []int) T, dims ...int) core.Img[T] {
	t.Helper()
	var zero T
	im, err := f.Create(zero, dims...)
	require.NoError(t, err)
	pos := make([]int, len(dims))
	c := im.LocalizingCursor()
	for c.HasNext() {
		c.Fwd()
		c.Localize(pos)
		c.Set(fn(pos))
	}

	return im
}

// collect reads an image in flat order through a RandomAccess so that
// results of different layouts compare directly.
func collect[T any](im core.RandomAccessibleInterval[T]) []T {
	b := im.Bounds()
	out := make([]T, 0, b.Size())
	ra := im.RandomAccess()
	pos := b.Mins()
	for i := 0; i < b.Size(); i++ {
		ra.SetPosition(pos)
		out = append(out, ra.Get())
		for d := range pos {
			pos[d]++
			if pos[d] <= b.Max(d) {
				break
			}
			pos[d] = b.Min(d)
		}
	}

	return out
}

// blobs is a deterministic 2-D test pattern with values in 0..255.
func blobs(pos []int) float32 {
	x, y := pos[0], pos[1]

	return float32((x*37 + y*91 + x*y*13) % 256)
}

var cellFactory = img.NewCellFactory[float32](4)
