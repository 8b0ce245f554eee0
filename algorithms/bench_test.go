package algorithms_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/lvlimg/algorithms"
	"github.com/katalvlaran/lvlimg/core"
	"github.com/katalvlaran/lvlimg/img"
)

func benchSource(b *testing.B) core.Img[float32] {
	b.Helper()
	im, err := img.NewArrayImg[float32](0, 512, 512)
	if err != nil {
		b.Fatalf("setup: %v", err)
	}
	for i, p := 0, im.Data(); i < len(p); i++ {
		p[i] = float32((i * 7919) % 256)
	}

	return im
}

// BenchmarkThresholdBits compares the zip path (planar destination) with the
// positional fallback (cell destination).
// Complexity: O(size) vs O(size·N).
func BenchmarkThresholdBits(b *testing.B) {
	src := benchSource(b)
	for _, f := range []core.Factory[core.Bit]{img.PlanarFactory[core.Bit]{}, img.NewCellFactory[core.Bit](16)} {
		b.Run(f.Name(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := algorithms.ThresholdBits[float32](src, 100, f); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkGradient compares sequential and parallel gradient on 512x512.
func BenchmarkGradient(b *testing.B) {
	src := benchSource(b)
	f := img.ArrayFactory[float32]{}
	b.Run("sequential", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = algorithms.Gradient[float32, float32](src, f)
		}
	})
	b.Run("parallel", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = algorithms.GradientParallel[float32, float32](context.Background(), src, f)
		}
	})
}
