// SPDX-License-Identifier: MIT

package builder

import (
	"math"

	"github.com/katalvlaran/lvlimg/core"
)

// GaussianBlobs adds count isotropic Gaussians of height A (WithAmplitude)
// and standard deviation sigma, centred at uniformly drawn real positions
// inside the image.
// Errors: ErrTooSmall (count < MinBlobs, sigma <= 0), ErrNeedRandSource.
// Complexity: O(count) draws + O(size·count·N).
func GaussianBlobs[T core.Real](count int, sigma float64) Constructor[T] {
	return func(im core.Img[T], cfg builderConfig) error {
		if count < MinBlobs {
			return builderErrorf(MethodGaussianBlobs, "count %d", ErrTooSmall, count)
		}
		if !(sigma > 0) {
			return builderErrorf(MethodGaussianBlobs, "sigma %v", ErrTooSmall, sigma)
		}
		if cfg.rng == nil {
			return builderErrorf(MethodGaussianBlobs, "no rng", ErrNeedRandSource)
		}

		dims := im.Bounds().Dims()
		centres := make([][]float64, count)
		for i := range centres {
			centres[i] = make([]float64, len(dims))
			for d, n := range dims {
				centres[i][d] = cfg.rng.Float64() * float64(n-1)
			}
		}
		inv := 1 / (2 * sigma * sigma)
		paint(im, cfg, func(pos []int, old float64) float64 {
			for _, c := range centres {
				r2 := 0.0
				for d, p := range pos {
					dx := float64(p) - c[d]
					r2 += dx * dx
				}
				old += cfg.amplitude * math.Exp(-r2*inv)
			}

			return old
		})

		return nil
	}
}

// Noise adds independent N(0, sigma²) samples, drawn in the image's
// iteration order: equal seeds give equal noise for equal layouts.
// sigma == 0 is a no-op that still requires an RNG.
// Errors: ErrTooSmall (sigma < 0), ErrNeedRandSource.
// Complexity: O(size).
func Noise[T core.Real](sigma float64) Constructor[T] {
	return func(im core.Img[T], cfg builderConfig) error {
		if sigma < 0 || math.IsNaN(sigma) {
			return builderErrorf(MethodNoise, "sigma %v", ErrTooSmall, sigma)
		}
		if cfg.rng == nil {
			return builderErrorf(MethodNoise, "no rng", ErrNeedRandSource)
		}
		paint(im, cfg, func(_ []int, old float64) float64 { return old + cfg.rng.NormFloat64()*sigma })

		return nil
	}
}
