// SPDX-License-Identifier: MIT

// Package builder creates deterministic synthetic images for tests, demos
// and the lvlimg command.
//
// One orchestrator, BuildImage, allocates an image through any core.Factory
// and applies Constructors in order. Each Constructor paints over what the
// previous ones left, so fixtures compose:
//
//	im, err := builder.BuildImage[float32](img.ArrayFactory[float32]{}, []int{64, 48},
//		[]builder.BuilderOption{builder.WithSeed(7), builder.WithAmplitude(200)},
//		builder.Constant[float32](10),
//		builder.GaussianBlobs[float32](5, 4),
//		builder.Noise[float32](2),
//	)
//
// Constructors:
//   - Constant(v):                 every sample = v.
//   - Ramp(axis, slope):           adds slope·x[axis].
//   - Impulse(v, pos...):          one sample = v.
//   - Checkerboard(square, lo, hi): alternating hypercubes of side square.
//   - GaussianBlobs(count, sigma): adds count Gaussians of height A at random
//     centres (needs WithSeed or WithRand).
//   - Noise(sigma):                adds N(0, sigma²) per sample (needs an RNG).
//
// Values are computed in float64 and stored with core.FromReal; WithClamp
// bounds them first, which integer element types usually want.
//
// Errors (sentinels, match with errors.Is):
//   - ErrTooSmall:        a size or scale parameter below its minimum.
//   - ErrNeedRandSource:  a stochastic constructor without an RNG.
//   - ErrConstructFailed: nil constructor or allocation failure.
//
// Option constructors (WithX) panic on meaningless values; constructors
// never panic.
package builder
