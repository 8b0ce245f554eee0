// SPDX-License-Identifier: MIT

package builder

import (
	"github.com/katalvlaran/lvlimg/core"
	"github.com/katalvlaran/lvlimg/img"
)

// Constant sets every sample to v.
// Complexity: O(size).
func Constant[T core.Real](v float64) Constructor[T] {
	return func(im core.Img[T], cfg builderConfig) error {
		paint(im, cfg, func([]int, float64) float64 { return v })

		return nil
	}
}

// Ramp adds slope·x[axis] to every sample.
// Errors: ErrTooSmall when axis is not an axis of the image.
// Complexity: O(size).
func Ramp[T core.Real](axis int, slope float64) Constructor[T] {
	return func(im core.Img[T], cfg builderConfig) error {
		if axis < 0 || axis >= im.NumDimensions() {
			return builderErrorf(MethodRamp, "axis %d of %d-D image", ErrTooSmall, axis, im.NumDimensions())
		}
		paint(im, cfg, func(pos []int, old float64) float64 { return old + slope*float64(pos[axis]) })

		return nil
	}
}

// Impulse sets the single sample at pos to v.
// Errors: core.ErrDimensionMismatch, img.ErrOutOfBounds.
// Complexity: O(N).
func Impulse[T core.Real](v float64, pos ...int) Constructor[T] {
	pos = append([]int(nil), pos...)

	return func(im core.Img[T], cfg builderConfig) error {
		if err := core.ValidatePosition(pos, im.NumDimensions()); err != nil {
			return builderErrorf(MethodImpulse, "position %v", err, pos)
		}
		if !im.Bounds().Contains(pos) {
			return builderErrorf(MethodImpulse, "position %v", img.ErrOutOfBounds, pos)
		}
		ra := im.RandomAccess()
		ra.SetPosition(pos)
		ra.Set(core.FromReal[T](cfg.bound(v)))

		return nil
	}
}

// Checkerboard fills alternating hypercubes of side square with lo and hi;
// the cube holding the origin gets lo.
// Errors: ErrTooSmall when square < MinSquare.
// Complexity: O(size·N).
func Checkerboard[T core.Real](square int, lo, hi float64) Constructor[T] {
	return func(im core.Img[T], cfg builderConfig) error {
		if square < MinSquare {
			return builderErrorf(MethodCheckerboard, "square %d", ErrTooSmall, square)
		}
		paint(im, cfg, func(pos []int, _ float64) float64 {
			parity := 0
			for _, p := range pos {
				parity += p / square
			}
			if parity%2 == 0 {
				return lo
			}

			return hi
		})

		return nil
	}
}
