// SPDX-License-Identifier: MIT

// Package views composes lazy transformations of images: extension,
// interpolation, interval restriction and translation.
//
// Every view is a decorator over its source. Nothing is copied; reading a
// view reads the source, writing through a view writes the source.
//
// A typical chain for sub-pixel sampling near the border:
//
//	ext := views.ExtendZero[float32](src)                              // unbounded
//	real := views.Interpolate[float32](ext, interpolation.NLinear[float32]{}) // continuous
//
// and for processing only the inner part of an image:
//
//	inner, _ := views.IntervalMinMax[uint8](src, []int{20, 20}, []int{w - 21, h - 21})
//
// Extension must wrap the discrete source before interpolation; interval
// restriction applies to whatever is finally iterated.
package views
