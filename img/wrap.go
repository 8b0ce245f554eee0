// SPDX-License-Identifier: MIT

// Package img - zero-copy adapters at the collaborator boundary.
//
// Wrap* adopt an external buffer as an Img without copying; writes through
// the Img are visible to the owner of the buffer. A layout that cannot be
// adopted yields ErrCannotWrap, which callers may answer by substituting a
// default input.

package img

import (
	"fmt"
	"image"
	"math"

	"github.com/katalvlaran/lvlimg/core"
)

const (
	ctxWrapSlice  = "WrapSlice"
	ctxWrapPlanes = "WrapPlanes"
	ctxWrapGray   = "WrapGray"
	ctxToGray     = "ToGray"
)

// WrapSlice adopts data as an ArrayImg (axis 0 fastest).
// Errors: core.ErrBadShape for bad dims, ErrCannotWrap when len(data) does
// not equal the product of dims.
func WrapSlice[T any](data []T, dims ...int) (*ArrayImg[T], error) {
	iv, err := core.NewIntervalFromDims(dims...)
	if err != nil {
		return nil, imgErrorf(ctxWrapSlice, err)
	}
	if len(data) != iv.Size() {
		return nil, fmt.Errorf("%s: len %d for dims %v: %w", ctxWrapSlice, len(data), dims, ErrCannotWrap)
	}

	return newArrayImg(data, iv), nil
}

// WrapPlanes adopts one slice per plane over axes 0 and 1.
// Errors: core.ErrBadShape, ErrCannotWrap (wrong plane count or length).
func WrapPlanes[T any](planes [][]T, dims ...int) (*PlanarImg[T], error) {
	iv, err := core.NewIntervalFromDims(dims...)
	if err != nil {
		return nil, imgErrorf(ctxWrapPlanes, err)
	}
	planeSize, numPlanes := planeLayout(iv.Dims())
	if len(planes) != numPlanes {
		return nil, fmt.Errorf("%s: %d planes, want %d: %w", ctxWrapPlanes, len(planes), numPlanes, ErrCannotWrap)
	}
	for i, p := range planes {
		if len(p) != planeSize {
			return nil, fmt.Errorf("%s: plane %d has %d samples, want %d: %w",
				ctxWrapPlanes, i, len(p), planeSize, ErrCannotWrap)
		}
	}

	return newPlanarImg(planes, iv), nil
}

// WrapGray adopts an 8-bit gray raster as a 2-D ArrayImg over its bounds
// size. Rows must be contiguous (Stride == width); sub-images with padded
// rows cannot be wrapped.
// Errors: ErrCannotWrap.
func WrapGray(g *image.Gray) (*ArrayImg[uint8], error) {
	if g == nil {
		return nil, fmt.Errorf("%s: nil image: %w", ctxWrapGray, ErrCannotWrap)
	}
	r := g.Bounds()
	w, h := r.Dx(), r.Dy()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%s: empty bounds %v: %w", ctxWrapGray, r, ErrCannotWrap)
	}
	if g.Stride != w {
		return nil, fmt.Errorf("%s: stride %d != width %d: %w", ctxWrapGray, g.Stride, w, ErrCannotWrap)
	}
	start := g.PixOffset(r.Min.X, r.Min.Y)

	return WrapSlice(g.Pix[start:start+w*h], w, h)
}

// ToGray renders a 2-D real image into a fresh *image.Gray whose origin is
// (0,0). Values are rounded and clamped to 0..255.
// Errors: core.ErrDimensionMismatch when ii is not 2-D.
func ToGray[T core.Real](ii core.IterableInterval[T]) (*image.Gray, error) {
	if ii.NumDimensions() != 2 {
		return nil, fmt.Errorf("%s: %d-D input: %w", ctxToGray, ii.NumDimensions(), core.ErrDimensionMismatch)
	}
	b := ii.Bounds()
	out := image.NewGray(image.Rect(0, 0, b.Dimension(0), b.Dimension(1)))
	c := ii.LocalizingCursor()
	for c.HasNext() {
		v := core.ToReal(c.Next())
		x, y := c.Position(0)-b.Min(0), c.Position(1)-b.Min(1)
		out.Pix[out.PixOffset(x, y)] = uint8(math.Max(0, math.Min(255, math.Round(v))))
	}

	return out, nil
}
