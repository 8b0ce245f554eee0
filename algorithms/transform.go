// SPDX-License-Identifier: MIT

// Package algorithms - backward-mapping resampler.
//
// Steps:
//  1. Resolve the inverse model; fail before any output is touched.
//  2. Extend the source (constant background by default) and interpolate it.
//  3. For every destination coordinate x: sample the interpolant at
//     inverse(x) and store it in the destination element type.
//
// Complexity: O(size·(N² + 2^N)) for N-linear.

package algorithms

import (
	"fmt"

	"github.com/katalvlaran/lvlimg/core"
	"github.com/katalvlaran/lvlimg/interpolation"
	"github.com/katalvlaran/lvlimg/model"
	"github.com/katalvlaran/lvlimg/outofbounds"
	"github.com/katalvlaran/lvlimg/views"
)

const (
	ctxTransform     = "Transform"
	ctxTransformInto = "TransformInto"
)

// Transform returns a new image, created by im's factory, holding im mapped
// through m. Destination and source share one coordinate system.
// Errors: model.ErrNonInvertible, core.ErrDimensionMismatch.
func Transform[T core.Real](im core.Img[T], m model.Model, opts ...Option) (core.Img[T], error) {
	inv, err := resolveInverse(ctxTransform, im, m)
	if err != nil {
		return nil, err
	}
	out, err := core.CreateLike(im.Factory(), im, core.FirstElement[T](im))
	if err != nil {
		return nil, algErrorf(ctxTransform, err)
	}
	resample(im, out, inv, gatherOptions(defaultOptions(), opts...))

	return out, nil
}

// TransformInto writes src mapped through m into every coordinate of dst.
// Errors: model.ErrNonInvertible, core.ErrDimensionMismatch. dst is left
// untouched on error.
func TransformInto[S, D core.Real](src core.RandomAccessibleInterval[S], dst core.IterableInterval[D], m model.Model, opts ...Option) error {
	if src.NumDimensions() != dst.NumDimensions() {
		return fmt.Errorf("%s: %d-D source, %d-D destination: %w",
			ctxTransformInto, src.NumDimensions(), dst.NumDimensions(), core.ErrDimensionMismatch)
	}
	inv, err := resolveInverse(ctxTransformInto, src, m)
	if err != nil {
		return err
	}
	resample(src, dst, inv, gatherOptions(defaultOptions(), opts...))

	return nil
}

func resolveInverse(method string, sp core.EuclideanSpace, m model.Model) (model.Model, error) {
	if m.NumDimensions() != sp.NumDimensions() {
		return nil, fmt.Errorf("%s: %d-D model on %d-D image: %w",
			method, m.NumDimensions(), sp.NumDimensions(), core.ErrDimensionMismatch)
	}
	inv, err := m.Inverse()
	if err != nil {
		return nil, algErrorf(method, err)
	}

	return inv, nil
}

// extendFor maps the Boundary option to a policy.
func extendFor[T core.Real](o Options) outofbounds.Factory[T] {
	switch o.boundary {
	case BoundaryMirrorSingle:
		return outofbounds.MirrorSingle[T]{}
	case BoundaryMirrorDouble:
		return outofbounds.MirrorDouble[T]{}
	case BoundaryBorder:
		return outofbounds.Border[T]{}
	default:
		return outofbounds.NewValue(core.FromReal[T](o.background))
	}
}

func interpolatorFor[T core.Real](o Options) interpolation.Factory[T] {
	if o.interp == InterpNearest {
		return interpolation.NearestNeighbor[T]{}
	}

	return interpolation.NLinear[T]{}
}

func resample[S, D core.Real](src core.RandomAccessibleInterval[S], dst core.IterableInterval[D], inv model.Model, o Options) {
	ext := views.Extend(src, extendFor[S](o))
	rra := views.Interpolate[S](ext, interpolatorFor[S](o)).RealRandomAccess()

	tmp := make([]float64, dst.NumDimensions())
	c := dst.LocalizingCursor()
	for c.HasNext() {
		c.Fwd()
		core.LocalizeReal(c, tmp)
		inv.Apply(tmp, tmp)
		rra.SetRealPosition(tmp)
		c.Set(core.FromReal[D](rra.Get()))
	}
}
