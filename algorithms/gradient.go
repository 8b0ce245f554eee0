// SPDX-License-Identifier: MIT

// Package algorithms - gradient magnitude.
//
// For every output coordinate x:
//
//	g(x) = sqrt( Σ_d (src(x+e_d) − src(x−e_d))² / 4 )
//
// sampled from the mirror-single extension of src, so border samples use
// their inner neighbour instead of a fabricated value.
//
// Complexity: O(size·N) time; GradientParallel splits the output into slabs
// along the last axis, each with its own read-only source accessor.

package algorithms

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvlimg/core"
	"github.com/katalvlaran/lvlimg/views"
)

const (
	ctxGradient         = "Gradient"
	ctxGradientParallel = "GradientParallel"
)

// Gradient returns the central-difference gradient magnitude of src as a new
// zero-min image of element type D created by f. It runs on the calling
// goroutine unless WithWorkers(n > 1) is given, in which case it is
// GradientParallel with a background context.
// Errors: factory allocation errors.
func Gradient[T, D core.Real](src core.RandomAccessibleInterval[T], f core.Factory[D], opts ...Option) (core.Img[D], error) {
	base := defaultOptions()
	base.workers = 1
	if o := gatherOptions(base, opts...); o.workers > 1 {
		return GradientParallel(context.Background(), src, f, opts...)
	}

	out, err := newGradientOutput(ctxGradient, src, f)
	if err != nil {
		return nil, err
	}
	gradientRange(out, gradientSource(src))

	return out, nil
}

// GradientParallel computes the same image as Gradient with up to
// WithWorkers goroutines (DefaultWorkers otherwise). It stops scheduling
// slabs once ctx is done and returns ctx.Err(); the output is then partial
// and discarded.
// Errors: factory allocation errors, context errors.
func GradientParallel[T, D core.Real](ctx context.Context, src core.RandomAccessibleInterval[T], f core.Factory[D], opts ...Option) (core.Img[D], error) {
	o := gatherOptions(defaultOptions(), opts...)

	out, err := newGradientOutput(ctxGradientParallel, src, f)
	if err != nil {
		return nil, err
	}
	zsrc := gradientSource(src)

	b := out.Bounds()
	last := b.NumDimensions() - 1
	extent := b.Dimension(last)
	slabs := min(o.workers, extent)
	step := (extent + slabs - 1) / slabs

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for start := 0; start < extent; start += step {
		if gctx.Err() != nil {
			break
		}
		lo, hi := b.Mins(), b.Maxs()
		lo[last], hi[last] = start, min(start+step, extent)-1
		slab, err := views.IntervalMinMax[D](out, lo, hi)
		if err != nil {
			return nil, algErrorf(ctxGradientParallel, err)
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			gradientRange(slab, zsrc)

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, algErrorf(ctxGradientParallel, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, algErrorf(ctxGradientParallel, err)
	}

	return out, nil
}

func newGradientOutput[T, D core.Real](method string, src core.RandomAccessibleInterval[T], f core.Factory[D]) (core.Img[D], error) {
	var zero D
	out, err := core.CreateLike(f, src, zero)
	if err != nil {
		return nil, algErrorf(method, err)
	}

	return out, nil
}

// gradientSource extends src by mirror-single and shifts it so that output
// coordinate x reads src at x + src.min.
func gradientSource[T core.Real](src core.RandomAccessibleInterval[T]) core.RandomAccessible[T] {
	mins := src.Bounds().Mins()
	for d := range mins {
		mins[d] = -mins[d]
	}
	zsrc, _ := views.Translate[T](views.ExtendMirrorSingle(src), mins...) // N always matches

	return zsrc
}

// gradientRange fills every sample of out from its own source accessor.
func gradientRange[T, D core.Real](out core.IterableInterval[D], src core.RandomAccessible[T]) {
	ra := src.RandomAccess()
	c := out.LocalizingCursor()
	n := out.NumDimensions()
	for c.HasNext() {
		c.Fwd()
		sum := 0.0
		for d := 0; d < n; d++ {
			core.SetPositionFrom(ra, c)
			ra.Bck(d)
			v1 := core.ToReal(ra.Get())
			ra.Move(d, 2)
			v2 := core.ToReal(ra.Get())
			sum += (v2 - v1) * (v2 - v1) / 4
		}
		c.Set(core.FromReal[D](math.Sqrt(sum)))
	}
}
