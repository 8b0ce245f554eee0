// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlimg/core"
)

// Constructor paints into im using the resolved builderConfig. It must
// validate its parameters and return sentinel errors instead of panicking.
type Constructor[T core.Real] func(im core.Img[T], cfg builderConfig) error

// BuildImage allocates a zero-filled image of dims through f, resolves the
// configuration from bopts and applies cons in order.
// Errors: ErrConstructFailed (nil constructor, allocation failure) and any
// constructor error, wrapped with "BuildImage: ".
// Complexity: O(size) for allocation plus Σ constructor costs.
func BuildImage[T core.Real](f core.Factory[T], dims []int, bopts []BuilderOption, cons ...Constructor[T]) (core.Img[T], error) {
	var zero T
	im, err := f.Create(zero, dims...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", MethodBuildImage, ErrConstructFailed, err)
	}
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("%s: nil constructor at index %d: %w", MethodBuildImage, i, ErrConstructFailed)
		}
		if err = fn(im, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", MethodBuildImage, err)
		}
	}

	return im, nil
}

// paint rewrites every sample of im as fn(position, current value).
func paint[T core.Real](im core.Img[T], cfg builderConfig, fn func(pos []int, old float64) float64) {
	pos := make([]int, im.NumDimensions())
	c := im.LocalizingCursor()
	for c.HasNext() {
		c.Fwd()
		c.Localize(pos)
		c.Set(core.FromReal[T](cfg.bound(fn(pos, core.ToReal(c.Get())))))
	}
}
