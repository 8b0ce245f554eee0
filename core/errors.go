// SPDX-License-Identifier: MIT
// Package core: sentinel error set.
// Every message is prefixed with "core: ..." for grep-ability. Callers match
// with errors.Is; call sites attach context through coreErrorf.

package core

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch indicates operands of differing dimensionality or
	// incompatible per-axis extents (e.g. min/max of unequal length, a
	// position vector of the wrong length, two images of different shape).
	ErrDimensionMismatch = errors.New("core: dimension mismatch")

	// ErrBadShape indicates an interval that cannot exist: no dimensions,
	// min[d] > max[d], or a non-positive extent.
	ErrBadShape = errors.New("core: invalid shape")
)

// coreErrorf wraps a sentinel with the calling constructor/method tag.
func coreErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
