// SPDX-License-Identifier: MIT
// Package algorithms: sentinel errors. Shape errors reuse
// core.ErrDimensionMismatch; model errors are passed through unchanged.

package algorithms

import (
	"errors"
	"fmt"
)

var (
	// ErrIncompatibleOrder indicates TraversalZip was forced on two images
	// whose iteration orders differ.
	ErrIncompatibleOrder = errors.New("algorithms: incompatible iteration order")

	// ErrEmptyInput indicates a statistic requested over zero samples.
	ErrEmptyInput = errors.New("algorithms: empty input")
)

// algErrorf wraps err with an entry-point tag.
func algErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
