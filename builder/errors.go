// SPDX-License-Identifier: MIT

package builder

import (
	"errors"
	"fmt"
)

// ErrTooSmall indicates a size or scale parameter below its minimum
// (count < 1, square < 1, sigma <= 0, axis outside the image).
var ErrTooSmall = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates a stochastic constructor was applied without
// WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates the image could not be built at all.
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf prefixes err with the constructor name, keeping the sentinel
// reachable through errors.Is.
func builderErrorf(method, format string, err error, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
