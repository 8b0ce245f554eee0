// SPDX-License-Identifier: MIT
// Package img: sentinel errors. Shape errors from package core are wrapped,
// never replaced, so errors.Is(err, core.ErrBadShape) keeps working.

package img

import (
	"errors"
	"fmt"
)

var (
	// ErrCannotWrap indicates an external buffer whose layout matches none of
	// the supported backends (wrong length, padded rows, missing planes).
	// Callers may recover, e.g. by substituting a default input.
	ErrCannotWrap = errors.New("img: cannot wrap buffer")

	// ErrOutOfBounds indicates a checked At/SetAt outside the image domain.
	ErrOutOfBounds = errors.New("img: position out of bounds")
)

// panic messages for accessor precondition violations.
const (
	panicExhausted   = "img: Fwd on exhausted cursor"
	panicJumpPastEnd = "img: Jump past the last element"
	panicCellOutside = "img: CellImg access outside the image domain"
)

// imgErrorf wraps err with a constructor/method tag.
func imgErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
