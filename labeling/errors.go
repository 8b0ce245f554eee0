// SPDX-License-Identifier: MIT

package labeling

import (
	"errors"
	"fmt"
)

var (
	// ErrLabelRange indicates a label outside 1..Count.
	ErrLabelRange = errors.New("labeling: label out of range")

	// ErrNoPath indicates that Bridge found no chain between two components.
	ErrNoPath = errors.New("labeling: no path between components")
)

func labelErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
