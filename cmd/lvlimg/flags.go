// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/katalvlaran/lvlimg/algorithms"
)

func parseTraversal(s string) (algorithms.Traversal, error) {
	switch s {
	case "auto":
		return algorithms.TraversalAuto, nil
	case "zip":
		return algorithms.TraversalZip, nil
	case "positional":
		return algorithms.TraversalPositional, nil
	}

	return 0, fmt.Errorf("unknown traversal %q (auto, zip, positional)", s)
}

func parseInterp(s string) (algorithms.Interp, error) {
	switch s {
	case "nlinear":
		return algorithms.InterpNLinear, nil
	case "nearest":
		return algorithms.InterpNearest, nil
	}

	return 0, fmt.Errorf("unknown interpolation %q (nlinear, nearest)", s)
}

func parseBoundary(s string) (algorithms.Boundary, error) {
	switch s {
	case "value":
		return algorithms.BoundaryValue, nil
	case "mirror-single":
		return algorithms.BoundaryMirrorSingle, nil
	case "mirror-double":
		return algorithms.BoundaryMirrorDouble, nil
	case "border":
		return algorithms.BoundaryBorder, nil
	}

	return 0, fmt.Errorf("unknown boundary %q (value, mirror-single, mirror-double, border)", s)
}
