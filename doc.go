// SPDX-License-Identifier: MIT

// Package lvlimg is an N-dimensional image access kernel: typed images
// over interchangeable storage layouts, lazy views, and a handful of
// algorithms written once against accessor interfaces.
//
// What is in the box:
//
//   - Storage: flat arrays, per-plane slices, and tiled cells (img).
//   - Accessors: cursors that visit every sample in a declared order and
//     random accesses that move anywhere (core).
//   - Views: out-of-bounds extension, interpolation, sub-intervals and
//     translation, all without copying (views, outofbounds, interpolation).
//   - Models: translation, scale, 2-D rigid and N-d affine maps (model).
//   - Algorithms: centre of mass, gradient magnitude (sequential and
//     parallel), thresholding, model-driven transform, statistics
//     (algorithms), connected components (labeling).
//   - Fixtures: deterministic synthetic images (builder).
//
// Layout:
//
//	core/          - Interval, Point, accessor contracts, iteration orders, element types
//	img/           - ArrayImg, PlanarImg, CellImg, factories, image.Gray bridge
//	outofbounds/   - mirror (single/double), border and constant policies
//	interpolation/ - N-linear and nearest-neighbour samplers
//	views/         - Extend*, Interpolate, Interval, Translate, ZeroMin
//	model/         - Translation, Scale, Rigid2D, Affine (gonum)
//	algorithms/    - CenterOfMass, Gradient, Threshold*, Transform, Copy, Statistics
//	labeling/      - connected components and bridges between them
//	builder/       - synthetic image constructors
//	cmd/lvlimg/    - command-line front end
//
// Quick example:
//
//	im, _ := img.NewArrayImg[float32](0, 9, 7)
//	_ = im.SetAt(10, 6, 2)
//	fmt.Println(algorithms.CenterOfMass[float32](im)) // [6 2]
//
//	go get github.com/katalvlaran/lvlimg
package lvlimg
