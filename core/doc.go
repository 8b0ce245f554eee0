// Package core defines the vocabulary shared by every lvlimg package:
// intervals, positions, element constraints, accessor contracts and
// iteration-order descriptors.
//
// What:
//
//   - Interval: an immutable axis-aligned N-dimensional integer box.
//   - Point: a mutable N-dimensional integer position.
//   - Cursor / RandomAccess: single-owner accessors for sequential and
//     random access over any storage layout or view.
//   - RealRandomAccess: continuous-coordinate sampling (interpolation).
//   - IterationOrder: a declared, structural enumeration order used to decide
//     whether two images can be traversed in lock-step.
//   - Real / Bit: element constraints and the two-valued output type.
//
// Why:
//
//   - Algorithms written against these contracts never see the storage
//     layout: a flat array, a set of planes, a grid of cells, an extended
//     or translated view all look the same.
//
// Accessor lifecycle:
//
//	NotStarted --Fwd--> Positioned --Fwd--> ... --Fwd--> Exhausted
//
// HasNext reports whether one more Fwd is legal. Fwd past the end panics;
// so does indexing a dimension >= NumDimensions(). Both are programming
// errors, not recoverable conditions.
//
// Errors:
//
//   - ErrDimensionMismatch: operands disagree on dimensionality or shape.
//   - ErrBadShape: min > max, non-positive extents, or no dimensions at all.
//
// Concurrency:
//
//   - Nothing here locks. Independent read-only accessors may run in
//     parallel; a writing accessor must not overlap any other accessor on
//     the same coordinates.
package core
