// Package algorithms implements storage-agnostic image algorithms on the
// lvlimg accessor contracts.
//
// It provides free-function implementations of:
//
//   - Measurements
//     – CenterOfMass: intensity-weighted mean coordinate.
//     – Statistics / Percentile: sample summaries (montanaflynn/stats).
//
//   - Filters
//     – Gradient: central-difference magnitude on a mirror-extended input.
//     – GradientParallel: the same, split into slabs over a worker group.
//
//   - Threshold family (one algorithm, four element/output policies)
//     – ThresholdInPlace, Threshold, ThresholdTo, ThresholdBits.
//
//   - Resampling
//     – Transform / TransformInto: backward mapping through an inverse model,
//     sampled from an extended, interpolated source.
//
//   - Pairwise traversal
//     – Copy, and the shared zip-or-positional traversal used by every
//     algorithm that writes one output sample per input sample.
//
// Pairwise traversal:
//
// Two cursors may run in lock-step only when both images declare the same
// iteration order (see core.SameIterationOrder). Otherwise the source is
// walked with a localizing cursor and the destination is addressed by a
// RandomAccess translated by the source min. WithTraversal forces either
// path; forcing the zip path on incompatible orders returns
// ErrIncompatibleOrder instead of silently scrambling the output.
//
// Options are functional Option values built by WithX constructors, which
// panic on nonsensical arguments; unset knobs take the Default* constants.
//
// Errors:
//
//   - core.ErrDimensionMismatch: input and output shapes disagree.
//   - ErrIncompatibleOrder: forced zip on differing iteration orders.
//   - model.ErrNonInvertible: Transform with a degenerate model.
//   - ErrEmptyInput: statistics over no samples.
//   - context errors from GradientParallel.
//
// Library code never logs; callers decide what to report.
package algorithms
