// SPDX-License-Identifier: MIT

// Package labeling finds connected components of foreground samples in
// N-dimensional images and measures them.
//
// A sample is foreground when its value is strictly greater than the
// foreground cutoff (default 0). Two foreground samples are connected when
// they are neighbours under the chosen Connectivity:
//
//   - ConnFace: the 2·N samples sharing a face (4-connectivity in 2-D,
//     6-connectivity in 3-D).
//   - ConnFull: the 3^N−1 samples sharing a face, edge or corner
//     (8-connectivity in 2-D, 26-connectivity in 3-D).
//
// Components returns a Result holding an int32 label image (0 = background,
// 1..Count in order of first appearance in flat scan order) plus per-label
// sizes. Result.Bridge finds the cheapest chain of background samples that
// would join two components (0-1 BFS, each background sample costs 1).
//
// Complexity:
//   - Components: O(size · K) time with K neighbour offsets, O(size) memory.
//   - Bridge:     O(size · K) time, O(size) memory.
package labeling
