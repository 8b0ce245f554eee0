// SPDX-License-Identifier: MIT

// Package outofbounds defines extension policies: ways to give a bounded
// image a value at every integer coordinate.
//
// What:
//
//   - MirrorSingle: reflect at the edge without repeating it (…2 1 0 1 2…).
//   - MirrorDouble: reflect and repeat the edge (…1 0 0 1 2…).
//   - Value: a caller-supplied constant outside, writes there are discarded.
//   - Border: clamp to the nearest edge sample.
//
// Every policy is a Factory: Create(src) returns an accessor that wraps a
// RandomAccess of src, so policies compose with storage backends and views
// alike. Relative moves stay O(1) and the position reported by the accessor
// is always the virtual (unfolded) one.
//
// Typical use goes through package views:
//
//	ext := views.ExtendMirrorSingle[float32](src)
//	ra := ext.RandomAccess()
//	ra.SetPosition([]int{-1, 0}) // reads src at (1, 0)
package outofbounds
