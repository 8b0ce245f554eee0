// Package img provides the storage backends of lvlimg: owning N-dimensional
// element buffers with zero-copy accessors.
//
// Layouts:
//
//   - ArrayImg: one flat slice, axis 0 varying fastest. Flat iteration order.
//   - PlanarImg: one slice per 2-D plane (axes 0 and 1); higher axes select
//     the plane. Flat iteration order, same as ArrayImg.
//   - CellImg: the domain is tiled into cells (blocks) of fixed extent, each
//     cell its own slice. Cell iteration order: cell by cell, flat inside a
//     cell. Differs from flat order whenever a cell is narrower than the
//     image along any axis but the last.
//
// Every backend hands out a RandomAccess (O(1) relative moves), a plain
// Cursor (position computed on demand) and a LocalizingCursor (position
// tracked incrementally). Accessor Get outside the domain is undefined;
// wrap the image with an outofbounds policy (see package views) to read
// beyond its edges.
//
// Collaborator boundary:
//
//   - WrapSlice, WrapPlanes, WrapGray adapt external buffers without copying,
//     or fail with ErrCannotWrap when the layout does not match.
//   - ToGray renders a 2-D real image into a fresh *image.Gray.
//
// Complexity quicksheet:
//   - New*: O(size) fill; RandomAccess Fwd/Bck/Move: O(1);
//     Cursor Fwd: O(1); Cursor Position: O(1) per axis; At/SetAt: O(N).
package img
