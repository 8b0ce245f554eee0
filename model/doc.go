// SPDX-License-Identifier: MIT

// Package model provides invertible coordinate transformations used to
// resample images: Translation, Scale, Rigid2D and the general Affine.
//
// Image transforms map every destination coordinate backwards through the
// inverse model, so Inverse is the operation that matters. It returns
// ErrNonInvertible for degenerate models (zero scale, singular matrix).
//
// Concatenate folds any chain of models into one Affine; matrix work
// (composition, inversion, determinant) is delegated to gonum/mat.
package model
