// SPDX-License-Identifier: MIT

// Package core - element constraints.
//
// Storage is generic over any element type. Numeric algorithms bound their
// type parameter by Real and go through ToReal/FromReal; ordering-only
// algorithms bound it by cmp.Ordered. There is no runtime type inspection.

package core

import "math"

// Floats is a constraint for floating-point element types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer element types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int
}

// UnsignedInts is a constraint for unsigned integer element types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// Integers is a constraint for all integer element types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Real is the "has a canonical real value" capability: every element type
// that converts to and from float64.
type Real interface {
	Floats | Integers
}

// Bit is the two-valued element type (0 or 1). It satisfies Real, so bit
// images flow through every numeric algorithm.
type Bit uint8

const (
	// BitOff is the 0 level.
	BitOff Bit = 0
	// BitOn is the 1 level.
	BitOn Bit = 1
)

// Bool reports whether b is on.
func (b Bit) Bool() bool { return b != BitOff }

// BitOf maps a bool to BitOn/BitOff.
func BitOf(v bool) Bit {
	if v {
		return BitOn
	}

	return BitOff
}

// ToReal returns the canonical real value of v.
func ToReal[T Real](v T) float64 { return float64(v) }

// FromReal converts x to T. Integer kinds round half away from zero;
// values outside T's range are not clamped and convert as Go does.
func FromReal[T Real](x float64) T {
	if IsIntegerType[T]() {
		return T(math.Round(x))
	}

	return T(x)
}

// IsIntegerType reports whether T truncates fractional values.
func IsIntegerType[T Real]() bool {
	half := 0.5

	return T(half) == 0
}
