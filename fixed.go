// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fixgeom

import (
	"math"
	"strconv"
)

// Fixed-point scalar for exact geometry.
//
// FixFloat is a 53.10 fixed-point number stored in an int64: the represented
// value is raw / 2^10. Coordinates are kept within 31 significant bits
// (|raw| <= FixMax) so that the sum of two products of them fits in 64 bits.
// The bound is symmetric: math.MinInt32 is excluded because
// 2 * MinInt32^2 == 2^63 wraps int64.
//
// Rounding: every multiply and divide path rounds toward negative infinity
// (arithmetic right shift for Mul/Sqr, floor division for Div). Conversions
// from floating point round to nearest, halves away from zero.

// FixFloat is a fixed-point number with FractionBits fractional bits.
type FixFloat int64

// FractionBits is the number of fractional bits of FixFloat. It is part of the
// public numeric contract: changing it changes the precision of every consumer.
const FractionBits = 10

// Fixed-point constants.
const (
	// SqrFractionBits is the fraction width of a product of two FixFloat values.
	SqrFractionBits = 2 * FractionBits

	// FixZero is 0.0.
	FixZero FixFloat = 0

	// FixUnit is 1.0 (2^10 = 1024).
	FixUnit FixFloat = 1 << FractionBits

	// FixHalf is 0.5 (2^9 = 512).
	FixHalf FixFloat = 1 << (FractionBits - 1)

	// FixSqrUnit is 1.0 at doubled fraction bits (2^20).
	FixSqrUnit int64 = 1 << SqrFractionBits

	// FixMask is the mask for the fractional part.
	FixMask = FixUnit - 1

	// FixMax is the largest raw value that may be multiplied without overflow.
	FixMax FixFloat = math.MaxInt32

	// FixMin is the smallest raw value that may be multiplied without overflow.
	FixMin FixFloat = -math.MaxInt32

	// FixPi is pi rounded to FixFloat (3217 / 1024).
	FixPi FixFloat = 3217
)

// maxIsqrt is floor(sqrt(math.MaxInt64)).
const maxIsqrt = 3037000499

// FixFromInt converts a whole number to FixFloat.
func FixFromInt(n int64) FixFloat {
	return FixFloat(n << FractionBits)
}

// FixFromFloat64 converts a float64 to FixFloat, rounding halves away from zero.
func FixFromFloat64(f float64) FixFloat {
	return FixFloat(math.Round(f * float64(FixUnit)))
}

// FixFromFloat32 converts a float32 to FixFloat, rounding halves away from zero.
func FixFromFloat32(f float32) FixFloat {
	return FixFromFloat64(float64(f))
}

// Float64 returns the value as float64.
func (a FixFloat) Float64() float64 {
	return float64(a) / float64(FixUnit)
}

// Float32 returns the value as float32.
func (a FixFloat) Float32() float32 {
	return float32(a) / float32(FixUnit)
}

// Int returns the integer part, rounded toward negative infinity.
func (a FixFloat) Int() int64 {
	return int64(a) >> FractionBits
}

// Round returns the nearest integer, halves rounded up.
func (a FixFloat) Round() int64 {
	return int64(a+FixHalf) >> FractionBits
}

// Add returns a + b. The result is exact.
func (a FixFloat) Add(b FixFloat) FixFloat {
	return a + b
}

// Sub returns a - b. The result is exact.
func (a FixFloat) Sub(b FixFloat) FixFloat {
	return a - b
}

// Neg returns -a.
func (a FixFloat) Neg() FixFloat {
	return -a
}

// Abs returns |a|.
func (a FixFloat) Abs() FixFloat {
	if a < 0 {
		return -a
	}
	return a
}

// Sign returns -1, 0 or 1.
func (a FixFloat) Sign() int {
	switch {
	case a < 0:
		return -1
	case a > 0:
		return 1
	default:
		return 0
	}
}

// Mul returns a * b rounded toward negative infinity.
// Both operands must lie within [FixMin, FixMax].
func (a FixFloat) Mul(b FixFloat) FixFloat {
	if checksEnabled {
		requireRange("FixFloat.Mul", a)
		requireRange("FixFloat.Mul", b)
	}
	return FixFloat((int64(a) * int64(b)) >> FractionBits)
}

// Sqr returns a * a rounded toward negative infinity.
func (a FixFloat) Sqr() FixFloat {
	if checksEnabled {
		requireRange("FixFloat.Sqr", a)
	}
	return FixFloat((int64(a) * int64(a)) >> FractionBits)
}

// Div returns a / b rounded toward negative infinity.
// Division by zero panics; use CheckedDiv when b may be zero.
func (a FixFloat) Div(b FixFloat) FixFloat {
	if checksEnabled {
		requireRange("FixFloat.Div", a)
		if b == 0 {
			violate("FixFloat.Div", ErrDivideByZero, "")
		}
	}
	return FixFloat(floorDiv(int64(a)<<FractionBits, int64(b)))
}

// Sqrt returns the square root of a. The raw value is reinterpreted at
// doubled fraction bits, so the result is exact to the last fractional bit
// (rounded down). Negative values are a precondition violation.
func (a FixFloat) Sqrt() FixFloat {
	if checksEnabled {
		requireRange("FixFloat.Sqrt", a)
		if a < 0 {
			violate("FixFloat.Sqrt", ErrNegativeSqrt, a.String())
		}
	}
	if a <= 0 {
		return 0
	}
	return FixFloat(Isqrt(int64(a) << FractionBits))
}

// String formats the value in decimal float units.
func (a FixFloat) String() string {
	return strconv.FormatFloat(a.Float64(), 'f', -1, 64)
}

// Isqrt returns floor(sqrt(v)) for v >= 0 and 0 for v < 0.
//
// The seed comes from math.Sqrt and is then corrected in integer arithmetic,
// so the result is exact despite float rounding in the seed.
func Isqrt(v int64) int64 {
	if v <= 0 {
		return 0
	}
	a := int64(math.Sqrt(float64(v)))
	if a > maxIsqrt {
		a = maxIsqrt
	}
	for a*a > v {
		a--
	}
	for a < maxIsqrt && (a+1)*(a+1) <= v {
		a++
	}
	return a
}

// floorDiv returns floor(a / b).
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
