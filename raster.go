// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fixgeom

import "golang.org/x/image/math/fixed"

// Conversions between FixFloat (10 fractional bits) and the fixed-point types
// of golang.org/x/image/math/fixed used by font and raster code:
//
//   - Int26_6:  6 fractional bits, narrowed with floor and saturated to int32
//   - Int52_12: 12 fractional bits, widened exactly

const shift26_6 = FractionBits - 6

// Int26_6 returns a as a 26.6 fixed-point value, rounded toward negative
// infinity and saturated to the int32 range.
func (a FixFloat) Int26_6() fixed.Int26_6 {
	return fixed.Int26_6(saturateInt32(int64(a) >> shift26_6))
}

// Int52_12 returns a as a 52.12 fixed-point value. The conversion is exact
// for |a| < 2^61.
func (a FixFloat) Int52_12() fixed.Int52_12 {
	return fixed.Int52_12(int64(a) << (12 - FractionBits))
}

// FixFromInt26_6 converts a 26.6 fixed-point value to FixFloat exactly.
func FixFromInt26_6(v fixed.Int26_6) FixFloat {
	return FixFloat(int64(v) << shift26_6)
}

// FixFromInt52_12 converts a 52.12 fixed-point value to FixFloat, rounded
// toward negative infinity.
func FixFromInt52_12(v fixed.Int52_12) FixFloat {
	return FixFloat(int64(v) >> (12 - FractionBits))
}

// Point26_6 returns v as a fixed.Point26_6.
func (v FixVec) Point26_6() fixed.Point26_6 {
	return fixed.Point26_6{X: v.X.Int26_6(), Y: v.Y.Int26_6()}
}

// FixVecFromPoint26_6 converts a fixed.Point26_6 to FixVec exactly.
func FixVecFromPoint26_6(p fixed.Point26_6) FixVec {
	return FixVec{X: FixFromInt26_6(p.X), Y: FixFromInt26_6(p.Y)}
}

// Rectangle26_6 returns the bounding box of the FixVec corners a and b as a
// fixed.Rectangle26_6, corners in any order.
func Rectangle26_6(a, b FixVec) fixed.Rectangle26_6 {
	lo := FixVec{X: min(a.X, b.X), Y: min(a.Y, b.Y)}
	hi := FixVec{X: max(a.X, b.X), Y: max(a.Y, b.Y)}
	return fixed.Rectangle26_6{Min: lo.Point26_6(), Max: hi.Point26_6()}
}

// saturateInt32 clamps an int64 to the int32 range.
func saturateInt32(v int64) int32 {
	const maxInt32 = 0x7FFFFFFF
	const minInt32 = -0x80000000

	if v > maxInt32 {
		return maxInt32
	}
	if v < minInt32 {
		return minInt32
	}
	return int32(v)
}
