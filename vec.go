// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fixgeom

import "fmt"

// FixVec is a 2D vector of fixed-point components.
//
// FixVec is a value type. Products (Dot, Cross, SqrLength) are returned as
// raw int64 values carrying SqrFractionBits fractional bits; the Fix*
// variants rescale them back to FractionBits.
type FixVec struct {
	X, Y FixFloat
}

// FixVecZero is the zero vector.
var FixVecZero = FixVec{}

// NewFixVec creates a FixVec from fixed-point components.
func NewFixVec(x, y FixFloat) FixVec {
	return FixVec{X: x, Y: y}
}

// FixVecFromInt creates a FixVec from whole numbers.
func FixVecFromInt(x, y int64) FixVec {
	return FixVec{X: FixFromInt(x), Y: FixFromInt(y)}
}

// FixVecFromFloat64 creates a FixVec from float64 components.
func FixVecFromFloat64(x, y float64) FixVec {
	return FixVec{X: FixFromFloat64(x), Y: FixFromFloat64(y)}
}

// FixVecFromPoint reinterprets an integer grid point as raw FixVec components.
func FixVecFromPoint(p IntPoint) FixVec {
	return FixVec{X: FixFloat(p.X), Y: FixFloat(p.Y)}
}

// IsZero reports whether both components are zero.
func (v FixVec) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Add returns v + w.
func (v FixVec) Add(w FixVec) FixVec {
	return FixVec{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns v - w.
func (v FixVec) Sub(w FixVec) FixVec {
	return FixVec{X: v.X - w.X, Y: v.Y - w.Y}
}

// Neg returns -v.
func (v FixVec) Neg() FixVec {
	return FixVec{X: -v.X, Y: -v.Y}
}

// Half returns v / 2, rounded toward negative infinity per component.
func (v FixVec) Half() FixVec {
	return FixVec{X: v.X >> 1, Y: v.Y >> 1}
}

// FixMul returns v scaled by s, rounded toward negative infinity.
func (v FixVec) FixMul(s FixFloat) FixVec {
	return FixVec{X: v.X.Mul(s), Y: v.Y.Mul(s)}
}

// Dot returns the raw dot product v·w.
func (v FixVec) Dot(w FixVec) int64 {
	if checksEnabled {
		v.require("FixVec.Dot")
		w.require("FixVec.Dot")
	}
	return int64(v.X)*int64(w.X) + int64(v.Y)*int64(w.Y)
}

// Cross returns the raw 2D cross product v×w.
// A positive value means w is counter-clockwise from v.
func (v FixVec) Cross(w FixVec) int64 {
	if checksEnabled {
		v.require("FixVec.Cross")
		w.require("FixVec.Cross")
	}
	return int64(v.X)*int64(w.Y) - int64(v.Y)*int64(w.X)
}

// FixDot returns the dot product as a FixFloat.
func (v FixVec) FixDot(w FixVec) FixFloat {
	return FixFloat(v.Dot(w) >> FractionBits)
}

// FixCross returns the cross product as a FixFloat.
func (v FixVec) FixCross(w FixVec) FixFloat {
	return FixFloat(v.Cross(w) >> FractionBits)
}

// SqrLength returns the raw squared length x*x + y*y.
func (v FixVec) SqrLength() int64 {
	if checksEnabled {
		v.require("FixVec.SqrLength")
	}
	x, y := int64(v.X), int64(v.Y)
	return x*x + y*y
}

// FixSqrLength returns the squared length as a FixFloat.
func (v FixVec) FixSqrLength() FixFloat {
	return FixFloat(v.SqrLength() >> FractionBits)
}

// SqrLengthWide returns the exact squared length as a 128-bit value.
// It is defined for every int64 component.
func (v FixVec) SqrLengthWide() Uint128 {
	x, y := absU64(int64(v.X)), absU64(int64(v.Y))
	return MulU64(x, x).Add(MulU64(y, y))
}

// Length returns |v| rounded down to the last fractional bit.
//
// Components within the overflow-safe bound use 64-bit arithmetic. Larger
// components take the 128-bit path, which stays exact for components up to
// ±2^62.
func (v FixVec) Length() FixFloat {
	if InRange(v.X) && InRange(v.Y) {
		x, y := int64(v.X), int64(v.Y)
		return FixFloat(Isqrt(x*x + y*y))
	}
	return FixFloat(SqrtU128(v.SqrLengthWide()))
}

// Normalize returns v scaled to unit length.
//
// Normalize of the zero vector divides by zero and panics. Geometry code that
// cannot rule out a zero vector should call SafeNormalize.
func (v FixVec) Normalize() FixVec {
	l := int64(v.Length())
	if checksEnabled && l == 0 {
		violate("FixVec.Normalize", ErrDivideByZero, "zero vector")
	}
	return FixVec{
		X: FixFloat(floorDiv(int64(v.X)<<FractionBits, l)),
		Y: FixFloat(floorDiv(int64(v.Y)<<FractionBits, l)),
	}
}

// SafeNormalize returns def when v is exactly zero and v.Normalize() otherwise.
func (v FixVec) SafeNormalize(def FixVec) FixVec {
	if v.IsZero() {
		return def
	}
	return v.Normalize()
}

// Distance returns |v - w|.
func (v FixVec) Distance(w FixVec) FixFloat {
	return v.Sub(w).Length()
}

// SqrDistance returns the raw squared distance |v - w|².
// The difference v - w must lie within [FixMin, FixMax]; use SqrDistanceWide
// for arbitrary in-range vectors.
func (v FixVec) SqrDistance(w FixVec) int64 {
	return v.Sub(w).SqrLength()
}

// SqrDistanceWide returns the exact squared distance |v - w|² as a 128-bit
// value. It is defined for every pair of in-range vectors.
func (v FixVec) SqrDistanceWide(w FixVec) Uint128 {
	return v.Sub(w).SqrLengthWide()
}

// Equal reports whether v and w are identical.
func (v FixVec) Equal(w FixVec) bool {
	return v == w
}

// Float64 returns the components as float64 values.
func (v FixVec) Float64() (x, y float64) {
	return v.X.Float64(), v.Y.Float64()
}

func (v FixVec) String() string {
	return fmt.Sprintf("[%s, %s]", v.X, v.Y)
}

func (v FixVec) require(op string) {
	requireRange(op, v.X)
	requireRange(op, v.Y)
}

func absU64(a int64) uint64 {
	if a < 0 {
		return uint64(-a)
	}
	return uint64(a)
}
