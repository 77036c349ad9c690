// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fixgeom

import "fmt"

// Orientation predicates.
//
// For a triple (p0, p1, p2) the doubled signed area is
//
//	AreaTwo = (p1 - p0) × (p1 - p2)
//
// and the triple is clockwise when AreaTwo > 0 (y axis pointing up).
// Collinear triples are valid input with AreaTwo == 0.
//
// The sign-only predicates are exact for every FixVec within [FixMin, FixMax]
// and every IntPoint: when a product may exceed 64 bits the sign is resolved
// with MulU64. AreaTwo itself returns an int64 and is exact while the
// coordinates stay within the adapter's grid (|c| <= 2^30).

// Direction is the turn direction of an ordered point triple.
type Direction int

// Direction values, matching the sign of AreaTwo.
const (
	CounterClockwise Direction = iota - 1
	Collinear
	Clockwise
)

var directionLabels = [3]string{"CounterClockwise", "Collinear", "Clockwise"}

func (d Direction) String() string {
	if d < CounterClockwise || d > Clockwise {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionLabels[d+1]
}

// AreaTwo returns the doubled signed area of the triangle (p0, p1, p2).
func AreaTwo(p0, p1, p2 FixVec) int64 {
	return p1.Sub(p0).Cross(p1.Sub(p2))
}

// Area returns the signed area of the triangle (p0, p1, p2), rounded toward
// negative infinity.
func Area(p0, p1, p2 FixVec) int64 {
	return AreaTwo(p0, p1, p2) >> 1
}

// FixArea returns the signed area as a FixFloat, rounded toward negative
// infinity.
func FixArea(p0, p1, p2 FixVec) FixFloat {
	return p1.Sub(p0).FixCross(p1.Sub(p2)) >> 1
}

// ClockDirection returns the sign of AreaTwo(p0, p1, p2).
func ClockDirection(p0, p1, p2 FixVec) Direction {
	a, b := p1.Sub(p0), p1.Sub(p2)
	return Direction(crossSign(int64(a.X), int64(a.Y), int64(b.X), int64(b.Y)))
}

// IsClockwise reports whether AreaTwo(p0, p1, p2) > 0.
func IsClockwise(p0, p1, p2 FixVec) bool {
	return ClockDirection(p0, p1, p2) == Clockwise
}

// IsCwOrCollinear reports whether AreaTwo(p0, p1, p2) >= 0.
func IsCwOrCollinear(p0, p1, p2 FixVec) bool {
	return ClockDirection(p0, p1, p2) != CounterClockwise
}

// IsCollinear reports whether AreaTwo(p0, p1, p2) == 0.
func IsCollinear(p0, p1, p2 FixVec) bool {
	return ClockDirection(p0, p1, p2) == Collinear
}

// IsNotCollinear reports whether AreaTwo(p0, p1, p2) != 0.
func IsNotCollinear(p0, p1, p2 FixVec) bool {
	return ClockDirection(p0, p1, p2) != Collinear
}

// ContainsPoint reports whether p lies inside the triangle (p0, p1, p2) or on
// its border. Either vertex order is accepted.
func ContainsPoint(p, p0, p1, p2 FixVec) bool {
	s0, s1, s2 := edgeSigns(p, p0, p1, p2)
	return !mixedSigns(s0, s1, s2)
}

// ContainsPointExcludeBorders reports whether p lies strictly inside the
// triangle (p0, p1, p2).
func ContainsPointExcludeBorders(p, p0, p1, p2 FixVec) bool {
	s0, s1, s2 := edgeSigns(p, p0, p1, p2)
	return !mixedSigns(s0, s1, s2) && s0 != 0 && s1 != 0 && s2 != 0
}

// NotContainsPoint reports whether p lies strictly outside the triangle
// (p0, p1, p2) or on its border.
func NotContainsPoint(p, p0, p1, p2 FixVec) bool {
	s0, s1, s2 := edgeSigns(p, p0, p1, p2)
	hasNeg := s0 <= 0 || s1 <= 0 || s2 <= 0
	hasPos := s0 >= 0 || s1 >= 0 || s2 >= 0
	return hasNeg && hasPos
}

// AreaTwoInt returns the doubled signed area of the triangle (p0, p1, p2).
func AreaTwoInt(p0, p1, p2 IntPoint) int64 {
	x0 := int64(p1.X) - int64(p0.X)
	y0 := int64(p1.Y) - int64(p0.Y)
	x1 := int64(p1.X) - int64(p2.X)
	y1 := int64(p1.Y) - int64(p2.Y)
	return x0*y1 - x1*y0
}

// ClockDirectionInt returns the sign of AreaTwoInt(p0, p1, p2).
// The result is exact for every int32 input.
func ClockDirectionInt(p0, p1, p2 IntPoint) Direction {
	return ClockDirection(FixVecFromPoint(p0), FixVecFromPoint(p1), FixVecFromPoint(p2))
}

// IsClockwiseInt reports whether AreaTwoInt(p0, p1, p2) > 0.
func IsClockwiseInt(p0, p1, p2 IntPoint) bool {
	return ClockDirectionInt(p0, p1, p2) == Clockwise
}

// IsCwOrCollinearInt reports whether AreaTwoInt(p0, p1, p2) >= 0.
func IsCwOrCollinearInt(p0, p1, p2 IntPoint) bool {
	return ClockDirectionInt(p0, p1, p2) != CounterClockwise
}

// IsCollinearInt reports whether AreaTwoInt(p0, p1, p2) == 0.
func IsCollinearInt(p0, p1, p2 IntPoint) bool {
	return ClockDirectionInt(p0, p1, p2) == Collinear
}

// IsNotCollinearInt reports whether AreaTwoInt(p0, p1, p2) != 0.
func IsNotCollinearInt(p0, p1, p2 IntPoint) bool {
	return ClockDirectionInt(p0, p1, p2) != Collinear
}

// ClockOrderInt orders triples by turn direction for sorting: clockwise
// triples sort first. It returns -1, 0 or +1.
func ClockOrderInt(p0, p1, p2 IntPoint) int {
	return -int(ClockDirectionInt(p0, p1, p2))
}

// ContainsPointInt reports whether p lies inside the triangle (p0, p1, p2)
// or on its border.
func ContainsPointInt(p, p0, p1, p2 IntPoint) bool {
	return ContainsPoint(FixVecFromPoint(p), FixVecFromPoint(p0), FixVecFromPoint(p1), FixVecFromPoint(p2))
}

// ContainsPointExcludeBordersInt reports whether p lies strictly inside the
// triangle (p0, p1, p2).
func ContainsPointExcludeBordersInt(p, p0, p1, p2 IntPoint) bool {
	return ContainsPointExcludeBorders(FixVecFromPoint(p), FixVecFromPoint(p0), FixVecFromPoint(p1), FixVecFromPoint(p2))
}

// NotContainsPointInt reports whether p lies strictly outside the triangle
// (p0, p1, p2) or on its border.
func NotContainsPointInt(p, p0, p1, p2 IntPoint) bool {
	return NotContainsPoint(FixVecFromPoint(p), FixVecFromPoint(p0), FixVecFromPoint(p1), FixVecFromPoint(p2))
}

// edgeSigns returns the signs of p against each edge of (p0, p1, p2).
func edgeSigns(p, p0, p1, p2 FixVec) (s0, s1, s2 int) {
	s0 = crossSignVec(p.Sub(p1), p0.Sub(p1))
	s1 = crossSignVec(p.Sub(p2), p1.Sub(p2))
	s2 = crossSignVec(p.Sub(p0), p2.Sub(p0))
	return s0, s1, s2
}

func mixedSigns(s0, s1, s2 int) bool {
	hasNeg := s0 < 0 || s1 < 0 || s2 < 0
	hasPos := s0 > 0 || s1 > 0 || s2 > 0
	return hasNeg && hasPos
}

func crossSignVec(a, b FixVec) int {
	return crossSign(int64(a.X), int64(a.Y), int64(b.X), int64(b.Y))
}

// crossSign returns sign(ax*by - ay*bx) exactly for any int64 inputs.
func crossSign(ax, ay, bx, by int64) int {
	const lim = 1 << 31
	if ax > -lim && ax < lim && ay > -lim && ay < lim &&
		bx > -lim && bx < lim && by > -lim && by < lim {
		c := ax*by - ay*bx
		switch {
		case c > 0:
			return 1
		case c < 0:
			return -1
		default:
			return 0
		}
	}

	s1, m1 := signedProduct(ax, by)
	s2, m2 := signedProduct(ay, bx)
	if s1 != s2 {
		if s1 > s2 {
			return 1
		}
		return -1
	}
	return s1 * m1.Cmp(m2)
}

// signedProduct returns a*b as a sign and a 128-bit magnitude.
func signedProduct(a, b int64) (int, Uint128) {
	if a == 0 || b == 0 {
		return 0, Uint128{}
	}
	s := 1
	if (a < 0) != (b < 0) {
		s = -1
	}
	return s, MulU64(absU64(a), absU64(b))
}
