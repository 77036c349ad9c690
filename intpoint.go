// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fixgeom

import "fmt"

// IntPoint is a point on the adapter's integer grid.
type IntPoint struct {
	X, Y int32
}

// IPt is a convenience function to create an IntPoint.
func IPt(x, y int32) IntPoint {
	return IntPoint{X: x, Y: y}
}

// Add returns p + q. Components wrap on int32 overflow.
func (p IntPoint) Add(q IntPoint) IntPoint {
	return IntPoint{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q. Components wrap on int32 overflow; use Subtract for
// a difference that cannot overflow.
func (p IntPoint) Sub(q IntPoint) IntPoint {
	return IntPoint{X: p.X - q.X, Y: p.Y - q.Y}
}

// Subtract returns p - q widened to a FixVec of raw grid units.
func (p IntPoint) Subtract(q IntPoint) FixVec {
	return FixVec{
		X: FixFloat(int64(p.X) - int64(q.X)),
		Y: FixFloat(int64(p.Y) - int64(q.Y)),
	}
}

// Cross returns the 2D cross product in int64. Exact for all int32 inputs.
func (p IntPoint) Cross(q IntPoint) int64 {
	return int64(p.X)*int64(q.Y) - int64(p.Y)*int64(q.X)
}

// Dot returns the dot product in int64. Exact for all int32 inputs.
func (p IntPoint) Dot(q IntPoint) int64 {
	return int64(p.X)*int64(q.X) + int64(p.Y)*int64(q.Y)
}

// SqrLength returns x*x + y*y. Exact unless both components are MinInt32.
func (p IntPoint) SqrLength() int64 {
	x, y := int64(p.X), int64(p.Y)
	return x*x + y*y
}

// SqrDistance returns the squared distance between p and q, computed through
// Uint128 so no int32 input can overflow.
func (p IntPoint) SqrDistance(q IntPoint) Uint128 {
	return p.Subtract(q).SqrLengthWide()
}

// Compare orders points by x, then y. It returns -1, 0 or +1 and agrees with
// the order of their BitPack keys.
func (p IntPoint) Compare(q IntPoint) int {
	switch {
	case p.X < q.X:
		return -1
	case p.X > q.X:
		return 1
	case p.Y < q.Y:
		return -1
	case p.Y > q.Y:
		return 1
	default:
		return 0
	}
}

// Less reports whether p sorts before q.
func (p IntPoint) Less(q IntPoint) bool {
	return p.X < q.X || (p.X == q.X && p.Y < q.Y)
}

func (p IntPoint) String() string {
	return fmt.Sprintf("[%d, %d]", p.X, p.Y)
}

// IntRect is an axis-aligned rectangle on the integer grid, borders included.
type IntRect struct {
	MinX, MaxX, MinY, MaxY int32
}

// NewIntRectAB returns the rectangle spanned by two corner points in any order.
func NewIntRectAB(a, b IntPoint) IntRect {
	r := IntRect{MinX: a.X, MaxX: b.X, MinY: a.Y, MaxY: b.Y}
	if a.X > b.X {
		r.MinX, r.MaxX = b.X, a.X
	}
	if a.Y > b.Y {
		r.MinY, r.MaxY = b.Y, a.Y
	}
	return r
}

// IntRectWithPoints returns the bounding rectangle of points.
// ok is false when points is empty.
func IntRectWithPoints(points []IntPoint) (r IntRect, ok bool) {
	if len(points) == 0 {
		return IntRect{}, false
	}
	first := points[0]
	r = IntRect{MinX: first.X, MaxX: first.X, MinY: first.Y, MaxY: first.Y}
	for _, p := range points[1:] {
		r.AddPoint(p)
	}
	return r, true
}

// Width returns MaxX - MinX.
func (r IntRect) Width() int32 { return r.MaxX - r.MinX }

// Height returns MaxY - MinY.
func (r IntRect) Height() int32 { return r.MaxY - r.MinY }

// AddPoint grows r to include p.
func (r *IntRect) AddPoint(p IntPoint) {
	r.MinX = min(r.MinX, p.X)
	r.MaxX = max(r.MaxX, p.X)
	r.MinY = min(r.MinY, p.Y)
	r.MaxY = max(r.MaxY, p.Y)
}

// Union returns the smallest rectangle containing r and o.
func (r IntRect) Union(o IntRect) IntRect {
	return IntRect{
		MinX: min(r.MinX, o.MinX),
		MaxX: max(r.MaxX, o.MaxX),
		MinY: min(r.MinY, o.MinY),
		MaxY: max(r.MaxY, o.MaxY),
	}
}

// Contains reports whether p lies inside r or on its border.
func (r IntRect) Contains(p IntPoint) bool {
	return r.MinX <= p.X && p.X <= r.MaxX && r.MinY <= p.Y && p.Y <= r.MaxY
}

// ContainsWithRadius reports whether p lies inside r grown by radius on every side.
func (r IntRect) ContainsWithRadius(p IntPoint, radius int32) bool {
	x, y := int64(p.X), int64(p.Y)
	rr := int64(radius)
	return int64(r.MinX)-rr <= x && x <= int64(r.MaxX)+rr &&
		int64(r.MinY)-rr <= y && y <= int64(r.MaxY)+rr
}

// Intersects reports whether r and o overlap, touching borders included.
func (r IntRect) Intersects(o IntRect) bool {
	return r.MinX <= o.MaxX && r.MaxX >= o.MinX && r.MinY <= o.MaxY && r.MaxY >= o.MinY
}

// IntersectsInterior reports whether r and o share interior area.
func (r IntRect) IntersectsInterior(o IntRect) bool {
	return r.MinX < o.MaxX && r.MaxX > o.MinX && r.MinY < o.MaxY && r.MaxY > o.MinY
}
