// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fixgeom

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Float is the set of floating-point types an Adapter can calibrate against.
// Adapter, FloatPoint and FloatRect are implemented once for every width.
type Float interface {
	constraints.Float
}

// FloatPoint is a real-valued 2D point.
type FloatPoint[T Float] struct {
	X, Y T
}

// FPt is a convenience function to create a FloatPoint.
func FPt[T Float](x, y T) FloatPoint[T] {
	return FloatPoint[T]{X: x, Y: y}
}

// Sub returns p - q.
func (p FloatPoint[T]) Sub(q FloatPoint[T]) FloatPoint[T] {
	return FloatPoint[T]{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p FloatPoint[T]) String() string {
	return fmt.Sprintf("[%v, %v]", p.X, p.Y)
}

// FloatRect is a real-valued axis-aligned rectangle, borders included.
type FloatRect[T Float] struct {
	MinX, MaxX, MinY, MaxY T
}

// NewFloatRect creates a FloatRect from its bounds.
func NewFloatRect[T Float](minX, maxX, minY, maxY T) FloatRect[T] {
	return FloatRect[T]{MinX: minX, MaxX: maxX, MinY: minY, MaxY: maxY}
}

// FloatRectWithPoint returns the zero-sized rectangle at p.
func FloatRectWithPoint[T Float](p FloatPoint[T]) FloatRect[T] {
	return FloatRect[T]{MinX: p.X, MaxX: p.X, MinY: p.Y, MaxY: p.Y}
}

// FloatRectWithPoints returns the bounding rectangle of points.
// ok is false when points is empty.
func FloatRectWithPoints[T Float](points []FloatPoint[T]) (r FloatRect[T], ok bool) {
	if len(points) == 0 {
		return FloatRect[T]{}, false
	}
	r = FloatRectWithPoint(points[0])
	for _, p := range points[1:] {
		r.AddPoint(p)
	}
	return r, true
}

// Width returns MaxX - MinX.
func (r FloatRect[T]) Width() T { return r.MaxX - r.MinX }

// Height returns MaxY - MinY.
func (r FloatRect[T]) Height() T { return r.MaxY - r.MinY }

// AddPoint grows r to include p.
func (r *FloatRect[T]) AddPoint(p FloatPoint[T]) {
	r.MinX = min(r.MinX, p.X)
	r.MaxX = max(r.MaxX, p.X)
	r.MinY = min(r.MinY, p.Y)
	r.MaxY = max(r.MaxY, p.Y)
}

// AddOffset grows r by offset on every side.
func (r *FloatRect[T]) AddOffset(offset T) {
	r.MinX -= offset
	r.MaxX += offset
	r.MinY -= offset
	r.MaxY += offset
}

// Union returns the smallest rectangle containing r and o.
func (r FloatRect[T]) Union(o FloatRect[T]) FloatRect[T] {
	return FloatRect[T]{
		MinX: min(r.MinX, o.MinX),
		MaxX: max(r.MaxX, o.MaxX),
		MinY: min(r.MinY, o.MinY),
		MaxY: max(r.MaxY, o.MaxY),
	}
}

// Contains reports whether p lies inside r or on its border.
func (r FloatRect[T]) Contains(p FloatPoint[T]) bool {
	return r.MinX <= p.X && p.X <= r.MaxX && r.MinY <= p.Y && p.Y <= r.MaxY
}

// ContainsWithRadius reports whether p lies inside r grown by radius on every side.
func (r FloatRect[T]) ContainsWithRadius(p FloatPoint[T], radius T) bool {
	return r.MinX-radius <= p.X && p.X <= r.MaxX+radius &&
		r.MinY-radius <= p.Y && p.Y <= r.MaxY+radius
}

func (r FloatRect[T]) String() string {
	return fmt.Sprintf("(%v, %v)-(%v, %v)", r.MinX, r.MinY, r.MaxX, r.MaxY)
}
