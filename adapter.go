// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fixgeom

import (
	"fmt"
	"log/slog"
	"math"
	"slices"
)

// AdapterHeadroom is the binary exponent that the scaled half-extent of the
// calibration rectangle stays below: every point inside the rectangle maps to
// integer coordinates with |c| < 2^(AdapterHeadroom+1). It is part of the
// public numeric contract together with FractionBits.
const AdapterHeadroom = 29

// Adapter maps real-valued coordinates onto a centered, power-of-two scaled
// integer grid and back.
//
// An Adapter is calibrated once from a bounding rectangle and is read-only
// afterwards; it may be shared between goroutines without locking.
//
// Points converted by ToInt must lie inside the calibration rectangle, or
// within the configured radius around it. Points far outside lose precision
// or overflow int32; this is a programming error, detected only in fixcheck
// builds or by CheckedToInt.
type Adapter[T Float] struct {
	offset   FloatPoint[T]
	dirScale T
	invScale T
	exponent int

	rect   FloatRect[T]
	radius T
}

// NewAdapter calibrates an Adapter for rect.
//
// The offset is the rectangle's center. With m the larger half-extent, the
// forward scale is 2^(29 - floor(log2 m)), so scaled half-extents stay below
// 2^30. A rectangle with zero width and height yields unit scale.
//
// The exponent is clamped so that both scales are normal, exactly inverse
// values of T: to ±126 for float32 and ±1022 for float64. Rectangles smaller
// than about 2^-97 (float32) or 2^-993 (float64) therefore map to scaled
// half-extents below 2^29 instead of overflowing the forward scale.
func NewAdapter[T Float](rect FloatRect[T], opts ...AdapterOption) *Adapter[T] {
	o := defaultAdapterOptions()
	for _, opt := range opts {
		opt(&o)
	}

	hw := rect.Width() * 0.5
	hh := rect.Height() * 0.5

	a := &Adapter[T]{
		offset:   FloatPoint[T]{X: rect.MinX + hw, Y: rect.MinY + hh},
		dirScale: 1,
		invScale: 1,
		rect:     rect,
		radius:   T(o.radius * float64(max(rect.Width(), rect.Height()))),
	}

	magnitude := float64(max(hw, hh))
	if magnitude > 0 {
		// Frexp gives magnitude = frac * 2^exp with frac in [0.5, 1),
		// so floor(log2(magnitude)) == exp-1 exactly.
		_, exp := math.Frexp(magnitude)
		lim := maxExponent[T]() - 1
		a.exponent = min(max(AdapterHeadroom-(exp-1), -lim), lim)
		a.dirScale = T(math.Ldexp(1, a.exponent))
		a.invScale = T(math.Ldexp(1, -a.exponent))
	}

	Logger().Debug("fixgeom: adapter calibrated",
		slog.String("rect", rect.String()),
		slog.Int("exponent", a.exponent),
		slog.Float64("dirScale", float64(a.dirScale)))

	return a
}

// maxExponent returns the largest binary exponent of a finite T.
func maxExponent[T Float]() int {
	if math.IsInf(float64(T(math.MaxFloat32)*2), 0) {
		return 127
	}
	return 1023
}

// NewAdapterWithPoints calibrates an Adapter for the bounding rectangle of
// points. An empty slice yields a zero-sized rectangle at the origin and
// therefore unit scale.
func NewAdapterWithPoints[T Float](points []FloatPoint[T], opts ...AdapterOption) *Adapter[T] {
	rect, _ := FloatRectWithPoints(points)
	return NewAdapter(rect, opts...)
}

// DirScale returns the float-to-grid multiplier.
func (a *Adapter[T]) DirScale() T { return a.dirScale }

// InvScale returns the grid-to-float multiplier, 1/DirScale.
func (a *Adapter[T]) InvScale() T { return a.invScale }

// Offset returns the center of the calibration rectangle.
func (a *Adapter[T]) Offset() FloatPoint[T] { return a.offset }

// Rect returns the calibration rectangle.
func (a *Adapter[T]) Rect() FloatRect[T] { return a.rect }

// Exponent returns log2(DirScale); zero for a degenerate rectangle.
func (a *Adapter[T]) Exponent() int { return a.exponent }

// ToInt converts p to the integer grid, rounding to nearest with halves
// away from zero.
func (a *Adapter[T]) ToInt(p FloatPoint[T]) IntPoint {
	if checksEnabled && !a.rect.ContainsWithRadius(p, a.radius) {
		violate("Adapter.ToInt", ErrOutOfRange, fmt.Sprintf("%v not in %v", p, a.rect))
	}
	return IntPoint{
		X: int32(math.Round(float64((p.X - a.offset.X) * a.dirScale))),
		Y: int32(math.Round(float64((p.Y - a.offset.Y) * a.dirScale))),
	}
}

// CheckedToInt is ToInt with the calibration range verified in every build.
// It returns ErrOutOfRange when p lies outside the rectangle grown by the
// configured radius, or when a scaled coordinate does not fit in int32.
func (a *Adapter[T]) CheckedToInt(p FloatPoint[T]) (IntPoint, error) {
	if !a.rect.ContainsWithRadius(p, a.radius) {
		return IntPoint{}, &PreconditionError{
			Op:     "Adapter.CheckedToInt",
			Detail: fmt.Sprintf("%v not in %v", p, a.rect),
			Err:    ErrOutOfRange,
		}
	}
	x := math.Round(float64((p.X - a.offset.X) * a.dirScale))
	y := math.Round(float64((p.Y - a.offset.Y) * a.dirScale))
	if !fitsInt32(x) || !fitsInt32(y) {
		return IntPoint{}, &PreconditionError{
			Op:     "Adapter.CheckedToInt",
			Detail: fmt.Sprintf("%v scales beyond int32", p),
			Err:    ErrOutOfRange,
		}
	}
	return IntPoint{X: int32(x), Y: int32(y)}, nil
}

// ToFloat converts a grid point back to real coordinates.
func (a *Adapter[T]) ToFloat(p IntPoint) FloatPoint[T] {
	return FloatPoint[T]{
		X: T(p.X)*a.invScale + a.offset.X,
		Y: T(p.Y)*a.invScale + a.offset.Y,
	}
}

// ToFixVec converts p to the grid and returns it as raw FixVec components.
func (a *Adapter[T]) ToFixVec(p FloatPoint[T]) FixVec {
	return FixVecFromPoint(a.ToInt(p))
}

// FromFixVec converts raw grid components back to real coordinates.
// v must lie within the int32 range.
func (a *Adapter[T]) FromFixVec(v FixVec) FloatPoint[T] {
	if checksEnabled {
		v.require("Adapter.FromFixVec")
	}
	return a.ToFloat(IntPoint{X: int32(v.X), Y: int32(v.Y)})
}

// ToInts appends the grid conversion of every point in src to dst and
// returns the extended slice.
func (a *Adapter[T]) ToInts(dst []IntPoint, src []FloatPoint[T]) []IntPoint {
	dst = slices.Grow(dst, len(src))
	for _, p := range src {
		dst = append(dst, a.ToInt(p))
	}
	return dst
}

// ToFloats appends the real-coordinate conversion of every point in src to
// dst and returns the extended slice.
func (a *Adapter[T]) ToFloats(dst []FloatPoint[T], src []IntPoint) []FloatPoint[T] {
	dst = slices.Grow(dst, len(src))
	for _, p := range src {
		dst = append(dst, a.ToFloat(p))
	}
	return dst
}

func fitsInt32(v float64) bool {
	return v >= math.MinInt32 && v <= math.MaxInt32
}
