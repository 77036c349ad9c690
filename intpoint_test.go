// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fixgeom

import (
	"math"
	"slices"
	"testing"
)

func TestIntPoint_Arithmetic(t *testing.T) {
	p, q := IPt(3, -4), IPt(1, 2)

	if got := p.Add(q); got != IPt(4, -2) {
		t.Errorf("Add = %v, want [4, -2]", got)
	}
	if got := p.Sub(q); got != IPt(2, -6) {
		t.Errorf("Sub = %v, want [2, -6]", got)
	}
	if got := p.Cross(q); got != 10 {
		t.Errorf("Cross = %d, want 10", got)
	}
	if got := p.Dot(q); got != -5 {
		t.Errorf("Dot = %d, want -5", got)
	}
	if got := p.SqrLength(); got != 25 {
		t.Errorf("SqrLength = %d, want 25", got)
	}
	if got := p.String(); got != "[3, -4]" {
		t.Errorf("String = %q, want %q", got, "[3, -4]")
	}
}

func TestIntPoint_WideDifference(t *testing.T) {
	p := IPt(math.MaxInt32, math.MaxInt32)
	q := IPt(math.MinInt32, math.MinInt32)

	const d = int64(math.MaxInt32) - math.MinInt32
	if got := p.Subtract(q); got != NewFixVec(FixFloat(d), FixFloat(d)) {
		t.Errorf("Subtract = %v, want raw %d,%d", got, d, d)
	}

	// 2 * (2^32 - 1)^2
	want := MulU64(uint64(d), uint64(d)).Add(MulU64(uint64(d), uint64(d)))
	if got := p.SqrDistance(q); got != want {
		t.Errorf("SqrDistance = %v, want %v", got, want)
	}
	if got := p.Cross(q); got != 0 {
		t.Errorf("Cross of collinear extremes = %d, want 0", got)
	}
}

func TestIntPoint_Order(t *testing.T) {
	pts := []IntPoint{IPt(1, 5), IPt(0, 0), IPt(1, -5), IPt(-3, 9), IPt(1, 1)}
	slices.SortFunc(pts, IntPoint.Compare)

	want := []IntPoint{IPt(-3, 9), IPt(0, 0), IPt(1, -5), IPt(1, 1), IPt(1, 5)}
	if !slices.Equal(pts, want) {
		t.Fatalf("sorted = %v, want %v", pts, want)
	}
	for i := 1; i < len(pts); i++ {
		if !pts[i-1].Less(pts[i]) || pts[i].Less(pts[i-1]) {
			t.Errorf("Less disagrees with Compare at %d", i)
		}
		if pts[i-1].BitPack() >= pts[i].BitPack() {
			t.Errorf("BitPack order disagrees with Compare at %d", i)
		}
	}
	if IPt(2, 2).Compare(IPt(2, 2)) != 0 {
		t.Error("Compare of equal points != 0")
	}
}

func TestIntRectWithPoints(t *testing.T) {
	r, ok := IntRectWithPoints([]IntPoint{IPt(0, 0), IPt(-7, 10), IPt(20, -5)})
	if !ok {
		t.Fatal("IntRectWithPoints returned ok = false")
	}
	want := IntRect{MinX: -7, MaxX: 20, MinY: -5, MaxY: 10}
	if r != want {
		t.Errorf("rect = %+v, want %+v", r, want)
	}
	if r.Width() != 27 || r.Height() != 15 {
		t.Errorf("size = %dx%d, want 27x15", r.Width(), r.Height())
	}

	if _, ok := IntRectWithPoints(nil); ok {
		t.Error("IntRectWithPoints(nil) returned ok = true")
	}
}

func TestIntRect_Contains(t *testing.T) {
	r := IntRect{MinX: -10, MaxX: 10, MinY: -10, MaxY: 10}

	for _, x := range []int32{-20, -10, 0, 10, 20} {
		for _, y := range []int32{-20, -10, 0, 10, 20} {
			want := x >= -10 && x <= 10 && y >= -10 && y <= 10
			if got := r.Contains(IPt(x, y)); got != want {
				t.Errorf("Contains(%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}

	if !r.ContainsWithRadius(IPt(15, -15), 5) {
		t.Error("ContainsWithRadius(15, -15, 5) = false, want true")
	}
	if r.ContainsWithRadius(IPt(16, 0), 5) {
		t.Error("ContainsWithRadius(16, 0, 5) = true, want false")
	}

	full := IntRect{MinX: math.MinInt32, MaxX: math.MaxInt32, MinY: math.MinInt32, MaxY: math.MaxInt32}
	if !full.ContainsWithRadius(IPt(math.MaxInt32, math.MinInt32), math.MaxInt32) {
		t.Error("ContainsWithRadius overflowed on the full range")
	}
}

func TestIntRect_Combine(t *testing.T) {
	a := NewIntRectAB(IPt(10, 0), IPt(0, 10))
	if want := (IntRect{MinX: 0, MaxX: 10, MinY: 0, MaxY: 10}); a != want {
		t.Fatalf("NewIntRectAB = %+v, want %+v", a, want)
	}

	tests := []struct {
		name     string
		b        IntRect
		overlap  bool
		interior bool
	}{
		{"disjoint", IntRect{MinX: 20, MaxX: 30, MinY: 0, MaxY: 10}, false, false},
		{"touching", IntRect{MinX: 10, MaxX: 20, MinY: 0, MaxY: 10}, true, false},
		{"overlapping", IntRect{MinX: 5, MaxX: 15, MinY: 5, MaxY: 15}, true, true},
		{"nested", IntRect{MinX: 2, MaxX: 3, MinY: 2, MaxY: 3}, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Intersects(tt.b); got != tt.overlap {
				t.Errorf("Intersects = %v, want %v", got, tt.overlap)
			}
			if got := a.IntersectsInterior(tt.b); got != tt.interior {
				t.Errorf("IntersectsInterior = %v, want %v", got, tt.interior)
			}
			u := a.Union(tt.b)
			for _, c := range []IntPoint{IPt(a.MinX, a.MinY), IPt(tt.b.MaxX, tt.b.MaxY)} {
				if !u.Contains(c) {
					t.Errorf("Union %+v does not contain %v", u, c)
				}
			}
		})
	}

	r := a
	r.AddPoint(IPt(-5, 12))
	if want := (IntRect{MinX: -5, MaxX: 10, MinY: 0, MaxY: 12}); r != want {
		t.Errorf("AddPoint = %+v, want %+v", r, want)
	}
}
