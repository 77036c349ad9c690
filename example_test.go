// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fixgeom_test

import (
	"fmt"

	"github.com/gogpu/fixgeom"
)

// ExampleNewAdapter converts a point onto the integer grid and back.
func ExampleNewAdapter() {
	a := fixgeom.NewAdapter(fixgeom.NewFloatRect(0.0, 10.0, 0.0, 100.0))

	ip := a.ToInt(fixgeom.FPt(10.0, 2.0))
	fmt.Println(a.Exponent(), a.Offset())
	fmt.Println(ip)
	fmt.Println(a.ToFloat(ip))
	// Output:
	// 24 [5, 50]
	// [83886080, -805306368]
	// [10, 2]
}

// ExampleIsClockwiseInt classifies point triples by turn direction.
func ExampleIsClockwiseInt() {
	p0, p1, p2 := fixgeom.IPt(0, 0), fixgeom.IPt(0, 1), fixgeom.IPt(1, 0)

	fmt.Println(fixgeom.IsClockwiseInt(p0, p1, p2))
	fmt.Println(fixgeom.ClockDirectionInt(p0, p2, p1))
	fmt.Println(fixgeom.ClockDirectionInt(p0, fixgeom.IPt(1, 1), fixgeom.IPt(2, 2)))
	// Output:
	// true
	// CounterClockwise
	// Collinear
}

// ExampleFixFloat_Div shows that division rounds toward negative infinity.
func ExampleFixFloat_Div() {
	one, three := fixgeom.FixFromInt(1), fixgeom.FixFromInt(3)

	fmt.Println(int64(one.Div(three)), int64(one.Neg().Div(three)))
	fmt.Println(fixgeom.FixVecFromInt(3, 4).Length())
	// Output:
	// 341 -342
	// 5
}
