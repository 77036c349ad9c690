// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fixgeom

import (
	"fmt"
	"math"
	"math/bits"
)

// Uint128 is an unsigned 128-bit integer stored as two 64-bit halves.
// Values compare lexicographically: high half first, then low half.
type Uint128 struct {
	Hi, Lo uint64
}

const mask32 = 0xFFFF_FFFF

// two64 is 2^64 as float64.
const two64 = 1 << 64

// MulU64 returns the exact 128-bit product a * b.
//
// When the operands' leading-zero counts sum to at least 64 the product
// fits in 64 bits and is computed directly. Otherwise the operands are split
// into 32-bit halves and the four partial products are recombined with
// explicit carry propagation.
func MulU64(a, b uint64) Uint128 {
	if bits.LeadingZeros64(a)+bits.LeadingZeros64(b) >= 64 {
		return Uint128{Lo: a * b}
	}

	a1, a0 := a>>32, a&mask32
	b1, b0 := b>>32, b&mask32

	ab00 := a0 * b0
	mid, carry := sumCarry(a0*b1, a1*b0, ab00>>32)

	hi := a1*b1 + mid>>32 + carry<<32
	lo := mid<<32 | ab00&mask32

	return Uint128{Hi: hi, Lo: lo}
}

// sumCarry returns the low 64 bits of a+b+c and the carry out (0..2).
func sumCarry(a, b, c uint64) (sum, carry uint64) {
	s0 := a + b
	if s0 < a {
		carry++
	}
	sum = s0 + c
	if sum < s0 {
		carry++
	}
	return sum, carry
}

// Add returns u + v modulo 2^128.
func (u Uint128) Add(v Uint128) Uint128 {
	lo, c := bits.Add64(u.Lo, v.Lo, 0)
	hi, _ := bits.Add64(u.Hi, v.Hi, c)
	return Uint128{Hi: hi, Lo: lo}
}

// Cmp compares u and v and returns -1, 0 or +1.
func (u Uint128) Cmp(v Uint128) int {
	switch {
	case u.Hi < v.Hi:
		return -1
	case u.Hi > v.Hi:
		return 1
	case u.Lo < v.Lo:
		return -1
	case u.Lo > v.Lo:
		return 1
	default:
		return 0
	}
}

// Less reports whether u < v.
func (u Uint128) Less(v Uint128) bool {
	return u.Hi < v.Hi || (u.Hi == v.Hi && u.Lo < v.Lo)
}

// Equal reports whether u == v.
func (u Uint128) Equal(v Uint128) bool {
	return u == v
}

// IsZero reports whether u == 0.
func (u Uint128) IsZero() bool {
	return u.Hi == 0 && u.Lo == 0
}

// Float64 returns the nearest float64 approximation of u.
func (u Uint128) Float64() float64 {
	return float64(u.Hi)*two64 + float64(u.Lo)
}

func (u Uint128) String() string {
	if u.Hi == 0 {
		return fmt.Sprintf("0x%x", u.Lo)
	}
	return fmt.Sprintf("0x%x%016x", u.Hi, u.Lo)
}

// SqrtU128 returns floor(sqrt(v)).
//
// A float64 seed is refined with one Newton step in 128/64-bit division and
// then corrected until a*a <= v < (a+1)*(a+1) holds exactly.
func SqrtU128(v Uint128) uint64 {
	if v.Hi == 0 {
		return isqrtU64(v.Lo)
	}

	s := math.Sqrt(v.Float64())
	var a uint64
	if s >= two64 {
		a = math.MaxUint64
	} else {
		a = uint64(s)
	}

	if v.Hi < a {
		q, _ := bits.Div64(v.Hi, v.Lo, a)
		a = a>>1 + q>>1 + (a & q & 1)
	}

	for v.Less(MulU64(a, a)) {
		a--
	}
	for a < math.MaxUint64 && !v.Less(MulU64(a+1, a+1)) {
		a++
	}
	return a
}

// isqrtU64 returns floor(sqrt(v)) for a 64-bit value.
func isqrtU64(v uint64) uint64 {
	const maxRoot = math.MaxUint32
	a := uint64(math.Sqrt(float64(v)))
	if a > maxRoot {
		a = maxRoot
	}
	for a*a > v {
		a--
	}
	for a < maxRoot && (a+1)*(a+1) <= v {
		a++
	}
	return a
}
