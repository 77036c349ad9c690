// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fixgeom

// BitPack is an order-preserving 64-bit key for a 2D integer point.
//
// Each coordinate is biased by 2^31 so the signed int32 range maps onto
// uint32 without changing order; x occupies the high word and y the low word.
// Comparing two keys as integers therefore orders points by x, then y, and
// sorting keys sorts points without a custom comparator.
type BitPack uint64

const (
	packBias  = 1 << 31
	packYMask = 0xFFFF_FFFF
)

// Pack returns the key for p.
func Pack(p IntPoint) BitPack {
	xx := uint64(int64(p.X)+packBias) << 32
	yy := uint64(int64(p.Y) + packBias)
	return BitPack(xx | yy)
}

// BitPack returns the key for p.
func (p IntPoint) BitPack() BitPack {
	return Pack(p)
}

// Unpack returns the point encoded in k. Unpack(Pack(p)) == p for every p.
func (k BitPack) Unpack() IntPoint {
	return IntPoint{
		X: int32(int64(k>>32) - packBias),
		Y: int32(int64(k&packYMask) - packBias),
	}
}

// FixVec returns the encoded point as raw FixVec components.
func (k BitPack) FixVec() FixVec {
	return FixVecFromPoint(k.Unpack())
}

// BitPack returns the key of v. Both components must lie within
// [FixMin, FixMax]; use IntPoint.BitPack for the full int32 range.
func (v FixVec) BitPack() BitPack {
	if checksEnabled {
		v.require("FixVec.BitPack")
	}
	return Pack(IntPoint{X: int32(v.X), Y: int32(v.Y)})
}
