// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package fixgeom provides the exact-arithmetic coordinate core for robust
// 2D geometry.
//
// # Overview
//
// Polygon boolean operations, triangulation and spatial indexing need every
// primitive decision ("is this triple clockwise?", "which point comes
// first?") to be deterministic. fixgeom converts real-valued input onto a
// bounded integer grid once and answers every later question in integer
// arithmetic.
//
// # Quick Start
//
//	import "github.com/gogpu/fixgeom"
//
//	pts := []fixgeom.FloatPoint[float64]{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 10}}
//	a := fixgeom.NewAdapterWithPoints(pts)
//
//	p0, p1, p2 := a.ToInt(pts[0]), a.ToInt(pts[1]), a.ToInt(pts[2])
//	if fixgeom.IsClockwiseInt(p0, p1, p2) {
//	    // ...
//	}
//	key := p0.BitPack() // sortable uint64 key
//
// # Architecture
//
//   - FixFloat: 64-bit fixed-point scalar with FractionBits fractional bits
//   - Uint128, MulU64: exact 128-bit products for overflow-free comparisons
//   - FixVec: fixed-point vector (dot, cross, length, normalize)
//   - Adapter: float rectangle to integer grid calibration and conversion
//   - BitPack: order-preserving 64-bit key for IntPoint
//   - AreaTwo, IsClockwise, ContainsPoint: orientation predicates
//
// The pointset sub-package builds sorted, deduplicated key sets from large
// float inputs.
//
// # Numeric Contract
//
// FractionBits (10) and AdapterHeadroom (29) define the precision and overflow
// guarantees of every consumer; changing either is a breaking change.
// FixFloat values used in products must stay within [FixMin, FixMax].
// Multiplication and division round toward negative infinity; conversions
// from floating point round to nearest.
//
// # Validation
//
// Preconditions (points outside the adapter range, division by zero, values
// beyond FixMax) are not checked in regular builds. Build with
//
//	go test -tags fixcheck ./...
//
// to turn them into logged panics carrying a *PreconditionError, or use the
// Checked* functions to receive them as errors in any build.
//
// # Concurrency
//
// Every type is a value type or, for Adapter, read-only after construction.
// All functions are safe for concurrent use.
package fixgeom

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
