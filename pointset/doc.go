// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package pointset builds sorted, deduplicated sets of grid points keyed by
// fixgeom.BitPack.
//
// A Set is built once from float input through a fixgeom.Adapter, or from
// grid points directly, and is immutable afterwards. Because BitPack order
// equals (x, y) order, the set supports binary search and x-range queries
// without a custom comparator.
//
//	a := fixgeom.NewAdapterWithPoints(pts)
//	set, err := pointset.Build(ctx, a, pts)
//	if err != nil {
//	    return err
//	}
//	ok := set.Contains(a.ToInt(q))
//
// # Parallelism
//
// Build converts points in chunks on an errgroup. The adapter is shared
// read-only between workers. Cancelling ctx stops the build and returns
// ctx.Err().
package pointset
