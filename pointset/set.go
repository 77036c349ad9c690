// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pointset

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/gogpu/fixgeom"
	"golang.org/x/sync/errgroup"
)

// Set is an immutable, sorted set of unique grid points.
//
// Thread safety: Set is safe for concurrent reads.
type Set struct {
	keys []fixgeom.BitPack
}

// Build converts points to the grid of a, packs them, and returns the sorted
// set of unique keys. Conversion runs in parallel chunks; see WithWorkers and
// WithChunkSize. With WithStrict, the first out-of-range point aborts the
// build with an error wrapping fixgeom.ErrOutOfRange.
func Build[T fixgeom.Float](ctx context.Context, a *fixgeom.Adapter[T], points []fixgeom.FloatPoint[T], opts ...Option) (*Set, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	keys := make([]fixgeom.BitPack, len(points))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)

	for start := 0; start < len(points); start += o.chunkSize {
		end := min(start+o.chunkSize, len(points))
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return convertChunk(a, points[start:end], keys[start:end], start, o.strict)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s := fromKeys(keys)
	fixgeom.Logger().Debug("pointset: built",
		slog.Int("input", len(points)),
		slog.Int("unique", s.Len()),
		slog.Int("workers", o.workers))
	return s, nil
}

func convertChunk[T fixgeom.Float](a *fixgeom.Adapter[T], src []fixgeom.FloatPoint[T], dst []fixgeom.BitPack, base int, strict bool) error {
	if !strict {
		for i, p := range src {
			dst[i] = a.ToInt(p).BitPack()
		}
		return nil
	}
	for i, p := range src {
		ip, err := a.CheckedToInt(p)
		if err != nil {
			return fmt.Errorf("pointset: point %d: %w", base+i, err)
		}
		dst[i] = ip.BitPack()
	}
	return nil
}

// FromPoints returns the set of unique grid points in points.
func FromPoints(points []fixgeom.IntPoint) *Set {
	keys := make([]fixgeom.BitPack, len(points))
	for i, p := range points {
		keys[i] = p.BitPack()
	}
	return fromKeys(keys)
}

// fromKeys sorts and deduplicates keys in place and takes ownership of them.
func fromKeys(keys []fixgeom.BitPack) *Set {
	slices.Sort(keys)
	return &Set{keys: slices.Clip(slices.Compact(keys))}
}

// Len returns the number of unique points.
func (s *Set) Len() int {
	return len(s.keys)
}

// At returns the i-th point in (x, y) order.
func (s *Set) At(i int) fixgeom.IntPoint {
	return s.keys[i].Unpack()
}

// Index returns the position of p in the set and whether it is present.
// When absent, the position is where p would be inserted.
func (s *Set) Index(p fixgeom.IntPoint) (int, bool) {
	return slices.BinarySearch(s.keys, p.BitPack())
}

// Contains reports whether p is in the set.
func (s *Set) Contains(p fixgeom.IntPoint) bool {
	_, ok := s.Index(p)
	return ok
}

// Keys returns a copy of the sorted keys.
func (s *Set) Keys() []fixgeom.BitPack {
	return slices.Clone(s.keys)
}

// Points returns the points in (x, y) order.
func (s *Set) Points() []fixgeom.IntPoint {
	out := make([]fixgeom.IntPoint, len(s.keys))
	for i, k := range s.keys {
		out[i] = k.Unpack()
	}
	return out
}

// InRect returns the points inside r, borders included, in (x, y) order.
//
// Keys with x in [r.MinX, r.MaxX] are contiguous, so the x range is found by
// binary search and only y is filtered.
func (s *Set) InRect(r fixgeom.IntRect) []fixgeom.IntPoint {
	lo, _ := slices.BinarySearch(s.keys, fixgeom.Pack(fixgeom.IPt(r.MinX, r.MinY)))
	hi, found := slices.BinarySearch(s.keys, fixgeom.Pack(fixgeom.IPt(r.MaxX, r.MaxY)))
	if found {
		hi++
	}

	var out []fixgeom.IntPoint
	for _, k := range s.keys[lo:max(lo, hi)] {
		p := k.Unpack()
		if p.Y >= r.MinY && p.Y <= r.MaxY {
			out = append(out, p)
		}
	}
	return out
}

// Floats converts the points of s back to real coordinates through a.
func Floats[T fixgeom.Float](s *Set, a *fixgeom.Adapter[T]) []fixgeom.FloatPoint[T] {
	out := make([]fixgeom.FloatPoint[T], len(s.keys))
	for i, k := range s.keys {
		out[i] = a.ToFloat(k.Unpack())
	}
	return out
}
