// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fixgeom

// AdapterOption configures an Adapter during creation.
//
// Example:
//
//	// Accept points up to 5% of the larger extent outside the rectangle.
//	a := fixgeom.NewAdapter(rect, fixgeom.WithRadius(0.05))
type AdapterOption func(*adapterOptions)

// adapterOptions holds optional configuration for Adapter creation.
type adapterOptions struct {
	// radius is the tolerated distance outside the calibration rectangle,
	// relative to its larger dimension.
	radius float64
}

// DefaultRadius is the default tolerance outside the calibration rectangle:
// 1% of the rectangle's larger dimension.
const DefaultRadius = 0.01

func defaultAdapterOptions() adapterOptions {
	return adapterOptions{radius: DefaultRadius}
}

// WithRadius sets the tolerance, relative to the larger dimension of the
// calibration rectangle, within which points outside the rectangle are still
// accepted by ToInt validation and CheckedToInt. Negative values are treated
// as zero. The scale itself is not affected.
func WithRadius(ratio float64) AdapterOption {
	return func(o *adapterOptions) {
		o.radius = max(ratio, 0)
	}
}
