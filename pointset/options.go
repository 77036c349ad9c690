// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pointset

import "runtime"

// Option configures Build.
type Option func(*options)

type options struct {
	workers   int
	chunkSize int
	strict    bool
}

// DefaultChunkSize is the number of points converted per task.
const DefaultChunkSize = 4096

func defaultOptions() options {
	return options{
		workers:   runtime.GOMAXPROCS(0),
		chunkSize: DefaultChunkSize,
	}
}

// WithWorkers limits the number of concurrent conversion tasks.
// Values <= 0 select GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n <= 0 {
			n = runtime.GOMAXPROCS(0)
		}
		o.workers = n
	}
}

// WithChunkSize sets the number of points converted per task.
// Values <= 0 select DefaultChunkSize.
func WithChunkSize(n int) Option {
	return func(o *options) {
		if n <= 0 {
			n = DefaultChunkSize
		}
		o.chunkSize = n
	}
}

// WithStrict makes Build convert through Adapter.CheckedToInt, so a point
// outside the adapter range fails the build instead of being converted with
// unspecified precision.
func WithStrict(strict bool) Option {
	return func(o *options) {
		o.strict = strict
	}
}
