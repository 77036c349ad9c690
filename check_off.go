// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build !fixcheck

package fixgeom

// checksEnabled is false in release builds: preconditions are not verified and
// violating them yields unspecified results (precision loss or wraparound).
const checksEnabled = false
