// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build fixcheck

package fixgeom

// checksEnabled turns on precondition assertions. Build with -tags fixcheck
// in tests and debug builds.
const checksEnabled = true
