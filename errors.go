// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fixgeom

import (
	"errors"
	"fmt"
)

// Sentinel errors reported by the validation layer.
var (
	// ErrOverflow indicates a fixed-point value outside [FixMin, FixMax],
	// or an arithmetic result that would not fit that range.
	ErrOverflow = errors.New("fixgeom: value exceeds overflow-safe bound")

	// ErrDivideByZero indicates a fixed-point division by zero.
	ErrDivideByZero = errors.New("fixgeom: division by zero")

	// ErrOutOfRange indicates a point outside the calibration rectangle of an Adapter.
	ErrOutOfRange = errors.New("fixgeom: point outside adapter range")

	// ErrNegativeSqrt indicates a square root of a negative value.
	ErrNegativeSqrt = errors.New("fixgeom: square root of negative value")
)

// PreconditionError describes a violated precondition of a fixgeom operation.
// It wraps one of the sentinel errors, so callers can match it with errors.Is.
type PreconditionError struct {
	Op     string // operation name, e.g. "FixFloat.Mul"
	Detail string
	Err    error
}

func (e *PreconditionError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: %v (%s)", e.Op, e.Err, e.Detail)
}

// Unwrap returns the underlying sentinel error.
func (e *PreconditionError) Unwrap() error {
	return e.Err
}
