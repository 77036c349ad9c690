// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fixgeom

import "log/slog"

// Validation layer.
//
// Two entry points exist. Building with the fixcheck tag turns on assertions
// inside the regular operations: a violated precondition is logged at Error
// level and panics with a *PreconditionError. The Checked* functions below are
// available in every build and report the same conditions as errors.

// violate logs and panics with a PreconditionError.
func violate(op string, err error, detail string) {
	pe := &PreconditionError{Op: op, Detail: detail, Err: err}
	Logger().Error("fixgeom: precondition violated",
		slog.String("op", op),
		slog.String("detail", detail),
		slog.Any("err", err))
	panic(pe)
}

// requireRange asserts v lies within [FixMin, FixMax].
func requireRange(op string, v FixFloat) {
	if v < FixMin || v > FixMax {
		violate(op, ErrOverflow, v.String())
	}
}

func checkRange(op string, v FixFloat) error {
	if v < FixMin || v > FixMax {
		return &PreconditionError{Op: op, Detail: v.String(), Err: ErrOverflow}
	}
	return nil
}

// InRange reports whether v lies within the overflow-safe bound [FixMin, FixMax].
func InRange(v FixFloat) bool {
	return v >= FixMin && v <= FixMax
}

// CheckedAdd returns a + b, or ErrOverflow if an operand or the result leaves
// the overflow-safe bound.
func CheckedAdd(a, b FixFloat) (FixFloat, error) {
	if err := checkOperands("CheckedAdd", a, b); err != nil {
		return 0, err
	}
	r := a + b
	if err := checkRange("CheckedAdd", r); err != nil {
		return 0, err
	}
	return r, nil
}

// CheckedSub returns a - b, or ErrOverflow if an operand or the result leaves
// the overflow-safe bound.
func CheckedSub(a, b FixFloat) (FixFloat, error) {
	if err := checkOperands("CheckedSub", a, b); err != nil {
		return 0, err
	}
	r := a - b
	if err := checkRange("CheckedSub", r); err != nil {
		return 0, err
	}
	return r, nil
}

// CheckedMul returns a.Mul(b), or ErrOverflow if an operand or the result
// leaves the overflow-safe bound.
func CheckedMul(a, b FixFloat) (FixFloat, error) {
	if err := checkOperands("CheckedMul", a, b); err != nil {
		return 0, err
	}
	r := FixFloat((int64(a) * int64(b)) >> FractionBits)
	if err := checkRange("CheckedMul", r); err != nil {
		return 0, err
	}
	return r, nil
}

// CheckedDiv returns a.Div(b), ErrDivideByZero when b is zero, or ErrOverflow
// if an operand or the result leaves the overflow-safe bound.
func CheckedDiv(a, b FixFloat) (FixFloat, error) {
	if err := checkOperands("CheckedDiv", a, b); err != nil {
		return 0, err
	}
	if b == 0 {
		return 0, &PreconditionError{Op: "CheckedDiv", Err: ErrDivideByZero}
	}
	r := FixFloat(floorDiv(int64(a)<<FractionBits, int64(b)))
	if err := checkRange("CheckedDiv", r); err != nil {
		return 0, err
	}
	return r, nil
}

// CheckedSqrt returns a.Sqrt(), ErrNegativeSqrt for negative input, or
// ErrOverflow if a leaves the overflow-safe bound.
func CheckedSqrt(a FixFloat) (FixFloat, error) {
	if err := checkRange("CheckedSqrt", a); err != nil {
		return 0, err
	}
	if a < 0 {
		return 0, &PreconditionError{Op: "CheckedSqrt", Detail: a.String(), Err: ErrNegativeSqrt}
	}
	return FixFloat(Isqrt(int64(a) << FractionBits)), nil
}

// CheckFixVec returns ErrOverflow if either component of v leaves the
// overflow-safe bound.
func CheckFixVec(v FixVec) error {
	return checkOperands("CheckFixVec", v.X, v.Y)
}

func checkOperands(op string, a, b FixFloat) error {
	if err := checkRange(op, a); err != nil {
		return err
	}
	return checkRange(op, b)
}
