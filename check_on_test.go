// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build fixcheck

package fixgeom

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"strings"
	"testing"
)

// expectViolation runs fn and returns the *PreconditionError it panics with.
func expectViolation(t *testing.T, fn func()) (pe *PreconditionError) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected a precondition panic")
		}
		var ok bool
		if pe, ok = r.(*PreconditionError); !ok {
			t.Fatalf("panic value = %T (%v), want *PreconditionError", r, r)
		}
	}()
	fn()
	return nil
}

func TestChecks_Violations(t *testing.T) {
	a := NewAdapter(NewFloatRect(0.0, 10.0, 0.0, 100.0))

	tests := []struct {
		name string
		fn   func()
		op   string
		want error
	}{
		{"mul overflow operand", func() { _ = (FixMax + 1).Mul(FixUnit) }, "FixFloat.Mul", ErrOverflow},
		{"sqr overflow operand", func() { _ = (FixMin - 1).Sqr() }, "FixFloat.Sqr", ErrOverflow},
		{"div by zero", func() { _ = FixUnit.Div(0) }, "FixFloat.Div", ErrDivideByZero},
		{"negative sqrt", func() { _ = FixFloat(-1).Sqrt() }, "FixFloat.Sqrt", ErrNegativeSqrt},
		{"dot overflow", func() { _ = NewFixVec(FixMax+1, 0).Dot(FixVecZero) }, "FixVec.Dot", ErrOverflow},
		{"cross overflow", func() { _ = FixVecZero.Cross(NewFixVec(0, FixMin-1)) }, "FixVec.Cross", ErrOverflow},
		{"sqr length at int32 min", func() { _ = NewFixVec(math.MinInt32, math.MinInt32).SqrLength() }, "FixVec.SqrLength", ErrOverflow},
		{"dot at int32 min", func() {
			v := NewFixVec(math.MinInt32, math.MinInt32)
			_ = v.Dot(v)
		}, "FixVec.Dot", ErrOverflow},
		{"sqr distance span", func() { _ = NewFixVec(FixMax, 0).SqrDistance(NewFixVec(FixMin, 0)) }, "FixVec.SqrLength", ErrOverflow},
		{"normalize zero", func() { _ = FixVecZero.Normalize() }, "FixVec.Normalize", ErrDivideByZero},
		{"bitpack overflow", func() { _ = NewFixVec(FixMax+1, 0).BitPack() }, "FixVec.BitPack", ErrOverflow},
		{"adapter out of range", func() { _ = a.ToInt(FPt(50.0, 50.0)) }, "Adapter.ToInt", ErrOutOfRange},
		{"adapter from fixvec", func() { _ = a.FromFixVec(NewFixVec(FixMax+1, 0)) }, "Adapter.FromFixVec", ErrOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pe := expectViolation(t, tt.fn)
			if pe.Op != tt.op {
				t.Errorf("Op = %q, want %q", pe.Op, tt.op)
			}
			if !errors.Is(pe, tt.want) {
				t.Errorf("err = %v, want %v", pe, tt.want)
			}
		})
	}
}

func TestChecks_ViolationIsLogged(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	expectViolation(t, func() { _ = FixUnit.Div(0) })

	out := buf.String()
	if !strings.Contains(out, "level=ERROR") || !strings.Contains(out, "precondition violated") {
		t.Errorf("expected error record, got: %s", out)
	}
	if !strings.Contains(out, "op=FixFloat.Div") {
		t.Errorf("expected op attribute, got: %s", out)
	}
}

func TestChecks_ValidInputDoesNotPanic(t *testing.T) {
	a := NewAdapter(NewFloatRect(0.0, 10.0, 0.0, 100.0))
	_ = a.ToInt(FPt(10.5, 50.0)) // within the default radius
	_ = FixMax.Mul(FixUnit)
	_ = FixMin.Sqr()
	_ = NewFixVec(FixMax, FixMin).BitPack()

	corner := NewFixVec(FixMin, FixMin)
	_ = corner.SqrLength()
	_ = corner.Dot(corner)
	_ = NewFixVec(FixMax, 0).SqrDistanceWide(NewFixVec(FixMin, 0))
}
