// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package number

import (
	"math/big"
	"testing"
)

func TestIntegerAddShrinksExact(t *testing.T) {
	a := FromInt64(2)
	b := FromInt64(3)
	got := a.Add(b)
	if got.Kind() != IntegerKind || got.String() != "5" {
		t.Fatalf("2+3 = %v (%v), want 5 (integer)", got, got.Kind())
	}
}

func TestRationalShrinksToInteger(t *testing.T) {
	half := Rational{r: big.NewRat(1, 2)}
	r := half.Add(half)
	if r.Kind() != IntegerKind {
		t.Fatalf("1/2+1/2 = %v (%v), want integer", r, r.Kind())
	}
	if r.String() != "1" {
		t.Fatalf("1/2+1/2 = %s, want 1", r.String())
	}
}

func TestDivisionByZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic dividing by zero")
		}
	}()
	FromInt64(1).Div(FromInt64(0))
}

func TestZeroToZeroPowerPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic for 0**0")
		}
	}()
	FromInt64(0).Pow(FromInt64(0))
}

func TestNegativeExponentPromotesToRational(t *testing.T) {
	got := FromInt64(2).Pow(FromInt64(-1))
	if got.Kind() != RationalKind {
		t.Fatalf("2**-1 = %v (%v), want rational", got, got.Kind())
	}
	if got.String() != "1/2" {
		t.Fatalf("2**-1 = %s, want 1/2", got.String())
	}
}

func TestNegativeExponentHigherPower(t *testing.T) {
	got := FromInt64(5).Pow(FromInt64(-3))
	if got.Kind() != RationalKind {
		t.Fatalf("5**-3 = %v (%v), want rational", got, got.Kind())
	}
	if got.String() != "1/125" {
		t.Fatalf("5**-3 = %s, want 1/125", got.String())
	}
}

func TestNegativeExponentOfNegativeBase(t *testing.T) {
	got := FromInt64(-2).Pow(FromInt64(-1))
	if got.Kind() != RationalKind {
		t.Fatalf("-2**-1 = %v (%v), want rational", got, got.Kind())
	}
	if got.String() != "-1/2" {
		t.Fatalf("-2**-1 = %s, want -1/2", got.String())
	}
}

func TestLooseEqualityIgnoresRepresentation(t *testing.T) {
	zeroInt := FromInt64(0)
	zeroRat := Rational{r: big.NewRat(0, 1)}
	zeroFloat := NewFloat(0)
	if !zeroInt.Equal(zeroRat) || !zeroInt.Equal(zeroFloat) || !zeroRat.Equal(zeroFloat) {
		t.Fatal("0, 0/1, and 0.0 must compare equal under loose equality")
	}
	if zeroInt.StrictEqual(zeroFloat) {
		t.Fatal("0 and 0.0 must not compare strict-equal")
	}
}

func TestQuaternionBasis(t *testing.T) {
	ii := NewQuaternion(Zero, One, Zero, Zero)
	jj := NewQuaternion(Zero, Zero, One, Zero)
	kk := NewQuaternion(Zero, Zero, Zero, One)
	minusOne := NewQuaternion(FromInt64(-1), Zero, Zero, Zero)

	if !ii.Mul(jj).Equal(kk) {
		t.Errorf("ii*jj = %v, want kk = %v", ii.Mul(jj), kk)
	}
	if !jj.Mul(kk).Equal(ii) {
		t.Errorf("jj*kk = %v, want ii = %v", jj.Mul(kk), ii)
	}
	if !kk.Mul(ii).Equal(jj) {
		t.Errorf("kk*ii = %v, want jj = %v", kk.Mul(ii), jj)
	}
	if !jj.Mul(ii).Equal(kk.Neg()) {
		t.Errorf("jj*ii should negate ii*jj")
	}
	if !ii.Mul(ii).Equal(minusOne) || !jj.Mul(jj).Equal(minusOne) || !kk.Mul(kk).Equal(minusOne) {
		t.Error("ii*ii = jj*jj = kk*kk should equal -1")
	}
}

func TestComplexDivision(t *testing.T) {
	c := NewComplex(FromInt64(1), FromInt64(2))
	d := NewComplex(FromInt64(3), FromInt64(-1))
	got := c.Div(d).Mul(d)
	if !got.Equal(c) {
		t.Fatalf("(c/d)*d = %v, want %v", got, c)
	}
}
