// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import (
	"testing"

	"symcalc/number"
)

func TestValidVariableName(t *testing.T) {
	valid := []string{"x", "_foo", "foo_bar2", "x'", "_"}
	invalid := []string{"2x", "", "foo-bar", "foo bar", "x''"}
	for _, s := range valid {
		if !ValidVariableName(s) {
			t.Errorf("ValidVariableName(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if ValidVariableName(s) {
			t.Errorf("ValidVariableName(%q) = true, want false", s)
		}
	}
}

func TestVariablePanicsOnBadName(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic for an invalid identifier")
		}
	}()
	Variable("1bad")
}

func TestCallAccessors(t *testing.T) {
	c := Call("+", Number(number.FromInt64(1)), Number(number.FromInt64(2)))
	if !c.IsCall() || c.Name() != "+" || len(c.Args()) != 2 {
		t.Fatalf("Call built incorrectly: %v", c)
	}
}

func TestEqualVsStrictEqual(t *testing.T) {
	intTwo := Number(number.FromInt64(2))
	floatTwo := Number(number.NewFloat(2))
	if !Equal(intTwo, floatTwo) {
		t.Fatal("2 and 2.0 should be loosely equal")
	}
	if StrictEqual(intTwo, floatTwo) {
		t.Fatal("2 and 2.0 should not be strict-equal")
	}
}

func TestEqualOnCalls(t *testing.T) {
	a := Call("f", Variable("x"), Number(number.FromInt64(1)))
	b := Call("f", Variable("x"), Number(number.NewFloat(1)))
	c := Call("f", Variable("y"), Number(number.FromInt64(1)))
	if !Equal(a, b) {
		t.Fatal("calls with loosely-equal args should be loosely equal")
	}
	if Equal(a, c) {
		t.Fatal("calls over different variables should not be equal")
	}
}

func TestIsZeroIsOne(t *testing.T) {
	if !IsZero(Number(number.FromInt64(0))) {
		t.Fatal("IsZero(0) should be true")
	}
	if !IsOne(Number(number.FromInt64(1))) {
		t.Fatal("IsOne(1) should be true")
	}
	if IsZero(Variable("x")) || IsOne(Variable("x")) {
		t.Fatal("a variable is neither zero nor one")
	}
}

func TestIsInfinityConstant(t *testing.T) {
	for _, name := range []string{PosInf, NegInf, ComplexInf, NotANumber} {
		if !IsInfinityConstant(Variable(name)) {
			t.Errorf("IsInfinityConstant(%s) = false, want true", name)
		}
	}
	if IsInfinityConstant(Variable("x")) {
		t.Fatal("an ordinary variable is not an infinity constant")
	}
}
