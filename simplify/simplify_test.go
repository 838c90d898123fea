// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simplify

import (
	"testing"

	"symcalc/calcerr"
	"symcalc/expr"
	"symcalc/function"
	"symcalc/mode"
	"symcalc/number"
)

func num(i int64) expr.Expression { return expr.Number(number.FromInt64(i)) }

func newTestTable() *function.Table {
	t := function.NewTable()
	function.RegisterArithmetic(t)
	function.RegisterVector(t, 1)
	return t
}

func TestSimplifyConstantFolding(t *testing.T) {
	s := New(newTestTable())
	m := mode.New()
	errs := &calcerr.List{}
	e := expr.Call("+", num(1), num(2), num(3))
	got := s.Simplify(e, m, errs)
	if !expr.Equal(got, num(6)) {
		t.Fatalf("1+2+3 simplified to %v, want 6", got)
	}
	if !errs.Empty() {
		t.Fatalf("unexpected errors: %v", errs.All())
	}
}

func TestSimplifyFoldsNestedConstantSum(t *testing.T) {
	s := New(newTestTable())
	m := mode.New()
	errs := &calcerr.List{}
	// +(x, +(1, 2)): the inner sum is simplified first, bottom-up, and
	// folds to 3; the parent's terms are then sorted into canonical
	// order, which puts numbers before variables.
	e := expr.Call("+", expr.Variable("x"), expr.Call("+", num(1), num(2)))
	got := s.Simplify(e, m, errs)
	want := expr.Call("+", num(3), expr.Variable("x"))
	if !expr.Equal(got, want) {
		t.Fatalf("simplify = %v, want %v", got, want)
	}
}

func TestSimplifyFlattensIrreducibleNestedSum(t *testing.T) {
	s := New(newTestTable())
	m := mode.New()
	errs := &calcerr.List{}
	x, y, z := expr.Variable("x"), expr.Variable("y"), expr.Variable("z")
	// +(+(x, y), z): the inner call has no further reduction of its
	// own, so it survives recursive simplification as a Call and only
	// the parent's own flatten step splices it into one three-way sum.
	e := expr.Call("+", expr.Call("+", x, y), z)
	got := s.Simplify(e, m, errs)
	if got.Name() != "+" || len(got.Args()) != 3 {
		t.Fatalf("expected a flattened 3-argument sum, got %v", got)
	}
}

func TestSimplifyIdentityElimination(t *testing.T) {
	s := New(newTestTable())
	m := mode.New()
	errs := &calcerr.List{}
	e := expr.Call("+", expr.Variable("x"), num(0))
	got := s.Simplify(e, m, errs)
	if !expr.Equal(got, expr.Variable("x")) {
		t.Fatalf("x+0 simplified to %v, want x", got)
	}
}

func TestSimplifyLikeTermGrouping(t *testing.T) {
	s := New(newTestTable())
	m := mode.New()
	errs := &calcerr.List{}
	x := expr.Variable("x")
	e := expr.Call("+", x, x, x)
	got := s.Simplify(e, m, errs)
	want := expr.Call("*", num(3), x)
	if !expr.Equal(got, want) {
		t.Fatalf("x+x+x simplified to %v, want %v", got, want)
	}
}

func TestSimplifyExponentCombination(t *testing.T) {
	s := New(newTestTable())
	m := mode.New()
	errs := &calcerr.List{}
	x := expr.Variable("x")
	e := expr.Call("*", x, x)
	got := s.Simplify(e, m, errs)
	want := expr.Call("^", x, num(2))
	if !expr.Equal(got, want) {
		t.Fatalf("x*x simplified to %v, want %v", got, want)
	}
}

func TestSimplifyLeavesUnknownFunctionAlone(t *testing.T) {
	s := New(newTestTable())
	m := mode.New()
	errs := &calcerr.List{}
	e := expr.Call("test_func2", expr.Call("test_func2", num(30), num(40)), num(50))
	got := s.Simplify(e, m, errs)
	if !expr.Equal(got, e) {
		t.Fatalf("an unregistered function call should simplify to itself, got %v", got)
	}
}

func TestSimplifyAccumulatesSoftErrorOnDivisionByZero(t *testing.T) {
	s := New(newTestTable())
	m := mode.New()
	errs := &calcerr.List{}
	e := expr.Call("/", num(1), num(0))
	got := s.Simplify(e, m, errs)
	if !expr.Equal(got, e) {
		t.Fatalf("1/0 should be left as-is on a soft error, got %v", got)
	}
	if errs.Empty() {
		t.Fatal("expected a division-by-zero error to be recorded")
	}
}

func TestCompareOrdersNumbersBeforeVariables(t *testing.T) {
	if Compare(num(1), expr.Variable("x")) >= 0 {
		t.Fatal("a number should sort before a variable")
	}
}
