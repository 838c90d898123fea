// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package function

import (
	"errors"
	"testing"

	"symcalc/calcerr"
	"symcalc/expr"
	"symcalc/number"
	"symcalc/prism"
)

func num(i int64) expr.Expression { return expr.Number(number.FromInt64(i)) }

func TestEvaluateFallsThroughNoMatch(t *testing.T) {
	f := &Function{
		Name: "f",
		Cases: []Case{
			{Name: "declines", Action: func(args []expr.Expression) (expr.Expression, error) {
				return expr.Expression{}, ErrNoMatch
			}},
			{Name: "accepts", Action: func(args []expr.Expression) (expr.Expression, error) {
				return num(42), nil
			}},
		},
	}
	result, outcome, err := f.Evaluate(nil)
	if outcome != Success || err != nil || !expr.Equal(result, num(42)) {
		t.Fatalf("Evaluate = %v, %v, %v; want success 42", result, outcome, err)
	}
}

func TestEvaluateAllNoMatch(t *testing.T) {
	f := &Function{Name: "f", Cases: []Case{
		{Name: "declines", Action: func(args []expr.Expression) (expr.Expression, error) { return expr.Expression{}, ErrNoMatch }},
	}}
	_, outcome, _ := f.Evaluate(nil)
	if outcome != NoMatch {
		t.Fatalf("Evaluate = %v, want NoMatch", outcome)
	}
}

func TestCaseRunRecoversCalcErrPanic(t *testing.T) {
	c := Case{Name: "panics", Action: func(args []expr.Expression) (expr.Expression, error) {
		panic(calcerr.New(calcerr.DivisionByZero, "boom"))
	}}
	_, outcome, err := c.Run(nil)
	if outcome != Failure || err == nil {
		t.Fatalf("Run = %v, %v; want Failure with an error", outcome, err)
	}
}

func TestPlusFlattensAcrossArity(t *testing.T) {
	f := Plus()
	result, outcome, err := f.Evaluate([]expr.Expression{num(1), num(2), num(3)})
	if outcome != Success || err != nil {
		t.Fatalf("1+2+3 evaluate failed: %v %v", outcome, err)
	}
	if !expr.Equal(result, num(6)) {
		t.Fatalf("1+2+3 = %v, want 6", result)
	}
}

func TestDivideByZeroIsFailure(t *testing.T) {
	f := Divide()
	_, outcome, err := f.Evaluate([]expr.Expression{num(1), num(0)})
	if outcome != Failure {
		t.Fatalf("1/0 outcome = %v, want Failure", outcome)
	}
	var cerr *calcerr.Error
	if !errors.As(err, &cerr) || cerr.Kind != calcerr.DivisionByZero {
		t.Fatalf("1/0 error = %v, want a DivisionByZero calcerr.Error", err)
	}
}

func TestPowerZeroToZero(t *testing.T) {
	f := Power()
	_, outcome, _ := f.Evaluate([]expr.Expression{num(0), num(0)})
	if outcome != Failure {
		t.Fatalf("0^0 outcome = %v, want Failure", outcome)
	}
}

func TestVectorHeadOfEmpty(t *testing.T) {
	empty := prismVec()
	_, outcome, _ := Head().Evaluate([]expr.Expression{empty})
	if outcome != Failure {
		t.Fatalf("head([]) outcome = %v, want Failure", outcome)
	}
}

func TestVectorReverseRoundTrips(t *testing.T) {
	v := prismVec(num(1), num(2), num(3))
	result, outcome, err := Reverse().Evaluate([]expr.Expression{v})
	if outcome != Success || err != nil {
		t.Fatalf("reverse failed: %v %v", outcome, err)
	}
	want := prismVec(num(3), num(2), num(1))
	if !expr.Equal(result, want) {
		t.Fatalf("reverse = %v, want %v", result, want)
	}
}

func TestConsSnoc(t *testing.T) {
	v := prismVec(num(2), num(3))
	got, outcome, _ := Cons().Evaluate([]expr.Expression{num(1), v})
	if outcome != Success || !expr.Equal(got, prismVec(num(1), num(2), num(3))) {
		t.Fatalf("cons(1, [2,3]) = %v", got)
	}
	got, outcome, _ = Snoc().Evaluate([]expr.Expression{v, num(4)})
	if outcome != Success || !expr.Equal(got, prismVec(num(2), num(3), num(4))) {
		t.Fatalf("snoc([2,3], 4) = %v", got)
	}
}

func TestNthNegativeIndexCountsFromEnd(t *testing.T) {
	v := prismVec(num(10), num(20), num(30))
	f := Nth(1)

	got, outcome, err := f.Evaluate([]expr.Expression{v, num(-1)})
	if outcome != Success || err != nil || !expr.Equal(got, num(30)) {
		t.Fatalf("nth([10,20,30], -1) = %v, %v, %v, want 30", got, outcome, err)
	}

	got, outcome, err = f.Evaluate([]expr.Expression{v, num(-3)})
	if outcome != Success || err != nil || !expr.Equal(got, num(10)) {
		t.Fatalf("nth([10,20,30], -3) = %v, %v, %v, want 10", got, outcome, err)
	}

	_, outcome, err = f.Evaluate([]expr.Expression{v, num(-4)})
	if outcome != Failure || err == nil {
		t.Fatalf("nth([10,20,30], -4) = %v, %v, want a Domain failure", outcome, err)
	}
}

func prismVec(elems ...expr.Expression) expr.Expression {
	return vec(elems...)
}

func TestIntervalMultiplication(t *testing.T) {
	a := prism.ExprToInterval.Widen(prism.Interval{Lo: num(1), Hi: num(3), HiOpen: true})
	b := prism.ExprToInterval.Widen(prism.Interval{Lo: num(4), Hi: num(6)})
	got, outcome, err := Times().Evaluate([]expr.Expression{a, b})
	if outcome != Success || err != nil {
		t.Fatalf("interval multiplication failed: %v %v", outcome, err)
	}
	want := prism.ExprToInterval.Widen(prism.Interval{Lo: num(4), Hi: num(18), HiOpen: true})
	if !expr.Equal(got, want) {
		t.Fatalf("(1..^3)*(4..6) = %v, want %v", got, want)
	}
}

func TestIntervalMultiplicationSignChange(t *testing.T) {
	a := prism.ExprToInterval.Widen(prism.Interval{Lo: num(-1), Hi: num(4), LoOpen: true})
	b := prism.ExprToInterval.Widen(prism.Interval{Lo: num(0), Hi: num(12), LoOpen: true, HiOpen: true})
	got, outcome, err := Times().Evaluate([]expr.Expression{a, b})
	if outcome != Success || err != nil {
		t.Fatalf("interval multiplication failed: %v %v", outcome, err)
	}
	want := prism.ExprToInterval.Widen(prism.Interval{Lo: num(-12), Hi: num(48), LoOpen: true, HiOpen: true})
	if !expr.Equal(got, want) {
		t.Fatalf("(-1^..4)*(0^..^12) = %v, want %v", got, want)
	}
}
