// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lang

import (
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"symcalc/expr"
	"symcalc/number"
	"symcalc/prism"
)

func renderFancy(t *testing.T, e expr.Expression, precedence int) string {
	t.Helper()
	var b strings.Builder
	if err := (FancyMode{}).WriteHTML(&b, e, precedence); err != nil {
		t.Fatal(err)
	}
	return b.String()
}

func TestFancyModeArithmeticSnapshot(t *testing.T) {
	e := expr.Call("+",
		expr.Call("*", expr.Number(number.FromInt64(2)), expr.Variable("x")),
		expr.Call("^", expr.Variable("y"), expr.Number(number.FromInt64(2))),
	)
	snaps.MatchSnapshot(t, "arithmetic", renderFancy(t, e, 0))
}

func TestFancyModeVectorAndIntervalSnapshot(t *testing.T) {
	v := prism.ExprToVector.Widen(prism.Vector{Elements: []expr.Expression{
		expr.Number(number.FromInt64(1)), expr.Number(number.FromInt64(2)), expr.Number(number.FromInt64(3)),
	}})
	iv := prism.ExprToInterval.Widen(prism.Interval{
		Lo: expr.Number(number.FromInt64(1)), Hi: expr.Number(number.FromInt64(5)), HiOpen: true,
	})
	snaps.MatchSnapshot(t, "vector", renderFancy(t, v, 0))
	snaps.MatchSnapshot(t, "interval", renderFancy(t, iv, 0))
}

func TestFancyModeAbsoluteValue(t *testing.T) {
	e := expr.Call("abs", expr.Variable("x"))
	got := renderFancy(t, e, 0)
	want := `<span class="abs">|<span class="variable">x</span>|</span>`
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestFancyModeParenthesizesLowerPrecedence(t *testing.T) {
	// (x+1)*2 must keep its parentheses: the "+" subtree is rendered
	// in a context whose precedence is "*"'s.
	sum := expr.Call("+", expr.Variable("x"), expr.Number(number.FromInt64(1)))
	product := expr.Call("*", sum, expr.Number(number.FromInt64(2)))
	got := renderFancy(t, product, 0)
	if !strings.Contains(got, "(") {
		t.Fatalf("expected parenthesized sum inside product, got %q", got)
	}
}

func TestFancyModeDoesNotParse(t *testing.T) {
	if _, err := (FancyMode{}).Parse("anything"); err == nil {
		t.Fatal("expected FancyMode.Parse to error")
	}
}
