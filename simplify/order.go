// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simplify

import (
	"sort"
	"strings"

	"symcalc/expr"
)

// kindRank gives each expr.Kind a position in the canonical total
// order the term normalizer sorts by: numbers first, then the rest of
// the numeric tower, then strings and variables, then calls.
func kindRank(k expr.Kind) int {
	switch k {
	case expr.NumberKind:
		return 0
	case expr.ComplexKind:
		return 1
	case expr.QuaternionKind:
		return 2
	case expr.StringKind:
		return 3
	case expr.VariableKind:
		return 4
	case expr.CallKind:
		return 5
	}
	return 6
}

// Compare imposes a total, deterministic order over the expression
// language, used both to sort normalized + / * terms and as the
// tie-breaker that makes term grouping order-independent.
func Compare(a, b expr.Expression) int {
	if ra, rb := kindRank(a.Kind()), kindRank(b.Kind()); ra != rb {
		return ra - rb
	}
	switch a.Kind() {
	case expr.NumberKind:
		an, _ := a.AsNumber()
		bn, _ := b.AsNumber()
		return an.Cmp(bn)
	case expr.ComplexKind:
		ac, _ := a.AsComplex()
		bc, _ := b.AsComplex()
		if c := ac.Real.Cmp(bc.Real); c != 0 {
			return c
		}
		return ac.Imag.Cmp(bc.Imag)
	case expr.QuaternionKind:
		aq, _ := a.AsQuaternion()
		bq, _ := b.AsQuaternion()
		if c := aq.R.Cmp(bq.R); c != 0 {
			return c
		}
		if c := aq.I.Cmp(bq.I); c != 0 {
			return c
		}
		if c := aq.J.Cmp(bq.J); c != 0 {
			return c
		}
		return aq.K.Cmp(bq.K)
	case expr.StringKind:
		as, _ := a.AsString()
		bs, _ := b.AsString()
		return strings.Compare(as, bs)
	case expr.VariableKind:
		as, _ := a.AsVariable()
		bs, _ := b.AsVariable()
		return strings.Compare(as, bs)
	case expr.CallKind:
		if c := strings.Compare(a.Name(), b.Name()); c != 0 {
			return c
		}
		aArgs, bArgs := a.Args(), b.Args()
		if len(aArgs) != len(bArgs) {
			return len(aArgs) - len(bArgs)
		}
		for i := range aArgs {
			if c := Compare(aArgs[i], bArgs[i]); c != 0 {
				return c
			}
		}
		return 0
	}
	return 0
}

// sortExpressions sorts es in place by Compare.
func sortExpressions(es []expr.Expression) {
	sort.Slice(es, func(i, j int) bool { return Compare(es[i], es[j]) < 0 })
}
