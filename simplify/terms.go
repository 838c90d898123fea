// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simplify

import (
	"symcalc/expr"
	"symcalc/number"
)

// plusTerm is one (coefficient, base) pair in a sum: coefficient*base,
// or a pure constant when isConst is true (base is then unused).
type plusTerm struct {
	coef    number.Number
	base    expr.Expression
	isConst bool
}

// splitPlusTerm decomposes one "+" argument into a coefficient and a
// base expression: a bare Number is a pure constant; a "*" call
// contributes the product of its Number factors as the coefficient
// and the remaining factors (re-joined if more than one) as the base.
func splitPlusTerm(a expr.Expression) plusTerm {
	if n, ok := a.AsNumber(); ok {
		return plusTerm{coef: n, isConst: true}
	}
	if a.IsCall() && a.Name() == "*" {
		coef := number.One
		var rest []expr.Expression
		for _, f := range a.Args() {
			if n, ok := f.AsNumber(); ok {
				coef = coef.Mul(n)
			} else {
				rest = append(rest, f)
			}
		}
		switch len(rest) {
		case 0:
			return plusTerm{coef: coef, isConst: true}
		case 1:
			return plusTerm{coef: coef, base: rest[0]}
		default:
			return plusTerm{coef: coef, base: expr.Call("*", rest...)}
		}
	}
	return plusTerm{coef: number.One, base: a}
}

// normalizePlus re-expresses a "+" call's arguments as (term,
// coefficient) pairs, groups like terms, sums them, and sorts the
// result by the canonical expression ordering.
func normalizePlus(args []expr.Expression) expr.Expression {
	var (
		constSum number.Number = number.Zero
		haveConst              bool
		bases    []expr.Expression
		coefs    []number.Number
	)
	for _, a := range args {
		t := splitPlusTerm(a)
		if t.isConst {
			constSum = constSum.Add(t.coef)
			haveConst = true
			continue
		}
		merged := false
		for i, b := range bases {
			if expr.StrictEqual(b, t.base) {
				coefs[i] = coefs[i].Add(t.coef)
				merged = true
				break
			}
		}
		if !merged {
			bases = append(bases, t.base)
			coefs = append(coefs, t.coef)
		}
	}

	var terms []expr.Expression
	for i, b := range bases {
		if coefs[i].IsZero() {
			continue
		}
		if coefs[i].IsOne() {
			terms = append(terms, b)
		} else {
			terms = append(terms, expr.Call("*", expr.Number(coefs[i]), b))
		}
	}
	if haveConst && (!constSum.IsZero() || len(terms) == 0) {
		terms = append(terms, expr.Number(constSum))
	}
	sortExpressions(terms)

	switch len(terms) {
	case 0:
		return expr.Number(number.Zero)
	case 1:
		return terms[0]
	default:
		return expr.Call("+", terms...)
	}
}

// mulFactor is one (base, exponent) pair in a product.
type mulFactor struct {
	base     expr.Expression
	exponent number.Number
}

// splitMulFactor decomposes one "*" argument into a base and
// exponent: a "^" call with a Number exponent contributes that
// exponent directly; anything else is base^1.
func splitMulFactor(a expr.Expression) (factor mulFactor, isConst bool, constVal number.Number) {
	if n, ok := a.AsNumber(); ok {
		return mulFactor{}, true, n
	}
	if a.IsCall() && a.Name() == "^" && len(a.Args()) == 2 {
		if exp, ok := a.Args()[1].AsNumber(); ok {
			return mulFactor{base: a.Args()[0], exponent: exp}, false, nil
		}
	}
	return mulFactor{base: a, exponent: number.One}, false, nil
}

// normalizeMul re-expresses a "*" call's arguments as (base, exponent)
// pairs, combines factors with common bases by summing exponents, and
// sorts the result by the canonical expression ordering.
func normalizeMul(args []expr.Expression) expr.Expression {
	coefProduct := number.One
	var bases []expr.Expression
	var exponents []number.Number

	for _, a := range args {
		factor, isConst, constVal := splitMulFactor(a)
		if isConst {
			coefProduct = coefProduct.Mul(constVal)
			continue
		}
		merged := false
		for i, b := range bases {
			if expr.StrictEqual(b, factor.base) {
				exponents[i] = exponents[i].Add(factor.exponent)
				merged = true
				break
			}
		}
		if !merged {
			bases = append(bases, factor.base)
			exponents = append(exponents, factor.exponent)
		}
	}

	var factors []expr.Expression
	for i, b := range bases {
		if exponents[i].IsZero() {
			continue
		}
		if exponents[i].IsOne() {
			factors = append(factors, b)
		} else {
			factors = append(factors, expr.Call("^", b, expr.Number(exponents[i])))
		}
	}
	sortExpressions(factors)

	if !coefProduct.IsOne() || len(factors) == 0 {
		factors = append([]expr.Expression{expr.Number(coefProduct)}, factors...)
	}

	switch len(factors) {
	case 1:
		return factors[0]
	default:
		return expr.Call("*", factors...)
	}
}
