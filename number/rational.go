// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package number

import (
	"math/big"

	"symcalc/calcerr"
)

// Rational is an arbitrary-precision numerator/denominator pair,
// backed by math/big.Rat, grounded on ivy's BigRat. The invariant
// (denominator != 0) is math/big.Rat's own invariant; shrink enforces
// the "denominator 1 canonicalizes to Integer" rule.
type Rational struct {
	r *big.Rat
}

// NewRational wraps a *big.Rat. The caller must not mutate r afterward.
func NewRational(r *big.Rat) Rational { return Rational{r: r} }

// Rat returns the underlying *big.Rat. Callers must not mutate it.
func (n Rational) Rat() *big.Rat { return n.r }

func (n Rational) Kind() Kind    { return RationalKind }
func (n Rational) String() string {
	return n.r.Num().String() + "/" + n.r.Denom().String()
}
func (n Rational) Sign() int    { return n.r.Sign() }
func (n Rational) IsZero() bool { return n.r.Sign() == 0 }
func (n Rational) IsOne() bool  { return n.r.Cmp(big.NewRat(1, 1)) == 0 }

func (n Rational) reciprocal() Rational {
	return Rational{r: new(big.Rat).Inv(n.r)}
}

func (n Rational) Add(m Number) Number {
	if o, ok := m.(Rational); ok {
		return Rational{r: new(big.Rat).Add(n.r, o.r)}.shrink()
	}
	a, b, k := promote(n, m)
	if k == RationalKind {
		return a.(Rational).Add(b)
	}
	return a.Add(b)
}

func (n Rational) Sub(m Number) Number {
	if o, ok := m.(Rational); ok {
		return Rational{r: new(big.Rat).Sub(n.r, o.r)}.shrink()
	}
	a, b, k := promote(n, m)
	if k == RationalKind {
		return a.(Rational).Sub(b)
	}
	return a.Sub(b)
}

func (n Rational) Mul(m Number) Number {
	if o, ok := m.(Rational); ok {
		return Rational{r: new(big.Rat).Mul(n.r, o.r)}.shrink()
	}
	a, b, k := promote(n, m)
	if k == RationalKind {
		return a.(Rational).Mul(b)
	}
	return a.Mul(b)
}

func (n Rational) Div(m Number) Number {
	if m.IsZero() {
		panic(calcerr.New(calcerr.DivisionByZero, "division by zero"))
	}
	if o, ok := m.(Rational); ok {
		return Rational{r: new(big.Rat).Quo(n.r, o.r)}.shrink()
	}
	a, b, k := promote(n, m)
	if k == RationalKind {
		return a.(Rational).Div(b)
	}
	return a.Div(b)
}

// Pow only has an exact closed form for an Integer exponent; anything
// else (including a non-integral Rational exponent) falls back to
// Float, matching ivy's "the only implementation of exponentiation we
// have is in big.Int/big.Float" comment.
func (n Rational) Pow(m Number) Number {
	if exp, ok := m.(Integer); ok {
		if n.IsZero() {
			if exp.IsZero() {
				panic(calcerr.New(calcerr.ZeroToZeroPower, "0**0"))
			}
			if exp.Sign() < 0 {
				panic(calcerr.New(calcerr.DivisionByZero, "0 to a negative power"))
			}
		}
		neg := exp.Sign() < 0
		e := new(big.Int).Abs(exp.i)
		num := new(big.Int).Exp(n.r.Num(), e, nil)
		den := new(big.Int).Exp(n.r.Denom(), e, nil)
		result := Rational{r: new(big.Rat).SetFrac(num, den)}
		if neg {
			result = result.reciprocal()
		}
		return result.shrink()
	}
	a, b, _ := promote(n, m)
	return to(a, FloatKind).Pow(to(b, FloatKind))
}

func (n Rational) Neg() Number {
	return Rational{r: new(big.Rat).Neg(n.r)}.shrink()
}

func (n Rational) Equal(m Number) bool {
	if o, ok := m.(Rational); ok {
		return n.r.Cmp(o.r) == 0
	}
	a, b, _ := promote(n, m)
	return a.Equal(b)
}

func (n Rational) StrictEqual(m Number) bool {
	o, ok := m.(Rational)
	return ok && n.r.Cmp(o.r) == 0
}

func (n Rational) Cmp(m Number) int {
	if o, ok := m.(Rational); ok {
		return n.r.Cmp(o.r)
	}
	a, b, _ := promote(n, m)
	return a.Cmp(b)
}

func (n Rational) Float64() float64 {
	f, _ := n.r.Float64()
	return f
}

// shrink pulls a Rational down to an Integer when its denominator is 1.
func (n Rational) shrink() Number {
	if n.r.IsInt() {
		return Integer{i: new(big.Int).Set(n.r.Num())}
	}
	return n
}
