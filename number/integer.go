// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package number

import (
	"math/big"

	"symcalc/calcerr"
)

// Integer is an arbitrary-precision signed integer, backed by
// math/big the way ivy's BigInt is. Unlike ivy, this package does not
// keep a separate machine-word fast path (ivy's Int type): the
// specification only requires arbitrary precision, and a single
// *big.Int-backed representation is simpler while still satisfying
// it; math/big already fast-paths small values internally.
type Integer struct {
	i *big.Int
}

// NewInteger wraps a *big.Int. The caller must not mutate i afterward.
func NewInteger(i *big.Int) Integer { return Integer{i: i} }

// Int returns the underlying *big.Int. Callers must not mutate it.
func (n Integer) Int() *big.Int { return n.i }

func (n Integer) Kind() Kind   { return IntegerKind }
func (n Integer) String() string {
	return n.i.String()
}
func (n Integer) Sign() int   { return n.i.Sign() }
func (n Integer) IsZero() bool { return n.i.Sign() == 0 }
func (n Integer) IsOne() bool  { return n.i.Cmp(oneInt) == 0 }

func (n Integer) Add(m Number) Number {
	if o, ok := m.(Integer); ok {
		return Integer{i: new(big.Int).Add(n.i, o.i)}.shrink()
	}
	a, b, _ := promote(n, m)
	return a.Add(b)
}

func (n Integer) Sub(m Number) Number {
	if o, ok := m.(Integer); ok {
		return Integer{i: new(big.Int).Sub(n.i, o.i)}.shrink()
	}
	a, b, _ := promote(n, m)
	return a.Sub(b)
}

func (n Integer) Mul(m Number) Number {
	if o, ok := m.(Integer); ok {
		return Integer{i: new(big.Int).Mul(n.i, o.i)}.shrink()
	}
	a, b, _ := promote(n, m)
	return a.Mul(b)
}

func (n Integer) Div(m Number) Number {
	if m.IsZero() {
		panic(calcerr.New(calcerr.DivisionByZero, "division by zero"))
	}
	if o, ok := m.(Integer); ok {
		q, r := new(big.Int).QuoRem(n.i, o.i, new(big.Int))
		if r.Sign() == 0 {
			return Integer{i: q}.shrink()
		}
		return Rational{r: new(big.Rat).SetFrac(n.i, o.i)}.shrink()
	}
	a, b, _ := promote(n, m)
	return a.Div(b)
}

func (n Integer) Pow(m Number) Number {
	o, ok := m.(Integer)
	if !ok {
		a, b, _ := promote(n, m)
		return a.Pow(b)
	}
	if n.IsZero() {
		if o.IsZero() {
			panic(calcerr.New(calcerr.ZeroToZeroPower, "0**0"))
		}
		if o.Sign() < 0 {
			panic(calcerr.New(calcerr.DivisionByZero, "0 to a negative power"))
		}
	}
	if o.Sign() < 0 {
		e := new(big.Int).Neg(o.i)
		pow := new(big.Int).Exp(n.i, e, nil)
		return Rational{r: new(big.Rat).SetFrac(big.NewInt(1), pow)}.shrink()
	}
	return Integer{i: new(big.Int).Exp(n.i, o.i, nil)}.shrink()
}

func (n Integer) Neg() Number {
	return Integer{i: new(big.Int).Neg(n.i)}.shrink()
}

func (n Integer) Equal(m Number) bool {
	if o, ok := m.(Integer); ok {
		return n.i.Cmp(o.i) == 0
	}
	a, b, _ := promote(n, m)
	return a.Equal(b)
}

func (n Integer) StrictEqual(m Number) bool {
	o, ok := m.(Integer)
	return ok && n.i.Cmp(o.i) == 0
}

func (n Integer) Cmp(m Number) int {
	if o, ok := m.(Integer); ok {
		return n.i.Cmp(o.i)
	}
	a, b, _ := promote(n, m)
	return a.Cmp(b)
}

func (n Integer) Float64() float64 {
	f := new(big.Float).SetInt(n.i)
	v, _ := f.Float64()
	return v
}

func (n Integer) shrink() Number { return n }
