// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package number

import (
	"math"
	"strconv"

	"symcalc/calcerr"
)

// Float is a host IEEE-754 double. See doc.go: no value of this type
// is ever NaN or infinite, since Div and Pow panic a *calcerr.Error
// before they would otherwise produce one.
type Float struct {
	f float64
}

// NewFloat wraps a float64. It panics if f is NaN or infinite,
// enforcing the no-NaN-no-infinite invariant at construction time.
func NewFloat(f float64) Float {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		panic(calcerr.New(calcerr.Domain, "float result is not finite"))
	}
	return Float{f: f}
}

func (n Float) Kind() Kind    { return FloatKind }
func (n Float) String() string { return strconv.FormatFloat(n.f, 'g', -1, 64) }
func (n Float) Sign() int {
	switch {
	case n.f > 0:
		return 1
	case n.f < 0:
		return -1
	default:
		return 0
	}
}
func (n Float) IsZero() bool { return n.f == 0 }
func (n Float) IsOne() bool  { return n.f == 1 }

func (n Float) Add(m Number) Number {
	o := asFloat(m)
	return NewFloat(n.f + o.f)
}

func (n Float) Sub(m Number) Number {
	o := asFloat(m)
	return NewFloat(n.f - o.f)
}

func (n Float) Mul(m Number) Number {
	o := asFloat(m)
	return NewFloat(n.f * o.f)
}

func (n Float) Div(m Number) Number {
	o := asFloat(m)
	if o.IsZero() {
		panic(calcerr.New(calcerr.DivisionByZero, "division by zero"))
	}
	return NewFloat(n.f / o.f)
}

func (n Float) Pow(m Number) Number {
	o := asFloat(m)
	if n.IsZero() {
		if o.IsZero() {
			panic(calcerr.New(calcerr.ZeroToZeroPower, "0**0"))
		}
		if o.Sign() < 0 {
			panic(calcerr.New(calcerr.DivisionByZero, "0 to a negative power"))
		}
	}
	result := math.Pow(n.f, o.f)
	if math.IsNaN(result) || math.IsInf(result, 0) {
		panic(calcerr.New(calcerr.Domain, "%v**%v is not a real number", n.f, o.f))
	}
	return NewFloat(result)
}

func (n Float) Neg() Number { return NewFloat(-n.f) }

func (n Float) Equal(m Number) bool {
	return n.f == asFloat(m).f
}

func (n Float) StrictEqual(m Number) bool {
	o, ok := m.(Float)
	return ok && n.f == o.f
}

func (n Float) Cmp(m Number) int {
	o := asFloat(m).f
	switch {
	case n.f < o:
		return -1
	case n.f > o:
		return 1
	default:
		return 0
	}
}

func (n Float) Float64() float64 { return n.f }

func (n Float) shrink() Number { return n }

// asFloat widens m to Float without going through the general
// promote/to machinery, since Float is always the top of the tower.
func asFloat(m Number) Float {
	if f, ok := m.(Float); ok {
		return f
	}
	return Float{f: m.Float64()}
}
