// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package number implements the calculator's number tower: exact
// arbitrary-precision Integer and Rational representations that
// promote automatically to Float only when an exact result is not
// available, plus the ComplexNumber and Quaternion extensions built
// on top of it.
//
// The tower is modeled the way robpike.io/ivy/value models its own
// Value hierarchy: each representation is a concrete type
// implementing a common interface, and every binary operation
// promotes its operands to the least representation that can hold an
// exact result before computing, then shrinks the result back down.
package number

import "math/big"

// Kind orders the three exact-or-approximate representations from
// smallest to largest. Promotion always moves up this ordering;
// shrink (called automatically after every arithmetic op) tries to
// move back down.
type Kind int

const (
	IntegerKind Kind = iota
	RationalKind
	FloatKind
)

func (k Kind) String() string {
	switch k {
	case IntegerKind:
		return "integer"
	case RationalKind:
		return "rational"
	case FloatKind:
		return "float"
	}
	return "unknown"
}

// Number is the common interface implemented by Integer, Rational,
// and Float. Arithmetic methods promote their receiver and argument
// to a common Kind, compute the operation in that representation, and
// shrink the result back down to the smallest adequate Kind.
type Number interface {
	Kind() Kind
	String() string

	Sign() int
	IsZero() bool
	IsOne() bool

	Add(Number) Number
	Sub(Number) Number
	Mul(Number) Number
	// Div performs true division, promoting to Rational (or Float,
	// if either operand is already a Float) as needed. It panics a
	// *calcerr.Error classified DivisionByZero if the divisor is
	// zero; callers that can produce a soft error instead (the "/"
	// evaluation case) must check IsZero themselves before calling.
	Div(Number) Number
	// Pow computes exponentiation. Integer and Rational bases with an
	// Integer exponent stay exact (a negative exponent gives a
	// Rational); any other combination gives a Float. It panics a
	// *calcerr.Error classified ZeroToZeroPower on 0**0, and one
	// classified DivisionByZero on 0 to a negative power.
	Pow(Number) Number

	// Neg returns the additive inverse.
	Neg() Number

	// Equal is loose equality: it ignores representation, so 0, 0.0
	// and 0/1 all compare equal.
	Equal(Number) bool
	// StrictEqual additionally requires the same Kind.
	StrictEqual(Number) bool

	// Cmp orders two reals; it panics if called on non-comparable
	// representations (there are none yet, but Float NaN is excluded
	// by construction — see doc.go).
	Cmp(Number) int

	// Float64 converts (lossily, for Rational and large Integer) to
	// a host double, for use by transcendental evaluation cases.
	Float64() float64

	// shrink is the internal narrowing step; exported via the
	// package-level Shrink so external callers (the lang package's
	// number parser) can invoke it after constructing a Number by hand.
	shrink() Number
}

// Shrink narrows n to the smallest representation that still holds
// its exact value, e.g. a Rational with denominator 1 becomes an
// Integer. Every arithmetic method in this package already shrinks
// its result; Shrink exists for callers (BasicMode's number parser in
// package lang) that construct Numbers directly.
func Shrink(n Number) Number { return n.shrink() }

// maxKind returns the larger (more general) of two Kinds.
func maxKind(a, b Kind) Kind {
	if a > b {
		return a
	}
	return b
}

// promote converts both operands up to the same Kind, picking the
// least Kind that can represent both exactly.
func promote(a, b Number) (Number, Number, Kind) {
	k := maxKind(a.Kind(), b.Kind())
	return to(a, k), to(b, k), k
}

// to converts n up to the requested Kind. It never narrows; callers
// are expected to only ever widen via promote.
func to(n Number, k Kind) Number {
	switch k {
	case IntegerKind:
		return n
	case RationalKind:
		switch v := n.(type) {
		case Integer:
			return Rational{r: new(big.Rat).SetInt(v.i)}
		default:
			return n
		}
	case FloatKind:
		switch v := n.(type) {
		case Integer:
			f, _ := new(big.Float).SetInt(v.i).Float64()
			return Float{f: f}
		case Rational:
			f, _ := v.r.Float64()
			return Float{f: f}
		default:
			return n
		}
	}
	return n
}

var (
	zeroInt = big.NewInt(0)
	oneInt  = big.NewInt(1)
)

// Zero is the canonical integer 0.
var Zero Number = Integer{i: new(big.Int).Set(zeroInt)}

// One is the canonical integer 1.
var One Number = Integer{i: new(big.Int).Set(oneInt)}

// FromInt64 builds an exact Integer from a machine int64.
func FromInt64(x int64) Number {
	return Integer{i: big.NewInt(x)}
}

// FromFloat64 builds a Float. The caller is responsible for ensuring
// f is neither NaN nor infinite; see doc.go for how this package
// keeps IEEE-754 special values out of Float.
func FromFloat64(f float64) Number {
	return Float{f: f}
}
