// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prism

import (
	"symcalc/expr"
	"symcalc/number"
)

// Vector call/function name.
const vectorName = "vector"

// Interval call names, one per combination of bound strictness.
const (
	IntervalClosed     = ".."
	IntervalRightOpen  = "..^"
	IntervalLeftOpen   = "^.."
	IntervalFullyOpen  = "^..^"
	incompleteCallName = "incomplete"
)

// ExprToNumber narrows an Expression down to its bare Number payload.
var ExprToNumber = New(
	func(e expr.Expression) (number.Number, bool) { return e.AsNumber() },
	func(n number.Number) expr.Expression { return expr.Number(n) },
)

// ExprToComplex narrows an Expression to a Complex, transparently
// promoting a bare real Number the way every "every real is a
// degenerate complex" operation needs.
var ExprToComplex = New(
	func(e expr.Expression) (number.Complex, bool) {
		if c, ok := e.AsComplex(); ok {
			return c, true
		}
		if n, ok := e.AsNumber(); ok {
			return number.NewComplex(n, number.Zero), true
		}
		return number.Complex{}, false
	},
	func(c number.Complex) expr.Expression {
		if n, ok := c.Shrink(); ok {
			return expr.Number(n)
		}
		return expr.ComplexNumber(c)
	},
)

// ExprToQuaternion narrows an Expression to a Quaternion, promoting
// reals and complexes transparently.
var ExprToQuaternion = New(
	func(e expr.Expression) (number.Quaternion, bool) {
		if q, ok := e.AsQuaternion(); ok {
			return q, true
		}
		if c, ok := e.AsComplex(); ok {
			return number.FromComplex(c), true
		}
		if n, ok := e.AsNumber(); ok {
			return number.FromComplex(number.NewComplex(n, number.Zero)), true
		}
		return number.Quaternion{}, false
	},
	func(q number.Quaternion) expr.Expression {
		if c, ok := q.Shrink(); ok {
			if n, ok := c.Shrink(); ok {
				return expr.Number(n)
			}
			return expr.ComplexNumber(c)
		}
		return expr.Quaternion(q)
	},
)

// Vector is a typed view of an Expression known to be a "vector" Call:
// its elements in order.
type Vector struct {
	Elements []expr.Expression
}

// ExprToVector narrows an Expression to a Vector.
var ExprToVector = New(
	func(e expr.Expression) (Vector, bool) {
		if !e.IsCall() || e.Name() != vectorName {
			return Vector{}, false
		}
		return Vector{Elements: e.Args()}, true
	},
	func(v Vector) expr.Expression { return expr.Call(vectorName, v.Elements...) },
)

// Matrix is a typed view of a Vector all of whose elements are
// Vectors of equal, positive length.
type Matrix struct {
	Rows [][]expr.Expression
}

// ExprToMatrix narrows an Expression to a Matrix: a Vector all of
// whose elements are themselves Vectors of equal length >= 1.
var ExprToMatrix = New(
	func(e expr.Expression) (Matrix, bool) {
		v, _, ok := ExprToVector.Narrow(e)
		if !ok || len(v.Elements) == 0 {
			return Matrix{}, false
		}
		rows := make([][]expr.Expression, len(v.Elements))
		width := -1
		for i, row := range v.Elements {
			rv, _, ok := ExprToVector.Narrow(row)
			if !ok || len(rv.Elements) == 0 {
				return Matrix{}, false
			}
			if width == -1 {
				width = len(rv.Elements)
			} else if len(rv.Elements) != width {
				return Matrix{}, false
			}
			rows[i] = rv.Elements
		}
		return Matrix{Rows: rows}, true
	},
	func(m Matrix) expr.Expression {
		rows := make([]expr.Expression, len(m.Rows))
		for i, r := range m.Rows {
			rows[i] = expr.Call(vectorName, r...)
		}
		return expr.Call(vectorName, rows...)
	},
)

// Interval is a typed view of an Expression known to be one of the
// four interval-shaped Calls.
type Interval struct {
	Lo, Hi         expr.Expression
	LoOpen, HiOpen bool
}

func intervalCallName(loOpen, hiOpen bool) string {
	switch {
	case !loOpen && !hiOpen:
		return IntervalClosed
	case !loOpen && hiOpen:
		return IntervalRightOpen
	case loOpen && !hiOpen:
		return IntervalLeftOpen
	default:
		return IntervalFullyOpen
	}
}

// ExprToInterval narrows an Expression to an Interval.
var ExprToInterval = New(
	func(e expr.Expression) (Interval, bool) {
		if !e.IsCall() || len(e.Args()) != 2 {
			return Interval{}, false
		}
		args := e.Args()
		switch e.Name() {
		case IntervalClosed:
			return Interval{Lo: args[0], Hi: args[1]}, true
		case IntervalRightOpen:
			return Interval{Lo: args[0], Hi: args[1], HiOpen: true}, true
		case IntervalLeftOpen:
			return Interval{Lo: args[0], Hi: args[1], LoOpen: true}, true
		case IntervalFullyOpen:
			return Interval{Lo: args[0], Hi: args[1], LoOpen: true, HiOpen: true}, true
		}
		return Interval{}, false
	},
	func(iv Interval) expr.Expression {
		return expr.Call(intervalCallName(iv.LoOpen, iv.HiOpen), iv.Lo, iv.Hi)
	},
)

// CanonicalEmptyInterval is the normal form of an empty interval:
// `0 ..^ 0`.
func CanonicalEmptyInterval() expr.Expression {
	return ExprToInterval.Widen(Interval{
		Lo: expr.Number(number.Zero), Hi: expr.Number(number.Zero), HiOpen: true,
	})
}

// IsEmpty reports whether iv denotes the empty set: Lo == Hi with at
// least one side open, or Lo > Hi.
func IsEmpty(iv Interval) bool {
	lon, loOK := iv.Lo.AsNumber()
	hin, hiOK := iv.Hi.AsNumber()
	if !loOK || !hiOK {
		return false
	}
	c := lon.Cmp(hin)
	if c > 0 {
		return true
	}
	if c == 0 {
		return iv.LoOpen || iv.HiOpen
	}
	return false
}

// Incomplete is a typed view of an Expression known to be an
// "incomplete" Call: a stack marker used during multi-step entry of
// vectors and complex numbers.
type Incomplete struct {
	Opener string // one of "[" or "("
}

// ExprToIncomplete narrows an Expression to an Incomplete marker.
var ExprToIncomplete = New(
	func(e expr.Expression) (Incomplete, bool) {
		if !e.IsCall() || e.Name() != incompleteCallName || len(e.Args()) != 1 {
			return Incomplete{}, false
		}
		s, ok := e.Args()[0].AsString()
		if !ok || (s != "[" && s != "(") {
			return Incomplete{}, false
		}
		return Incomplete{Opener: s}, true
	},
	func(inc Incomplete) expr.Expression {
		return expr.Call(incompleteCallName, expr.String(inc.Opener))
	},
)

// ExprToUsize narrows a non-negative Integer-valued Expression down
// to a Go int, used for array-index-like arguments.
var ExprToUsize = New(
	func(e expr.Expression) (int, bool) {
		n, ok := e.AsNumber()
		if !ok || n.Kind() != number.IntegerKind || n.Sign() < 0 {
			return 0, false
		}
		f := n.Float64()
		i := int(f)
		if float64(i) != f {
			return 0, false
		}
		return i, true
	},
	func(i int) expr.Expression { return expr.Number(number.FromInt64(int64(i))) },
)

// ExprToInt narrows any Integer-valued Expression, positive or
// negative, down to a Go int, used for index-like arguments whose
// function accepts negative-counts-from-end semantics (e.g. "nth").
var ExprToInt = New(
	func(e expr.Expression) (int, bool) {
		n, ok := e.AsNumber()
		if !ok || n.Kind() != number.IntegerKind {
			return 0, false
		}
		f := n.Float64()
		i := int(f)
		if float64(i) != f {
			return 0, false
		}
		return i, true
	},
	func(i int) expr.Expression { return expr.Number(number.FromInt64(int64(i))) },
)

// MustBeVar narrows an Expression to a bare variable identifier.
var MustBeVar = New(
	func(e expr.Expression) (string, bool) { return e.AsVariable() },
	func(name string) expr.Expression { return expr.Variable(name) },
)
