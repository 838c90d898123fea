// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package function

import (
	"symcalc/calcerr"
	"symcalc/expr"
	"symcalc/prism"
)

func vec(elems ...expr.Expression) expr.Expression {
	return prism.ExprToVector.Widen(prism.Vector{Elements: elems})
}

// Vconcat is "vconcat": any arity, concatenates its vector arguments
// into one.
func Vconcat() *Function {
	return &Function{
		Name:  "vconcat",
		Flags: Flags{PermitsFlattening: true},
		Cases: []Case{
			AllOfType("vectors", prism.ExprToVector, func(vs []prism.Vector) (expr.Expression, error) {
				var out []expr.Expression
				for _, v := range vs {
					out = append(out, v.Elements...)
				}
				return vec(out...), nil
			}),
		},
	}
}

// Head is "head": the first element of a non-empty vector.
func Head() *Function {
	return &Function{
		Name: "head",
		Cases: []Case{
			ArityOne("vector", prism.ExprToVector, func(v prism.Vector) (expr.Expression, error) {
				if len(v.Elements) == 0 {
					return expr.Expression{}, calcerr.New(calcerr.Domain, "head of an empty vector")
				}
				return v.Elements[0], nil
			}),
		},
	}
}

// Tail is "tail": every element but the first.
func Tail() *Function {
	return &Function{
		Name: "tail",
		Cases: []Case{
			ArityOne("vector", prism.ExprToVector, func(v prism.Vector) (expr.Expression, error) {
				if len(v.Elements) == 0 {
					return expr.Expression{}, calcerr.New(calcerr.Domain, "tail of an empty vector")
				}
				return vec(v.Elements[1:]...), nil
			}),
		},
	}
}

// Init is "init": every element but the last.
func Init() *Function {
	return &Function{
		Name: "init",
		Cases: []Case{
			ArityOne("vector", prism.ExprToVector, func(v prism.Vector) (expr.Expression, error) {
				if len(v.Elements) == 0 {
					return expr.Expression{}, calcerr.New(calcerr.Domain, "init of an empty vector")
				}
				return vec(v.Elements[:len(v.Elements)-1]...), nil
			}),
		},
	}
}

// Last is "last": the final element of a non-empty vector.
func Last() *Function {
	return &Function{
		Name: "last",
		Cases: []Case{
			ArityOne("vector", prism.ExprToVector, func(v prism.Vector) (expr.Expression, error) {
				if len(v.Elements) == 0 {
					return expr.Expression{}, calcerr.New(calcerr.Domain, "last of an empty vector")
				}
				return v.Elements[len(v.Elements)-1], nil
			}),
		},
	}
}

// Cons is "cons": prepend an element to a vector.
func Cons() *Function {
	return &Function{
		Name: "cons",
		Cases: []Case{
			ExactArity(2, "element,vector", func(args []expr.Expression) (expr.Expression, error) {
				v, _, ok := prism.ExprToVector.Narrow(args[1])
				if !ok {
					return expr.Expression{}, ErrNoMatch
				}
				return vec(append([]expr.Expression{args[0]}, v.Elements...)...), nil
			}),
		},
	}
}

// Snoc is "snoc": append an element to a vector.
func Snoc() *Function {
	return &Function{
		Name: "snoc",
		Cases: []Case{
			ExactArity(2, "vector,element", func(args []expr.Expression) (expr.Expression, error) {
				v, _, ok := prism.ExprToVector.Narrow(args[0])
				if !ok {
					return expr.Expression{}, ErrNoMatch
				}
				return vec(append(append([]expr.Expression{}, v.Elements...), args[1])...), nil
			}),
		},
	}
}

// Nth is "nth": the element at the given index, honoring the
// supplied origin (0- or 1-based) for non-negative indices, and
// counting from the end for negative ones (-1 is the last element,
// -2 the second-to-last, and so on), independent of origin.
func Nth(origin int) *Function {
	return &Function{
		Name: "nth",
		Cases: []Case{
			ExactArity(2, "vector,index", func(args []expr.Expression) (expr.Expression, error) {
				v, _, ok := prism.ExprToVector.Narrow(args[0])
				if !ok {
					return expr.Expression{}, ErrNoMatch
				}
				i, _, ok := prism.ExprToInt.Narrow(args[1])
				if !ok {
					return expr.Expression{}, ErrNoMatch
				}
				idx := i - origin
				if i < 0 {
					idx = len(v.Elements) + i
				}
				if idx < 0 || idx >= len(v.Elements) {
					return expr.Expression{}, calcerr.New(calcerr.Domain, "index %d out of range for a vector of length %d", i, len(v.Elements))
				}
				return v.Elements[idx], nil
			}),
		},
	}
}

// Length is "length": the number of elements in a vector.
func Length() *Function {
	return &Function{
		Name: "length",
		Cases: []Case{
			ArityOne("vector", prism.ExprToVector, func(v prism.Vector) (expr.Expression, error) {
				return prism.ExprToUsize.Widen(len(v.Elements)), nil
			}),
		},
	}
}

// Reverse is "reverse": a vector with its elements in reverse order.
func Reverse() *Function {
	return &Function{
		Name: "reverse",
		Cases: []Case{
			ArityOne("vector", prism.ExprToVector, func(v prism.Vector) (expr.Expression, error) {
				out := make([]expr.Expression, len(v.Elements))
				for i, e := range v.Elements {
					out[len(out)-1-i] = e
				}
				return vec(out...), nil
			}),
		},
	}
}

// RegisterVector installs a representative subset of vector functions
// into t: the full operation set a production build would carry
// (transpose, sort, grade, norm, cross, shape, find, iota, repeat,
// arrange, vmask, subvector, remove_nth) follows the same ArityOne/
// AllOfType shape demonstrated here.
func RegisterVector(t *Table, origin int) {
	t.Register(Vconcat())
	t.Register(Head())
	t.Register(Tail())
	t.Register(Init())
	t.Register(Last())
	t.Register(Cons())
	t.Register(Snoc())
	t.Register(Nth(origin))
	t.Register(Length())
	t.Register(Reverse())
}
