// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package function

import (
	"symcalc/expr"
	"symcalc/prism"
)

// AnyArity builds a Case with no argument-count or type check; fn is
// responsible for its own narrowing and for returning ErrNoMatch when
// it declines.
func AnyArity(name string, fn func(args []expr.Expression) (expr.Expression, error)) Case {
	return Case{Name: name, Action: fn}
}

// ExactArity builds a Case that declines with ErrNoMatch unless
// exactly n arguments are given.
func ExactArity(n int, name string, fn func(args []expr.Expression) (expr.Expression, error)) Case {
	return Case{Name: name, Action: func(args []expr.Expression) (expr.Expression, error) {
		if len(args) != n {
			return expr.Expression{}, ErrNoMatch
		}
		return fn(args)
	}}
}

// NonZeroArity builds a Case that declines with ErrNoMatch on zero
// arguments, otherwise delegating to fn with whatever arity it was
// called with.
func NonZeroArity(name string, fn func(args []expr.Expression) (expr.Expression, error)) Case {
	return Case{Name: name, Action: func(args []expr.Expression) (expr.Expression, error) {
		if len(args) == 0 {
			return expr.Expression{}, ErrNoMatch
		}
		return fn(args)
	}}
}

// ArityOne builds a Case for a unary function whose single argument
// must narrow through p.
func ArityOne[B any](name string, p prism.Prism[expr.Expression, B], fn func(B) (expr.Expression, error)) Case {
	return Case{Name: name, Action: func(args []expr.Expression) (expr.Expression, error) {
		if len(args) != 1 {
			return expr.Expression{}, ErrNoMatch
		}
		b, _, ok := p.Narrow(args[0])
		if !ok {
			return expr.Expression{}, ErrNoMatch
		}
		return fn(b)
	}}
}

// ArityTwo builds a Case for a binary function whose two arguments
// must each narrow through p.
func ArityTwo[B any](name string, p prism.Prism[expr.Expression, B], fn func(B, B) (expr.Expression, error)) Case {
	return Case{Name: name, Action: func(args []expr.Expression) (expr.Expression, error) {
		if len(args) != 2 {
			return expr.Expression{}, ErrNoMatch
		}
		b1, _, ok1 := p.Narrow(args[0])
		b2, _, ok2 := p.Narrow(args[1])
		if !ok1 || !ok2 {
			return expr.Expression{}, ErrNoMatch
		}
		return fn(b1, b2)
	}}
}

// BothOfType is an alias for ArityTwo, named to match the vocabulary
// a reader of the function table would expect ("both arguments must
// be of type B") alongside AllOfType below.
func BothOfType[B any](name string, p prism.Prism[expr.Expression, B], fn func(B, B) (expr.Expression, error)) Case {
	return ArityTwo(name, p, fn)
}

// AllOfType builds a Case for an any-arity function whose every
// argument must narrow through p; it declines on zero arguments since
// there is no meaningful identity to return without consulting the
// Function's own IsIdentity/Flags.
func AllOfType[B any](name string, p prism.Prism[expr.Expression, B], fn func([]B) (expr.Expression, error)) Case {
	return Case{Name: name, Action: func(args []expr.Expression) (expr.Expression, error) {
		if len(args) == 0 {
			return expr.Expression{}, ErrNoMatch
		}
		bs := make([]B, len(args))
		for i, a := range args {
			b, _, ok := p.Narrow(a)
			if !ok {
				return expr.Expression{}, ErrNoMatch
			}
			bs[i] = b
		}
		return fn(bs)
	}}
}
