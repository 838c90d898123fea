// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package prism provides bidirectional partial isomorphisms between
// Expressions and the shapes the function table's cases want to
// operate on: vectors, matrices, intervals, incomplete objects, plain
// numbers, and bare variables. It is the generalization of the
// narrowing a Go type switch gives for free over ivy's value.Value
// interface hierarchy: here the "variants" (vector-shaped calls,
// interval-shaped calls) aren't distinct Go types, so narrowing them
// out of an expr.Expression needs an explicit, reusable abstraction
// rather than a switch on a static set of types.
package prism

// A Prism narrows a value of type A down to a value of type B, and
// can losslessly rebuild an A from a B. Go generics play the role
// ivy's per-type case clauses play for its built-in numeric tower.
type Prism[A, B any] struct {
	narrow func(A) (B, bool)
	widen  func(B) A
}

// New builds a Prism from its narrowing and widening functions.
func New[A, B any](narrow func(A) (B, bool), widen func(B) A) Prism[A, B] {
	return Prism[A, B]{narrow: narrow, widen: widen}
}

// Narrow attempts to view a as a B. On failure it returns the zero
// value of B, a, and false — callers that need the original value
// back on a failed narrow (the Outcome/NoMatch protocol in package
// function) get it without a second call.
func (p Prism[A, B]) Narrow(a A) (b B, original A, ok bool) {
	b, ok = p.narrow(a)
	return b, a, ok
}

// Widen rebuilds an A from a B. It is total: every B a Prism accepts
// from Narrow must widen back to an equivalent A.
func (p Prism[A, B]) Widen(b B) A {
	return p.widen(b)
}

// Is reports whether a narrows successfully, discarding the result.
func (p Prism[A, B]) Is(a A) bool {
	_, ok := p.narrow(a)
	return ok
}

// Identity is the trivial Prism from a type to itself.
func Identity[A any]() Prism[A, A] {
	return New(func(a A) (A, bool) { return a, true }, func(a A) A { return a })
}

// Compose chains two prisms: A -> B -> C.
func Compose[A, B, C any](ab Prism[A, B], bc Prism[B, C]) Prism[A, C] {
	return New(
		func(a A) (C, bool) {
			b, ok := ab.narrow(a)
			if !ok {
				var zero C
				return zero, false
			}
			return bc.narrow(b)
		},
		func(c C) A {
			return ab.widen(bc.widen(c))
		},
	)
}

// OnSlice lifts a Prism[A,B] to operate elementwise over a slice,
// succeeding only when every element narrows.
func OnSlice[A, B any](elem Prism[A, B]) Prism[[]A, []B] {
	return New(
		func(as []A) ([]B, bool) {
			bs := make([]B, len(as))
			for i, a := range as {
				b, ok := elem.narrow(a)
				if !ok {
					return nil, false
				}
				bs[i] = b
			}
			return bs, true
		},
		func(bs []B) []A {
			as := make([]A, len(bs))
			for i, b := range bs {
				as[i] = elem.widen(b)
			}
			return as
		},
	)
}
