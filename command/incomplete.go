// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package command

import (
	"symcalc/calcerr"
	"symcalc/expr"
	"symcalc/mode"
	"symcalc/number"
	"symcalc/prism"
	"symcalc/stack"
)

func isOpener(opener string) func(expr.Expression) bool {
	return func(e expr.Expression) bool {
		inc, _, ok := prism.ExprToIncomplete.Narrow(e)
		return ok && inc.Opener == opener
	}
}

// CloseBracketCommand closes a "[" incomplete-object marker: it scans
// downward for the matching marker, collects everything pushed since
// (in stack order, bottom of the collected group first), removes the
// marker, and pushes a vector of the collected elements. A missing
// marker is an error that leaves the stack untouched.
type CloseBracketCommand struct{}

func (CloseBracketCommand) Run(state *State, opts Options, args []string, ctx *Context) (*calcerr.List, error) {
	return RunTransactional(state, opts, NullarySchema{}, args,
		func(kept *stack.Keepable[expr.Expression], m *mode.Mode, errs *calcerr.List) error {
			collected, _, ok := kept.Stack.PopUntil(isOpener("["))
			if !ok {
				return calcerr.New(calcerr.Schema, "no matching '[' marker on the stack")
			}
			reverseExprsInPlace(collected)
			kept.Push(prism.ExprToVector.Widen(prism.Vector{Elements: collected}))
			return nil
		})
}

func (CloseBracketCommand) AsSubcommand(Options) (Callable, bool) { return nil, false }

// CloseParenCommand closes a "(" incomplete-object marker. The
// collected contents are interpreted by arity: one element passes
// through unchanged, two form a ComplexNumber, four form a
// Quaternion, and any other count is an error.
type CloseParenCommand struct{}

func (CloseParenCommand) Run(state *State, opts Options, args []string, ctx *Context) (*calcerr.List, error) {
	return RunTransactional(state, opts, NullarySchema{}, args,
		func(kept *stack.Keepable[expr.Expression], m *mode.Mode, errs *calcerr.List) error {
			collected, _, ok := kept.Stack.PopUntil(isOpener("("))
			if !ok {
				return calcerr.New(calcerr.Schema, "no matching '(' marker on the stack")
			}
			reverseExprsInPlace(collected)
			result, err := composeParenContents(collected)
			if err != nil {
				return err
			}
			kept.Push(result)
			return nil
		})
}

func (CloseParenCommand) AsSubcommand(Options) (Callable, bool) { return nil, false }

func composeParenContents(elems []expr.Expression) (expr.Expression, error) {
	switch len(elems) {
	case 1:
		return elems[0], nil
	case 2:
		re, ok1 := elems[0].AsNumber()
		im, ok2 := elems[1].AsNumber()
		if !ok1 || !ok2 {
			return expr.Expression{}, calcerr.New(calcerr.Type, "a two-element '(' group requires two real numbers")
		}
		return expr.ComplexNumber(number.NewComplex(re, im)), nil
	case 4:
		parts := make([]number.Number, 4)
		for i, e := range elems {
			n, ok := e.AsNumber()
			if !ok {
				return expr.Expression{}, calcerr.New(calcerr.Type, "a four-element '(' group requires four real numbers")
			}
			parts[i] = n
		}
		return expr.Quaternion(number.NewQuaternion(parts[0], parts[1], parts[2], parts[3])), nil
	default:
		return expr.Expression{}, calcerr.New(calcerr.Schema, "a '(' group must contain 1, 2, or 4 elements, got %d", len(elems))
	}
}

func reverseExprsInPlace(es []expr.Expression) {
	for i, j := 0, len(es)-1; i < j; i, j = i+1, j-1 {
		es[i], es[j] = es[j], es[i]
	}
}
