// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package command

import (
	"symcalc/calcerr"
	"symcalc/expr"
	"symcalc/mode"
	"symcalc/stack"
)

// FunctionCommand wraps a named function of fixed Arity as an
// interactive Command: it pops Arity operands, builds a call
// expression, simplifies it under the current mode, and pushes the
// result. Grounded on ivy's own unary/binary operator dispatch
// (exec.Context.UnaryFn/BinaryFn), generalized to any fixed arity
// since this function table is not limited to one or two operands.
type FunctionCommand struct {
	Name  string
	Arity int
}

// Run implements Command. The Arity operands are popped top-first and
// reversed, so a stack of ... a b evaluated by a binary command
// produces the call name(a, b) rather than name(b, a).
func (c *FunctionCommand) Run(state *State, opts Options, args []string, ctx *Context) (*calcerr.List, error) {
	return RunTransactional(state, opts, NullarySchema{}, args,
		func(kept *stack.Keepable[expr.Expression], m *mode.Mode, errs *calcerr.List) error {
			popped, err := kept.PopSeveral(c.Arity)
			if err != nil {
				return err
			}
			operands := reverseExprs(popped)
			call := expr.Call(c.Name, operands...)
			before := len(errs.All())
			result := ctx.Simplifier.Simplify(call, m, errs)
			if len(errs.All()) > before && expr.StrictEqual(result, call) {
				// The top-level evaluation case failed outright (e.g. a
				// division by zero): restore the original operands rather
				// than push the still-uncombined call back as one value.
				for _, op := range operands {
					kept.Push(op)
				}
				return nil
			}
			kept.Push(result)
			return nil
		})
}

// AsSubcommand implements Command: a FunctionCommand is always usable
// as a subcommand, since calling it is exactly building and
// simplifying the same call expression Run does.
func (c *FunctionCommand) AsSubcommand(opts Options) (Callable, bool) {
	return ExpressionCallable{Name: c.Name, ArityN: c.Arity}, true
}

func reverseExprs(es []expr.Expression) []expr.Expression {
	out := make([]expr.Expression, len(es))
	for i, e := range es {
		out[len(es)-1-i] = e
	}
	return out
}
