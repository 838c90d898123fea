// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package command

import (
	"symcalc/calcerr"
	"symcalc/expr"
	"symcalc/mode"
	"symcalc/prism"
	"symcalc/simplify"
	"symcalc/stack"
)

// numericalArgument resolves a Pack-style command's N: opts.Argument
// if present, otherwise popped as an integer from the top of the
// stack, per the "absence means pop one integer and use as N"
// convention.
func numericalArgument(kept *stack.Keepable[expr.Expression], opts Options) (int, error) {
	if opts.Argument != nil {
		return *opts.Argument, nil
	}
	top, err := kept.Pop()
	if err != nil {
		return 0, err
	}
	n, _, ok := prism.ExprToUsize.Narrow(top)
	if !ok {
		return 0, calcerr.New(calcerr.Type, "expected an integer argument on the stack")
	}
	return n, nil
}

// PackCommand packs N elements into a vector: positive N pops N
// elements, N = 0 packs the entire stack, negative N is a hard
// SchemaError (reserved behavior, see DESIGN.md).
type PackCommand struct{}

func (PackCommand) Run(state *State, opts Options, args []string, ctx *Context) (*calcerr.List, error) {
	return RunTransactional(state, opts, NullarySchema{}, args,
		func(kept *stack.Keepable[expr.Expression], m *mode.Mode, errs *calcerr.List) error {
			n, err := numericalArgument(kept, opts)
			if err != nil {
				return err
			}
			if n < 0 {
				return calcerr.New(calcerr.Schema, "PackCommand does not accept a negative argument")
			}
			var elems []expr.Expression
			if n == 0 {
				elems = kept.Stack.Snapshot()
				if !opts.KeepModifier {
					kept.Stack.Restore(nil)
				}
			} else {
				popped, err := kept.PopSeveral(n)
				if err != nil {
					return err
				}
				elems = reverseExprs(popped)
			}
			kept.Push(prism.ExprToVector.Widen(prism.Vector{Elements: elems}))
			return nil
		})
}

func (PackCommand) AsSubcommand(Options) (Callable, bool) { return nil, false }

// UnpackCommand is Pack's inverse: it pops a vector and pushes each of
// its elements, in order, so the vector's first element ends up
// deepest and its last element ends up on top.
type UnpackCommand struct{}

func (UnpackCommand) Run(state *State, opts Options, args []string, ctx *Context) (*calcerr.List, error) {
	return RunTransactional(state, opts, NullarySchema{}, args,
		func(kept *stack.Keepable[expr.Expression], m *mode.Mode, errs *calcerr.List) error {
			top, err := kept.Pop()
			if err != nil {
				return err
			}
			v, _, ok := prism.ExprToVector.Narrow(top)
			if !ok {
				return calcerr.New(calcerr.Type, "UnpackCommand requires a vector on top of the stack")
			}
			for _, e := range v.Elements {
				kept.Push(e)
			}
			return nil
		})
}

func (UnpackCommand) AsSubcommand(Options) (Callable, bool) { return nil, false }

// DatasetDrivenCommand applies a fixed-arity Sub across a window of
// the stack selected by the numerical-argument protocol: positive N
// pops N elements into a vector and applies Sub to them; N = 0 uses
// the whole stack; a negative or absent (equivalent to -1) argument
// applies Sub in place to the single element at 1-indexed depth |N|
// from the top.
type DatasetDrivenCommand struct {
	Sub Callable
}

func (c DatasetDrivenCommand) Run(state *State, opts Options, args []string, ctx *Context) (*calcerr.List, error) {
	return RunTransactional(state, opts, NullarySchema{}, args,
		func(kept *stack.Keepable[expr.Expression], m *mode.Mode, errs *calcerr.List) error {
			n := -1
			if opts.Argument != nil {
				n = *opts.Argument
			}
			switch {
			case n > 0:
				return c.applyToWindow(kept, n, ctx.Simplifier, m, errs)
			case n == 0:
				return c.applyToWindow(kept, kept.Len(), ctx.Simplifier, m, errs)
			default:
				return c.applyAtDepth(kept, opts, -n, ctx.Simplifier, m, errs)
			}
		})
}

func (c DatasetDrivenCommand) applyToWindow(kept *stack.Keepable[expr.Expression], n int, simp *simplify.Simplifier, m *mode.Mode, errs *calcerr.List) error {
	popped, err := kept.PopSeveral(n)
	if err != nil {
		return err
	}
	operands := reverseExprs(popped)
	if c.Sub.Arity() != len(operands) {
		return calcerr.New(calcerr.Arity, "subcommand expects %d argument(s), got %d", c.Sub.Arity(), len(operands))
	}
	result, err := c.Sub.Call(operands, simp, m, errs)
	if err != nil {
		return err
	}
	kept.Push(result)
	return nil
}

func (c DatasetDrivenCommand) applyAtDepth(kept *stack.Keepable[expr.Expression], opts Options, depth int, simp *simplify.Simplifier, m *mode.Mode, errs *calcerr.List) error {
	if c.Sub.Arity() != 1 {
		return calcerr.New(calcerr.Arity, "a negative-depth DatasetDriven command requires a unary subcommand, got arity %d", c.Sub.Arity())
	}
	target, err := kept.Stack.At(depth - 1)
	if err != nil {
		return err
	}
	result, err := c.Sub.Call([]expr.Expression{target}, simp, m, errs)
	if err != nil {
		return err
	}
	if opts.KeepModifier {
		// Leave the target untouched below; the new value is pushed on
		// top, so the full pre-command stack remains a prefix.
		kept.Push(result)
		return nil
	}
	return kept.Stack.SetAt(depth-1, result)
}

func (DatasetDrivenCommand) AsSubcommand(Options) (Callable, bool) { return nil, false }
