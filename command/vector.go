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

// Direction selects which way a VectorReduce command folds.
type Direction int

const (
	LeftToRight Direction = iota
	RightToLeft
)

// resolveSub parses args[0] as a Subcommand reference and resolves it
// against ctx's dispatch table; every higher-order command in this
// file shares this one-textual-argument shape (UnaryTextSchema).
func resolveSub(args []string, ctx *Context) (Callable, error) {
	if err := (UnaryTextSchema{}).Validate(args); err != nil {
		return nil, err
	}
	sub, err := ParseSubcommand(args[0])
	if err != nil {
		return nil, err
	}
	return ResolveCallable(ctx.Dispatch, sub)
}

// VectorApplyCommand pops a vector and invokes its subcommand with
// the vector's elements as arguments, pushing the result. It fails
// with an ArityError if the subcommand's arity does not match the
// vector's length.
type VectorApplyCommand struct{}

func (VectorApplyCommand) Run(state *State, opts Options, args []string, ctx *Context) (*calcerr.List, error) {
	sub, err := resolveSub(args, ctx)
	if err != nil {
		return nil, err
	}
	return RunTransactional(state, opts, UnaryTextSchema{}, args,
		func(kept *stack.Keepable[expr.Expression], m *mode.Mode, errs *calcerr.List) error {
			top, err := kept.Pop()
			if err != nil {
				return err
			}
			v, _, ok := prism.ExprToVector.Narrow(top)
			if !ok {
				return calcerr.New(calcerr.Type, "VectorApply requires a vector on top of the stack")
			}
			if sub.Arity() != len(v.Elements) {
				return calcerr.New(calcerr.Arity, "subcommand expects %d argument(s), vector has %d", sub.Arity(), len(v.Elements))
			}
			result, err := sub.Call(v.Elements, ctx.Simplifier, m, errs)
			if err != nil {
				return err
			}
			kept.Push(result)
			return nil
		})
}

func (VectorApplyCommand) AsSubcommand(Options) (Callable, bool) { return nil, false }

// VectorMapCommand pops a vector and maps its unary subcommand over
// each element pointwise, preserving length.
type VectorMapCommand struct{}

func (VectorMapCommand) Run(state *State, opts Options, args []string, ctx *Context) (*calcerr.List, error) {
	sub, err := resolveSub(args, ctx)
	if err != nil {
		return nil, err
	}
	if sub.Arity() != 1 {
		return nil, calcerr.New(calcerr.Arity, "VectorMap requires a unary subcommand, got arity %d", sub.Arity())
	}
	return RunTransactional(state, opts, UnaryTextSchema{}, args,
		func(kept *stack.Keepable[expr.Expression], m *mode.Mode, errs *calcerr.List) error {
			top, err := kept.Pop()
			if err != nil {
				return err
			}
			v, _, ok := prism.ExprToVector.Narrow(top)
			if !ok {
				return calcerr.New(calcerr.Type, "VectorMap requires a vector on top of the stack")
			}
			mapped := make([]expr.Expression, len(v.Elements))
			for i, e := range v.Elements {
				r, err := sub.Call([]expr.Expression{e}, ctx.Simplifier, m, errs)
				if err != nil {
					return err
				}
				mapped[i] = r
			}
			kept.Push(prism.ExprToVector.Widen(prism.Vector{Elements: mapped}))
			return nil
		})
}

func (VectorMapCommand) AsSubcommand(Options) (Callable, bool) { return nil, false }

// VectorReduceCommand pops a non-empty vector and folds its binary
// subcommand across the elements, left-to-right or right-to-left. A
// single-element vector returns that element unchanged regardless of
// direction.
type VectorReduceCommand struct {
	Direction Direction
}

func (c VectorReduceCommand) Run(state *State, opts Options, args []string, ctx *Context) (*calcerr.List, error) {
	sub, err := resolveSub(args, ctx)
	if err != nil {
		return nil, err
	}
	if sub.Arity() != 2 {
		return nil, calcerr.New(calcerr.Arity, "VectorReduce requires a binary subcommand, got arity %d", sub.Arity())
	}
	return RunTransactional(state, opts, UnaryTextSchema{}, args,
		func(kept *stack.Keepable[expr.Expression], m *mode.Mode, errs *calcerr.List) error {
			top, err := kept.Pop()
			if err != nil {
				return err
			}
			v, _, ok := prism.ExprToVector.Narrow(top)
			if !ok {
				return calcerr.New(calcerr.Type, "VectorReduce requires a vector on top of the stack")
			}
			if len(v.Elements) == 0 {
				return calcerr.New(calcerr.Domain, "cannot reduce an empty vector")
			}
			result, err := reduceVector(v.Elements, c.Direction, sub, ctx.Simplifier, m, errs)
			if err != nil {
				return err
			}
			kept.Push(result)
			return nil
		})
}

func (VectorReduceCommand) AsSubcommand(Options) (Callable, bool) { return nil, false }

func reduceVector(elems []expr.Expression, dir Direction, sub Callable, simp *simplify.Simplifier, m *mode.Mode, errs *calcerr.List) (expr.Expression, error) {
	if len(elems) == 1 {
		return elems[0], nil
	}
	if dir == LeftToRight {
		acc := elems[0]
		for _, e := range elems[1:] {
			var err error
			acc, err = sub.Call([]expr.Expression{acc, e}, simp, m, errs)
			if err != nil {
				return expr.Expression{}, err
			}
		}
		return acc, nil
	}
	acc := elems[len(elems)-1]
	for i := len(elems) - 2; i >= 0; i-- {
		var err error
		acc, err = sub.Call([]expr.Expression{elems[i], acc}, simp, m, errs)
		if err != nil {
			return expr.Expression{}, err
		}
	}
	return acc, nil
}
