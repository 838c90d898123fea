// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package command

import (
	"symcalc/calcerr"
	"symcalc/expr"
	"symcalc/mode"
	"symcalc/simplify"
)

// Command is a named, dispatchable unit of stack mutation: it runs
// under the transactional protocol and may optionally be referenced
// by name as a Subcommand for use by a higher-order command.
type Command interface {
	// Run executes the command against state with the given options
	// and textual arguments, under ctx. A non-nil error is a hard
	// error: state is left exactly as it was before Run was called.
	Run(state *State, opts Options, args []string, ctx *Context) (*calcerr.List, error)

	// AsSubcommand returns a Callable view of this command configured
	// with opts, or reports false if this command cannot be used as a
	// subcommand (most interactive-only commands, e.g. an undo/redo
	// command, cannot).
	AsSubcommand(opts Options) (Callable, bool)
}

// Callable is the narrow surface a higher-order command (VectorApply,
// VectorMap, VectorReduce, a dataset-driven command) invokes a
// resolved Subcommand through: a fixed arity and a pure function from
// operand Expressions to a result Expression. Grounded on the
// reference implementation's subcommand.call_or_panic signature.
type Callable interface {
	Arity() int
	Call(args []expr.Expression, simp *simplify.Simplifier, m *mode.Mode, errs *calcerr.List) (expr.Expression, error)
}

// ExpressionCallable is a Callable built directly from a function
// name and fixed arity: calling it builds expr.Call(name, args...)
// and simplifies the result. This is what FunctionCommand.AsSubcommand
// returns, and it is exported because tests and higher-order commands
// may also want a Callable over a function name that has no
// interactive Command registered for it at all (a purely symbolic
// call, left untouched by the simplifier if the name is unregistered).
type ExpressionCallable struct {
	Name   string
	ArityN int
}

func (c ExpressionCallable) Arity() int { return c.ArityN }

func (c ExpressionCallable) Call(args []expr.Expression, simp *simplify.Simplifier, m *mode.Mode, errs *calcerr.List) (expr.Expression, error) {
	if len(args) != c.ArityN {
		return expr.Expression{}, calcerr.New(calcerr.Arity, "%s expects %d argument(s), got %d", c.Name, c.ArityN, len(args))
	}
	return simp.Simplify(expr.Call(c.Name, args...), m, errs), nil
}

// Table is the DispatchTable: a registry of Commands by name,
// consulted to resolve a Subcommand reference into a Callable.
// Grounded on ivy's exec.Context, which carries name -> *Function
// dispatch maps built once and shared by reference.
type Table struct {
	cmds map[string]Command
}

// NewTable returns an empty DispatchTable.
func NewTable() *Table {
	return &Table{cmds: make(map[string]Command)}
}

// Register adds cmd to the table under name, replacing any existing
// entry of the same name.
func (t *Table) Register(name string, cmd Command) {
	t.cmds[name] = cmd
}

// Lookup returns the Command registered under name, or reports false
// if none is registered.
func (t *Table) Lookup(name string) (Command, bool) {
	c, ok := t.cmds[name]
	return c, ok
}

// ResolveCallable resolves a Subcommand reference against t: it looks
// up the named command and asks it for a Callable view configured
// with the reference's Options.
func ResolveCallable(t *Table, sub Subcommand) (Callable, error) {
	cmd, ok := t.Lookup(sub.Name)
	if !ok {
		return nil, calcerr.New(calcerr.SubcommandNotFound, "no command named %q", sub.Name)
	}
	callable, ok := cmd.AsSubcommand(sub.Options)
	if !ok {
		return nil, calcerr.New(calcerr.InvalidSubcommand, "%q cannot be used as a subcommand", sub.Name)
	}
	return callable, nil
}
