// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package app wires the calculator's process-wide collaborators into
// one immutable-after-construction Application: the function table,
// the simplifier built on top of it, the command dispatch table, and
// the default calculation mode and language mode a CLI shell reads
// and writes through.
//
// Grounded on ivy's own ivy.go, which builds one exec.Context and one
// value.Context during process startup and hands them to every
// subsequent Eval call by reference rather than reconstructing them
// per command.
package app

import (
	"symcalc/command"
	"symcalc/function"
	"symcalc/lang"
	"symcalc/mode"
	"symcalc/simplify"
)

// Application bundles the tables an interactive session or a
// one-shot CLI invocation needs, constructed once and shared by
// reference. Nothing here is mutated after New returns; per-session
// mutable state lives in a *command.State value the caller creates
// separately for each session.
type Application struct {
	Functions  *function.Table
	Simplifier *simplify.Simplifier
	Dispatch   *command.Table
	Mode       *mode.Mode
	Basic      lang.LanguageMode
	Fancy      lang.LanguageMode
}

// New builds an Application with the standard function set, the
// standard command table built on top of it, and a default mode.
func New() *Application {
	functions := function.NewTable()
	function.RegisterArithmetic(functions)

	m := mode.New()
	function.RegisterVector(functions, m.Origin())

	simp := simplify.New(functions)
	dispatch := command.NewTable()
	registerCommands(dispatch, functions)

	return &Application{
		Functions:  functions,
		Simplifier: simp,
		Dispatch:   dispatch,
		Mode:       m,
		Basic:      lang.BasicMode{},
		Fancy:      lang.FancyMode{},
	}
}

// commandArity pins the operand count a FunctionCommand pops for
// each standard function. "+" and "*" accept any arity at the
// simplifier level (their cases flatten nested calls), but a
// FunctionCommand reads a fixed number of operands off the stack, so
// the interactive binding uses the ordinary binary form; a caller
// wanting a wider sum or product reaches it through DatasetDriven or
// VectorReduce instead.
var commandArity = map[string]int{
	"+": 2, "-": 2, "*": 2, "/": 2, "^": 2,
	"vconcat": 2, "head": 1, "tail": 1, "init": 1, "last": 1,
	"cons": 2, "snoc": 2, "nth": 2, "length": 1, "reverse": 1,
}

// registerCommands installs one FunctionCommand per standard
// function plus the higher-order and incomplete-object closer
// commands, under the names a CLI's "run a command" subcommand looks
// up by.
func registerCommands(t *command.Table, functions *function.Table) {
	for name, arity := range commandArity {
		if functions.Lookup(name) == nil {
			continue
		}
		t.Register(name, &command.FunctionCommand{Name: name, Arity: arity})
	}

	t.Register("vector_apply", command.VectorApplyCommand{})
	t.Register("vector_map", command.VectorMapCommand{})
	t.Register("reduce", command.VectorReduceCommand{Direction: command.LeftToRight})
	t.Register("rreduce", command.VectorReduceCommand{Direction: command.RightToLeft})
	t.Register("pack", command.PackCommand{})
	t.Register("unpack", command.UnpackCommand{})
	t.Register("close_bracket", command.CloseBracketCommand{})
	t.Register("close_paren", command.CloseParenCommand{})
}

// NewSession returns a fresh *command.State over a.Mode's settings,
// ready for a new interactive session or one-shot evaluation.
func (a *Application) NewSession() *command.State {
	return command.NewState(a.Mode.Clone())
}

// Context returns the read-only Context a Command's Run method needs,
// bundling a's simplifier and dispatch table by reference.
func (a *Application) Context() *command.Context {
	return &command.Context{Simplifier: a.Simplifier, Dispatch: a.Dispatch}
}
