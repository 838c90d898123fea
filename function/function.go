// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package function implements the function dispatch table and its
// evaluation-case framework: the machinery the simplifier's "function
// evaluation" rewrite step consults to turn a Call into its
// evaluated result, or to leave it alone when no case applies.
//
// Each Function owns an ordered list of Cases. A Case's action
// reports one of three outcomes, mirrored here the way ivy's own
// value.unaryFn/binaryFn dispatch tables report "no such operation"
// by returning a nil Value rather than panicking: success (the
// rewritten Expression), no-match (try the next case; the original
// Call is left untouched by the caller), or failure (a recoverable
// error is recorded and the original Call is left untouched). The Go
// expression of this three-way result is the sentinel error
// ErrNoMatch together with the ordinary (result, error) convention,
// which keeps action closures at a plain Go function signature
// instead of a bespoke three-case enum threaded through every call
// site.
package function

import (
	"errors"

	"symcalc/calcerr"
	"symcalc/expr"
)

// ErrNoMatch is returned by a Case's action to mean "this case does
// not apply to these arguments; try the next one." Actions should use
// errors.Is against this sentinel rather than equality, so that a
// narrowing helper may wrap it with context.
var ErrNoMatch = errors.New("function: no matching case")

// Outcome classifies the result of evaluating a single Case.
type Outcome int

const (
	Success Outcome = iota
	NoMatch
	Failure
)

func (o Outcome) String() string {
	switch o {
	case Success:
		return "success"
	case NoMatch:
		return "no-match"
	case Failure:
		return "failure"
	}
	return "unknown"
}

// Case is one evaluation rule of a Function: a name (for diagnostics
// and tests) and an action that either produces a replacement
// Expression, declines via ErrNoMatch, or fails with a recoverable
// error.
type Case struct {
	Name   string
	Action func(args []expr.Expression) (expr.Expression, error)
}

// Run executes c's action, converting a panic raised via calcerr into
// a Failure outcome — the recover point an ivy-style evaluation loop
// centralizes once rather than defensively per builtin.
func (c Case) Run(args []expr.Expression) (result expr.Expression, outcome Outcome, err error) {
	defer func() {
		if r := recover(); r != nil {
			if cerr, ok := r.(*calcerr.Error); ok {
				outcome, err = Failure, cerr
				return
			}
			panic(r)
		}
	}()
	result, err = c.Action(args)
	switch {
	case err == nil:
		return result, Success, nil
	case errors.Is(err, ErrNoMatch):
		return expr.Expression{}, NoMatch, nil
	default:
		return expr.Expression{}, Failure, err
	}
}

// Flags describe function-wide simplifier behavior.
type Flags struct {
	// PermitsFlattening: f(f(x,y),z) collapses to f(x,y,z).
	PermitsFlattening bool
}

// Function is a named operation: a flag set, an optional identity
// predicate consulted by the simplifier's identity-elimination step,
// an optional derivative rule, and the ordered list of evaluation
// cases consulted by the function-evaluation step.
type Function struct {
	Name  string
	Flags Flags

	// IsIdentity recognizes the operation's identity value (e.g. 0
	// for "+", 1 for "*"). Nil if the operation has none.
	IsIdentity func(expr.Expression) bool

	// Derivative computes d/dx of a call to this function with the
	// given arguments, or reports false if no rule is registered.
	Derivative func(args []expr.Expression) (expr.Expression, bool)

	Cases []Case
}

// Evaluate runs f's cases in order. The first case to report Success
// or Failure stops the search; NoMatch falls through to the next
// case. If every case declines, Evaluate itself reports NoMatch.
func (f *Function) Evaluate(args []expr.Expression) (expr.Expression, Outcome, error) {
	for _, c := range f.Cases {
		result, outcome, err := c.Run(args)
		if outcome == NoMatch {
			continue
		}
		return result, outcome, err
	}
	return expr.Expression{}, NoMatch, nil
}

// Table is a FunctionTable: a registry mapping function name to
// Function, consulted by the simplifier during its function
// evaluation step.
type Table struct {
	funcs map[string]*Function
}

// NewTable returns an empty Table.
func NewTable() *Table {
	return &Table{funcs: make(map[string]*Function)}
}

// Register adds f to the table, keyed by f.Name. A later Register
// with the same name replaces the earlier entry, which test code
// relies on to install ad-hoc functions.
func (t *Table) Register(f *Function) {
	t.funcs[f.Name] = f
}

// Lookup returns the Function registered under name, or nil if none
// is registered.
func (t *Table) Lookup(name string) *Function {
	return t.funcs[name]
}
