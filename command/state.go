// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package command

import (
	"symcalc/calcerr"
	"symcalc/expr"
	"symcalc/mode"
	"symcalc/simplify"
	"symcalc/stack"
	"symcalc/undo"
)

// Context bundles the read-only, process-wide collaborators a Command
// needs to evaluate: the function table (indirectly, through the
// simplifier) and the simplifier itself. Grounded on ivy's
// exec.Context, which bundles UnaryFn/BinaryFn dispatch tables and is
// constructed once and passed by reference to every evaluation.
type Context struct {
	Simplifier *simplify.Simplifier
	Dispatch   *Table
}

// snapshot is the undo unit: the Stack's contents and a Mode clone,
// captured together so a rollback or undo restores both halves of a
// command's visible state at once.
type snapshot struct {
	elems []expr.Expression
	mode  *mode.Mode
}

// State is the calculator's mutable session state: the value stack,
// the calculation mode, and the undo log over snapshots of both.
type State struct {
	Stack *stack.Stack[expr.Expression]
	Mode  *mode.Mode
	Undo  *undo.Log[snapshot]
}

// NewState returns a State with an empty stack and the given mode
// (ready-to-use defaults if m is nil).
func NewState(m *mode.Mode) *State {
	if m == nil {
		m = mode.New()
	}
	return &State{Stack: stack.New[expr.Expression](), Mode: m, Undo: undo.NewLog[snapshot]()}
}

func (s *State) capture() snapshot {
	return snapshot{elems: s.Stack.Snapshot(), mode: s.Mode.Clone()}
}

func (s *State) apply(snap snapshot) {
	s.Stack.Restore(snap.elems)
	s.Mode = snap.mode
}

// UndoLast rolls the state back to the most recent command's pre-command
// snapshot. It reports false if there is nothing to undo.
func (s *State) UndoLast() bool {
	snap, ok := s.Undo.Undo()
	if !ok {
		return false
	}
	s.apply(snap)
	return true
}

// RedoLast reapplies the most recently undone command's post-command
// snapshot. It reports false if there is nothing to redo.
func (s *State) RedoLast() bool {
	snap, ok := s.Undo.Redo()
	if !ok {
		return false
	}
	s.apply(snap)
	return true
}

// RunTransactional implements the standard dispatch protocol every
// Command follows: validate the textual arguments against schema;
// record an undo cut; run body against a keep-aware view of the
// stack; on a hard error, roll the state back to exactly the
// pre-command snapshot and report the error; otherwise commit the
// post-command snapshot and return any soft errors body accumulated.
//
// This is the one place the transactional-dispatch invariants —
// "a failed command leaves the stack and mode untouched" and "the
// keep modifier restores the pre-command stack as a prefix" — are
// enforced, rather than re-implemented by every command.
func RunTransactional(
	state *State,
	opts Options,
	schema Schema,
	args []string,
	body func(kept *stack.Keepable[expr.Expression], m *mode.Mode, errs *calcerr.List) error,
) (*calcerr.List, error) {
	if err := schema.Validate(args); err != nil {
		return nil, err
	}

	before := state.capture()
	state.Undo.PushCut(before)

	errs := &calcerr.List{}
	kept := stack.NewKeepable(state.Stack, opts.KeepModifier)

	if err := body(kept, state.Mode, errs); err != nil {
		state.apply(before)
		state.Undo.Commit(before)
		return nil, err
	}

	state.Undo.Commit(state.capture())
	return errs, nil
}
