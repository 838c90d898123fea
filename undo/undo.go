// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package undo implements the undo mechanism: every command begins by
// pushing an undo cut (a mutation barrier) capturing the
// pre-command state; undo rolls back to the most recent cut, and redo
// reapplies it. Cuts nest by virtue of being an ordinary stack of
// snapshots; a fresh cut invalidates the redo history, since a new
// mutation can no longer be "redone over".
//
// Ivy has no undo mechanism at all — it is a batch-oriented REPL with
// no interactive editing session. This package is built directly from
// the description of cuts as mutation barriers, implemented the way
// the rest of this module implements stateful logs: a plain slice-
// backed stack, mirroring package stack's own Stack rather than
// introducing a second idiom for what is structurally the same data
// type.
package undo

import "github.com/google/uuid"

// cut is one undo boundary: the state captured just before a command
// ran (Before) and the state left behind once it finished (After).
type cut[S any] struct {
	ID     uuid.UUID
	Before S
	After  S
}

// Log is a stack of cuts over a snapshot type S (typically a struct
// bundling a Stack snapshot and a Mode clone).
type Log[S any] struct {
	cuts  []cut[S]
	redos []cut[S]
}

// NewLog returns an empty undo log.
func NewLog[S any]() *Log[S] {
	return &Log[S]{}
}

// PushCut records a new mutation barrier capturing the state just
// before a command is about to run, and invalidates the redo history.
// It returns the cut's ID for diagnostics.
func (l *Log[S]) PushCut(before S) uuid.UUID {
	id := uuid.New()
	l.cuts = append(l.cuts, cut[S]{ID: id, Before: before, After: before})
	l.redos = nil
	return id
}

// Commit records the state left behind by the command that owns the
// most recently pushed cut. It is a no-op if no cut is open.
func (l *Log[S]) Commit(after S) {
	if len(l.cuts) == 0 {
		return
	}
	l.cuts[len(l.cuts)-1].After = after
}

// Undo rolls back to the most recent cut's pre-command state, moving
// that cut onto the redo history. It reports false if there is
// nothing to undo.
func (l *Log[S]) Undo() (S, bool) {
	var zero S
	if len(l.cuts) == 0 {
		return zero, false
	}
	c := l.cuts[len(l.cuts)-1]
	l.cuts = l.cuts[:len(l.cuts)-1]
	l.redos = append(l.redos, c)
	return c.Before, true
}

// Redo reapplies the most recently undone cut's post-command state,
// moving it back onto the undo history. It reports false if there is
// nothing to redo.
func (l *Log[S]) Redo() (S, bool) {
	var zero S
	if len(l.redos) == 0 {
		return zero, false
	}
	c := l.redos[len(l.redos)-1]
	l.redos = l.redos[:len(l.redos)-1]
	l.cuts = append(l.cuts, c)
	return c.After, true
}

// Depth reports how many cuts are currently on the undo stack.
func (l *Log[S]) Depth() int { return len(l.cuts) }
