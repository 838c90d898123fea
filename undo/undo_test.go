// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package undo

import "testing"

func TestUndoRestoresBeforeState(t *testing.T) {
	l := NewLog[int]()
	l.PushCut(10)
	l.Commit(20)
	got, ok := l.Undo()
	if !ok || got != 10 {
		t.Fatalf("Undo() = %v, %v; want 10, true", got, ok)
	}
}

func TestRedoRestoresAfterState(t *testing.T) {
	l := NewLog[int]()
	l.PushCut(10)
	l.Commit(20)
	l.Undo()
	got, ok := l.Redo()
	if !ok || got != 20 {
		t.Fatalf("Redo() = %v, %v; want 20, true", got, ok)
	}
}

func TestNewCutInvalidatesRedoHistory(t *testing.T) {
	l := NewLog[int]()
	l.PushCut(1)
	l.Commit(2)
	l.Undo()
	l.PushCut(2)
	l.Commit(3)
	_, ok := l.Redo()
	if ok {
		t.Fatal("a fresh cut should invalidate the redo history")
	}
}

func TestUndoOnEmptyLog(t *testing.T) {
	l := NewLog[int]()
	if _, ok := l.Undo(); ok {
		t.Fatal("Undo on an empty log should report false")
	}
}

func TestNestedCuts(t *testing.T) {
	l := NewLog[int]()
	l.PushCut(0)
	l.Commit(1)
	l.PushCut(1)
	l.Commit(2)
	if l.Depth() != 2 {
		t.Fatalf("Depth() = %d, want 2", l.Depth())
	}
	got, _ := l.Undo()
	if got != 1 {
		t.Fatalf("first undo should restore the inner cut's before-state 1, got %d", got)
	}
	got, _ = l.Undo()
	if got != 0 {
		t.Fatalf("second undo should restore the outer cut's before-state 0, got %d", got)
	}
}
