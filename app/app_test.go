// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"testing"

	"symcalc/command"
	"symcalc/expr"
	"symcalc/number"
	"symcalc/prism"
)

func num(i int64) expr.Expression { return expr.Number(number.FromInt64(i)) }

func vec(elems ...expr.Expression) expr.Expression {
	return prism.ExprToVector.Widen(prism.Vector{Elements: elems})
}

func TestNewWiresArithmeticCommands(t *testing.T) {
	a := New()
	state := a.NewSession()
	ctx := a.Context()

	cmd, ok := a.Dispatch.Lookup("+")
	if !ok {
		t.Fatal("expected \"+\" to be registered")
	}

	state.Stack.Push(num(3))
	state.Stack.Push(num(4))

	if _, err := cmd.Run(state, command.Options{}, nil, ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}

	got, err := state.Stack.Pop()
	if err != nil {
		t.Fatalf("Pop: %v", err)
	}
	want := num(7)
	if !expr.StrictEqual(got, want) {
		t.Fatalf("got %s, want %s", got.String(), want.String())
	}
}

func TestNewWiresVectorCommands(t *testing.T) {
	a := New()
	state := a.NewSession()
	ctx := a.Context()

	cmd, ok := a.Dispatch.Lookup("length")
	if !ok {
		t.Fatal("expected \"length\" to be registered")
	}

	state.Stack.Push(vec(num(1), num(2), num(3)))

	if _, err := cmd.Run(state, command.Options{}, nil, ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}

	got, err := state.Stack.Pop()
	if err != nil {
		t.Fatalf("Pop: %v", err)
	}
	want := num(3)
	if !expr.StrictEqual(got, want) {
		t.Fatalf("got %s, want %s", got.String(), want.String())
	}
}

func TestNewWiresIncompleteObjectClosers(t *testing.T) {
	a := New()
	state := a.NewSession()
	ctx := a.Context()

	cmd, ok := a.Dispatch.Lookup("close_bracket")
	if !ok {
		t.Fatal("expected \"close_bracket\" to be registered")
	}

	state.Stack.Push(prism.ExprToIncomplete.Widen(prism.Incomplete{Opener: "["}))
	state.Stack.Push(num(1))
	state.Stack.Push(num(2))

	if _, err := cmd.Run(state, command.Options{}, nil, ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}

	got, err := state.Stack.Pop()
	if err != nil {
		t.Fatalf("Pop: %v", err)
	}
	want := vec(num(1), num(2))
	if !expr.StrictEqual(got, want) {
		t.Fatalf("got %s, want %s", got.String(), want.String())
	}
}

func TestNewWiresPackAndUnpack(t *testing.T) {
	a := New()
	state := a.NewSession()
	ctx := a.Context()

	pack, ok := a.Dispatch.Lookup("pack")
	if !ok {
		t.Fatal("expected \"pack\" to be registered")
	}
	unpack, ok := a.Dispatch.Lookup("unpack")
	if !ok {
		t.Fatal("expected \"unpack\" to be registered")
	}

	n := 2
	state.Stack.Push(num(1))
	state.Stack.Push(num(2))
	if _, err := pack.Run(state, command.Options{Argument: &n}, nil, ctx); err != nil {
		t.Fatalf("pack Run: %v", err)
	}
	if _, err := unpack.Run(state, command.Options{}, nil, ctx); err != nil {
		t.Fatalf("unpack Run: %v", err)
	}

	got := state.Stack.Snapshot()
	want := []expr.Expression{num(1), num(2)}
	if len(got) != len(want) {
		t.Fatalf("got %d elements, want %d", len(got), len(want))
	}
	for i := range want {
		if !expr.StrictEqual(got[i], want[i]) {
			t.Fatalf("element %d: got %s, want %s", i, got[i].String(), want[i].String())
		}
	}
}
