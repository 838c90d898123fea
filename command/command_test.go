// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package command

import (
	"testing"

	"symcalc/expr"
	"symcalc/function"
	"symcalc/number"
	"symcalc/prism"
	"symcalc/simplify"
)

func num(i int64) expr.Expression { return expr.Number(number.FromInt64(i)) }

func vec(elems ...expr.Expression) expr.Expression {
	return prism.ExprToVector.Widen(prism.Vector{Elements: elems})
}

func arg(n int) Options { return Options{Argument: &n} }

// newTestContext builds a Table with test_func (unary) and test_func2
// (binary) registered as FunctionCommands over a Simplifier whose
// Function table knows nothing about either name, so calling them
// produces an uncombined symbolic call — matching the "a two-argument
// symbolic call" framing of the seed scenarios.
func newTestContext() (*Table, *Context) {
	funcs := function.NewTable()
	function.RegisterArithmetic(funcs)
	simp := simplify.New(funcs)

	dispatch := NewTable()
	dispatch.Register("test_func", &FunctionCommand{Name: "test_func", Arity: 1})
	dispatch.Register("test_func2", &FunctionCommand{Name: "test_func2", Arity: 2})
	dispatch.Register("/", &FunctionCommand{Name: "/", Arity: 2})

	return dispatch, &Context{Simplifier: simp, Dispatch: dispatch}
}

func stackElems(t *testing.T, s *State) []expr.Expression {
	t.Helper()
	return s.Stack.Snapshot()
}

func mustEqual(t *testing.T, got, want []expr.Expression) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("stack = %v, want %v", got, want)
	}
	for i := range got {
		if !expr.StrictEqual(got[i], want[i]) {
			t.Fatalf("stack[%d] = %s, want %s", i, got[i].String(), want[i].String())
		}
	}
}

func TestVectorReduceLeftToRight(t *testing.T) {
	_, ctx := newTestContext()
	state := NewState(nil)
	state.Stack.Push(num(10))
	state.Stack.Push(num(20))
	state.Stack.Push(vec(num(30), num(40), num(50)))

	sub := Subcommand{Name: "test_func2"}
	_, err := (VectorReduceCommand{Direction: LeftToRight}).Run(state, Options{}, []string{sub.Serialize()}, ctx)
	if err != nil {
		t.Fatal(err)
	}
	want := expr.Call("test_func2", expr.Call("test_func2", num(30), num(40)), num(50))
	mustEqual(t, stackElems(t, state), []expr.Expression{num(10), num(20), want})
}

func TestVectorReduceRightToLeft(t *testing.T) {
	_, ctx := newTestContext()
	state := NewState(nil)
	state.Stack.Push(num(10))
	state.Stack.Push(num(20))
	state.Stack.Push(vec(num(30), num(40), num(50)))

	sub := Subcommand{Name: "test_func2"}
	_, err := (VectorReduceCommand{Direction: RightToLeft}).Run(state, Options{}, []string{sub.Serialize()}, ctx)
	if err != nil {
		t.Fatal(err)
	}
	want := expr.Call("test_func2", num(30), expr.Call("test_func2", num(40), num(50)))
	mustEqual(t, stackElems(t, state), []expr.Expression{num(10), num(20), want})
}

func TestVectorApplySingleton(t *testing.T) {
	_, ctx := newTestContext()
	state := NewState(nil)
	state.Stack.Push(num(10))
	state.Stack.Push(num(20))
	state.Stack.Push(vec(num(30)))

	sub := Subcommand{Name: "test_func"}
	_, err := (VectorApplyCommand{}).Run(state, Options{}, []string{sub.Serialize()}, ctx)
	if err != nil {
		t.Fatal(err)
	}
	want := expr.Call("test_func", num(30))
	mustEqual(t, stackElems(t, state), []expr.Expression{num(10), num(20), want})
}

func TestPackWithArgumentTwo(t *testing.T) {
	_, ctx := newTestContext()
	state := NewState(nil)
	state.Stack.Push(num(10))
	state.Stack.Push(num(20))
	state.Stack.Push(num(30))
	state.Stack.Push(num(40))

	_, err := (PackCommand{}).Run(state, arg(2), nil, ctx)
	if err != nil {
		t.Fatal(err)
	}
	mustEqual(t, stackElems(t, state), []expr.Expression{num(10), num(20), vec(num(30), num(40))})
}

func TestDatasetDrivenNegativeDepth(t *testing.T) {
	_, ctx := newTestContext()
	state := NewState(nil)
	state.Stack.Push(num(10))
	state.Stack.Push(num(20))
	state.Stack.Push(num(30))
	state.Stack.Push(num(40))

	cmd := DatasetDrivenCommand{Sub: ExpressionCallable{Name: "test_func", ArityN: 1}}
	_, err := cmd.Run(state, arg(-3), nil, ctx)
	if err != nil {
		t.Fatal(err)
	}
	want := expr.Call("test_func", num(20))
	mustEqual(t, stackElems(t, state), []expr.Expression{num(10), want, num(30), num(40)})
}

func TestDivisionByZeroIsASoftErrorThatRestoresOperands(t *testing.T) {
	_, ctx := newTestContext()
	state := NewState(nil)
	state.Stack.Push(num(5))
	state.Stack.Push(num(0))

	out, err := (&FunctionCommand{Name: "/", Arity: 2}).Run(state, Options{}, nil, ctx)
	if err != nil {
		t.Fatalf("a soft error must not be a fatal command error: %v", err)
	}
	if out.Empty() {
		t.Fatal("expected a division-by-zero error in the output list")
	}
	mustEqual(t, stackElems(t, state), []expr.Expression{num(5), num(0)})
}

// TestStackTransactionalInvariant covers the stack transactional invariant: "if a command returns
// an error, the stack and mode equal their pre-command values".
func TestStackTransactionalInvariant(t *testing.T) {
	_, ctx := newTestContext()
	state := NewState(nil)
	state.Stack.Push(num(1))
	before := append([]expr.Expression(nil), state.Stack.Snapshot()...)

	_, err := (&FunctionCommand{Name: "test_func2", Arity: 2}).Run(state, Options{}, nil, ctx)
	if err == nil {
		t.Fatal("popping 2 from a 1-element stack should be a hard error")
	}
	mustEqual(t, stackElems(t, state), before)
}

// TestKeepInvariant covers the keep invariant: "with keep on, the pre-command
// stack is a prefix of the post-command stack".
func TestKeepInvariant(t *testing.T) {
	_, ctx := newTestContext()
	state := NewState(nil)
	state.Stack.Push(num(3))
	state.Stack.Push(num(4))
	before := append([]expr.Expression(nil), state.Stack.Snapshot()...)

	_, err := (&FunctionCommand{Name: "+", Arity: 2}).Run(state, Options{KeepModifier: true}, nil, ctx)
	if err != nil {
		t.Fatal(err)
	}
	got := stackElems(t, state)
	if len(got) <= len(before) {
		t.Fatalf("expected the result pushed on top of the preserved inputs, got %v", got)
	}
	for i := range before {
		if !expr.StrictEqual(got[i], before[i]) {
			t.Fatalf("keep modifier must preserve the original stack as a prefix, got %v", got)
		}
	}
}

// TestUndoInvariant covers the undo invariant: "applying a command and then
// undoing restores bit-exact pre-command state".
func TestUndoInvariant(t *testing.T) {
	_, ctx := newTestContext()
	state := NewState(nil)
	state.Stack.Push(num(3))
	state.Stack.Push(num(4))
	before := append([]expr.Expression(nil), state.Stack.Snapshot()...)

	_, err := (&FunctionCommand{Name: "+", Arity: 2}).Run(state, Options{}, nil, ctx)
	if err != nil {
		t.Fatal(err)
	}
	if !state.UndoLast() {
		t.Fatal("UndoLast should report true after a successful command")
	}
	mustEqual(t, stackElems(t, state), before)
}

func TestResolveCallableUnknownName(t *testing.T) {
	dispatch, _ := newTestContext()
	_, err := ResolveCallable(dispatch, Subcommand{Name: "nonexistent"})
	if err == nil {
		t.Fatal("expected a SubcommandNotFound error")
	}
}

func TestCloseBracketComposesVector(t *testing.T) {
	_, ctx := newTestContext()
	state := NewState(nil)
	state.Stack.Push(prism.ExprToIncomplete.Widen(prism.Incomplete{Opener: "["}))
	state.Stack.Push(num(1))
	state.Stack.Push(num(2))

	_, err := (CloseBracketCommand{}).Run(state, Options{}, nil, ctx)
	if err != nil {
		t.Fatal(err)
	}
	mustEqual(t, stackElems(t, state), []expr.Expression{vec(num(1), num(2))})
}

func TestCloseParenFormsComplex(t *testing.T) {
	_, ctx := newTestContext()
	state := NewState(nil)
	state.Stack.Push(prism.ExprToIncomplete.Widen(prism.Incomplete{Opener: "("}))
	state.Stack.Push(num(3))
	state.Stack.Push(num(4))

	_, err := (CloseParenCommand{}).Run(state, Options{}, nil, ctx)
	if err != nil {
		t.Fatal(err)
	}
	want := expr.ComplexNumber(number.NewComplex(number.FromInt64(3), number.FromInt64(4)))
	mustEqual(t, stackElems(t, state), []expr.Expression{want})
}

func TestCloseBracketMissingMarkerLeavesStackUntouched(t *testing.T) {
	_, ctx := newTestContext()
	state := NewState(nil)
	state.Stack.Push(num(1))
	before := append([]expr.Expression(nil), state.Stack.Snapshot()...)

	_, err := (CloseBracketCommand{}).Run(state, Options{}, nil, ctx)
	if err == nil {
		t.Fatal("expected an error with no matching marker")
	}
	mustEqual(t, stackElems(t, state), before)
}
