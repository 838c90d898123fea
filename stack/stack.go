// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stack implements the Stack: an ordered, LIFO sequence of
// Expressions with random access, grounded on the slice-backed value
// stack ivy's own run loop keeps (ivy.go's Context.Stack, generalized
// here into its own package since this Stack carries invariants ivy's
// own ad-hoc []value.Value never needed — atomic pop_several, a
// documented dual-direction indexing scheme).
package stack

import "symcalc/calcerr"

// Stack is a LIFO sequence of Expressions. The zero value is an empty
// stack ready to use.
type Stack[T any] struct {
	elems []T
}

// New returns an empty Stack.
func New[T any]() *Stack[T] {
	return &Stack[T]{}
}

// Len reports the number of elements on the stack.
func (s *Stack[T]) Len() int { return len(s.elems) }

// Push adds e to the top of the stack.
func (s *Stack[T]) Push(e T) {
	s.elems = append(s.elems, e)
}

// Pop removes and returns the top element. It is a hard error to pop
// an empty stack.
func (s *Stack[T]) Pop() (T, error) {
	var zero T
	if len(s.elems) == 0 {
		return zero, calcerr.StackErrorf(1, 0)
	}
	top := s.elems[len(s.elems)-1]
	s.elems = s.elems[:len(s.elems)-1]
	return top, nil
}

// PopSeveral removes and returns the top n elements, top-first
// (result[0] is what was the top of the stack). It is atomic: either
// all n elements are removed, or — if fewer than n are available —
// none are, and a Stack error is returned.
func (s *Stack[T]) PopSeveral(n int) ([]T, error) {
	if n < 0 {
		return nil, calcerr.New(calcerr.Stack, "cannot pop a negative count %d", n)
	}
	if n > len(s.elems) {
		return nil, calcerr.StackErrorf(n, len(s.elems))
	}
	out := make([]T, n)
	for i := 0; i < n; i++ {
		out[i] = s.elems[len(s.elems)-1-i]
	}
	s.elems = s.elems[:len(s.elems)-n]
	return out, nil
}

// position converts a dual-direction index (0..len-1 from the top
// downward, or -1..-len from the bottom upward) into a slice offset
// into elems, where elems[len-1] is the top.
func (s *Stack[T]) position(i int) (int, bool) {
	n := len(s.elems)
	switch {
	case i >= 0 && i < n:
		return n - 1 - i, true
	case i < 0 && -i <= n:
		return -i - 1, true
	default:
		return 0, false
	}
}

// At returns the element at index i without modifying the stack. i
// ranges 0 (top) through len-1 (bottom) in the positive direction, or
// -1 (bottom) through -len (top) in the negative direction.
func (s *Stack[T]) At(i int) (T, error) {
	var zero T
	pos, ok := s.position(i)
	if !ok {
		return zero, calcerr.New(calcerr.Stack, "index %d out of range for a stack of length %d", i, len(s.elems))
	}
	return s.elems[pos], nil
}

// SetAt overwrites the element at index i in place, using the same
// dual-direction indexing as At.
func (s *Stack[T]) SetAt(i int, e T) error {
	pos, ok := s.position(i)
	if !ok {
		return calcerr.New(calcerr.Stack, "index %d out of range for a stack of length %d", i, len(s.elems))
	}
	s.elems[pos] = e
	return nil
}

// PopUntil pops elements from the top, collecting them top-first,
// until one satisfies marker (which is itself popped and returned
// separately) — the scanning protocol incomplete-object closer
// commands use to find the matching opening marker. If no element
// satisfies marker before the stack is exhausted, the stack is left
// untouched and ok is false.
func (s *Stack[T]) PopUntil(marker func(T) bool) (collected []T, found T, ok bool) {
	for i := len(s.elems) - 1; i >= 0; i-- {
		if marker(s.elems[i]) {
			found = s.elems[i]
			collected = append([]T(nil), s.elems[i+1:]...)
			reverse(collected)
			s.elems = s.elems[:i]
			return collected, found, true
		}
	}
	var zero T
	return nil, zero, false
}

// Snapshot returns a copy of the stack's contents, top-last (index
// len-1 is the top), suitable for undo logging.
func (s *Stack[T]) Snapshot() []T {
	return append([]T(nil), s.elems...)
}

// Restore replaces the stack's contents wholesale, used to roll back
// a transactional command or to apply an undo/redo snapshot.
func (s *Stack[T]) Restore(elems []T) {
	s.elems = append([]T(nil), elems...)
}

func reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
