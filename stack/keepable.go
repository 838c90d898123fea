// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stack

// Keepable decorates a Stack with the "keep" modifier: when Keep is
// true, Pop and PopSeveral read the requested elements but
// immediately push them back, so the underlying Stack is left
// unchanged by the read. Random access (At/SetAt) always ignores
// Keep, since it was never destructive to begin with.
//
// This has no ivy analogue — ivy has no interactive stack UI or
// prefix-argument modifiers — and is built directly from the
// operational description of the keep modifier: a pop that
// immediately re-pushes what it popped.
type Keepable[T any] struct {
	Stack *Stack[T]
	Keep  bool
}

// NewKeepable wraps s with the given initial Keep setting.
func NewKeepable[T any](s *Stack[T], keep bool) *Keepable[T] {
	return &Keepable[T]{Stack: s, Keep: keep}
}

// Pop behaves like Stack.Pop, except that when Keep is set the popped
// element is pushed back before returning, leaving the stack
// unchanged.
func (k *Keepable[T]) Pop() (T, error) {
	v, err := k.Stack.Pop()
	if err != nil {
		var zero T
		return zero, err
	}
	if k.Keep {
		k.Stack.Push(v)
	}
	return v, nil
}

// PopSeveral behaves like Stack.PopSeveral, except that when Keep is
// set the popped elements are pushed back in their original order
// before returning.
func (k *Keepable[T]) PopSeveral(n int) ([]T, error) {
	vs, err := k.Stack.PopSeveral(n)
	if err != nil {
		return nil, err
	}
	if k.Keep {
		// vs is top-first; restore bottom-first order by pushing from
		// the end of vs back to its start.
		for i := len(vs) - 1; i >= 0; i-- {
			k.Stack.Push(vs[i])
		}
	}
	return vs, nil
}

// At is random access; it always ignores Keep and delegates directly.
func (k *Keepable[T]) At(i int) (T, error) { return k.Stack.At(i) }

// SetAt is random access; it always ignores Keep and delegates
// directly.
func (k *Keepable[T]) SetAt(i int, e T) error { return k.Stack.SetAt(i, e) }

// Len reports the number of elements on the underlying stack.
func (k *Keepable[T]) Len() int { return k.Stack.Len() }

// Push adds e to the top of the underlying stack; pushing is never
// affected by Keep.
func (k *Keepable[T]) Push(e T) { k.Stack.Push(e) }
