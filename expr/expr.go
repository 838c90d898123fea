// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package expr implements the symbolic expression tree: a
// discriminated union whose leaves are numbers, complex numbers,
// quaternions, strings, and variables, and whose internal nodes are
// named function calls.
//
// The union is represented as an explicit tagged struct rather than
// as dynamic dispatch through a Go interface with one concrete type
// per variant — the representation ivy's value.Value uses for its
// own, narrower, numeric-only hierarchy. The prism package then plays
// the role ivy gets for free from interface type-switches: narrowing
// an Expression down to one of its variants.
package expr

import (
	"regexp"

	"symcalc/number"
)

// Kind tags which variant of the union an Expression holds.
type Kind int

const (
	NumberKind Kind = iota
	ComplexKind
	QuaternionKind
	StringKind
	VariableKind
	CallKind
)

func (k Kind) String() string {
	switch k {
	case NumberKind:
		return "number"
	case ComplexKind:
		return "complex"
	case QuaternionKind:
		return "quaternion"
	case StringKind:
		return "string"
	case VariableKind:
		return "variable"
	case CallKind:
		return "call"
	}
	return "unknown"
}

// variableRE is the variable identifier grammar: a letter or
// underscore, then letters/digits/underscores, with an optional
// trailing prime.
var variableRE = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*'?$`)

// ValidVariableName reports whether name satisfies the variable
// identifier invariant.
func ValidVariableName(name string) bool {
	return variableRE.MatchString(name)
}

// Expression is a value type: cheap to copy, since every field is
// either a scalar, an immutable number.Number/Complex/Quaternion, or
// a slice that callers are expected to treat as immutable once
// embedded in an Expression. Large subtrees are shared by Go's usual
// slice-backing-array aliasing rather than explicit reference
// counting, which is simpler and sufficient since Expressions are
// never mutated in place (see DESIGN.md).
type Expression struct {
	kind Kind

	num  number.Number
	cplx number.Complex
	quat number.Quaternion
	str  string // StringKind payload, or VariableKind identifier

	name string // CallKind function name
	args []Expression
}

// Number builds a NumberKind atom.
func Number(n number.Number) Expression {
	return Expression{kind: NumberKind, num: n}
}

// ComplexNumber builds a ComplexKind atom.
func ComplexNumber(c number.Complex) Expression {
	return Expression{kind: ComplexKind, cplx: c}
}

// Quaternion builds a QuaternionKind atom.
func Quaternion(q number.Quaternion) Expression {
	return Expression{kind: QuaternionKind, quat: q}
}

// String builds a StringKind atom. The invariant that strings are
// UTF-8 is satisfied automatically by Go's string type.
func String(s string) Expression {
	return Expression{kind: StringKind, str: s}
}

// Variable builds a VariableKind atom. It panics if name neither
// satisfies the identifier invariant nor is the reserved NegInf name;
// callers that accept untrusted names should check ValidVariableName
// first.
func Variable(name string) Expression {
	if !ValidVariableName(name) && name != NegInf {
		panic("expr: invalid variable identifier " + name)
	}
	return Expression{kind: VariableKind, str: name}
}

// Call builds a CallKind node. args may be empty.
func Call(name string, args ...Expression) Expression {
	return Expression{kind: CallKind, name: name, args: args}
}

func (e Expression) Kind() Kind     { return e.kind }
func (e Expression) IsAtom() bool   { return e.kind != CallKind }
func (e Expression) IsCall() bool   { return e.kind == CallKind }
func (e Expression) IsNumber() bool { return e.kind == NumberKind }

// Name returns the function name of a CallKind Expression. It panics
// on any other Kind.
func (e Expression) Name() string {
	if e.kind != CallKind {
		panic("expr: Name called on non-Call Expression")
	}
	return e.name
}

// Args returns the argument list of a CallKind Expression. The
// returned slice must not be mutated. It panics on any other Kind.
func (e Expression) Args() []Expression {
	if e.kind != CallKind {
		panic("expr: Args called on non-Call Expression")
	}
	return e.args
}

// AsNumber returns the Number payload and true if e is a NumberKind atom.
func (e Expression) AsNumber() (number.Number, bool) {
	if e.kind != NumberKind {
		return nil, false
	}
	return e.num, true
}

// AsComplex returns the Complex payload and true if e is a ComplexKind atom.
func (e Expression) AsComplex() (number.Complex, bool) {
	if e.kind != ComplexKind {
		return number.Complex{}, false
	}
	return e.cplx, true
}

// AsQuaternion returns the Quaternion payload and true if e is a
// QuaternionKind atom.
func (e Expression) AsQuaternion() (number.Quaternion, bool) {
	if e.kind != QuaternionKind {
		return number.Quaternion{}, false
	}
	return e.quat, true
}

// AsString returns the string payload and true if e is a StringKind atom.
func (e Expression) AsString() (string, bool) {
	if e.kind != StringKind {
		return "", false
	}
	return e.str, true
}

// AsVariable returns the identifier and true if e is a VariableKind atom.
func (e Expression) AsVariable() (string, bool) {
	if e.kind != VariableKind {
		return "", false
	}
	return e.str, true
}

// String renders a debug/basic-mode-agnostic textual form, used by
// tests and by the simplifier's cycle-detection cache key. The
// user-facing rendering contract lives in package lang; this is
// deliberately simpler and is not guaranteed parseable.
func (e Expression) String() string {
	switch e.kind {
	case NumberKind:
		return e.num.String()
	case ComplexKind:
		return e.cplx.String()
	case QuaternionKind:
		return e.quat.String()
	case StringKind:
		return "\"" + e.str + "\""
	case VariableKind:
		return e.str
	case CallKind:
		s := e.name + "("
		for i, a := range e.args {
			if i > 0 {
				s += ","
			}
			s += a.String()
		}
		return s + ")"
	}
	return "<invalid>"
}

// Equal is loose structural equality: numbers compare with their own
// loose Equal, everything else compares by shape.
func Equal(a, b Expression) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case NumberKind:
		return a.num.Equal(b.num)
	case ComplexKind:
		return a.cplx.Equal(b.cplx)
	case QuaternionKind:
		return a.quat.Equal(b.quat)
	case StringKind, VariableKind:
		return a.str == b.str
	case CallKind:
		if a.name != b.name || len(a.args) != len(b.args) {
			return false
		}
		for i := range a.args {
			if !Equal(a.args[i], b.args[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// StrictEqual additionally requires identical numeric representation;
// it refines Equal.
func StrictEqual(a, b Expression) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case NumberKind:
		return a.num.StrictEqual(b.num)
	case ComplexKind:
		return a.cplx.StrictEqual(b.cplx)
	case QuaternionKind:
		return a.quat.StrictEqual(b.quat)
	case CallKind:
		if a.name != b.name || len(a.args) != len(b.args) {
			return false
		}
		for i := range a.args {
			if !StrictEqual(a.args[i], b.args[i]) {
				return false
			}
		}
		return true
	default:
		return Equal(a, b)
	}
}

// IsZero reports whether e is the Number zero — the identity
// predicate used to register "+" in the function table.
func IsZero(e Expression) bool {
	n, ok := e.AsNumber()
	return ok && n.IsZero()
}

// IsOne reports whether e is the Number one — the identity predicate
// used to register "*".
func IsOne(e Expression) bool {
	n, ok := e.AsNumber()
	return ok && n.IsOne()
}

// Reserved infinity-constant variable names.
const (
	PosInf     = "inf"
	NegInf     = "-inf"
	ComplexInf = "uinf"
	NotANumber = "nan"
)

// IsInfinityConstant reports whether e is one of the reserved
// infinity-constant variables.
func IsInfinityConstant(e Expression) bool {
	name, ok := e.AsVariable()
	if !ok {
		return false
	}
	switch name {
	case PosInf, NegInf, ComplexInf, NotANumber:
		return true
	}
	return false
}
