// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lang

// Fixity records which syntactic positions an operator can occupy.
// An operator may hold more than one fixity at once (unary "-" is
// both prefix and, as subtraction, infix); the disambiguator that
// picks one per occurrence in a run of operators belongs to the
// tokenizer/parser this package deliberately does not implement.
type Fixity int

const (
	Prefix Fixity = 1 << iota
	Infix
	Postfix
)

func (f Fixity) String() string {
	var parts []string
	if f&Prefix != 0 {
		parts = append(parts, "prefix")
	}
	if f&Infix != 0 {
		parts = append(parts, "infix")
	}
	if f&Postfix != 0 {
		parts = append(parts, "postfix")
	}
	s := ""
	for i, p := range parts {
		if i > 0 {
			s += "|"
		}
		s += p
	}
	return s
}

// Has reports whether f includes g.
func (f Fixity) Has(g Fixity) bool { return f&g != 0 }

// Associativity governs how a run of same-precedence infix operators
// groups, named the way gval's Infix*Operator constructors imply an
// operator's binding behavior without spelling out a full grammar.
type Associativity int

const (
	LeftAssociative Associativity = iota
	RightAssociative
	FullyAssociative
	NonAssociative
)

// OperatorDef describes one named operator: which function it
// dispatches to, which fixities it can take, its binding precedence
// (higher binds tighter), and its associativity when used infix.
//
// OperatorDef is a data record only. The shunting-yard parser and the
// operator-chain disambiguator that would consume an OperatorTable to
// actually tokenize and parse infix expression text are external
// collaborators outside this module's scope; this type exists so a
// caller's parser has a table to consult, and so package lang's fancy
// display mode has precedences to parenthesize against.
type OperatorDef struct {
	Name       string
	Function   string
	Fixity     Fixity
	Precedence int
	Assoc      Associativity
}

// OperatorTable is a name-indexed registry of OperatorDefs.
type OperatorTable struct {
	ops map[string]OperatorDef
}

// NewOperatorTable returns an empty OperatorTable.
func NewOperatorTable() *OperatorTable {
	return &OperatorTable{ops: make(map[string]OperatorDef)}
}

// Register adds or replaces the OperatorDef for def.Name.
func (t *OperatorTable) Register(def OperatorDef) {
	t.ops[def.Name] = def
}

// Lookup returns the OperatorDef registered under name, if any.
func (t *OperatorTable) Lookup(name string) (OperatorDef, bool) {
	def, ok := t.ops[name]
	return def, ok
}

// DefaultOperatorTable returns the table of arithmetic operators this
// module's function table registers under RegisterArithmetic,
// precedences following the usual mathematical convention (^ binds
// tighter than * and /, which bind tighter than + and -).
func DefaultOperatorTable() *OperatorTable {
	t := NewOperatorTable()
	t.Register(OperatorDef{Name: "+", Function: "+", Fixity: Prefix | Infix, Precedence: 10, Assoc: FullyAssociative})
	t.Register(OperatorDef{Name: "-", Function: "-", Fixity: Prefix | Infix, Precedence: 10, Assoc: LeftAssociative})
	t.Register(OperatorDef{Name: "*", Function: "*", Fixity: Infix, Precedence: 20, Assoc: FullyAssociative})
	t.Register(OperatorDef{Name: "/", Function: "/", Fixity: Infix, Precedence: 20, Assoc: LeftAssociative})
	t.Register(OperatorDef{Name: "^", Function: "^", Fixity: Infix, Precedence: 30, Assoc: RightAssociative})
	return t
}
