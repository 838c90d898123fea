// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lang

import (
	"fmt"
	"html"
	"strings"

	"symcalc/expr"
	"symcalc/prism"
)

// FancyMode renders an Expression as nested HTML spans with CSS
// classes, the way a desktop UI shell would style a calculator's
// result line. It does not implement Parse: fancy HTML is a display
// format only, never re-entered as input, so LanguageMode.Parse
// always returns an error for it.
type FancyMode struct {
	Settings  Settings
	Operators *OperatorTable // consulted for infix precedence; nil uses DefaultOperatorTable
}

func (m FancyMode) operators() *OperatorTable {
	if m.Operators != nil {
		return m.Operators
	}
	return DefaultOperatorTable()
}

func (m FancyMode) WriteHTML(out Writer, e expr.Expression, precedence int) error {
	_, err := out.WriteString(m.render(e, precedence))
	return err
}

func (m FancyMode) render(e expr.Expression, precedence int) string {
	if mat, _, ok := prism.ExprToMatrix.Narrow(e); ok {
		return m.renderMatrix(mat)
	}
	if v, _, ok := prism.ExprToVector.Narrow(e); ok {
		return m.renderVector(v)
	}
	if iv, _, ok := prism.ExprToInterval.Narrow(e); ok {
		return m.renderInterval(iv)
	}
	switch e.Kind() {
	case expr.NumberKind:
		n, _ := e.AsNumber()
		return `<span class="number">` + html.EscapeString(n.String()) + `</span>`
	case expr.ComplexKind, expr.QuaternionKind:
		return `<span class="number">` + html.EscapeString(BasicMode{}.render(e)) + `</span>`
	case expr.StringKind:
		s, _ := e.AsString()
		return `<span class="string">&quot;` + html.EscapeString(s) + `&quot;</span>`
	case expr.VariableKind:
		name, _ := e.AsVariable()
		if expr.IsInfinityConstant(e) {
			return `<span class="constant">` + html.EscapeString(name) + `</span>`
		}
		return `<span class="variable">` + html.EscapeString(name) + `</span>`
	case expr.CallKind:
		return m.renderCall(e, precedence)
	}
	return ""
}

func (m FancyMode) renderVector(v prism.Vector) string {
	parts := make([]string, len(v.Elements))
	for i, el := range v.Elements {
		parts[i] = m.render(el, 0)
	}
	return `<span class="vector">[` + strings.Join(parts, `, `) + `]</span>`
}

func (m FancyMode) renderMatrix(mat prism.Matrix) string {
	var b strings.Builder
	b.WriteString(`<table class="matrix">`)
	for _, row := range mat.Rows {
		b.WriteString("<tr>")
		for _, cell := range row {
			b.WriteString("<td>")
			b.WriteString(m.render(cell, 0))
			b.WriteString("</td>")
		}
		b.WriteString("</tr>")
	}
	b.WriteString("</table>")
	return b.String()
}

func (m FancyMode) renderInterval(iv prism.Interval) string {
	open, cls := "[", "]"
	if iv.LoOpen {
		open = "("
	}
	if iv.HiOpen {
		cls = ")"
	}
	return `<span class="interval">` + open + m.render(iv.Lo, 0) + `, ` + m.render(iv.Hi, 0) + cls + `</span>`
}

func (m FancyMode) renderCall(e expr.Expression, precedence int) string {
	args := e.Args()
	if e.Name() == "abs" && len(args) == 1 {
		return `<span class="abs">|` + m.render(args[0], 0) + `|</span>`
	}
	if e.Name() == "^" && len(args) == 2 {
		return m.renderInfix(e, precedence)
	}
	if def, ok := m.operators().Lookup(e.Name()); ok && def.Fixity.Has(Infix) && len(args) == 2 {
		return m.renderInfix(e, precedence)
	}
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = m.render(a, 0)
	}
	return `<span class="call">` + html.EscapeString(e.Name()) + "(" + strings.Join(parts, ", ") + ")</span>"
}

// renderInfix writes e (a 2-argument Call registered as an infix
// operator) using the operator's own symbol, parenthesizing against
// the caller's precedence context. "^" additionally uses <sup> for
// its exponent, matching the fancy mode's HTML-table/sup/bar
// repertoire.
func (m FancyMode) renderInfix(e expr.Expression, precedence int) string {
	args := e.Args()
	def, ok := m.operators().Lookup(e.Name())
	prec := 0
	if ok {
		prec = def.Precedence
	}
	var body string
	if e.Name() == "^" {
		body = m.render(args[0], prec+1) + `<sup>` + m.render(args[1], prec+1) + `</sup>`
	} else {
		body = m.render(args[0], prec) + " " + html.EscapeString(e.Name()) + " " + m.render(args[1], prec+1)
	}
	span := `<span class="op">` + body + `</span>`
	if prec < precedence {
		return "(" + span + ")"
	}
	return span
}

// Parse always fails: fancy HTML is a display-only format.
func (m FancyMode) Parse(text string) (expr.Expression, error) {
	return expr.Expression{}, fmt.Errorf("lang: FancyMode does not support parsing")
}
