// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lang

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"symcalc/expr"
	"symcalc/number"
	"symcalc/prism"
)

// BasicMode is the reversible notation: numbers and strings write the
// way number.Number/string literals already read, variables write
// bare, a vector writes as a bracketed, comma-separated list (the
// same notation the "[" incomplete-object opener accepts), a complex
// or quaternion atom writes as a parenthesized 2- or 4-tuple (the same
// notation the "(" incomplete-object opener accepts), an interval
// writes as lo..hi / lo..^hi / lo^..hi / lo^..^hi, and any other call
// writes as name(arg,arg,...).
type BasicMode struct {
	Settings Settings
}

func (m BasicMode) WriteHTML(out Writer, e expr.Expression, precedence int) error {
	_, err := out.WriteString(m.render(e))
	return err
}

func (m BasicMode) render(e expr.Expression) string {
	if iv, _, ok := prism.ExprToInterval.Narrow(e); ok {
		op := intervalOperator(iv.LoOpen, iv.HiOpen)
		return m.render(iv.Lo) + op + m.render(iv.Hi)
	}
	if v, _, ok := prism.ExprToVector.Narrow(e); ok {
		parts := make([]string, len(v.Elements))
		for i, el := range v.Elements {
			parts[i] = m.render(el)
		}
		return "[" + strings.Join(parts, ",") + "]"
	}
	switch e.Kind() {
	case expr.NumberKind:
		n, _ := e.AsNumber()
		s := n.String()
		if n.Kind() == number.FloatKind && !strings.ContainsAny(s, ".eE") {
			s += ".0"
		}
		return s
	case expr.ComplexKind:
		c, _ := e.AsComplex()
		return "(" + m.render(expr.Number(c.Real)) + "," + m.render(expr.Number(c.Imag)) + ")"
	case expr.QuaternionKind:
		q, _ := e.AsQuaternion()
		return "(" + m.render(expr.Number(q.R)) + "," + m.render(expr.Number(q.I)) + "," +
			m.render(expr.Number(q.J)) + "," + m.render(expr.Number(q.K)) + ")"
	case expr.StringKind:
		s, _ := e.AsString()
		return strconv.Quote(s)
	case expr.VariableKind:
		name, _ := e.AsVariable()
		return name
	case expr.CallKind:
		parts := make([]string, len(e.Args()))
		for i, a := range e.Args() {
			parts[i] = m.render(a)
		}
		return e.Name() + "(" + strings.Join(parts, ",") + ")"
	}
	return ""
}

func intervalOperator(loOpen, hiOpen bool) string {
	switch {
	case !loOpen && !hiOpen:
		return prism.IntervalClosed
	case !loOpen && hiOpen:
		return prism.IntervalRightOpen
	case loOpen && !hiOpen:
		return prism.IntervalLeftOpen
	default:
		return prism.IntervalFullyOpen
	}
}

// Parse implements LanguageMode for BasicMode's own grammar.
func (m BasicMode) Parse(text string) (expr.Expression, error) {
	p := &basicParser{toks: tokenize(text)}
	e, err := p.parseExpr()
	if err != nil {
		return expr.Expression{}, err
	}
	if p.pos != len(p.toks) {
		return expr.Expression{}, fmt.Errorf("lang: unexpected trailing input at token %d", p.pos)
	}
	return e, nil
}

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNumber
	tokString
	tokIdent
	tokLParen
	tokRParen
	tokLBracket
	tokRBracket
	tokComma
	tokIntervalOp
)

type token struct {
	kind tokenKind
	text string
}

func tokenize(s string) []token {
	var toks []token
	i := 0
	for i < len(s) {
		c := s[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c == '(':
			toks = append(toks, token{tokLParen, "("})
			i++
		case c == ')':
			toks = append(toks, token{tokRParen, ")"})
			i++
		case c == '[':
			toks = append(toks, token{tokLBracket, "["})
			i++
		case c == ']':
			toks = append(toks, token{tokRBracket, "]"})
			i++
		case c == ',':
			toks = append(toks, token{tokComma, ","})
			i++
		case c == '"':
			j := i + 1
			for j < len(s) && s[j] != '"' {
				if s[j] == '\\' && j+1 < len(s) {
					j++
				}
				j++
			}
			toks = append(toks, token{tokString, s[i : j+1]})
			i = j + 1
		case c == '.' || c == '^':
			op, n := scanIntervalOp(s[i:])
			if n == 0 {
				i++
				continue
			}
			toks = append(toks, token{tokIntervalOp, op})
			i += n
		case c == '-' && strings.HasPrefix(s[i:], expr.NegInf) && startsNumber(toks) &&
			(i+len(expr.NegInf) == len(s) || !isIdentByte(s[i+len(expr.NegInf)])):
			toks = append(toks, token{tokIdent, expr.NegInf})
			i += len(expr.NegInf)
		case isDigit(c) || (c == '-' && i+1 < len(s) && isDigit(s[i+1]) && startsNumber(toks)):
			j := i + 1
			for j < len(s) && isNumberByte(s[j]) && !(s[j] == '.' && j+1 < len(s) && s[j+1] == '.') {
				j++
			}
			toks = append(toks, token{tokNumber, s[i:j]})
			i = j
		case isIdentStart(c):
			j := i + 1
			for j < len(s) && isIdentByte(s[j]) {
				j++
			}
			toks = append(toks, token{tokIdent, s[i:j]})
			i = j
		default:
			i++
		}
	}
	return toks
}

// startsNumber reports whether a leading '-' at the current position
// should be read as part of a numeric literal rather than as a
// standalone token: true at input start or right after a token that
// is followed by a value ("(", "[", "," or an interval operator).
func startsNumber(toks []token) bool {
	if len(toks) == 0 {
		return true
	}
	switch toks[len(toks)-1].kind {
	case tokLParen, tokLBracket, tokComma, tokIntervalOp:
		return true
	}
	return false
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
func isNumberByte(c byte) bool {
	return isDigit(c) || c == '.' || c == '/' || c == 'e' || c == 'E' || c == '+' || c == '-'
}
func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
func isIdentByte(c byte) bool {
	return isIdentStart(c) || isDigit(c) || c == '\''
}

func scanIntervalOp(s string) (string, int) {
	for _, op := range []string{prism.IntervalFullyOpen, prism.IntervalRightOpen, prism.IntervalLeftOpen, prism.IntervalClosed} {
		if strings.HasPrefix(s, op) {
			return op, len(op)
		}
	}
	return "", 0
}

type basicParser struct {
	toks []token
	pos  int
}

func (p *basicParser) peek() token {
	if p.pos >= len(p.toks) {
		return token{kind: tokEOF}
	}
	return p.toks[p.pos]
}

func (p *basicParser) next() token {
	t := p.peek()
	p.pos++
	return t
}

func (p *basicParser) parseExpr() (expr.Expression, error) {
	lo, err := p.parsePrimary()
	if err != nil {
		return expr.Expression{}, err
	}
	if p.peek().kind == tokIntervalOp {
		op := p.next().text
		hi, err := p.parsePrimary()
		if err != nil {
			return expr.Expression{}, err
		}
		loOpen := op == prism.IntervalLeftOpen || op == prism.IntervalFullyOpen
		hiOpen := op == prism.IntervalRightOpen || op == prism.IntervalFullyOpen
		return prism.ExprToInterval.Widen(prism.Interval{Lo: lo, Hi: hi, LoOpen: loOpen, HiOpen: hiOpen}), nil
	}
	return lo, nil
}

func (p *basicParser) parsePrimary() (expr.Expression, error) {
	t := p.peek()
	switch t.kind {
	case tokNumber:
		p.next()
		n, err := parseNumber(t.text)
		if err != nil {
			return expr.Expression{}, err
		}
		return expr.Number(n), nil
	case tokString:
		p.next()
		s, err := strconv.Unquote(t.text)
		if err != nil {
			return expr.Expression{}, fmt.Errorf("lang: invalid string literal %s: %w", t.text, err)
		}
		return expr.String(s), nil
	case tokLBracket:
		p.next()
		elems, err := p.parseList(tokRBracket)
		if err != nil {
			return expr.Expression{}, err
		}
		return prism.ExprToVector.Widen(prism.Vector{Elements: elems}), nil
	case tokLParen:
		p.next()
		elems, err := p.parseList(tokRParen)
		if err != nil {
			return expr.Expression{}, err
		}
		switch len(elems) {
		case 2:
			re, ok1 := elems[0].AsNumber()
			im, ok2 := elems[1].AsNumber()
			if !ok1 || !ok2 {
				return expr.Expression{}, fmt.Errorf("lang: a 2-tuple must hold two numbers")
			}
			return expr.ComplexNumber(number.NewComplex(re, im)), nil
		case 4:
			parts := make([]number.Number, 4)
			for i, el := range elems {
				n, ok := el.AsNumber()
				if !ok {
					return expr.Expression{}, fmt.Errorf("lang: a 4-tuple must hold four numbers")
				}
				parts[i] = n
			}
			return expr.Quaternion(number.NewQuaternion(parts[0], parts[1], parts[2], parts[3])), nil
		default:
			return expr.Expression{}, fmt.Errorf("lang: a parenthesized group must have 2 or 4 elements, got %d", len(elems))
		}
	case tokIdent:
		p.next()
		if p.peek().kind != tokLParen {
			if !expr.ValidVariableName(t.text) && t.text != expr.NegInf {
				return expr.Expression{}, fmt.Errorf("lang: invalid variable name %q", t.text)
			}
			return expr.Variable(t.text), nil
		}
		p.next() // consume "("
		args, err := p.parseList(tokRParen)
		if err != nil {
			return expr.Expression{}, err
		}
		return expr.Call(t.text, args...), nil
	}
	return expr.Expression{}, fmt.Errorf("lang: unexpected token %q", t.text)
}

func (p *basicParser) parseList(end tokenKind) ([]expr.Expression, error) {
	var elems []expr.Expression
	if p.peek().kind == end {
		p.next()
		return elems, nil
	}
	for {
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		elems = append(elems, e)
		t := p.next()
		if t.kind == end {
			return elems, nil
		}
		if t.kind != tokComma {
			return nil, fmt.Errorf("lang: expected , or closing bracket, got %q", t.text)
		}
	}
}

func parseNumber(s string) (number.Number, error) {
	if strings.ContainsRune(s, '/') {
		r, ok := new(big.Rat).SetString(s)
		if !ok {
			return nil, fmt.Errorf("lang: invalid rational literal %q", s)
		}
		return number.Shrink(number.NewRational(r)), nil
	}
	if i, ok := new(big.Int).SetString(s, 10); ok {
		return number.NewInteger(i), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("lang: invalid numeric literal %q: %w", s, err)
	}
	return number.FromFloat64(f), nil
}
