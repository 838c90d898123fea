// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package number

// Quaternion is an ordered 4-tuple (r, i, j, k), the next rung of the
// progressive hierarchy above Complex: every complex number is a
// degenerate quaternion. It is built the same way number.Complex is
// built from Number, one level up: a struct of four components plus
// Add/Sub/Mul/Div/shrink following the same pair-of-Value shape
// mechanically generalized.
type Quaternion struct {
	R, I, J, K Number
}

// NewQuaternion builds a Quaternion from its four components.
func NewQuaternion(r, i, j, k Number) Quaternion {
	return Quaternion{R: r, I: i, J: j, K: k}
}

// FromComplex lifts a Complex into its degenerate Quaternion form.
func FromComplex(c Complex) Quaternion {
	return Quaternion{R: c.Real, I: c.Imag, J: Zero, K: Zero}
}

func (q Quaternion) String() string {
	sign := func(n Number) string {
		if n.Sign() >= 0 {
			return "+" + n.String()
		}
		return n.String()
	}
	return q.R.String() + sign(q.I) + "i" + sign(q.J) + "j" + sign(q.K) + "k"
}

// IsComplex reports whether the j and k components are exactly zero,
// the condition under which a Quaternion demotes to Complex.
func (q Quaternion) IsComplex() bool { return q.J.IsZero() && q.K.IsZero() }

// Shrink demotes a Quaternion with zero j/k components to a Complex,
// which may itself demote further to a real Number via Complex.Shrink.
func (q Quaternion) Shrink() (Complex, bool) {
	if q.IsComplex() {
		return Complex{Real: q.R, Imag: q.I}, true
	}
	return Complex{}, false
}

func (q Quaternion) Add(p Quaternion) Quaternion {
	return Quaternion{
		R: q.R.Add(p.R),
		I: q.I.Add(p.I),
		J: q.J.Add(p.J),
		K: q.K.Add(p.K),
	}
}

func (q Quaternion) Sub(p Quaternion) Quaternion {
	return Quaternion{
		R: q.R.Sub(p.R),
		I: q.I.Sub(p.I),
		J: q.J.Sub(p.J),
		K: q.K.Sub(p.K),
	}
}

// Mul implements the non-commutative Hamilton product. The basis
// relations are ii = jj = kk = ijk = -1; ij = k, jk = i, ki = j, and
// the reversed products negate.
func (q Quaternion) Mul(p Quaternion) Quaternion {
	a1, b1, c1, d1 := q.R, q.I, q.J, q.K
	a2, b2, c2, d2 := p.R, p.I, p.J, p.K

	t := func(parts ...Number) Number {
		sum := parts[0]
		for _, p := range parts[1:] {
			sum = sum.Add(p)
		}
		return sum
	}

	r := t(a1.Mul(a2), b1.Mul(b2).Neg(), c1.Mul(c2).Neg(), d1.Mul(d2).Neg())
	i := t(a1.Mul(b2), b1.Mul(a2), c1.Mul(d2), d1.Mul(c2).Neg())
	j := t(a1.Mul(c2), c1.Mul(a2), d1.Mul(b2), b1.Mul(d2).Neg())
	k := t(a1.Mul(d2), d1.Mul(a2), b1.Mul(c2), c1.Mul(b2).Neg())
	return Quaternion{R: r, I: i, J: j, K: k}
}

func (q Quaternion) Neg() Quaternion {
	return Quaternion{R: q.R.Neg(), I: q.I.Neg(), J: q.J.Neg(), K: q.K.Neg()}
}

// conjugate negates the vector part, used by Div to invert p.
func (q Quaternion) conjugate() Quaternion {
	return Quaternion{R: q.R, I: q.I.Neg(), J: q.J.Neg(), K: q.K.Neg()}
}

// normSquared is r^2+i^2+j^2+k^2, always a non-negative real.
func (q Quaternion) normSquared() Number {
	return q.R.Mul(q.R).Add(q.I.Mul(q.I)).Add(q.J.Mul(q.J)).Add(q.K.Mul(q.K))
}

// Div performs quaternion division q * p^-1; panics DivisionByZero
// if p is the zero quaternion.
func (q Quaternion) Div(p Quaternion) Quaternion {
	n2 := p.normSquared()
	conj := p.conjugate()
	num := q.Mul(conj)
	return Quaternion{
		R: num.R.Div(n2),
		I: num.I.Div(n2),
		J: num.J.Div(n2),
		K: num.K.Div(n2),
	}
}

func (q Quaternion) Equal(p Quaternion) bool {
	return q.R.Equal(p.R) && q.I.Equal(p.I) && q.J.Equal(p.J) && q.K.Equal(p.K)
}

func (q Quaternion) StrictEqual(p Quaternion) bool {
	return q.R.StrictEqual(p.R) && q.I.StrictEqual(p.I) && q.J.StrictEqual(p.J) && q.K.StrictEqual(p.K)
}
