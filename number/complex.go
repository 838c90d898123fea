// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package number

// Complex is an ordered pair of Numbers (real, imag), grounded on
// ivy's value.Complex (same shape: two Value fields, an isReal
// predicate, and a shrink that demotes a zero-imaginary Complex back
// to its real part — ivy/value/complex.go).
type Complex struct {
	Real Number
	Imag Number
}

// NewComplex builds a Complex from two Numbers.
func NewComplex(re, im Number) Complex {
	return Complex{Real: re, Imag: im}
}

func (c Complex) String() string {
	if c.Imag.Sign() >= 0 {
		return c.Real.String() + "+" + c.Imag.String() + "i"
	}
	return c.Real.String() + c.Imag.String() + "i"
}

// IsReal reports whether the imaginary part is exactly zero, the
// condition under which a degenerate Complex demotes back to a bare
// Number.
func (c Complex) IsReal() bool { return c.Imag.IsZero() }

// Shrink demotes a real-valued Complex to its real Number component.
// It returns (Number, true) on demotion, or (c, false) otherwise.
func (c Complex) Shrink() (Number, bool) {
	if c.IsReal() {
		return c.Real, true
	}
	return nil, false
}

func (c Complex) Add(d Complex) Complex {
	return Complex{Real: c.Real.Add(d.Real), Imag: c.Imag.Add(d.Imag)}
}

func (c Complex) Sub(d Complex) Complex {
	return Complex{Real: c.Real.Sub(d.Real), Imag: c.Imag.Sub(d.Imag)}
}

func (c Complex) Mul(d Complex) Complex {
	// (a+bi)(c+di) = (ac-bd) + (ad+bc)i
	re := c.Real.Mul(d.Real).Sub(c.Imag.Mul(d.Imag))
	im := c.Real.Mul(d.Imag).Add(c.Imag.Mul(d.Real))
	return Complex{Real: re, Imag: im}
}

// Div performs complex division by multiplying by the conjugate over
// the squared modulus. It panics DivisionByZero if d is the zero
// complex.
func (c Complex) Div(d Complex) Complex {
	denom := d.Real.Mul(d.Real).Add(d.Imag.Mul(d.Imag))
	num := c.Mul(Complex{Real: d.Real, Imag: d.Imag.Neg()})
	return Complex{Real: num.Real.Div(denom), Imag: num.Imag.Div(denom)}
}

func (c Complex) Neg() Complex {
	return Complex{Real: c.Real.Neg(), Imag: c.Imag.Neg()}
}

// Equal ignores representation within each component, the same way
// Number.Equal does.
func (c Complex) Equal(d Complex) bool {
	return c.Real.Equal(d.Real) && c.Imag.Equal(d.Imag)
}

func (c Complex) StrictEqual(d Complex) bool {
	return c.Real.StrictEqual(d.Real) && c.Imag.StrictEqual(d.Imag)
}
