// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package number

// Resolving the Float invariant.
//
// Two requirements read as being in tension: no Float Number is ever
// NaN or infinite, yet division by zero is expected to yield ±inf or
// NaN. This package resolves the tension the way the rest of the
// framework resolves undefined arithmetic: Div and Pow never produce a
// NaN or infinite Float themselves (Div panics a DivisionByZero-
// classified *calcerr.Error, mirroring ivy's Errorf/panic convention
// for framework-detected domain violations; Pow panics on 0**negative
// and similar). The function-evaluation case for "/" (see package
// function) checks for a zero divisor itself and returns that error as
// a Failure, and Case.Run recovers any *calcerr.Error panic the same
// way; either way the subtree is left untouched and the error goes to
// the accumulated list — so no Float ever actually holds ±Inf or NaN
// in this implementation. Nothing substitutes the reserved
// inf/-inf/uinf/nan variables for such a result: the call is simply
// left unevaluated.
