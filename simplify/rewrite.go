// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simplify

import "symcalc/expr"

// flatten splices nested same-named calls into the parent's argument
// list: f(f(x,y),z) becomes f(x,y,z). Only applied to functions whose
// Flags.PermitsFlattening is set.
func flatten(name string, args []expr.Expression) []expr.Expression {
	out := make([]expr.Expression, 0, len(args))
	for _, a := range args {
		if a.IsCall() && a.Name() == name {
			out = append(out, a.Args()...)
			continue
		}
		out = append(out, a)
	}
	return out
}

// eliminateIdentity drops every argument satisfying pred.
func eliminateIdentity(pred func(expr.Expression) bool, args []expr.Expression) []expr.Expression {
	out := make([]expr.Expression, 0, len(args))
	for _, a := range args {
		if !pred(a) {
			out = append(out, a)
		}
	}
	return out
}
