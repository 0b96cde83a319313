// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package z

import "fmt"

// Var is a boolean variable, numbered from 1.
type Var int

// Pos returns the positive literal of v.
func (v Var) Pos() Lit {
	return Lit(v)
}

// Neg returns the negative literal of v.
func (v Var) Neg() Lit {
	return Lit(-v)
}

// Lit returns the literal of v with the given polarity.
func (v Var) Lit(pos bool) Lit {
	if pos {
		return v.Pos()
	}
	return v.Neg()
}

func (v Var) String() string {
	return fmt.Sprintf("v%d", int(v))
}
