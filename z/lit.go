// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package z

import "strconv"

// Lit is a dimacs coded literal.
type Lit int

// LitNull is the constant 0, which terminates clauses
// in the literal at a time Add protocol.
const LitNull Lit = 0

// Dimacs2Lit takes a dimacs-coded literal and returns a Lit.
func Dimacs2Lit(m int) Lit {
	return Lit(m)
}

// Dimacs returns the dimacs coding of the Lit m.
func (m Lit) Dimacs() int {
	return int(m)
}

func (m Lit) String() string {
	return strconv.Itoa(int(m))
}

// Var returns the Var associated with m.
func (m Lit) Var() Var {
	if m < 0 {
		return Var(-m)
	}
	return Var(m)
}

// Not returns the negation of m.
func (m Lit) Not() Lit {
	return -m
}

// Sign returns
//
//	1  if m is a variable
//	-1 if m is a negated variable
func (m Lit) Sign() int8 {
	if m < 0 {
		return -1
	}
	return 1
}

// IsPos returns true if m is a variable.
func (m Lit) IsPos() bool {
	return m > 0
}
