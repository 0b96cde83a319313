// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package cnf

import "github.com/go-air/satbench/z"

// Solution is the answer of a solver to a Problem.
//
// Assignments holds at most one literal per variable.  Variables
// without an entry are don't cares.
type Solution struct {
	Satisfiable bool    `json:"satisfiable"`
	Assignments []z.Lit `json:"assignments"`
}

// NewSolution creates a satisfiable solution from the literals ms.
func NewSolution(ms ...z.Lit) *Solution {
	if ms == nil {
		ms = []z.Lit{}
	}
	return &Solution{
		Satisfiable: true,
		Assignments: ms}
}
