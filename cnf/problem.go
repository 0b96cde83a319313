// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package cnf

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/go-air/satbench/z"
)

// Clause is a disjunction of literals.  Clauses are never empty and never
// contain z.LitNull.
type Clause []z.Lit

func (c Clause) String() string {
	parts := make([]string, len(c))
	for i, m := range c {
		parts[i] = m.String()
	}
	return fmt.Sprintf("[%s]", strings.Join(parts, " "))
}

// Problem is a formula in conjunctive normal form.
//
// A Problem is read-only once built.
type Problem struct {
	NumVars int      // variables are 1..NumVars
	Clauses []Clause // in input order

	// HdrClauses is the clause count declared by a dimacs header, or
	// -1 if the problem did not come with one.  It is a hint only.
	HdrClauses int
}

// Lits returns the total number of literal occurrences in p.
func (p *Problem) Lits() int {
	n := 0
	for _, c := range p.Clauses {
		n += len(c)
	}
	return n
}

// Validate checks that every clause is nonempty and that every literal
// refers to a variable in [1, p.NumVars].
func (p *Problem) Validate() error {
	for i, c := range p.Clauses {
		if len(c) == 0 {
			return errors.Errorf("clause %d is empty", i)
		}
		for _, m := range c {
			if m == z.LitNull {
				return errors.Errorf("clause %d contains 0", i)
			}
			if v := m.Var(); v < 1 || int(v) > p.NumVars {
				return errors.Errorf("clause %d: literal %s out of range 1..%d", i, m, p.NumVars)
			}
		}
	}
	return nil
}
