// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package cnf

import (
	"fmt"

	"github.com/go-air/satbench/z"
)

// Kind identifies why a solution was rejected.
type Kind int

const (
	// UnsupportedProof: the solution claims unsatisfiability, which
	// cannot be checked without a refutation proof.
	UnsupportedProof Kind = 1 + iota
	// DuplicateAssignment: a variable is assigned more than once.
	DuplicateAssignment
	// UnsatisfiedClause: some clause has no true literal.
	UnsatisfiedClause
)

func (k Kind) String() string {
	switch k {
	case UnsupportedProof:
		return "unsupported-proof"
	case DuplicateAssignment:
		return "duplicate-assignment"
	case UnsatisfiedClause:
		return "unsatisfied-clause"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// CheckError is returned by Check.  Var is set for DuplicateAssignment,
// Clause for UnsatisfiedClause.
type CheckError struct {
	Kind   Kind
	Var    z.Var
	Clause Clause
}

func (e *CheckError) Error() string {
	switch e.Kind {
	case UnsupportedProof:
		return "cannot check proofs of unsatisfiability, that needs a refutation checker"
	case DuplicateAssignment:
		return fmt.Sprintf("solution contains multiple assignments for variable %d", int(e.Var))
	case UnsatisfiedClause:
		return fmt.Sprintf("a clause wasn't satisfied: %s", e.Clause)
	default:
		return e.Kind.String()
	}
}

// Check checks that s is a satisfying assignment for p.  It returns nil
// if so and a *CheckError otherwise.  Neither p nor s is modified.
func Check(p *Problem, s *Solution) error {
	if !s.Satisfiable {
		return &CheckError{Kind: UnsupportedProof}
	}
	seen := make(map[z.Var]struct{}, len(s.Assignments))
	for _, m := range s.Assignments {
		v := m.Var()
		if _, ok := seen[v]; ok {
			return &CheckError{Kind: DuplicateAssignment, Var: v}
		}
		seen[v] = struct{}{}
	}
	asserted := make(map[z.Lit]struct{}, len(s.Assignments))
	for _, m := range s.Assignments {
		asserted[m] = struct{}{}
	}
	for _, c := range p.Clauses {
		if !satisfied(c, asserted) {
			return &CheckError{Kind: UnsatisfiedClause, Clause: c}
		}
	}
	return nil
}

func satisfied(c Clause, asserted map[z.Lit]struct{}) bool {
	for _, m := range c {
		if _, ok := asserted[m]; ok {
			return true
		}
	}
	return false
}
