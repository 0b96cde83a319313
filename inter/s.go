// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package inter

import "github.com/go-air/satbench/z"

// Outcome is the result of a call to Solve.
//
// The integer coding is
//
//	1  Sat
//	0  Interrupted
//	-1 Unsat
type Outcome int

const (
	Unsat       Outcome = -1
	Interrupted Outcome = 0
	Sat         Outcome = 1
)

func (o Outcome) String() string {
	switch o {
	case Sat:
		return "sat"
	case Unsat:
		return "unsat"
	case Interrupted:
		return "interrupted"
	}
	return "unknown"
}

// Value is the truth value of a variable under a model.
type Value int8

const (
	False     Value = -1
	Undecided Value = 0
	True      Value = 1
)

func (v Value) String() string {
	switch v {
	case True:
		return "true"
	case False:
		return "false"
	}
	return "undecided"
}

// Adder encapsulates something to which variables and clauses
// can be added.
type Adder interface {

	// NewVar allocates the next variable.  The first call
	// allocates variable 1.
	NewVar()

	// AddClause adds the disjunction of ms.  Every literal in ms
	// must refer to an allocated variable and ms must not contain
	// z.LitNull.
	AddClause(ms ...z.Lit)
}

// Simplifier is a facet of an engine for cheap preprocessing.
type Simplifier interface {
	// Simplify returns false if the clauses added so far are
	// already known to be unsatisfiable.
	Simplify() bool
}

// Solvable encapsulates a decision procedure which may run
// for a long time.
type Solvable interface {
	// Solve blocks until the problem is decided or
	// until Interrupt is called.
	Solve() Outcome

	// Okay returns whether the last Solve completed without
	// conflict, that is whether it returned Sat.  Before any
	// Solve, Okay returns true unless Simplify found a conflict.
	Okay() bool
}

// Interrupter is something whose Solve can be stopped.
type Interrupter interface {
	// Interrupt requests that the running Solve, or the next one if
	// none is running, return Interrupted.  Interrupt may be called
	// from any goroutine any number of times.
	Interrupt()
}

// Model encapsulates something from which a model can be extracted
// after a Sat outcome.
type Model interface {
	Value(v z.Var) Value
}

// Engine is the capability set the benchmark harness requires of a
// SAT engine.
//
// Apart from Interrupt, the methods of an Engine are called from a
// single goroutine.
type Engine interface {
	Adder
	Simplifier
	Solvable
	Interrupter
	Model
}
