// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package engine

import (
	"github.com/crillab/gophersat/solver"

	"github.com/go-air/satbench/inter"
	"github.com/go-air/satbench/z"
)

// Gophersat is an inter.Engine backed by a gophersat solver.
//
// gophersat cannot be stopped, so an interrupted Solve returns at once
// and leaves the search to finish in the background.  The engine should
// not be used after that.
type Gophersat struct {
	nVars   int
	clauses [][]int
	occurs  []bool
	slv     *solver.Solver
	ok      bool
	last    inter.Outcome
	model   []bool
	intr    chan struct{}
}

// NewGophersat creates a new Gophersat engine.
func NewGophersat() *Gophersat {
	return &Gophersat{
		occurs: []bool{false},
		ok:     true,
		intr:   make(chan struct{}, 1)}
}

// NewVar implements inter.Adder.
func (s *Gophersat) NewVar() {
	s.nVars++
	s.occurs = append(s.occurs, false)
}

// AddClause implements inter.Adder.
func (s *Gophersat) AddClause(ms ...z.Lit) {
	c := make([]int, len(ms))
	for i, m := range ms {
		c[i] = m.Dimacs()
		if v := int(m.Var()); v < len(s.occurs) {
			s.occurs[v] = true
		}
	}
	s.clauses = append(s.clauses, c)
	s.slv = nil
}

func (s *Gophersat) build() bool {
	if s.slv != nil {
		return true
	}
	pb := solver.ParseSlice(s.clauses)
	if pb.Status == solver.Unsat {
		s.ok = false
		s.last = inter.Unsat
		return false
	}
	s.slv = solver.New(pb)
	return true
}

// Simplify builds the solver, which runs unit propagation over the
// added clauses.
func (s *Gophersat) Simplify() bool {
	if !s.ok && s.last == inter.Unsat {
		return false
	}
	return s.build()
}

// Solve implements inter.Solvable.
func (s *Gophersat) Solve() inter.Outcome {
	s.model = nil
	if len(s.clauses) == 0 {
		s.ok, s.last = true, inter.Sat
		return s.last
	}
	if !s.build() {
		return inter.Unsat
	}
	slv := s.slv
	type result struct {
		st    solver.Status
		model []bool
	}
	ch := make(chan result, 1)
	go func() {
		st := slv.Solve()
		var m []bool
		if st == solver.Sat {
			m = slv.Model()
		}
		ch <- result{st, m}
	}()
	select {
	case <-s.intr:
		s.last = inter.Interrupted
	case r := <-ch:
		switch r.st {
		case solver.Sat:
			s.last = inter.Sat
			s.model = r.model
		case solver.Unsat:
			s.last = inter.Unsat
		default:
			s.last = inter.Interrupted
		}
	}
	s.ok = s.last == inter.Sat
	return s.last
}

// Interrupt implements inter.Interrupter.
func (s *Gophersat) Interrupt() {
	select {
	case s.intr <- struct{}{}:
	default:
	}
}

// Okay implements inter.Solvable.
func (s *Gophersat) Okay() bool {
	return s.ok
}

// Value implements inter.Model.  Variables which occur in no clause
// are Undecided.
func (s *Gophersat) Value(v z.Var) inter.Value {
	if s.last != inter.Sat || v < 1 || int(v) > s.nVars || !s.occurs[v] {
		return inter.Undecided
	}
	i := int(v) - 1
	if i >= len(s.model) {
		return inter.Undecided
	}
	if s.model[i] {
		return inter.True
	}
	return inter.False
}
