// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package engine

import (
	"time"

	"github.com/go-air/gini"
	gz "github.com/go-air/gini/z"

	"github.com/go-air/satbench/inter"
	"github.com/go-air/satbench/z"
)

// A running solve is polled for completion with exponential backoff
// between these bounds.
const (
	minPoll = 10 * time.Microsecond
	maxPoll = time.Millisecond
)

// Gini is an inter.Engine backed by a *gini.Gini.
type Gini struct {
	g     *gini.Gini
	nVars int
	ok    bool
	last  inter.Outcome
	intr  chan struct{}
}

// NewGini creates a new Gini engine.
func NewGini() *Gini {
	return &Gini{
		g:    gini.New(),
		ok:   true,
		intr: make(chan struct{}, 1)}
}

// NewVar implements inter.Adder.
func (s *Gini) NewVar() {
	s.nVars++
}

// AddClause implements inter.Adder.
func (s *Gini) AddClause(ms ...z.Lit) {
	for _, m := range ms {
		s.g.Add(gz.Dimacs2Lit(m.Dimacs()))
	}
	s.g.Add(gz.LitNull)
}

// Simplify runs unit propagation over the added clauses.
func (s *Gini) Simplify() bool {
	if !s.ok {
		return false
	}
	res, _ := s.g.Test(nil)
	if s.g.Untest() == -1 || res == -1 {
		s.ok = false
		s.last = inter.Unsat
		return false
	}
	return true
}

// Solve implements inter.Solvable.  The search runs in its own
// goroutine and is stopped when Interrupt is called.
func (s *Gini) Solve() inter.Outcome {
	if !s.ok && s.last == inter.Unsat {
		return inter.Unsat
	}
	// The handle's Wait holds the lock Stop needs, so completion is
	// polled with Test, which does not block.
	gs := s.g.GoSolve()
	wait := minPoll
	t := time.NewTimer(wait)
	defer t.Stop()
	res := 0
loop:
	for {
		if r, done := gs.Test(); done {
			res = r
			break
		}
		select {
		case <-s.intr:
			res = gs.Stop()
			break loop
		case <-t.C:
		}
		if wait < maxPoll {
			wait *= 2
			if wait > maxPoll {
				wait = maxPoll
			}
		}
		t.Reset(wait)
	}
	switch res {
	case 1:
		s.last = inter.Sat
	case -1:
		s.last = inter.Unsat
	default:
		s.last = inter.Interrupted
	}
	s.ok = s.last == inter.Sat
	return s.last
}

// Interrupt implements inter.Interrupter.
func (s *Gini) Interrupt() {
	select {
	case s.intr <- struct{}{}:
	default:
	}
}

// Okay implements inter.Solvable.
func (s *Gini) Okay() bool {
	return s.ok
}

// Value implements inter.Model.
func (s *Gini) Value(v z.Var) inter.Value {
	if s.last != inter.Sat || v < 1 || int(v) > s.nVars {
		return inter.Undecided
	}
	if gz.Var(v) > s.g.MaxVar() {
		return inter.Undecided
	}
	if s.g.Value(gz.Var(v).Pos()) {
		return inter.True
	}
	return inter.False
}
