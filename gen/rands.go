// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gen

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/go-air/satbench/inter"
	"github.com/go-air/satbench/z"
)

// RandS creates an inter.Engine which just returns res from Solve()
// within a random period of time chosen from [0..d).  If res is
// inter.Interrupted, then a random value from {Sat, Unsat} is chosen.
// Interrupt makes a pending Solve return inter.Interrupted at once.
//
// After a Sat result, Value returns random values.
//
// This is useful for testing applications using inter.Engine.
func RandS(d time.Duration, res inter.Outcome) *Rands {
	return RandSr(d, res, rand.NewSource(33))
}

// RandSr is RandS with a given source of randomness.
func RandSr(d time.Duration, res inter.Outcome, src rand.Source) *Rands {
	return &Rands{
		intr: make(chan struct{}, 1),
		dur:  d,
		res:  res,
		simp: true,
		ok:   true,
		rand: rand.New(src)}
}

// RandSModel creates an engine like RandS whose Solve returns Sat and
// whose Value follows model, which holds at most one literal per variable.
// Variables absent from model are Undecided.
func RandSModel(d time.Duration, model []z.Lit) *Rands {
	r := RandS(d, inter.Sat)
	r.model = make(map[z.Var]inter.Value, len(model))
	for _, m := range model {
		if m.IsPos() {
			r.model[m.Var()] = inter.True
		} else {
			r.model[m.Var()] = inter.False
		}
	}
	return r
}

// Rands is the engine returned by RandS.
type Rands struct {
	mu    sync.Mutex
	dur   time.Duration
	res   inter.Outcome
	rand  *rand.Rand
	model map[z.Var]inter.Value
	simp  bool
	ok    bool
	last  inter.Outcome
	nVars int
	nCls  int
	intr  chan struct{}
}

// SetSimplify sets the result of subsequent calls to Simplify.
func (r *Rands) SetSimplify(v bool) {
	r.simp = v
}

// Vars returns the number of variables allocated.
func (r *Rands) Vars() int {
	return r.nVars
}

// Clauses returns the number of clauses added.
func (r *Rands) Clauses() int {
	return r.nCls
}

func (r *Rands) NewVar() {
	r.nVars++
}

func (r *Rands) AddClause(ms ...z.Lit) {
	r.nCls++
}

func (r *Rands) Simplify() bool {
	if !r.simp {
		r.ok = false
	}
	return r.simp
}

func (r *Rands) Solve() inter.Outcome {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.last = r.solve()
	r.ok = r.last == inter.Sat
	return r.last
}

func (r *Rands) solve() inter.Outcome {
	var alarm <-chan time.Time
	if ns := r.dur.Nanoseconds(); ns > 0 {
		alarm = time.After(time.Duration(r.rand.Int63n(ns)))
	} else {
		ch := make(chan time.Time, 1)
		ch <- time.Time{}
		alarm = ch
	}
	select {
	case <-r.intr:
		return inter.Interrupted
	default:
	}
	select {
	case <-alarm:
		if r.res == inter.Interrupted {
			if r.rand.Intn(2) == 0 {
				return inter.Unsat
			}
			return inter.Sat
		}
		return r.res
	case <-r.intr:
		return inter.Interrupted
	}
}

func (r *Rands) Interrupt() {
	select {
	case r.intr <- struct{}{}:
	default:
	}
}

func (r *Rands) Okay() bool {
	return r.ok
}

func (r *Rands) Value(v z.Var) inter.Value {
	if r.last != inter.Sat {
		return inter.Undecided
	}
	if r.model != nil {
		return r.model[v]
	}
	if r.rand.Intn(2) == 1 {
		return inter.True
	}
	return inter.False
}

func (r *Rands) String() string {
	return fmt.Sprintf("*gen.Rands[%s]", r.dur)
}
