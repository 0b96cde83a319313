// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gen

import (
	"sync"

	"github.com/go-air/satbench/inter"
	"github.com/go-air/satbench/z"
)

// Call names recorded by Rec.
const (
	CallNewVar    = "newvar"
	CallAddClause = "addclause"
	CallSimplify  = "simplify"
	CallSolve     = "solve"
	CallInterrupt = "interrupt"
	CallOkay      = "okay"
	CallValue     = "value"
)

// Rec creates an inter.Engine which forwards every call to e and
// records its name in call order.
func Rec(e inter.Engine) *Recorder {
	return &Recorder{e: e}
}

// Recorder is the engine returned by Rec.
type Recorder struct {
	e     inter.Engine
	mu    sync.Mutex
	calls []string
}

func (r *Recorder) rec(c string) {
	r.mu.Lock()
	r.calls = append(r.calls, c)
	r.mu.Unlock()
}

// Calls returns a copy of the calls recorded so far.
func (r *Recorder) Calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	res := make([]string, len(r.calls))
	copy(res, r.calls)
	return res
}

// Count returns the number of recorded calls named c.
func (r *Recorder) Count(c string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, d := range r.calls {
		if d == c {
			n++
		}
	}
	return n
}

func (r *Recorder) NewVar() {
	r.rec(CallNewVar)
	r.e.NewVar()
}

func (r *Recorder) AddClause(ms ...z.Lit) {
	r.rec(CallAddClause)
	r.e.AddClause(ms...)
}

func (r *Recorder) Simplify() bool {
	r.rec(CallSimplify)
	return r.e.Simplify()
}

func (r *Recorder) Solve() inter.Outcome {
	r.rec(CallSolve)
	return r.e.Solve()
}

func (r *Recorder) Interrupt() {
	r.rec(CallInterrupt)
	r.e.Interrupt()
}

func (r *Recorder) Okay() bool {
	r.rec(CallOkay)
	return r.e.Okay()
}

func (r *Recorder) Value(v z.Var) inter.Value {
	r.rec(CallValue)
	return r.e.Value(v)
}
