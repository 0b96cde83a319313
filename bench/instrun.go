// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package bench

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/go-air/satbench/cnf"
	"github.com/go-air/satbench/dimacs"
	"github.com/go-air/satbench/inter"
	"github.com/go-air/satbench/z"
)

// InstRun records the processing of one instance of a Run.
type InstRun struct {
	Run        *Run
	Inst       int
	Path       string
	Vars       int
	Clauses    int
	HdrClauses int
	SimpUnsat  bool // Simplify showed the instance unsatisfiable
	Result     inter.Outcome
	Start      time.Time
	Dur        time.Duration
	Solution   *cnf.Solution // nil unless Result is inter.Sat
}

func newInstRun(run *Run, inst int) *InstRun {
	return &InstRun{
		Run:  run,
		Inst: inst,
		Path: run.Insts[inst]}
}

func (ir *InstRun) fields() logrus.Fields {
	return logrus.Fields{
		"inst":    ir.Inst,
		"file":    ir.Path,
		"vars":    ir.Vars,
		"clauses": ir.Clauses}
}

func (ir *InstRun) load() (*cnf.Problem, error) {
	p, e := dimacs.ParseFile(ir.Path)
	if e != nil {
		return nil, errors.Wrapf(e, "%s", ir.Path)
	}
	ir.Vars = p.NumVars
	ir.Clauses = len(p.Clauses)
	ir.HdrClauses = p.HdrClauses
	return p, nil
}

func (ir *InstRun) do(ctx context.Context) error {
	log := ir.Run.log
	p, e := ir.load()
	if e != nil {
		return e
	}
	log = log.WithFields(ir.fields())
	if ir.HdrClauses >= 0 && ir.HdrClauses != ir.Clauses {
		log.WithField("declared", ir.HdrClauses).Warn("header clause count mismatch")
	}
	log.Debug("loading")

	eng := ir.Run.newEngine()
	for i := 0; i < p.NumVars; i++ {
		eng.NewVar()
	}
	for _, c := range p.Clauses {
		eng.AddClause(c...)
	}

	ir.Start = time.Now()
	stop := context.AfterFunc(ctx, eng.Interrupt)
	var alarm *time.Timer
	if d, ok := ir.dur(); ok {
		alarm = time.AfterFunc(d, eng.Interrupt)
	}
	if eng.Simplify() {
		ir.Result = eng.Solve()
	} else {
		ir.SimpUnsat = true
		ir.Result = inter.Unsat
	}
	ir.Dur = time.Since(ir.Start)
	stop()
	if alarm != nil {
		alarm.Stop()
	}

	log = log.WithFields(logrus.Fields{
		"result": ir.Result,
		"dur":    ir.Dur})
	if ir.Result == inter.Interrupted {
		log.Warn("interrupted")
	} else {
		log.Info("done")
	}
	if ir.Result != inter.Sat || !eng.Okay() {
		return nil
	}
	ir.Solution = solution(eng, p.NumVars)
	if e := json.NewEncoder(ir.Run.out).Encode(ir.Solution); e != nil {
		return errors.Wrapf(e, "%s: writing solution", ir.Path)
	}
	if e := cnf.Check(p, ir.Solution); e != nil {
		return errors.Wrapf(e, "%s", ir.Path)
	}
	return nil
}

// solution reads the model of e over variables 1..n.
func solution(e inter.Model, n int) *cnf.Solution {
	ms := make([]z.Lit, 0, n)
	for i := 1; i <= n; i++ {
		v := z.Var(i)
		switch e.Value(v) {
		case inter.True:
			ms = append(ms, v.Pos())
		case inter.False:
			ms = append(ms, v.Neg())
		}
	}
	return cnf.NewSolution(ms...)
}

// dur returns the time left for the instance, and whether there is
// any limit.
func (ir *InstRun) dur() (time.Duration, bool) {
	run := ir.Run
	if run.Timeout <= 0 && run.InstTimeout <= 0 {
		return 0, false
	}
	d := run.InstTimeout
	if run.Timeout > 0 {
		left := time.Until(run.Start.Add(run.Timeout))
		if d <= 0 || left < d {
			d = left
		}
	}
	if d < 0 {
		d = 0
	}
	return d, true
}
