// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package bench

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/go-air/satbench/engine"
	"github.com/go-air/satbench/inter"
)

// Run describes a run of an engine on a list of instances.
type Run struct {
	Name        string
	Insts       []string
	Start       time.Time
	Timeout     time.Duration // 0 means none
	InstTimeout time.Duration // 0 means none
	InstRuns    []*InstRun

	// Solved counts the instances processed, whatever their
	// outcome, and SolveDur the time spent in Simplify and Solve.
	Solved   int
	SolveDur time.Duration

	newEngine func() inter.Engine
	out       io.Writer
	log       logrus.FieldLogger
}

// Option configures a Run.
type Option func(r *Run)

// WithEngine sets the function creating a fresh engine for each
// instance.  The default is engine.NewGini.
func WithEngine(f func() inter.Engine) Option {
	return func(r *Run) {
		r.newEngine = f
	}
}

// WithName sets the name of the run used in reports.
func WithName(name string) Option {
	return func(r *Run) {
		r.Name = name
	}
}

// WithOutput sets where solution records are written.  The default
// discards them.
func WithOutput(w io.Writer) Option {
	return func(r *Run) {
		r.out = w
	}
}

// WithLogger sets the logger.  The default discards log entries.
func WithLogger(l logrus.FieldLogger) Option {
	return func(r *Run) {
		r.log = l
	}
}

// WithInstTimeout sets the maximum duration of a single instance.
func WithInstTimeout(d time.Duration) Option {
	return func(r *Run) {
		r.InstTimeout = d
	}
}

// WithTimeout sets the maximum duration of the whole run.  Instances
// started after it elapsed are interrupted immediately.
func WithTimeout(d time.Duration) Option {
	return func(r *Run) {
		r.Timeout = d
	}
}

// NewRun creates a new run over the files insts.
func NewRun(insts []string, opts ...Option) *Run {
	quiet := logrus.New()
	quiet.SetOutput(io.Discard)
	r := &Run{
		Name:      engine.Default,
		Insts:     insts,
		newEngine: func() inter.Engine { return engine.NewGini() },
		out:       io.Discard,
		log:       quiet}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Len returns the number of instances of r.
func (r *Run) Len() int {
	return len(r.Insts)
}

// Do processes instance i.  The returned error, if any, is wrapped
// with the path of the instance.
func (r *Run) Do(ctx context.Context, i int) (*InstRun, error) {
	if r.Start.IsZero() {
		r.Start = time.Now()
	}
	ir := newInstRun(r, i)
	if e := ir.do(ctx); e != nil {
		return nil, e
	}
	r.InstRuns = append(r.InstRuns, ir)
	r.SolveDur += ir.Dur
	r.Solved++
	return ir, nil
}

// Run processes all instances in order.  It stops at the first error,
// or when ctx is done, in which case ctx.Err() is returned.
func (r *Run) Run(ctx context.Context) error {
	r.Start = time.Now()
	for i := 0; i < r.Len(); i++ {
		if e := ctx.Err(); e != nil {
			r.log.WithField("done", r.Solved).Warn("run cancelled")
			return e
		}
		if _, e := r.Do(ctx, i); e != nil {
			return e
		}
	}
	return nil
}

// Summary returns the number of processed instances and the time
// spent solving them.
func (r *Run) Summary() string {
	ms := float64(r.SolveDur) / float64(time.Millisecond)
	return fmt.Sprintf("solved %d instances in %.2f ms", r.Solved, ms)
}
