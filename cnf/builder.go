// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package cnf

import "github.com/go-air/satbench/z"

// Builder accumulates clauses given as z.LitNull terminated sequences of
// literals.  Empty clauses are dropped.
//
// Builder implements dimacs.CnfVis.
type Builder struct {
	hdrVars int
	hdrCls  int
	maxVar  z.Var
	cur     []z.Lit
	clauses []Clause
}

// NewBuilder creates a Builder with no declared header.
func NewBuilder() *Builder {
	return &Builder{
		hdrVars: -1,
		hdrCls:  -1}
}

// Init records a declared variable and clause count.  The clause
// count is used only to size the clause list.
func (b *Builder) Init(nv, nc int) {
	b.hdrVars = nv
	b.hdrCls = nc
	if nc > 0 && b.clauses == nil {
		b.clauses = make([]Clause, 0, nc)
	}
}

// Add adds m to the current clause, or ends the current clause
// if m is z.LitNull.
func (b *Builder) Add(m z.Lit) {
	if m != z.LitNull {
		if v := m.Var(); v > b.maxVar {
			b.maxVar = v
		}
		b.cur = append(b.cur, m)
		return
	}
	if len(b.cur) == 0 {
		return
	}
	c := make(Clause, len(b.cur))
	copy(c, b.cur)
	b.clauses = append(b.clauses, c)
	b.cur = b.cur[:0]
}

// AddClause adds the literals ms as a single clause.
func (b *Builder) AddClause(ms ...z.Lit) {
	for _, m := range ms {
		b.Add(m)
	}
	b.Add(z.LitNull)
}

// Eof terminates any pending clause.
func (b *Builder) Eof() {
	b.Add(z.LitNull)
}

// MaxVar returns the largest variable added so far.
func (b *Builder) MaxVar() z.Var {
	return b.maxVar
}

// Problem returns the problem built so far.  The number of variables
// is the declared one if Init was called, otherwise the largest variable
// added.  b should not be used afterwards.
func (b *Builder) Problem() *Problem {
	b.Eof()
	nv := b.hdrVars
	if nv < 0 {
		nv = int(b.maxVar)
	}
	return &Problem{
		NumVars:    nv,
		Clauses:    b.clauses,
		HdrClauses: b.hdrCls}
}
