// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-air/satbench/cnf"
	"github.com/go-air/satbench/engine"
	"github.com/go-air/satbench/gen"
	"github.com/go-air/satbench/inter"
)

func TestRand3Cnf(t *testing.T) {
	gen.Seed(7)
	b := cnf.NewBuilder()
	gen.Rand3Cnf(b, 10, 50)
	p := b.Problem()
	require.Len(t, p.Clauses, 50)
	assert.LessOrEqual(t, p.NumVars, 10)
	for _, c := range p.Clauses {
		require.Len(t, c, 3)
		assert.NotEqual(t, c[0].Var(), c[1].Var())
		assert.NotEqual(t, c[0].Var(), c[2].Var())
		assert.NotEqual(t, c[1].Var(), c[2].Var())
	}
}

func TestPlanted3Cnf(t *testing.T) {
	gen.Seed(11)
	b := cnf.NewBuilder()
	model := gen.Planted3Cnf(b, 30, 120)
	p := b.Problem()
	require.Len(t, model, 30)
	require.Len(t, p.Clauses, 120)
	assert.NoError(t, cnf.Check(p, cnf.NewSolution(model...)))
}

func TestBinCycle(t *testing.T) {
	b := cnf.NewBuilder()
	gen.BinCycle(b, 5)
	p := b.Problem()
	assert.Equal(t, 5, p.NumVars)
	assert.Len(t, p.Clauses, 5)
	assert.Equal(t, "[5 -1]", p.Clauses[4].String())
}

func TestPhp(t *testing.T) {
	b := cnf.NewBuilder()
	gen.Php(b, 4, 3)
	p := b.Problem()
	assert.Equal(t, 12, p.NumVars)
	// 4 pigeon clauses, 6 pairs in 3 holes
	assert.Len(t, p.Clauses, 4+6*3)
}

func TestPy2Triples(t *testing.T) {
	b := cnf.NewBuilder()
	gen.Py2Triples(b, 100)
	p := b.Problem()
	e := engine.NewGini()
	for i := 0; i < p.NumVars; i++ {
		e.NewVar()
	}
	for _, c := range p.Clauses {
		e.AddClause(c...)
	}
	assert.Equal(t, inter.Sat, e.Solve())
}
