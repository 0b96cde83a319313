// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package engine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-air/satbench/cnf"
	"github.com/go-air/satbench/engine"
	"github.com/go-air/satbench/gen"
	"github.com/go-air/satbench/inter"
	"github.com/go-air/satbench/z"
)

func load(e inter.Engine, p *cnf.Problem) {
	for i := 0; i < p.NumVars; i++ {
		e.NewVar()
	}
	for _, c := range p.Clauses {
		e.AddClause(c...)
	}
}

func model(e inter.Engine, n int) *cnf.Solution {
	var ms []z.Lit
	for i := 1; i <= n; i++ {
		switch e.Value(z.Var(i)) {
		case inter.True:
			ms = append(ms, z.Var(i).Pos())
		case inter.False:
			ms = append(ms, z.Var(i).Neg())
		}
	}
	return cnf.NewSolution(ms...)
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"gini", "gophersat"}, engine.Names())
	for _, n := range append(engine.Names(), "") {
		e, err := engine.New(n)
		require.NoError(t, err)
		assert.NotNil(t, e)
	}
	_, err := engine.New("minisat")
	assert.Error(t, err)
	f, err := engine.Factory("gophersat")
	require.NoError(t, err)
	assert.IsType(t, &engine.Gophersat{}, f())
}

func TestPlanted(t *testing.T) {
	for _, name := range engine.Names() {
		t.Run(name, func(t *testing.T) {
			gen.Seed(3)
			for i := 0; i < 5; i++ {
				b := cnf.NewBuilder()
				gen.Planted3Cnf(b, 50, 200)
				p := b.Problem()
				e, err := engine.New(name)
				require.NoError(t, err)
				load(e, p)
				require.True(t, e.Simplify())
				require.Equal(t, inter.Sat, e.Solve())
				require.True(t, e.Okay())
				assert.NoError(t, cnf.Check(p, model(e, p.NumVars)))
			}
		})
	}
}

func TestPhpUnsat(t *testing.T) {
	for _, name := range engine.Names() {
		t.Run(name, func(t *testing.T) {
			b := cnf.NewBuilder()
			gen.Php(b, 5, 4)
			p := b.Problem()
			e, err := engine.New(name)
			require.NoError(t, err)
			load(e, p)
			if e.Simplify() {
				assert.Equal(t, inter.Unsat, e.Solve())
			}
			assert.False(t, e.Okay())
			assert.Equal(t, inter.Undecided, e.Value(1))
		})
	}
}

func TestSimplifyConflict(t *testing.T) {
	for _, name := range engine.Names() {
		t.Run(name, func(t *testing.T) {
			e, err := engine.New(name)
			require.NoError(t, err)
			e.NewVar()
			e.NewVar()
			e.AddClause(1)
			e.AddClause(-1, 2)
			e.AddClause(-2)
			assert.True(t, e.Okay())
			assert.False(t, e.Simplify())
			assert.False(t, e.Okay())
		})
	}
}

func TestUnusedVar(t *testing.T) {
	for _, name := range engine.Names() {
		t.Run(name, func(t *testing.T) {
			e, err := engine.New(name)
			require.NoError(t, err)
			for i := 0; i < 3; i++ {
				e.NewVar()
			}
			e.AddClause(1, 2)
			e.AddClause(-1)
			require.Equal(t, inter.Sat, e.Solve())
			assert.Equal(t, inter.False, e.Value(1))
			assert.Equal(t, inter.True, e.Value(2))
			assert.Equal(t, inter.Undecided, e.Value(3))
			assert.Equal(t, inter.Undecided, e.Value(4))
		})
	}
}

func TestNoClauses(t *testing.T) {
	for _, name := range engine.Names() {
		t.Run(name, func(t *testing.T) {
			e, err := engine.New(name)
			require.NoError(t, err)
			e.NewVar()
			assert.True(t, e.Simplify())
			assert.Equal(t, inter.Sat, e.Solve())
			assert.NoError(t, cnf.Check(&cnf.Problem{NumVars: 1}, model(e, 1)))
		})
	}
}

func TestInterrupt(t *testing.T) {
	for _, name := range engine.Names() {
		t.Run(name, func(t *testing.T) {
			b := cnf.NewBuilder()
			gen.Php(b, 14, 13)
			p := b.Problem()
			e, err := engine.New(name)
			require.NoError(t, err)
			load(e, p)
			tm := time.AfterFunc(20*time.Millisecond, e.Interrupt)
			defer tm.Stop()
			start := time.Now()
			res := e.Solve()
			assert.Equal(t, inter.Interrupted, res)
			assert.False(t, e.Okay())
			assert.Less(t, time.Since(start), 10*time.Second)
		})
	}
}

func TestGiniTrivialLatency(t *testing.T) {
	const n = 200
	start := time.Now()
	for i := 0; i < n; i++ {
		g := engine.NewGini()
		g.NewVar()
		g.AddClause(z.Dimacs2Lit(1))
		require.True(t, g.Simplify())
		require.Equal(t, inter.Sat, g.Solve())
	}
	avg := time.Since(start) / n
	assert.Less(t, avg, 500*time.Microsecond, "average %s per one clause solve", avg)
}
