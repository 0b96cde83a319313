// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gen_test

import (
	"testing"

	"github.com/go-air/satbench/cnf"
	"github.com/go-air/satbench/gen"
)

func TestRandGraph(t *testing.T) {
	g := gen.RandGraph(100, 2000)
	if len(g) != 100 {
		t.Errorf("wrong number of nodes %d != %d\n", len(g), 100)
	}
	if g.Edges() != 2000 {
		t.Errorf("wrong number of edges: %d != 2000\n", g.Edges())
	}
	seen := map[[2]int]bool{}
	for i, ns := range g {
		for _, j := range ns {
			if i == j {
				t.Errorf("self edge %d", i)
			}
			if seen[[2]int{i, j}] {
				t.Errorf("multi edge %d %d", i, j)
			}
			seen[[2]int{i, j}] = true
		}
	}
	for e := range seen {
		if !seen[[2]int{e[1], e[0]}] {
			t.Errorf("edge %v not symmetric", e)
		}
	}
	if gen.RandGraph(4, 7) != nil {
		t.Errorf("too many edges accepted")
	}
	if full := gen.RandGraph(5, 10); full.Edges() != 10 {
		t.Errorf("complete graph has %d edges", full.Edges())
	}
}

func TestRandColor(t *testing.T) {
	n, m, k := 20, 40, 3
	b := cnf.NewBuilder()
	g := gen.RandColor(b, n, m, k)
	if g.Edges() != m {
		t.Fatalf("graph has %d edges", g.Edges())
	}
	p := b.Problem()
	if p.NumVars > n*k {
		t.Errorf("vars %d > %d", p.NumVars, n*k)
	}
	if len(p.Clauses) != n+m*k {
		t.Errorf("clauses %d != %d", len(p.Clauses), n+m*k)
	}
	for i, c := range p.Clauses {
		if i < n && len(c) != k {
			t.Errorf("node clause %v", c)
		}
		if i >= n && len(c) != 2 {
			t.Errorf("edge clause %v", c)
		}
	}
	if gen.RandColor(cnf.NewBuilder(), 3, 4, k) != nil {
		t.Errorf("too many edges accepted")
	}
}

func TestColoringTriangle(t *testing.T) {
	tri := gen.Graph{{1, 2}, {0, 2}, {0, 1}}
	b := cnf.NewBuilder()
	gen.Coloring(b, tri, 2)
	p := b.Problem()
	// 3 node clauses, 3 edges in 2 colors
	if len(p.Clauses) != 3+3*2 {
		t.Errorf("clauses %d", len(p.Clauses))
	}
	if p.NumVars != 6 {
		t.Errorf("vars %d", p.NumVars)
	}
}
