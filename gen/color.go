// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gen

import "github.com/go-air/satbench/z"

// Graph is a simple undirected graph over nodes 0..len(g)-1, given as
// symmetric adjacency lists.
type Graph [][]int

// Edges returns the number of undirected edges of g.
func (g Graph) Edges() int {
	n := 0
	for _, ns := range g {
		n += len(ns)
	}
	return n / 2
}

// RandGraph returns a graph with n nodes and m distinct edges chosen
// uniformly at random.  It returns nil if m is negative or exceeds
// n*(n-1)/2.
func RandGraph(n, m int) Graph {
	max := n * (n - 1) / 2
	if m < 0 || m > max {
		return nil
	}
	// pair p in [0..max) codes the edge (i, j) with j < i.
	pairs := make([]int, max)
	for p := range pairs {
		pairs[p] = p
	}
	mu.Lock()
	for p := 0; p < m; p++ {
		q := p + rng.Intn(max-p)
		pairs[p], pairs[q] = pairs[q], pairs[p]
	}
	mu.Unlock()

	g := make(Graph, n)
	for _, p := range pairs[:m] {
		i, j := unpair(p)
		g[i] = append(g[i], j)
		g[j] = append(g[j], i)
	}
	return g
}

func unpair(p int) (i, j int) {
	i = 1
	for p >= i {
		p -= i
		i++
	}
	return i, p
}

// ColorVar returns the variable stating node i has color c
// out of k colors.  The variables are 1..n*k for n nodes.
func ColorVar(i, c, k int) z.Var {
	return z.Var(i*k + c + 1)
}

// Coloring adds constraints to dst stating that g can be colored with k
// colors: every node has some color and the ends of an edge differ in
// every color.  Node clauses come first, in node order.
func Coloring(dst Dest, g Graph, k int) {
	for i := range g {
		for c := 0; c < k; c++ {
			dst.Add(ColorVar(i, c, k).Pos())
		}
		dst.Add(z.LitNull)
	}
	for i, ns := range g {
		for _, j := range ns {
			if j > i {
				continue
			}
			for c := 0; c < k; c++ {
				dst.Add(ColorVar(i, c, k).Neg())
				dst.Add(ColorVar(j, c, k).Neg())
				dst.Add(z.LitNull)
			}
		}
	}
}

// RandColor adds the k-coloring problem of a random graph with n nodes
// and m edges to dst and returns the graph, which is nil (and nothing
// is added) if RandGraph rejects n and m.
func RandColor(dst Dest, n, m, k int) Graph {
	g := RandGraph(n, m)
	if g != nil {
		Coloring(dst, g, k)
	}
	return g
}
