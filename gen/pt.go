// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gen

import (
	"math"
	"sort"

	"github.com/go-air/satbench/z"
)

// PartVar returns the literal stating element i is in part k of a
// partition of n elements.
func PartVar(i, k, n int) z.Lit {
	return z.Var(k*n + i + 1).Pos()
}

// exactlyOne adds clauses to dst stating exactly one of ms is true.
func exactlyOne(dst Dest, ms []z.Lit) {
	for _, m := range ms {
		dst.Add(m)
	}
	dst.Add(z.LitNull)
	for i, m := range ms {
		for _, o := range ms[:i] {
			dst.Add(m.Not())
			dst.Add(o.Not())
			dst.Add(z.LitNull)
		}
	}
}

// Partition adds constraints to dst stating that each of n elements is
// in exactly one of k parts, with PartVar(i, j, n) true iff element i
// is in part j.
func Partition(dst Dest, n, k int) {
	ms := make([]z.Lit, k)
	for i := 0; i < n; i++ {
		for j := range ms {
			ms[j] = PartVar(i, j, n)
		}
		exactlyOne(dst, ms)
	}
}

// Triple is a pythagorean triple, A*A + B*B == C*C with A < B.
type Triple struct {
	A, B, C int
}

// Triples returns the first n pythagorean triples ordered by B, then A.
func Triples(n int) []Triple {
	res := make([]Triple, 0, n)
	for b := 2; len(res) < n; b++ {
		for a := 1; a < b && len(res) < n; a++ {
			if c, ok := isqrt(a*a + b*b); ok {
				res = append(res, Triple{a, b, c})
			}
		}
	}
	return res
}

// isqrt returns the integer square root r of s and whether r*r == s.
func isqrt(s int) (int, bool) {
	r := int(math.Sqrt(float64(s)))
	for r*r > s {
		r--
	}
	for (r+1)*(r+1) <= s {
		r++
	}
	return r, r*r == s
}

// numbering maps every number occurring in ts to its rank among them.
func numbering(ts []Triple) map[int]int {
	vs := make([]int, 0, 3*len(ts))
	for _, t := range ts {
		vs = append(vs, t.A, t.B, t.C)
	}
	sort.Ints(vs)
	idx := make(map[int]int, len(vs))
	for _, v := range vs {
		if _, ok := idx[v]; !ok {
			idx[v] = len(idx)
		}
	}
	return idx
}

// PyTriples adds constraints stating that the numbers occurring in the
// first n pythagorean triples can be put in k parts without any triple
// lying entirely in one part.
func PyTriples(dst Dest, n, k int) {
	ts := Triples(n)
	idx := numbering(ts)
	N := len(idx)
	Partition(dst, N, k)
	for _, t := range ts {
		for p := 0; p < k; p++ {
			dst.Add(PartVar(idx[t.A], p, N).Not())
			dst.Add(PartVar(idx[t.B], p, N).Not())
			dst.Add(PartVar(idx[t.C], p, N).Not())
			dst.Add(z.LitNull)
		}
	}
}

// Py2Triples is PyTriples with k = 2, coding the part of number i
// as the sign of variable i.
func Py2Triples(dst Dest, n int) {
	for _, t := range Triples(n) {
		vs := [...]z.Var{z.Var(t.A), z.Var(t.B), z.Var(t.C)}
		for _, pos := range [...]bool{true, false} {
			for _, v := range vs {
				dst.Add(v.Lit(pos))
			}
			dst.Add(z.LitNull)
		}
	}
}
