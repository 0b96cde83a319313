// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gen

import (
	"math/rand"
	"sync"

	"github.com/go-air/satbench/z"
)

// Dest is something to which clauses can be added by sequences of
// z.LitNull terminated literals, such as a cnf.Builder.
type Dest interface {
	Add(m z.Lit)
}

/// make the rng seedable
var rng = rand.New(rand.NewSource(33))
var mu sync.Mutex

func Seed(s int64) {
	mu.Lock()
	defer mu.Unlock()
	rng = rand.New(rand.NewSource(s))
}

// BinCycle generates
// (1,-2) (2,-3), (3,-4) ... (n-1, -(n)), (n, -1)
func BinCycle(dst Dest, n int) {
	N := n + 1

	for i := 1; i < N; i++ {
		j := i + 1
		if j == N {
			j = 1
		}
		m, o := z.Var(i).Pos(), z.Var(j).Neg()
		dst.Add(m)
		dst.Add(o)
		dst.Add(z.LitNull)
	}
}

// randLit returns a literal over a variable in [1..n] with a random sign.
// mu must be held.
func randLit(n int) z.Lit {
	return z.Var(rng.Intn(n) + 1).Lit(rng.Intn(2) == 1)
}

// rand3 fills ms with literals over 3 distinct variables.  mu must be held.
func rand3(ms []z.Lit, n int) {
	for j := 0; j < 3; j++ {
		ms[j] = randLit(n)
		for j == 1 && ms[0].Var() == ms[1].Var() {
			ms[j] = randLit(n)
		}
		for j == 2 && (ms[0].Var() == ms[2].Var() || ms[1].Var() == ms[2].Var()) {
			ms[j] = randLit(n)
		}
	}
}

// Rand3Cnf generates a random 3cnf with
// n variables and m clauses.  n must be at least 3.
func Rand3Cnf(dst Dest, n, m int) {
	mu.Lock() // for package rng
	defer mu.Unlock()
	ms := make([]z.Lit, 3)
	for i := 0; i < m; i++ {
		rand3(ms, n)
		dst.Add(ms[0])
		dst.Add(ms[1])
		dst.Add(ms[2])
		dst.Add(z.LitNull)
	}
}

// HardRand3Cnf generates a random 3cnf
// with n variables.
func HardRand3Cnf(dst Dest, n int) {
	Rand3Cnf(dst, n, 4*n)
}

// Planted3Cnf generates a random 3cnf with n variables and m clauses
// which is satisfied by a hidden random assignment.  The assignment
// is returned with one literal per variable, in variable order.
func Planted3Cnf(dst Dest, n, m int) []z.Lit {
	mu.Lock()
	defer mu.Unlock()
	model := make([]z.Lit, n)
	for i := range model {
		model[i] = z.Var(i + 1).Lit(rng.Intn(2) == 1)
	}
	sat := func(m z.Lit) bool {
		return model[m.Var()-1] == m
	}
	ms := make([]z.Lit, 3)
	for i := 0; i < m; i++ {
		rand3(ms, n)
		for !sat(ms[0]) && !sat(ms[1]) && !sat(ms[2]) {
			rand3(ms, n)
		}
		dst.Add(ms[0])
		dst.Add(ms[1])
		dst.Add(ms[2])
		dst.Add(z.LitNull)
	}
	return model
}

// Php generates a pigeon hole problem asking
// whether or not P pigeons can be placed
// in H holes with 1 pigeon per hole.
//
// The variables are 1..P*H.
func Php(dst Dest, P, H int) {
	for i := 0; i < P; i++ {
		for j := 0; j < H; j++ {
			dst.Add(PartVar(i, j, P))
		}
		dst.Add(0)
	}
	for i := 0; i < P; i++ {
		for j := 0; j < i; j++ {
			for h := 0; h < H; h++ {
				dst.Add(PartVar(i, h, P).Not())
				dst.Add(PartVar(j, h, P).Not())
				dst.Add(0)
			}
		}
	}
}
