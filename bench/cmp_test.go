// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package bench

import (
	"strings"
	"testing"
	"time"

	"github.com/go-air/satbench/inter"
)

func cmpRun() *Run {
	r := NewRun([]string{"a.cnf", "b.cnf", "dir/c.cnf", "d.cnf"}, WithName("fake"))
	for i, o := range []inter.Outcome{inter.Sat, inter.Unsat, inter.Interrupted, inter.Unsat} {
		ir := newInstRun(r, i)
		ir.Result = o
		ir.Dur = time.Duration(i+1) * time.Second
		ir.SimpUnsat = i == 3
		r.InstRuns = append(r.InstRuns, ir)
	}
	return r
}

func TestTotals(t *testing.T) {
	r := cmpRun()
	if n := SolveTotal(r); n != 3 {
		t.Errorf("solved %d", n)
	}
	if n := SatTotal(r); n != 1 {
		t.Errorf("sat %d", n)
	}
	if n := UnsatTotal(r); n != 2 {
		t.Errorf("unsat %d", n)
	}
	if n := UnknownTotal(r); n != 1 {
		t.Errorf("unknown %d", n)
	}
	all, solved := Times(r)
	if all != 10 || solved != 7 {
		t.Errorf("times %f %f", all, solved)
	}
	if p := SolvePortion(r); p != 0.75 {
		t.Errorf("portion %f", p)
	}
	if p := SolvePortion(NewRun(nil)); p != 0 {
		t.Errorf("empty portion %f", p)
	}
}

func TestReport(t *testing.T) {
	rep := Report(cmpRun())
	if !strings.Contains(rep, "| fake ") {
		t.Errorf("no run name:\n%s", rep)
	}
	if !strings.Contains(rep, "10.00") {
		t.Errorf("no time:\n%s", rep)
	}
}

func TestListing(t *testing.T) {
	lst := Listing(cmpRun())
	lines := strings.Split(lst, "\n")
	if len(lines) != 5 {
		t.Fatalf("lines:\n%s", lst)
	}
	for i, w := range []string{"s", "u", "?", "u (simp)"} {
		if !strings.Contains(lines[i+1], "| "+w+" ") {
			t.Errorf("line %d: %q lacks %q", i+1, lines[i+1], w)
		}
	}
	if !strings.Contains(lines[3], "c.cnf") || strings.Contains(lines[3], "dir") {
		t.Errorf("file name: %q", lines[3])
	}
}

func TestRtrunc(t *testing.T) {
	if s := rtrunc("abcdef", 3); s != "def" {
		t.Errorf("rtrunc: %q", s)
	}
	if s := rtrunc("ab", 3); s != "ab" {
		t.Errorf("rtrunc short: %q", s)
	}
}
