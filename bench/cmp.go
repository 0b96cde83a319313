// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package bench

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-air/satbench/inter"
)

// TotalResult counts the instance runs of r whose outcome satisfies filt.
func TotalResult(r *Run, filt func(o inter.Outcome) bool) int {
	ttl := 0
	for _, ir := range r.InstRuns {
		if filt(ir.Result) {
			ttl++
		}
	}
	return ttl
}

// SolveTotal gives the total number of decided instances
// for the run r.
func SolveTotal(r *Run) int {
	return TotalResult(r, func(o inter.Outcome) bool { return o != inter.Interrupted })
}

func SatTotal(r *Run) int {
	return TotalResult(r, func(o inter.Outcome) bool { return o == inter.Sat })
}

func UnsatTotal(r *Run) int {
	return TotalResult(r, func(o inter.Outcome) bool { return o == inter.Unsat })
}

func UnknownTotal(r *Run) int {
	return TotalResult(r, func(o inter.Outcome) bool { return o == inter.Interrupted })
}

// Times gives the total solving time of r in seconds, and the part of
// it spent on decided instances.
func Times(r *Run) (all float64, solved float64) {
	sec := float64(time.Second)
	for _, ir := range r.InstRuns {
		d := float64(ir.Dur) / sec
		all += d
		if ir.Result != inter.Interrupted {
			solved += d
		}
	}
	return
}

// SolvePortion gives the portion of instances in r decided.
func SolvePortion(r *Run) float64 {
	if len(r.InstRuns) == 0 {
		return 0
	}
	ttl := float64(SolveTotal(r))
	return ttl / float64(len(r.InstRuns))
}

// Report produces a one row summary of the run r.
func Report(r *Run) string {
	hdr := `
------------------------------------------------------------------------------------
| Run                  | solved   | sat      | unsat     | unknown |  time      |
------------------------------------------------------------------------------------`
	rSum := `| %-16s     | %-4d     | %-4d     | %-4d      | %-4d    |  %-7.2fs  |
------------------------------------------------------------------------------------`
	all, _ := Times(r)
	rs := fmt.Sprintf(rSum, rtrunc(r.Name, 16), SolveTotal(r), SatTotal(r), UnsatTotal(r),
		UnknownTotal(r), all)
	return strings.Join([]string{hdr, rs}, "\n")
}

// Listing produces a listing of all instance runs in r.
func Listing(r *Run) string {
	rows := make([]string, 0, len(r.InstRuns)+1)
	rows = append(rows, fmt.Sprintf("%-5s | %-18s | %-8s | %-8s | %-11s | %s",
		"id", " name", "vars", "clauses", "result", "   time"))
	for _, ir := range r.InstRuns {
		_, nm := filepath.Split(ir.Path)
		s := "s"
		switch ir.Result {
		case inter.Unsat:
			s = "u"
			if ir.SimpUnsat {
				s = "u (simp)"
			}
		case inter.Interrupted:
			s = "?"
		}
		ds := float64(ir.Dur) / float64(time.Second)
		rows = append(rows, fmt.Sprintf("%-5d | %-18s | %-8d | %-8d | %-11s | % 8.2f",
			ir.Inst, rtrunc(nm, 18), ir.Vars, ir.Clauses, s, ds))
	}
	return strings.Join(rows, "\n")
}

func rtrunc(s string, n int) string {
	ct := utf8.RuneCountInString(s)
	j := 0
	for i := range s {
		if j >= ct-n {
			return s[i:]
		}
		j++
	}
	return s
}
