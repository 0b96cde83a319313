// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gen

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Family is a named generator of instances taking a fixed list of
// non-negative integer parameters.
type Family struct {
	Name   string
	Params []string
	Doc    string
	add    func(dst Dest, a []int) error
}

// Usage returns the family name followed by its parameter names.
func (f Family) Usage() string {
	return strings.Join(append([]string{f.Name}, f.Params...), " ")
}

func atLeast(name string, v, lo int) error {
	if v < lo {
		return errors.Errorf("%s must be at least %d, got %d", name, lo, v)
	}
	return nil
}

var families = map[string]Family{
	"bincycle": {
		Params: []string{"vars"},
		Doc:    "satisfiable cycle of binary implications",
		add: func(dst Dest, a []int) error {
			BinCycle(dst, a[0])
			return nil
		},
	},
	"rand3": {
		Params: []string{"vars", "clauses"},
		Doc:    "uniform random 3-cnf",
		add: func(dst Dest, a []int) error {
			if e := atLeast("vars", a[0], 3); e != nil {
				return e
			}
			Rand3Cnf(dst, a[0], a[1])
			return nil
		},
	},
	"hard3": {
		Params: []string{"vars"},
		Doc:    "random 3-cnf near the phase transition",
		add: func(dst Dest, a []int) error {
			if e := atLeast("vars", a[0], 3); e != nil {
				return e
			}
			HardRand3Cnf(dst, a[0])
			return nil
		},
	},
	"planted3": {
		Params: []string{"vars", "clauses"},
		Doc:    "random 3-cnf satisfied by a hidden assignment",
		add: func(dst Dest, a []int) error {
			if e := atLeast("vars", a[0], 3); e != nil {
				return e
			}
			Planted3Cnf(dst, a[0], a[1])
			return nil
		},
	},
	"php": {
		Params: []string{"pigeons", "holes"},
		Doc:    "pigeon hole principle",
		add: func(dst Dest, a []int) error {
			Php(dst, a[0], a[1])
			return nil
		},
	},
	"color": {
		Params: []string{"nodes", "edges", "colors"},
		Doc:    "coloring of a random graph",
		add: func(dst Dest, a []int) error {
			if RandColor(dst, a[0], a[1], a[2]) == nil {
				return errors.Errorf("%d nodes have no %d distinct edges", a[0], a[1])
			}
			return nil
		},
	},
	"partition": {
		Params: []string{"elements", "parts"},
		Doc:    "partition of elements into parts",
		add: func(dst Dest, a []int) error {
			Partition(dst, a[0], a[1])
			return nil
		},
	},
	"pytriples": {
		Params: []string{"triples", "parts"},
		Doc:    "pythagorean triples split without a monochrome triple",
		add: func(dst Dest, a []int) error {
			PyTriples(dst, a[0], a[1])
			return nil
		},
	},
	"py2triples": {
		Params: []string{"triples"},
		Doc:    "pythagorean triples split in two, sign coded",
		add: func(dst Dest, a []int) error {
			Py2Triples(dst, a[0])
			return nil
		},
	},
	"sudoku": {
		Doc: "empty 9x9 sudoku board",
		add: func(dst Dest, a []int) error {
			Sudoku(dst)
			return nil
		},
	},
}

// Families returns the generator families ordered by name.
func Families() []Family {
	res := make([]Family, 0, len(families))
	for name, f := range families {
		f.Name = name
		res = append(res, f)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Name < res[j].Name })
	return res
}

// Generate adds the instance of family name with parameters args to dst.
// Random families draw from the package generator, see Seed.
func Generate(dst Dest, name string, args ...int) error {
	f, ok := families[name]
	if !ok {
		return errors.Errorf("unknown family %q", name)
	}
	if len(args) != len(f.Params) {
		return errors.Errorf("%s: want %d parameters (%s), got %d",
			name, len(f.Params), strings.Join(f.Params, " "), len(args))
	}
	for i, a := range args {
		if e := atLeast(f.Params[i], a, 0); e != nil {
			return errors.Wrap(e, name)
		}
	}
	return errors.Wrap(f.add(dst, args), name)
}
