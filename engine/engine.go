// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package engine

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/go-air/satbench/inter"
)

// Default is the name of the engine used when none is given.
const Default = "gini"

var engines = map[string]func() inter.Engine{
	"gini":      func() inter.Engine { return NewGini() },
	"gophersat": func() inter.Engine { return NewGophersat() },
}

// New creates a fresh engine by name.  The empty name denotes Default.
//
// A gophersat engine cannot stop its search: Interrupt makes Solve
// return Interrupted at once, but the search keeps running in its own
// goroutine until it finishes.  A batch run with per instance timeouts
// may so accumulate background searches competing for the CPU with
// the instances that follow.
func New(name string) (inter.Engine, error) {
	f, e := Factory(name)
	if e != nil {
		return nil, e
	}
	return f(), nil
}

// Factory returns a function creating fresh engines of the named kind.
// The interrupt caveat of New applies to gophersat engines.
func Factory(name string) (func() inter.Engine, error) {
	if name == "" {
		name = Default
	}
	f, ok := engines[name]
	if !ok {
		return nil, errors.Errorf("unknown engine %q", name)
	}
	return f, nil
}

// Names returns the names of the available engines in sorted order.
func Names() []string {
	res := make([]string, 0, len(engines))
	for k := range engines {
		res = append(res, k)
	}
	sort.Strings(res)
	return res
}
