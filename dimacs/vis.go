// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package dimacs

import "github.com/go-air/satbench/z"

// CnfVis provides a visitor interface to reading dimacs files.
//
// cnf.Builder implements CnfVis.
type CnfVis interface {

	// Init is called once, on the problem line, with the declared number
	// of variables and clauses.
	Init(v, c int)

	// Add adds a literal.  z.LitNull terminates a nonempty clause.
	Add(m z.Lit)

	// Called at end of input, or at a '%' trailer.
	Eof()
}
