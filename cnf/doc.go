// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package cnf holds the problems and solutions exchanged by the
// benchmark harness, and checks solutions against problems.
//
// A Problem is a conjunction of clauses over variables 1..NumVars.  Problems
// are built literal by literal with a Builder, which is the target of both
// the dimacs reader and the formula generators in package gen.
package cnf
