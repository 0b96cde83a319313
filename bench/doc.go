// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package bench runs a SAT engine over a list of dimacs cnf files.
//
// Each instance is parsed, loaded into a fresh engine and solved under
// an optional per-instance and global timeout.  Satisfying assignments
// are written out as JSON records and verified against the parsed
// clauses; the first parse or verification error stops the run.
//
// Package bench also produces text reports of a run, see Report and
// Listing.
package bench
