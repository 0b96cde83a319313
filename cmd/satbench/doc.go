// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Command satbench solves dimacs cnf files in sequence and reports timing.
//
//	satbench file [ file ... ]
//
// Files ending in .gz or .bz2 are decompressed.  Each file is solved with
// gini; every satisfying assignment is printed as a JSON record and checked
// against the clauses of its file.  After the last file satbench prints
//
//	solved <N> instances in <T> ms
//
// Instances of the generator families of package gen are written with
//
//	satbench gen [ -o file ] [ --seed N ] family [ param ... ]
//
// Diagnostics go to standard error.  satbench exits with status 1 on the
// first malformed file or wrong assignment, and when interrupted.
package main
