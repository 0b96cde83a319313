// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package dimacs reads and writes dimacs cnf formatted problems.
//
// Reading is visitor based: ReadCnf reports the header and each literal
// to a CnfVis, and Parse collects them into a cnf.Problem.  Files may be
// gzip or bzip2 compressed, see Open.
package dimacs
