// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package z contains the literal and variable types shared by the
// satbench packages.
//
// Literals use the dimacs coding throughout: a variable v is a positive
// integer starting at 1, the literal v asserts v is true and -v asserts
// v is false.  0 is not a literal; it is only used as a clause terminator.
package z
