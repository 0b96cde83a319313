// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package gen contains generators for common
// kinds of formulas.  Families names them for use from the command line.
//
// Package gen also supplies engines for testing the harness: RandS, which
// returns a given result within a random period of time, and Rec, which
// records the calls made to another engine.
package gen
