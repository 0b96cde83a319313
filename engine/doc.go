// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package engine adapts third party SAT solvers to inter.Engine.
//
// Gini wraps github.com/go-air/gini and Gophersat wraps
// github.com/crillab/gophersat.  New looks engines up by name.
package engine
