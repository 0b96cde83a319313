// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package inter supplies the interface a SAT engine must satisfy to be
// driven by the benchmark harness.
//
// The interface is split into small facets which are composed into
// Engine.  All literals and variables are dimacs coded (see package z);
// engines translate to their own representation privately.
package inter
