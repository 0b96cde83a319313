// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-air/satbench/dimacs"
)

func TestGenCmdStdout(t *testing.T) {
	out := &bytes.Buffer{}
	log, _ := test.NewNullLogger()
	cmd := newRootCmd(out, log)
	cmd.SetArgs([]string{"gen", "php", "3", "2"})
	require.NoError(t, cmd.ExecuteContext(context.Background()))
	p, e := dimacs.ParseString(out.String())
	require.NoError(t, e)
	assert.Equal(t, 6, p.NumVars)
	// 3 pigeon clauses, 3 pairs in 2 holes
	assert.Len(t, p.Clauses, 3+3*2)
}

func TestGenCmdSeeded(t *testing.T) {
	gen := func() string {
		out := &bytes.Buffer{}
		log, _ := test.NewNullLogger()
		cmd := newRootCmd(out, log)
		cmd.SetArgs([]string{"gen", "--seed", "7", "color", "10", "15", "3"})
		require.NoError(t, cmd.ExecuteContext(context.Background()))
		return out.String()
	}
	a := gen()
	assert.True(t, strings.HasPrefix(a, "p cnf "), a)
	assert.Equal(t, a, gen())
}

func TestGenCmdThenSolve(t *testing.T) {
	dir := t.TempDir()
	var insts []string
	for i, args := range [][]string{
		{"color", "20", "30", "4"},
		{"partition", "6", "3"},
		{"pytriples", "20", "2"},
		{"py2triples", "50"},
	} {
		path := filepath.Join(dir, args[0]+".cnf")
		log, _ := test.NewNullLogger()
		cmd := newRootCmd(&bytes.Buffer{}, log)
		cmd.SetArgs(append([]string{"gen", "-o", path}, args...))
		require.NoError(t, cmd.ExecuteContext(context.Background()), i)
		insts = append(insts, path)
	}

	out := &bytes.Buffer{}
	log, _ := test.NewNullLogger()
	cmd := newRootCmd(out, log)
	cmd.SetArgs(insts)
	require.NoError(t, cmd.ExecuteContext(context.Background()))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.NotEmpty(t, lines)
	assert.Regexp(t, `^solved 4 instances in \d+\.\d\d ms$`, lines[len(lines)-1])
}

func TestGenCmdErrors(t *testing.T) {
	for _, args := range [][]string{
		{"gen"},
		{"gen", "nope"},
		{"gen", "php", "x", "2"},
		{"gen", "php", "3"},
		{"gen", "-o", filepath.Join(t.TempDir(), "no", "such", "dir.cnf"), "sudoku"},
	} {
		out := &bytes.Buffer{}
		log, _ := test.NewNullLogger()
		cmd := newRootCmd(out, log)
		cmd.SetArgs(args)
		cmd.SetErr(&bytes.Buffer{})
		assert.Error(t, cmd.ExecuteContext(context.Background()), strings.Join(args, " "))
		assert.Empty(t, out.String(), strings.Join(args, " "))
	}
}
