// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/go-air/satbench/cnf"
	"github.com/go-air/satbench/dimacs"
	"github.com/go-air/satbench/gen"
)

func newGenCmd(stdout io.Writer, log logrus.FieldLogger) *cobra.Command {
	var (
		out  string
		seed int64
	)
	var usage strings.Builder
	for _, f := range gen.Families() {
		fmt.Fprintf(&usage, "\n  %-28s %s", f.Usage(), f.Doc)
	}
	cmd := &cobra.Command{
		Use:   "gen family [ param ... ]",
		Short: "Writes a generated instance in dimacs cnf format",
		Long:  "Writes a generated instance in dimacs cnf format.  Families:\n" + usage.String(),
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ps := make([]int, len(args)-1)
			for i, a := range args[1:] {
				v, e := strconv.Atoi(a)
				if e != nil {
					return errors.Errorf("%s: bad parameter %q", args[0], a)
				}
				ps[i] = v
			}
			if cmd.Flags().Changed("seed") {
				gen.Seed(seed)
			}
			b := cnf.NewBuilder()
			if e := gen.Generate(b, args[0], ps...); e != nil {
				return e
			}
			p := b.Problem()
			if out == "" {
				if e := dimacs.Write(stdout, p); e != nil {
					return errors.Wrap(e, "gen")
				}
			} else if e := createCnf(out, p); e != nil {
				return errors.Wrap(e, "gen")
			}
			log.WithFields(logrus.Fields{
				"family":  args[0],
				"vars":    p.NumVars,
				"clauses": len(p.Clauses),
			}).Debug("generated")
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "write to `file` instead of standard output")
	cmd.Flags().Int64Var(&seed, "seed", 0, "seed for random families")
	return cmd
}

func createCnf(path string, p *cnf.Problem) error {
	f, e := os.Create(path)
	if e != nil {
		return e
	}
	if e := dimacs.Write(f, p); e != nil {
		f.Close()
		return e
	}
	return f.Close()
}
