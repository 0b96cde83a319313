// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/go-air/satbench/bench"
)

func newRootCmd(stdout io.Writer, log logrus.FieldLogger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "satbench file [ file ... ]",
		Short: "Solves dimacs cnf files and reports timing",
		Long: `Solves dimacs cnf files in sequence with gini, verifying every
satisfying assignment against the clauses it was found for.  Assignments
are printed as JSON records, followed by a summary line.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), args, stdout, log)
		},
	}
	cmd.AddCommand(newGenCmd(stdout, log))
	return cmd
}

func run(ctx context.Context, insts []string, stdout io.Writer, log logrus.FieldLogger) error {
	r := bench.NewRun(insts, bench.WithOutput(stdout), bench.WithLogger(log))
	e := r.Run(ctx)
	if e != nil && errors.Cause(e) != context.Canceled {
		return e
	}
	for _, ln := range strings.Split(bench.Report(r), "\n") {
		if ln != "" {
			log.Info(ln)
		}
	}
	fmt.Fprintln(stdout, r.Summary())
	return e
}

func newLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	log.SetLevel(logrus.InfoLevel)
	return log
}

func main() {
	log := newLogger()
	ctx, stop := notify(context.Background(), log)
	defer stop()
	if e := newRootCmd(os.Stdout, log).ExecuteContext(ctx); e != nil {
		log.Error(e)
		stop()
		os.Exit(1)
	}
}
