// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
)

// notify returns a context cancelled on the first SIGINT or SIGTERM,
// which interrupts the running instance and stops the run.  A second
// signal exits at once.
func notify(parent context.Context, log logrus.FieldLogger) (context.Context, func()) {
	ctx, cancel := context.WithCancel(parent)
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	done := make(chan struct{})
	go func() {
		n := 0
		for {
			select {
			case sig := <-sigs:
				n++
				if n > 1 {
					log.WithField("signal", sig).Error("interrupted again, exiting")
					os.Exit(1)
				}
				log.WithField("signal", sig).Warn("interrupted")
				cancel()
			case <-done:
				return
			}
		}
	}()
	var stopped bool
	return ctx, func() {
		if stopped {
			return
		}
		stopped = true
		signal.Stop(sigs)
		close(done)
		cancel()
	}
}
