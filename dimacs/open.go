// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package dimacs

import (
	"compress/bzip2"
	"compress/gzip"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/go-air/satbench/cnf"
)

type compressed struct {
	io.Reader
	f *os.File
	z io.Closer
}

func (c *compressed) Close() error {
	var e error
	if c.z != nil {
		e = c.z.Close()
	}
	if fe := c.f.Close(); e == nil {
		e = fe
	}
	return e
}

// Open opens the file at path for reading, decompressing it if the
// name ends in ".gz" or ".bz2".  The path "-" denotes standard input.
func Open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, e := os.Open(path)
	if e != nil {
		return nil, e
	}
	switch {
	case strings.HasSuffix(path, ".gz"):
		r, e := gzip.NewReader(f)
		if e != nil {
			f.Close()
			return nil, errors.Wrap(e, "gzip")
		}
		return &compressed{Reader: r, f: f, z: r}, nil
	case strings.HasSuffix(path, ".bz2"):
		return &compressed{Reader: bzip2.NewReader(f), f: f}, nil
	}
	return f, nil
}

// ParseFile opens and parses the dimacs cnf file at path.
func ParseFile(path string) (*cnf.Problem, error) {
	r, e := Open(path)
	if e != nil {
		return nil, e
	}
	defer r.Close()
	return Parse(r)
}
