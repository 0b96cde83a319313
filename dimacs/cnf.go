// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/go-air/satbench/cnf"
	"github.com/go-air/satbench/z"
)

// ParseError is returned for malformed dimacs input.
type ParseError struct {
	Line int // 1 based, 0 if not tied to a line
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

const maxLine = 64 << 20

type cnfReader struct {
	vis     CnfVis
	line    int
	hdrVars int
	hdrCls  int
	buf     []z.Lit
}

func newCnfReader(vis CnfVis) *cnfReader {
	return &cnfReader{
		vis:     vis,
		hdrVars: -1,
		hdrCls:  -1}
}

// ReadCnf reads a dimacs cnf from r, reporting the header and the
// clauses to vis.
//
// Comment lines start with 'c' and may appear anywhere.  The first 'p'
// line must read "p cnf <vars> <clauses>", and must precede any clause.
// Every clause line ends with a single 0.  Lines holding only a 0 are
// skipped, and a line holding only '%' ends the input.  The declared clause
// count is not enforced.
func ReadCnf(r io.Reader, vis CnfVis) error {
	return newCnfReader(vis).read(r)
}

func (r *cnfReader) read(rdr io.Reader) error {
	scn := bufio.NewScanner(rdr)
	scn.Buffer(make([]byte, 0, 64*1024), maxLine)
	for scn.Scan() {
		r.line++
		line := strings.TrimSpace(scn.Text())
		switch {
		case line == "":
			continue
		case line[0] == 'c':
			continue
		case line[0] == 'p':
			if e := r.readP(line); e != nil {
				return e
			}
			continue
		case line[0] == '%':
			if r.hdrVars == -1 {
				return r.errorf("no problem line found")
			}
			r.vis.Eof()
			return nil
		}
		if r.hdrVars == -1 {
			return r.errorf("clause before problem line")
		}
		if e := r.readClause(line); e != nil {
			return e
		}
	}
	if e := scn.Err(); e != nil {
		return errors.Wrapf(e, "line %d", r.line+1)
	}
	if r.hdrVars == -1 {
		return &ParseError{Msg: "no problem line found"}
	}
	r.vis.Eof()
	return nil
}

func (r *cnfReader) errorf(f string, args ...interface{}) error {
	return &ParseError{Line: r.line, Msg: fmt.Sprintf(f, args...)}
}

// readP reads the problem line.
func (r *cnfReader) readP(line string) error {
	if r.hdrVars != -1 {
		return r.errorf("more than one problem statement")
	}
	fs := strings.Fields(line)
	if len(fs) < 4 || fs[0] != "p" || fs[1] != "cnf" {
		return r.errorf("didn't understand problem line")
	}
	nv, e := strconv.Atoi(fs[2])
	if e != nil || nv < 0 {
		return r.errorf("didn't understand problem line")
	}
	nc, e := strconv.Atoi(fs[3])
	if e != nil || nc < 0 {
		return r.errorf("didn't understand problem line")
	}
	r.hdrVars = nv
	r.hdrCls = nc
	r.vis.Init(nv, nc)
	return nil
}

func (r *cnfReader) readClause(line string) error {
	fs := strings.Fields(line)
	r.buf = r.buf[:0]
	for i, f := range fs {
		v, e := strconv.Atoi(f)
		if e != nil {
			return r.errorf("invalid literal %q", f)
		}
		if v == 0 {
			if i != len(fs)-1 {
				return r.errorf("0 before end of clause")
			}
			break
		}
		if i == len(fs)-1 {
			return r.errorf("clause not terminated by 0")
		}
		if v > r.hdrVars || v < -r.hdrVars {
			return r.errorf("literal %d out of range 1..%d", v, r.hdrVars)
		}
		r.buf = append(r.buf, z.Dimacs2Lit(v))
	}
	if len(r.buf) == 0 {
		return nil
	}
	vis := r.vis
	for _, m := range r.buf {
		vis.Add(m)
	}
	vis.Add(z.LitNull)
	return nil
}

// Parse reads a dimacs cnf from r into a cnf.Problem.
func Parse(r io.Reader) (*cnf.Problem, error) {
	b := cnf.NewBuilder()
	if e := ReadCnf(r, b); e != nil {
		return nil, e
	}
	return b.Problem(), nil
}

// ParseString is Parse applied to s.
func ParseString(s string) (*cnf.Problem, error) {
	return Parse(strings.NewReader(s))
}
