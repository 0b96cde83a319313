// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package dimacs

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/go-air/satbench/cnf"
)

// Write writes p to w in dimacs format: a "p cnf" header followed by one
// line per clause, each terminated by " 0".  Every line, including the
// last, ends with a newline.
func Write(w io.Writer, p *cnf.Problem) error {
	bw := bufio.NewWriter(w)
	writeTo(bw, p, true)
	return bw.Flush()
}

// Export returns p in dimacs format as a string without a trailing
// newline.
func Export(p *cnf.Problem) string {
	sb := &strings.Builder{}
	writeTo(sb, p, false)
	return sb.String()
}

type stringWriter interface {
	WriteString(s string) (int, error)
	WriteByte(c byte) error
}

func writeTo(w stringWriter, p *cnf.Problem, trailingNL bool) {
	var buf []byte
	buf = append(buf, "p cnf "...)
	buf = strconv.AppendInt(buf, int64(p.NumVars), 10)
	buf = append(buf, ' ')
	buf = strconv.AppendInt(buf, int64(len(p.Clauses)), 10)
	w.WriteString(string(buf))
	for _, c := range p.Clauses {
		w.WriteByte('\n')
		buf = buf[:0]
		for _, m := range c {
			buf = strconv.AppendInt(buf, int64(m.Dimacs()), 10)
			buf = append(buf, ' ')
		}
		buf = append(buf, '0')
		w.WriteString(string(buf))
	}
	if trailingNL {
		w.WriteByte('\n')
	}
}
