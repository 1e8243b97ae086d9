package bnb

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Trace writes an indented trace of labelled parsers (Desc, Node and Named)
// to w as they are entered and left.
func Trace(w io.Writer) ParseOption {
	return func(c *parseConfig) {
		c.trace = w
	}
}

// tracer is shared by every Context derived from a single Parse call. A nil
// tracer is valid and does nothing.
type tracer struct {
	w      io.Writer
	indent int
}

func (t *tracer) enter(ctx Context, label string) {
	if t == nil {
		return
	}
	fmt.Fprintf(t.w, "%s%s %s %q\n", strings.Repeat(" ", t.indent), ctx.location, label, peek(ctx.Remaining(), 10))
	t.indent += 2
}

func (t *tracer) leave(label string, ok bool, location SourceLocation) {
	if t == nil {
		return
	}
	t.indent -= 2
	outcome := "fail"
	if ok {
		outcome = "ok"
	}
	fmt.Fprintf(t.w, "%s%s %s %s\n", strings.Repeat(" ", t.indent), location, label, outcome)
}

func peek(s string, n int) string {
	count := 0
	for i := range s {
		if count == n {
			return s[:i] + "…"
		}
		count++
	}
	return s
}

func joinQuoted(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = strconv.Quote(v)
	}
	return strings.Join(quoted, ", ")
}
