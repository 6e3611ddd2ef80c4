// Package report renders artifact sets for examiners.
//
// All output goes through a Context, which carries the destination and the
// configured verbosity. A message tagged with level L is written only when
// L >= verbosity: a higher verbosity number suppresses more. Report data is
// tagged LevelHigh and therefore always shown.
package report

import (
	"fmt"
	"io"
	"time"
)

// Level is the severity a report line is tagged with.
type Level int

// Severity levels.
const (
	LevelLow    Level = 1
	LevelMedium Level = 2
	LevelHigh   Level = 3
)

// Context is the destination and filter for report output. It replaces any
// process-wide output state; pass it to whatever needs to report.
type Context struct {
	out       io.Writer
	verbosity Level
	loc       *time.Location
	err       error
}

// NewContext returns a Context writing to out. Timestamps are rendered in
// loc; nil means UTC.
func NewContext(out io.Writer, verbosity int, loc *time.Location) *Context {
	if loc == nil {
		loc = time.UTC
	}
	return &Context{out: out, verbosity: Level(verbosity), loc: loc}
}

// Enabled reports whether a message tagged l is written.
func (c *Context) Enabled(l Level) bool {
	return l >= c.verbosity
}

// Printf writes a formatted line tagged l. A trailing newline is added.
func (c *Context) Printf(l Level, format string, args ...any) {
	c.Println(l, fmt.Sprintf(format, args...))
}

// Println writes line tagged l followed by a newline.
func (c *Context) Println(l Level, line string) {
	if !c.Enabled(l) || c.err != nil {
		return
	}
	if _, err := io.WriteString(c.out, line+"\n"); err != nil {
		c.err = err
	}
}

// Writer returns a writer for output tagged l. Output below the verbosity
// threshold is discarded.
func (c *Context) Writer(l Level) io.Writer {
	if !c.Enabled(l) {
		return io.Discard
	}
	return &errWriter{c: c}
}

// Err returns the first write error.
func (c *Context) Err() error {
	return c.err
}

// errWriter records write errors on its Context.
type errWriter struct {
	c *Context
}

func (w *errWriter) Write(p []byte) (int, error) {
	if w.c.err != nil {
		return 0, w.c.err
	}
	n, err := w.c.out.Write(p)
	if err != nil {
		w.c.err = err
	}
	return n, err
}
