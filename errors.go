package main

import (
	"fmt"

	"github.com/sergev/BCause/internal/srcio"
)

// haltError wraps the first fatal condition hit during a compile, tagged
// with the source location at which it was raised.
type haltError struct {
	loc srcio.Location
	err error
}

func (e haltError) Error() string {
	if e.loc.Name == "" {
		return e.err.Error()
	}
	return fmt.Sprintf("%v: %v", e.loc, e.err)
}

func (e haltError) Unwrap() error { return e.err }

// exitError reports a non-zero exit from a child process (as or ld).
type exitError struct {
	tool string
	code int
}

func (e exitError) Error() string {
	return fmt.Sprintf("%v exited with status %v", e.tool, e.code)
}

// halt aborts the current compile by panicking with a haltError, after
// flushing any pending output. It is the single choke point for every
// fatal condition in the core: I/O and syntax errors. Compile
// recovers the panic and returns it as a plain error.
func (c *Compiler) halt(err error) {
	if c.out != nil {
		_ = c.out.Flush()
	}
	he := haltError{loc: c.in.Location(), err: err}
	c.logf("!", "%v", he)
	panic(he)
}

func (c *Compiler) haltif(err error) {
	if err != nil {
		c.halt(err)
	}
}

func (c *Compiler) fatalf(format string, args ...interface{}) {
	c.halt(fmt.Errorf(format, args...))
}
