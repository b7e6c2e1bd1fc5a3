package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sergev/BCause/internal/flushio"
	"github.com/sergev/BCause/internal/panicerr"
	"github.com/sergev/BCause/internal/srcio"
)

const defaultWordSize = 8

// Compiler holds the handful of durable entities a compilation needs: the
// input queue, the output buffer, the word size, and the monotonic
// statement-id counter. Everything else (switch context, function name) is
// threaded explicitly through the recursive-descent producers rather than
// kept here, per the design notes: the statement-id counter is the one
// piece of state that is genuinely process-wide within a compile.
type Compiler struct {
	prog     string
	wordSize int

	in  srcio.Input
	out flushio.WriteFlusher

	logfn func(format string, args ...interface{})

	stmtID int

	closers []io.Closer
}

// NewCompiler builds a Compiler from functional options, applying defaults
// first so that any option left unset still yields a usable compiler.
func NewCompiler(opts ...CompilerOption) *Compiler {
	c := &Compiler{}
	defaultCompilerOptions.apply(c)
	Options(opts...).apply(c)
	return c
}

// addInput queues r as the next source to read from, after any already
// queued. Unlike WithInput, this can be called incrementally as the driver
// opens files one at a time.
func (c *Compiler) addInput(r io.Reader) {
	c.in.Queue = append(c.in.Queue, r)
}

// Close releases every resource the compiler has accumulated a closer for,
// in reverse acquisition order, collecting the first error encountered.
func (c *Compiler) Close() error {
	var err error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if cerr := c.closers[i].Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// Compile runs the top-level declaration dispatcher over every queued
// input, isolating the pass so that a halt (or any other panic) comes back
// as a plain error rather than crashing the process.
func (c *Compiler) Compile() error {
	err := panicerr.Recover(c.prog, func() error {
		c.compileTop()
		return nil
	})
	if err == nil {
		return nil
	}
	var he haltError
	if errors.As(err, &he) {
		return he
	}
	return err
}

// emit appends one line of assembly text to the output buffer.
func (c *Compiler) emit(format string, args ...interface{}) {
	if c.out == nil {
		return
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, format, args...)
	sb.WriteByte('\n')
	if _, err := io.WriteString(c.out, sb.String()); err != nil {
		c.halt(err)
	}
}

// logf reports a trace event if a trace logger option was supplied; it is
// a no-op otherwise, keeping trace output purely observational.
func (c *Compiler) logf(mark, format string, args ...interface{}) {
	if c.logfn == nil {
		return
	}
	mess := format
	if len(args) > 0 {
		mess = fmt.Sprintf(format, args...)
	}
	c.logfn("%v %v", mark, mess)
}

// nextID returns the next value of the monotonic statement-id counter,
// used to build unique control-flow labels. It is never reset within a
// compile, including across input files.
func (c *Compiler) nextID() int {
	id := c.stmtID
	c.stmtID++
	return id
}
