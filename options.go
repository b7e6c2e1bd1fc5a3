package main

import (
	"io"

	"github.com/sergev/BCause/internal/flushio"
)

// CompilerOption configures a Compiler at construction time, mirroring the
// flattening VMOption pattern: options compose via Options(...), and a
// slice of options is itself an option.
type CompilerOption interface {
	apply(c *Compiler)
}

var defaultCompilerOptions = Options(
	WithWordSize(defaultWordSize),
	WithOutput(io.Discard),
)

// Options flattens a list of options into a single one, dropping nils so
// that conditionally-built option lists don't need to filter themselves.
func Options(opts ...CompilerOption) CompilerOption {
	var flat options
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil:
		case noption:
		case options:
			flat = append(flat, impl...)
		default:
			flat = append(flat, opt)
		}
	}
	switch len(flat) {
	case 0:
		return noption{}
	case 1:
		return flat[0]
	default:
		return flat
	}
}

type noption struct{}

func (noption) apply(*Compiler) {}

type options []CompilerOption

func (opts options) apply(c *Compiler) {
	for _, opt := range opts {
		if opt != nil {
			opt.apply(c)
		}
	}
}

type progNameOption string

func (o progNameOption) apply(c *Compiler) { c.prog = string(o) }

// WithProgName sets the program name used in diagnostics.
func WithProgName(name string) CompilerOption { return progNameOption(name) }

type wordSizeOption int

func (o wordSizeOption) apply(c *Compiler) {
	if o > 0 {
		c.wordSize = int(o)
	}
}

// WithWordSize sets the target word size in bytes (fixed at 8 in practice,
// but left adjustable for testing).
func WithWordSize(n int) CompilerOption { return wordSizeOption(n) }

type outputOption struct{ io.Writer }

func (o outputOption) apply(c *Compiler) {
	if c.out != nil {
		_ = c.out.Flush()
	}
	c.out = flushio.NewWriteFlusher(o.Writer)
	if cl, ok := o.Writer.(io.Closer); ok {
		c.closers = append(c.closers, cl)
	}
}

// WithOutput sets the destination for emitted assembly text.
func WithOutput(w io.Writer) CompilerOption { return outputOption{w} }

type inputOption struct{ io.Reader }

func (o inputOption) apply(c *Compiler) { c.in.Queue = append(c.in.Queue, o.Reader) }

// WithInput queues an additional input source, read after any already
// queued and before any added later via addInput.
func WithInput(r io.Reader) CompilerOption { return inputOption{r} }

type logfOption func(string, ...interface{})

func (o logfOption) apply(c *Compiler) { c.logfn = o }

// WithLogf installs a trace logger; a nil fn disables tracing (the
// default).
func WithLogf(fn func(string, ...interface{})) CompilerOption { return logfOption(fn) }
