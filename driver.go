package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/sergev/BCause/internal/flushio"
	"github.com/sergev/BCause/internal/logio"
)

const (
	progVersion   = "0.1.0"
	defaultOutput = "a.out"
	asmPath       = "a.s"
	objPath       = "a.o"
)

// Driver owns the command-line surface: argument parsing, running the
// compiler over every ".b" input in order, and optionally shelling out to
// the external assembler and linker.
type Driver struct {
	Prog string

	Output   string
	Assemble bool
	Link     bool
	WordSize int
	Trace    bool
	Color    bool
	TeeAsm   string

	Stdout io.Writer
	Stderr io.Writer

	log *logio.Logger
}

// NewDriver builds a Driver with the default pipeline: assemble and link
// both on, output "a.out".
func NewDriver(prog string, stdout, stderr io.Writer) *Driver {
	log := &logio.Logger{}
	log.SetOutput(nopWriteCloser{stderr})
	return &Driver{
		Prog:     prog,
		Output:   defaultOutput,
		WordSize: defaultWordSize,
		Assemble: true,
		Link:     true,
		Stdout:   stdout,
		Stderr:   stderr,
		log:      log,
	}
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// ParseArgs walks argv per the command-line grammar. done reports
// that the caller should exit immediately with the given code (set by
// --help, --version, or an unrecognized option); otherwise inputs holds
// the non-option arguments, in order.
func (d *Driver) ParseArgs(args []string) (inputs []string, exit int, done bool) {
	for i := 0; i < len(args); i++ {
		a := args[i]
		switch {
		case a == "--help":
			d.printUsage(d.Stdout)
			return nil, 0, true
		case a == "--version":
			d.printVersion(d.Stdout)
			return nil, 0, true
		case a == "-S":
			d.Assemble, d.Link = false, false
		case a == "-c":
			d.Assemble, d.Link = true, false
		case a == "-o":
			if i+1 >= len(args) {
				d.errorf("missing filename")
				continue
			}
			i++
			d.Output = args[i]
		case a == "--trace":
			d.Trace = true
		case a == "--color":
			d.Color = true
		case a == "--tee-asm":
			if i+1 >= len(args) {
				d.errorf("missing filename")
				continue
			}
			i++
			d.TeeAsm = args[i]
		case strings.HasPrefix(a, "-") && a != "-":
			d.errorf("unrecognized command-line option %q", a)
			return nil, 1, true
		default:
			inputs = append(inputs, a)
		}
	}
	return inputs, 0, false
}

func (d *Driver) printUsage(w io.Writer) {
	fmt.Fprintf(w, "usage: %s [options] file...\n", d.Prog)
	fmt.Fprintln(w, "options:")
	fmt.Fprintln(w, "  --help       show this message and exit")
	fmt.Fprintln(w, "  --version    show version information and exit")
	fmt.Fprintln(w, "  -o <file>    set the output path (default a.out)")
	fmt.Fprintln(w, "  -S           emit assembly only; do not assemble or link")
	fmt.Fprintln(w, "  -c           assemble to an object file; do not link")
	fmt.Fprintln(w, "  --trace      log each declaration and statement as it is scanned")
	fmt.Fprintln(w, "  --tee-asm <file>  also copy emitted assembly to <file> as it is produced")
}

func (d *Driver) printVersion(w io.Writer) {
	fmt.Fprintf(w, "%s version %s\n", d.Prog, progVersion)
	fmt.Fprintln(w, "Copyright (C) 2026 the BCause authors")
	fmt.Fprintln(w, "This program comes with ABSOLUTELY NO WARRANTY.")
}

// errorf prints one diagnostic line in the "<prog>: error: <msg>" form
// through the logger, which is the only place the driver's own diagnostics
// are written to stderr.
func (d *Driver) errorf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	line := logio.Diagnostic(d.Prog, msg, d.Color)
	d.log.Printf("", "%s", line)
}

// Run compiles every ".b" file in inputs (argv order), writes the emitted
// assembly to a.s, and — unless -S/-c say otherwise — assembles and links
// it. It returns the process exit code: 0 on success, 1 on any error.
func (d *Driver) Run(inputs []string) int {
	var bFiles []string
	for _, p := range inputs {
		if strings.HasSuffix(p, ".b") {
			bFiles = append(bFiles, p)
		}
	}
	if len(bFiles) == 0 {
		d.errorf("no input files")
		return 1
	}

	var buf bytes.Buffer
	out := flushio.NewWriteFlusher(&buf)

	var teeFile *os.File
	if d.TeeAsm != "" {
		f, err := os.Create(d.TeeAsm)
		if err != nil {
			d.errorf("%v", err)
			return 1
		}
		teeFile = f
		out = flushio.WriteFlushers(out, flushio.NewWriteFlusher(f))
	}
	defer func() {
		if teeFile != nil {
			teeFile.Close()
		}
	}()

	opts := []CompilerOption{
		WithProgName(d.Prog),
		WithOutput(out),
		WithWordSize(d.WordSize),
	}
	if d.Trace {
		opts = append(opts, WithLogf(func(mess string, args ...interface{}) {
			d.log.Printf("TRACE", mess, args...)
		}))
	}
	c := NewCompiler(opts...)
	defer c.Close()

	var files []*os.File
	defer func() {
		for _, f := range files {
			f.Close()
		}
	}()

	for _, path := range bFiles {
		f, err := os.Open(path)
		if err != nil {
			d.errorf("%v", err)
			return 1
		}
		files = append(files, f)
		c.addInput(f)
	}

	if err := c.Compile(); err != nil {
		d.errorf("%v", err)
		return 1
	}
	if err := out.Flush(); err != nil {
		d.errorf("%v", err)
		return 1
	}

	if err := os.WriteFile(asmPath, buf.Bytes(), 0o644); err != nil {
		d.errorf("%v", err)
		return 1
	}

	if !d.Assemble {
		return 0
	}
	if err := d.runTool("as", []string{asmPath, "-o", objPath}); err != nil {
		d.errorf("%v", err)
		return 1
	}
	os.Remove(asmPath)

	if !d.Link {
		return 0
	}
	ldArgs := []string{
		"-static", "-nostdlib", objPath,
		"-L.", "-L/lib64", "-L/usr/local/lib64",
		"-lb", "-o", d.Output,
	}
	if err := d.runTool("ld", ldArgs); err != nil {
		d.errorf("%v", err)
		return 1
	}
	os.Remove(objPath)
	return 0
}

// runTool runs name with args, draining its stdout and stderr into the
// driver's own streams concurrently with waiting for it to exit.
func (d *Driver) runTool(name string, args []string) error {
	cmd := exec.Command(name, args...)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("%v: %w", name, err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("%v: %w", name, err)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("%v: %w", name, err)
	}

	var eg errgroup.Group
	eg.Go(func() error {
		_, err := io.Copy(d.Stdout, stdout)
		return err
	})
	eg.Go(func() error {
		_, err := io.Copy(d.Stderr, stderr)
		return err
	})
	drainErr := eg.Wait()

	if waitErr := cmd.Wait(); waitErr != nil {
		if ee, ok := waitErr.(*exec.ExitError); ok {
			return exitError{tool: name, code: ee.ExitCode()}
		}
		return fmt.Errorf("%v: %w", name, waitErr)
	}
	return drainErr
}

func progName(args []string) string {
	if len(args) == 0 {
		return "bcc"
	}
	return filepath.Base(args[0])
}
