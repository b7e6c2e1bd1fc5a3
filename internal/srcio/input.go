// Package srcio provides sequential byte/rune reading over a queue of one or
// more named input streams, with a pushback stack and line-level location
// tracking for diagnostics.
package srcio

import (
	"bytes"
	"fmt"
	"io"

	"github.com/sergev/BCause/internal/runeio"
)

// Location names a line in an Input stream.
type Location struct {
	Name string
	Line int
}

// Line combines a Location along with a bytes.Buffer for handling it.
type Line struct {
	Location
	bytes.Buffer
}

func (loc Location) String() string { return fmt.Sprintf("%v:%v", loc.Name, loc.Line) }
func (il Line) String() string      { return fmt.Sprintf("%v %q", il.Location, il.Buffer.String()) }

// Input implements sequential rune reading through a Queue of one or more
// input streams, plus a pushback stack (Unget). Both the current and last
// scanned lines are tracked to facilitate diagnostics.
type Input struct {
	rr    io.RuneReader
	Queue []io.Reader
	Last  Line
	Scan  Line

	pushback []rune
}

// ReadRune reads one rune, first draining any pushback left by Unget (most
// recently pushed first), then from the current input stream, appending it
// into the current Scan line, and rolling Scan over to Last after a line
// feed.
func (in *Input) ReadRune() (rune, error) {
	if n := len(in.pushback); n > 0 {
		r := in.pushback[n-1]
		in.pushback = in.pushback[:n-1]
		return r, nil
	}

	if in.rr == nil && !in.nextIn() {
		return 0, io.EOF
	}

	r, _, err := in.rr.ReadRune()
	if r == '\n' {
		in.nextLine()
	} else if r != 0 {
		in.Scan.WriteRune(r)
	}

	if r != 0 {
		return r, nil
	}
	if err == io.EOF && in.nextIn() {
		return in.ReadRune()
	}
	return 0, err
}

// Unget pushes r back so that the next ReadRune returns it again. Almost
// every caller in this compiler pushes back at most one rune at a time, the
// nominal "single slot" of lookahead; the stack exists because the
// else-disambiguation lookahead (matching the literal word "else") must
// sometimes push back up to five runes in reverse read order.
func (in *Input) Unget(r rune) {
	in.pushback = append(in.pushback, r)
}

// Location reports the current scan position, for use in diagnostics.
func (in *Input) Location() Location {
	if in.Scan.Len() > 0 || in.Scan.Name != "" {
		return in.Scan.Location
	}
	return in.Last.Location
}

func (in *Input) nextLine() {
	in.Last.Reset()
	in.Last.Name = in.Scan.Name
	in.Last.Line = in.Scan.Line
	in.Last.Write(in.Scan.Bytes())
	in.Scan.Reset()
	in.Scan.Line++
}

func (in *Input) nextIn() bool {
	in.nextLine()
	if in.rr != nil {
		if cl, ok := in.rr.(io.Closer); ok {
			cl.Close()
		}
		in.rr = nil
	}
	if len(in.Queue) > 0 {
		r := in.Queue[0]
		in.Queue = in.Queue[1:]
		in.rr = runeio.NewReader(r)
		in.Scan.Name = nameOf(r)
		in.Scan.Line = 1
	}
	return in.rr != nil
}

func nameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}
