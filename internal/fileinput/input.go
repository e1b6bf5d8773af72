package fileinput

import (
	"fmt"
	"io"

	"github.com/jcorbin/intcode/internal/runeio"
)

// Location names a position in an Input stream.
type Location struct {
	Name   string
	Line   int
	Column int
}

func (loc Location) String() string {
	if loc.Column > 0 {
		return fmt.Sprintf("%v:%v:%v", loc.Name, loc.Line, loc.Column)
	}
	return fmt.Sprintf("%v:%v", loc.Name, loc.Line)
}

// Input implements sequential rune reading through a Queue of one or more
// input streams, tracking the location of the last rune read.
type Input struct {
	rr    io.RuneReader
	Queue []io.Reader

	// Last is the location of the rune most recently returned by ReadRune.
	Last Location

	next Location
}

// ReadRune reads one rune from the current input stream, moving on to the
// next queued stream at EOF. Returns io.EOF once every stream is exhausted.
func (in *Input) ReadRune() (rune, int, error) {
	for {
		if in.rr == nil && !in.nextIn() {
			return 0, 0, io.EOF
		}
		r, n, err := in.rr.ReadRune()
		if n > 0 {
			in.Last = in.next
			if r == '\n' {
				in.next.Line++
				in.next.Column = 1
			} else {
				in.next.Column++
			}
			return r, n, nil
		}
		if err == io.EOF {
			in.close()
			continue
		}
		return 0, 0, err
	}
}

func (in *Input) close() {
	if cl, ok := in.rr.(io.Closer); ok {
		cl.Close()
	}
	in.rr = nil
}

func (in *Input) nextIn() bool {
	if len(in.Queue) == 0 {
		return false
	}
	r := in.Queue[0]
	in.Queue = in.Queue[1:]
	in.rr = runeio.NewReader(r)
	in.next = Location{Name: nameOf(r), Line: 1, Column: 1}
	return true
}

func nameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}

// NamedReader attaches a name to an io.Reader, for use in Location.
func NamedReader(name string, r io.Reader) io.Reader {
	return namedReader{r, name}
}

type namedReader struct {
	io.Reader
	name string
}

func (nr namedReader) Name() string { return nr.name }
