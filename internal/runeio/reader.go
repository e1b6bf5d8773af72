package runeio

import (
	"bufio"
	"io"
)

// Reader is an io.Reader that also supports reading runes.
type Reader interface {
	io.Reader
	io.RuneReader
}

// NewReader adapts r into a Reader, buffering it unless it already reads runes.
// Any Name() or Close() method of r stays reachable through the result.
func NewReader(r io.Reader) Reader {
	if rr, ok := r.(Reader); ok {
		return rr
	}
	br := bufferedReader{bufio.NewReader(r), r}
	if nom, ok := r.(interface{ Name() string }); ok {
		return namedReader{br, nom.Name()}
	}
	return br
}

type bufferedReader struct {
	*bufio.Reader
	under io.Reader
}

func (br bufferedReader) Close() error {
	if cl, ok := br.under.(io.Closer); ok {
		return cl.Close()
	}
	return nil
}

type namedReader struct {
	bufferedReader
	name string
}

func (nr namedReader) Name() string { return nr.name }
