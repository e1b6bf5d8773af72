package intcode

import (
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/jcorbin/intcode/internal/fileinput"
	"github.com/pkg/errors"
)

// ErrEmptyProgram is returned when program text holds no values at all.
var ErrEmptyProgram = errors.New("empty program")

// ParseProgram reads comma separated base-10 integers from r.
// Whitespace around values, including a trailing newline, is ignored.
// Errors name the location of the offending value.
func ParseProgram(r io.Reader) ([]int64, error) {
	in := fileinput.Input{Queue: []io.Reader{r}}

	var (
		prog []int64
		tok  strings.Builder
		loc  fileinput.Location
		seen bool
	)

	flush := func() error {
		s := strings.TrimSpace(tok.String())
		tok.Reset()
		val, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return errors.Wrapf(err, "%v: invalid program value %q", loc, s)
		}
		prog = append(prog, val)
		return nil
	}

	for {
		r, _, err := in.ReadRune()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, errors.Wrap(err, "program read failed")
		}
		switch {
		case r == ',':
			if err := flush(); err != nil {
				return nil, err
			}
			loc, seen = in.Last, true
		case tok.Len() == 0 && unicode.IsSpace(r):
		default:
			if tok.Len() == 0 {
				loc = in.Last
			}
			tok.WriteRune(r)
			seen = true
		}
	}

	if !seen {
		return nil, ErrEmptyProgram
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return prog, nil
}

// ParseProgramString parses program text held in a string.
func ParseProgramString(s string) ([]int64, error) {
	return ParseProgram(fileinput.NamedReader("<string>", strings.NewReader(s)))
}

// LoadProgram parses the program text file at path.
func LoadProgram(path string) ([]int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseProgram(f)
}

// FormatProgram renders values in program text form.
func FormatProgram(values []int64) string {
	var sb strings.Builder
	for i, val := range values {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatInt(val, 10))
	}
	return sb.String()
}
