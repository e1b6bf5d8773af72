package fileinput_test

import (
	"io"
	"strings"
	"testing"

	"github.com/jcorbin/intcode/internal/fileinput"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInput(t *testing.T) {
	in := fileinput.Input{Queue: []io.Reader{
		fileinput.NamedReader("a", strings.NewReader("1,\n2")),
		fileinput.NamedReader("b", strings.NewReader("")),
		fileinput.NamedReader("c", strings.NewReader("3")),
	}}

	type read struct {
		r   rune
		loc string
	}
	var got []read
	for {
		r, _, err := in.ReadRune()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		got = append(got, read{r, in.Last.String()})
	}
	assert.Equal(t, []read{
		{'1', "a:1:1"},
		{',', "a:1:2"},
		{'\n', "a:1:3"},
		{'2', "a:2:1"},
		{'3', "c:1:1"},
	}, got)
}

func TestLocation_unnamed(t *testing.T) {
	in := fileinput.Input{Queue: []io.Reader{strings.NewReader("x")}}
	_, _, err := in.ReadRune()
	require.NoError(t, err)
	assert.Equal(t, "<unnamed *strings.Reader>:1:1", in.Last.String())
	assert.Equal(t, "f:3", fileinput.Location{Name: "f", Line: 3}.String())
}
