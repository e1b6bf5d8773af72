package runeio_test

import (
	"io"
	"strings"
	"testing"

	"github.com/jcorbin/intcode/internal/runeio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteANSIString(t *testing.T) {
	var sb strings.Builder
	n, err := runeio.WriteANSIString(&sb, "\u009b2J\u009bHscore: 1\u0085█")
	require.NoError(t, err)
	assert.Equal(t, "\x1b[2J\x1b[Hscore: 1\r\n█", sb.String())
	assert.Equal(t, sb.Len(), n)
}

type named struct{ io.Reader }

func (named) Name() string { return "prog.txt" }

func TestNewReader(t *testing.T) {
	sr := strings.NewReader("x")
	assert.Equal(t, runeio.Reader(sr), runeio.NewReader(sr), "rune readers are used as-is")

	rr := runeio.NewReader(named{strings.NewReader("1,2")})
	nom, ok := rr.(interface{ Name() string })
	require.True(t, ok, "expected the name to be kept")
	assert.Equal(t, "prog.txt", nom.Name())
	r, _, err := rr.ReadRune()
	require.NoError(t, err)
	assert.Equal(t, '1', r)
}
