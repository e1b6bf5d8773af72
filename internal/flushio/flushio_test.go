package flushio_test

import (
	"bufio"
	"bytes"
	"io"
	"testing"

	"github.com/jcorbin/intcode/internal/flushio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWriteFlusher(t *testing.T) {
	var buf bytes.Buffer
	wf := flushio.NewWriteFlusher(&buf)
	io.WriteString(wf, "hi")
	assert.Equal(t, "hi", buf.String(), "buffers need no flush")

	bw := bufio.NewWriter(&buf)
	assert.Equal(t, flushio.WriteFlusher(bw), flushio.NewWriteFlusher(bw))

	require.NoError(t, flushio.NewWriteFlusher(io.Discard).Flush())
}

func TestWriteFlushers(t *testing.T) {
	var a, b bytes.Buffer
	ab := bufio.NewWriter(&a)
	wf := flushio.WriteFlushers(ab, nil, flushio.NewWriteFlusher(&b))
	io.WriteString(wf, "1,2,3\n")
	assert.Equal(t, "", a.String(), "expected buffered output")
	assert.Equal(t, "1,2,3\n", b.String())
	require.NoError(t, wf.Flush())
	assert.Equal(t, "1,2,3\n", a.String())

	assert.Nil(t, flushio.WriteFlushers())
	assert.Equal(t, flushio.WriteFlusher(ab), flushio.WriteFlushers(nil, ab))
}
